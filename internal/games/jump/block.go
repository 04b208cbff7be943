package jump

// Anchor is the jumpable a placement is measured from.
type Anchor struct {
	Y     float64
	Boost float64
}

// Placement records one platform's height against the anchor it was placed from.
type Placement struct {
	Anchor Anchor
	Y      float64
}

// BlockType selects which platform kinds a block contains.
type BlockType int

const (
	BlockStandard BlockType = iota
	BlockNormalOnly
	BlockHorizontalOnly
	BlockVerticalOnly
)

// String returns the name of the block type.
func (t BlockType) String() string {
	switch t {
	case BlockStandard:
		return "standard"
	case BlockNormalOnly:
		return "normal_only"
	case BlockHorizontalOnly:
		return "horizontal_only"
	case BlockVerticalOnly:
		return "vertical_only"
	default:
		return "unknown"
	}
}

// Block is a vertical slice of the world generated in one go.
type Block struct {
	Type       BlockType
	Platforms  []*Platform
	PowerUps   []*PowerUp
	Enemies    []*Enemy
	Placements []Placement

	// Top is the highest solid platform, or nil if every platform breaks.
	Top *Platform
	// Ceiling is the smallest spawn y of any platform in the block.
	Ceiling float64
}

// TopY returns the current y of the block's topmost jumpable.
func (b *Block) TopY() float64 {
	if b.Top != nil {
		return b.Top.Y
	}
	return b.Ceiling
}

// Anchor returns the anchor for the next block.
// The second result is false when the block has no solid platform.
func (b *Block) Anchor() (Anchor, bool) {
	if b.Top == nil {
		return Anchor{}, false
	}
	return Anchor{Y: b.Top.SpawnY, Boost: b.Top.BaseBoost()}, true
}

// Jumpables returns the power-ups followed by the platforms.
// Power-ups sit on top of platforms, so they must be tested first.
func (b *Block) Jumpables() []Jumpable {
	out := make([]Jumpable, 0, len(b.PowerUps)+len(b.Platforms))
	for _, u := range b.PowerUps {
		if !u.Kind.Equippable() {
			out = append(out, u)
		}
	}
	for _, p := range b.Platforms {
		out = append(out, p)
	}
	return out
}

func (b *Block) add(p *Platform) {
	if len(b.Platforms) == 0 || p.Y < b.Ceiling {
		b.Ceiling = p.Y
	}
	b.Platforms = append(b.Platforms, p)
	if p.Solid() && (b.Top == nil || p.Y < b.Top.Y) {
		b.Top = p
	}
}

// occupied reports whether box overlaps anything already in the block.
func (b *Block) occupied(e *Entity) bool {
	box := e.Box()
	for _, p := range b.Platforms {
		if p.Box().Intersects(box) {
			return true
		}
	}
	for _, u := range b.PowerUps {
		if u.Box().Intersects(box) {
			return true
		}
	}
	for _, en := range b.Enemies {
		if en.Box().Intersects(box) {
			return true
		}
	}
	return false
}

func (b *Block) update(ctx *Context) {
	for _, p := range b.Platforms {
		p.Update(ctx)
	}
	for _, u := range b.PowerUps {
		u.Update()
	}
	for _, e := range b.Enemies {
		e.Update(ctx)
	}
}
