package jump

import (
	"math"

	"github.com/vovakirdan/tui-jump/internal/core"
)

// Sprite identifies an image the renderer knows how to draw.
type Sprite int

const (
	SpritePlatform Sprite = iota
	SpriteHorizontalPlatform
	SpriteVerticalPlatform
	SpriteBreakingPlatform // Frame 0 intact, then one frame per break stage
	SpriteDarkPlatform
	SpriteSpring     // Frame 1 compressed
	SpriteTrampoline // Frame 1 compressed
	SpritePropeller
	SpriteJetpack
	SpriteMonster // Frame 1 stomped
	SpriteHoveringMonster
	SpritePlayer // Frame is the Facing
	SpritePlayerFlying
)

// SpriteRef selects a sprite and its animation frame.
type SpriteRef struct {
	ID    Sprite
	Frame int
}

// Renderer draws sprites in screen-space pixels (world y minus camera y).
type Renderer interface {
	DrawSprite(ref SpriteRef, x, y, w, h float64)
}

// Glyphs for terminal output
const (
	PlatformChar = '▀'
	CrackedChar1 = '▚'
	CrackedChar2 = '▖'
	CrackedChar3 = '·'
	DarkChar     = '░'
	SpringChar   = 'ʓ'
	CoilChar     = '▁'
	PropChar     = '¥'
	JetChar      = '▓'
	MonsterChar  = 'M'
	PlayerChar   = '█'
)

// ScreenRenderer maps world pixels onto terminal cells.
type ScreenRenderer struct {
	dst    *core.Screen
	scaleX float64
	scaleY float64
	top    int // First row used for the playfield
}

// NewScreenRenderer creates a renderer drawing a worldW x worldH view into
// dst, leaving the first top rows for the HUD.
func NewScreenRenderer(dst *core.Screen, worldW, worldH float64, top int) *ScreenRenderer {
	rows := max(dst.Height()-top, 1)
	return &ScreenRenderer{
		dst:    dst,
		scaleX: float64(dst.Width()) / worldW,
		scaleY: float64(rows) / worldH,
		top:    top,
	}
}

// DrawSprite fills the cells covered by the sprite. Every sprite covers at
// least one cell so thin platforms stay visible.
func (s *ScreenRenderer) DrawSprite(ref SpriteRef, x, y, w, h float64) {
	x0 := int(math.Floor(x * s.scaleX))
	x1 := max(int(math.Ceil((x+w)*s.scaleX)), x0+1)
	y0 := int(math.Floor(y * s.scaleY))
	y1 := max(int(math.Ceil((y+h)*s.scaleY)), y0+1)

	// rows above the world belong to the HUD
	r, c := glyph(ref)
	top := max(y0+s.top, s.top)
	s.dst.Fill(core.NewRect(x0, top, x1-x0, y1+s.top-top), r, c)

	if ref.ID == SpritePlayer || ref.ID == SpritePlayerFlying {
		s.drawEyes(ref, x0, x1, y0+s.top)
	}
}

func (s *ScreenRenderer) drawEyes(ref SpriteRef, x0, x1, row int) {
	if row < s.top {
		return
	}
	eye := x1 - 2
	if ref.ID == SpritePlayer && Facing(ref.Frame) == FacingLeft {
		eye = x0 + 1
	}
	s.dst.SetColored(eye, row, '•', core.ColorBrightWhite)
}

func glyph(ref SpriteRef) (rune, core.Color) {
	switch ref.ID {
	case SpritePlatform:
		return PlatformChar, core.ColorBrightGreen
	case SpriteHorizontalPlatform:
		return PlatformChar, core.ColorBrightBlue
	case SpriteVerticalPlatform:
		return PlatformChar, core.ColorCyan
	case SpriteBreakingPlatform:
		switch ref.Frame {
		case 0:
			return PlatformChar, core.ColorOrange
		case 1:
			return CrackedChar1, core.ColorOrange
		case 2:
			return CrackedChar2, core.ColorOrange
		default:
			return CrackedChar3, core.ColorOrange
		}
	case SpriteDarkPlatform:
		return DarkChar, core.ColorGray
	case SpriteSpring:
		if ref.Frame == 1 {
			return CoilChar, core.ColorWhite
		}
		return SpringChar, core.ColorWhite
	case SpriteTrampoline:
		if ref.Frame == 1 {
			return CoilChar, core.ColorBrightMagenta
		}
		return '▬', core.ColorBrightMagenta
	case SpritePropeller:
		return PropChar, core.ColorBrightYellow
	case SpriteJetpack:
		return JetChar, core.ColorBrightRed
	case SpriteMonster:
		if ref.Frame == 1 {
			return 'x', core.ColorGray
		}
		return MonsterChar, core.ColorRed
	case SpriteHoveringMonster:
		return MonsterChar, core.ColorMagenta
	case SpritePlayer:
		return PlayerChar, core.ColorYellow
	case SpritePlayerFlying:
		return PlayerChar, core.ColorBrightYellow
	default:
		return '?', core.ColorDefault
	}
}
