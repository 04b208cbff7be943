package storage

import (
	"testing"

	"github.com/google/uuid"
)

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("jump", s, s*4); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("jump_space", 500, 2000); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("jump", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("got %d scores, expected 3", len(scores))
	}

	expected := []int{200, 100, 50}
	for i, e := range scores {
		if e.Score != expected[i] {
			t.Errorf("scores[%d] = %d, expected %d", i, e.Score, expected[i])
		}
		if e.Height != expected[i]*4 {
			t.Errorf("scores[%d] height = %d, expected %d", i, e.Height, expected[i]*4)
		}
		if e.Mode != "jump" {
			t.Errorf("scores[%d] mode = %q, expected jump", i, e.Mode)
		}
	}

	space, err := store.TopScores("jump_space", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(space) != 1 {
		t.Errorf("got %d space scores, expected 1", len(space))
	}
}

func TestStoreRunIDs(t *testing.T) {
	store := openTestStore(t)

	a, err := store.SaveScore("jump", 10, 0)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	b, _ := store.SaveScore("jump", 10, 0)

	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("run id %q is not a uuid: %v", a, err)
	}
	if a == b {
		t.Error("expected distinct run ids")
	}

	scores, _ := store.TopScores("jump", 10)
	if len(scores) != 2 || scores[0].RunID != a || scores[1].RunID != b {
		t.Errorf("ties should keep insertion order, got %+v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("jump", (i+1)*100, 0)
	}

	scores, err := store.TopScores("jump", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("got %d scores with limit, expected 3", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	store.SaveScore("many", 1, 0)
	all, _ := store.TopScores("jump", 0)
	if len(all) != 5 {
		t.Errorf("got %d scores with default limit, expected 5", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("jump")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("got high score %d for empty mode, expected 0", high)
	}

	store.SaveScore("jump", 100, 0)
	store.SaveScore("jump", 300, 0)
	store.SaveScore("jump", 200, 0)

	high, err = store.HighScore("jump")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("got high score %d, expected 300", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("jump", 100, 0)
	store.RecordRun("jump", 200, 0)
	store.SaveScore("jump_dark", 300, 0)

	if err := store.ClearScores("jump"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("jump", 10); len(scores) != 0 {
		t.Errorf("got %d jump scores after clear, expected 0", len(scores))
	}
	if save, _ := store.LoadSave("jump"); save != nil {
		t.Errorf("got progress %+v after clear, expected none", save)
	}
	if scores, _ := store.TopScores("jump_dark", 10); len(scores) != 1 {
		t.Error("jump_dark scores should not be affected by clearing jump")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("jump")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("got %+v for empty mode", stats)
	}

	store.SaveScore("jump", 100, 0)
	store.SaveScore("jump", 300, 0)

	stats, err = store.Stats("jump")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("got %+v, expected 2 runs, high 300, avg 200", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("expected last played time")
	}
}
