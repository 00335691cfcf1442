package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.Save("breakout", score, false); err != nil {
			t.Fatalf("Save() failed: %v", err)
		}
	}
	if _, err := store.Save("tetris", 500, false); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	scores, err := store.TopScores("breakout", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "breakout" {
			t.Errorf("scores[%d] game = %q", i, scores[i].GameID)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		store.Save("tetris", (i+1)*100, false)
	}

	scores, err := store.TopScores("tetris", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limits fall back to 10.
	scores, _ = store.TopScores("tetris", 0)
	if len(scores) != 5 {
		t.Errorf("Expected all 5 scores, got %d", len(scores))
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)
	first, _ := store.Save("breakout", 300, false)
	second, _ := store.Save("breakout", 300, true)

	scores, err := store.AllScores("breakout")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if scores[0].ID != first || scores[1].ID != second {
		t.Errorf("tie order = %d,%d, expected %d,%d", scores[0].ID, scores[1].ID, first, second)
	}
	if scores[0].Won || !scores[1].Won {
		t.Error("won flag not round-tripped")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("breakout_survival")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.Save("breakout_survival", 100, false)
	store.Save("breakout_survival", 300, true)
	store.Save("breakout_survival", 200, false)

	high, _ = store.HighScore("breakout_survival")
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	store.Save("breakout", 100, false)
	store.Save("breakout", 200, false)
	store.Save("tetris", 300, false)

	if err := store.ClearScores("breakout"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.AllScores("breakout"); len(scores) != 0 {
		t.Errorf("Expected 0 breakout scores after clear, got %d", len(scores))
	}
	if scores, _ := store.AllScores("tetris"); len(scores) != 1 {
		t.Error("tetris scores should not be affected")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("tetris")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.Save("breakout", 100, false)
	store.Save("breakout", 300, true)
	store.Save("tetris", 800, false)

	st, err := store.Stats("breakout")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.GamesCount != 2 || st.Wins != 1 || st.HighScore != 300 || st.AvgScore != 200 {
		t.Errorf("stats = %+v", st)
	}
	if st.LastPlayed.IsZero() {
		t.Error("last played should be set")
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 || all["tetris"].HighScore != 800 {
		t.Errorf("all stats = %+v", all)
	}
}

func TestStoreReopenKeepsResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := first.Save("tetris", 800, false); err != nil {
		t.Fatalf("Save: %v", err)
	}
	first.Close()

	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	var version int
	if err := second.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil || version != len(migrations) {
		t.Errorf("user_version = %d (%v), want %d", version, err, len(migrations))
	}
	if best, err := second.HighScore("tetris"); err != nil || best != 800 {
		t.Errorf("HighScore after reopen = %d, %v", best, err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in, want string
	}{
		{"", DefaultPath()},
		{"~/x/scores.db", filepath.Join(home, "x", "scores.db")},
		{"./scores.db", "./scores.db"},
		{"~other/scores.db", "~other/scores.db"},
	}
	for _, tt := range tests {
		got, err := expandHome(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("expandHome(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}
