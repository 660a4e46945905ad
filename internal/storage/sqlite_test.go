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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveHighScore("unicorn", 321); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	best, err := store.HighScore("unicorn")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if best != 321 {
		t.Errorf("Expected high score 321 after reopen, got %d", best)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("unicorn", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different game
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("unicorn", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "unicorn" {
			t.Errorf("scores[%d] belongs to %q", i, scores[i].GameID)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("scores[%d] has no timestamp", i)
		}
	}

	limited, err := store.TopScores("unicorn", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 scores with limit, got %d", len(limited))
	}
}

func TestSaveHighScore(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		score   int
		wantNew bool
		best    int
	}{
		{0, false, 0},
		{150, true, 150},
		{100, false, 150},
		{150, false, 150}, // Ties are not a new best
		{151, true, 151},
	}
	for _, tt := range tests {
		got, err := store.SaveHighScore("unicorn", tt.score)
		if err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", tt.score, err)
		}
		if got != tt.wantNew {
			t.Errorf("SaveHighScore(%d) = %v, expected %v", tt.score, got, tt.wantNew)
		}
		best, err := store.HighScore("unicorn")
		if err != nil {
			t.Fatalf("HighScore() failed: %v", err)
		}
		if best != tt.best {
			t.Errorf("after %d best = %d, expected %d", tt.score, best, tt.best)
		}
	}

	other, err := store.HighScore("other")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if other != 0 {
		t.Errorf("Expected 0 for a game without scores, got %d", other)
	}
}

func TestKeeper(t *testing.T) {
	store := openTestStore(t)
	k := store.Keeper("unicorn")

	saved, err := k.SaveHighScore(42)
	if err != nil || !saved {
		t.Fatalf("SaveHighScore(42) = %v, %v", saved, err)
	}
	best, err := k.HighScore()
	if err != nil || best != 42 {
		t.Errorf("HighScore() = %d, %v", best, err)
	}
	if saved, _ := store.Keeper("other").SaveHighScore(10); !saved {
		t.Error("keepers for different games should not share a best")
	}
}

func TestSelectedSkin(t *testing.T) {
	store := openTestStore(t)

	skin, err := store.SelectedSkin()
	if err != nil {
		t.Fatalf("SelectedSkin() failed: %v", err)
	}
	if skin != 0 {
		t.Errorf("Expected default skin 0, got %d", skin)
	}

	if err := store.SaveSelectedSkin(3); err != nil {
		t.Fatalf("SaveSelectedSkin() failed: %v", err)
	}
	if err := store.SaveSelectedSkin(2); err != nil {
		t.Fatalf("SaveSelectedSkin() failed: %v", err)
	}
	skin, err = store.SelectedSkin()
	if err != nil {
		t.Fatalf("SelectedSkin() failed: %v", err)
	}
	if skin != 2 {
		t.Errorf("Expected skin 2, got %d", skin)
	}

	// Garbage falls back to the default
	if err := store.SetSetting(SettingSkin, "rainbow"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}
	if skin, _ := store.SelectedSkin(); skin != 0 {
		t.Errorf("Expected fallback skin 0, got %d", skin)
	}
}

func TestMuted(t *testing.T) {
	store := openTestStore(t)

	if muted, err := store.Muted(); err != nil || muted {
		t.Fatalf("Muted() = %v, %v; want false, nil", muted, err)
	}
	if err := store.SaveMuted(true); err != nil {
		t.Fatalf("SaveMuted() failed: %v", err)
	}
	if muted, err := store.Muted(); err != nil || !muted {
		t.Errorf("Muted() = %v, %v; want true, nil", muted, err)
	}

	if err := store.SetSetting(SettingMuted, "loud"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}
	if muted, _ := store.Muted(); muted {
		t.Error("garbage value should read as unmuted")
	}
}

func TestSettings(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Setting("muted"); err != nil || ok {
		t.Fatalf("missing setting: ok=%v err=%v", ok, err)
	}
	if err := store.SetSetting("muted", "true"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}
	value, ok, err := store.Setting("muted")
	if err != nil || !ok || value != "true" {
		t.Errorf("Setting() = %q, %v, %v", value, ok, err)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("unicorn", 100)     //nolint:errcheck
	store.SaveHighScore("unicorn", 100) //nolint:errcheck
	store.SaveScore("other", 200)       //nolint:errcheck

	if err := store.ClearScores("unicorn"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("unicorn", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if best, _ := store.HighScore("unicorn"); best != 0 {
		t.Errorf("Expected best 0 after clear, got %d", best)
	}
	if other, _ := store.TopScores("other", 10); len(other) != 1 {
		t.Errorf("Expected other game's score to survive, got %d", len(other))
	}
}

func TestGetGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("unicorn")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty game: %+v", empty)
	}

	for _, score := range []int{100, 300} {
		store.SaveScore("unicorn", score) //nolint:errcheck
	}
	store.SaveHighScore("unicorn", 500) //nolint:errcheck

	stats, err := store.GetGameStats("unicorn")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, expected 400", stats.TotalScore)
	}
	if stats.HighScore != 500 {
		t.Errorf("HighScore = %d, expected the saved best 500", stats.HighScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
