package storage

import "testing"

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, lane := range []int{10, 5, 20} {
		if _, err := store.SaveScore("normal", lane, "chicken"); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("hard", 50, "cow"); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Lane != 20 || scores[1].Lane != 10 || scores[2].Lane != 5 {
		t.Errorf("Scores not in descending order: %+v", scores)
	}
	if scores[0].Skin != "chicken" || scores[0].Mode != "normal" {
		t.Errorf("Unexpected entry fields: %+v", scores[0])
	}

	hard, _ := store.TopScores("hard", 10)
	if len(hard) != 1 {
		t.Errorf("Expected 1 hard score, got %d", len(hard))
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		store.SaveScore("normal", (i+1)*10, "")
	}

	scores, err := store.TopScores("normal", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 || scores[0].Lane != 50 || scores[2].Lane != 30 {
		t.Errorf("Unexpected top 3: %+v", scores)
	}

	all, _ := store.TopScores("normal", 0)
	if len(all) != 5 {
		t.Errorf("Default limit returned %d, want 5", len(all))
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty table, got %d", best)
	}

	store.SaveScore("normal", 7, "")
	store.SaveScore("normal", 31, "")
	store.SaveScore("normal", 12, "")

	if best, _ := store.HighScore("normal"); best != 31 {
		t.Errorf("HighScore() = %d, want 31", best)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("normal", 1, "")
	store.SaveScore("normal", 2, "")
	store.SaveScore("easy", 3, "")

	if err := store.ClearScores("normal"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("normal", 10); len(scores) != 0 {
		t.Errorf("Expected 0 normal scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("easy", 10); len(scores) != 1 {
		t.Error("Easy scores should not be affected by clearing normal")
	}
}

func TestGetGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("normal")
	if err != nil {
		t.Fatalf("GetGameStats() on empty table failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Unexpected empty stats: %+v", empty)
	}

	store.SaveScore("normal", 10, "")
	store.SaveScore("normal", 20, "")

	stats, err := store.GetGameStats("normal")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestLane != 20 || stats.AvgLane != 15 || stats.TotalLanes != 30 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestModes(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("normal", 1, "")
	store.SaveScore("easy", 1, "")
	store.SaveScore("normal", 2, "")

	modes, err := store.Modes()
	if err != nil {
		t.Fatalf("Modes() failed: %v", err)
	}
	if len(modes) != 2 || modes[0] != "easy" || modes[1] != "normal" {
		t.Errorf("Modes() = %v, want [easy normal]", modes)
	}
}
