package store

import (
	"context"
	"sync"
	"testing"

	"github.com/edugames-catalog/internal/domain"
)

func TestCreateAndGetGame(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	insert := domain.InsertGame{
		ID:          "test-game",
		Title:       "Test Game",
		Description: "A game for testing",
		Category:    "math",
		Icon:        "calculator",
		Difficulty:  "Beginner",
		AgeGroup:    "Ages 8+",
		LearningBenefits: []string{
			"Benefit one",
		},
	}

	created, err := s.CreateGame(ctx, insert)
	if err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}
	if created.PlayCount != 0 {
		t.Errorf("created game PlayCount = %d; want 0", created.PlayCount)
	}

	got, err := s.GetGame(ctx, "test-game")
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if got == nil {
		t.Fatal("GetGame returned nil for existing game")
	}
	if got.Title != insert.Title || got.Description != insert.Description || got.Category != insert.Category {
		t.Errorf("GetGame = %+v; want fields from %+v", got, insert)
	}
	if got.PlayCount != 0 {
		t.Errorf("fetched game PlayCount = %d; want 0", got.PlayCount)
	}
	if len(got.LearningBenefits) != 1 {
		t.Errorf("fetched game LearningBenefits = %v; want 1 item", got.LearningBenefits)
	}
	if got.Instructions != nil {
		t.Errorf("fetched game Instructions = %v; want nil for absent list", got.Instructions)
	}
}

func TestGetGameAbsent(t *testing.T) {
	s := NewMemStore()

	got, err := s.GetGame(context.Background(), "does-not-exist")
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if got != nil {
		t.Errorf("GetGame for absent id = %+v; want nil", got)
	}
}

func TestCreateGameCollisionLastWriteWins(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if _, err := s.CreateGame(ctx, domain.InsertGame{ID: "dup", Title: "First"}); err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}
	if _, err := s.CreateGame(ctx, domain.InsertGame{ID: "dup", Title: "Second"}); err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}

	got, err := s.GetGame(ctx, "dup")
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if got.Title != "Second" {
		t.Errorf("game title after collision = %q; want %q", got.Title, "Second")
	}

	games, err := s.GetGames(ctx)
	if err != nil {
		t.Fatalf("GetGames failed: %v", err)
	}
	if len(games) != 1 {
		t.Errorf("GetGames returned %d games after collision; want 1", len(games))
	}
}

func TestIncrementGamePlayCountSequential(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if _, err := s.CreateGame(ctx, domain.InsertGame{ID: "g1", Title: "G1"}); err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}

	const n = 25
	for i := 0; i < n; i++ {
		if err := s.IncrementGamePlayCount(ctx, "g1"); err != nil {
			t.Fatalf("IncrementGamePlayCount failed: %v", err)
		}
	}

	got, err := s.GetGame(ctx, "g1")
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if got.PlayCount != n {
		t.Errorf("PlayCount after %d increments = %d; want %d", n, got.PlayCount, n)
	}
}

func TestIncrementGamePlayCountConcurrent(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if _, err := s.CreateGame(ctx, domain.InsertGame{ID: "g1", Title: "G1"}); err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}

	const n = 200
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if err := s.IncrementGamePlayCount(ctx, "g1"); err != nil {
				t.Errorf("IncrementGamePlayCount failed: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := s.GetGame(ctx, "g1")
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if got.PlayCount != n {
		t.Errorf("PlayCount after %d concurrent increments = %d; want %d (lost updates)", n, got.PlayCount, n)
	}
}

func TestIncrementGamePlayCountMissingGameIsNoOp(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if err := s.IncrementGamePlayCount(ctx, "missing"); err != nil {
		t.Fatalf("IncrementGamePlayCount on missing game returned error: %v", err)
	}

	games, err := s.GetGames(ctx)
	if err != nil {
		t.Fatalf("GetGames failed: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("store has %d games after no-op increment; want 0", len(games))
	}
}

func TestGetGamesByCategory(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	seedGames := []domain.InsertGame{
		{ID: "a", Title: "A", Category: "math"},
		{ID: "b", Title: "B", Category: "logic"},
		{ID: "c", Title: "C", Category: "math"},
	}
	for _, g := range seedGames {
		if _, err := s.CreateGame(ctx, g); err != nil {
			t.Fatalf("CreateGame failed: %v", err)
		}
	}

	t.Run("matching category", func(t *testing.T) {
		games, err := s.GetGamesByCategory(ctx, "math")
		if err != nil {
			t.Fatalf("GetGamesByCategory failed: %v", err)
		}
		if len(games) != 2 {
			t.Fatalf("GetGamesByCategory(math) returned %d games; want 2", len(games))
		}
		for _, g := range games {
			if g.Category != "math" {
				t.Errorf("game %s has category %q; want math", g.ID, g.Category)
			}
		}
	})

	t.Run("case sensitive match", func(t *testing.T) {
		games, err := s.GetGamesByCategory(ctx, "Math")
		if err != nil {
			t.Fatalf("GetGamesByCategory failed: %v", err)
		}
		if len(games) != 0 {
			t.Errorf("GetGamesByCategory(Math) returned %d games; want 0 (case-sensitive)", len(games))
		}
	})

	t.Run("no matches is empty not error", func(t *testing.T) {
		games, err := s.GetGamesByCategory(ctx, "science")
		if err != nil {
			t.Fatalf("GetGamesByCategory failed: %v", err)
		}
		if games == nil || len(games) != 0 {
			t.Errorf("GetGamesByCategory(science) = %v; want empty slice", games)
		}
	})
}

func TestSearchGames(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	seedGames := []domain.InsertGame{
		{ID: "a", Title: "Math Master", Description: "Arithmetic drills", Category: "math"},
		{ID: "b", Title: "Word Wizard", Description: "Spelling and MATH trivia", Category: "vocabulary"},
		{ID: "c", Title: "Memory Quest", Description: "Recall exercises", Category: "memory"},
	}
	for _, g := range seedGames {
		if _, err := s.CreateGame(ctx, g); err != nil {
			t.Fatalf("CreateGame failed: %v", err)
		}
	}

	t.Run("empty query matches all", func(t *testing.T) {
		games, err := s.SearchGames(ctx, "")
		if err != nil {
			t.Fatalf("SearchGames failed: %v", err)
		}
		if len(games) != 3 {
			t.Errorf("SearchGames(\"\") returned %d games; want 3", len(games))
		}
	})

	t.Run("case insensitive across title description category", func(t *testing.T) {
		games, err := s.SearchGames(ctx, "mAtH")
		if err != nil {
			t.Fatalf("SearchGames failed: %v", err)
		}
		// "Math Master" by title, "MATH trivia" by description, "math" by category
		if len(games) != 2 {
			t.Fatalf("SearchGames(mAtH) returned %d games; want 2", len(games))
		}
	})

	t.Run("description substring", func(t *testing.T) {
		games, err := s.SearchGames(ctx, "recall")
		if err != nil {
			t.Fatalf("SearchGames failed: %v", err)
		}
		if len(games) != 1 || games[0].ID != "c" {
			t.Errorf("SearchGames(recall) = %v; want only game c", games)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		games, err := s.SearchGames(ctx, "chemistry")
		if err != nil {
			t.Fatalf("SearchGames failed: %v", err)
		}
		if len(games) != 0 {
			t.Errorf("SearchGames(chemistry) returned %d games; want 0", len(games))
		}
	})
}

func TestCreateUserDefaults(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	user, err := s.CreateUser(ctx, domain.InsertUser{
		Username: "tester",
		Email:    "tester@example.com",
		Password: "secret",
		FullName: "Test Er",
		AgeGroup: "College (18+)",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.ID == "" {
		t.Error("created user has empty id")
	}
	if user.TotalScore != 0 {
		t.Errorf("created user TotalScore = %d; want 0", user.TotalScore)
	}
	if user.Level != 1 {
		t.Errorf("created user Level = %d; want 1", user.Level)
	}
	if user.CreatedAt.IsZero() {
		t.Error("created user has zero CreatedAt")
	}

	got, err := s.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got == nil || got.Username != "tester" {
		t.Errorf("GetUser = %+v; want username tester", got)
	}
}

func TestGetUserByUsernameAndEmail(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if _, err := s.CreateUser(ctx, domain.InsertUser{Username: "alpha", Email: "alpha@example.com"}); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	byName, err := s.GetUserByUsername(ctx, "alpha")
	if err != nil {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}
	if byName == nil || byName.Username != "alpha" {
		t.Errorf("GetUserByUsername(alpha) = %+v; want user alpha", byName)
	}

	// Exact case-sensitive match only
	byUpper, err := s.GetUserByUsername(ctx, "Alpha")
	if err != nil {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}
	if byUpper != nil {
		t.Errorf("GetUserByUsername(Alpha) = %+v; want nil (case-sensitive)", byUpper)
	}

	byEmail, err := s.GetUserByEmail(ctx, "alpha@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if byEmail == nil || byEmail.Username != "alpha" {
		t.Errorf("GetUserByEmail = %+v; want user alpha", byEmail)
	}

	missing, err := s.GetUserByEmail(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if missing != nil {
		t.Errorf("GetUserByEmail for unknown address = %+v; want nil", missing)
	}
}

func TestCreateCategoryZeroesGameCount(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	created, err := s.CreateCategory(ctx, domain.InsertCategory{
		ID:          "music",
		Name:        "Music",
		Description: "Rhythm and pitch games",
		Icon:        "note",
		Color:       "accent",
	})
	if err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}
	if created.GameCount != 0 {
		t.Errorf("created category GameCount = %d; want 0", created.GameCount)
	}

	got, err := s.GetCategory(ctx, "music")
	if err != nil {
		t.Fatalf("GetCategory failed: %v", err)
	}
	if got == nil || got.Name != "Music" {
		t.Errorf("GetCategory = %+v; want Music", got)
	}

	missing, err := s.GetCategory(ctx, "absent")
	if err != nil {
		t.Fatalf("GetCategory failed: %v", err)
	}
	if missing != nil {
		t.Errorf("GetCategory(absent) = %+v; want nil", missing)
	}
}

func TestGetLeaderboardGlobalBoard(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	inserts := []domain.InsertLeaderboardEntry{
		{UserID: "u1", Score: 100, Period: domain.PeriodAllTime},
		{UserID: "u2", Score: 300, Period: domain.PeriodAllTime},
		{UserID: "u3", Score: 200, Period: domain.PeriodAllTime},
		{UserID: "u4", Score: 999, Category: "math", Period: domain.PeriodAllTime},
		{UserID: "u5", Score: 500, Period: domain.PeriodWeekly},
	}
	for _, e := range inserts {
		if _, err := s.CreateLeaderboardEntry(ctx, e); err != nil {
			t.Fatalf("CreateLeaderboardEntry failed: %v", err)
		}
	}

	entries, err := s.GetLeaderboard(ctx, "", domain.PeriodAllTime)
	if err != nil {
		t.Fatalf("GetLeaderboard failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("global all-time board has %d entries; want 3", len(entries))
	}
	wantOrder := []string{"u2", "u3", "u1"}
	for i, want := range wantOrder {
		if entries[i].UserID != want {
			t.Errorf("entry %d userId = %s; want %s", i, entries[i].UserID, want)
		}
	}
	for _, e := range entries {
		if e.Category != "" {
			t.Errorf("global board contains categorized entry %+v", e)
		}
	}
}

func TestGetLeaderboardCategoryAndPeriodFilter(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	inserts := []domain.InsertLeaderboardEntry{
		{UserID: "u1", Score: 50, Category: "math", Period: domain.PeriodWeekly},
		{UserID: "u2", Score: 80, Category: "math", Period: domain.PeriodWeekly},
		{UserID: "u3", Score: 90, Category: "math", Period: domain.PeriodDaily},
		{UserID: "u4", Score: 70, Category: "logic", Period: domain.PeriodWeekly},
		{UserID: "u5", Score: 60, Period: domain.PeriodWeekly},
	}
	for _, e := range inserts {
		if _, err := s.CreateLeaderboardEntry(ctx, e); err != nil {
			t.Fatalf("CreateLeaderboardEntry failed: %v", err)
		}
	}

	entries, err := s.GetLeaderboard(ctx, "math", domain.PeriodWeekly)
	if err != nil {
		t.Fatalf("GetLeaderboard failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("math weekly board has %d entries; want 2", len(entries))
	}
	if entries[0].UserID != "u2" || entries[1].UserID != "u1" {
		t.Errorf("math weekly order = %s,%s; want u2,u1", entries[0].UserID, entries[1].UserID)
	}
	for _, e := range entries {
		if e.Category != "math" || e.Period != domain.PeriodWeekly {
			t.Errorf("filter leaked entry %+v", e)
		}
	}
}

func TestGetLeaderboardDefaultPeriodAndTies(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	// Equal scores: insertion order should be preserved across reads
	inserts := []domain.InsertLeaderboardEntry{
		{UserID: "first", Score: 100, Period: domain.PeriodAllTime},
		{UserID: "second", Score: 100, Period: domain.PeriodAllTime},
		{UserID: "third", Score: 100, Period: domain.PeriodAllTime},
	}
	for _, e := range inserts {
		if _, err := s.CreateLeaderboardEntry(ctx, e); err != nil {
			t.Fatalf("CreateLeaderboardEntry failed: %v", err)
		}
	}

	for i := 0; i < 5; i++ {
		entries, err := s.GetLeaderboard(ctx, "", "")
		if err != nil {
			t.Fatalf("GetLeaderboard failed: %v", err)
		}
		if len(entries) != 3 {
			t.Fatalf("default-period board has %d entries; want 3", len(entries))
		}
		if entries[0].UserID != "first" || entries[1].UserID != "second" || entries[2].UserID != "third" {
			t.Errorf("tie order on read %d = %s,%s,%s; want insertion order",
				i, entries[0].UserID, entries[1].UserID, entries[2].UserID)
		}
	}
}

func TestCreateLeaderboardEntryDefaults(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	entry, err := s.CreateLeaderboardEntry(ctx, domain.InsertLeaderboardEntry{
		UserID: "u1",
		Score:  42,
		Period: domain.PeriodDaily,
	})
	if err != nil {
		t.Fatalf("CreateLeaderboardEntry failed: %v", err)
	}
	if entry.ID == "" {
		t.Error("created entry has empty id")
	}
	if entry.Rank != 0 {
		t.Errorf("created entry Rank = %d; want 0 (rank is derived at read time)", entry.Rank)
	}
	if entry.Category != "" {
		t.Errorf("created entry Category = %q; want empty (global)", entry.Category)
	}
	if entry.CreatedAt.IsZero() {
		t.Error("created entry has zero CreatedAt")
	}
}

func TestCreateContactMessage(t *testing.T) {
	s := NewMemStore()

	message, err := s.CreateContactMessage(context.Background(), domain.InsertContactMessage{
		Name:    "Jamie",
		Email:   "jamie@example.com",
		Subject: "Feedback",
		Message: "Great games!",
	})
	if err != nil {
		t.Fatalf("CreateContactMessage failed: %v", err)
	}
	if message.ID == "" {
		t.Error("created message has empty id")
	}
	if message.CreatedAt.IsZero() {
		t.Error("created message has zero CreatedAt")
	}
	if message.Email != "jamie@example.com" {
		t.Errorf("created message Email = %q; want jamie@example.com", message.Email)
	}
}

func TestSeedSampleData(t *testing.T) {
	s := NewMemStore()
	s.Seed()
	ctx := context.Background()

	games, err := s.GetGames(ctx)
	if err != nil {
		t.Fatalf("GetGames failed: %v", err)
	}
	if len(games) != 6 {
		t.Errorf("seeded store has %d games; want 6", len(games))
	}

	categories, err := s.GetCategories(ctx)
	if err != nil {
		t.Fatalf("GetCategories failed: %v", err)
	}
	if len(categories) != 6 {
		t.Errorf("seeded store has %d categories; want 6", len(categories))
	}

	game, err := s.GetGame(ctx, "math-master")
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if game == nil || game.PlayCount != 15420 {
		t.Errorf("seeded math-master = %+v; want playCount 15420", game)
	}

	entries, err := s.GetLeaderboard(ctx, "", domain.PeriodAllTime)
	if err != nil {
		t.Fatalf("GetLeaderboard failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("seeded global board has %d entries; want 3", len(entries))
	}
	wantUsers := []string{"user1", "user2", "user3"}
	for i, want := range wantUsers {
		if entries[i].UserID != want {
			t.Errorf("seeded board position %d = %s; want %s", i, entries[i].UserID, want)
		}
	}

	// Seeding twice must not duplicate records
	s.Seed()
	games, err = s.GetGames(ctx)
	if err != nil {
		t.Fatalf("GetGames failed: %v", err)
	}
	if len(games) != 6 {
		t.Errorf("store has %d games after double seed; want 6", len(games))
	}
}

func TestStats(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if _, err := s.CreateGame(ctx, domain.InsertGame{ID: "g1", Title: "G1"}); err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}
	if _, err := s.CreateGame(ctx, domain.InsertGame{ID: "g2", Title: "G2"}); err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := s.IncrementGamePlayCount(ctx, "g1"); err != nil {
			t.Fatalf("IncrementGamePlayCount failed: %v", err)
		}
	}
	if _, err := s.CreateUser(ctx, domain.InsertUser{Username: "u"}); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if _, err := s.CreateContactMessage(ctx, domain.InsertContactMessage{Name: "n", Email: "e", Subject: "s", Message: "m"}); err != nil {
		t.Fatalf("CreateContactMessage failed: %v", err)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Games != 2 {
		t.Errorf("stats.Games = %d; want 2", stats.Games)
	}
	if stats.TotalPlays != 3 {
		t.Errorf("stats.TotalPlays = %d; want 3", stats.TotalPlays)
	}
	if stats.Users != 1 {
		t.Errorf("stats.Users = %d; want 1", stats.Users)
	}
	if stats.ContactMessages != 1 {
		t.Errorf("stats.ContactMessages = %d; want 1", stats.ContactMessages)
	}
}
