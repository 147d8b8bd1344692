package store

import (
	"time"

	"github.com/edugames-catalog/internal/domain"
)

// Seed populates the store with the static sample catalog: six
// categories, six games, three users and the global all-time
// leaderboard. Records are inserted verbatim, bypassing the insert
// defaults, so seeded play counts and ranks are preserved.
func (s *MemStore) Seed() {
	now := time.Now()

	categories := []domain.Category{
		{
			ID:          "math",
			Name:        "Mathematics",
			Description: "Arithmetic, algebra, geometry, and problem-solving games",
			Icon:        "calculator",
			GameCount:   25,
			Color:       "primary",
		},
		{
			ID:          "vocabulary",
			Name:        "Vocabulary",
			Description: "Word games, spelling challenges, and language skills",
			Icon:        "book-open",
			GameCount:   30,
			Color:       "secondary",
		},
		{
			ID:          "memory",
			Name:        "Memory",
			Description: "Pattern recognition, recall exercises, and brain training",
			Icon:        "brain",
			GameCount:   20,
			Color:       "accent",
		},
		{
			ID:          "logic",
			Name:        "Logic",
			Description: "Critical thinking, reasoning, and problem-solving puzzles",
			Icon:        "puzzle",
			GameCount:   35,
			Color:       "primary",
		},
		{
			ID:          "language",
			Name:        "Language",
			Description: "Foreign language learning and communication skills",
			Icon:        "globe",
			GameCount:   40,
			Color:       "secondary",
		},
		{
			ID:          "science",
			Name:        "Science",
			Description: "Physics, chemistry, biology, and scientific method games",
			Icon:        "atom",
			GameCount:   15,
			Color:       "accent",
		},
	}

	s.categoriesMu.Lock()
	for i := range categories {
		category := categories[i]
		if _, exists := s.categories[category.ID]; !exists {
			s.categoryIDs = append(s.categoryIDs, category.ID)
		}
		s.categories[category.ID] = &category
	}
	s.categoriesMu.Unlock()

	games := []domain.Game{
		{
			ID:          "math-master",
			Title:       "Math Master",
			Description: "Challenge your arithmetic skills with fun number puzzles and equations. This game helps improve calculation speed and mental math abilities through engaging gameplay.",
			Category:    "math",
			Icon:        "calculator",
			Difficulty:  "Beginner",
			AgeGroup:    "Ages 8+",
			LearningBenefits: []string{
				"Improves arithmetic calculation speed",
				"Enhances mental math abilities",
				"Builds number sense and pattern recognition",
			},
			Instructions: []string{
				"Choose your difficulty level (Easy, Medium, or Hard)",
				"Solve the math problems as quickly as possible",
				"Use the number pad or keyboard to enter answers",
				"Earn points for correct answers and speed",
				"Try to beat your high score!",
			},
			PlayCount: 15420,
		},
		{
			ID:          "word-wizard",
			Title:       "Word Wizard",
			Description: "Expand your vocabulary with engaging word games and spelling challenges.",
			Category:    "vocabulary",
			Icon:        "book-open",
			Difficulty:  "Intermediate",
			AgeGroup:    "Ages 10+",
			LearningBenefits: []string{
				"Expands vocabulary knowledge",
				"Improves spelling accuracy",
				"Enhances reading comprehension",
			},
			Instructions: []string{
				"Read the definition or context clue",
				"Choose the correct word from multiple options",
				"Complete word puzzles and anagrams",
				"Progress through increasing difficulty levels",
			},
			PlayCount: 12890,
		},
		{
			ID:          "memory-quest",
			Title:       "Memory Quest",
			Description: "Boost your memory with pattern recognition and recall exercises.",
			Category:    "memory",
			Icon:        "brain",
			Difficulty:  "Beginner",
			AgeGroup:    "Ages 6+",
			LearningBenefits: []string{
				"Strengthens working memory",
				"Improves pattern recognition",
				"Enhances concentration skills",
			},
			Instructions: []string{
				"Watch the sequence of patterns or colors",
				"Repeat the sequence in the correct order",
				"Sequences become longer as you progress",
				"Stay focused and remember the patterns",
			},
			PlayCount: 9650,
		},
		{
			ID:          "logic-puzzle",
			Title:       "Logic Puzzle",
			Description: "Test your logical thinking with mind-bending puzzles.",
			Category:    "logic",
			Icon:        "puzzle",
			Difficulty:  "Advanced",
			AgeGroup:    "Ages 12+",
			LearningBenefits: []string{
				"Develops critical thinking",
				"Improves problem-solving skills",
				"Enhances logical reasoning",
			},
			Instructions: []string{
				"Analyze the given puzzle or riddle",
				"Use logical deduction to find the solution",
				"Consider all possible outcomes",
				"Work step by step through complex problems",
			},
			PlayCount: 8730,
		},
		{
			ID:          "language-builder",
			Title:       "Language Builder",
			Description: "Learn new languages through interactive exercises.",
			Category:    "language",
			Icon:        "globe",
			Difficulty:  "Beginner",
			AgeGroup:    "Ages 8+",
			LearningBenefits: []string{
				"Builds foreign language vocabulary",
				"Improves pronunciation",
				"Develops cultural awareness",
			},
			Instructions: []string{
				"Listen to native speaker pronunciations",
				"Practice speaking with voice recognition",
				"Complete translation exercises",
				"Learn common phrases and expressions",
			},
			PlayCount: 11250,
		},
		{
			ID:          "speed-math",
			Title:       "Speed Math",
			Description: "Race against time in rapid math challenges.",
			Category:    "math",
			Icon:        "zap",
			Difficulty:  "Intermediate",
			AgeGroup:    "Ages 10+",
			LearningBenefits: []string{
				"Increases calculation speed",
				"Builds mental math confidence",
				"Improves number fluency",
			},
			Instructions: []string{
				"Solve as many problems as possible before time runs out",
				"Use mental math strategies for speed",
				"Compete against your previous best times",
				"Unlock new difficulty levels",
			},
			PlayCount: 7890,
		},
	}

	s.gamesMu.Lock()
	for i := range games {
		game := games[i]
		if _, exists := s.games[game.ID]; !exists {
			s.gameIDs = append(s.gameIDs, game.ID)
		}
		s.games[game.ID] = &game
	}
	s.gamesMu.Unlock()

	users := []domain.User{
		{
			ID:         "user1",
			Username:   "alexchen",
			Email:      "alex@example.com",
			Password:   "hashed_password",
			FullName:   "Alex Chen",
			AgeGroup:   "High School (15-18)",
			TotalScore: 25840,
			Level:      45,
			CreatedAt:  now,
		},
		{
			ID:         "user2",
			Username:   "sarahjohnson",
			Email:      "sarah@example.com",
			Password:   "hashed_password",
			FullName:   "Sarah Johnson",
			AgeGroup:   "College (18+)",
			TotalScore: 23210,
			Level:      42,
			CreatedAt:  now,
		},
		{
			ID:         "user3",
			Username:   "michaelkim",
			Email:      "michael@example.com",
			Password:   "hashed_password",
			FullName:   "Michael Kim",
			AgeGroup:   "Middle School (12-14)",
			TotalScore: 21650,
			Level:      40,
			CreatedAt:  now,
		},
	}

	s.usersMu.Lock()
	for i := range users {
		user := users[i]
		if _, exists := s.users[user.ID]; !exists {
			s.userIDs = append(s.userIDs, user.ID)
		}
		s.users[user.ID] = &user
	}
	s.usersMu.Unlock()

	entries := []domain.LeaderboardEntry{
		{ID: "entry1", UserID: "user1", Score: 25840, Rank: 1, Period: domain.PeriodAllTime, CreatedAt: now},
		{ID: "entry2", UserID: "user2", Score: 23210, Rank: 2, Period: domain.PeriodAllTime, CreatedAt: now},
		{ID: "entry3", UserID: "user3", Score: 21650, Rank: 3, Period: domain.PeriodAllTime, CreatedAt: now},
	}

	s.entriesMu.Lock()
	for i := range entries {
		entry := entries[i]
		if _, exists := s.entries[entry.ID]; !exists {
			s.entryIDs = append(s.entryIDs, entry.ID)
		}
		s.entries[entry.ID] = &entry
	}
	s.entriesMu.Unlock()
}
