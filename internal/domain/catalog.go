package domain

// Game represents a playable educational game in the catalog
type Game struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	Icon             string   `json:"icon"`
	Difficulty       string   `json:"difficulty"`
	AgeGroup         string   `json:"ageGroup"`
	LearningBenefits []string `json:"learningBenefits"`
	Instructions     []string `json:"instructions"`
	PlayCount        int      `json:"playCount"`
}

// InsertGame represents a request to add a game to the catalog.
// The ID is caller-supplied; play counts always start at zero.
type InsertGame struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	Icon             string   `json:"icon"`
	Difficulty       string   `json:"difficulty"`
	AgeGroup         string   `json:"ageGroup"`
	LearningBenefits []string `json:"learningBenefits,omitempty"`
	Instructions     []string `json:"instructions,omitempty"`
}

// ToGame converts an InsertGame to a Game with a zero play count
func (g *InsertGame) ToGame() Game {
	return Game{
		ID:               g.ID,
		Title:            g.Title,
		Description:      g.Description,
		Category:         g.Category,
		Icon:             g.Icon,
		Difficulty:       g.Difficulty,
		AgeGroup:         g.AgeGroup,
		LearningBenefits: g.LearningBenefits,
		Instructions:     g.Instructions,
		PlayCount:        0,
	}
}

// Category represents a game category shown in the catalog.
// GameCount is informational display metadata and is not derived
// from actual game membership.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	GameCount   int    `json:"gameCount"`
	Color       string `json:"color"`
}

// InsertCategory represents a request to add a category
type InsertCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// ToCategory converts an InsertCategory to a Category with a zero game count
func (c *InsertCategory) ToCategory() Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		GameCount:   0,
		Color:       c.Color,
	}
}

// CatalogStats contains aggregate counts across all collections
type CatalogStats struct {
	Games              int `json:"games"`
	Categories         int `json:"categories"`
	Users              int `json:"users"`
	LeaderboardEntries int `json:"leaderboardEntries"`
	ContactMessages    int `json:"contactMessages"`
	TotalPlays         int `json:"totalPlays"`
}
