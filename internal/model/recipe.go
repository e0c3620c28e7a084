package model

import "time"

// Difficulty is how hard a recipe is to make.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Difficulties lists the allowed difficulty levels in display order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Valid reports whether d is one of Easy, Medium or Hard.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Recipe is one entry in the catalog. Field names match the persisted layout
// under the "recipes" key.
type Recipe struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"imageUrl"`
	PrepTime     int        `json:"prepTime"`
	CookTime     int        `json:"cookTime"`
	Servings     int        `json:"servings"`
	Difficulty   Difficulty `json:"difficulty"`
	Ingredients  []string   `json:"ingredients"`
	Instructions []string   `json:"instructions"`
	Category     []string   `json:"category"`
	Tags         []string   `json:"tags"`
	CreatedBy    string     `json:"createdBy,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// RecipeDraft carries every recipe field the author supplies. The store
// assigns ID and CreatedAt on insert.
type RecipeDraft struct {
	Title        string
	Description  string
	ImageURL     string
	PrepTime     int
	CookTime     int
	Servings     int
	Difficulty   Difficulty
	Ingredients  []string
	Instructions []string
	Category     []string
	Tags         []string
	CreatedBy    string
}

// Recipe builds the stored record for the draft. Missing lists become empty.
func (d RecipeDraft) Recipe(id string, createdAt time.Time) Recipe {
	return Recipe{
		ID:           id,
		Title:        d.Title,
		Description:  d.Description,
		ImageURL:     d.ImageURL,
		PrepTime:     d.PrepTime,
		CookTime:     d.CookTime,
		Servings:     d.Servings,
		Difficulty:   d.Difficulty,
		Ingredients:  nonNil(d.Ingredients),
		Instructions: nonNil(d.Instructions),
		Category:     nonNil(d.Category),
		Tags:         nonNil(d.Tags),
		CreatedBy:    d.CreatedBy,
		CreatedAt:    createdAt,
	}
}

// TotalTime is prep plus cook time in minutes.
func (r Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// HasCategory reports whether any category entry equals name, ignoring case.
func (r Recipe) HasCategory(name string) bool {
	return containsFold(r.Category, name)
}

// HasTag reports whether any tag equals name, ignoring case.
func (r Recipe) HasTag(name string) bool {
	return containsFold(r.Tags, name)
}
