package service

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/pageza/recipebox/internal/model"
)

const (
	seedCatalogSize = 50
)

var generatedCategories = []string{"Italian", "Mexican", "Asian", "American", "Indian", "Mediterranean", "French"}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedCatalog returns the built-in sample catalog: ten fixed recipes with ids
// "1".."10" followed by generated recipes "11".."50". The generated entries
// draw category, difficulty, timings and creation date from rng.
func SeedCatalog(rng *rand.Rand) []model.Recipe {
	catalog := make([]model.Recipe, 0, seedCatalogSize)
	for _, r := range fixedRecipes {
		catalog = append(catalog, cloneRecipe(r))
	}

	for i := len(fixedRecipes) + 1; i <= seedCatalogSize; i++ {
		category := generatedCategories[rng.Intn(len(generatedCategories))]
		difficulty := model.Difficulties[rng.Intn(len(model.Difficulties))]
		lower := strings.ToLower(category)

		catalog = append(catalog, model.Recipe{
			ID:          strconv.Itoa(i),
			Title:       fmt.Sprintf("%s Recipe #%d", category, i),
			Description: fmt.Sprintf("A delicious %s dish that's perfect for any occasion. Try this %s-to-make recipe today!", lower, strings.ToLower(string(difficulty))),
			ImageURL:    fmt.Sprintf("https://source.unsplash.com/random/300x200?%s,food", lower),
			PrepTime:    rng.Intn(30) + 10,
			CookTime:    rng.Intn(60) + 15,
			Servings:    rng.Intn(6) + 2,
			Difficulty:  difficulty,
			Ingredients: []string{
				"Ingredient 1",
				"Ingredient 2",
				"Ingredient 3",
				"Ingredient 4",
				"Ingredient 5",
			},
			Instructions: []string{
				"Step 1: Prepare ingredients",
				"Step 2: Mix ingredients together",
				"Step 3: Cook according to instructions",
				"Step 4: Serve and enjoy",
			},
			Category:  []string{category},
			Tags:      []string{"quick", "flavorful", "family-friendly"},
			CreatedAt: date(2023, time.Month(rng.Intn(12)+1), rng.Intn(28)+1),
		})
	}
	return catalog
}

func cloneRecipe(r model.Recipe) model.Recipe {
	r.Ingredients = append([]string(nil), r.Ingredients...)
	r.Instructions = append([]string(nil), r.Instructions...)
	r.Category = append([]string(nil), r.Category...)
	r.Tags = append([]string(nil), r.Tags...)
	return r
}
