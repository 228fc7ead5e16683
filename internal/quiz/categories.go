package quiz

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/studify/internal/models"
)

var fallbackCategories = []models.Category{
	{ID: 9, Name: "General Knowledge"},
	{ID: 17, Name: "Science & Nature"},
	{ID: 18, Name: "Science: Computers"},
	{ID: 19, Name: "Science: Mathematics"},
	{ID: 21, Name: "Sports"},
	{ID: 22, Name: "Geography"},
	{ID: 23, Name: "History"},
	{ID: 27, Name: "Animals"},
}

// FallbackCategories returns the offline category list.
func FallbackCategories() []models.Category {
	return slices.Clone(fallbackCategories)
}

// LoadCategories asks the provider for categories and falls back to the
// offline list when the call fails or yields nothing. The second result
// reports whether the fallback was used.
func LoadCategories(ctx context.Context, p QuestionProvider) ([]models.Category, bool) {
	cats, err := p.FetchCategories(ctx)
	if err != nil || len(cats) == 0 {
		return FallbackCategories(), true
	}
	return cats, false
}
