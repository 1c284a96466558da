package fixtures

import (
	"github.com/wagebook/wagebook-backend-go/internal/domain/master/category"
	"github.com/wagebook/wagebook-backend-go/internal/domain/master/subcategory"
)

// GetDefaultCategories returns the standard work categories seeded into an
// empty database.
func GetDefaultCategories() []category.Category {
	return []category.Category{
		{Name: "Masonry"},
		{Name: "Carpentry"},
		{Name: "Electrical"},
		{Name: "Plumbing"},
		{Name: "General Labour"},
	}
}

// GetDefaultSubcategories returns the standard subcategories for a seeded
// category, keyed by the category name.
func GetDefaultSubcategories(categoryID, categoryName string) []subcategory.Subcategory {
	names, ok := defaultSubcategoryNames[categoryName]
	if !ok {
		return nil
	}

	subcategories := make([]subcategory.Subcategory, 0, len(names))
	for _, name := range names {
		subcategories = append(subcategories, subcategory.Subcategory{
			CategoryID: categoryID,
			Name:       name,
		})
	}
	return subcategories
}

var defaultSubcategoryNames = map[string][]string{
	"Masonry":        {"Brick laying", "Plastering", "Stone work"},
	"Carpentry":      {"Shuttering", "Framing", "Finishing"},
	"Electrical":     {"Wiring", "Fittings"},
	"Plumbing":       {"Piping", "Sanitary"},
	"General Labour": {"Helper", "Loading", "Site cleaning"},
}
