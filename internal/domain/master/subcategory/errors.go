package subcategory

import "errors"

var (
	ErrSubcategoryNotFound   = errors.New("subcategory not found")
	ErrSubcategoryNameExists = errors.New("subcategory with this name already exists in the category")
	ErrCategoryMismatch      = errors.New("subcategory does not belong to the given category")
)
