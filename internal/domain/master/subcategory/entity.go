package subcategory

import "time"

type Subcategory struct {
	ID           string
	CategoryID   string
	CategoryName *string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
