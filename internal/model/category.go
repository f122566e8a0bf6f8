package model

import "time"

// MenuCategory is a named grouping of menu items. Names are globally unique.
type MenuCategory struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	ImageURL    *string    `json:"imageUrl"`
	CreatedAt   time.Time  `json:"createdAt"`
	ItemCount   int        `json:"itemCount"`
	Items       []MenuItem `json:"items"`
}

// CreateCategoryRequest is the payload for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,url"`
}
