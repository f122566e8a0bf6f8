package model

import (
	"encoding/json"
	"time"
)

// MenuItem is a sellable product with display metadata and pricing.
// It belongs to at most one category; unavailable items stay hidden from the
// public menu but remain visible to the admin.
type MenuItem struct {
	ID          int              `json:"id"`
	PersianName string           `json:"persianName"`
	EnglishName *string          `json:"englishName"`
	Description *string          `json:"description"`
	ImageURL    *string          `json:"imageUrl"`
	IsAvailable bool             `json:"isAvailable"`
	CategoryID  *int             `json:"categoryId"`
	CreatedAt   time.Time        `json:"createdAt"`
	Options     []MenuItemOption `json:"options"`
}

// MenuItemOption is one labeled price tier attached to an item.
// Prices are non-negative integers in the smallest currency unit (rial).
type MenuItemOption struct {
	ID         int    `json:"id"`
	MenuItemID int    `json:"menuItemId"`
	Label      string `json:"label"`
	Price      int64  `json:"price"`
}

// PriceOptionInput is one labeled price tier in a create/update payload.
type PriceOptionInput struct {
	Label string `json:"label" binding:"required,min=1,max=255"`
	Price int64  `json:"price" binding:"min=0"`
}

// CreateMenuItemRequest is the payload for creating a menu item. The category
// reference is exactly one of categoryId or categoryName; categoryName is
// resolved by upsert, creating the category when absent.
type CreateMenuItemRequest struct {
	PersianName  string             `json:"persianName" binding:"required,min=1,max=255"`
	EnglishName  string             `json:"englishName" binding:"omitempty,max=255"`
	Description  string             `json:"description" binding:"omitempty,max=2000"`
	ImageURL     string             `json:"imageUrl" binding:"omitempty,url"`
	IsAvailable  *bool              `json:"isAvailable"`
	CategoryID   *int               `json:"categoryId" binding:"omitempty,gt=0"`
	CategoryName string             `json:"categoryName" binding:"omitempty,min=1,max=255"`
	PriceOptions []PriceOptionInput `json:"priceOptions" binding:"required,min=1,dive"`
}

// HasAmbiguousCategory reports whether both category references were supplied.
func (r *CreateMenuItemRequest) HasAmbiguousCategory() bool {
	return r.CategoryID != nil && r.CategoryName != ""
}

// NullableID distinguishes an absent JSON field from an explicit null, which
// plain pointer fields cannot. Explicit null detaches an item from its
// category; an absent field leaves the link untouched.
type NullableID struct {
	Set   bool
	Valid bool
	Value int
}

// UnmarshalJSON implements json.Unmarshaler. It only runs when the key is
// present in the payload, so Set marks presence and Valid marks non-null.
func (n *NullableID) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		return nil
	}
	if err := json.Unmarshal(b, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// UpdateMenuItemRequest is the payload for a partial menu item update. Only
// provided fields mutate; priceOptions, when present, replaces the whole
// option set (an empty list leaves zero options).
type UpdateMenuItemRequest struct {
	PersianName      *string             `json:"persianName" binding:"omitempty,min=1,max=255"`
	EnglishName      *string             `json:"englishName" binding:"omitempty,max=255"`
	Description      *string             `json:"description" binding:"omitempty,max=2000"`
	ImageURL         *string             `json:"imageUrl" binding:"omitempty,url"`
	IsAvailable      *bool               `json:"isAvailable"`
	CategoryID       NullableID          `json:"categoryId"`
	CategoryName     string              `json:"categoryName" binding:"omitempty,min=1,max=255"`
	CategoryImageURL string              `json:"categoryImageUrl" binding:"omitempty,url"`
	PriceOptions     *[]PriceOptionInput `json:"priceOptions" binding:"omitempty,dive"`
}

// HasAmbiguousCategory reports whether both category references were supplied.
func (r *UpdateMenuItemRequest) HasAmbiguousCategory() bool {
	return r.CategoryID.Set && r.CategoryID.Valid && r.CategoryName != ""
}
