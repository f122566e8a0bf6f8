package repository

import (
	"context"

	"github.com/cafemine/mine-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryRepository handles menu category data access.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// ListWithCounts retrieves all categories ordered by creation time, each with
// its item count.
func (r *CategoryRepository) ListWithCounts(ctx context.Context) ([]model.MenuCategory, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.name, c.description, c.image_url, c.created_at, COUNT(i.id)
		 FROM menu_categories c
		 LEFT JOIN menu_items i ON i.category_id = c.id
		 GROUP BY c.id
		 ORDER BY c.created_at ASC, c.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.MenuCategory
	for rows.Next() {
		var c model.MenuCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.CreatedAt, &c.ItemCount); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// List retrieves all categories ordered by creation time, without counts.
func (r *CategoryRepository) List(ctx context.Context) ([]model.MenuCategory, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, image_url, created_at
		 FROM menu_categories
		 ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.MenuCategory
	for rows.Next() {
		var c model.MenuCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// Create inserts a new category. A duplicate name surfaces as a unique
// constraint violation from the storage layer.
func (r *CategoryRepository) Create(ctx context.Context, c *model.MenuCategory) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO menu_categories (name, description, image_url)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		c.Name, c.Description, c.ImageURL,
	).Scan(&c.ID, &c.CreatedAt)
}

// UpsertByName resolves a category ID by name, creating the category when it
// does not exist yet. When imageURL is non-nil it also refreshes the stored
// image. The single statement cannot produce duplicates under concurrency.
func (r *CategoryRepository) UpsertByName(ctx context.Context, name string, imageURL *string) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx,
		`INSERT INTO menu_categories (name, image_url)
		 VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE
		 SET image_url = COALESCE(EXCLUDED.image_url, menu_categories.image_url)
		 RETURNING id`,
		name, imageURL,
	).Scan(&id)
	return id, err
}

// UpdateImage sets the image URL of an existing category.
func (r *CategoryRepository) UpdateImage(ctx context.Context, id int, imageURL string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE menu_categories SET image_url = $1 WHERE id = $2`, imageURL, id)
	return err
}

// DeleteIfEmpty removes a category only when it owns no items, in a single
// conditional statement so the zero-children check cannot race the delete.
func (r *CategoryRepository) DeleteIfEmpty(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM menu_categories
		 WHERE id = $1
		   AND NOT EXISTS (SELECT 1 FROM menu_items WHERE category_id = $1)`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// CountItems returns how many items reference a category.
func (r *CategoryRepository) CountItems(ctx context.Context, id int) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM menu_items WHERE category_id = $1`, id).Scan(&n)
	return n, err
}

// Exists reports whether a category with the given ID exists.
func (r *CategoryRepository) Exists(ctx context.Context, id int) (bool, error) {
	var found bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM menu_categories WHERE id = $1)`, id).Scan(&found)
	return found, err
}
