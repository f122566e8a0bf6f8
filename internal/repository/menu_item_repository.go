package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/cafemine/mine-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ItemPatch carries the mutated fields of a partial menu item update.
// Nil pointers mean "leave untouched". CategorySet with a nil CategoryID
// detaches the item from its category.
type ItemPatch struct {
	PersianName *string
	EnglishName *string
	Description *string
	ImageURL    *string
	IsAvailable *bool
	CategorySet bool
	CategoryID  *int
}

// MenuItemRepository handles menu item and price option data access.
type MenuItemRepository struct {
	pool *pgxpool.Pool
}

// NewMenuItemRepository creates a new MenuItemRepository.
func NewMenuItemRepository(pool *pgxpool.Pool) *MenuItemRepository {
	return &MenuItemRepository{pool: pool}
}

// ListAll retrieves all menu items ordered by creation time. When
// includeUnavailable is false, items flagged unavailable are filtered out.
func (r *MenuItemRepository) ListAll(ctx context.Context, includeUnavailable bool) ([]model.MenuItem, error) {
	query := `SELECT id, persian_name, english_name, description, image_url, is_available, category_id, created_at
		 FROM menu_items`
	if !includeUnavailable {
		query += ` WHERE is_available`
	}
	query += ` ORDER BY created_at ASC, id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		var it model.MenuItem
		if err := rows.Scan(&it.ID, &it.PersianName, &it.EnglishName, &it.Description,
			&it.ImageURL, &it.IsAvailable, &it.CategoryID, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ListAllOptions retrieves every price option ordered by insertion.
func (r *MenuItemRepository) ListAllOptions(ctx context.Context) ([]model.MenuItemOption, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, menu_item_id, label, price
		 FROM menu_item_options
		 ORDER BY menu_item_id ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []model.MenuItemOption
	for rows.Next() {
		var o model.MenuItemOption
		if err := rows.Scan(&o.ID, &o.MenuItemID, &o.Label, &o.Price); err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	return options, rows.Err()
}

// GetByID retrieves a single item with its price options.
func (r *MenuItemRepository) GetByID(ctx context.Context, id int) (*model.MenuItem, error) {
	it := &model.MenuItem{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, persian_name, english_name, description, image_url, is_available, category_id, created_at
		 FROM menu_items WHERE id = $1`, id,
	).Scan(&it.ID, &it.PersianName, &it.EnglishName, &it.Description,
		&it.ImageURL, &it.IsAvailable, &it.CategoryID, &it.CreatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, menu_item_id, label, price
		 FROM menu_item_options WHERE menu_item_id = $1 ORDER BY id ASC`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	it.Options = []model.MenuItemOption{}
	for rows.Next() {
		var o model.MenuItemOption
		if err := rows.Scan(&o.ID, &o.MenuItemID, &o.Label, &o.Price); err != nil {
			return nil, err
		}
		it.Options = append(it.Options, o)
	}
	return it, rows.Err()
}

// Create inserts a new item together with its price options in one transaction.
func (r *MenuItemRepository) Create(ctx context.Context, it *model.MenuItem, options []model.PriceOptionInput) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO menu_items (persian_name, english_name, description, image_url, is_available, category_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		it.PersianName, it.EnglishName, it.Description, it.ImageURL, it.IsAvailable, it.CategoryID,
	).Scan(&it.ID, &it.CreatedAt)
	if err != nil {
		return err
	}

	it.Options = make([]model.MenuItemOption, 0, len(options))
	for _, opt := range options {
		var o model.MenuItemOption
		err = tx.QueryRow(ctx,
			`INSERT INTO menu_item_options (menu_item_id, label, price)
			 VALUES ($1, $2, $3)
			 RETURNING id, menu_item_id, label, price`,
			it.ID, opt.Label, opt.Price,
		).Scan(&o.ID, &o.MenuItemID, &o.Label, &o.Price)
		if err != nil {
			return err
		}
		it.Options = append(it.Options, o)
	}

	return tx.Commit(ctx)
}

// Update applies a partial patch and, when replaceOptions is non-nil, replaces
// the whole option set (delete all, insert given — an empty list leaves the
// item with zero options). Everything runs in one transaction.
// Returns pgx.ErrNoRows when the item does not exist.
func (r *MenuItemRepository) Update(ctx context.Context, id int, patch ItemPatch, replaceOptions *[]model.PriceOptionInput) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	setClause, args := buildItemUpdate(patch)
	if setClause != "" {
		args = append(args, id)
		tag, err := tx.Exec(ctx,
			fmt.Sprintf(`UPDATE menu_items SET %s WHERE id = $%d`, setClause, len(args)), args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
	} else {
		// Nothing to patch on the row itself; still verify the item exists.
		var found bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM menu_items WHERE id = $1)`, id).Scan(&found); err != nil {
			return err
		}
		if !found {
			return pgx.ErrNoRows
		}
	}

	if replaceOptions != nil {
		if _, err := tx.Exec(ctx,
			`DELETE FROM menu_item_options WHERE menu_item_id = $1`, id); err != nil {
			return err
		}
		for _, opt := range *replaceOptions {
			if _, err := tx.Exec(ctx,
				`INSERT INTO menu_item_options (menu_item_id, label, price) VALUES ($1, $2, $3)`,
				id, opt.Label, opt.Price); err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}

// Delete removes an item; its price options cascade at the storage layer.
// Returns false when no row matched.
func (r *MenuItemRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// buildItemUpdate renders the SET clause for a partial update. Placeholders
// are numbered from $1; the caller appends the id argument after these.
func buildItemUpdate(patch ItemPatch) (string, []any) {
	var sets []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.PersianName != nil {
		add("persian_name", *patch.PersianName)
	}
	if patch.EnglishName != nil {
		add("english_name", *patch.EnglishName)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.ImageURL != nil {
		add("image_url", *patch.ImageURL)
	}
	if patch.IsAvailable != nil {
		add("is_available", *patch.IsAvailable)
	}
	if patch.CategorySet {
		add("category_id", patch.CategoryID)
	}

	return strings.Join(sets, ", "), args
}
