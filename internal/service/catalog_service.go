package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/cafemine/mine-backend/internal/config"
	"github.com/cafemine/mine-backend/internal/model"
	"github.com/cafemine/mine-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Catalog sentinel errors, mapped to HTTP statuses by the handlers.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryHasItems = errors.New("category still owns items")
	ErrItemNotFound     = errors.New("menu item not found")
)

// publicMenuTTL bounds staleness of the cached public menu between the
// write-side invalidations.
const publicMenuTTL = 5 * time.Minute

// CatalogService owns the menu catalog: categories, items, and price options.
// The public (available-only) menu tree is cached in Redis; every mutation
// invalidates it. Cache failures degrade to direct reads.
type CatalogService struct {
	categoryRepo *repository.CategoryRepository
	itemRepo     *repository.MenuItemRepository
	rdb          *redis.Client
	log          zerolog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	categoryRepo *repository.CategoryRepository,
	itemRepo *repository.MenuItemRepository,
	rdb *redis.Client,
	log zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		rdb:          rdb,
		log:          log,
	}
}

// ListCategories retrieves all categories with item counts, in creation order.
func (s *CatalogService) ListCategories(ctx context.Context) ([]model.MenuCategory, error) {
	categories, err := s.categoryRepo.ListWithCounts(ctx)
	if err != nil {
		return nil, err
	}
	return normalizeCategories(categories), nil
}

// CreateCategory creates a category from a validated request. Empty optional
// fields are stored as NULL. A duplicate name surfaces as the storage layer's
// unique violation, translated by the handler.
func (s *CatalogService) CreateCategory(ctx context.Context, req *model.CreateCategoryRequest) (*model.MenuCategory, error) {
	category := &model.MenuCategory{
		Name:        strings.TrimSpace(req.Name),
		Description: optional(req.Description),
		ImageURL:    optional(req.ImageURL),
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.invalidateMenuCache(ctx)
	return category, nil
}

// DeleteCategory removes a category. A category that still owns items is
// never deleted; the conditional delete and the error classification are
// separate statements, but the delete itself cannot race the children check.
func (s *CatalogService) DeleteCategory(ctx context.Context, id int) error {
	deleted, err := s.categoryRepo.DeleteIfEmpty(ctx, id)
	if err != nil {
		return err
	}
	if deleted {
		s.invalidateMenuCache(ctx)
		return nil
	}

	count, err := s.categoryRepo.CountItems(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryHasItems
	}
	return ErrCategoryNotFound
}

// ListMenu retrieves the full menu tree: categories with nested items and
// price options, creation-ordered at every level. The public variant
// (includeUnavailable=false) is served from Redis when possible.
func (s *CatalogService) ListMenu(ctx context.Context, includeUnavailable bool) ([]model.MenuCategory, error) {
	if !includeUnavailable {
		if cached, ok := s.cachedPublicMenu(ctx); ok {
			return cached, nil
		}
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.ListAll(ctx, includeUnavailable)
	if err != nil {
		return nil, err
	}
	options, err := s.itemRepo.ListAllOptions(ctx)
	if err != nil {
		return nil, err
	}

	menu := assembleMenu(categories, items, options)

	if !includeUnavailable {
		s.storePublicMenu(ctx, menu)
	}
	return menu, nil
}

// CreateItem creates a menu item from a validated request. The category
// reference has already passed the XOR check at the boundary; a categoryName
// is resolved by upsert so no duplicate category can appear.
func (s *CatalogService) CreateItem(ctx context.Context, req *model.CreateMenuItemRequest) (*model.MenuItem, error) {
	var categoryID *int

	switch {
	case req.CategoryID != nil:
		found, err := s.categoryRepo.Exists(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, ErrCategoryNotFound
		}
		categoryID = req.CategoryID
	case req.CategoryName != "":
		id, err := s.categoryRepo.UpsertByName(ctx, strings.TrimSpace(req.CategoryName), nil)
		if err != nil {
			return nil, err
		}
		categoryID = &id
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	item := &model.MenuItem{
		PersianName: strings.TrimSpace(req.PersianName),
		EnglishName: optional(req.EnglishName),
		Description: optional(req.Description),
		ImageURL:    optional(req.ImageURL),
		IsAvailable: available,
		CategoryID:  categoryID,
	}

	if err := s.itemRepo.Create(ctx, item, req.PriceOptions); err != nil {
		return nil, err
	}

	s.invalidateMenuCache(ctx)
	return item, nil
}

// UpdateItem applies a partial update. Only provided fields mutate; a supplied
// priceOptions list replaces the whole option set. Category reassignment
// follows the same rules as create, with explicit null detaching the item.
func (s *CatalogService) UpdateItem(ctx context.Context, id int, req *model.UpdateMenuItemRequest) (*model.MenuItem, error) {
	patch := repository.ItemPatch{
		PersianName: req.PersianName,
		EnglishName: req.EnglishName,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable,
	}

	switch {
	case req.CategoryName != "":
		categoryID, err := s.categoryRepo.UpsertByName(ctx,
			strings.TrimSpace(req.CategoryName), optional(req.CategoryImageURL))
		if err != nil {
			return nil, err
		}
		patch.CategorySet = true
		patch.CategoryID = &categoryID
	case req.CategoryID.Set && req.CategoryID.Valid:
		found, err := s.categoryRepo.Exists(ctx, req.CategoryID.Value)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, ErrCategoryNotFound
		}
		patch.CategorySet = true
		categoryID := req.CategoryID.Value
		patch.CategoryID = &categoryID
		if req.CategoryImageURL != "" {
			if err := s.categoryRepo.UpdateImage(ctx, categoryID, req.CategoryImageURL); err != nil {
				return nil, err
			}
		}
	case req.CategoryID.Set:
		// Explicit null: detach the item from its category.
		patch.CategorySet = true
	}

	if err := s.itemRepo.Update(ctx, id, patch, req.PriceOptions); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	s.invalidateMenuCache(ctx)
	return s.itemRepo.GetByID(ctx, id)
}

// DeleteItem removes an item; its price options cascade.
func (s *CatalogService) DeleteItem(ctx context.Context, id int) error {
	deleted, err := s.itemRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrItemNotFound
	}
	s.invalidateMenuCache(ctx)
	return nil
}

// ─── Cache helpers ──────────────────────────────────────────────────────────

func (s *CatalogService) cachedPublicMenu(ctx context.Context) ([]model.MenuCategory, bool) {
	raw, err := s.rdb.Get(ctx, config.CacheKey.PublicMenuKey()).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Msg("public menu cache read failed")
		}
		return nil, false
	}

	var menu []model.MenuCategory
	if err := json.Unmarshal([]byte(raw), &menu); err != nil {
		s.log.Warn().Err(err).Msg("public menu cache entry corrupt")
		return nil, false
	}
	return menu, true
}

func (s *CatalogService) storePublicMenu(ctx context.Context, menu []model.MenuCategory) {
	raw, err := json.Marshal(menu)
	if err != nil {
		s.log.Warn().Err(err).Msg("public menu cache encode failed")
		return
	}
	if err := s.rdb.Set(ctx, config.CacheKey.PublicMenuKey(), raw, publicMenuTTL).Err(); err != nil {
		s.log.Warn().Err(err).Msg("public menu cache write failed")
	}
}

func (s *CatalogService) invalidateMenuCache(ctx context.Context) {
	if err := s.rdb.Del(ctx, config.CacheKey.PublicMenuKey()).Err(); err != nil {
		s.log.Warn().Err(err).Msg("public menu cache invalidation failed")
	}
}

// ─── Assembly helpers ───────────────────────────────────────────────────────

// assembleMenu nests creation-ordered items and options under their
// creation-ordered categories.
func assembleMenu(categories []model.MenuCategory, items []model.MenuItem, options []model.MenuItemOption) []model.MenuCategory {
	optionsByItem := make(map[int][]model.MenuItemOption, len(items))
	for _, o := range options {
		optionsByItem[o.MenuItemID] = append(optionsByItem[o.MenuItemID], o)
	}

	itemsByCategory := make(map[int][]model.MenuItem, len(categories))
	for _, it := range items {
		if it.CategoryID == nil {
			continue
		}
		if opts, ok := optionsByItem[it.ID]; ok {
			it.Options = opts
		} else {
			it.Options = []model.MenuItemOption{}
		}
		itemsByCategory[*it.CategoryID] = append(itemsByCategory[*it.CategoryID], it)
	}

	menu := make([]model.MenuCategory, 0, len(categories))
	for _, c := range categories {
		if nested, ok := itemsByCategory[c.ID]; ok {
			c.Items = nested
		} else {
			c.Items = []model.MenuItem{}
		}
		c.ItemCount = len(c.Items)
		menu = append(menu, c)
	}
	return menu
}

// normalizeCategories guarantees every serialized category carries an items
// array, never a null or a missing key. Clients iterate category.items
// unconditionally.
func normalizeCategories(categories []model.MenuCategory) []model.MenuCategory {
	if categories == nil {
		return []model.MenuCategory{}
	}
	for i := range categories {
		if categories[i].Items == nil {
			categories[i].Items = []model.MenuItem{}
		}
	}
	return categories
}

// optional maps a trimmed form value to NULL when empty.
func optional(v string) *string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
