package services

import (
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"
	"gorm.io/gorm"

	apperrors "moneybook/internal/errors"
	"moneybook/internal/models"
	"moneybook/internal/pagination"
)

// categoryCacheSize bounds the name→category cache. The catalog is small
// master data, so this comfortably covers every category.
const categoryCacheSize = 256

// categoryService handles category lookups. Categories are written only by
// migrations, so resolved names are cached in an LRU.
type categoryService struct {
	db    *gorm.DB
	cache *lru.Cache[string, models.Category]
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	cache, err := lru.New[string, models.Category](categoryCacheSize)
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic(err)
	}
	return &categoryService{db: db, cache: cache}
}

// GetByName resolves a category by its exact name.
func (s *categoryService) GetByName(name string) (*models.Category, error) {
	if cached, ok := s.cache.Get(name); ok {
		return &cached, nil
	}

	var category models.Category
	if err := s.db.Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidCategory, name+": this category cannot be used")
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.cache.Add(name, category)
	return &category, nil
}

// GetAllNames returns every category name in the catalog.
func (s *categoryService) GetAllNames() ([]string, error) {
	var names []string
	if err := s.db.Model(&models.Category{}).Order("id").Pluck("name", &names).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return names, nil
}

// ListCategories retrieves a paginated list of the category catalog.
func (s *categoryService) ListCategories(page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Category{})
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var categories []models.Category
	if err := base.Order("id").Scopes(pagination.Paginate(page)).Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(categories, page.Page, page.PageSize, totalItems)
	return &result, nil
}
