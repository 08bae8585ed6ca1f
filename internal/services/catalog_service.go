package services

import (
	"log"

	"foodorder/internal/apperr"
	"foodorder/internal/models"
	"foodorder/internal/policy"
	"foodorder/internal/repository"
	"foodorder/internal/token"
)

// CatalogCache holds the available-items listing; redis.Client implements it.
// Any error is treated as a cache miss and the database stays authoritative.
type CatalogCache interface {
	GetFoodItems() ([]models.FoodItem, error)
	SetFoodItems(items []models.FoodItem) error
	InvalidateFoodItems() error
}

// FoodItemUpdate carries a partial update; nil fields keep current values.
type FoodItemUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Available   *bool
}

type CatalogService interface {
	ListAvailable() ([]models.FoodItem, error)
	Create(claims *token.Claims, name, description string, price float64) (*models.FoodItem, error)
	Update(claims *token.Claims, id uint, update FoodItemUpdate) error
}

type catalogService struct {
	foodRepo repository.FoodItemRepository
	cache    CatalogCache
}

func NewCatalogService(foodRepo repository.FoodItemRepository, cache CatalogCache) CatalogService {
	return &catalogService{foodRepo: foodRepo, cache: cache}
}

func (s *catalogService) ListAvailable() ([]models.FoodItem, error) {
	if s.cache != nil {
		if items, err := s.cache.GetFoodItems(); err == nil {
			return items, nil
		}
	}

	items, err := s.foodRepo.GetAvailable()
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to load food items", err)
	}

	if s.cache != nil {
		if err := s.cache.SetFoodItems(items); err != nil {
			log.Printf("Warning: failed to cache catalog: %v", err)
		}
	}
	return items, nil
}

func (s *catalogService) Create(claims *token.Claims, name, description string, price float64) (*models.FoodItem, error) {
	if !policy.CanManageCatalog(policy.Role(claims.Role)) {
		return nil, apperr.New(apperr.Forbidden, "Access denied. Insufficient permissions.")
	}
	if name == "" {
		return nil, apperr.New(apperr.Validation, "Name and price are required")
	}
	if price < 0 {
		return nil, apperr.New(apperr.Validation, "Price must be a non-negative number")
	}

	item := &models.FoodItem{
		Name:        name,
		Description: description,
		Price:       price,
		Available:   true,
	}
	if err := s.foodRepo.Create(item); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "Failed to add food item", err)
	}

	s.invalidateCache()
	return item, nil
}

func (s *catalogService) Update(claims *token.Claims, id uint, update FoodItemUpdate) error {
	if !policy.CanManageCatalog(policy.Role(claims.Role)) {
		return apperr.New(apperr.Forbidden, "Access denied. Insufficient permissions.")
	}

	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Price != nil {
		if *update.Price < 0 {
			return apperr.New(apperr.Validation, "Price must be a non-negative number")
		}
		fields["price"] = *update.Price
	}
	if update.Available != nil {
		fields["available"] = *update.Available
	}
	if len(fields) == 0 {
		return apperr.New(apperr.Validation, "No fields to update")
	}

	rows, err := s.foodRepo.UpdateFields(id, fields)
	if err != nil {
		return apperr.Wrap(apperr.Storage, "Failed to update food item", err)
	}
	if rows == 0 {
		return apperr.New(apperr.NotFound, "Food item not found")
	}

	s.invalidateCache()
	return nil
}

func (s *catalogService) invalidateCache() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFoodItems(); err != nil {
		log.Printf("Warning: failed to invalidate catalog cache: %v", err)
	}
}
