package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-api/internal/model"
	"github.com/jwalitptl/clinic-api/internal/repository"
)

type Service struct {
	reg *repository.Registry
}

func NewService(reg *repository.Registry) *Service {
	return &Service{reg: reg}
}

func (s *Service) Create(ctx context.Context, req *model.CreateInventoryItemRequest) (model.InventoryItem, error) {
	item := model.InventoryItem{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		MaxQuantity: req.MaxQuantity,
		Unit:        req.Unit,
		Price:       req.Price,
		Supplier:    req.Supplier,
		LastUpdated: time.Now().UTC(),
	}
	if err := s.reg.Inventory.Insert(ctx, item); err != nil {
		return model.InventoryItem{}, fmt.Errorf("failed to create inventory item: %w", err)
	}
	return item, nil
}

func (s *Service) Get(_ context.Context, id string) (model.InventoryItem, error) {
	item, ok := s.reg.Inventory.Get(id)
	if !ok {
		return model.InventoryItem{}, repository.ErrNotFound
	}
	return item, nil
}

func (s *Service) List(_ context.Context) []model.InventoryItem {
	return s.reg.Inventory.List()
}

// LowStock returns items at or below their minimum threshold.
func (s *Service) LowStock(_ context.Context) []model.InventoryItem {
	var out []model.InventoryItem
	for _, item := range s.reg.Inventory.List() {
		if item.StockLevel() == model.StockLevelLow {
			out = append(out, item)
		}
	}
	return out
}

func (s *Service) Update(ctx context.Context, id string, req *model.UpdateInventoryItemRequest) (model.InventoryItem, error) {
	item, ok := s.reg.Inventory.Get(id)
	if !ok {
		return model.InventoryItem{}, repository.ErrNotFound
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.MinQuantity != nil {
		item.MinQuantity = *req.MinQuantity
	}
	if req.MaxQuantity != nil {
		item.MaxQuantity = *req.MaxQuantity
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Supplier != nil {
		item.Supplier = *req.Supplier
	}
	item.LastUpdated = time.Now().UTC()
	if err := s.reg.Inventory.Update(ctx, item); err != nil {
		return model.InventoryItem{}, fmt.Errorf("failed to update inventory item: %w", err)
	}
	return item, nil
}

// AdjustQuantity applies a relative change. The result never goes below
// zero; a withdrawal larger than the stock clamps it to empty.
func (s *Service) AdjustQuantity(ctx context.Context, id string, change int) (model.InventoryItem, error) {
	item, ok := s.reg.Inventory.Get(id)
	if !ok {
		return model.InventoryItem{}, repository.ErrNotFound
	}
	item.Quantity += change
	if item.Quantity < 0 {
		item.Quantity = 0
	}
	item.LastUpdated = time.Now().UTC()
	if err := s.reg.Inventory.Update(ctx, item); err != nil {
		return model.InventoryItem{}, fmt.Errorf("failed to adjust quantity: %w", err)
	}
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.reg.Inventory.Remove(ctx, id)
}
