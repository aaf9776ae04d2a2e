package service

import (
	"errors"
	"fmt"

	"go-autoshop/internal/model"
	"go-autoshop/internal/repository"
	"go-autoshop/internal/ws"
	"go-autoshop/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound    = errors.New("inventory item not found")
	ErrInvalidCategory = errors.New("unknown inventory category")
)

type InventoryService interface {
	AddItem(ownerEmail string, req *model.InventoryItem) error
	UpdateItem(ownerEmail string, id uuid.UUID, req *model.InventoryItem) (*model.InventoryItem, error)
	DeleteItem(ownerEmail string, id uuid.UUID) error
	GetItems(ownerEmail string) ([]model.InventoryItemResponse, error)
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	wsHub         *ws.Hub
}

func NewInventoryService(repo repository.InventoryRepository, hub *ws.Hub) InventoryService {
	return &inventoryService{inventoryRepo: repo, wsHub: hub}
}

// applyServicePinning enforces the Services invariant: service items
// carry the stock sentinel and no low-stock threshold.
func applyServicePinning(item *model.InventoryItem) {
	if item.Category == model.CategoryServices {
		item.Stock = model.ServiceStockSentinel
		item.LowStockThreshold = 0
	}
}

func validateItem(req *model.InventoryItem) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	if !model.ValidCategory(req.Category) {
		return ErrInvalidCategory
	}
	return nil
}

func (s *inventoryService) AddItem(ownerEmail string, req *model.InventoryItem) error {
	if err := validateItem(req); err != nil {
		return err
	}

	req.OwnerEmail = ownerEmail
	req.CreatedBy = ownerEmail
	req.UpdatedBy = ownerEmail
	applyServicePinning(req)

	if err := s.inventoryRepo.Create(req); err != nil {
		return err
	}

	s.wsHub.Publish("stock_update", map[string]interface{}{
		"action": "item_created",
		"item": map[string]interface{}{
			"id":    req.ID,
			"name":  req.Name,
			"stock": req.Stock,
		},
	})
	return nil
}

func (s *inventoryService) UpdateItem(ownerEmail string, id uuid.UUID, req *model.InventoryItem) (*model.InventoryItem, error) {
	if err := validateItem(req); err != nil {
		return nil, err
	}

	existing, err := s.inventoryRepo.FindByID(ownerEmail, id)
	if err != nil {
		return nil, ErrItemNotFound
	}

	categoryChanged := existing.Category != req.Category

	existing.SKU = req.SKU
	existing.Name = req.Name
	existing.Description = req.Description
	existing.Stock = req.Stock
	existing.CostPrice = req.CostPrice
	existing.RetailPrice = req.RetailPrice
	existing.LowStockThreshold = req.LowStockThreshold
	existing.Category = req.Category
	existing.UpdatedBy = ownerEmail

	// Stock resets apply only on an actual category transition;
	// editing other fields of an item already in Services leaves
	// stock untouched.
	if categoryChanged {
		if req.Category == model.CategoryServices {
			existing.Stock = model.ServiceStockSentinel
			existing.LowStockThreshold = 0
		} else {
			existing.Stock = 0
		}
	}
	applyServicePinning(existing)

	if err := s.inventoryRepo.Update(existing); err != nil {
		return nil, err
	}

	s.wsHub.Publish("stock_update", map[string]interface{}{
		"action": "item_updated",
		"item": map[string]interface{}{
			"id":    existing.ID,
			"name":  existing.Name,
			"stock": existing.Stock,
		},
	})
	return existing, nil
}

func (s *inventoryService) DeleteItem(ownerEmail string, id uuid.UUID) error {
	if _, err := s.inventoryRepo.FindByID(ownerEmail, id); err != nil {
		return ErrItemNotFound
	}
	return s.inventoryRepo.Delete(ownerEmail, id, ownerEmail)
}

func (s *inventoryService) GetItems(ownerEmail string) ([]model.InventoryItemResponse, error) {
	items, err := s.inventoryRepo.FindAll(ownerEmail)
	if err != nil {
		return nil, err
	}

	responses := make([]model.InventoryItemResponse, len(items))
	for i := range items {
		responses[i] = items[i].ToResponse()
	}
	return responses, nil
}
