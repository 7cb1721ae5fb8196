package model

import "time"

// Stock level constants
const (
	StockLevelLow    = "low"
	StockLevelNormal = "normal"
	StockLevelHigh   = "high"
)

// InventoryItem represents a stocked supply item
type InventoryItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	MinQuantity int       `json:"min_quantity"`
	MaxQuantity int       `json:"max_quantity"`
	Unit        string    `json:"unit"`
	Price       float64   `json:"price"`
	Supplier    string    `json:"supplier"`
	LastUpdated time.Time `json:"last_updated"`
}

// StockLevel classifies the item against its thresholds. Quantity at the
// minimum counts as low and quantity at the maximum counts as high.
func (i InventoryItem) StockLevel() string {
	switch {
	case i.Quantity <= i.MinQuantity:
		return StockLevelLow
	case i.Quantity >= i.MaxQuantity:
		return StockLevelHigh
	default:
		return StockLevelNormal
	}
}

// Value returns the monetary value of the stock on hand.
func (i InventoryItem) Value() float64 {
	return float64(i.Quantity) * i.Price
}

// CreateInventoryItemRequest represents item creation parameters
type CreateInventoryItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	MinQuantity int     `json:"min_quantity" binding:"gte=0"`
	MaxQuantity int     `json:"max_quantity" binding:"gte=0"`
	Unit        string  `json:"unit"`
	Price       float64 `json:"price" binding:"gte=0"`
	Supplier    string  `json:"supplier"`
}

// UpdateInventoryItemRequest represents item update parameters
type UpdateInventoryItemRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Quantity    *int     `json:"quantity" binding:"omitempty,gte=0"`
	MinQuantity *int     `json:"min_quantity" binding:"omitempty,gte=0"`
	MaxQuantity *int     `json:"max_quantity" binding:"omitempty,gte=0"`
	Unit        *string  `json:"unit"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Supplier    *string  `json:"supplier"`
}

// AdjustQuantityRequest represents a relative stock adjustment
type AdjustQuantityRequest struct {
	Change int `json:"change" binding:"required"`
}
