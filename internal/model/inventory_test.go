package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockLevelBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		expected string
	}{
		{"below minimum", 5, StockLevelLow},
		{"at minimum", 10, StockLevelLow},
		{"just above minimum", 11, StockLevelNormal},
		{"just below maximum", 49, StockLevelNormal},
		{"at maximum", 50, StockLevelHigh},
		{"above maximum", 60, StockLevelHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := InventoryItem{Quantity: tt.quantity, MinQuantity: 10, MaxQuantity: 50}
			assert.Equal(t, tt.expected, item.StockLevel())
		})
	}
}

func TestInventoryValue(t *testing.T) {
	item := InventoryItem{Quantity: 4, Price: 2.5}
	assert.Equal(t, 10.0, item.Value())
}

func TestInvoiceOutstanding(t *testing.T) {
	inv := Invoice{TotalAmount: 500, PaidAmount: 200}
	assert.Equal(t, 300.0, inv.Outstanding())
}
