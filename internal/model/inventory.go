package model

// Inventory stock statuses.
const (
	StockIn  = "in_stock"
	StockLow = "low_stock"
	StockOut = "out_of_stock"
)

// InventoryItem is a spare part held in stock.
type InventoryItem struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	PartNumber string  `json:"partNumber"`
	Category   string  `json:"category"`
	Quantity   int     `json:"quantity"`
	MinStock   int     `json:"minStock"`
	Price      float64 `json:"price"`
	Supplier   string  `json:"supplier"`
	Location   string  `json:"location"`
	Status     string  `json:"status"`
}
