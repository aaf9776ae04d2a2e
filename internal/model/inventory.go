package model

// Item status badges derived from current stock, never persisted.
const (
	StatusInStock  = "In Stock"
	StatusLowStock = "Low Stock"
	StatusService  = "Service"
)

// CategoryServices is special: service items have no physical stock,
// so stock is pinned to ServiceStockSentinel and the low-stock
// threshold to 0 on every create/update.
const (
	CategoryServices     = "Services"
	ServiceStockSentinel = 999
)

// InventoryCategories is the fixed category enumeration for shop items.
var InventoryCategories = []string{
	"Tires",
	"Used Tires",
	"Oil",
	"Filters",
	"Rims",
	CategoryServices,
	"Others",
}

type InventoryItem struct {
	BaseModel
	OwnerEmail        string  `gorm:"type:varchar(255);not null;index" json:"-"`
	SKU               string  `gorm:"type:varchar(50)" json:"sku,omitempty"`
	Name              string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description       string  `gorm:"type:text" json:"description,omitempty"`
	Stock             int     `gorm:"default:0" json:"stock" validate:"gte=0"`
	CostPrice         float64 `gorm:"default:0" json:"cost_price" validate:"gte=0"`
	RetailPrice       float64 `gorm:"default:0" json:"retail_price" validate:"gte=0"`
	LowStockThreshold int     `gorm:"default:0" json:"low_stock_threshold" validate:"gte=0"`
	Category          string  `gorm:"type:varchar(50);not null" json:"category" validate:"required"`
}

// ValidCategory reports whether c is one of the fixed shop categories.
func ValidCategory(c string) bool {
	for _, known := range InventoryCategories {
		if known == c {
			return true
		}
	}
	return false
}

// Status derives the stock badge for the item.
func (i *InventoryItem) Status() string {
	if i.Category == CategoryServices {
		return StatusService
	}
	if i.LowStockThreshold > 0 && i.Stock <= i.LowStockThreshold {
		return StatusLowStock
	}
	return StatusInStock
}

// IsService reports whether the item is a labor/service entry
// whose stock must never be decremented by a sale.
func (i *InventoryItem) IsService() bool {
	return i.Category == CategoryServices
}

// InventoryItemResponse adds the derived status badge to API output.
type InventoryItemResponse struct {
	InventoryItem
	StockStatus string `json:"stock_status"`
}

func (i *InventoryItem) ToResponse() InventoryItemResponse {
	return InventoryItemResponse{InventoryItem: *i, StockStatus: i.Status()}
}
