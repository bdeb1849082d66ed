package inventory

// StockStatus is the derived three-value classification of inventory health.
type StockStatus string

const (
	StockInStock    StockStatus = "in_stock"
	StockLowStock   StockStatus = "low_stock"
	StockOutOfStock StockStatus = "out_of_stock"
)

// Classify maps a quantity and minimum threshold to a stock status. The
// bands partition all integers: quantity == minThreshold is low_stock.
func Classify(quantity, minThreshold int) StockStatus {
	switch {
	case quantity <= 0:
		return StockOutOfStock
	case quantity <= minThreshold:
		return StockLowStock
	default:
		return StockInStock
	}
}
