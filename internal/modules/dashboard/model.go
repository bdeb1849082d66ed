package dashboard

// Overview is the at-a-glance snapshot the storefront screen polls.
type Overview struct {
	TodayRevenue      float64 `json:"today_revenue"`
	TodayOrders       int     `json:"today_orders"`
	LowStockAlerts    int64   `json:"low_stock_alerts"`
	TotalProducts     int64   `json:"total_products"`
	TotalCustomers    int64   `json:"total_customers"`
	ActiveEmployees   int64   `json:"active_employees"`
	AverageOrderValue float64 `json:"average_order_value"`
}
