package models

type TopSellingProduct struct {
	ProductID         int64   `json:"productId"`
	ProductName       string  `json:"productName"`
	TotalQuantitySold int64   `json:"totalQuantitySold"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

// Statistics is the admin dashboard payload. RevenueByDate is keyed by the
// server's display date format (dd/MM/yyyy).
type Statistics struct {
	TotalRevenue       float64            `json:"totalRevenue"`
	TotalOrders        int64              `json:"totalOrders"`
	TotalCustomers     int64              `json:"totalCustomers"`
	TotalProducts      int64              `json:"totalProducts"`
	PendingOrders      int64              `json:"pendingOrders"`
	ShippingOrders     int64              `json:"shippingOrders"`
	CompletedOrders    int64              `json:"completedOrders"`
	CancelledOrders    int64              `json:"cancelledOrders"`
	TopSellingProducts []TopSellingProduct `json:"topSellingProducts"`
	RevenueByDate      map[string]float64  `json:"revenueByDate"`
}
