package publisher

type OrderEvent struct {
	OrderID    string `json:"order_id"`
	CustomerID string `json:"customer_id"`
	AssetName  string `json:"asset_name"`
	Side       string `json:"side"`
	Size       int64  `json:"size"`
	Price      string `json:"price"`
	Status     string `json:"status"`
	Event      string `json:"event"`
}
