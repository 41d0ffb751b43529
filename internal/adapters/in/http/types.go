package http

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type MenuItem struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type AddOn struct {
	Code      string `json:"code"`
	Label     string `json:"label"`
	Surcharge string `json:"surcharge"`
}

type Menu struct {
	Items  []MenuItem `json:"items"`
	AddOns []AddOn    `json:"addOns"`
}

type Client struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type Restaurant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type ItemSelection struct {
	MenuCode string   `json:"menuCode"`
	AddOns   []string `json:"addOns,omitempty"`
}

// NewOrder is the body of POST /api/v1/orders.
type NewOrder struct {
	Client     Client          `json:"client"`
	Restaurant Restaurant      `json:"restaurant"`
	Items      []ItemSelection `json:"items"`
}

type OrderConfirmation struct {
	ID           string `json:"id"`
	Confirmation string `json:"confirmation"`
}

type ActiveOrder struct {
	ID             string `json:"id"`
	ClientName     string `json:"clientName"`
	RestaurantName string `json:"restaurantName"`
	Status         string `json:"status"`
	ItemCount      int    `json:"itemCount"`
	Total          string `json:"total"`
}

type OrderItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type OrderSummary struct {
	ID             string      `json:"id"`
	ClientName     string      `json:"clientName"`
	RestaurantName string      `json:"restaurantName"`
	Status         string      `json:"status"`
	Items          []OrderItem `json:"items"`
	Total          string      `json:"total"`
	Summary        string      `json:"summary"`
}

// StatusChange is both the body and the response of PUT /api/v1/orders/{id}/status.
type StatusChange struct {
	Status string `json:"status"`
}

type Statistics struct {
	TotalOrders     int    `json:"totalOrders"`
	TotalRevenue    string `json:"totalRevenue"`
	AveragePerOrder string `json:"averagePerOrder"`
	Report          string `json:"report"`
}
