package models

import "time"

type Product struct {
	Product_ID      int       `json:"id"`
	SKU             string    `json:"productId"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	Price           string    `json:"price"`
	Category        string    `json:"category"`
	Image_URL       *string   `json:"imageUrl"`
	Sales           int       `json:"sales"`
	Datetime_Create time.Time `json:"createdAt"`
}

type OrderCustomer struct {
	Name       string `json:"name"`
	Avatar_URL string `json:"avatarUrl"`
}

type Order struct {
	Order_ID        int           `json:"id"`
	Order_Number    string        `json:"orderNumber"`
	User_ID         int           `json:"userId"`
	Status          string        `json:"status"`
	Total           string        `json:"total"`
	Date            string        `json:"date"`
	Customer        OrderCustomer `json:"customer"`
	Datetime_Create time.Time     `json:"createdAt"`
}

type Activity struct {
	Activity_ID     int       `json:"id"`
	Type            string    `json:"type"`
	Message         string    `json:"message"`
	Time_Ago        string    `json:"timeAgo"`
	Datetime_Create time.Time `json:"createdAt"`
}

// DashboardStats is computed on request and never stored.
type DashboardStats struct {
	Users_Total     string  `json:"usersTotal"`
	Users_Change    float64 `json:"usersChange"`
	Orders_Total    string  `json:"ordersTotal"`
	Orders_Change   float64 `json:"ordersChange"`
	Revenue         string  `json:"revenue"`
	Revenue_Change  float64 `json:"revenueChange"`
	Products_Total  string  `json:"productsTotal"`
	Products_Change float64 `json:"productsChange"`
}
