package storage

import (
	"context"

	"github.com/CongregationConsole/models"
)

const (
	topSellingLimit = 3
	recentLimit     = 4
)

func (s *MemStore) TopSellingProducts(ctx context.Context) ([]models.Product, error) {
	products := s.products.list(nil, func(a, b models.Product) bool {
		if a.Sales != b.Sales {
			return a.Sales > b.Sales
		}
		return a.Product_ID < b.Product_ID
	})
	return head(products, topSellingLimit), nil
}

func (s *MemStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.products.list(nil, func(a, b models.Product) bool { return a.Product_ID < b.Product_ID }), nil
}

func (s *MemStore) RecentOrders(ctx context.Context) ([]models.Order, error) {
	orders, _ := s.ListOrders(ctx)
	return head(orders, recentLimit), nil
}

// ListOrders returns every order, newest first.
func (s *MemStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.list(nil, func(a, b models.Order) bool {
		return newerFirst(a.Datetime_Create, b.Datetime_Create, a.Order_ID, b.Order_ID)
	}), nil
}

func (s *MemStore) RecentActivities(ctx context.Context) ([]models.Activity, error) {
	activities := s.activities.list(nil, func(a, b models.Activity) bool {
		return newerFirst(a.Datetime_Create, b.Datetime_Create, a.Activity_ID, b.Activity_ID)
	})
	return head(activities, recentLimit), nil
}

// DashboardStats reports the headline figures shown on the console home.
// They are presentation values and are not derived from the tables.
func (s *MemStore) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	return models.DashboardStats{
		Users_Total:     "5,248",
		Users_Change:    12.3,
		Orders_Total:    "1,473",
		Orders_Change:   8.2,
		Revenue:         "$48,592",
		Revenue_Change:  -3.1,
		Products_Total:  "892",
		Products_Change: 4.7,
	}, nil
}

func head[T any](rows []T, n int) []T {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}
