package controllers

import (
	"net/http"

	"github.com/CongregationConsole/initializers"
	"github.com/gin-gonic/gin"
)

func GetDashboardStats(c *gin.Context) {
	stats, err := initializers.Store.DashboardStats(c.Request.Context())
	if err != nil {
		storeError(c, "fetch dashboard stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func GetProducts(c *gin.Context) {
	products, err := initializers.Store.ListProducts(c.Request.Context())
	if err != nil {
		storeError(c, "fetch products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func GetTopSellingProducts(c *gin.Context) {
	products, err := initializers.Store.TopSellingProducts(c.Request.Context())
	if err != nil {
		storeError(c, "fetch top selling products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func GetOrders(c *gin.Context) {
	orders, err := initializers.Store.ListOrders(c.Request.Context())
	if err != nil {
		storeError(c, "fetch orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func GetRecentOrders(c *gin.Context) {
	orders, err := initializers.Store.RecentOrders(c.Request.Context())
	if err != nil {
		storeError(c, "fetch recent orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func GetRecentActivities(c *gin.Context) {
	activities, err := initializers.Store.RecentActivities(c.Request.Context())
	if err != nil {
		storeError(c, "fetch recent activities", err)
		return
	}
	c.JSON(http.StatusOK, activities)
}
