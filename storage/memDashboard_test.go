package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CongregationConsole/models"
)

func TestDashboardWithSamples(t *testing.T) {
	s := NewMemStore(true)
	ctx := context.Background()

	top, err := s.TopSellingProducts(ctx)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "PRD-001", top[0].SKU)
	assert.Equal(t, 198, top[2].Sales)

	orders, err := s.RecentOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 4)
	assert.Equal(t, "ORD-0102", orders[0].Order_Number)
	assert.Equal(t, "ORD-0099", orders[3].Order_Number)

	activities, err := s.RecentActivities(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 4)
	assert.Equal(t, "user", activities[0].Type)

	stats, err := s.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, "5,248", stats.Users_Total)
	assert.Equal(t, -3.1, stats.Revenue_Change)
}

func TestUsers(t *testing.T) {
	s := newTestMemStore()
	ctx := context.Background()

	created, err := s.CreateUser(ctx, models.UserCreate{Username: "ana", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.User_ID)

	byName, found, err := s.GetUserByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, created, byName)

	_, found, _ = s.GetUser(ctx, 2)
	assert.False(t, found)

	users, _ := s.ListUsers(ctx)
	assert.Len(t, users, 1)
}

func TestEmptyStoreListsAreNotNil(t *testing.T) {
	s := newTestMemStore()
	ctx := context.Background()

	products, _ := s.TopSellingProducts(ctx)
	assert.NotNil(t, products)
	programs, _ := s.ListProgramsWithDays(ctx, models.ProgramFilter{})
	assert.NotNil(t, programs)
	requests, _ := s.ListPrayerRequests(ctx, models.PrayerRequestFilter{})
	assert.NotNil(t, requests)
	threads, _ := s.ListThreads(ctx, models.ThreadFilter{})
	assert.NotNil(t, threads)
}
