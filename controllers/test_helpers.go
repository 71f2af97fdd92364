package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CongregationConsole/initializers"
	"github.com/CongregationConsole/storage"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/gin-gonic/gin"
)

// SetupTestDB backs the global store with a sqlmock database. Only the
// database-backed families reach the mock.
func SetupTestDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}

	originalStore := initializers.Store
	initializers.Store = storage.NewDatabaseStorage(goqu.New("postgres", db), false)

	cleanup := func() {
		db.Close()
		initializers.Store = originalStore
	}

	return mock, cleanup
}

// SetupTestStore backs the global store with a fresh in-memory store.
func SetupTestStore(t *testing.T, samples bool) func() {
	originalStore := initializers.Store
	initializers.Store = storage.NewMemStorage(samples)
	return func() {
		initializers.Store = originalStore
	}
}

// SetupTestContext creates a test Gin context with a response recorder
func SetupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

// SetJSONBody attaches body, encoded as JSON, to the context's request.
func SetJSONBody(t *testing.T, c *gin.Context, method string, body interface{}) {
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to encode body: %v", err)
	}
	c.Request = httptest.NewRequest(method, "/", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
}

// SetQuery replaces the context's request with a GET carrying query.
func SetQuery(c *gin.Context, query string) {
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
}

func SetParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}
