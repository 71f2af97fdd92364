package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/CongregationConsole/initializers"
	"github.com/CongregationConsole/models"
	"github.com/CongregationConsole/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUserHashesPassword(t *testing.T) {
	cleanup := SetupTestStore(t, false)
	defer cleanup()

	c, w := SetupTestContext()
	SetJSONBody(t, c, http.MethodPost, map[string]string{"username": "pastor", "password": "s3creto"})

	CreateUser(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "s3creto")

	user, found, err := initializers.Store.GetUserByUsername(c.Request.Context(), "pastor")
	require.NoError(t, err)
	require.True(t, found)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3creto")))
}

func TestCreateUserDuplicate(t *testing.T) {
	cleanup := SetupTestStore(t, true)
	defer cleanup()

	c, w := SetupTestContext()
	SetJSONBody(t, c, http.MethodPost, map[string]string{"username": "juan.perez", "password": "otra"})

	CreateUser(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{
			name:           "successful login",
			body:           map[string]string{"username": "juan.perez", "password": storage.SamplePassword},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong password",
			body:           map[string]string{"username": "juan.perez", "password": "nope"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown user",
			body:           map[string]string{"username": "nadie", "password": storage.SamplePassword},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "bad request - missing password",
			body:           map[string]string{"username": "juan.perez"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := SetupTestStore(t, true)
			defer cleanup()

			c, w := SetupTestContext()
			SetJSONBody(t, c, http.MethodPost, tt.body)

			UserLogin(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var response struct {
					User models.User `json:"user"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, "juan.perez", response.User.Username)
			}
		})
	}
}
