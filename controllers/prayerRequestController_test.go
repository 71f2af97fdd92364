package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/CongregationConsole/models"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePrayerRequest(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{
			name:           "successful create",
			body:           map[string]interface{}{"peticion": "Por mi familia", "autor": "Luis"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "bad request - unknown status",
			body:           map[string]interface{}{"peticion": "Por mi familia", "autor": "Luis", "estado": "cerrada"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - missing author",
			body:           map[string]interface{}{"peticion": "Por mi familia"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := SetupTestStore(t, false)
			defer cleanup()

			c, w := SetupTestContext()
			SetJSONBody(t, c, http.MethodPost, tt.body)

			CreatePrayerRequest(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusCreated {
				var request models.PrayerRequest
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &request))
				assert.Equal(t, models.PrayerStatusPending, request.Status)
				assert.Equal(t, models.DefaultPrayerCategory, request.Category)
				assert.Equal(t, 0, request.Prayer_Count)
			}
		})
	}
}

func TestGetPrayerRequestsFilter(t *testing.T) {
	cleanup := SetupTestStore(t, true)
	defer cleanup()

	c, w := SetupTestContext()
	SetQuery(c, "categoria=salud")

	GetPrayerRequests(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var requests []models.PrayerRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &requests))
	require.Len(t, requests, 1)
	assert.Equal(t, "María González", requests[0].Author)
}

func TestPrayForRequest(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		setupMock      func(mock sqlmock.Sqlmock)
		expectedStatus int
		expectedCount  int
	}{
		{
			name: "increments count",
			id:   "5",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE "prayer_requests" SET (.*)"prayer_count"=prayer_count \+ 1(.*)WHERE \("prayer_request_id" = 5\) RETURNING \*`).
					WillReturnRows(MockPrayerRequestRows(5, models.PrayerStatusPraying, 8))
			},
			expectedStatus: http.StatusOK,
			expectedCount:  8,
		},
		{
			name: "missing request",
			id:   "6",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE "prayer_requests"`).WillReturnRows(sqlmock.NewRows(prayerRequestColumns))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "bad request - invalid id",
			id:             "x",
			setupMock:      func(mock sqlmock.Sqlmock) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, cleanup := SetupTestDB(t)
			defer cleanup()
			tt.setupMock(mock)

			c, w := SetupTestContext()
			SetParam(c, "id", tt.id)

			PrayForRequest(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var request models.PrayerRequest
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &request))
				assert.Equal(t, tt.expectedCount, request.Prayer_Count)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdatePrayerRequestStatus(t *testing.T) {
	mock, cleanup := SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`UPDATE "prayer_requests" SET (.*)"status"='respondida'(.*)WHERE \("prayer_request_id" = 2\)`).
		WillReturnRows(MockPrayerRequestRows(2, models.PrayerStatusAnswered, 3))

	c, w := SetupTestContext()
	SetJSONBody(t, c, http.MethodPut, map[string]string{"estado": models.PrayerStatusAnswered})
	SetParam(c, "id", "2")

	UpdatePrayerRequest(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
