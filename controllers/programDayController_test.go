package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/CongregationConsole/initializers"
	"github.com/CongregationConsole/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProgramDays(t *testing.T) {
	tests := []struct {
		name           string
		programID      string
		expectedStatus int
		expectedLen    int
	}{
		{name: "seeded program", programID: "1", expectedStatus: http.StatusOK, expectedLen: 2},
		{name: "missing program", programID: "42", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := SetupTestStore(t, true)
			defer cleanup()

			c, w := SetupTestContext()
			SetParam(c, "id", tt.programID)

			GetProgramDays(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var days []models.ProgramDay
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &days))
				assert.Len(t, days, tt.expectedLen)
				assert.Equal(t, 1, days[0].Day_Number)
			}
		})
	}
}

func TestCreateProgramDay(t *testing.T) {
	tests := []struct {
		name           string
		programID      string
		body           interface{}
		expectedStatus int
		expectedTotal  int
	}{
		{
			name:           "successful create recounts days",
			programID:      "1",
			body:           map[string]interface{}{"numero": 3, "titulo": "Perseverancia", "lecturas": []string{"Lucas 18"}},
			expectedStatus: http.StatusCreated,
			expectedTotal:  3,
		},
		{
			name:           "missing program",
			programID:      "9",
			body:           map[string]interface{}{"numero": 1, "titulo": "Inicio"},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "bad request - missing title",
			programID:      "1",
			body:           map[string]interface{}{"numero": 4},
			expectedStatus: http.StatusBadRequest,
			expectedTotal:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := SetupTestStore(t, true)
			defer cleanup()

			c, w := SetupTestContext()
			SetJSONBody(t, c, http.MethodPost, tt.body)
			SetParam(c, "id", tt.programID)

			CreateProgramDay(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedTotal > 0 {
				program, found, err := initializers.Store.GetProgram(c.Request.Context(), 1)
				require.NoError(t, err)
				require.True(t, found)
				assert.Equal(t, tt.expectedTotal, program.Total_Days)
			}
		})
	}
}

func TestDeleteProgramDay(t *testing.T) {
	cleanup := SetupTestStore(t, true)
	defer cleanup()

	c, w := SetupTestContext()
	SetParam(c, "id", "1")

	DeleteProgramDay(c)

	assert.Equal(t, http.StatusOK, w.Code)
	program, _, err := initializers.Store.GetProgram(c.Request.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, program.Total_Days)
}

func TestUpdateProgramDayMissing(t *testing.T) {
	cleanup := SetupTestStore(t, false)
	defer cleanup()

	c, w := SetupTestContext()
	SetJSONBody(t, c, http.MethodPut, map[string]interface{}{"titulo": "Nuevo"})
	SetParam(c, "id", "7")

	UpdateProgramDay(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
