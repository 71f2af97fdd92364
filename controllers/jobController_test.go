package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/CongregationConsole/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJobsOnlyActiveByDefault(t *testing.T) {
	cleanup := SetupTestStore(t, true)
	defer cleanup()

	c, w := SetupTestContext()
	SetParam(c, "id", "1")
	ToggleJobStatus(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = SetupTestContext()
	GetJobs(c)
	var public []models.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &public))
	assert.Len(t, public, 2)

	c, w = SetupTestContext()
	GetAdminJobs(c)
	var all []models.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 3)
}

func TestReviewJobApplication(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		body           interface{}
		expectedStatus int
	}{
		{
			name:           "accept application",
			id:             "1",
			body:           map[string]interface{}{"status": "accepted", "reviewedBy": 1},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad request - unknown status",
			id:             "1",
			body:           map[string]interface{}{"status": "maybe"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing application",
			id:             "99",
			body:           map[string]interface{}{"status": "rejected"},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := SetupTestStore(t, true)
			defer cleanup()

			c, w := SetupTestContext()
			SetJSONBody(t, c, http.MethodPut, tt.body)
			SetParam(c, "id", tt.id)

			ReviewJobApplication(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var application models.JobApplication
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &application))
				assert.Equal(t, "accepted", application.Status)
				assert.NotNil(t, application.Reviewed_At)
			}
		})
	}
}

func TestGetJobStats(t *testing.T) {
	cleanup := SetupTestStore(t, true)
	defer cleanup()

	c, w := SetupTestContext()
	GetJobStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var stats models.JobSystemStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.Total_Jobs)
	assert.Equal(t, 4, stats.Total_Applications)
}
