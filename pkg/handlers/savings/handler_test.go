package savings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/costlens/costlens/pkg/models/api"
	savingssvc "github.com/costlens/costlens/pkg/services/savings"
	"github.com/costlens/costlens/pkg/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler() *Handler {
	return NewHandler(savingssvc.NewService(memory.NewStore()))
}

func TestRecordInvalidJSON(t *testing.T) {
	handler := newHandler()

	req := httptest.NewRequest(http.MethodPost, "/savings", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.Record(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordInvalidEffectiveDate(t *testing.T) {
	handler := newHandler()

	req := httptest.NewRequest(http.MethodPost, "/savings",
		strings.NewReader(`{"resource_id":"i-1","cloud":"aws","money_saved":10,"effective_date":"15-07-2025"}`))
	rec := httptest.NewRecorder()

	handler.Record(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Contains(t, body["error"], "effective_date")
}

func TestRecordMissingAmount(t *testing.T) {
	handler := newHandler()

	req := httptest.NewRequest(http.MethodPost, "/savings",
		strings.NewReader(`{"resource_id":"i-1","cloud":"aws"}`))
	rec := httptest.NewRecorder()

	handler.Record(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, []any{"money_saved"}, body["missing_fields"])
}

func TestRecordZeroAmountAccepted(t *testing.T) {
	handler := newHandler()

	req := httptest.NewRequest(http.MethodPost, "/savings",
		strings.NewReader(`{"resource_id":"i-1","cloud":"aws","money_saved":0}`))
	rec := httptest.NewRecorder()

	handler.Record(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var receipt api.SavingsReceipt
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&receipt))
	assert.Equal(t, "i-1", receipt.ResourceID)
	assert.Equal(t, "aws", receipt.Cloud)
	assert.NotEmpty(t, receipt.ID)
}

func TestListInvalidDateParam(t *testing.T) {
	handler := newHandler()

	req := httptest.NewRequest(http.MethodGet, "/savings?startDate=July-1", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListEndDateCoversWholeDay(t *testing.T) {
	handler := newHandler()

	payload := `{"resource_id":"i-1","cloud":"aws","money_saved":40,"effective_date":"2025-07-15"}`
	rec := httptest.NewRecorder()
	handler.Record(rec, httptest.NewRequest(http.MethodPost, "/savings", strings.NewReader(payload)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/savings?endDate=2025-07-15", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var list api.SavingsList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	assert.Equal(t, 1, list.Count, "an event on the end date itself is included")
	assert.Equal(t, 40.0, list.TotalSavings)
}

func TestParseDateParam(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		expected    *time.Time
		expectError bool
	}{
		{
			name:  "valid date",
			query: "startDate=2025-07-15",
			expected: func() *time.Time {
				d := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
				return &d
			}(),
		},
		{
			name:     "absent param",
			query:    "",
			expected: nil,
		},
		{
			name:        "wrong format",
			query:       "startDate=15-07-2025",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/savings?"+tt.query, nil)
			got, err := parseDateParam(req, "startDate")

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
