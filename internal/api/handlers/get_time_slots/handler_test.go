package get_time_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/lumina-salon/reservation-service/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error

	gotReq *getAvailableSlots.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func doRequest(t *testing.T, uc *fakeUseCase, query string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, "/timeslots"+query, nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		ServiceID: 1,
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Slots: []getAvailableSlots.Slot{
			{ID: 11, TimeRange: "10:00-11:00", Available: true},
			{ID: 12, TimeRange: "11:00-12:00", Available: false},
		},
	}}

	rec := doRequest(t, uc, "?date=2025-03-10&serviceId=1")

	require.Equal(t, http.StatusOK, rec.Code)

	var slots []TimeSlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slots))
	require.Len(t, slots, 2)
	assert.Equal(t, TimeSlotResponse{ID: 11, TimeSlot: "10:00-11:00", Available: true}, slots[0])
	assert.Equal(t, TimeSlotResponse{ID: 12, TimeSlot: "11:00-12:00", Available: false}, slots[1])

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(1), uc.gotReq.ServiceID)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), uc.gotReq.Date)
}

func TestHandle_EmptyResultIsFlatArray(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		ServiceID: 1,
		Date:      time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		Slots:     []getAvailableSlots.Slot{},
	}}

	rec := doRequest(t, uc, "?date=2030-01-01&serviceId=1")

	require.Equal(t, http.StatusOK, rec.Code)
	// Пустой результат - это "[]", а не null и не ошибка
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHandle_BadQueryParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"missing date", "?serviceId=1"},
		{"missing service id", "?date=2025-03-10"},
		{"no params", ""},
		{"non-numeric service id", "?date=2025-03-10&serviceId=abc"},
		{"invalid date format", "?date=10.03.2025&serviceId=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}

			rec := doRequest(t, uc, tt.query)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.gotReq)
		})
	}
}

func TestHandle_ValidationErrorFromUseCase(t *testing.T) {
	uc := &fakeUseCase{err: fmt.Errorf("wrapped: %w", getAvailableSlots.ErrInvalidInput)}

	rec := doRequest(t, uc, "?date=2025-03-10&serviceId=1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: fmt.Errorf("wrapped: %w", getAvailableSlots.ErrInternal)}

	rec := doRequest(t, uc, "?date=2025-03-10&serviceId=1")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
