package create_reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-salon/reservation-service/internal/domain"
	createReservation "github.com/lumina-salon/reservation-service/internal/usecase/create_reservation"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *createReservation.Response
	err  error

	gotReq *createReservation.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func validBody() string {
	return `{
		"serviceId": 1,
		"name": "山田花子",
		"email": "hanako@example.com",
		"phone": "090-1234-5678",
		"date": "2025-03-10",
		"timeSlot": "10:00-11:00"
	}`
}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/reservations", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createReservation.Response{
		ID: 7,
		Service: &domain.Service{
			ID: 1, Title: "プレミアムフェイシャル", Price: 12000, DurationMinutes: 60,
		},
		Name:          "山田花子",
		Email:         "hanako@example.com",
		Phone:         "090-1234-5678",
		Date:          time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		TimeRange:     "10:00-11:00",
		PaymentStatus: "pending",
		CreatedAt:     time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc, validBody())

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(7), resp.ReservationID)
	assert.Equal(t, "プレミアムフェイシャル", resp.Data.Service.Title)
	assert.Equal(t, "山田花子", resp.Data.Customer.Name)
	assert.Equal(t, "2025-03-10", resp.Data.Date)
	assert.Equal(t, "10:00-11:00", resp.Data.TimeSlot)

	// Проверяем, что handler корректно распарсил дату для use case
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), uc.gotReq.Date)
}

func TestHandle_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"serviceId": `},
		{"unknown field", `{"serviceId": 1, "unknownField": true}`},
		{"trailing data", `{"serviceId": 1}{"serviceId": 2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}

			rec := doRequest(t, uc, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.gotReq)
		})
	}
}

func TestHandle_InvalidDate(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, `{"serviceId": 1, "date": "10.03.2025", "timeSlot": "10:00-11:00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation error", createReservation.ErrInvalidInput, http.StatusBadRequest},
		{"service not found", createReservation.ErrServiceNotFound, http.StatusNotFound},
		{"time slot not found", createReservation.ErrTimeSlotNotFound, http.StatusNotFound},
		{"slot full", createReservation.ErrSlotFull, http.StatusBadRequest},
		{"concurrent conflict", createReservation.ErrConflict, http.StatusConflict},
		{"internal error", createReservation.ErrInternal, http.StatusInternalServerError},
		{"unknown error", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: fmt.Errorf("wrapped: %w", tt.err)}

			rec := doRequest(t, uc, validBody())

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandle_InternalErrorHidesDetails(t *testing.T) {
	uc := &fakeUseCase{err: fmt.Errorf("pq: connection refused to host 10.0.0.5")}

	rec := doRequest(t, uc, validBody())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	assert.NotContains(t, rec.Body.String(), "pq:")
}
