package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/bookingcheck/internal/domain"
	"github.com/Domenick1991/bookingcheck/internal/logger"
	"github.com/Domenick1991/bookingcheck/internal/service/booking"
	"github.com/Domenick1991/bookingcheck/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockValidatorUseCase is a mock implementation of booking.ValidatorUseCase
type MockValidatorUseCase struct {
	mock.Mock
}

func (m *MockValidatorUseCase) Validate(ctx context.Context, input booking.ValidateInput) (*booking.Result, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Result), args.Error(1)
}

var referenceDate = validation.Date{Year: 2025, Month: time.October, Day: 1}

func TestBookingHandler_validate_Accepted(t *testing.T) {
	mockService := &MockValidatorUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := []byte(`{
		"id": "req-1",
		"departure_date": "20/10/2025",
		"departure_airport_code": "DEL",
		"emergency_row_seating": false,
		"return_date": "28/10/2025",
		"destination_airport_code": "DOH",
		"seating_class": "Economy",
		"adult_count": 2,
		"child_count": 1,
		"infant_count": 0
	}`)
	c.Request = httptest.NewRequest("POST", "/api/v1/bookings/validate", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	input := booking.ValidateInput{
		ID: "req-1",
		Request: domain.BookingRequest{
			DepartureDate:          "20/10/2025",
			DepartureAirportCode:   "DEL",
			ReturnDate:             "28/10/2025",
			DestinationAirportCode: "DOH",
			SeatingClass:           "Economy",
			AdultCount:             2,
			ChildCount:             1,
		},
	}
	result := &booking.Result{ID: "req-1", Decision: domain.Accepted(), ReferenceDate: referenceDate}

	mockService.On("Validate", c.Request.Context(), input).Return(result, nil)

	handler.validate(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response validationResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "req-1", response.ID)
	assert.True(t, response.Accepted)
	assert.Empty(t, response.Code)
	assert.Equal(t, "01/10/2025", response.ReferenceDate)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_validate_Rejected(t *testing.T) {
	mockService := &MockValidatorUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := []byte(`{"departure_airport_code":"XYZ","adult_count":1}`)
	c.Request = httptest.NewRequest("POST", "/api/v1/bookings/validate", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	result := &booking.Result{
		ID:            "generated",
		Decision:      domain.Rejected(domain.ReasonDepartureAirportNotAllowed, "Departure airport 'XYZ' is not allowed."),
		ReferenceDate: referenceDate,
	}
	mockService.On("Validate", c.Request.Context(), mock.AnythingOfType("booking.ValidateInput")).Return(result, nil)

	handler.validate(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response validationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Accepted)
	assert.Equal(t, "DEPARTURE_AIRPORT_NOT_ALLOWED", response.Code)
	assert.Equal(t, "Departure airport 'XYZ' is not allowed.", response.Reason)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_validate_BadJSON(t *testing.T) {
	mockService := &MockValidatorUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/api/v1/bookings/validate", bytes.NewReader([]byte(`{"adult_count":"two"}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.validate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
	mockService.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything)
}

func TestBookingHandler_validate_ServiceError(t *testing.T) {
	mockService := &MockValidatorUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/api/v1/bookings/validate", bytes.NewReader([]byte(`{}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Validate", c.Request.Context(), mock.Anything).Return(nil, errors.New("context canceled"))

	handler.validate(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockService.AssertExpectations(t)
}

func TestRouter_EndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	v := validation.New(validation.WithReferenceDate(referenceDate))
	router := NewRouter(NewBookingHandler(booking.NewBookingService(v)), NewCatalogHandler(), logger.Nop())

	testCases := []struct {
		name     string
		body     string
		accepted bool
		reason   string
	}{
		{
			name:     "accepted",
			body:     `{"departure_date":"20/10/2025","departure_airport_code":"DEL","return_date":"28/10/2025","destination_airport_code":"DOH","seating_class":"Economy","adult_count":2,"child_count":1}`,
			accepted: true,
		},
		{
			name:   "child in emergency row",
			body:   `{"departure_date":"20/10/2025","departure_airport_code":"DEL","emergency_row_seating":true,"return_date":"28/10/2025","destination_airport_code":"DOH","seating_class":"Economy","adult_count":1,"child_count":1}`,
			reason: "Children cannot be seated in emergency row seating.",
		},
		{
			name:   "same airport",
			body:   `{"departure_date":"20/10/2025","departure_airport_code":"DEL","return_date":"28/10/2025","destination_airport_code":"DEL","seating_class":"Economy","adult_count":1}`,
			reason: "Departure and destination airports cannot be the same.",
		},
		{
			name:   "negative counts",
			body:   `{"departure_date":"20/10/2025","departure_airport_code":"DEL","return_date":"28/10/2025","destination_airport_code":"DOH","seating_class":"Economy","adult_count":2,"infant_count":-1}`,
			reason: "Passenger counts cannot be negative.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/validate", bytes.NewReader([]byte(tc.body)))
			r.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, r)

			require.Equal(t, http.StatusOK, w.Code)

			var response validationResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tc.accepted, response.Accepted)
			assert.Equal(t, tc.reason, response.Reason)
			assert.NotEmpty(t, response.ID)
		})
	}
}

func TestRouter_Catalog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(NewBookingHandler(&MockValidatorUseCase{}), NewCatalogHandler(), logger.Nop())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/airports", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var airports struct {
		Airports []string `json:"airports"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &airports))
	assert.Equal(t, []string{"SYD", "MEL", "LAX", "CDG", "DEL", "PVG", "DOH"}, airports.Airports)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/seating-classes", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var classes struct {
		SeatingClasses []seatingClassResponse `json:"seating_classes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &classes))
	require.Len(t, classes.SeatingClasses, 4)
	assert.Equal(t, seatingClassResponse{Code: "premium economy", Name: "Premium Economy"}, classes.SeatingClasses[1])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
