package api

import (
	"net/http"

	"github.com/Domenick1991/bookingcheck/internal/domain"
	"github.com/Domenick1991/bookingcheck/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.ValidatorUseCase
}

type validateBookingRequest struct {
	ID                     string `json:"id"`
	DepartureDate          string `json:"departure_date"`
	DepartureAirportCode   string `json:"departure_airport_code"`
	EmergencyRowSeating    bool   `json:"emergency_row_seating"`
	ReturnDate             string `json:"return_date"`
	DestinationAirportCode string `json:"destination_airport_code"`
	SeatingClass           string `json:"seating_class"`
	AdultCount             int    `json:"adult_count"`
	ChildCount             int    `json:"child_count"`
	InfantCount            int    `json:"infant_count"`
}

type validationResponse struct {
	ID            string `json:"id"`
	Accepted      bool   `json:"accepted"`
	Code          string `json:"code,omitempty"`
	Reason        string `json:"reason,omitempty"`
	ReferenceDate string `json:"reference_date"`
}

func NewBookingHandler(service booking.ValidatorUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/validate", h.validate)
}

// validate answers 200 for accepted and rejected bookings alike; a rejection
// is a result, not a request error.
func (h *BookingHandler) validate(c *gin.Context) {
	var req validateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Validate(c.Request.Context(), booking.ValidateInput{
		ID: req.ID,
		Request: domain.BookingRequest{
			DepartureDate:          req.DepartureDate,
			DepartureAirportCode:   req.DepartureAirportCode,
			EmergencyRowSeating:    req.EmergencyRowSeating,
			ReturnDate:             req.ReturnDate,
			DestinationAirportCode: req.DestinationAirportCode,
			SeatingClass:           req.SeatingClass,
			AdultCount:             req.AdultCount,
			ChildCount:             req.ChildCount,
			InfantCount:            req.InfantCount,
		},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, validationResponse{
		ID:            result.ID,
		Accepted:      result.Decision.IsAccepted(),
		Code:          string(result.Decision.Code()),
		Reason:        result.Decision.Reason(),
		ReferenceDate: result.ReferenceDate.String(),
	})
}
