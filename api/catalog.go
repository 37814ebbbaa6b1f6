package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/bookingcheck/internal/domain"
	"github.com/Domenick1991/bookingcheck/internal/logger"
	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the fixed airport allow-list and seating classes.
type CatalogHandler struct{}

type seatingClassResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/airports", h.airports)
	router.GET("/seating-classes", h.seatingClasses)
}

func (h *CatalogHandler) airports(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"airports": domain.AllowedAirports()})
}

func (h *CatalogHandler) seatingClasses(c *gin.Context) {
	classes := domain.SeatingClasses()
	resp := make([]seatingClassResponse, 0, len(classes))
	for _, class := range classes {
		resp = append(resp, seatingClassResponse{Code: string(class), Name: class.DisplayName()})
	}
	c.JSON(http.StatusOK, gin.H{"seating_classes": resp})
}

// NewRouter builds the gin engine serving the REST API under /api/v1.
func NewRouter(bookings *BookingHandler, catalog *CatalogHandler, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))

	v1 := router.Group("/api/v1")
	bookings.Register(v1.Group("/bookings"))
	catalog.Register(v1)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info().
			Str("uri", c.Request.RequestURI).
			Str("method", c.Request.Method).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Int("size", c.Writer.Size()).
			Send()
	}
}
