package api

import (
	"errors"
	"net/http"

	"gearup/internal/domain/booking"
	"gearup/internal/domain/court"
	reqdto "gearup/internal/handler/dto/request"
	resdto "gearup/internal/handler/dto/response"
	"gearup/internal/usecase/commands"
	"gearup/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CourtHandler struct {
	courtCommands       commands.CourtCommands
	venueQueries        queries.VenueQueries
	availabilityQueries queries.AvailabilityQueries
}

func NewCourtHandler(
	courtCommands commands.CourtCommands,
	venueQueries queries.VenueQueries,
	availabilityQueries queries.AvailabilityQueries,
) *CourtHandler {
	return &CourtHandler{
		courtCommands:       courtCommands,
		venueQueries:        venueQueries,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary List venues
// @Tags venues
// @Produce json
// @Success 200 {array} resdto.VenueResponse
// @Router /venues [get]
func (h *CourtHandler) ListVenues(c *gin.Context) {
	views, err := h.venueQueries.ListVenues(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]resdto.VenueResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromVenueView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Create venue
// @Description Create a venue (admin only)
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVenueRequest true "Venue request"
// @Success 201 {object} resdto.VenueResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /venues [post]
func (h *CourtHandler) CreateVenue(c *gin.Context) {
	var req reqdto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	v, err := h.courtCommands.CreateVenue(c.Request.Context(), req.Name, req.Location, req.Contact)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromVenue(v))
}

// @Summary List courts
// @Description List the courts of a venue
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {array} resdto.CourtResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{id}/courts [get]
func (h *CourtHandler) ListCourts(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}

	views, err := h.venueQueries.ListCourts(c.Request.Context(), venueID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrVenueNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Venue not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]resdto.CourtResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromCourtView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Create court
// @Description Add a court to a venue (admin only)
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param request body reqdto.CreateCourtRequest true "Court request"
// @Success 201 {object} resdto.CourtResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{id}/courts [post]
func (h *CourtHandler) CreateCourt(c *gin.Context) {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}

	var req reqdto.CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	sportType, err := court.NewSportType(req.SportType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid sport type",
		})
		return
	}

	ct, err := h.courtCommands.CreateCourt(c.Request.Context(), venueID, req.Name, sportType)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrVenueNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Venue not found",
			})
		case errors.Is(err, court.ErrInvalidName):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Court name cannot be empty",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCourt(ct))
}

// @Summary Slot availability
// @Description List the 24 hourly slots of a court for one date
// @Tags courts
// @Produce json
// @Param id path string true "Court ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courts/{id}/slots [get]
func (h *CourtHandler) GetSlots(c *gin.Context) {
	courtID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid court ID format",
		})
		return
	}

	date, err := booking.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	slots, err := h.availabilityQueries.ForCourtDate(c.Request.Context(), courtID, date)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Court not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response := make([]resdto.SlotResponse, len(slots))
	for i, s := range slots {
		response[i] = resdto.FromSlotAvailability(s)
	}
	c.JSON(http.StatusOK, response)
}
