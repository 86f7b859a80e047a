package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bandroomhq/bandroom-backend/internal/auth"
	"github.com/bandroomhq/bandroom-backend/internal/member"
	"github.com/bandroomhq/bandroom-backend/internal/pkg/response"
	"github.com/bandroomhq/bandroom-backend/internal/reservation"
)

type Handler struct {
	service       reservation.Service
	memberService member.Service
}

func NewHandler(service reservation.Service, memberService member.Service) *Handler {
	return &Handler{service: service, memberService: memberService}
}

// isAdmin checks whether the current member has admin rights.
func (h *Handler) isAdmin(c *gin.Context) bool {
	memberID := auth.GetMemberID(c)
	if memberID == "" {
		return false
	}
	m, err := h.memberService.GetByID(c.Request.Context(), memberID)
	if err != nil {
		return false
	}
	return m.IsAdmin
}

func (h *Handler) List(c *gin.Context) {
	var query ListReservationsRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := reservation.Filter{
		FromDate: query.From,
		ToDate:   query.To,
		Kind:     query.Kind,
		UserName: query.User,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	reservations, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ReservationResponse, len(reservations))
	for i, r := range reservations {
		items[i] = NewReservationResponse(r)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateReservationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userName := auth.GetMemberName(c)
	if userName == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	res, err := h.service.Create(c.Request.Context(), reservation.CreateRequest{
		Date:      body.Date,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		UserName:  userName,
		Purpose:   body.Purpose,
		Kind:      reservation.KindRehearsal,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewReservationResponse(res))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewReservationResponse(res))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	err := h.service.Delete(c.Request.Context(), id, auth.GetMemberName(c), h.isAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Availability reports the free windows for a date and, when ?start=HH:MM is
// given, the maximal end a booking starting there could extend to.
func (h *Handler) Availability(c *gin.Context) {
	var query AvailabilityRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	avail, err := h.service.Availability(c.Request.Context(), query.Date, query.Start)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewAvailabilityResponse(avail))
}
