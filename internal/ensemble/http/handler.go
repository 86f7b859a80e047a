package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bandroomhq/bandroom-backend/internal/auth"
	"github.com/bandroomhq/bandroom-backend/internal/ensemble"
	"github.com/bandroomhq/bandroom-backend/internal/pkg/response"
	resHttp "github.com/bandroomhq/bandroom-backend/internal/reservation/http"
)

type Handler struct {
	service ensemble.Service
}

func NewHandler(service ensemble.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreatePollRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	memberName := auth.GetMemberName(c)
	if memberName == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	poll, err := h.service.CreatePoll(c.Request.Context(), ensemble.CreatePollRequest{
		Title:     body.Title,
		Location:  body.Location,
		CreatedBy: memberName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewPollResponse(poll))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	poll, err := h.service.GetPoll(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewPollResponse(poll))
}

// SubmitResponse stores the caller's availability. PUT because a second
// submission replaces the first.
func (h *Handler) SubmitResponse(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body SubmitResponseRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	memberName := auth.GetMemberName(c)
	if memberName == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	err := h.service.Submit(c.Request.Context(), ensemble.SubmitRequest{
		PollID:     id,
		MemberName: memberName,
		Sessions:   body.Sessions,
		Slots:      body.Slots,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Result(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	result, err := h.service.Result(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResultResponse(result))
}

func (h *Handler) Confirm(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body ConfirmRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	memberName := auth.GetMemberName(c)
	if memberName == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	res, err := h.service.Confirm(c.Request.Context(), ensemble.ConfirmRequest{
		PollID:      id,
		Date:        body.Date,
		StartTime:   body.StartTime,
		EndTime:     body.EndTime,
		ConfirmedBy: memberName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, resHttp.NewReservationResponse(res))
}
