package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bandroomhq/bandroom-backend/internal/auth"
	"github.com/bandroomhq/bandroom-backend/internal/concert"
	"github.com/bandroomhq/bandroom-backend/internal/pkg/response"
)

// Poster uploads are capped; anything bigger than a reasonable poster scan is
// rejected before decoding.
const maxPosterBytes = 10 << 20

type Handler struct {
	service concert.Service
}

func NewHandler(service concert.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateConcertRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	memberName := auth.GetMemberName(c)
	if memberName == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	setList := make([]concert.SetListItem, len(body.SetList))
	for i, item := range body.SetList {
		setList[i] = concert.SetListItem{Title: item.Title, Note: item.Note}
	}

	con, err := h.service.Create(c.Request.Context(), concert.CreateRequest{
		Title:     body.Title,
		Venue:     body.Venue,
		Date:      body.Date,
		StartTime: body.Start,
		EndTime:   body.End,
		SetList:   setList,
		CreatedBy: memberName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewConcertResponse(con))
}

func (h *Handler) List(c *gin.Context) {
	concerts, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ConcertResponse, len(concerts))
	for i, con := range concerts {
		items[i] = NewConcertResponse(con)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	con, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewConcertResponse(con))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) UploadPoster(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	fileHeader, err := c.FormFile("poster")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "poster file is required"})
		return
	}
	if fileHeader.Size > maxPosterBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "poster file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer file.Close()

	if err := h.service.AttachPoster(c.Request.Context(), id, file); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetPoster(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	poster, err := h.service.OpenPoster(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer poster.Close()

	c.Header("Content-Type", "image/jpeg")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, poster)
}
