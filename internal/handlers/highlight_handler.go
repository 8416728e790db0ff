package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sable-ink/inkwell/backend/internal/models"
	"github.com/sable-ink/inkwell/backend/internal/repositories"
	"gorm.io/gorm"
)

// HighlightHandler handles highlight-related HTTP requests
type HighlightHandler struct {
	highlightRepository repositories.HighlightRepository
}

// NewHighlightHandler creates a new HighlightHandler
func NewHighlightHandler(highlightRepo repositories.HighlightRepository) *HighlightHandler {
	return &HighlightHandler{highlightRepository: highlightRepo}
}

// RegisterHighlightRoutes registers highlight-related routes
func (h *HighlightHandler) RegisterHighlightRoutes(g *echo.Group) {
	g.POST("/highlights", h.CreateHighlight)
	g.GET("/highlights", h.GetMyHighlights)
	g.GET("/stories/:story_id/highlights", h.GetStoryHighlights)
	g.DELETE("/highlights/:id", h.DeleteHighlight)
}

// CreateHighlight saves a marked passage. Duplicates are allowed.
func (h *HighlightHandler) CreateHighlight(c echo.Context) error {
	var req models.CreateHighlightRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	highlight := &models.Highlight{
		ID:          uuid.NewString(),
		UserID:      currentUserID(c),
		StoryID:     req.StoryID,
		ChapterID:   req.ChapterID,
		Text:        req.Text,
		StartOffset: req.StartOffset,
		EndOffset:   req.EndOffset,
		Color:       req.Color,
		Note:        req.Note,
	}
	if highlight.Color == "" {
		highlight.Color = "yellow"
	}

	if err := h.highlightRepository.CreateHighlight(highlight); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, highlight)
}

// GetMyHighlights lists all of the current user's highlights
func (h *HighlightHandler) GetMyHighlights(c echo.Context) error {
	highlights, err := h.highlightRepository.GetUserHighlights(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, highlights)
}

// GetStoryHighlights lists the current user's highlights on one story
func (h *HighlightHandler) GetStoryHighlights(c echo.Context) error {
	highlights, err := h.highlightRepository.GetStoryHighlights(currentUserID(c), c.Param("story_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, highlights)
}

// DeleteHighlight removes one of the current user's highlights
func (h *HighlightHandler) DeleteHighlight(c echo.Context) error {
	highlight, err := h.highlightRepository.GetHighlightByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Highlight not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if highlight.UserID != currentUserID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "Not your highlight")
	}

	if err := h.highlightRepository.DeleteHighlight(highlight.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
