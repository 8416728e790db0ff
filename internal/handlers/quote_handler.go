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

// QuoteHandler handles quote-related HTTP requests
type QuoteHandler struct {
	quoteRepository repositories.QuoteRepository
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(quoteRepo repositories.QuoteRepository) *QuoteHandler {
	return &QuoteHandler{quoteRepository: quoteRepo}
}

// RegisterQuoteRoutes registers quote routes on the authenticated group
func (h *QuoteHandler) RegisterQuoteRoutes(g *echo.Group) {
	g.POST("/quotes", h.CreateQuote)
	g.GET("/quotes", h.GetMyQuotes)
	g.DELETE("/quotes/:id", h.DeleteQuote)
}

// RegisterPublicQuoteRoutes registers the unauthenticated public quote feed
func (h *QuoteHandler) RegisterPublicQuoteRoutes(e *echo.Echo) {
	e.GET("/api/v1/quotes/public", h.GetPublicQuotes)
}

// CreateQuote saves a passage as a quote. Duplicates are allowed; the
// is_public flag decides whether it shows up in the public feed.
func (h *QuoteHandler) CreateQuote(c echo.Context) error {
	var req models.CreateQuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	quote := &models.Quote{
		ID:        uuid.NewString(),
		UserID:    currentUserID(c),
		StoryID:   req.StoryID,
		ChapterID: req.ChapterID,
		Text:      req.Text,
		IsPublic:  req.IsPublic,
	}

	if err := h.quoteRepository.CreateQuote(quote); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, quote)
}

// GetMyQuotes lists the current user's quotes with their stories
func (h *QuoteHandler) GetMyQuotes(c echo.Context) error {
	quotes, err := h.quoteRepository.GetUserQuotes(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, quotes)
}

// GetPublicQuotes returns the global public quote feed
func (h *QuoteHandler) GetPublicQuotes(c echo.Context) error {
	quotes, err := h.quoteRepository.GetPublicQuotes()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"quotes": quotes,
		},
	})
}

// DeleteQuote removes one of the current user's quotes
func (h *QuoteHandler) DeleteQuote(c echo.Context) error {
	quote, err := h.quoteRepository.GetQuoteByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Quote not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if quote.UserID != currentUserID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "Not your quote")
	}

	if err := h.quoteRepository.DeleteQuote(quote.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
