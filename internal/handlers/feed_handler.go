package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sable-ink/inkwell/backend/internal/repositories"
)

// FeedHandler handles the public story feed and per-user liked stories
type FeedHandler struct {
	storyRepository repositories.StoryRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(storyRepo repositories.StoryRepository) *FeedHandler {
	return &FeedHandler{storyRepository: storyRepo}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
	g.GET("/feed/liked", h.GetLikedStories)
}

// GetFeed returns published stories with author profiles and like counts.
// category defaults to all; the default sort is trending (like count), with
// sort=recent switching to publish recency.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	category := c.QueryParam("category")
	sortBy := c.QueryParam("sort")

	stories, err := h.storyRepository.GetPublishedStories(category, sortBy)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"stories": stories,
		},
	})
}

// GetLikedStories returns the stories the current user has liked
func (h *FeedHandler) GetLikedStories(c echo.Context) error {
	stories, err := h.storyRepository.GetLikedStories(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"stories": stories,
		},
	})
}
