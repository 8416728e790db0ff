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

// StoryHandler handles story-related HTTP requests
type StoryHandler struct {
	storyRepository repositories.StoryRepository
}

// NewStoryHandler creates a new StoryHandler
func NewStoryHandler(storyRepo repositories.StoryRepository) *StoryHandler {
	return &StoryHandler{storyRepository: storyRepo}
}

// RegisterStoryRoutes registers story-related routes
func (h *StoryHandler) RegisterStoryRoutes(g *echo.Group) {
	g.POST("/stories", h.CreateStory)
	g.GET("/stories/mine", h.GetMyStories)
	g.GET("/stories/:id", h.GetStory)
	g.PUT("/stories/:id", h.UpdateStory)
	g.POST("/stories/:id/publish", h.PublishStory)
	g.POST("/stories/:id/enable-chapters", h.EnableChapters)
	g.DELETE("/stories/:id", h.DeleteStory)
}

// CreateStory creates an unpublished story owned by the current user
func (h *StoryHandler) CreateStory(c echo.Context) error {
	var req models.CreateStoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	story := &models.Story{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Category:      req.Category,
		CoverImageURL: req.CoverImageURL,
		AuthorID:      currentUserID(c),
		HasChapters:   req.HasChapters,
		WordCount:     models.CountWords(req.Content),
	}

	if err := h.storyRepository.CreateStory(story); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, story)
}

// GetMyStories lists the current user's stories, published or not
func (h *StoryHandler) GetMyStories(c echo.Context) error {
	stories, err := h.storyRepository.GetStoriesByAuthor(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stories)
}

// GetStory returns a single story. Unpublished stories are visible to their
// author only and read as absent for anyone else.
func (h *StoryHandler) GetStory(c echo.Context) error {
	story, err := h.storyRepository.GetStoryByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Story not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if !story.Published && story.AuthorID != currentUserID(c) {
		return echo.NewHTTPError(http.StatusNotFound, "Story not found")
	}

	return c.JSON(http.StatusOK, story)
}

// UpdateStory patches a story's mutable fields. Word count follows content.
func (h *StoryHandler) UpdateStory(c echo.Context) error {
	var req models.UpdateStoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	story, err := h.ownedStory(c)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
		updates["word_count"] = models.CountWords(*req.Content)
	}
	if req.Excerpt != nil {
		updates["excerpt"] = *req.Excerpt
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.CoverImageURL != nil {
		updates["cover_image_url"] = *req.CoverImageURL
	}

	if len(updates) == 0 {
		return c.JSON(http.StatusOK, story)
	}

	updated, err := h.storyRepository.UpdateStory(story.ID, updates)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, updated)
}

// PublishStory transitions a story to published and stamps published_at
func (h *StoryHandler) PublishStory(c echo.Context) error {
	story, err := h.ownedStory(c)
	if err != nil {
		return err
	}

	published, err := h.storyRepository.PublishStory(story.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, published)
}

// EnableChapters flips the story into chapter mode
func (h *StoryHandler) EnableChapters(c echo.Context) error {
	story, err := h.ownedStory(c)
	if err != nil {
		return err
	}

	if err := h.storyRepository.EnableChapters(story.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteStory hard-deletes a story and its dependents
func (h *StoryHandler) DeleteStory(c echo.Context) error {
	story, err := h.ownedStory(c)
	if err != nil {
		return err
	}

	if err := h.storyRepository.DeleteStory(story.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// ownedStory loads the story from the :id param and enforces that the
// current user is its author: 404 when absent, 403 on ownership mismatch.
func (h *StoryHandler) ownedStory(c echo.Context) (*models.Story, error) {
	story, err := h.storyRepository.GetStoryByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Story not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if story.AuthorID != currentUserID(c) {
		return nil, echo.NewHTTPError(http.StatusForbidden, "Not the story's author")
	}
	return story, nil
}
