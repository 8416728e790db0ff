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

// DraftHandler handles draft-related HTTP requests
type DraftHandler struct {
	draftRepository repositories.DraftRepository
	storyRepository repositories.StoryRepository
}

// NewDraftHandler creates a new DraftHandler
func NewDraftHandler(draftRepo repositories.DraftRepository, storyRepo repositories.StoryRepository) *DraftHandler {
	return &DraftHandler{
		draftRepository: draftRepo,
		storyRepository: storyRepo,
	}
}

// RegisterDraftRoutes registers draft-related routes
func (h *DraftHandler) RegisterDraftRoutes(g *echo.Group) {
	g.POST("/drafts", h.CreateDraft)
	g.GET("/drafts", h.GetMyDrafts)
	g.GET("/drafts/:id", h.GetDraft)
	g.PUT("/drafts/:id", h.UpdateDraft)
	g.DELETE("/drafts/:id", h.DeleteDraft)
	g.POST("/drafts/:id/promote", h.PromoteDraft)
}

// CreateDraft creates a scratch draft for the current user
func (h *DraftHandler) CreateDraft(c echo.Context) error {
	var req models.CreateDraftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	draft := &models.Draft{
		ID:            uuid.NewString(),
		AuthorID:      currentUserID(c),
		Title:         req.Title,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Category:      req.Category,
		CoverImageURL: req.CoverImageURL,
		CharacterData: req.CharacterData,
		Outline:       req.Outline,
	}

	if err := h.draftRepository.CreateDraft(draft); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, draft)
}

// GetMyDrafts lists the current user's drafts
func (h *DraftHandler) GetMyDrafts(c echo.Context) error {
	drafts, err := h.draftRepository.GetDraftsByAuthor(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, drafts)
}

// GetDraft returns a single draft. Drafts are invisible to everyone but
// their author, so a foreign draft reads as absent.
func (h *DraftHandler) GetDraft(c echo.Context) error {
	draft, err := h.ownedDraft(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, draft)
}

// UpdateDraft patches a draft's fields
func (h *DraftHandler) UpdateDraft(c echo.Context) error {
	var req models.UpdateDraftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	draft, err := h.ownedDraft(c)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
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
	if req.CharacterData != nil {
		updates["character_data"] = *req.CharacterData
	}
	if req.Outline != nil {
		updates["outline"] = *req.Outline
	}

	if len(updates) == 0 {
		return c.JSON(http.StatusOK, draft)
	}

	updated, err := h.draftRepository.UpdateDraft(draft.ID, updates)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteDraft hard-deletes a draft
func (h *DraftHandler) DeleteDraft(c echo.Context) error {
	draft, err := h.ownedDraft(c)
	if err != nil {
		return err
	}

	if err := h.draftRepository.DeleteDraft(draft.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// PromoteDraft turns a draft into an unpublished story and deletes the
// draft. Title, content and category must have been filled in by then.
func (h *DraftHandler) PromoteDraft(c echo.Context) error {
	draft, err := h.ownedDraft(c)
	if err != nil {
		return err
	}

	if draft.Title == nil || draft.Content == nil || draft.Category == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Draft needs a title, content and category before promotion")
	}

	story := &models.Story{
		ID:            uuid.NewString(),
		Title:         *draft.Title,
		Content:       *draft.Content,
		Excerpt:       draft.Excerpt,
		Category:      *draft.Category,
		CoverImageURL: draft.CoverImageURL,
		AuthorID:      draft.AuthorID,
		WordCount:     models.CountWords(*draft.Content),
	}

	if err := h.storyRepository.CreateStory(story); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.draftRepository.DeleteDraft(draft.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, story)
}

// ownedDraft loads the draft from the :id param. A draft that exists but
// belongs to someone else reads as absent, not forbidden.
func (h *DraftHandler) ownedDraft(c echo.Context) (*models.Draft, error) {
	draft, err := h.draftRepository.GetDraftByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Draft not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if draft.AuthorID != currentUserID(c) {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Draft not found")
	}
	return draft, nil
}
