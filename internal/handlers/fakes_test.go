package handlers

import (
	"time"

	"github.com/sable-ink/inkwell/backend/internal/models"
	"gorm.io/gorm"
)

// In-memory repository fakes for handler tests. They implement the same
// contracts as the Postgres repositories, including gorm.ErrRecordNotFound
// for absent rows, so handlers exercise their real status mapping.

type fakeStoryRepo struct {
	stories   map[string]*models.Story
	published []models.StoryWithLikes
	liked     []models.StoryWithLikes

	lastCategory string
	lastSort     string
}

func newFakeStoryRepo() *fakeStoryRepo {
	return &fakeStoryRepo{stories: make(map[string]*models.Story)}
}

func (f *fakeStoryRepo) CreateStory(story *models.Story) error {
	now := time.Now()
	story.CreatedAt = now
	story.UpdatedAt = now
	f.stories[story.ID] = story
	return nil
}

func (f *fakeStoryRepo) GetStoryByID(id string) (*models.Story, error) {
	story, ok := f.stories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *story
	return &copied, nil
}

func (f *fakeStoryRepo) GetStoriesByAuthor(authorID string) ([]models.Story, error) {
	var out []models.Story
	for _, s := range f.stories {
		if s.AuthorID == authorID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStoryRepo) UpdateStory(id string, updates map[string]interface{}) (*models.Story, error) {
	story, ok := f.stories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := updates["title"].(string); ok {
		story.Title = v
	}
	if v, ok := updates["content"].(string); ok {
		story.Content = v
	}
	if v, ok := updates["word_count"].(int); ok {
		story.WordCount = v
	}
	if v, ok := updates["category"].(string); ok {
		story.Category = v
	}
	story.UpdatedAt = time.Now()
	copied := *story
	return &copied, nil
}

func (f *fakeStoryRepo) PublishStory(id string) (*models.Story, error) {
	story, ok := f.stories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	now := time.Now()
	story.Published = true
	story.PublishedAt = &now
	story.UpdatedAt = now
	copied := *story
	return &copied, nil
}

func (f *fakeStoryRepo) EnableChapters(id string) error {
	story, ok := f.stories[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	story.HasChapters = true
	return nil
}

func (f *fakeStoryRepo) DeleteStory(id string) error {
	if _, ok := f.stories[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.stories, id)
	return nil
}

func (f *fakeStoryRepo) GetPublishedStories(category, sortBy string) ([]models.StoryWithLikes, error) {
	f.lastCategory = category
	f.lastSort = sortBy
	return f.published, nil
}

func (f *fakeStoryRepo) GetLikedStories(userID string) ([]models.StoryWithLikes, error) {
	return f.liked, nil
}

type fakeLikeRepo struct {
	stories       *fakeStoryRepo
	likes         map[string]map[string]bool // storyID -> userID -> liked
	notifications []models.Notification
}

func newFakeLikeRepo(stories *fakeStoryRepo) *fakeLikeRepo {
	return &fakeLikeRepo{stories: stories, likes: make(map[string]map[string]bool)}
}

func (f *fakeLikeRepo) ToggleLike(userID, storyID string) (*models.ToggleResult, error) {
	story, ok := f.stories.stories[storyID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	if f.likes[storyID] == nil {
		f.likes[storyID] = make(map[string]bool)
	}

	result := &models.ToggleResult{}
	if f.likes[storyID][userID] {
		delete(f.likes[storyID], userID)
	} else {
		f.likes[storyID][userID] = true
		result.Liked = true
		if story.AuthorID != userID {
			f.notifications = append(f.notifications, models.Notification{
				Type:        models.NotificationTypeLike,
				RecipientID: story.AuthorID,
				ActorID:     userID,
				StoryID:     &story.ID,
			})
		}
	}
	result.Count = int64(len(f.likes[storyID]))
	return result, nil
}

func (f *fakeLikeRepo) GetLikeCount(storyID string) (int64, error) {
	return int64(len(f.likes[storyID])), nil
}

func (f *fakeLikeRepo) HasUserLiked(userID, storyID string) (bool, error) {
	return f.likes[storyID][userID], nil
}

type fakeDraftRepo struct {
	drafts map[string]*models.Draft
}

func newFakeDraftRepo() *fakeDraftRepo {
	return &fakeDraftRepo{drafts: make(map[string]*models.Draft)}
}

func (f *fakeDraftRepo) CreateDraft(draft *models.Draft) error {
	now := time.Now()
	draft.CreatedAt = now
	draft.UpdatedAt = now
	f.drafts[draft.ID] = draft
	return nil
}

func (f *fakeDraftRepo) GetDraftByID(id string) (*models.Draft, error) {
	draft, ok := f.drafts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *draft
	return &copied, nil
}

func (f *fakeDraftRepo) GetDraftsByAuthor(authorID string) ([]models.Draft, error) {
	var out []models.Draft
	for _, d := range f.drafts {
		if d.AuthorID == authorID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDraftRepo) UpdateDraft(id string, updates map[string]interface{}) (*models.Draft, error) {
	draft, ok := f.drafts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := updates["title"].(string); ok {
		draft.Title = &v
	}
	if v, ok := updates["content"].(string); ok {
		draft.Content = &v
	}
	if v, ok := updates["category"].(string); ok {
		draft.Category = &v
	}
	draft.UpdatedAt = time.Now()
	copied := *draft
	return &copied, nil
}

func (f *fakeDraftRepo) DeleteDraft(id string) error {
	if _, ok := f.drafts[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.drafts, id)
	return nil
}

type fakeBookmarkRepo struct {
	bookmarks map[string]*models.Bookmark // userID + "|" + storyID
}

func newFakeBookmarkRepo() *fakeBookmarkRepo {
	return &fakeBookmarkRepo{bookmarks: make(map[string]*models.Bookmark)}
}

func (f *fakeBookmarkRepo) UpsertBookmark(bookmark *models.Bookmark) (*models.Bookmark, error) {
	key := bookmark.UserID + "|" + bookmark.StoryID
	now := time.Now()
	if existing, ok := f.bookmarks[key]; ok {
		existing.Note = bookmark.Note
		existing.CreatedAt = now
		existing.UpdatedAt = now
		copied := *existing
		return &copied, nil
	}
	bookmark.CreatedAt = now
	bookmark.UpdatedAt = now
	f.bookmarks[key] = bookmark
	copied := *bookmark
	return &copied, nil
}

func (f *fakeBookmarkRepo) GetBookmark(userID, storyID string) (*models.Bookmark, error) {
	bookmark, ok := f.bookmarks[userID+"|"+storyID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *bookmark
	return &copied, nil
}

func (f *fakeBookmarkRepo) GetUserBookmarks(userID string) ([]models.Bookmark, error) {
	var out []models.Bookmark
	for _, b := range f.bookmarks {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookmarkRepo) DeleteBookmark(userID, storyID string) error {
	key := userID + "|" + storyID
	if _, ok := f.bookmarks[key]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.bookmarks, key)
	return nil
}
