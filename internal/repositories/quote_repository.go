package repositories

import (
	"github.com/sable-ink/inkwell/backend/internal/models"
	"gorm.io/gorm"
)

// QuoteRepository defines the interface for quote data operations
type QuoteRepository interface {
	CreateQuote(quote *models.Quote) error
	GetQuoteByID(id string) (*models.Quote, error)
	GetUserQuotes(userID string) ([]models.Quote, error)
	GetPublicQuotes() ([]models.Quote, error)
	DeleteQuote(id string) error
}

// PostgresQuoteRepository implements QuoteRepository for PostgreSQL
type PostgresQuoteRepository struct {
	db *gorm.DB
}

// NewPostgresQuoteRepository creates a new PostgresQuoteRepository
func NewPostgresQuoteRepository(db *gorm.DB) *PostgresQuoteRepository {
	return &PostgresQuoteRepository{db: db}
}

// CreateQuote creates a new quote in PostgreSQL
func (r *PostgresQuoteRepository) CreateQuote(quote *models.Quote) error {
	return r.db.Create(quote).Error
}

// GetQuoteByID retrieves a quote by ID
func (r *PostgresQuoteRepository) GetQuoteByID(id string) (*models.Quote, error) {
	var quote models.Quote
	if err := r.db.First(&quote, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &quote, nil
}

// GetUserQuotes retrieves all of a user's quotes with their parent stories,
// newest first
func (r *PostgresQuoteRepository) GetUserQuotes(userID string) ([]models.Quote, error) {
	var quotes []models.Quote
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("Story").
		Find(&quotes).Error
	return quotes, err
}

// GetPublicQuotes is the global public quote feed: publicly visible quotes
// with their story and the quoting user, newest first, capped like the
// story feed.
func (r *PostgresQuoteRepository) GetPublicQuotes() ([]models.Quote, error) {
	var quotes []models.Quote
	err := r.db.Where("is_public = ?", true).
		Order("created_at DESC").
		Limit(feedLimit).
		Preload("Story").
		Preload("User").
		Find(&quotes).Error
	return quotes, err
}

// DeleteQuote removes a quote by ID
func (r *PostgresQuoteRepository) DeleteQuote(id string) error {
	res := r.db.Delete(&models.Quote{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
