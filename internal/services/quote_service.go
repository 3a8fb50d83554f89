package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Bhavik9112/Stallion-Air-Con/internal/models"
)

// Validation errors returned before any database call is made.
var (
	ErrEmptyQuote   = errors.New("cannot submit an empty quote request")
	ErrInvalidEmail = errors.New("invalid customer email address")
	ErrInvalidItem  = errors.New("invalid quote item")
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// SubmissionPath names which write path persisted a quote.
type SubmissionPath string

const (
	// PathAtomic means the server-side submit_price_query function inserted
	// the header and all items in one transaction.
	PathAtomic SubmissionPath = "atomic"
	// PathFallback means the header and items were inserted as two separate
	// statements.
	PathFallback SubmissionPath = "fallback"
)

// QuoteItemInput is one requested product line.
type QuoteItemInput struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// QuoteSubmission carries the customer contact details and requested lines.
type QuoteSubmission struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerCompany string
	Message         string
	Items           []QuoteItemInput
}

// QuoteReceipt confirms a persisted quote and records which path wrote it.
type QuoteReceipt struct {
	QueryID uuid.UUID      `json:"query_id"`
	Path    SubmissionPath `json:"path"`
}

// ItemInsertError reports a quote whose header row was persisted but whose
// item rows were not. The header is left in place; QueryID identifies it so
// the gap is observable instead of silent.
type ItemInsertError struct {
	QueryID uuid.UUID
	Err     error
}

func (e *ItemInsertError) Error() string {
	return fmt.Sprintf("failed to add products to price request: %v", e.Err)
}

func (e *ItemInsertError) Unwrap() error {
	return e.Err
}

// AtomicSubmitFunc performs the single-call atomic insert of a quote header
// plus items and returns the generated header ID.
type AtomicSubmitFunc func(db *gorm.DB, sub QuoteSubmission) (uuid.UUID, error)

// QuoteService turns multi-product price requests into durable records.
type QuoteService struct {
	db     *gorm.DB
	atomic AtomicSubmitFunc
}

// NewQuoteService constructs a QuoteService using the stored
// submit_price_query function as its atomic path.
func NewQuoteService(db *gorm.DB) *QuoteService {
	return &QuoteService{db: db, atomic: submitViaFunction}
}

// NewQuoteServiceWithAtomic constructs a QuoteService with a custom atomic
// path. Pass nil to disable the atomic path entirely.
func NewQuoteServiceWithAtomic(db *gorm.DB, atomic AtomicSubmitFunc) *QuoteService {
	return &QuoteService{db: db, atomic: atomic}
}

// Submit validates the request, attempts the atomic path, and falls back to
// a header-then-items insert sequence when the atomic call is unavailable.
func (s *QuoteService) Submit(sub QuoteSubmission) (*QuoteReceipt, error) {
	if err := s.validate(&sub); err != nil {
		return nil, err
	}

	if s.atomic != nil {
		id, err := s.atomic(s.db, sub)
		if err == nil {
			return &QuoteReceipt{QueryID: id, Path: PathAtomic}, nil
		}
		log.Printf("[Quote] atomic submit unavailable, falling back: %v", err)
	}

	return s.submitFallback(sub)
}

func (s *QuoteService) validate(sub *QuoteSubmission) error {
	if len(sub.Items) == 0 {
		return ErrEmptyQuote
	}

	sub.CustomerEmail = strings.TrimSpace(sub.CustomerEmail)
	if !emailPattern.MatchString(sub.CustomerEmail) {
		return ErrInvalidEmail
	}

	for i := range sub.Items {
		if _, err := uuid.Parse(sub.Items[i].ProductID); err != nil {
			return fmt.Errorf("%w: item %d has bad product id %q", ErrInvalidItem, i, sub.Items[i].ProductID)
		}
		if sub.Items[i].Quantity < 1 {
			return fmt.Errorf("%w: item %d quantity must be positive", ErrInvalidItem, i)
		}
	}

	return nil
}

func (s *QuoteService) submitFallback(sub QuoteSubmission) (*QuoteReceipt, error) {
	header := models.PriceQuery{
		CustomerName:    sub.CustomerName,
		CustomerEmail:   sub.CustomerEmail,
		CustomerPhone:   sub.CustomerPhone,
		CustomerCompany: sub.CustomerCompany,
		Message:         sub.Message,
		Status:          models.QueryStatusPending,
	}

	if err := s.db.Create(&header).Error; err != nil {
		return nil, fmt.Errorf("failed to submit price request: %w", err)
	}

	items := make([]models.QuoteItem, 0, len(sub.Items))
	for _, item := range sub.Items {
		productID, _ := uuid.Parse(item.ProductID)
		items = append(items, models.QuoteItem{
			QueryID:   header.ID,
			ProductID: productID,
			Name:      item.Name,
			Quantity:  item.Quantity,
		})
	}

	if err := s.db.Create(&items).Error; err != nil {
		// The header row stays behind; no compensating delete is issued.
		return nil, &ItemInsertError{QueryID: header.ID, Err: err}
	}

	return &QuoteReceipt{QueryID: header.ID, Path: PathFallback}, nil
}

// GetQuote loads a price query with its items.
func (s *QuoteService) GetQuote(id uuid.UUID) (*models.PriceQuery, error) {
	var query models.PriceQuery
	if err := s.db.Preload("Items").First(&query, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &query, nil
}

// submitViaFunction calls the stored submit_price_query function, passing
// the line items as a JSON array.
func submitViaFunction(db *gorm.DB, sub QuoteSubmission) (uuid.UUID, error) {
	payload, err := json.Marshal(sub.Items)
	if err != nil {
		return uuid.Nil, err
	}

	var raw string
	err = db.Raw(
		"SELECT submit_price_query(?, ?, ?, ?, ?, ?::jsonb)",
		sub.CustomerName,
		sub.CustomerEmail,
		sub.CustomerPhone,
		sub.CustomerCompany,
		sub.Message,
		string(payload),
	).Scan(&raw).Error
	if err != nil {
		return uuid.Nil, err
	}
	if raw == "" {
		return uuid.Nil, errors.New("submit_price_query returned no id")
	}

	return uuid.Parse(raw)
}
