package services

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// transactionService handles transaction persistence.
type transactionService struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, log *zap.SugaredLogger) TransactionServicer {
	return &transactionService{db: db, log: log}
}

// Create stores a new transaction. The ID is assigned by the store and is
// immutable afterwards.
func (s *transactionService) Create(
	date time.Time,
	category, description string,
	amount float64,
	txType models.TransactionType,
) (*models.Transaction, error) {
	switch txType {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	default:
		return nil, apperrors.ErrInvalidTransactionType
	}

	if date.IsZero() {
		date = time.Now()
	}

	transaction := &models.Transaction{
		Date:        date,
		Category:    category,
		Description: description,
		Amount:      amount,
		Type:        txType,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.log.Infow("transaction added",
		"id", transaction.ID,
		"type", transaction.Type,
		"category", transaction.Category,
		"amount", transaction.Amount,
	)
	return transaction, nil
}

// List retrieves a paginated list of transactions, most recent date first.
func (s *transactionService) List(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := applyDateBounds(s.db.Model(&models.Transaction{}), filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// ListAll retrieves every matching transaction, most recent date first. Used
// for reporting, charts, and CSV export, which need a full snapshot.
func (s *transactionService) ListAll(filter TransactionFilter) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := applyDateBounds(s.db.Model(&models.Transaction{}), filter).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

func applyDateBounds(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.From != nil {
		q = q.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("date <= ?", *f.To)
	}
	return q
}

// GetByID retrieves a transaction by ID.
func (s *transactionService) GetByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// Delete removes a transaction permanently.
func (s *transactionService) Delete(id string) error {
	transaction, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.log.Infow("transaction deleted", "id", id)
	return nil
}
