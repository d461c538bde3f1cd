package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
	"fintrack/internal/validator"
)

// --- mock services ---

type mockTransactionService struct {
	createFn  func(date time.Time, category, description string, amount float64, txType models.TransactionType) (*models.Transaction, error)
	listFn    func(page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	listAllFn func(filter services.TransactionFilter) ([]models.Transaction, error)
	getByIDFn func(id string) (*models.Transaction, error)
	deleteFn  func(id string) error
}

func (m *mockTransactionService) Create(date time.Time, category, description string, amount float64, txType models.TransactionType) (*models.Transaction, error) {
	if m.createFn != nil {
		return m.createFn(date, category, description, amount, txType)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) List(page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if m.listFn != nil {
		return m.listFn(page, filter)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockTransactionService) ListAll(filter services.TransactionFilter) ([]models.Transaction, error) {
	if m.listAllFn != nil {
		return m.listAllFn(filter)
	}
	return nil, nil
}

func (m *mockTransactionService) GetByID(id string) (*models.Transaction, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) Delete(id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

type mockBudgetService struct {
	setFn    func(category string, monthlyLimit float64) (*models.Budget, error)
	listFn   func() ([]models.Budget, error)
	limitsFn func() (map[string]float64, error)
}

func (m *mockBudgetService) Set(category string, monthlyLimit float64) (*models.Budget, error) {
	if m.setFn != nil {
		return m.setFn(category, monthlyLimit)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) List() ([]models.Budget, error) {
	if m.listFn != nil {
		return m.listFn()
	}
	return nil, nil
}

func (m *mockBudgetService) Limits() (map[string]float64, error) {
	if m.limitsFn != nil {
		return m.limitsFn()
	}
	return map[string]float64{}, nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

type mockConverter struct {
	convertFn func(ctx context.Context, amount float64, from, to string) (float64, bool)
}

func (m *mockConverter) Convert(ctx context.Context, amount float64, from, to string) (float64, bool) {
	if m.convertFn != nil {
		return m.convertFn(ctx, amount, from, to)
	}
	return 0, false
}

var _ Converter = (*mockConverter)(nil)

type mockResetter struct {
	resetFn func() error
}

func (m *mockResetter) Reset() error {
	if m.resetFn != nil {
		return m.resetFn()
	}
	return nil
}

var _ Resetter = (*mockResetter)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

var testLog = zap.NewNop().Sugar()

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
