package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	portssvc "github.com/SscSPs/cashbook_app/internal/core/ports/services"
	"github.com/SscSPs/cashbook_app/internal/core/services"
	"github.com/SscSPs/cashbook_app/internal/dto"
	"github.com/SscSPs/cashbook_app/internal/handlers"
	"github.com/SscSPs/cashbook_app/internal/middleware"
	"github.com/SscSPs/cashbook_app/internal/platform/config"
	"github.com/SscSPs/cashbook_app/internal/repositories/memory"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock HealthSvc ---
type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) CheckStore(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ portssvc.HealthSvc = (*MockHealthService)(nil)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Test Suite ---
type CashbookAPITestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockHealth *MockHealthService
	acme       dto.TenantResponse
}

func (suite *CashbookAPITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(discardLogger()))

	cfg := &config.Config{IsProduction: true, TenantCacheSize: 16, TenantCacheTTL: time.Minute}
	container := services.NewServiceContainer(cfg, memory.NewRepositoryProvider())
	suite.mockHealth = new(MockHealthService)
	container.Health = suite.mockHealth

	handlers.RegisterRoutes(suite.router, cfg, container)

	w := suite.do(http.MethodPost, "/tenants", map[string]any{"code": "acme", "name": "ACME d.o.o."}, nil)
	suite.Require().Equal(http.StatusCreated, w.Code)
	suite.decode(w, &suite.acme)
}

func (suite *CashbookAPITestSuite) do(method, url string, body any, header map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CashbookAPITestSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (suite *CashbookAPITestSuite) errorMessage(w *httptest.ResponseRecorder) string {
	var body map[string]string
	suite.decode(w, &body)
	return body["error"]
}

func (suite *CashbookAPITestSuite) createEntry(date, kind string, amount any) *httptest.ResponseRecorder {
	return suite.do(http.MethodPost, "/cash/entries", map[string]any{
		"tenant_code": "acme",
		"entry_date":  date,
		"kind":        kind,
		"amount":      amount,
	}, nil)
}

func (suite *CashbookAPITestSuite) summary(query string) dto.SummaryResponse {
	w := suite.do(http.MethodGet, "/cash/summary?"+query, nil, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.SummaryResponse
	suite.decode(w, &resp)
	return resp
}

// --- Test Cases ---

func (suite *CashbookAPITestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"status":"ok"}`, w.Body.String())
}

func (suite *CashbookAPITestSuite) TestDBHealth() {
	suite.mockHealth.On("CheckStore", mock.Anything).Return(nil).Once()
	w := suite.do(http.MethodGet, "/db/health", nil, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"db":"ok"}`, w.Body.String())

	suite.mockHealth.On("CheckStore", mock.Anything).Return(errors.New("connection refused")).Once()
	w = suite.do(http.MethodGet, "/db/health", nil, nil)
	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.mockHealth.AssertExpectations(suite.T())
}

func (suite *CashbookAPITestSuite) TestMonthlyBalanceScenario() {
	suite.Require().Equal(http.StatusCreated, suite.createEntry("2024-03-05", "income", 100.00).Code)
	suite.Require().Equal(http.StatusCreated, suite.createEntry("2024-03-20", "expense", "30.00").Code)

	march := suite.summary("tenant=acme&year=2024&month=3")
	suite.Equal("70.00", march.Balance)
	suite.Equal("100.00", march.Income)
	suite.Equal("30.00", march.Expense)
	suite.Equal("acme", march.TenantCode)
	suite.Equal(2024, march.Year)
	suite.Equal(3, march.Month)
	suite.Nil(march.ReferenceDate)

	april := suite.summary("tenant=acme&year=2024&month=4")
	suite.Equal("0.00", april.Balance)
}

func (suite *CashbookAPITestSuite) TestSummary_ReferenceDate() {
	resp := suite.summary("tenant=acme&date=2024-01-31&month=2")
	suite.Equal(2024, resp.Year)
	suite.Equal(2, resp.Month)
	suite.Require().NotNil(resp.ReferenceDate)
	suite.Equal("2024-02-29", *resp.ReferenceDate)
}

func (suite *CashbookAPITestSuite) TestSummary_InvalidMonth() {
	w := suite.do(http.MethodGet, "/cash/summary?tenant=acme&year=2024&month=13", nil, nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, "/cash/summary?tenant=acme&year=abc&month=3", nil, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *CashbookAPITestSuite) TestHeaderAndQueryScopesAgree() {
	suite.Require().Equal(http.StatusCreated, suite.createEntry("2024-03-20", "expense", 30).Code)
	suite.Require().Equal(http.StatusCreated, suite.createEntry("2024-03-05", "income", 100).Code)

	w := suite.do(http.MethodGet, "/cash/entries?tenant=acme", nil, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var byQuery dto.ListCashEntriesResponse
	suite.decode(w, &byQuery)

	w = suite.do(http.MethodGet, "/cash/", nil, map[string]string{handlers.TenantHeader: "acme"})
	suite.Require().Equal(http.StatusOK, w.Code)
	var byHeader []dto.CashEntryResponse
	suite.decode(w, &byHeader)

	suite.Equal(2, byQuery.Total)
	suite.Equal(byQuery.Items, byHeader)
	suite.Equal("2024-03-05", byHeader[0].EntryDate)

	w = suite.do(http.MethodGet, "/cash/entries", nil, map[string]string{handlers.TenantHeader: "acme"})
	suite.Require().Equal(http.StatusOK, w.Code)
	var byHeaderFallback dto.ListCashEntriesResponse
	suite.decode(w, &byHeaderFallback)
	suite.Equal(byQuery, byHeaderFallback)
}

func (suite *CashbookAPITestSuite) TestListEntries_Paging() {
	for _, d := range []string{"2024-03-01", "2024-03-02", "2024-03-03"} {
		suite.Require().Equal(http.StatusCreated, suite.createEntry(d, "income", 1).Code)
	}

	w := suite.do(http.MethodGet, "/cash/entries?tenant_code=acme&limit=1&offset=1", nil, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var page dto.ListCashEntriesResponse
	suite.decode(w, &page)
	suite.Equal(3, page.Total)
	suite.Require().Len(page.Items, 1)
	suite.Equal("2024-03-02", page.Items[0].EntryDate)
	suite.Require().NotNil(page.NextOffset)
	suite.Equal(2, *page.NextOffset)

	w = suite.do(http.MethodGet, "/cash/entries?tenant=acme&limit=500", nil, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *CashbookAPITestSuite) TestMissingScope() {
	w := suite.do(http.MethodGet, "/cash/entries", nil, nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodGet, "/cash/", nil, nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodGet, "/cash/entries?tenant=nope", nil, nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(suite.errorMessage(w), "nope")
}

func (suite *CashbookAPITestSuite) TestCreateEntry_Rejections() {
	w := suite.do(http.MethodPost, "/cash/entries", map[string]any{
		"tenant_code": "ghost", "entry_date": "2024-03-05", "kind": "income", "amount": 10,
	}, nil)
	suite.Equal(http.StatusNotFound, w.Code)

	suite.Equal(http.StatusBadRequest, suite.createEntry("2024-03-05", "income", 0).Code)
	suite.Equal(http.StatusBadRequest, suite.createEntry("2024-03-05", "income", -5).Code)
	suite.Equal(http.StatusBadRequest, suite.createEntry("2024-02-30", "income", 5).Code)
	suite.Equal(http.StatusBadRequest, suite.createEntry("2024-03-05", "transfer", 5).Code)

	w = suite.do(http.MethodGet, "/cash/entries?tenant=acme", nil, nil)
	var page dto.ListCashEntriesResponse
	suite.decode(w, &page)
	suite.Zero(page.Total)
}

func (suite *CashbookAPITestSuite) TestCreateEntryByHeader() {
	header := map[string]string{handlers.TenantHeader: "acme"}
	w := suite.do(http.MethodPost, "/cash/", map[string]any{"date": "2024-05-01", "kind": "income", "amount": "12.5", "note": "tips"}, header)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created dto.CashEntryResponse
	suite.decode(w, &created)
	suite.Equal("acme", created.TenantCode)
	suite.Equal("12.50", created.Amount)
	suite.Require().NotNil(created.Description)
	suite.Equal("tips", *created.Description)

	w = suite.do(http.MethodPost, "/cash/", map[string]any{"tenant_code": "beta", "entry_date": "2024-05-01", "kind": "income", "amount": 1}, header)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *CashbookAPITestSuite) TestGetEntry_TenantIsolation() {
	w := suite.createEntry("2024-03-05", "income", 10)
	suite.Require().Equal(http.StatusCreated, w.Code)
	var created dto.CashEntryResponse
	suite.decode(w, &created)

	w = suite.do(http.MethodGet, "/cash/entries/"+created.ID+"?tenant=acme", nil, nil)
	suite.Equal(http.StatusOK, w.Code)

	suite.Require().Equal(http.StatusCreated, suite.do(http.MethodPost, "/tenants", map[string]any{"code": "beta", "name": "Beta d.o.o."}, nil).Code)
	w = suite.do(http.MethodGet, "/cash/entries/"+created.ID+"?tenant=beta", nil, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CashbookAPITestSuite) TestTotals() {
	suite.Require().Equal(http.StatusCreated, suite.createEntry("2024-03-05", "income", 100).Code)
	suite.Require().Equal(http.StatusCreated, suite.createEntry("2024-04-05", "expense", 40).Code)

	w := suite.do(http.MethodGet, "/cash/totals?tenant=acme&from=2024-01-01&to=2024-12-31", nil, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var totals dto.TotalsResponse
	suite.decode(w, &totals)
	suite.Equal("100.00", totals.IncomeTotal)
	suite.Equal("40.00", totals.ExpenseTotal)
	suite.Equal("60.00", totals.NetTotal)
	suite.Equal(1, totals.IncomeCount)
	suite.Equal(1, totals.ExpenseCount)

	w = suite.do(http.MethodGet, "/cash/totals?tenant=acme&from=2024-12-31&to=2024-01-01", nil, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *CashbookAPITestSuite) TestTenantLifecycle() {
	w := suite.do(http.MethodPost, "/tenants", map[string]any{"code": "acme", "name": "Again"}, nil)
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do(http.MethodPost, "/tenants", map[string]any{"code": "", "name": "Empty"}, nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPatch, "/tenants/"+suite.acme.ID, map[string]any{"name": "ACME Holding"}, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var renamed dto.TenantResponse
	suite.decode(w, &renamed)
	suite.Equal("ACME Holding", renamed.Name)
	suite.Equal("acme", renamed.Code)

	w = suite.do(http.MethodGet, "/tenants", nil, nil)
	var tenants []dto.TenantResponse
	suite.decode(w, &tenants)
	suite.Len(tenants, 1)

	suite.Require().Equal(http.StatusCreated, suite.createEntry("2024-03-05", "income", 1).Code)
	w = suite.do(http.MethodDelete, "/tenants/"+suite.acme.ID, nil, nil)
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do(http.MethodPost, "/tenants", map[string]any{"code": "beta", "name": "Beta d.o.o."}, nil)
	var beta dto.TenantResponse
	suite.decode(w, &beta)

	w = suite.do(http.MethodDelete, "/tenants/"+beta.ID, nil, nil)
	suite.Equal(http.StatusNoContent, w.Code)
	w = suite.do(http.MethodDelete, "/tenants/"+beta.ID, nil, nil)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.do(http.MethodGet, "/tenants/"+beta.ID, nil, nil)
	suite.Equal(http.StatusNotFound, w.Code)
	w = suite.do(http.MethodPost, "/tenants", map[string]any{"code": "beta", "name": "Beta again"}, nil)
	suite.Equal(http.StatusConflict, w.Code)
}

// --- Run Test Suite ---
func TestCashbookAPI(t *testing.T) {
	suite.Run(t, new(CashbookAPITestSuite))
}
