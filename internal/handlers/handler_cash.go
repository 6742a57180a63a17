package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/cashbook_app/internal/apperrors"
	portssvc "github.com/SscSPs/cashbook_app/internal/core/ports/services"
	"github.com/SscSPs/cashbook_app/internal/dto"
	"github.com/SscSPs/cashbook_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cashHandler serves the tenant-scoped ledger routes.
type cashHandler struct {
	cashbookService portssvc.CashbookSvcFacade
	scope           ScopeProvider
	headerScope     ScopeProvider
}

func newCashHandler(cs portssvc.CashbookSvcFacade) *cashHandler {
	return &cashHandler{
		cashbookService: cs,
		scope:           defaultScope,
		headerScope:     HeaderScope(TenantHeader),
	}
}

// registerCashRoutes registers the query-scoped and the header-scoped ledger routes.
func registerCashRoutes(rg gin.IRouter, cashbookService portssvc.CashbookSvcFacade) {
	h := newCashHandler(cashbookService)

	cash := rg.Group("/cash")
	{
		cash.GET("/entries", h.listEntries)
		cash.POST("/entries", h.createEntry)
		cash.GET("/entries/:id", h.getEntry)
		cash.GET("/summary", h.getSummary)
		cash.GET("/totals", h.getTotals)

		// header scoped variant
		cash.GET("/", h.listEntriesByHeader)
		cash.POST("/", h.createEntryByHeader)
	}
}

// tenantCode returns the scoped tenant code or "" when none was supplied;
// the service reports an empty code as an unknown tenant.
func tenantCode(c *gin.Context, scope ScopeProvider) string {
	code, _ := scope.TenantCode(c)
	return code
}

// listEntries godoc
// @Summary List cash entries
// @Description Lists a tenant's entries ordered by entry date, creation time and id
// @Tags cash
// @Produce  json
// @Param   tenant query string false "Tenant code (also accepted as tenant_code or the X-Tenant-Code header)"
// @Param   date_from query string false "First entry date, YYYY-MM-DD"
// @Param   date_to query string false "Last entry date, YYYY-MM-DD"
// @Param   limit query int false "Page size (1-200)"
// @Param   offset query int false "Entries to skip"
// @Success 200 {object} dto.ListCashEntriesResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 404 {object} map[string]string "Tenant not found"
// @Failure 500 {object} map[string]string "Failed to list cash entries"
// @Router /cash/entries [get]
func (h *cashHandler) listEntries(c *gin.Context) {
	var params dto.ListCashEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	page, err := h.cashbookService.ListCashEntries(c.Request.Context(), tenantCode(c, h.scope), params)
	if err != nil {
		respondError(c, err, "Failed to list cash entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCashEntriesResponse(page))
}

// getEntry godoc
// @Summary Get a cash entry
// @Tags cash
// @Produce  json
// @Param   id path string true "Entry ID"
// @Param   tenant query string false "Tenant code"
// @Success 200 {object} dto.CashEntryResponse
// @Failure 404 {object} map[string]string "Entry or tenant not found"
// @Failure 500 {object} map[string]string "Failed to retrieve cash entry"
// @Router /cash/entries/{id} [get]
func (h *cashHandler) getEntry(c *gin.Context) {
	entry, err := h.cashbookService.GetCashEntry(c.Request.Context(), tenantCode(c, h.scope), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve cash entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashEntryResponse(entry))
}

// createEntry godoc
// @Summary Record a cash entry
// @Description Appends an income or expense entry to a tenant's ledger. Entries are immutable.
// @Tags cash
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateCashEntryRequest true "Entry details"
// @Success 201 {object} dto.CashEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Tenant not found"
// @Failure 500 {object} map[string]string "Failed to create cash entry"
// @Router /cash/entries [post]
func (h *cashHandler) createEntry(c *gin.Context) {
	var req dto.CreateCashEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if strings.TrimSpace(req.TenantCode) == "" {
		req.TenantCode = tenantCode(c, h.scope)
	}
	h.create(c, req)
}

// createEntryByHeader godoc
// @Summary Record a cash entry for the tenant in X-Tenant-Code
// @Tags cash
// @Accept  json
// @Produce  json
// @Param   X-Tenant-Code header string true "Tenant code"
// @Param   entry body dto.CreateCashEntryRequest true "Entry details"
// @Success 201 {object} dto.CashEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Tenant not found"
// @Failure 500 {object} map[string]string "Failed to create cash entry"
// @Router /cash/ [post]
func (h *cashHandler) createEntryByHeader(c *gin.Context) {
	var req dto.CreateCashEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	code := tenantCode(c, h.headerScope)
	if body := strings.TrimSpace(req.TenantCode); body != "" && body != code {
		respondError(c, apperrors.NewValidationFailedError("tenant_code does not match the "+TenantHeader+" header"), "Failed to create cash entry")
		return
	}
	req.TenantCode = code
	h.create(c, req)
}

func (h *cashHandler) create(c *gin.Context, req dto.CreateCashEntryRequest) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to create cash entry",
		slog.String("tenant_code", req.TenantCode),
		slog.String("kind", req.Kind))

	entry, err := h.cashbookService.CreateCashEntry(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create cash entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCashEntryResponse(entry))
}

// listEntriesByHeader godoc
// @Summary List cash entries for the tenant in X-Tenant-Code
// @Description Returns every entry of the tenant as a bare array
// @Tags cash
// @Produce  json
// @Param   X-Tenant-Code header string true "Tenant code"
// @Success 200 {array} dto.CashEntryResponse
// @Failure 404 {object} map[string]string "Tenant not found"
// @Failure 500 {object} map[string]string "Failed to list cash entries"
// @Router /cash/ [get]
func (h *cashHandler) listEntriesByHeader(c *gin.Context) {
	entries, err := h.cashbookService.ListAllCashEntries(c.Request.Context(), tenantCode(c, h.headerScope))
	if err != nil {
		respondError(c, err, "Failed to list cash entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashEntryResponses(entries))
}

// getSummary godoc
// @Summary Monthly balance
// @Description Income minus expense for one calendar month. A date may replace year and month.
// @Tags cash
// @Produce  json
// @Param   tenant query string false "Tenant code"
// @Param   year query int false "Year"
// @Param   month query int false "Month (1-12)"
// @Param   date query string false "Reference date, YYYY-MM-DD"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 404 {object} map[string]string "Tenant not found"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /cash/summary [get]
func (h *cashHandler) getSummary(c *gin.Context) {
	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	summary, err := h.cashbookService.GetMonthlySummary(c.Request.Context(), tenantCode(c, h.scope), params)
	if err != nil {
		respondError(c, err, "Failed to compute summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// getTotals godoc
// @Summary Totals over a date range
// @Tags cash
// @Produce  json
// @Param   tenant query string false "Tenant code"
// @Param   from query string false "First date, YYYY-MM-DD"
// @Param   to query string false "Last date, YYYY-MM-DD"
// @Success 200 {object} dto.TotalsResponse
// @Failure 400 {object} map[string]string "Invalid range"
// @Failure 404 {object} map[string]string "Tenant not found"
// @Failure 500 {object} map[string]string "Failed to compute totals"
// @Router /cash/totals [get]
func (h *cashHandler) getTotals(c *gin.Context) {
	var params dto.TotalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	totals, err := h.cashbookService.GetTotals(c.Request.Context(), tenantCode(c, h.scope), params)
	if err != nil {
		respondError(c, err, "Failed to compute totals")
		return
	}
	c.JSON(http.StatusOK, dto.ToTotalsResponse(totals))
}
