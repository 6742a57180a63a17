package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cashbook_app/internal/core/ports/services"
	"github.com/SscSPs/cashbook_app/internal/dto"
	"github.com/SscSPs/cashbook_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tenantHandler handles HTTP requests related to tenants.
type tenantHandler struct {
	tenantService portssvc.TenantSvcFacade
}

// newTenantHandler creates a new tenantHandler.
func newTenantHandler(ts portssvc.TenantSvcFacade) *tenantHandler {
	return &tenantHandler{
		tenantService: ts,
	}
}

// registerTenantRoutes registers routes related to tenants.
func registerTenantRoutes(rg gin.IRouter, tenantService portssvc.TenantSvcFacade) {
	h := newTenantHandler(tenantService)

	tenants := rg.Group("/tenants")
	{
		tenants.GET("", h.listTenants)
		tenants.POST("", h.createTenant)
		tenants.GET("/:id", h.getTenant)
		tenants.PATCH("/:id", h.renameTenant)
		tenants.DELETE("/:id", h.deleteTenant)
	}
}

// listTenants godoc
// @Summary List tenants
// @Description Lists all tenants in creation order
// @Tags tenants
// @Produce  json
// @Success 200 {array} dto.TenantResponse
// @Failure 500 {object} map[string]string "Failed to list tenants"
// @Router /tenants [get]
func (h *tenantHandler) listTenants(c *gin.Context) {
	tenants, err := h.tenantService.ListTenants(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list tenants")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTenantResponse(tenants))
}

// createTenant godoc
// @Summary Create a tenant
// @Description Registers a new tenant. Codes are unique and never reused.
// @Tags tenants
// @Accept  json
// @Produce  json
// @Param   tenant body dto.CreateTenantRequest true "Tenant details"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Tenant code already exists"
// @Failure 500 {object} map[string]string "Failed to create tenant"
// @Router /tenants [post]
func (h *tenantHandler) createTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	logger.Info("Received request to create tenant", slog.String("tenant_code", req.Code))
	tenant, err := h.tenantService.CreateTenant(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create tenant")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTenantResponse(tenant))
}

// getTenant godoc
// @Summary Get a tenant
// @Tags tenants
// @Produce  json
// @Param   id path string true "Tenant ID"
// @Success 200 {object} dto.TenantResponse
// @Failure 404 {object} map[string]string "Tenant not found"
// @Failure 500 {object} map[string]string "Failed to retrieve tenant"
// @Router /tenants/{id} [get]
func (h *tenantHandler) getTenant(c *gin.Context) {
	tenant, err := h.tenantService.GetTenantByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve tenant")
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// renameTenant godoc
// @Summary Rename a tenant
// @Description Changes the display name. The code cannot be changed.
// @Tags tenants
// @Accept  json
// @Produce  json
// @Param   id path string true "Tenant ID"
// @Param   tenant body dto.UpdateTenantRequest true "New name"
// @Success 200 {object} dto.TenantResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Tenant not found"
// @Failure 500 {object} map[string]string "Failed to update tenant"
// @Router /tenants/{id} [patch]
func (h *tenantHandler) renameTenant(c *gin.Context) {
	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tenant, err := h.tenantService.RenameTenant(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update tenant")
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// deleteTenant godoc
// @Summary Delete a tenant
// @Description Removes a tenant without entries and retires its code. Deleting an unknown tenant succeeds.
// @Tags tenants
// @Param   id path string true "Tenant ID"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string "Tenant still owns entries"
// @Failure 500 {object} map[string]string "Failed to delete tenant"
// @Router /tenants/{id} [delete]
func (h *tenantHandler) deleteTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("id")

	deleted, err := h.tenantService.DeleteTenant(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err, "Failed to delete tenant")
		return
	}
	if !deleted {
		logger.Info("Delete requested for unknown tenant", slog.String("tenant_id", tenantID))
	}
	c.Status(http.StatusNoContent)
}
