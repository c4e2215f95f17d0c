// internal/handlers/admin.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Aleeffc/sunflowerbeach/internal/i18n"
	"github.com/Aleeffc/sunflowerbeach/internal/models"
	"github.com/Aleeffc/sunflowerbeach/internal/services"
	"github.com/Aleeffc/sunflowerbeach/internal/store"
	"github.com/Aleeffc/sunflowerbeach/internal/utils"
)

type AdminHandler struct {
	adminService     *services.AdminService
	analyticsService *services.AnalyticsService
}

func NewAdminHandler(adminService *services.AdminService, analyticsService *services.AnalyticsService) *AdminHandler {
	return &AdminHandler{
		adminService:     adminService,
		analyticsService: analyticsService,
	}
}

// GET /dashboard/stats
func (h *AdminHandler) GetStats(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	stats, err := h.analyticsService.Stats(userID)
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyUserNotFound)
		return
	}

	utils.SuccessResponse(c, stats)
}

// GET /dashboard/transactions
func (h *AdminHandler) GetTransactions(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	transactions, err := h.analyticsService.TransactionsFor(userID)
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyUserNotFound)
		return
	}

	utils.SuccessResponse(c, transactions)
}

// GET /dashboard/vendors
func (h *AdminHandler) GetVendorReports(c *gin.Context) {
	revenue, salesCount := h.analyticsService.GlobalTotals()

	utils.SuccessResponse(c, gin.H{
		"vendors":       h.analyticsService.VendorReports(),
		"total_revenue": revenue,
		"total_sales":   salesCount,
	})
}

// GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	userID, _ := utils.GetUserIDFromContext(c)

	utils.SuccessResponse(c, gin.H{
		"users":           h.adminService.ListUsers(userID),
		"pending_vendors": h.adminService.PendingVendors(),
	})
}

// PUT /admin/users/:id/approve
func (h *AdminHandler) ApproveVendor(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	user, err := h.adminService.ApproveVendor(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyUserNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyVendorApproved),
		"user":    user,
	})
}

// DELETE /admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if userID, _ := utils.GetUserIDFromContext(c); userID == c.Param("id") {
		utils.ForbiddenResponse(c, "")
		return
	}

	if err := h.adminService.DeleteUser(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			utils.NotFoundResponse(c, i18n.KeyUserNotFound)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyUserDeleted),
	})
}

// GET /settings
func (h *AdminHandler) GetSettings(c *gin.Context) {
	utils.SuccessResponse(c, h.adminService.Settings())
}

// PUT /admin/settings
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req models.SiteSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	settings, err := h.adminService.UpdateSettings(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeySettingsUpdated),
		"settings": settings,
	})
}
