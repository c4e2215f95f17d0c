// internal/handlers/stylist.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Aleeffc/sunflowerbeach/internal/i18n"
	"github.com/Aleeffc/sunflowerbeach/internal/services"
	"github.com/Aleeffc/sunflowerbeach/internal/utils"
)

type StylistHandler struct {
	stylistService *services.StylistService
}

func NewStylistHandler(stylistService *services.StylistService) *StylistHandler {
	return &StylistHandler{
		stylistService: stylistService,
	}
}

// GET /stylist/messages
func (h *StylistHandler) GetTranscript(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"messages": h.stylistService.Transcript(userID),
	})
}

// POST /stylist/messages
func (h *StylistHandler) SendMessage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	messages, err := h.stylistService.Send(userID, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrReplyPending) {
			utils.TooManyRequestsResponse(c, i18n.T(lang, i18n.KeyStylistBusy))
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"messages": messages,
	})
}
