package v1

import (
	"net/http"

	"github.com/vibe-gaming/profile-service/internal/service"
	"github.com/vibe-gaming/profile-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) initMailRoutes(api gin.IRouter) {
	api.POST("/send_mail", h.sendMail)
}

type sendMailRequest struct {
	Email []string `json:"email" binding:"required,min=1,dive,email"`
} // @name SendMailRequest

type sendMailResponse struct {
	Message string `json:"message"`
} // @name SendMailResponse

// @Summary Send invitation
// @Tags Mail
// @Description Send the invitation email to every address in one batch
// @ModuleID sendMail
// @Accept  json
// @Produce  json
// @Param input body sendMailRequest true "recipients"
// @Success 200 {object} sendMailResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /send_mail [post]
func (h *Handler) sendMail(c *gin.Context) {
	var req sendMailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	mode, err := h.services.Notifications.SendInvitation(c.Request.Context(), req.Email)
	if err != nil {
		logger.Error("send invitation failed", zap.Error(err), zap.Int("recipients", len(req.Email)))
		errorResponse(c, http.StatusInternalServerError, SendMailFailedCode)
		return
	}

	c.JSON(http.StatusOK, sendMailResponse{Message: dispatchMessage(mode)})
}

func dispatchMessage(mode service.DispatchMode) string {
	switch mode {
	case service.DispatchQueued:
		return "email has been queued"
	case service.DispatchSkipped:
		return "email sending is disabled"
	}
	return "email has been sent"
}
