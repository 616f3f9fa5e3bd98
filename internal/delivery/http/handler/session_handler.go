package handler

import (
	"context"
	"net/http"

	"swifttrack-dashboard/internal/app"
	"swifttrack-dashboard/internal/domain/record"
	"swifttrack-dashboard/internal/usecase/auth"
	"swifttrack-dashboard/pkg/utils"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	shell *app.Shell
}

func NewSessionHandler(shell *app.Shell) *SessionHandler {
	return &SessionHandler{shell: shell}
}

func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/login", h.Login)
	router.POST("/logout", h.Logout)
	router.GET("/session", h.Session)
}

// SessionResponse tells the browser which view to show
type SessionResponse struct {
	View string           `json:"view"`
	User *record.Identity `json:"user,omitempty"`
}

func (h *SessionHandler) Login(c *gin.Context) {
	var req auth.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	// the initial fetch after login completes even if the client goes away
	result, err := h.shell.Login(context.WithoutCancel(c.Request.Context()), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	if !result.OK() {
		utils.ErrorResponse(c, http.StatusUnauthorized, result.Message)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", h.current())
}

func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.shell.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged out", h.current())
}

func (h *SessionHandler) Session(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Session retrieved", h.current())
}

func (h *SessionHandler) current() SessionResponse {
	return SessionResponse{
		View: h.shell.ViewName(),
		User: h.shell.Identity(),
	}
}
