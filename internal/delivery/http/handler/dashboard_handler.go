package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"swifttrack-dashboard/internal/app"
	"swifttrack-dashboard/internal/domain/record"
	"swifttrack-dashboard/internal/middleware"
	"swifttrack-dashboard/internal/navigation"
	"swifttrack-dashboard/internal/view"
	appErrors "swifttrack-dashboard/pkg/errors"
	"swifttrack-dashboard/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessageRefreshFailed replaces upstream failure details in responses;
// the details are logged.
const MessageRefreshFailed = "Failed to load dashboard data"

// RecordSource looks up single records for the detail routes.
type RecordSource interface {
	Order(ctx context.Context, id string) (*record.Order, error)
	Delivery(ctx context.Context, id string) (*record.Delivery, error)
}

type DashboardHandler struct {
	shell   *app.Shell
	records RecordSource
}

func NewDashboardHandler(shell *app.Shell, records RecordSource) *DashboardHandler {
	return &DashboardHandler{shell: shell, records: records}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("", h.GetDashboard)
		dashboard.POST("/refresh", h.Refresh)
		dashboard.POST("/tabs/:tab", h.SelectTab)
	}

	router.GET("/orders/:id", h.GetOrder)
	router.GET("/deliveries/:id", h.GetDelivery)
}

// DashboardQuery narrows the rendered list; it never triggers a fetch
type DashboardQuery struct {
	Search   string `form:"search" validate:"max=256"`
	Category string `form:"category" validate:"max=64"`
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	v, ok := h.mounted(c)
	if !ok {
		return
	}

	var q DashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}
	if err := utils.ValidateStruct(&q); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	snap, err := v.Snapshot(view.Query{Search: q.Search, Category: q.Category})
	if err != nil {
		respondError(c, err)
		return
	}
	redact(&snap)

	utils.SuccessResponse(c, http.StatusOK, "Dashboard retrieved", snap)
}

// Refresh re-fetches the mounted view. On failure the previous snapshot is
// still returned alongside the error. The fetch outlives the request: a
// client that disconnects does not abort it.
func (h *DashboardHandler) Refresh(c *gin.Context) {
	v, ok := h.mounted(c)
	if !ok {
		return
	}

	refreshErr := v.Refresh(context.WithoutCancel(c.Request.Context()))
	h.respondSnapshot(c, v, refreshErr, "Dashboard refreshed")
}

func (h *DashboardHandler) SelectTab(c *gin.Context) {
	v, ok := h.mounted(c)
	if !ok {
		return
	}

	err := v.SelectTab(context.WithoutCancel(c.Request.Context()), c.Param("tab"))
	if errors.Is(err, appErrors.ErrUnknownTab) {
		respondError(c, err)
		return
	}
	h.respondSnapshot(c, v, err, "Tab selected")
}

func (h *DashboardHandler) GetOrder(c *gin.Context) {
	order, err := h.records.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order retrieved", order)
}

func (h *DashboardHandler) GetDelivery(c *gin.Context) {
	delivery, err := h.records.Delivery(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Delivery retrieved", delivery)
}

// mounted answers for the login view and for roles without a dashboard,
// and returns the view otherwise.
func (h *DashboardHandler) mounted(c *gin.Context) (*view.View, bool) {
	v := h.shell.View()
	if v != nil {
		return v, true
	}

	name := h.shell.ViewName()
	if name == navigation.ViewLogin {
		respondError(c, appErrors.ErrNoSession)
	} else {
		respondError(c, fmt.Errorf("%w: %q", appErrors.ErrUnknownView, name))
	}
	return nil, false
}

func (h *DashboardHandler) respondSnapshot(c *gin.Context, v *view.View, fetchErr error, message string) {
	snap, err := v.Snapshot(view.Query{})
	if err != nil {
		respondError(c, err)
		return
	}

	redact(&snap)

	if fetchErr != nil {
		_ = c.Error(fetchErr)
		middleware.GetLogger(c).Warn("Dashboard fetch failed",
			zap.String("view", v.Name()),
			zap.Error(fetchErr),
		)
		utils.ErrorResponseWithData(c, http.StatusBadGateway, MessageRefreshFailed, snap)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message, snap)
}

// redact keeps upstream error text (URLs, transport details) out of the
// browser.
func redact(snap *view.Snapshot) {
	if snap.Error != "" {
		snap.Error = MessageRefreshFailed
	}
}
