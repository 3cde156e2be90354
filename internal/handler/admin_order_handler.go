package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mduy26100/ZTino-Shop-sub000/internal/config"
	"github.com/mduy26100/ZTino-Shop-sub000/internal/middleware"
	"github.com/mduy26100/ZTino-Shop-sub000/internal/repository"
	"github.com/mduy26100/ZTino-Shop-sub000/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminOrderHandler struct {
	uc *usecase.AdminOrderUsecase
}

func NewAdminOrderHandler(uc *usecase.AdminOrderUsecase) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc}
}

type AdminUpdateStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

func (h *AdminOrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin/orders")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())

	g.GET("", h.list)
	g.PATCH("/:id/status", h.updateStatus)
}

func (h *AdminOrderHandler) list(c echo.Context) error {
	f := repository.AdminOrderListFilter{
		Page:   1,
		Limit:  50,
		Status: strings.TrimSpace(c.QueryParam("status")),
	}

	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		f.Page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		f.Limit = v
	}
	if v, err := strconv.ParseInt(c.QueryParam("user_id"), 10, 64); err == nil {
		f.UserID = &v
	}
	if t, ok := parseDateTimeRFC3339(c.QueryParam("from")); ok {
		f.From = t
	}
	if t, ok := parseDateTimeRFC3339(c.QueryParam("to")); ok {
		f.To = t
	}

	outs, total, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": outs,
		"total": total,
	})
}

func (h *AdminOrderHandler) updateStatus(c echo.Context) error {
	adminID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req AdminUpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateStatus(c.Request().Context(), adminID, c.Param("id"), usecase.AdminUpdateOrderStatusInput{
		Status: req.Status,
		Note:   req.Note,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func parseDateTimeRFC3339(s string) (*time.Time, bool) {
	if strings.TrimSpace(s) == "" {
		return nil, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, false
	}
	return &t, true
}
