package handler

import (
	"net/http"
	"strconv"

	"github.com/mduy26100/ZTino-Shop-sub000/internal/config"
	"github.com/mduy26100/ZTino-Shop-sub000/internal/middleware"
	"github.com/mduy26100/ZTino-Shop-sub000/internal/usecase"
	"github.com/mduy26100/ZTino-Shop-sub000/internal/validator"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderUC  *usecase.OrderUsecase
	statusUC *usecase.OrderStatusUsecase
}

func NewOrderHandler(orderUC *usecase.OrderUsecase, statusUC *usecase.OrderStatusUsecase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC, statusUC: statusUC}
}

type CheckoutAddressRequest struct {
	RecipientName string `json:"recipient_name"`
	Phone         string `json:"phone"`
	Street        string `json:"street"`
	Ward          string `json:"ward"`
	District      string `json:"district"`
	City          string `json:"city"`
}

type CheckoutRequest struct {
	CartID        string                 `json:"cart_id"`
	CartItemIDs   []int64                `json:"cart_item_ids"`
	CustomerName  string                 `json:"customer_name"`
	CustomerPhone string                 `json:"customer_phone"`
	CustomerEmail string                 `json:"customer_email"`
	Note          string                 `json:"note"`
	Address       CheckoutAddressRequest `json:"address"`
}

type StatusChangeRequest struct {
	Status       string `json:"status"`
	Note         string `json:"note"`
	CancelReason string `json:"cancel_reason"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	// チェックアウトはゲストも可
	e.POST("/orders", h.checkout, middleware.OptionalAuthJWT(cfg))

	g := e.Group("/orders")
	g.Use(middleware.AuthJWT(cfg))
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.PATCH("/:id/status", h.changeStatus)
}

func (h *OrderHandler) checkout(c echo.Context) error {
	userID := optionalUserIDFromContext(c)

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.orderUC.Checkout(c.Request().Context(), userID, usecase.CheckoutInput{
		CartID:        req.CartID,
		CartItemIDs:   req.CartItemIDs,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Note:          req.Note,
		Address: usecase.CheckoutAddressInput{
			RecipientName: req.Address.RecipientName,
			Phone:         req.Address.Phone,
			Street:        req.Address.Street,
			Ward:          req.Address.Ward,
			District:      req.Address.District,
			City:          req.Address.City,
		},
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) list(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	outs, total, err := h.orderUC.ListMyOrders(c.Request().Context(), userID, page, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": outs,
		"total": total,
	})
}

func (h *OrderHandler) detail(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.orderUC.GetMyOrderDetail(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) changeStatus(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req StatusChangeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	// リクエストできるステータスと必須項目のチェック
	if err := validator.ValidateCustomerStatusRequest(req.Status, req.CancelReason, req.Note); err != nil {
		return writeError(c, err)
	}

	out, err := h.statusUC.RequestStatusChange(c.Request().Context(), userID, c.Param("id"), usecase.StatusChangeInput{
		Status:       req.Status,
		Note:         req.Note,
		CancelReason: req.CancelReason,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
