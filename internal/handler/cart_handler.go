package handler

import (
	"net/http"
	"strconv"

	"github.com/mduy26100/ZTino-Shop-sub000/internal/config"
	"github.com/mduy26100/ZTino-Shop-sub000/internal/middleware"
	"github.com/mduy26100/ZTino-Shop-sub000/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP。ゲストも使えるのでOptionalAuthを通す。
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartItemRequest struct {
	CartID    *string `json:"cart_id,omitempty"`
	VariantID int64   `json:"variant_id"`
	Quantity  int64   `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/cart")
	g.Use(middleware.OptionalAuthJWT(cfg))

	g.GET("", h.getCart)
	g.POST("/items", h.addItem)
	g.PATCH("/:cartID/items/:itemID", h.patchItem)
	g.DELETE("/:cartID/items/:itemID", h.deleteItem)
}

func (h *CartHandler) getCart(c echo.Context) error {
	userID := optionalUserIDFromContext(c)

	var cartID *string
	if v := c.QueryParam("cart_id"); v != "" {
		cartID = &v
	}

	out, err := h.uc.GetCart(c.Request().Context(), userID, cartID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addItem(c echo.Context) error {
	userID := optionalUserIDFromContext(c)

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddToCart(c.Request().Context(), userID, usecase.AddCartItemInput{
		CartID:    req.CartID,
		VariantID: req.VariantID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) patchItem(c echo.Context) error {
	userID := optionalUserIDFromContext(c)

	cartID := c.Param("cartID")
	itemID, err := strconv.ParseInt(c.Param("itemID"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateCartItem(c.Request().Context(), userID, cartID, itemID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	userID := optionalUserIDFromContext(c)

	cartID := c.Param("cartID")
	itemID, err := strconv.ParseInt(c.Param("itemID"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.RemoveCartItem(c.Request().Context(), userID, cartID, itemID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
