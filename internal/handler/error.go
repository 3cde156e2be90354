package handler

import (
	"net/http"

	"github.com/mduy26100/ZTino-Shop-sub000/internal/middleware"
	"github.com/mduy26100/ZTino-Shop-sub000/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// usecaseのエラー種別をHTTPステータスへ変換する。変換はここだけで行う。
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	if ae, ok := usecase.AsAppError(err); ok {
		switch ae.Kind {
		case usecase.KindNotFound:
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: ae.Message})
		case usecase.KindBusinessRule:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ae.Message})
		case usecase.KindUnauthorized:
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: ae.Message})
		case usecase.KindConflict:
			return c.JSON(http.StatusConflict, ErrorResponse{Error: ae.Message})
		}
	}

	// 500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func getUserIDFromContext(c echo.Context) (int64, bool) {
	v := c.Get(middleware.CtxUserIDKey)
	id, ok := v.(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

// ゲストはnilを返す
func optionalUserIDFromContext(c echo.Context) *int64 {
	id, ok := getUserIDFromContext(c)
	if !ok {
		return nil
	}
	return &id
}
