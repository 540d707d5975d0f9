package main

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lmdupont/boutique-api/internal/apperr"
	"github.com/lmdupont/boutique-api/internal/httpx"
	"github.com/lmdupont/boutique-api/internal/order"
	"github.com/lmdupont/boutique-api/internal/product"
	"github.com/lmdupont/boutique-api/internal/review"
)

// writeError maps service errors onto the wire contract: validation failures
// carry their own message, not-found gets the entity message, anything else
// is a 500 with the storage detail kept server-side.
func writeError(c *gin.Context, err error) {
	if v, ok := apperr.AsValidation(err); ok {
		httpx.Error(c, http.StatusBadRequest, v.Message)
		return
	}
	switch {
	case errors.Is(err, product.ErrNotFound):
		httpx.Error(c, http.StatusNotFound, apperr.MsgProductNotFound)
	case errors.Is(err, order.ErrNotFound):
		httpx.Error(c, http.StatusNotFound, apperr.MsgOrderNotFound)
	case errors.Is(err, review.ErrNotFound):
		httpx.Error(c, http.StatusNotFound, apperr.MsgReviewNotFound)
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("err", err.Error()),
		)
		httpx.Error(c, http.StatusInternalServerError, apperr.MsgServer)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpx.Error(c, http.StatusBadRequest, apperr.MsgInvalid)
		return 0, false
	}
	return id, true
}
