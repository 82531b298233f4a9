package httpserver

import (
	"errors"
	"net/http"

	"retify/internal/domain"

	"github.com/gin-gonic/gin"
)

func failure(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// cartFailure maps cart/checkout service errors onto the wire contract.
func cartFailure(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		failure(c, http.StatusUnauthorized, "Please login to checkout")
	case errors.Is(err, domain.ErrCartEmpty):
		failure(c, http.StatusBadRequest, "Cart is empty")
	case errors.Is(err, domain.ErrInvalidInput):
		failure(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		failure(c, http.StatusUnauthorized, "Session expired")
	default:
		failure(c, http.StatusInternalServerError, "internal error")
	}
}
