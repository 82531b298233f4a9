package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"retify/internal/domain"

	"github.com/gin-gonic/gin"
)

func listHandler(svc catalogService, collection domain.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.DefaultQuery("category", "all")
		listings, err := svc.List(c.Request.Context(), collection, category)
		if err != nil {
			failure(c, http.StatusInternalServerError, "internal error")
			return
		}
		c.JSON(http.StatusOK, listings)
	}
}

func itemHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
			return
		}
		item, err := svc.Get(c.Request.Context(), c.Param("type"), id)
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item type"})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		case err != nil:
			failure(c, http.StatusInternalServerError, "internal error")
		default:
			c.JSON(http.StatusOK, item)
		}
	}
}

func searchHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		scope := c.DefaultQuery("category", "all")
		results, err := svc.Search(c.Request.Context(), query, scope)
		if err != nil {
			failure(c, http.StatusInternalServerError, "internal error")
			return
		}
		c.JSON(http.StatusOK, results)
	}
}
