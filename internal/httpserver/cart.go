package httpserver

import (
	"net/http"

	"retify/internal/domain"
	cartsvc "retify/internal/service/cart"

	"github.com/gin-gonic/gin"
)

type addCartRequest struct {
	Item cartsvc.AddItemInput `json:"item"`
}

type removeCartRequest struct {
	ItemID   int    `json:"item_id"`
	ItemType string `json:"item_type"`
}

type updateCartRequest struct {
	ItemID   int    `json:"item_id"`
	ItemType string `json:"item_type"`
	Quantity *int   `json:"quantity"`
}

func getCartHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Get(c.Request.Context(), sessionToken(c))
		if err != nil {
			cartFailure(c, err)
			return
		}
		c.JSON(http.StatusOK, emptyIfNil(cart))
	}
}

func addCartHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			failure(c, http.StatusBadRequest, "invalid request body")
			return
		}
		cart, err := svc.Add(c.Request.Context(), sessionToken(c), req.Item)
		if err != nil {
			cartFailure(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": emptyIfNil(cart)})
	}
}

func removeCartHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req removeCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			failure(c, http.StatusBadRequest, "invalid request body")
			return
		}
		cart, err := svc.Remove(c.Request.Context(), sessionToken(c), req.ItemID, req.ItemType)
		if err != nil {
			cartFailure(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": emptyIfNil(cart)})
	}
}

func updateCartHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			failure(c, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Quantity == nil {
			failure(c, http.StatusBadRequest, "quantity required")
			return
		}
		cart, err := svc.UpdateQuantity(c.Request.Context(), sessionToken(c), req.ItemID, req.ItemType, *req.Quantity)
		if err != nil {
			cartFailure(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": emptyIfNil(cart)})
	}
}

// emptyIfNil keeps the wire format a JSON array even for untouched carts.
func emptyIfNil(cart []domain.CartLine) []domain.CartLine {
	if cart == nil {
		return []domain.CartLine{}
	}
	return cart
}
