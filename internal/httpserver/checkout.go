package httpserver

import (
	"fmt"
	"net/http"

	checkoutsvc "retify/internal/service/checkout"

	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	RentalPeriod *int                   `json:"rental_period"`
	Address      map[string]interface{} `json:"address"`
}

func checkoutHandler(svc checkoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			failure(c, http.StatusBadRequest, "invalid request body")
			return
		}
		// An unspecified rental period means one month.
		period := 1
		if req.RentalPeriod != nil {
			period = *req.RentalPeriod
		}
		order, err := svc.Checkout(c.Request.Context(), sessionToken(c), checkoutsvc.Input{
			RentalPeriod: period,
			Address:      req.Address,
		})
		if err != nil {
			cartFailure(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"order":   order,
			"message": fmt.Sprintf("Order placed successfully! Total: ₹%d", order.Total),
		})
	}
}

func ordersHandler(svc checkoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.Orders(c.Request.Context(), sessionToken(c))
		if err != nil {
			cartFailure(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}
