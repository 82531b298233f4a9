package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func contactHandler(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			failure(c, http.StatusBadRequest, "invalid request body")
			return
		}
		// Submissions are only logged; there is no mail backend.
		logger.Printf("contact form submission: %s (%s) - %s", req.Name, req.Email, req.Message)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Thank you for your message! We'll get back to you soon.",
		})
	}
}

type review struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	Date   string `json:"date"`
	Item   string `json:"item"`
}

func reviewsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, []review{
		{
			ID:     1,
			Name:   "Rahul Sharma",
			Avatar: "https://randomuser.me/api/portraits/men/32.jpg",
			Rating: 5,
			Text:   "Excellent service! Rented a bike for a month and the process was seamless. The bike was in perfect condition.",
			Date:   "2 weeks ago",
			Item:   "Yamaha MT-15",
		},
		{
			ID:     2,
			Name:   "Priya Patel",
			Avatar: "https://randomuser.me/api/portraits/women/44.jpg",
			Rating: 4,
			Text:   "Found my dream apartment through Retify. The verification process gave me confidence in the listing.",
			Date:   "1 month ago",
			Item:   "2BHK in HSR Layout",
		},
		{
			ID:     3,
			Name:   "Amit Kumar",
			Avatar: "https://randomuser.me/api/portraits/men/67.jpg",
			Rating: 5,
			Text:   "Rented a MacBook for my freelance work. Saved me from a huge upfront investment. Highly recommended!",
			Date:   "3 weeks ago",
			Item:   "MacBook Pro",
		},
	})
}

func statsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"total_customers":   50000,
		"verified_listings": 15000,
		"cities":            25,
		"rating":            4.8,
	})
}
