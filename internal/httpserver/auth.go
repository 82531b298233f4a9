package httpserver

import (
	"errors"
	"net/http"

	"retify/internal/domain"
	accountsvc "retify/internal/service/account"
	"retify/internal/session"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func loginHandler(svc accountService, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			failure(c, http.StatusBadRequest, "invalid request body")
			return
		}
		profile, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, accountsvc.ErrInvalidCredentials) {
				failure(c, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			failure(c, http.StatusInternalServerError, "internal error")
			return
		}
		if err := sessions.BindIdentity(sessionToken(c), *profile); err != nil {
			failure(c, http.StatusInternalServerError, "internal error")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": profile})
	}
}

func registerHandler(svc accountService, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req accountsvc.RegisterInput
		if err := c.ShouldBindJSON(&req); err != nil {
			failure(c, http.StatusBadRequest, "invalid request body")
			return
		}
		profile, err := svc.Register(c.Request.Context(), req)
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			failure(c, http.StatusBadRequest, "User already exists")
			return
		case errors.Is(err, domain.ErrInvalidInput):
			failure(c, http.StatusBadRequest, err.Error())
			return
		case err != nil:
			failure(c, http.StatusInternalServerError, "internal error")
			return
		}
		// Registration immediately establishes the session identity.
		if err := sessions.BindIdentity(sessionToken(c), *profile); err != nil {
			failure(c, http.StatusInternalServerError, "internal error")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "user": profile})
	}
}

func logoutHandler(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sessions.ClearIdentity(sessionToken(c)); err != nil {
			failure(c, http.StatusInternalServerError, "internal error")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func userHandler(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, ok, err := sessions.Identity(sessionToken(c))
		if err != nil || !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}
