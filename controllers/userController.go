package controllers

import (
	"net/http"

	"github.com/CongregationConsole/initializers"
	"github.com/CongregationConsole/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func GetUsers(c *gin.Context) {
	users, err := initializers.Store.ListUsers(c.Request.Context())
	if err != nil {
		storeError(c, "fetch users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func GetUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	user, found, err := initializers.Store.GetUser(c.Request.Context(), id)
	if err != nil {
		storeError(c, "fetch user", err)
		return
	}
	if !found {
		notFoundJSON(c, "User")
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser stores the user with a bcrypt hash in place of the password.
func CreateUser(c *gin.Context) {
	var body models.UserCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, taken, err := initializers.Store.GetUserByUsername(c.Request.Context(), body.Username)
	if err != nil {
		storeError(c, "create user", err)
		return
	}
	if taken {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username already exists."})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	body.Password = string(passwordHash)

	user, err := initializers.Store.CreateUser(c.Request.Context(), body)
	if err != nil {
		storeError(c, "create user", err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UserLogin checks a username/password pair. No session or token is issued.
func UserLogin(c *gin.Context) {
	var body loginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, found, err := initializers.Store.GetUserByUsername(c.Request.Context(), body.Username)
	if err != nil {
		storeError(c, "log in", err)
		return
	}
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": user})
}
