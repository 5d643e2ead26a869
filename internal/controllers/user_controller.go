package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"doclyn-be/internal/models"
	"doclyn-be/internal/service"
)

type UserController struct {
	accountService service.AccountService
}

func NewUserController(accountService service.AccountService) *UserController {
	return &UserController{
		accountService: accountService,
	}
}

// Login handles POST /api/users/login
func (uc *UserController) Login(c *gin.Context) {
	var req models.UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Failure("Invalid request body"))
		return
	}

	response, err := uc.accountService.ProcessLogin(&req)
	if err != nil {
		// Storage faults stay out of the response body; clients get a
		// generic message and a 500
		log.Printf("Error processing login: %v", err)
		c.JSON(http.StatusInternalServerError, models.Failure("Error processing login"))
		return
	}

	if !response.Success {
		c.JSON(http.StatusUnauthorized, response)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Health handles GET /api/users/health
func (uc *UserController) Health(c *gin.Context) {
	c.String(http.StatusOK, "User service is running!")
}
