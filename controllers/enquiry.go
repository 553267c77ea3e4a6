package controllers

import (
	"fmt"
	"net/http"

	"driveschool-backend/services"
	"driveschool-backend/utils"

	"github.com/gin-gonic/gin"
)

// EnquiryController handles the quick enquiry form on the marketing page.
// Enquiries are only emailed via the relay; nothing is stored locally.
type EnquiryController struct {
	Relay *services.RelayService
}

type EnquiryInput struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email" binding:"omitempty,email"`
	Postcode     string `json:"postcode"`
	Transmission string `json:"transmission" binding:"required,oneof=Manual Automatic"`
	Message      string `json:"message"`
}

func (e *EnquiryController) Create(c *gin.Context) {
	var input EnquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	payload := map[string]interface{}{
		"name":         input.Name,
		"phone":        input.Phone,
		"email":        input.Email,
		"postcode":     input.Postcode,
		"transmission": input.Transmission,
		"message":      input.Message,
		"_subject":     fmt.Sprintf("New Enquiry: %s - %s", input.Name, input.Transmission),
	}

	if err := e.Relay.Send(payload); err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Failed to send your enquiry. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Enquiry sent"})
}
