// controllers/service.go
package controllers

import (
	"net/http"

	"driveschool-backend/models"
	"driveschool-backend/store"
	"driveschool-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ServiceController struct {
	Store *store.Store
}

// ServiceInput is used for both create and update: the services panel
// saves the whole record every time, so there is no partial-update shape.
type ServiceInput struct {
	Title       string   `json:"title" binding:"required"`
	Price       int      `json:"price" binding:"min=0"` // missing or cleared price coerces to 0
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Category    string   `json:"category" binding:"required,oneof=standard intensive test-prep"`
	Popular     bool     `json:"popular"`
}

func (s *ServiceController) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, s.Store.Services())
}

// CreateService appends a new service to the price list.
func (s *ServiceController) CreateService(c *gin.Context) {
	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.Service{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Price:       input.Price,
		Duration:    input.Duration,
		Description: input.Description,
		Features:    input.Features,
		Category:    models.ServiceCategory(input.Category),
		Popular:     input.Popular,
	}
	s.Store.AddService(service)

	c.JSON(http.StatusCreated, service)
}

// UpdateService replaces the service wholesale, keeping its position in
// the list. An unknown id is silently ignored, matching the panel's
// save-all behavior where rows can race a delete.
func (s *ServiceController) UpdateService(c *gin.Context) {
	var input ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.Service{
		ID:          c.Param("id"),
		Title:       input.Title,
		Price:       input.Price,
		Duration:    input.Duration,
		Description: input.Description,
		Features:    input.Features,
		Category:    models.ServiceCategory(input.Category),
		Popular:     input.Popular,
	}
	s.Store.UpdateService(service)

	c.JSON(http.StatusOK, service)
}

func (s *ServiceController) DeleteService(c *gin.Context) {
	s.Store.DeleteService(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
