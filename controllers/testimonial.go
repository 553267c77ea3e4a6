package controllers

import (
	"net/http"
	"strconv"
	"time"

	"driveschool-backend/models"
	"driveschool-backend/store"
	"driveschool-backend/utils"

	"github.com/gin-gonic/gin"
)

type TestimonialController struct {
	Store *store.Store
}

type CreateTestimonialInput struct {
	Name    string `json:"name" binding:"required"`
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating"`
}

type UpdateTestimonialInput struct {
	Name     string `json:"name" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Rating   int    `json:"rating"`
	Date     string `json:"date"`
	Approved bool   `json:"approved"`
}

// GetTestimonials lists every review for the admin panel, hidden ones
// included.
func (t *TestimonialController) GetTestimonials(c *gin.Context) {
	c.JSON(http.StatusOK, t.Store.Testimonials())
}

// CreateTestimonial adds a manually entered review. Admin-entered reviews
// go live immediately, so approved is always true on create.
func (t *TestimonialController) CreateTestimonial(c *gin.Context) {
	var input CreateTestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	testimonial := models.Testimonial{
		ID:       strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name:     input.Name,
		Content:  input.Content,
		Rating:   input.Rating,
		Date:     time.Now().UTC().Format(time.RFC3339),
		Approved: true,
	}
	t.Store.AddTestimonial(testimonial)

	c.JSON(http.StatusCreated, testimonial)
}

// UpdateTestimonial replaces the review wholesale; the panel's Live/Hidden
// toggle is just an update with the approved flag flipped.
func (t *TestimonialController) UpdateTestimonial(c *gin.Context) {
	var input UpdateTestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	testimonial := models.Testimonial{
		ID:       c.Param("id"),
		Name:     input.Name,
		Content:  input.Content,
		Rating:   input.Rating,
		Date:     input.Date,
		Approved: input.Approved,
	}
	t.Store.UpdateTestimonial(testimonial)

	c.JSON(http.StatusOK, testimonial)
}

func (t *TestimonialController) DeleteTestimonial(c *gin.Context) {
	t.Store.DeleteTestimonial(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
}
