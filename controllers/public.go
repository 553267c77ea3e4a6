package controllers

import (
	"net/http"
	"strings"

	"driveschool-backend/models"
	"driveschool-backend/store"
	"driveschool-backend/utils"

	"github.com/gin-gonic/gin"
)

// PublicController serves the read-only content the marketing page renders:
// settings, services, approved reviews, published posts and the coverage
// checker.
type PublicController struct {
	Store *store.Store
}

func (p *PublicController) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, p.Store.Settings())
}

// GetServices returns all services, optionally filtered to one pricing tab
// via ?category=standard|intensive|test-prep.
func (p *PublicController) GetServices(c *gin.Context) {
	services := p.Store.Services()

	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusOK, services)
		return
	}

	filtered := make([]models.Service, 0)
	for _, s := range services {
		if s.Category == models.ServiceCategory(category) {
			filtered = append(filtered, s)
		}
	}
	c.JSON(http.StatusOK, filtered)
}

// GetTestimonials returns approved reviews only; hidden ones stay in the
// admin panel.
func (p *PublicController) GetTestimonials(c *gin.Context) {
	approved := make([]models.Testimonial, 0)
	for _, t := range p.Store.Testimonials() {
		if t.Approved {
			approved = append(approved, t)
		}
	}
	c.JSON(http.StatusOK, approved)
}

// GetPosts returns published blog posts; drafts are not exposed.
func (p *PublicController) GetPosts(c *gin.Context) {
	published := make([]models.BlogPost, 0)
	for _, post := range p.Store.Posts() {
		if post.Status == models.PostPublished {
			published = append(published, post)
		}
	}
	c.JSON(http.StatusOK, published)
}

type CoverageInput struct {
	Postcode string `json:"postcode"`
}

// CheckCoverage classifies a postcode for the "do you cover my area?"
// widget. An empty postcode produces no classification at all. The result
// is informational only and never blocks a booking.
func (p *PublicController) CheckCoverage(c *gin.Context) {
	var input CoverageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if strings.TrimSpace(input.Postcode) == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Postcode is required")
		return
	}

	covered := utils.IsCoveredPostcode(input.Postcode)
	message := "Please contact us directly to confirm availability."
	if covered {
		message = "Great news! We cover your area."
	}

	c.JSON(http.StatusOK, gin.H{
		"covered": covered,
		"message": message,
	})
}
