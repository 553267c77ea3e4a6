package controllers

import (
	"net/http"
	"strings"

	"driveschool-backend/models"
	"driveschool-backend/store"
	"driveschool-backend/utils"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Store *store.Store
}

func (s *SettingsController) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, s.Store.Settings())
}

// UpdateSettings replaces the whole settings object. The settings screen
// writes back every field on each edit, so this is the only write path -
// there is no patch endpoint.
func (s *SettingsController) UpdateSettings(c *gin.Context) {
	var settings models.SiteSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	s.Store.ReplaceSettings(settings)
	c.JSON(http.StatusOK, settings)
}

type GalleryBulkAddInput struct {
	URLs string `json:"urls" binding:"required"`
}

// AddGalleryImages appends image URLs pasted as a newline- or
// comma-separated block, the way the panel's bulk-add box works. Blank
// entries are dropped; duplicates are allowed.
func (s *SettingsController) AddGalleryImages(c *gin.Context) {
	var input GalleryBulkAddInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	urls := make([]string, 0)
	for _, part := range strings.FieldsFunc(input.URLs, func(r rune) bool {
		return r == '\n' || r == ','
	}) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}

	if len(urls) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "No valid URLs provided")
		return
	}

	settings := s.Store.Settings()
	settings.Gallery = append(settings.Gallery, urls...)
	s.Store.ReplaceSettings(settings)

	c.JSON(http.StatusOK, settings)
}
