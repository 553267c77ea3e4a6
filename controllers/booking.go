package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"driveschool-backend/models"
	"driveschool-backend/services"
	"driveschool-backend/store"
	"driveschool-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Store *store.Store
	Relay *services.RelayService
}

type CreateBookingInput struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	ServiceID    string `json:"serviceId" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Postcode     string `json:"postcode" binding:"required"`
	Transmission string `json:"transmission" binding:"required,oneof=Manual Automatic"`
	Notes        string `json:"notes"`
}

// Create handles the public booking form. The submission is forwarded to
// the relay first; the booking is recorded locally only when the relay
// accepts it. A relay failure leaves the store untouched - no retry, no
// queue, the customer just tries again.
func (b *BookingController) Create(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Soft lookup: a stale serviceId still books, the email just says so.
	serviceName := "Unknown"
	servicePrice := 0
	for _, s := range b.Store.Services() {
		if s.ID == input.ServiceID {
			serviceName = s.Title
			servicePrice = s.Price
			break
		}
	}

	payload := map[string]interface{}{
		"name":         input.Name,
		"email":        input.Email,
		"phone":        input.Phone,
		"serviceId":    input.ServiceID,
		"date":         input.Date,
		"postcode":     input.Postcode,
		"transmission": input.Transmission,
		"notes":        input.Notes,
		"serviceName":  serviceName,
		"price":        servicePrice,
		"_subject":     fmt.Sprintf("New Booking: %s - %s", input.Name, serviceName),
	}

	if err := b.Relay.Send(payload); err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "There was a problem submitting your booking. Please try again.")
		return
	}

	now := time.Now()
	booking := models.Booking{
		ID:           strconv.FormatInt(now.UnixMilli(), 10),
		CustomerName: input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		ServiceID:    input.ServiceID,
		Date:         input.Date,
		Postcode:     input.Postcode,
		Transmission: models.Transmission(input.Transmission),
		Status:       models.BookingPending,
		Notes:        input.Notes,
		CreatedAt:    now.UTC().Format(time.RFC3339),
	}
	b.Store.AddBooking(booking)

	c.JSON(http.StatusCreated, booking)
}

// GetBookings lists all bookings for the admin panel, newest first.
func (b *BookingController) GetBookings(c *gin.Context) {
	c.JSON(http.StatusOK, b.Store.Bookings())
}

type UpdateBookingStatusInput struct {
	Status string `json:"status" binding:"required,oneof=Pending Confirmed Completed Cancelled"`
}

// UpdateStatus changes a booking's status and nothing else. No transition
// rules: any status may follow any other.
func (b *BookingController) UpdateStatus(c *gin.Context) {
	var input UpdateBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	b.Store.UpdateBookingStatus(c.Param("id"), models.BookingStatus(input.Status))
	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated"})
}

func (b *BookingController) Delete(c *gin.Context) {
	b.Store.DeleteBooking(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}
