package controllers

import (
	"net/http"
	"time"

	"driveschool-backend/models"
	"driveschool-backend/store"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Store *store.Store
}

type DayActivity struct {
	Name     string `json:"name"` // "Mon" .. "Sun"
	Bookings int    `json:"bookings"`
}

// GetOverview computes the admin dashboard numbers: total revenue across
// all bookings, pending request count, active service count, and booking
// activity per weekday for the chart.
func (d *DashboardController) GetOverview(c *gin.Context) {
	services := d.Store.Services()
	bookings := d.Store.Bookings()

	priceByID := make(map[string]int, len(services))
	for _, s := range services {
		priceByID[s.ID] = s.Price
	}

	// Bookings whose service has been deleted contribute nothing.
	totalRevenue := 0
	for _, b := range bookings {
		totalRevenue += priceByID[b.ServiceID]
	}

	pendingBookings := 0
	for _, b := range bookings {
		if b.Status == models.BookingPending {
			pendingBookings++
		}
	}

	weekdays := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	counts := make(map[string]int, len(weekdays))
	for _, b := range bookings {
		created, err := time.Parse(time.RFC3339, b.CreatedAt)
		if err != nil {
			continue
		}
		counts[created.Format("Mon")]++
	}

	weeklyActivity := make([]DayActivity, 0, len(weekdays))
	for _, day := range weekdays {
		weeklyActivity = append(weeklyActivity, DayActivity{Name: day, Bookings: counts[day]})
	}

	c.JSON(http.StatusOK, gin.H{
		"totalRevenue":    totalRevenue,
		"pendingBookings": pendingBookings,
		"activeServices":  len(services),
		"weeklyActivity":  weeklyActivity,
	})
}
