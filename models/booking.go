package models

type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCompleted BookingStatus = "Completed"
	BookingCancelled BookingStatus = "Cancelled"
)

type Transmission string

const (
	TransmissionManual    Transmission = "Manual"
	TransmissionAutomatic Transmission = "Automatic"
)

// Booking is a lesson request taken from the public booking form or entered
// during seeding. ServiceID is a soft reference: the service may have been
// deleted since, in which case lookups fall back to "Unknown".
type Booking struct {
	ID           string        `json:"id"`
	CustomerName string        `json:"customerName"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	ServiceID    string        `json:"serviceId"`
	Date         string        `json:"date"`
	Postcode     string        `json:"postcode"`
	Transmission Transmission  `json:"transmission"`
	Status       BookingStatus `json:"status"`
	Notes        string        `json:"notes,omitempty"`
	CreatedAt    string        `json:"createdAt"`
}
