package models

// Testimonial is a student review. Only approved testimonials appear on the
// public site; the admin panel toggles the flag per review.
type Testimonial struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Content  string `json:"content"`
	Rating   int    `json:"rating"` // 1-5
	Date     string `json:"date"`
	Approved bool   `json:"approved"`
}
