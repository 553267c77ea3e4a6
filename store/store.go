// Package store holds every piece of mutable application data for the
// running process: the five content collections plus the admin login flag.
// Nothing is persisted; a restart returns the site to its seed state.
package store

import (
	"sync"

	"driveschool-backend/models"
)

// adminPassword gates the admin panel. KNOWN WEAKNESS: a single plaintext
// credential compared by equality, no hashing, no lockout. Kept for parity
// with the live site; replace wholesale before any wider deployment.
const adminPassword = "Shifi786"

// Store is the single source of truth consumed by every handler. All
// operations either succeed or silently no-op; none return errors. Writes
// take the lock so concurrent handlers always observe a complete mutation.
type Store struct {
	mu            sync.RWMutex
	services      []models.Service
	bookings      []models.Booking
	testimonials  []models.Testimonial
	posts         []models.BlogPost
	settings      models.SiteSettings
	authenticated bool
}

// New returns a store preloaded with the seed fixtures.
func New() *Store {
	return &Store{
		services:     seedServices(),
		bookings:     seedBookings(),
		testimonials: seedTestimonials(),
		posts:        seedPosts(),
		settings:     seedSettings(),
	}
}

// Services returns the current services in order: seed order, with
// admin-created services appended.
func (s *Store) Services() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Service, len(s.services))
	copy(out, s.services)
	return out
}

// AddService appends a fully-formed service. The caller supplies the id;
// uniqueness is not checked.
func (s *Store) AddService(svc models.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = append(s.services, svc)
}

// UpdateService replaces the service with a matching id wholesale, keeping
// its position. Unknown ids are ignored.
func (s *Store) UpdateService(svc models.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.services {
		if s.services[i].ID == svc.ID {
			s.services[i] = svc
			return
		}
	}
}

// DeleteService removes the service with the given id, if present.
func (s *Store) DeleteService(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.services {
		if s.services[i].ID == id {
			s.services = append(s.services[:i], s.services[i+1:]...)
			return
		}
	}
}

// Bookings returns the current bookings, newest first.
func (s *Store) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// AddBooking prepends a booking so the admin list shows newest first.
func (s *Store) AddBooking(b models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append([]models.Booking{b}, s.bookings...)
}

// UpdateBookingStatus replaces only the status of the matching booking;
// every other field is left untouched. Unknown ids are ignored.
func (s *Store) UpdateBookingStatus(id string, status models.BookingStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
			return
		}
	}
}

// DeleteBooking removes the booking with the given id, if present.
func (s *Store) DeleteBooking(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return
		}
	}
}

// Testimonials returns the current testimonials, newest first, approved or
// not. Public handlers filter on the approved flag themselves.
func (s *Store) Testimonials() []models.Testimonial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Testimonial, len(s.testimonials))
	copy(out, s.testimonials)
	return out
}

// AddTestimonial prepends a testimonial.
func (s *Store) AddTestimonial(t models.Testimonial) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.testimonials = append([]models.Testimonial{t}, s.testimonials...)
}

// UpdateTestimonial replaces the testimonial with a matching id wholesale,
// keeping its position. Unknown ids are ignored.
func (s *Store) UpdateTestimonial(t models.Testimonial) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.testimonials {
		if s.testimonials[i].ID == t.ID {
			s.testimonials[i] = t
			return
		}
	}
}

// DeleteTestimonial removes the testimonial with the given id, if present.
func (s *Store) DeleteTestimonial(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.testimonials {
		if s.testimonials[i].ID == id {
			s.testimonials = append(s.testimonials[:i], s.testimonials[i+1:]...)
			return
		}
	}
}

// Posts returns all blog posts, drafts included. Posts are read-only in
// this version; there is no mutator.
func (s *Store) Posts() []models.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.BlogPost, len(s.posts))
	copy(out, s.posts)
	return out
}

// Settings returns a copy of the singleton site settings.
func (s *Store) Settings() models.SiteSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.settings
	out.Gallery = make([]string, len(s.settings.Gallery))
	copy(out.Gallery, s.settings.Gallery)
	return out
}

// ReplaceSettings swaps the settings singleton wholesale. There is no
// partial update path; callers send the full object every time.
func (s *Store) ReplaceSettings(settings models.SiteSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

// Login sets the authenticated flag and reports true iff the password
// matches. A wrong password leaves the flag as it was.
func (s *Store) Login(password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if password == adminPassword {
		s.authenticated = true
		return true
	}
	return false
}

// Logout clears the authenticated flag.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
}

// IsAuthenticated reports whether an admin login has succeeded since the
// process started (or since the last logout).
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}
