package models

// ServiceCategory groups services into the three pricing tabs shown on the
// public site.
type ServiceCategory string

const (
	CategoryStandard  ServiceCategory = "standard"
	CategoryIntensive ServiceCategory = "intensive"
	CategoryTestPrep  ServiceCategory = "test-prep"
)

type Service struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Price       int             `json:"price"` // whole pounds
	Duration    string          `json:"duration"`
	Description string          `json:"description"`
	Features    []string        `json:"features"`
	Category    ServiceCategory `json:"category"`
	Popular     bool            `json:"popular,omitempty"`
}
