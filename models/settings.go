package models

// SiteImages holds the named image slots used by the public page sections.
type SiteImages struct {
	HeroBg   string `json:"heroBg"`
	Features string `json:"features"`
	AreasBg  string `json:"areasBg"`
	AreasMap string `json:"areasMap"`
}

// SiteSettings is the singleton site configuration. The settings screen
// always writes the whole object back, never a patch.
type SiteSettings struct {
	SiteName         string     `json:"siteName"`
	Phone            string     `json:"phone"`
	Email            string     `json:"email"`
	Whatsapp         string     `json:"whatsapp"` // digits only, no leading +
	Address          string     `json:"address"`
	HeroHeadline     string     `json:"heroHeadline"`
	HeroSubheadline  string     `json:"heroSubheadline"`
	PrimaryColor     string     `json:"primaryColor"` // hex
	Images           SiteImages `json:"images"`
	GoogleReviewsURL string     `json:"googleReviewsUrl"`
	Gallery          []string   `json:"gallery"`
}
