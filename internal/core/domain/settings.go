package domain

import "time"

const (
	SettingsID      = "default"
	DefaultAppTitle = "AI Legal System"
)

// SiteSettings is the singleton branding record shown by the UI.
type SiteSettings struct {
	ID          string     `json:"id"`
	LogoURL     *string    `json:"logoUrl"`
	AppTitle    *string    `json:"appTitle"`
	AppSubtitle *string    `json:"appSubtitle"`
	FooterText  *string    `json:"footerText"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

// DefaultSiteSettings is served until an admin saves the first settings.
func DefaultSiteSettings() *SiteSettings {
	title := DefaultAppTitle
	return &SiteSettings{ID: SettingsID, AppTitle: &title}
}

// SettingsPatch lists the fields an admin wants to change. Nil fields are left
// untouched.
type SettingsPatch struct {
	LogoURL     *string
	AppTitle    *string
	AppSubtitle *string
	FooterText  *string
}
