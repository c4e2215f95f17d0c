// internal/models/settings.go
package models

// SiteSettings is the single global customization record. Admin-editable,
// no versioning or history.
type SiteSettings struct {
	HeroImage          string `json:"hero_image" validate:"required,url"`
	HeroTitle          string `json:"hero_title" validate:"required"`
	HeroSubtitle       string `json:"hero_subtitle" validate:"required"`
	BottomBannerImage  string `json:"bottom_banner_image" validate:"required,url"`
	BottomBannerTitle  string `json:"bottom_banner_title" validate:"required"`
	BottomBannerSubtitle string `json:"bottom_banner_subtitle" validate:"required"`
}
