package domain

import "time"

// Region is a named market grouping of the translation catalog. Its Code is
// chosen by the caller on creation and never changes afterwards.
type Region struct {
	// Code uniquely identifies the region (e.g. "th", "asia").
	Code string `json:"code"`
	// Name is the display name of the region.
	Name string `json:"name"`
	// NativeName is the display name in the region's own language.
	NativeName string `json:"nativeName"`
	// IconRef points to the flag or icon shown next to the region.
	IconRef string `json:"iconRef"`
	// DefaultLocale is the locale the region falls back to. Whenever the region
	// has memberships it must be one of them.
	DefaultLocale string `json:"defaultLocale"`
	// IsActive reports whether the region is offered to clients.
	IsActive bool `json:"isActive"`
	// SortRank orders regions in listings; nil sorts after every ranked region.
	SortRank *int `json:"sortRank"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LocaleMembership links one locale to one region. The pair
// (RegionCode, LocaleCode) is unique.
type LocaleMembership struct {
	RegionCode string `json:"regionCode"`
	LocaleCode string `json:"localeCode"`
	// SortRank is advisory display ordering, lower first. It plays no part in
	// identity.
	SortRank int `json:"sortRank"`
}

// RegionView is the external projection of a region: the region fields plus
// its locale codes ordered by membership rank.
type RegionView struct {
	Region

	SupportedLocales []string `json:"supportedLocales"`
}
