package catalog

import (
	"context"

	"backoffice/pkg/domain"
	"backoffice/pkg/optional"
)

// CreateRegionInput describes a new region and the locales it starts with.
type CreateRegionInput struct {
	Code          string `json:"code"          validate:"required,max=32"`
	Name          string `json:"name"          validate:"required,max=255"`
	NativeName    string `json:"nativeName"    validate:"required,max=255"`
	IconRef       string `json:"iconRef"       validate:"required,max=512"`
	DefaultLocale string `json:"defaultLocale" validate:"required,max=16"`
	// IsActive defaults to true when omitted.
	IsActive *bool         `json:"isActive"`
	SortRank *int          `json:"sortRank"  validate:"omitempty,min=0,max=2147483647"`
	Locales  []LocaleInput `json:"locales"   validate:"dive"`
}

// RegionUpdate lists the region fields a partial update may change. Fields
// that are not set are left untouched; a set SortRank holding nil clears it.
type RegionUpdate struct {
	Name          optional.Field[string] `json:"name"`
	NativeName    optional.Field[string] `json:"nativeName"`
	IconRef       optional.Field[string] `json:"iconRef"`
	DefaultLocale optional.Field[string] `json:"defaultLocale"`
	IsActive      optional.Field[bool]   `json:"isActive"`
	SortRank      optional.Field[*int]   `json:"sortRank"`
}

//go:generate mockgen -package mockcatalog -source=interface.go -destination=mock/mockcatalog.go Catalog
type Catalog interface {
	CreateRegion(ctx context.Context, input CreateRegionInput) (*domain.RegionView, error)
	// ListRegions returns regions ordered by sort rank, unranked last, then by
	// code. A non-nil active filters on the active flag.
	ListRegions(ctx context.Context, active *bool) ([]domain.RegionView, error)
	GetRegion(ctx context.Context, code string) (*domain.RegionView, error)
	UpdateRegion(ctx context.Context, code string, update RegionUpdate) (*domain.RegionView, error)
	// DeleteRegion removes a region together with all of its memberships.
	DeleteRegion(ctx context.Context, code string) error

	// ListMemberships returns the memberships of a region ordered by rank.
	ListMemberships(ctx context.Context, code string) ([]domain.LocaleMembership, error)
	AddMembership(ctx context.Context, code, localeCode string, rank *int) (*domain.LocaleMembership, error)
	// UpdateMembership changes the rank of a membership. A nil rank returns the
	// membership unchanged.
	UpdateMembership(ctx context.Context, code, localeCode string, rank *int) (*domain.LocaleMembership, error)
	RemoveMembership(ctx context.Context, code, localeCode string) error

	// ResolveLocale picks the supported locale of a region that best serves an
	// Accept-Language value, falling back to the region's default locale.
	ResolveLocale(ctx context.Context, code, acceptLanguage string) (string, error)
}
