package storage

import (
	"context"

	"backoffice/pkg/domain"
	"backoffice/pkg/optional"
)

// RegionUpdates describes the optional fields applied to an existing region.
// Only set fields are written; updated_at is maintained by the store.
type RegionUpdates struct {
	Name          optional.Field[string]
	NativeName    optional.Field[string]
	IconRef       optional.Field[string]
	DefaultLocale optional.Field[string]
	IsActive      optional.Field[bool]
	// SortRank set to a nil value clears the rank.
	SortRank optional.Field[*int]
}

// IsEmpty reports whether no field is set.
func (u RegionUpdates) IsEmpty() bool {
	return !u.Name.Set && !u.NativeName.Set && !u.IconRef.Set &&
		!u.DefaultLocale.Set && !u.IsActive.Set && !u.SortRank.Set
}

// RegionStorage defines persistence of regions and their locale memberships.
// Lookups return nil (and no error) when the row does not exist. Unique
// violations are reported as ErrDuplicateKey.
type RegionStorage interface {
	// InsertRegion stores a new region and returns it as stored (with timestamps).
	InsertRegion(ctx context.Context, region domain.Region) (*domain.Region, error)
	// RegionByCode returns the region with the given code. When lock is true the
	// row is locked until the surrounding transaction ends.
	RegionByCode(ctx context.Context, code string, lock bool) (*domain.Region, error)
	// Regions lists regions ordered by sort rank (nulls last) then code. A non-nil
	// active filters on the active flag.
	Regions(ctx context.Context, active *bool) ([]domain.Region, error)
	// UpdateRegion applies updates and returns the updated row, or nil when the
	// region does not exist.
	UpdateRegion(ctx context.Context, code string, updates RegionUpdates) (*domain.Region, error)
	// DeleteRegion removes the region and, by cascade, its memberships. It reports
	// whether a row was deleted.
	DeleteRegion(ctx context.Context, code string) (bool, error)

	// InsertMemberships stores memberships in the given order.
	InsertMemberships(ctx context.Context, memberships ...domain.LocaleMembership) ([]domain.LocaleMembership, error)
	// Memberships lists the memberships of the given regions ordered by region
	// code, sort rank and insertion order.
	Memberships(ctx context.Context, regionCodes ...string) ([]domain.LocaleMembership, error)
	// Membership returns a single membership or nil.
	Membership(ctx context.Context, regionCode, localeCode string) (*domain.LocaleMembership, error)
	// UpdateMembershipRank sets the rank of a membership and returns it, or nil
	// when it does not exist.
	UpdateMembershipRank(ctx context.Context, regionCode, localeCode string, rank int) (*domain.LocaleMembership, error)
	// DeleteMembership removes a membership and reports whether it existed.
	DeleteMembership(ctx context.Context, regionCode, localeCode string) (bool, error)
}
