package catalog

import "errors"

// Domain errors of the catalog. Operations return them wrapped in the matching
// serrors kind, so callers may test for either.
var (
	// ErrRegionNotFound is returned (as serrors.ErrNotFound) when the referenced
	// region does not exist.
	ErrRegionNotFound = errors.New("region not found")
	// ErrMembershipNotFound is returned (as serrors.ErrNotFound) when the region
	// does not support the referenced locale.
	ErrMembershipNotFound = errors.New("region locale not found")
	// ErrDuplicateRegion is returned (as serrors.ErrConflict) when a region with
	// the same code already exists.
	ErrDuplicateRegion = errors.New("region already exists")
	// ErrDuplicateMembership is returned (as serrors.ErrConflict) when a locale is
	// attached to the same region twice.
	ErrDuplicateMembership = errors.New("locale already attached to region")
	// ErrInvalidDefaultLocale is returned (as serrors.ErrInvalidState) when the
	// default locale of a region is not among its locales.
	ErrInvalidDefaultLocale = errors.New("default locale is not a supported locale of the region")
	// ErrDefaultLocaleRemovalForbidden is returned (as serrors.ErrInvalidState)
	// when removing the locale that is currently the region's default.
	ErrDefaultLocaleRemovalForbidden = errors.New("default locale cannot be removed")
)
