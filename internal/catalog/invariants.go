package catalog

import (
	"cmp"
	"math"
	"slices"

	"backoffice/pkg/domain"
	"backoffice/pkg/serrors"
)

// MaxSortRank is the highest rank the store can hold.
const MaxSortRank = math.MaxInt32

// sortRankTag bounds ranks to [0, MaxSortRank].
const sortRankTag = "min=0,max=2147483647"

// LocaleInput describes a locale to attach to a region. A nil SortRank lets the
// catalog pick one.
type LocaleInput struct {
	LocaleCode string `json:"localeCode" validate:"required,max=16"`
	SortRank   *int   `json:"sortRank"   validate:"omitempty,min=0,max=2147483647"`
}

// ValidateUniqueLocales rejects an initial locale list naming the same locale
// more than once.
func ValidateUniqueLocales(locales []LocaleInput) error {
	seen := make(map[string]struct{}, len(locales))
	for _, l := range locales {
		if _, ok := seen[l.LocaleCode]; ok {
			return serrors.Wrap(serrors.ErrConflict, ErrDuplicateMembership,
				"locale %q listed more than once", l.LocaleCode)
		}
		seen[l.LocaleCode] = struct{}{}
	}

	return nil
}

// ValidateCreate checks that a non-empty initial locale list contains the
// region's default locale and turns the list into memberships.
//
// Explicit ranks are kept as given. Locales without a rank receive the lowest
// ranks not explicitly taken, counting up from 0 in input order.
func ValidateCreate(region domain.Region, locales []LocaleInput) ([]domain.LocaleMembership, error) {
	if len(locales) == 0 {
		return nil, nil
	}

	hasDefault := slices.ContainsFunc(locales, func(l LocaleInput) bool {
		return l.LocaleCode == region.DefaultLocale
	})
	if !hasDefault {
		return nil, serrors.Wrap(serrors.ErrInvalidState, ErrInvalidDefaultLocale,
			"default locale %q must be one of the region locales", region.DefaultLocale)
	}

	taken := make(map[int]struct{}, len(locales))
	for _, l := range locales {
		if l.SortRank != nil {
			taken[*l.SortRank] = struct{}{}
		}
	}

	memberships := make([]domain.LocaleMembership, len(locales))
	next := 0
	for i, l := range locales {
		rank := 0
		if l.SortRank != nil {
			rank = *l.SortRank
		} else {
			for {
				if _, ok := taken[next]; !ok {
					break
				}
				next++
			}
			rank = next
			next++
		}

		memberships[i] = domain.LocaleMembership{
			RegionCode: region.Code,
			LocaleCode: l.LocaleCode,
			SortRank:   rank,
		}
	}

	return memberships, nil
}

// ValidateDefaultLocaleChange checks that newDefault is one of the current
// memberships. A region without memberships accepts any default.
func ValidateDefaultLocaleChange(current []domain.LocaleMembership, newDefault string) error {
	if len(current) == 0 {
		return nil
	}

	for _, m := range current {
		if m.LocaleCode == newDefault {
			return nil
		}
	}

	return serrors.Wrap(serrors.ErrInvalidState, ErrInvalidDefaultLocale,
		"locale %q is not supported by the region", newDefault)
}

// ValidateMembershipRemoval forbids removing the region's default locale. The
// default has to be moved to another locale first.
func ValidateMembershipRemoval(region domain.Region, localeCode string) error {
	if region.DefaultLocale == localeCode {
		return serrors.Wrap(serrors.ErrInvalidState, ErrDefaultLocaleRemovalForbidden,
			"locale %q is the default of region %q", localeCode, region.Code)
	}

	return nil
}

// NextSortRank returns one past the highest rank in use, or 0 for no memberships.
func NextSortRank(existing []domain.LocaleMembership) int {
	if len(existing) == 0 {
		return 0
	}

	highest := existing[0].SortRank
	for _, m := range existing[1:] {
		highest = max(highest, m.SortRank)
	}

	return highest + 1
}

// ProjectOrdering returns the locale codes ordered by ascending rank. Equal
// ranks keep the order of memberships, which is insertion order when they come
// from storage.
func ProjectOrdering(memberships []domain.LocaleMembership) []string {
	sorted := slices.Clone(memberships)
	slices.SortStableFunc(sorted, func(a, b domain.LocaleMembership) int {
		return cmp.Compare(a.SortRank, b.SortRank)
	})

	codes := make([]string, len(sorted))
	for i, m := range sorted {
		codes[i] = m.LocaleCode
	}

	return codes
}

// project builds the external view of region from its memberships.
func project(region domain.Region, memberships []domain.LocaleMembership) domain.RegionView {
	return domain.RegionView{
		Region:           region,
		SupportedLocales: ProjectOrdering(memberships),
	}
}
