package catalog_test

import (
	"math"
	"testing"

	"backoffice/internal/catalog"
	"backoffice/pkg/domain"
	"backoffice/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func rank(r int) *int { return &r }

func TestValidateCreate(t *testing.T) {
	region := domain.Region{Code: "th", DefaultLocale: "th"}

	tests := []struct {
		name    string
		locales []catalog.LocaleInput
		want    []int
		wantErr error
	}{
		{
			name: "no locales is allowed",
		},
		{
			name:    "default locale missing",
			locales: []catalog.LocaleInput{{LocaleCode: "en"}, {LocaleCode: "fr"}},
			wantErr: catalog.ErrInvalidDefaultLocale,
		},
		{
			name:    "ranks fill in input order",
			locales: []catalog.LocaleInput{{LocaleCode: "th"}, {LocaleCode: "en"}, {LocaleCode: "fr"}},
			want:    []int{0, 1, 2},
		},
		{
			name:    "explicit ranks are kept",
			locales: []catalog.LocaleInput{{LocaleCode: "th", SortRank: rank(5)}, {LocaleCode: "en", SortRank: rank(1)}},
			want:    []int{5, 1},
		},
		{
			name: "missing ranks skip explicit ones",
			locales: []catalog.LocaleInput{
				{LocaleCode: "en"},
				{LocaleCode: "th", SortRank: rank(0)},
				{LocaleCode: "fr"},
				{LocaleCode: "de", SortRank: rank(2)},
				{LocaleCode: "kh"},
			},
			want: []int{1, 0, 3, 2, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.ValidateCreate(region, tt.locales)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.ErrorIs(t, err, serrors.ErrInvalidState)

				return
			}
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i, m := range got {
				require.Equal(t, "th", m.RegionCode)
				require.Equal(t, tt.locales[i].LocaleCode, m.LocaleCode)
				require.Equal(t, tt.want[i], m.SortRank)
			}
		})
	}
}

func TestValidateUniqueLocales(t *testing.T) {
	require.NoError(t, catalog.ValidateUniqueLocales(nil))
	require.NoError(t, catalog.ValidateUniqueLocales([]catalog.LocaleInput{{LocaleCode: "th"}, {LocaleCode: "en"}}))

	err := catalog.ValidateUniqueLocales([]catalog.LocaleInput{{LocaleCode: "th"}, {LocaleCode: "th", SortRank: rank(3)}})
	require.ErrorIs(t, err, catalog.ErrDuplicateMembership)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestValidateDefaultLocaleChange(t *testing.T) {
	current := []domain.LocaleMembership{
		{RegionCode: "th", LocaleCode: "th", SortRank: 0},
		{RegionCode: "th", LocaleCode: "en", SortRank: 1},
	}

	require.NoError(t, catalog.ValidateDefaultLocaleChange(current, "en"))
	require.NoError(t, catalog.ValidateDefaultLocaleChange(nil, "anything"))

	err := catalog.ValidateDefaultLocaleChange(current, "fr")
	require.ErrorIs(t, err, catalog.ErrInvalidDefaultLocale)
	require.ErrorIs(t, err, serrors.ErrInvalidState)
}

func TestValidateMembershipRemoval(t *testing.T) {
	region := domain.Region{Code: "th", DefaultLocale: "th"}

	require.NoError(t, catalog.ValidateMembershipRemoval(region, "en"))

	err := catalog.ValidateMembershipRemoval(region, "th")
	require.ErrorIs(t, err, catalog.ErrDefaultLocaleRemovalForbidden)
	require.ErrorIs(t, err, serrors.ErrInvalidState)
}

func TestNextSortRank(t *testing.T) {
	require.Equal(t, 0, catalog.NextSortRank(nil))
	require.Equal(t, 2, catalog.NextSortRank([]domain.LocaleMembership{{SortRank: 0}, {SortRank: 1}}))
	require.Equal(t, 8, catalog.NextSortRank([]domain.LocaleMembership{{SortRank: 7}, {SortRank: 3}}))
}

func TestProjectOrdering(t *testing.T) {
	memberships := []domain.LocaleMembership{
		{LocaleCode: "fr", SortRank: 2},
		{LocaleCode: "th", SortRank: 0},
		{LocaleCode: "de", SortRank: 1},
		{LocaleCode: "en", SortRank: 1},
		{LocaleCode: "kh", SortRank: 2},
	}

	require.Equal(t, []string{"th", "de", "en", "fr", "kh"}, catalog.ProjectOrdering(memberships))
	require.Empty(t, catalog.ProjectOrdering(nil))
	// input is left untouched
	require.Equal(t, "fr", memberships[0].LocaleCode)
}

func TestProjectOrdering_ExtremeRanks(t *testing.T) {
	memberships := []domain.LocaleMembership{
		{LocaleCode: "kh", SortRank: catalog.MaxSortRank},
		{LocaleCode: "th", SortRank: 0},
		{LocaleCode: "en", SortRank: catalog.MaxSortRank},
		{LocaleCode: "lo", SortRank: math.MinInt},
	}

	require.Equal(t, []string{"lo", "th", "kh", "en"}, catalog.ProjectOrdering(memberships))
}
