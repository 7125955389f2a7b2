package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"backoffice/internal/catalog"
	"backoffice/pkg/domain"
	"backoffice/pkg/optional"
	"backoffice/pkg/serrors"
	"backoffice/pkg/storage"
	mockstorage "backoffice/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCatalog(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, catalog.Catalog) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	c := catalog.New(st, catalog.Options{OperationTimeout: time.Second})

	return ctrl, st, c
}

// expectWithTx wires Storage.WithTx to run the callback against a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func thailand() domain.Region {
	return domain.Region{
		Code:          "th",
		Name:          "Thailand",
		NativeName:    "ประเทศไทย",
		IconRef:       "https://cdn.example.com/flags/th.svg",
		DefaultLocale: "th",
		IsActive:      true,
	}
}

func thaiMemberships() []domain.LocaleMembership {
	return []domain.LocaleMembership{
		{RegionCode: "th", LocaleCode: "th", SortRank: 0},
		{RegionCode: "th", LocaleCode: "en", SortRank: 1},
	}
}

func createInput() catalog.CreateRegionInput {
	r := thailand()

	return catalog.CreateRegionInput{
		Code:          r.Code,
		Name:          r.Name,
		NativeName:    r.NativeName,
		IconRef:       r.IconRef,
		DefaultLocale: r.DefaultLocale,
		Locales: []catalog.LocaleInput{
			{LocaleCode: "th", SortRank: rank(0)},
			{LocaleCode: "en", SortRank: rank(1)},
		},
	}
}

func TestCatalog_CreateRegion(t *testing.T) {
	ctrl, st, c := newTestCatalog(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "th", false).Return(nil, nil)
		tx.EXPECT().InsertRegion(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, region domain.Region) (*domain.Region, error) {
				require.True(t, region.IsActive)
				region.CreatedAt = time.Now()
				region.UpdatedAt = region.CreatedAt

				return &region, nil
			},
		)
		tx.EXPECT().InsertMemberships(gomock.Any(), thaiMemberships()[0], thaiMemberships()[1]).
			Return(thaiMemberships(), nil)
	})

	view, err := c.CreateRegion(context.Background(), createInput())
	require.NoError(t, err)
	require.Equal(t, "th", view.Code)
	require.Equal(t, []string{"th", "en"}, view.SupportedLocales)
	require.False(t, view.CreatedAt.IsZero())
}

func TestCatalog_CreateRegion_Inactive(t *testing.T) {
	ctrl, st, c := newTestCatalog(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "th", false).Return(nil, nil)
		tx.EXPECT().InsertRegion(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, region domain.Region) (*domain.Region, error) {
				return &region, nil
			},
		)
		tx.EXPECT().InsertMemberships(gomock.Any()).Return(nil, nil)
	})

	input := createInput()
	input.Locales = nil
	input.IsActive = new(bool)

	view, err := c.CreateRegion(context.Background(), input)
	require.NoError(t, err)
	require.False(t, view.IsActive)
	require.Empty(t, view.SupportedLocales)
}

func TestCatalog_CreateRegion_Duplicate(t *testing.T) {
	ctrl, st, c := newTestCatalog(t)

	existing := thailand()
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "th", false).Return(&existing, nil)
	})

	_, err := c.CreateRegion(context.Background(), createInput())
	require.ErrorIs(t, err, catalog.ErrDuplicateRegion)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestCatalog_CreateRegion_DuplicateKeyRace(t *testing.T) {
	ctrl, st, c := newTestCatalog(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "th", false).Return(nil, nil)
		tx.EXPECT().InsertRegion(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
	})

	_, err := c.CreateRegion(context.Background(), createInput())
	require.ErrorIs(t, err, catalog.ErrDuplicateRegion)
	require.Equal(t, serrors.ErrConflict, serrors.KindOf(err))
}

func TestCatalog_CreateRegion_RejectedBeforeStorage(t *testing.T) {
	_, _, c := newTestCatalog(t)

	noCode := createInput()
	noCode.Code = ""
	_, err := c.CreateRegion(context.Background(), noCode)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	negative := createInput()
	negative.Locales[1].SortRank = rank(-1)
	_, err = c.CreateRegion(context.Background(), negative)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	tooHigh := createInput()
	tooHigh.Locales[1].SortRank = rank(catalog.MaxSortRank + 1)
	_, err = c.CreateRegion(context.Background(), tooHigh)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	regionRank := createInput()
	regionRank.SortRank = rank(catalog.MaxSortRank + 1)
	_, err = c.CreateRegion(context.Background(), regionRank)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestCatalog_CreateRegion_InvalidLocales(t *testing.T) {
	ctrl, st, c := newTestCatalog(t)

	missingDefault := createInput()
	missingDefault.DefaultLocale = "fr"
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "th", false).Return(nil, nil)
	})
	_, err := c.CreateRegion(context.Background(), missingDefault)
	require.ErrorIs(t, err, catalog.ErrInvalidDefaultLocale)
	require.ErrorIs(t, err, serrors.ErrInvalidState)

	repeated := createInput()
	repeated.Locales = append(repeated.Locales, catalog.LocaleInput{LocaleCode: "en"})
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "th", false).Return(nil, nil)
	})
	_, err = c.CreateRegion(context.Background(), repeated)
	require.ErrorIs(t, err, catalog.ErrDuplicateMembership)
}

func TestCatalog_CreateRegion_DuplicateCodeBeforeLocaleChecks(t *testing.T) {
	ctrl, st, c := newTestCatalog(t)

	existing := thailand()
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "th", false).Return(&existing, nil)
	})

	input := createInput()
	input.DefaultLocale = "fr"
	_, err := c.CreateRegion(context.Background(), input)
	require.ErrorIs(t, err, catalog.ErrDuplicateRegion)
	require.Equal(t, serrors.ErrConflict, serrors.KindOf(err))
}

func TestCatalog_ListRegions(t *testing.T) {
	_, st, c := newTestCatalog(t)

	active := true
	sg := domain.Region{Code: "sg", DefaultLocale: "en", IsActive: true}
	st.EXPECT().Regions(gomock.Any(), &active).Return([]domain.Region{thailand(), sg}, nil)
	st.EXPECT().Memberships(gomock.Any(), "th", "sg").Return([]domain.LocaleMembership{
		{RegionCode: "sg", LocaleCode: "en", SortRank: 0},
		{RegionCode: "th", LocaleCode: "en", SortRank: 1},
		{RegionCode: "th", LocaleCode: "th", SortRank: 0},
	}, nil)

	views, err := c.ListRegions(context.Background(), &active)
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Equal(t, "th", views[0].Code)
	require.Equal(t, []string{"th", "en"}, views[0].SupportedLocales)
	require.Equal(t, "sg", views[1].Code)
	require.Equal(t, []string{"en"}, views[1].SupportedLocales)
}

func TestCatalog_GetRegion(t *testing.T) {
	_, st, c := newTestCatalog(t)

	region := thailand()
	st.EXPECT().RegionByCode(gomock.Any(), "th", false).Return(&region, nil)
	st.EXPECT().Memberships(gomock.Any(), "th").Return(thaiMemberships(), nil)

	view, err := c.GetRegion(context.Background(), "th")
	require.NoError(t, err)
	require.Equal(t, []string{"th", "en"}, view.SupportedLocales)
}

func TestCatalog_GetRegion_NotFound(t *testing.T) {
	_, st, c := newTestCatalog(t)

	st.EXPECT().RegionByCode(gomock.Any(), "xx", false).Return(nil, nil)

	_, err := c.GetRegion(context.Background(), "xx")
	require.ErrorIs(t, err, catalog.ErrRegionNotFound)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestCatalog_GetRegion_Timeout(t *testing.T) {
	_, st, c := newTestCatalog(t)

	st.EXPECT().RegionByCode(gomock.Any(), "th", false).Return(nil, context.DeadlineExceeded)

	_, err := c.GetRegion(context.Background(), "th")
	require.ErrorIs(t, err, serrors.ErrTimeout)
}

func TestCatalog_UpdateRegion_DefaultLocale(t *testing.T) {
	ctrl, st, c := newTestCatalog(t)

	region := thailand()
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "th", true).Return(&region, nil)
		tx.EXPECT().Memberships(gomock.Any(), "th").Return(thaiMemberships(), nil)
		tx.EXPECT().UpdateRegion(gomock.Any(), "th", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, updates storage.RegionUpdates) (*domain.Region, error) {
				require.Equal(t, optional.Some("en"), updates.DefaultLocale)
				require.False(t, updates.Name.IsSet())
				updated := region
				updated.DefaultLocale = "en"

				return &updated, nil
			},
		)
	})

	view, err := c.UpdateRegion(context.Background(), "th", catalog.RegionUpdate{
		DefaultLocale: optional.Some("en"),
	})
	require.NoError(t, err)
	require.Equal(t, "en", view.DefaultLocale)
	require.Equal(t, []string{"th", "en"}, view.SupportedLocales)
}

func TestCatalog_UpdateRegion_InvalidDefaultLocale(t *testing.T) {
	ctrl, st, c := newTestCatalog(t)

	region := thailand()
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "th", true).Return(&region, nil)
		tx.EXPECT().Memberships(gomock.Any(), "th").Return(thaiMemberships(), nil)
	})

	_, err := c.UpdateRegion(context.Background(), "th", catalog.RegionUpdate{
		DefaultLocale: optional.Some("fr"),
		Name:          optional.Some("Siam"),
	})
	require.ErrorIs(t, err, catalog.ErrInvalidDefaultLocale)
	require.ErrorIs(t, err, serrors.ErrInvalidState)
}

func TestCatalog_UpdateRegion_EmptyUpdate(t *testing.T) {
	ctrl, st, c := newTestCatalog(t)

	region := thailand()
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "th", true).Return(&region, nil)
		tx.EXPECT().Memberships(gomock.Any(), "th").Return(thaiMemberships(), nil)
	})

	view, err := c.UpdateRegion(context.Background(), "th", catalog.RegionUpdate{})
	require.NoError(t, err)
	require.Equal(t, "Thailand", view.Name)
}

func TestCatalog_UpdateRegion_ClearSortRank(t *testing.T) {
	ctrl, st, c := newTestCatalog(t)

	region := thailand()
	region.SortRank = rank(3)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "th", true).Return(&region, nil)
		tx.EXPECT().Memberships(gomock.Any(), "th").Return(nil, nil)
		tx.EXPECT().UpdateRegion(gomock.Any(), "th", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, updates storage.RegionUpdates) (*domain.Region, error) {
				v, ok := updates.SortRank.Get()
				require.True(t, ok)
				require.Nil(t, v)
				updated := region
				updated.SortRank = nil

				return &updated, nil
			},
		)
	})

	view, err := c.UpdateRegion(context.Background(), "th", catalog.RegionUpdate{
		SortRank: optional.Some[*int](nil),
	})
	require.NoError(t, err)
	require.Nil(t, view.SortRank)
}

func TestCatalog_UpdateRegion_Invalid(t *testing.T) {
	_, _, c := newTestCatalog(t)

	_, err := c.UpdateRegion(context.Background(), "th", catalog.RegionUpdate{Name: optional.Some("")})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = c.UpdateRegion(context.Background(), "th", catalog.RegionUpdate{SortRank: optional.Some(rank(-2))})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestCatalog_DeleteRegion(t *testing.T) {
	ctrl, st, c := newTestCatalog(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteRegion(gomock.Any(), "th").Return(true, nil)
	})
	require.NoError(t, c.DeleteRegion(context.Background(), "th"))

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteRegion(gomock.Any(), "th").Return(false, nil)
	})
	err := c.DeleteRegion(context.Background(), "th")
	require.ErrorIs(t, err, catalog.ErrRegionNotFound)
}

func TestCatalog_ListMemberships_NotFound(t *testing.T) {
	_, st, c := newTestCatalog(t)

	st.EXPECT().RegionByCode(gomock.Any(), "th", false).Return(nil, nil)

	_, err := c.ListMemberships(context.Background(), "th")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestCatalog_AddMembership_NextRank(t *testing.T) {
	ctrl, st, c := newTestCatalog(t)

	region := thailand()
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "th", true).Return(&region, nil)
		tx.EXPECT().Memberships(gomock.Any(), "th").Return(thaiMemberships(), nil)
		want := domain.LocaleMembership{RegionCode: "th", LocaleCode: "kh", SortRank: 2}
		tx.EXPECT().InsertMemberships(gomock.Any(), want).Return([]domain.LocaleMembership{want}, nil)
	})

	m, err := c.AddMembership(context.Background(), "th", "kh", nil)
	require.NoError(t, err)
	require.Equal(t, 2, m.SortRank)
}

func TestCatalog_AddMembership_RankOutOfRange(t *testing.T) {
	_, _, c := newTestCatalog(t)

	_, err := c.AddMembership(context.Background(), "th", "kh", rank(catalog.MaxSortRank+1))
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = c.UpdateMembership(context.Background(), "th", "en", rank(catalog.MaxSortRank+1))
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = c.UpdateRegion(context.Background(), "th", catalog.RegionUpdate{
		SortRank: optional.Some(rank(catalog.MaxSortRank + 1)),
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestCatalog_AddMembership_NextRankOverflow(t *testing.T) {
	ctrl, st, c := newTestCatalog(t)

	region := thailand()
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "th", true).Return(&region, nil)
		tx.EXPECT().Memberships(gomock.Any(), "th").Return([]domain.LocaleMembership{
			{RegionCode: "th", LocaleCode: "th", SortRank: catalog.MaxSortRank},
		}, nil)
	})

	_, err := c.AddMembership(context.Background(), "th", "kh", nil)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestCatalog_AddMembership_Duplicate(t *testing.T) {
	ctrl, st, c := newTestCatalog(t)

	region := thailand()
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "th", true).Return(&region, nil)
		tx.EXPECT().Memberships(gomock.Any(), "th").Return(thaiMemberships(), nil)
	})

	_, err := c.AddMembership(context.Background(), "th", "en", rank(4))
	require.ErrorIs(t, err, catalog.ErrDuplicateMembership)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestCatalog_AddMembership_DuplicateKeyRace(t *testing.T) {
	ctrl, st, c := newTestCatalog(t)

	region := thailand()
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "th", true).Return(&region, nil)
		tx.EXPECT().Memberships(gomock.Any(), "th").Return(thaiMemberships(), nil)
		tx.EXPECT().InsertMemberships(gomock.Any(), gomock.Any()).
			Return(nil, errors.Join(storage.ErrDuplicateKey, errors.New("23505")))
	})

	_, err := c.AddMembership(context.Background(), "th", "kh", nil)
	require.ErrorIs(t, err, catalog.ErrDuplicateMembership)
}

func TestCatalog_AddMembership_FirstLocaleMustBeDefault(t *testing.T) {
	ctrl, st, c := newTestCatalog(t)

	region := thailand()
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "th", true).Return(&region, nil)
		tx.EXPECT().Memberships(gomock.Any(), "th").Return(nil, nil)
	})

	_, err := c.AddMembership(context.Background(), "th", "en", nil)
	require.ErrorIs(t, err, catalog.ErrInvalidDefaultLocale)
}

func TestCatalog_AddMembership_RegionNotFound(t *testing.T) {
	ctrl, st, c := newTestCatalog(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "xx", true).Return(nil, nil)
	})

	_, err := c.AddMembership(context.Background(), "xx", "en", nil)
	require.ErrorIs(t, err, catalog.ErrRegionNotFound)
}

func TestCatalog_UpdateMembership(t *testing.T) {
	ctrl, st, c := newTestCatalog(t)

	region := thailand()
	current := thaiMemberships()[1]

	// without a rank the membership comes back unchanged
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "th", true).Return(&region, nil)
		tx.EXPECT().Membership(gomock.Any(), "th", "en").Return(&current, nil)
	})
	m, err := c.UpdateMembership(context.Background(), "th", "en", nil)
	require.NoError(t, err)
	require.Equal(t, current, *m)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "th", true).Return(&region, nil)
		tx.EXPECT().Membership(gomock.Any(), "th", "en").Return(&current, nil)
		tx.EXPECT().UpdateMembershipRank(gomock.Any(), "th", "en", 9).
			Return(&domain.LocaleMembership{RegionCode: "th", LocaleCode: "en", SortRank: 9}, nil)
	})
	m, err = c.UpdateMembership(context.Background(), "th", "en", rank(9))
	require.NoError(t, err)
	require.Equal(t, 9, m.SortRank)
}

func TestCatalog_UpdateMembership_NotFound(t *testing.T) {
	ctrl, st, c := newTestCatalog(t)

	region := thailand()
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "th", true).Return(&region, nil)
		tx.EXPECT().Membership(gomock.Any(), "th", "fr").Return(nil, nil)
	})

	_, err := c.UpdateMembership(context.Background(), "th", "fr", rank(1))
	require.ErrorIs(t, err, catalog.ErrMembershipNotFound)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestCatalog_RemoveMembership(t *testing.T) {
	ctrl, st, c := newTestCatalog(t)

	region := thailand()
	memberships := thaiMemberships()

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "th", true).Return(&region, nil)
		tx.EXPECT().Membership(gomock.Any(), "th", "th").Return(&memberships[0], nil)
	})
	err := c.RemoveMembership(context.Background(), "th", "th")
	require.ErrorIs(t, err, catalog.ErrDefaultLocaleRemovalForbidden)
	require.ErrorIs(t, err, serrors.ErrInvalidState)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "th", true).Return(&region, nil)
		tx.EXPECT().Membership(gomock.Any(), "th", "en").Return(&memberships[1], nil)
		tx.EXPECT().DeleteMembership(gomock.Any(), "th", "en").Return(true, nil)
	})
	require.NoError(t, c.RemoveMembership(context.Background(), "th", "en"))
}

func TestCatalog_RemoveMembership_NotFound(t *testing.T) {
	ctrl, st, c := newTestCatalog(t)

	region := thailand()
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().RegionByCode(gomock.Any(), "th", true).Return(&region, nil)
		tx.EXPECT().Membership(gomock.Any(), "th", "fr").Return(nil, nil)
	})

	err := c.RemoveMembership(context.Background(), "th", "fr")
	require.ErrorIs(t, err, catalog.ErrMembershipNotFound)
}

func TestCatalog_ResolveLocale(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{name: "empty header falls back to default", accept: "", want: "th"},
		{name: "exact match", accept: "en", want: "en"},
		{name: "quality order wins", accept: "th;q=0.2, en;q=0.8", want: "en"},
		{name: "regional variant matches base language", accept: "en-GB,en;q=0.9", want: "en"},
		{name: "code that is not a language tag", accept: "kh", want: "kh"},
		{name: "unsupported language", accept: "ja-JP", want: "th"},
		{name: "malformed header", accept: "!!!", want: "th"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, st, c := newTestCatalog(t)

			region := thailand()
			st.EXPECT().RegionByCode(gomock.Any(), "th", false).Return(&region, nil)
			st.EXPECT().Memberships(gomock.Any(), "th").Return(append(thaiMemberships(),
				domain.LocaleMembership{RegionCode: "th", LocaleCode: "kh", SortRank: 2}), nil)

			got, err := c.ResolveLocale(context.Background(), "th", tt.accept)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
