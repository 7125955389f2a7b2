package v1handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"backoffice/internal/catalog"
	"backoffice/pkg/domain"
	"backoffice/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func thailandView() *domain.RegionView {
	rank := 1

	return &domain.RegionView{
		Region: domain.Region{
			Code:          "th",
			Name:          "Thailand",
			NativeName:    "ประเทศไทย",
			IconRef:       "flags/th.svg",
			DefaultLocale: "th",
			IsActive:      true,
			SortRank:      &rank,
			CreatedAt:     fixtureTime,
			UpdatedAt:     fixtureTime,
		},
		SupportedLocales: []string{"th", "en", "kh"},
	}
}

func TestCreateRegion(t *testing.T) {
	api := newTestAPI(t)

	api.catalog.EXPECT().CreateRegion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input catalog.CreateRegionInput) (*domain.RegionView, error) {
			require.Equal(t, "th", input.Code)
			require.Equal(t, "ประเทศไทย", input.NativeName)
			require.Nil(t, input.IsActive)
			require.Len(t, input.Locales, 3)
			require.Equal(t, "kh", input.Locales[2].LocaleCode)
			require.Equal(t, 5, *input.Locales[2].SortRank)

			return thailandView(), nil
		})

	rec := api.do(http.MethodPost, "/v1/regions", `{
		"code": "th",
		"name": "Thailand",
		"nativeName": "ประเทศไทย",
		"iconRef": "flags/th.svg",
		"defaultLocale": "th",
		"sortRank": 1,
		"locales": [{"localeCode": "th"}, {"localeCode": "en"}, {"localeCode": "kh", "sortRank": 5}]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	newGoldie(t).Assert(t, "region", rec.Body.Bytes())
}

func TestCreateRegion_MalformedBody(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/v1/regions", `{"code": 1`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"code":"BAD_REQUEST"`)
}

func TestCreateRegion_Conflict(t *testing.T) {
	api := newTestAPI(t)

	api.catalog.EXPECT().CreateRegion(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("could not create region: %w",
			serrors.Wrap(serrors.ErrConflict, catalog.ErrDuplicateRegion, "region %q", "th")))

	rec := api.do(http.MethodPost, "/v1/regions", `{"code":"th"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	newGoldie(t).Assert(t, "region_conflict", rec.Body.Bytes())
}

func TestListRegions(t *testing.T) {
	api := newTestAPI(t)

	other := domain.RegionView{
		Region: domain.Region{
			Code:          "vn",
			Name:          "Vietnam",
			NativeName:    "Việt Nam",
			IconRef:       "flags/vn.svg",
			DefaultLocale: "vi",
			CreatedAt:     fixtureTime,
			UpdatedAt:     fixtureTime,
		},
		SupportedLocales: []string{},
	}
	api.catalog.EXPECT().ListRegions(gomock.Any(), gomock.Nil()).
		Return([]domain.RegionView{*thailandView(), other}, nil)

	rec := api.do(http.MethodGet, "/v1/regions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	newGoldie(t).Assert(t, "regions", rec.Body.Bytes())
}

func TestListRegions_ActiveFilter(t *testing.T) {
	api := newTestAPI(t)

	api.catalog.EXPECT().ListRegions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, active *bool) ([]domain.RegionView, error) {
			require.NotNil(t, active)
			require.False(t, *active)

			return []domain.RegionView{}, nil
		})

	rec := api.do(http.MethodGet, "/v1/regions?isActive=false", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]", rec.Body.String())

	rec = api.do(http.MethodGet, "/v1/regions?isActive=maybe", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRegion_NotFound(t *testing.T) {
	api := newTestAPI(t)

	api.catalog.EXPECT().GetRegion(gomock.Any(), "xx").
		Return(nil, fmt.Errorf("could not get region: %w",
			serrors.Wrap(serrors.ErrNotFound, catalog.ErrRegionNotFound, "region %q", "xx")))

	rec := api.do(http.MethodGet, "/v1/regions/xx", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	newGoldie(t).Assert(t, "region_not_found", rec.Body.Bytes())
}

func TestUpdateRegion_PartialFields(t *testing.T) {
	api := newTestAPI(t)

	api.catalog.EXPECT().UpdateRegion(gomock.Any(), "th", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, update catalog.RegionUpdate) (*domain.RegionView, error) {
			require.True(t, update.Name.Set)
			require.Equal(t, "Kingdom of Thailand", update.Name.Value)
			require.True(t, update.SortRank.Set)
			require.Nil(t, update.SortRank.Value)
			require.False(t, update.DefaultLocale.Set)
			require.False(t, update.IsActive.Set)

			return thailandView(), nil
		})

	rec := api.do(http.MethodPatch, "/v1/regions/th", `{"name":"Kingdom of Thailand","sortRank":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateRegion_InvalidDefaultLocale(t *testing.T) {
	api := newTestAPI(t)

	api.catalog.EXPECT().UpdateRegion(gomock.Any(), "th", gomock.Any()).
		Return(nil, serrors.Wrap(serrors.ErrInvalidState, catalog.ErrInvalidDefaultLocale,
			"locale %q is not supported by the region", "fr"))

	rec := api.do(http.MethodPatch, "/v1/regions/th", `{"defaultLocale":"fr"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"code":"INVALID_STATE"`)
}

func TestDeleteRegion(t *testing.T) {
	api := newTestAPI(t)

	api.catalog.EXPECT().DeleteRegion(gomock.Any(), "th").Return(nil)

	rec := api.do(http.MethodDelete, "/v1/regions/th", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestListMemberships(t *testing.T) {
	api := newTestAPI(t)

	api.catalog.EXPECT().ListMemberships(gomock.Any(), "th").Return([]domain.LocaleMembership{
		{RegionCode: "th", LocaleCode: "th", SortRank: 0},
		{RegionCode: "th", LocaleCode: "en", SortRank: 1},
	}, nil)

	rec := api.do(http.MethodGet, "/v1/regions/th/locales", "")
	require.Equal(t, http.StatusOK, rec.Code)
	newGoldie(t).Assert(t, "memberships", rec.Body.Bytes())
}

func TestAddMembership(t *testing.T) {
	api := newTestAPI(t)

	api.catalog.EXPECT().AddMembership(gomock.Any(), "th", "kh", gomock.Nil()).
		Return(&domain.LocaleMembership{RegionCode: "th", LocaleCode: "kh", SortRank: 2}, nil)

	rec := api.do(http.MethodPost, "/v1/regions/th/locales", `{"localeCode":"kh"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"regionCode":"th","localeCode":"kh","sortRank":2}`, rec.Body.String())
}

func TestAddMembership_Duplicate(t *testing.T) {
	api := newTestAPI(t)

	api.catalog.EXPECT().AddMembership(gomock.Any(), "th", "en", gomock.Any()).
		Return(nil, serrors.Wrap(serrors.ErrConflict, catalog.ErrDuplicateMembership, "locale %q of region %q", "en", "th"))

	rec := api.do(http.MethodPost, "/v1/regions/th/locales", `{"localeCode":"en","sortRank":0}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	newGoldie(t).Assert(t, "membership_conflict", rec.Body.Bytes())
}

func TestUpdateMembership(t *testing.T) {
	api := newTestAPI(t)

	api.catalog.EXPECT().UpdateMembership(gomock.Any(), "th", "en", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, rank *int) (*domain.LocaleMembership, error) {
			require.Equal(t, 0, *rank)

			return &domain.LocaleMembership{RegionCode: "th", LocaleCode: "en", SortRank: 0}, nil
		})

	rec := api.do(http.MethodPatch, "/v1/regions/th/locales/en", `{"sortRank":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRemoveMembership_DefaultLocale(t *testing.T) {
	api := newTestAPI(t)

	api.catalog.EXPECT().RemoveMembership(gomock.Any(), "th", "th").
		Return(serrors.Wrap(serrors.ErrInvalidState, catalog.ErrDefaultLocaleRemovalForbidden, "locale %q", "th"))

	rec := api.do(http.MethodDelete, "/v1/regions/th/locales/th", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"code":"INVALID_STATE"`)
}

func TestResolveLocale(t *testing.T) {
	api := newTestAPI(t)

	api.catalog.EXPECT().ResolveLocale(gomock.Any(), "th", "kh, en;q=0.8").Return("kh", nil)
	api.catalog.EXPECT().ResolveLocale(gomock.Any(), "th", "en").Return("en", nil)

	rec := api.do(http.MethodGet, "/v1/regions/th/resolve-locale", "", "Accept-Language", "kh, en;q=0.8")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, `{"locale":"kh"}`, rec.Body.String())

	rec = api.do(http.MethodGet, "/v1/regions/th/resolve-locale?lang=en", "", "Accept-Language", "kh")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, `{"locale":"en"}`, rec.Body.String())
}
