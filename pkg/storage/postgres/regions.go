package postgres

import (
	"context"
	"fmt"

	"backoffice/pkg/domain"
	"backoffice/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	regionsTable     = "regions"
	membershipsTable = "region_locales"
)

// InsertRegion stores a new region. A region with the same code yields
// storage.ErrDuplicateKey.
func (p *PgSQL) InsertRegion(ctx context.Context, region domain.Region) (*domain.Region, error) {
	var row PgRegion
	row.FromDomain(region)

	var stored PgRegion
	if _, err := p.Builder.Insert(regionsTable).
		Rows(row).
		Returning(&PgRegion{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, translateError(fmt.Errorf("could not insert region into pg: %w", err))
	}

	return stored.ToDomain(), nil
}

// RegionByCode returns the region with the given code or nil. With lock set the
// row is selected FOR UPDATE, serializing concurrent mutations of the region.
func (p *PgSQL) RegionByCode(ctx context.Context, code string, lock bool) (*domain.Region, error) {
	ds := p.Builder.From(regionsTable).Where(goqu.I("code").Eq(code))
	if lock {
		ds = ds.ForUpdate(exp.Wait)
	}

	var row PgRegion
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, translateError(fmt.Errorf("could not fetch region by code: %w", err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Regions lists regions ordered by sort_rank ascending (unranked last) and
// then by code.
func (p *PgSQL) Regions(ctx context.Context, active *bool) ([]domain.Region, error) {
	ds := p.Builder.From(regionsTable).
		Order(goqu.I("sort_rank").Asc().NullsLast(), goqu.I("code").Asc())
	if active != nil {
		ds = ds.Where(goqu.I("is_active").Eq(*active))
	}

	var rows []PgRegion
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, translateError(fmt.Errorf("could not list regions from pg: %w", err))
	}

	return pgRegionsToDomain(rows), nil
}

// UpdateRegion writes the set fields of updates and bumps updated_at.
func (p *PgSQL) UpdateRegion(ctx context.Context, code string, updates storage.RegionUpdates) (*domain.Region, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if v, ok := updates.Name.Get(); ok {
		rec["name"] = v
	}
	if v, ok := updates.NativeName.Get(); ok {
		rec["native_name"] = v
	}
	if v, ok := updates.IconRef.Get(); ok {
		rec["icon_ref"] = v
	}
	if v, ok := updates.DefaultLocale.Get(); ok {
		rec["default_locale"] = v
	}
	if v, ok := updates.IsActive.Get(); ok {
		rec["is_active"] = v
	}
	if v, ok := updates.SortRank.Get(); ok {
		if v == nil {
			rec["sort_rank"] = goqu.L("NULL")
		} else {
			rec["sort_rank"] = *v
		}
	}

	var row PgRegion
	found, err := p.Builder.Update(regionsTable).
		Set(rec).
		Where(goqu.I("code").Eq(code)).
		Returning(&PgRegion{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, translateError(fmt.Errorf("could not update region in pg: %w", err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteRegion deletes a region. Its memberships go with it through the
// ON DELETE CASCADE foreign key, within the same statement.
func (p *PgSQL) DeleteRegion(ctx context.Context, code string) (bool, error) {
	res, err := p.Builder.Delete(regionsTable).
		Where(goqu.I("code").Eq(code)).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, translateError(fmt.Errorf("could not delete region in pg: %w", err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}

// InsertMemberships stores memberships in the given order so that seq follows
// the input order.
func (p *PgSQL) InsertMemberships(ctx context.Context,
	memberships ...domain.LocaleMembership) ([]domain.LocaleMembership, error) {
	if len(memberships) == 0 {
		return nil, nil
	}

	var rows []PgMembership
	if err := p.Builder.Insert(membershipsTable).
		Rows(domainMembershipsToPg(memberships)).
		Returning(&PgMembership{}).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, translateError(fmt.Errorf("could not insert region locales into pg: %w", err))
	}

	return pgMembershipsToDomain(rows), nil
}

// Memberships lists memberships of the given regions ordered by region code,
// sort rank and insertion order.
func (p *PgSQL) Memberships(ctx context.Context, regionCodes ...string) ([]domain.LocaleMembership, error) {
	if len(regionCodes) == 0 {
		return nil, nil
	}

	var rows []PgMembership
	if err := p.Builder.From(membershipsTable).
		Where(goqu.I("region_code").In(regionCodes)).
		Order(goqu.I("region_code").Asc(), goqu.I("sort_rank").Asc(), goqu.I("seq").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, translateError(fmt.Errorf("could not list region locales from pg: %w", err))
	}

	return pgMembershipsToDomain(rows), nil
}

// Membership returns the membership of localeCode in regionCode or nil.
func (p *PgSQL) Membership(ctx context.Context, regionCode, localeCode string) (*domain.LocaleMembership, error) {
	var row PgMembership
	found, err := p.Builder.From(membershipsTable).
		Where(
			goqu.I("region_code").Eq(regionCode),
			goqu.I("locale_code").Eq(localeCode),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, translateError(fmt.Errorf("could not fetch region locale: %w", err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateMembershipRank sets the sort rank of a membership.
func (p *PgSQL) UpdateMembershipRank(ctx context.Context,
	regionCode, localeCode string,
	rank int) (*domain.LocaleMembership, error) {
	var row PgMembership
	found, err := p.Builder.Update(membershipsTable).
		Set(goqu.Record{"sort_rank": rank}).
		Where(
			goqu.I("region_code").Eq(regionCode),
			goqu.I("locale_code").Eq(localeCode),
		).
		Returning(&PgMembership{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, translateError(fmt.Errorf("could not update region locale in pg: %w", err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteMembership removes a single membership.
func (p *PgSQL) DeleteMembership(ctx context.Context, regionCode, localeCode string) (bool, error) {
	res, err := p.Builder.Delete(membershipsTable).
		Where(
			goqu.I("region_code").Eq(regionCode),
			goqu.I("locale_code").Eq(localeCode),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, translateError(fmt.Errorf("could not delete region locale in pg: %w", err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}
