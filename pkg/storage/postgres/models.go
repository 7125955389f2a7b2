package postgres

import (
	"database/sql"
	"time"

	"backoffice/pkg/domain"
)

type PgRegion struct {
	Code          string        `db:"code"`
	Name          string        `db:"name"`
	NativeName    string        `db:"native_name"`
	IconRef       string        `db:"icon_ref"`
	DefaultLocale string        `db:"default_locale"`
	IsActive      bool          `db:"is_active"`
	SortRank      sql.NullInt64 `db:"sort_rank"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgRegion) ToDomain() *domain.Region {
	var rank *int
	if p.SortRank.Valid {
		r := int(p.SortRank.Int64)
		rank = &r
	}

	return &domain.Region{
		Code:          p.Code,
		Name:          p.Name,
		NativeName:    p.NativeName,
		IconRef:       p.IconRef,
		DefaultLocale: p.DefaultLocale,
		IsActive:      p.IsActive,
		SortRank:      rank,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (p *PgRegion) FromDomain(region domain.Region) {
	*p = PgRegion{
		Code:          region.Code,
		Name:          region.Name,
		NativeName:    region.NativeName,
		IconRef:       region.IconRef,
		DefaultLocale: region.DefaultLocale,
		IsActive:      region.IsActive,
		SortRank:      nullRank(region.SortRank),
		CreatedAt:     region.CreatedAt,
		UpdatedAt:     region.UpdatedAt,
	}
}

// nullRank keeps the full int so that out-of-range ranks are rejected by the
// column instead of wrapping around.
func nullRank(rank *int) sql.NullInt64 {
	if rank == nil {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: int64(*rank), Valid: true}
}

func pgRegionsToDomain(rows []PgRegion) []domain.Region {
	out := make([]domain.Region, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

// PgMembership is a row of region_locales. Seq is assigned by the database and
// only used to keep equal ranks in insertion order.
type PgMembership struct {
	RegionCode string `db:"region_code"`
	LocaleCode string `db:"locale_code"`
	SortRank   int    `db:"sort_rank"`
	Seq        int64  `db:"seq"         goqu:"skipinsert"`
}

func (p *PgMembership) ToDomain() *domain.LocaleMembership {
	return &domain.LocaleMembership{
		RegionCode: p.RegionCode,
		LocaleCode: p.LocaleCode,
		SortRank:   p.SortRank,
	}
}

func domainMembershipsToPg(memberships []domain.LocaleMembership) []PgMembership {
	out := make([]PgMembership, len(memberships))
	for i, m := range memberships {
		out[i] = PgMembership{
			RegionCode: m.RegionCode,
			LocaleCode: m.LocaleCode,
			SortRank:   m.SortRank,
		}
	}

	return out
}

func pgMembershipsToDomain(rows []PgMembership) []domain.LocaleMembership {
	out := make([]domain.LocaleMembership, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

type PgAccount struct {
	ID    int64  `db:"id"    goqu:"skipinsert"`
	Name  string `db:"name"`
	Email string `db:"email"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgAccount) ToDomain() *domain.Account {
	return &domain.Account{
		ID:        domain.AccountID(p.ID),
		Name:      p.Name,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func pgAccountsToDomain(rows []PgAccount) []domain.Account {
	out := make([]domain.Account, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

type PgOrder struct {
	ID int64 `db:"id" goqu:"skipinsert"`
	// Total is NUMERIC in the database and travels as its decimal text form.
	Total      string        `db:"total"`
	CustomerID sql.NullInt64 `db:"customer_id"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgOrder) ToDomain() *domain.Order {
	var customerID *domain.AccountID
	if p.CustomerID.Valid {
		id := domain.AccountID(p.CustomerID.Int64)
		customerID = &id
	}

	return &domain.Order{
		ID:         domain.OrderID(p.ID),
		Total:      p.Total,
		CustomerID: customerID,
		CreatedAt:  p.CreatedAt,
	}
}

func (p *PgOrder) FromDomain(order domain.Order) {
	*p = PgOrder{
		ID:        int64(order.ID),
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
	}
	if order.CustomerID != nil {
		p.CustomerID = sql.NullInt64{Int64: int64(*order.CustomerID), Valid: true}
	}
}

func pgOrdersToDomain(rows []PgOrder) []domain.Order {
	out := make([]domain.Order, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}
