package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"backoffice/internal/config"
	"backoffice/pkg/domain"
	"backoffice/pkg/serrors"
	"backoffice/pkg/storage"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"
)

const instrumentationName = "backoffice/internal/catalog"

// Options configure the catalog service.
type Options struct {
	// OperationTimeout bounds every operation, storage calls included. Zero
	// leaves the caller's deadline as the only bound.
	OperationTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		OperationTimeout: cfg.Catalog.OperationTimeout,
	}
}

// catalog is the concrete implementation of the Catalog interface. Every
// mutation runs in a single transaction holding the region row lock, so
// invariant checks and writes of one region never interleave.
type catalog struct {
	options  Options
	storage  storage.Storage
	validate *validator.Validate

	tracer     trace.Tracer
	operations metric.Int64Counter
}

// New creates a Catalog backed by the provided storage. Spans and metrics go
// to the global otel providers.
func New(storage storage.Storage, options Options) Catalog {
	operations, err := otel.Meter(instrumentationName).Int64Counter("catalog_operations_total",
		metric.WithDescription("Number of catalog operations by operation and result."))
	if err != nil {
		operations = noop.Int64Counter{}
	}

	return &catalog{
		options:    options,
		storage:    storage,
		validate:   serrors.NewValidator(),
		tracer:     otel.Tracer(instrumentationName),
		operations: operations,
	}
}

// run executes fn as the named operation: it applies the operation timeout,
// records a span and counts the outcome.
func (c *catalog) run(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	ctx, span := c.tracer.Start(ctx, "catalog."+operation)
	defer span.End()

	opCtx := ctx
	if c.options.OperationTimeout > 0 {
		var cancel context.CancelFunc
		opCtx, cancel = context.WithTimeout(ctx, c.options.OperationTimeout)
		defer cancel()
	}

	err := fn(opCtx)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && serrors.KindOf(err) == nil {
		err = serrors.Wrap(serrors.ErrTimeout, err, "catalog %s timed out", operation)
	}

	result := "ok"
	if err != nil {
		result = "error"
		if kind := serrors.KindOf(err); kind != nil {
			result = strings.ToLower(kind.Error())
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	c.operations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("result", result),
	))

	return err
}

func regionNotFound(code string) error {
	return serrors.Wrap(serrors.ErrNotFound, ErrRegionNotFound, "region %q", code)
}

func membershipNotFound(code, localeCode string) error {
	return serrors.Wrap(serrors.ErrNotFound, ErrMembershipNotFound, "locale %q of region %q", localeCode, code)
}

func (c *catalog) validateVar(field string, value any, tag string) error {
	if err := c.validate.Var(value, tag); err != nil {
		return serrors.Invalid(err, field)
	}

	return nil
}

// CreateRegion stores a region and its initial memberships atomically.
func (c *catalog) CreateRegion(ctx context.Context, input CreateRegionInput) (*domain.RegionView, error) {
	if err := c.validate.Struct(input); err != nil {
		return nil, serrors.Invalid(err, "region")
	}

	region := domain.Region{
		Code:          input.Code,
		Name:          input.Name,
		NativeName:    input.NativeName,
		IconRef:       input.IconRef,
		DefaultLocale: input.DefaultLocale,
		IsActive:      true,
		SortRank:      input.SortRank,
	}
	if input.IsActive != nil {
		region.IsActive = *input.IsActive
	}

	var view domain.RegionView
	err := c.run(ctx, "create_region", func(ctx context.Context) error {
		return c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
			existing, err := tx.RegionByCode(ctx, region.Code, false)
			if err != nil {
				return fmt.Errorf("could not get region: %w", err)
			}
			if existing != nil {
				return serrors.Wrap(serrors.ErrConflict, ErrDuplicateRegion, "region %q", region.Code)
			}

			// locale checks only run for a free code, a taken one is a conflict first
			if err := ValidateUniqueLocales(input.Locales); err != nil {
				return err
			}
			memberships, err := ValidateCreate(region, input.Locales)
			if err != nil {
				return err
			}

			stored, err := tx.InsertRegion(ctx, region)
			if errors.Is(err, storage.ErrDuplicateKey) {
				return serrors.Wrap(serrors.ErrConflict, ErrDuplicateRegion, "region %q", region.Code)
			}
			if err != nil {
				return fmt.Errorf("could not store region: %w", err)
			}

			if _, err := tx.InsertMemberships(ctx, memberships...); err != nil {
				if errors.Is(err, storage.ErrDuplicateKey) {
					return serrors.Wrap(serrors.ErrConflict, ErrDuplicateMembership, "region %q", region.Code)
				}

				return fmt.Errorf("could not store region locales: %w", err)
			}

			view = project(*stored, memberships)

			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("could not create region: %w", err)
	}

	return &view, nil
}

// ListRegions loads the regions and the memberships of all of them in two
// queries and projects each region.
func (c *catalog) ListRegions(ctx context.Context, active *bool) ([]domain.RegionView, error) {
	var views []domain.RegionView
	err := c.run(ctx, "list_regions", func(ctx context.Context) error {
		regions, err := c.storage.Regions(ctx, active)
		if err != nil {
			return fmt.Errorf("could not list regions: %w", err)
		}

		codes := make([]string, len(regions))
		for i, r := range regions {
			codes[i] = r.Code
		}

		memberships, err := c.storage.Memberships(ctx, codes...)
		if err != nil {
			return fmt.Errorf("could not list region locales: %w", err)
		}

		byRegion := make(map[string][]domain.LocaleMembership, len(regions))
		for _, m := range memberships {
			byRegion[m.RegionCode] = append(byRegion[m.RegionCode], m)
		}

		views = make([]domain.RegionView, len(regions))
		for i, r := range regions {
			views[i] = project(r, byRegion[r.Code])
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return views, nil
}

// GetRegion returns the projection of one region.
func (c *catalog) GetRegion(ctx context.Context, code string) (*domain.RegionView, error) {
	var view domain.RegionView
	err := c.run(ctx, "get_region", func(ctx context.Context) error {
		region, memberships, err := c.loadRegion(ctx, c.storage, code, false)
		if err != nil {
			return err
		}
		view = project(*region, memberships)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &view, nil
}

// loadRegion fetches a region with its memberships, optionally locking the
// region row. A missing region yields a not-found error.
func (c *catalog) loadRegion(ctx context.Context,
	st storage.AllStorage,
	code string,
	lock bool) (*domain.Region, []domain.LocaleMembership, error) {
	region, err := st.RegionByCode(ctx, code, lock)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get region: %w", err)
	}
	if region == nil {
		return nil, nil, regionNotFound(code)
	}

	memberships, err := st.Memberships(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("could not list region locales: %w", err)
	}

	return region, memberships, nil
}

// UpdateRegion applies the set fields of update. A new default locale is
// checked against the memberships the region has at the time of the call.
func (c *catalog) UpdateRegion(ctx context.Context, code string, update RegionUpdate) (*domain.RegionView, error) {
	if err := c.validateUpdate(update); err != nil {
		return nil, err
	}

	var view domain.RegionView
	err := c.run(ctx, "update_region", func(ctx context.Context) error {
		return c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
			region, memberships, err := c.loadRegion(ctx, tx, code, true)
			if err != nil {
				return err
			}

			if locale, ok := update.DefaultLocale.Get(); ok {
				if err := ValidateDefaultLocaleChange(memberships, locale); err != nil {
					return err
				}
			}

			updates := storage.RegionUpdates(update)
			if !updates.IsEmpty() {
				region, err = tx.UpdateRegion(ctx, code, updates)
				if err != nil {
					return fmt.Errorf("could not update region: %w", err)
				}
				if region == nil {
					return regionNotFound(code)
				}
			}

			view = project(*region, memberships)

			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("could not update region: %w", err)
	}

	return &view, nil
}

func (c *catalog) validateUpdate(update RegionUpdate) error {
	if v, ok := update.Name.Get(); ok {
		if err := c.validateVar("name", v, "required,max=255"); err != nil {
			return err
		}
	}
	if v, ok := update.NativeName.Get(); ok {
		if err := c.validateVar("nativeName", v, "required,max=255"); err != nil {
			return err
		}
	}
	if v, ok := update.IconRef.Get(); ok {
		if err := c.validateVar("iconRef", v, "required,max=512"); err != nil {
			return err
		}
	}
	if v, ok := update.DefaultLocale.Get(); ok {
		if err := c.validateVar("defaultLocale", v, "required,max=16"); err != nil {
			return err
		}
	}
	if v, ok := update.SortRank.Get(); ok && v != nil {
		if err := c.validateVar("sortRank", *v, sortRankTag); err != nil {
			return err
		}
	}

	return nil
}

// DeleteRegion removes the region; its memberships are removed in the same
// statement.
func (c *catalog) DeleteRegion(ctx context.Context, code string) error {
	return c.run(ctx, "delete_region", func(ctx context.Context) error {
		return c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
			deleted, err := tx.DeleteRegion(ctx, code)
			if err != nil {
				return fmt.Errorf("could not delete region: %w", err)
			}
			if !deleted {
				return regionNotFound(code)
			}

			return nil
		})
	})
}

// ListMemberships returns the memberships of a region ordered by rank.
func (c *catalog) ListMemberships(ctx context.Context, code string) ([]domain.LocaleMembership, error) {
	var memberships []domain.LocaleMembership
	err := c.run(ctx, "list_memberships", func(ctx context.Context) error {
		var err error
		_, memberships, err = c.loadRegion(ctx, c.storage, code, false)

		return err
	})
	if err != nil {
		return nil, err
	}

	return memberships, nil
}

// AddMembership attaches a locale to a region. Without a rank the locale goes
// after every existing one. The first locale of a region must be its default
// locale, so the default stays among the locales once there are any.
func (c *catalog) AddMembership(ctx context.Context,
	code, localeCode string,
	rank *int) (*domain.LocaleMembership, error) {
	if err := c.validateVar("localeCode", localeCode, "required,max=16"); err != nil {
		return nil, err
	}
	if rank != nil {
		if err := c.validateVar("sortRank", *rank, sortRankTag); err != nil {
			return nil, err
		}
	}

	var added *domain.LocaleMembership
	err := c.run(ctx, "add_membership", func(ctx context.Context) error {
		return c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
			region, memberships, err := c.loadRegion(ctx, tx, code, true)
			if err != nil {
				return err
			}

			for _, m := range memberships {
				if m.LocaleCode == localeCode {
					return serrors.Wrap(serrors.ErrConflict, ErrDuplicateMembership,
						"locale %q of region %q", localeCode, code)
				}
			}

			membership := domain.LocaleMembership{
				RegionCode: code,
				LocaleCode: localeCode,
				SortRank:   NextSortRank(memberships),
			}
			if rank != nil {
				membership.SortRank = *rank
			}
			if err := c.validateVar("sortRank", membership.SortRank, sortRankTag); err != nil {
				return err
			}

			after := append(memberships, membership) //nolint: gocritic
			if err := ValidateDefaultLocaleChange(after, region.DefaultLocale); err != nil {
				return err
			}

			stored, err := tx.InsertMemberships(ctx, membership)
			if errors.Is(err, storage.ErrDuplicateKey) {
				return serrors.Wrap(serrors.ErrConflict, ErrDuplicateMembership,
					"locale %q of region %q", localeCode, code)
			}
			if err != nil {
				return fmt.Errorf("could not store region locale: %w", err)
			}
			added = &stored[0]

			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("could not add region locale: %w", err)
	}

	return added, nil
}

// UpdateMembership sets the rank of an existing membership. A nil rank changes nothing.
func (c *catalog) UpdateMembership(ctx context.Context,
	code, localeCode string,
	rank *int) (*domain.LocaleMembership, error) {
	if rank != nil {
		if err := c.validateVar("sortRank", *rank, sortRankTag); err != nil {
			return nil, err
		}
	}

	var updated *domain.LocaleMembership
	err := c.run(ctx, "update_membership", func(ctx context.Context) error {
		return c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
			region, err := tx.RegionByCode(ctx, code, true)
			if err != nil {
				return fmt.Errorf("could not get region: %w", err)
			}
			if region == nil {
				return regionNotFound(code)
			}

			membership, err := tx.Membership(ctx, code, localeCode)
			if err != nil {
				return fmt.Errorf("could not get region locale: %w", err)
			}
			if membership == nil {
				return membershipNotFound(code, localeCode)
			}
			if rank == nil {
				updated = membership

				return nil
			}

			updated, err = tx.UpdateMembershipRank(ctx, code, localeCode, *rank)
			if err != nil {
				return fmt.Errorf("could not update region locale: %w", err)
			}
			if updated == nil {
				return membershipNotFound(code, localeCode)
			}

			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("could not update region locale: %w", err)
	}

	return updated, nil
}

// RemoveMembership detaches a locale from a region. The default locale cannot
// be removed.
func (c *catalog) RemoveMembership(ctx context.Context, code, localeCode string) error {
	err := c.run(ctx, "remove_membership", func(ctx context.Context) error {
		return c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
			region, err := tx.RegionByCode(ctx, code, true)
			if err != nil {
				return fmt.Errorf("could not get region: %w", err)
			}
			if region == nil {
				return regionNotFound(code)
			}

			membership, err := tx.Membership(ctx, code, localeCode)
			if err != nil {
				return fmt.Errorf("could not get region locale: %w", err)
			}
			if membership == nil {
				return membershipNotFound(code, localeCode)
			}

			if err := ValidateMembershipRemoval(*region, localeCode); err != nil {
				return err
			}

			deleted, err := tx.DeleteMembership(ctx, code, localeCode)
			if err != nil {
				return fmt.Errorf("could not delete region locale: %w", err)
			}
			if !deleted {
				return membershipNotFound(code, localeCode)
			}

			return nil
		})
	})
	if err != nil {
		return fmt.Errorf("could not remove region locale: %w", err)
	}

	return nil
}

// ResolveLocale matches acceptLanguage against the region's locales. Exact
// codes win; otherwise BCP 47 matching picks the closest supported locale.
// Locales that are not valid language tags can only match exactly.
func (c *catalog) ResolveLocale(ctx context.Context, code, acceptLanguage string) (string, error) {
	var resolved string
	err := c.run(ctx, "resolve_locale", func(ctx context.Context) error {
		region, memberships, err := c.loadRegion(ctx, c.storage, code, false)
		if err != nil {
			return err
		}

		resolved = matchLocale(region.DefaultLocale, ProjectOrdering(memberships), acceptLanguage)

		return nil
	})
	if err != nil {
		return "", err
	}

	return resolved, nil
}

func matchLocale(defaultLocale string, supported []string, acceptLanguage string) string {
	if len(supported) == 0 || strings.TrimSpace(acceptLanguage) == "" {
		return defaultLocale
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		// not a well-formed header, but a bare locale code may still match exactly
		for _, part := range strings.Split(acceptLanguage, ",") {
			code, _, _ := strings.Cut(part, ";")
			if s, ok := lookupExact(supported, strings.TrimSpace(code)); ok {
				return s
			}
		}

		return defaultLocale
	}

	for _, tag := range desired {
		if s, ok := lookupExact(supported, tag.String()); ok {
			return s
		}
	}

	// the first tag handed to the matcher is its fallback, so the default leads
	candidates := []string{defaultLocale}
	tags := []language.Tag{language.Make(defaultLocale)}
	for _, s := range supported {
		if s == defaultLocale {
			continue
		}
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		candidates = append(candidates, s)
		tags = append(tags, tag)
	}

	_, idx, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return defaultLocale
	}

	return candidates[idx]
}

func lookupExact(supported []string, code string) (string, bool) {
	for _, s := range supported {
		if strings.EqualFold(s, code) {
			return s, true
		}
	}

	return "", false
}
