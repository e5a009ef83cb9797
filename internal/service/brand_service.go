package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/yourorg/inventory/internal/apperrors"
	"github.com/yourorg/inventory/internal/models"
	"github.com/yourorg/inventory/internal/query"
	"github.com/yourorg/inventory/internal/repository"
)

const brandEntity = "brands"

type BrandRepository interface {
	query.Allowlist
	query.Source[*models.Brand]
	Create(ctx context.Context, scope query.Scope, req *models.CreateBrandRequest) (*models.Brand, error)
	GetByID(ctx context.Context, scope query.Scope, params models.GetBrandParams) (*models.Brand, error)
	Update(ctx context.Context, scope query.Scope, req *models.UpdateBrandRequest) (*models.Brand, error)
	ToggleActive(ctx context.Context, scope query.Scope, brandID string) (*models.Brand, error)
	Delete(ctx context.Context, scope query.Scope, params models.DeleteBrandParams) error
}

type BrandService struct {
	repo   BrandRepository
	brands *query.Accessor[*models.Brand]
	cache  ListCache
}

func NewBrandService(repo BrandRepository, opts ...Option) *BrandService {
	cfg := newConfig(opts)
	return &BrandService{
		repo:   repo,
		brands: query.NewAccessor[*models.Brand](brandEntity, repo, repo, cfg.accessorOptions()...),
		cache:  cfg.cache,
	}
}

// ListBrands returns one page of brands matching req.
func (s *BrandService) ListBrands(ctx context.Context, scope query.Scope, req query.Request) (*query.Page[*models.Brand], error) {
	return s.brands.List(ctx, scope, req)
}

// ListAllBrands returns every brand in scope ordered by name.
func (s *BrandService) ListAllBrands(ctx context.Context, scope query.Scope) ([]*models.Brand, error) {
	return cachedList(ctx, s.cache, s.cacheKey(scope), func() ([]*models.Brand, error) {
		return s.brands.ListAll(ctx, scope, query.Request{Sort: "name"})
	})
}

// ListBrandsByStatus returns every brand in scope with the given active flag,
// ordered by name.
func (s *BrandService) ListBrandsByStatus(ctx context.Context, scope query.Scope, active bool) ([]*models.Brand, error) {
	return s.brands.ListAll(ctx, scope, query.Request{
		Filters: map[string]string{"is_active": strconv.FormatBool(active)},
		Sort:    "name",
	})
}

func (s *BrandService) GetBrand(ctx context.Context, scope query.Scope, params models.GetBrandParams) (*models.Brand, error) {
	brand, err := s.repo.GetByID(ctx, scope, params)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("brand", params.BrandID)
		}
		return nil, err
	}

	return brand, nil
}

func (s *BrandService) CreateBrand(ctx context.Context, scope query.Scope, req *models.CreateBrandRequest) (*models.Brand, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, apperrors.NewValidationError("name", "name is required")
	}
	if req.Slug == "" {
		req.Slug = Slugify(req.Name)
	}
	if req.Slug == "" {
		return nil, apperrors.NewValidationError("name", "name must contain at least one letter or digit")
	}

	brand, err := s.repo.Create(ctx, scope, req)
	if err != nil {
		return nil, s.translateWriteError(err)
	}

	s.invalidate(ctx, scope)
	return brand, nil
}

func (s *BrandService) UpdateBrand(ctx context.Context, scope query.Scope, req *models.UpdateBrandRequest) (*models.Brand, error) {
	if _, err := s.GetBrand(ctx, scope, models.GetBrandParams{BrandID: req.ID}); err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name", "name cannot be blank")
		}
		req.Name = &name
		if req.Slug == nil {
			slug := Slugify(name)
			req.Slug = &slug
		}
	}

	brand, err := s.repo.Update(ctx, scope, req)
	if err != nil {
		return nil, s.translateWriteError(err)
	}

	s.invalidate(ctx, scope)
	return brand, nil
}

func (s *BrandService) ToggleBrandStatus(ctx context.Context, scope query.Scope, brandID string) (*models.Brand, error) {
	brand, err := s.repo.ToggleActive(ctx, scope, brandID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("brand", brandID)
		}
		return nil, err
	}

	s.invalidate(ctx, scope)
	return brand, nil
}

func (s *BrandService) DeleteBrand(ctx context.Context, scope query.Scope, params models.DeleteBrandParams) error {
	if _, err := s.GetBrand(ctx, scope, models.GetBrandParams{BrandID: params.BrandID}); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, scope, params); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFoundError("brand", params.BrandID)
		}
		return err
	}

	s.invalidate(ctx, scope)
	return nil
}

func (s *BrandService) translateWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrConflict):
		return apperrors.NewConflictError("brand", "name has already been taken")
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NewNotFoundError("brand", "")
	default:
		return err
	}
}

func (s *BrandService) cacheKey(scope query.Scope) string {
	if s.cache == nil {
		return ""
	}
	return s.cache.Key(brandEntity, "all", scope)
}

// invalidate drops the cached lists a write in scope can change: the scope's
// own and the unscoped one, which spans every warehouse.
func (s *BrandService) invalidate(ctx context.Context, scope query.Scope) {
	keys := []string{s.cacheKey(scope)}
	if !scope.IsZero() {
		keys = append(keys, s.cacheKey(query.Scope{}))
	}
	invalidate(ctx, s.cache, keys...)
}
