package service

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/yourorg/inventory/internal/apperrors"
	"github.com/yourorg/inventory/internal/models"
	"github.com/yourorg/inventory/internal/query"
	"github.com/yourorg/inventory/internal/repository"
)

const categoryEntity = "categories"

type CategoryRepository interface {
	query.Allowlist
	query.Source[*models.Category]
	Create(ctx context.Context, scope query.Scope, req *models.CreateCategoryRequest) (*models.Category, error)
	GetByID(ctx context.Context, scope query.Scope, params models.GetCategoryParams) (*models.Category, error)
	Update(ctx context.Context, scope query.Scope, req *models.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, scope query.Scope, params models.DeleteCategoryParams) error
	Ancestors(ctx context.Context, scope query.Scope, categoryID string) ([]string, error)
	HasChildren(ctx context.Context, scope query.Scope, categoryID string) (bool, error)
}

type CategoryService struct {
	repo       CategoryRepository
	categories *query.Accessor[*models.Category]
	cache      ListCache
}

func NewCategoryService(repo CategoryRepository, opts ...Option) *CategoryService {
	cfg := newConfig(opts)
	return &CategoryService{
		repo:       repo,
		categories: query.NewAccessor[*models.Category](categoryEntity, repo, repo, cfg.accessorOptions()...),
		cache:      cfg.cache,
	}
}

func (s *CategoryService) ListCategories(ctx context.Context, scope query.Scope, req query.Request) (*query.Page[*models.Category], error) {
	return s.categories.List(ctx, scope, req)
}

// ListAllCategories returns every category in scope ordered by name.
func (s *CategoryService) ListAllCategories(ctx context.Context, scope query.Scope) ([]*models.Category, error) {
	return cachedList(ctx, s.cache, s.cacheKey("all", scope), func() ([]*models.Category, error) {
		return s.categories.ListAll(ctx, scope, query.Request{Sort: "name"})
	})
}

// ListRootCategories returns the categories without a parent, ordered by name.
func (s *CategoryService) ListRootCategories(ctx context.Context, scope query.Scope) ([]*models.Category, error) {
	return cachedList(ctx, s.cache, s.cacheKey("roots", scope), func() ([]*models.Category, error) {
		return s.categories.ListAll(ctx, scope, query.Request{
			Filters: map[string]string{"parent_id": "null"},
			Sort:    "name",
		})
	})
}

func (s *CategoryService) GetCategory(ctx context.Context, scope query.Scope, params models.GetCategoryParams) (*models.Category, error) {
	category, err := s.repo.GetByID(ctx, scope, params)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("category", params.CategoryID)
		}
		return nil, err
	}

	return category, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, scope query.Scope, req *models.CreateCategoryRequest) (*models.Category, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, apperrors.NewValidationError("name", "name is required")
	}
	if req.ParentID != nil {
		if err := s.checkParentExists(ctx, scope, *req.ParentID); err != nil {
			return nil, err
		}
	}

	category, err := s.repo.Create(ctx, scope, req)
	if err != nil {
		return nil, translateCategoryWriteError(err)
	}

	s.invalidate(ctx, scope)
	return category, nil
}

// UpdateCategory applies req. Moving a category under itself or one of its
// descendants is rejected.
func (s *CategoryService) UpdateCategory(ctx context.Context, scope query.Scope, req *models.UpdateCategoryRequest) (*models.Category, error) {
	if _, err := s.GetCategory(ctx, scope, models.GetCategoryParams{CategoryID: req.ID}); err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name", "name cannot be blank")
		}
		req.Name = &name
	}

	if req.ParentID != nil && !req.ClearParent {
		if err := s.checkParent(ctx, scope, req.ID, *req.ParentID); err != nil {
			return nil, err
		}
	}

	category, err := s.repo.Update(ctx, scope, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("category", req.ID)
		}
		return nil, translateCategoryWriteError(err)
	}

	s.invalidate(ctx, scope)
	return category, nil
}

// DeleteCategory soft-deletes a category that has no children.
func (s *CategoryService) DeleteCategory(ctx context.Context, scope query.Scope, params models.DeleteCategoryParams) error {
	if _, err := s.GetCategory(ctx, scope, models.GetCategoryParams{CategoryID: params.CategoryID}); err != nil {
		return err
	}

	hasChildren, err := s.repo.HasChildren(ctx, scope, params.CategoryID)
	if err != nil {
		return err
	}
	if hasChildren {
		return apperrors.NewConflictError("category", "has child categories")
	}

	if err := s.repo.Delete(ctx, scope, params); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFoundError("category", params.CategoryID)
		}
		return err
	}

	s.invalidate(ctx, scope)
	return nil
}

func (s *CategoryService) checkParent(ctx context.Context, scope query.Scope, categoryID, parentID string) error {
	if parentID == categoryID {
		return apperrors.NewValidationError("parent_id", "parent_id cannot be the category itself")
	}

	chain, err := s.repo.Ancestors(ctx, scope, parentID)
	if err != nil {
		return err
	}
	if len(chain) == 0 {
		return apperrors.NewValidationError("parent_id", "parent_id does not exist")
	}
	if slices.Contains(chain, categoryID) {
		return apperrors.NewValidationError("parent_id", "parent_id cannot be a descendant of the category")
	}
	return nil
}

func (s *CategoryService) checkParentExists(ctx context.Context, scope query.Scope, parentID string) error {
	_, err := s.repo.GetByID(ctx, scope, models.GetCategoryParams{CategoryID: parentID})
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewValidationError("parent_id", "parent_id does not exist")
	}
	return err
}

func translateCategoryWriteError(err error) error {
	if errors.Is(err, repository.ErrConflict) {
		return apperrors.NewConflictError("category", "already exists")
	}
	return err
}

func (s *CategoryService) cacheKey(list string, scope query.Scope) string {
	if s.cache == nil {
		return ""
	}
	return s.cache.Key(categoryEntity, list, scope)
}

// invalidate drops the scope's cached lists and the unscoped ones.
func (s *CategoryService) invalidate(ctx context.Context, scope query.Scope) {
	keys := []string{s.cacheKey("all", scope), s.cacheKey("roots", scope)}
	if !scope.IsZero() {
		keys = append(keys, s.cacheKey("all", query.Scope{}), s.cacheKey("roots", query.Scope{}))
	}
	invalidate(ctx, s.cache, keys...)
}
