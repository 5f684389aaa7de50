package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/persistence"
	"github.com/spec-kit/booking-service/internal/repository"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

const (
	cacheKeyInfluencers = "catalog:influencers"
	cacheKeyEvents      = "catalog:events"
	cacheKeyPackages    = "catalog:packages"
)

// CatalogService coordinates influencer, event, and package management.
// List reads go through a Redis cache; admin mutations invalidate it.
type CatalogService struct {
	influencers repository.InfluencerRepository
	events      repository.EventRepository
	packages    repository.PackageRepository
	cache       *persistence.ListCache
}

// CatalogDependencies bundles repositories for the catalog service.
type CatalogDependencies struct {
	InfluencerRepo repository.InfluencerRepository
	EventRepo      repository.EventRepository
	PackageRepo    repository.PackageRepository
	Cache          *persistence.ListCache
}

// NewCatalogService builds the service.
func NewCatalogService(deps CatalogDependencies) *CatalogService {
	return &CatalogService{
		influencers: deps.InfluencerRepo,
		events:      deps.EventRepo,
		packages:    deps.PackageRepo,
		cache:       deps.Cache,
	}
}

// ListInfluencers returns all influencer profiles.
func (s *CatalogService) ListInfluencers(ctx context.Context) ([]domain.Influencer, error) {
	var cached []domain.Influencer
	if s.cache.Get(ctx, cacheKeyInfluencers, &cached) {
		return cached, nil
	}
	items, err := s.influencers.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cacheKeyInfluencers, items)
	return items, nil
}

// GetInfluencer returns one profile or NOT_FOUND.
func (s *CatalogService) GetInfluencer(ctx context.Context, id string) (*domain.Influencer, error) {
	inf, err := s.influencers.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("influencer")
		}
		return nil, err
	}
	return inf, nil
}

// CreateInfluencer persists a new profile.
func (s *CatalogService) CreateInfluencer(ctx context.Context, inf *domain.Influencer) error {
	if strings.TrimSpace(inf.Name) == "" || strings.TrimSpace(inf.Bio) == "" ||
		strings.TrimSpace(inf.Expertise) == "" || strings.TrimSpace(inf.Category) == "" {
		return apperrors.NewValidationError("name, bio, expertise, category required", nil)
	}
	if err := s.influencers.Create(ctx, inf); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cacheKeyInfluencers)
	return nil
}

// UpdateInfluencer replaces an existing profile.
func (s *CatalogService) UpdateInfluencer(ctx context.Context, inf *domain.Influencer) error {
	if err := s.influencers.Update(ctx, inf); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("influencer")
		}
		return err
	}
	s.cache.Invalidate(ctx, cacheKeyInfluencers, cacheKeyEvents, cacheKeyPackages)
	return nil
}

// DeleteInfluencer removes a profile.
func (s *CatalogService) DeleteInfluencer(ctx context.Context, id string) error {
	if err := s.influencers.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("influencer")
		}
		return err
	}
	s.cache.Invalidate(ctx, cacheKeyInfluencers, cacheKeyEvents, cacheKeyPackages)
	return nil
}

// ListEvents returns all events with their influencer, when referenced.
func (s *CatalogService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	var cached []domain.Event
	if s.cache.Get(ctx, cacheKeyEvents, &cached) {
		return cached, nil
	}
	items, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		s.attachEventInfluencer(ctx, &items[i])
	}
	s.cache.Set(ctx, cacheKeyEvents, items)
	return items, nil
}

// GetEvent returns one event or NOT_FOUND.
func (s *CatalogService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("event")
		}
		return nil, err
	}
	s.attachEventInfluencer(ctx, event)
	return event, nil
}

// CreateEvent persists a new event.
func (s *CatalogService) CreateEvent(ctx context.Context, event *domain.Event) error {
	if strings.TrimSpace(event.Title) == "" || strings.TrimSpace(event.Location) == "" {
		return apperrors.NewValidationError("title and location required", nil)
	}
	if err := s.events.Create(ctx, event); err != nil {
		return err
	}
	s.attachEventInfluencer(ctx, event)
	s.cache.Invalidate(ctx, cacheKeyEvents)
	return nil
}

// UpdateEvent replaces an existing event.
func (s *CatalogService) UpdateEvent(ctx context.Context, event *domain.Event) error {
	if err := s.events.Update(ctx, event); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("event")
		}
		return err
	}
	s.attachEventInfluencer(ctx, event)
	s.cache.Invalidate(ctx, cacheKeyEvents)
	return nil
}

// DeleteEvent removes an event.
func (s *CatalogService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.events.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("event")
		}
		return err
	}
	s.cache.Invalidate(ctx, cacheKeyEvents)
	return nil
}

// ListPackages returns all curated packages with their influencer.
func (s *CatalogService) ListPackages(ctx context.Context) ([]domain.Package, error) {
	var cached []domain.Package
	if s.cache.Get(ctx, cacheKeyPackages, &cached) {
		return cached, nil
	}
	items, err := s.packages.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		s.attachPackageInfluencer(ctx, &items[i])
	}
	s.cache.Set(ctx, cacheKeyPackages, items)
	return items, nil
}

// GetPackage returns one package or NOT_FOUND.
func (s *CatalogService) GetPackage(ctx context.Context, id string) (*domain.Package, error) {
	pkg, err := s.packages.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("package")
		}
		return nil, err
	}
	s.attachPackageInfluencer(ctx, pkg)
	return pkg, nil
}

// CreatePackage persists a new package after checking its influencer exists.
func (s *CatalogService) CreatePackage(ctx context.Context, pkg *domain.Package) error {
	if strings.TrimSpace(pkg.Name) == "" || pkg.InfluencerID == "" {
		return apperrors.NewValidationError("name and influencer_id required", nil)
	}
	if _, err := s.influencers.GetByID(ctx, pkg.InfluencerID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("influencer")
		}
		return err
	}
	if err := s.packages.Create(ctx, pkg); err != nil {
		return err
	}
	s.attachPackageInfluencer(ctx, pkg)
	s.cache.Invalidate(ctx, cacheKeyPackages)
	return nil
}

// UpdatePackage replaces an existing package.
func (s *CatalogService) UpdatePackage(ctx context.Context, pkg *domain.Package) error {
	if err := s.packages.Update(ctx, pkg); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("package")
		}
		return err
	}
	s.attachPackageInfluencer(ctx, pkg)
	s.cache.Invalidate(ctx, cacheKeyPackages)
	return nil
}

// DeletePackage removes a package.
func (s *CatalogService) DeletePackage(ctx context.Context, id string) error {
	if err := s.packages.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("package")
		}
		return err
	}
	s.cache.Invalidate(ctx, cacheKeyPackages)
	return nil
}

func (s *CatalogService) attachEventInfluencer(ctx context.Context, event *domain.Event) {
	if event.InfluencerID == nil {
		return
	}
	if inf, err := s.influencers.GetByID(ctx, *event.InfluencerID); err == nil {
		event.Influencer = inf
	}
}

func (s *CatalogService) attachPackageInfluencer(ctx context.Context, pkg *domain.Package) {
	if pkg.InfluencerID == "" {
		return
	}
	if inf, err := s.influencers.GetByID(ctx, pkg.InfluencerID); err == nil {
		pkg.Influencer = inf
	}
}
