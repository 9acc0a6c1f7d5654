package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/guttosm/cart-pricing-service/internal/pricing"
	"github.com/guttosm/cart-pricing-service/internal/repository"
	"github.com/rs/zerolog/log"
)

var (
	// ErrRepositoryNotConfigured is returned when the repository is not configured.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	// ErrInvalidTariff is returned when a submitted tariff fails validation.
	ErrInvalidTariff = errors.New("invalid tariff")
)

// TariffService manages shipping tariff versions and keeps the quote calculator in sync.
type TariffService interface {
	// Active returns the tariff in effect: the stored active version, or the built-in default.
	Active(ctx context.Context) (model.Tariff, error)
	// Create validates and stores tariff as a new active version.
	Create(ctx context.Context, tariff model.Tariff, createdBy string) (*repository.TariffDocument, error)
	// List returns stored versions, newest first.
	List(ctx context.Context, limit int) ([]repository.TariffDocument, error)
	// Refresh loads the active tariff into the calculator.
	Refresh(ctx context.Context) (model.Tariff, error)
}

// TariffServiceImpl implements TariffService.
type TariffServiceImpl struct {
	tariffsRepo repository.TariffsRepositoryInterface
	calculator  QuoteCalculator
}

// NewTariffService creates a tariff service. calculator may be nil.
func NewTariffService(tariffsRepo repository.TariffsRepositoryInterface, calculator QuoteCalculator) TariffService {
	return &TariffServiceImpl{
		tariffsRepo: tariffsRepo,
		calculator:  calculator,
	}
}

func (s *TariffServiceImpl) Active(ctx context.Context) (model.Tariff, error) {
	if s.tariffsRepo == nil {
		return pricing.DefaultTariff(), nil
	}

	doc, err := s.tariffsRepo.GetActive(ctx)
	if err != nil {
		return model.Tariff{}, err
	}
	if doc == nil {
		return pricing.DefaultTariff(), nil
	}
	return doc.ToModel()
}

func (s *TariffServiceImpl) Create(ctx context.Context, tariff model.Tariff, createdBy string) (*repository.TariffDocument, error) {
	if s.tariffsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := pricing.ValidateTariff(tariff); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTariff, err)
	}

	doc, err := s.tariffsRepo.Create(ctx, tariff, createdBy)
	if err != nil {
		return nil, err
	}

	if s.calculator != nil {
		stored := tariff.Clone()
		stored.Version = doc.Version
		s.calculator.SetTariff(stored)
	}

	log.Info().
		Int("tariff_version", doc.Version).
		Str("created_by", createdBy).
		Msg("tariff version activated")

	return doc, nil
}

func (s *TariffServiceImpl) List(ctx context.Context, limit int) ([]repository.TariffDocument, error) {
	if s.tariffsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.tariffsRepo.List(ctx, limit)
}

func (s *TariffServiceImpl) Refresh(ctx context.Context) (model.Tariff, error) {
	tariff, err := s.Active(ctx)
	if err != nil {
		return model.Tariff{}, err
	}
	if s.calculator != nil && s.calculator.Tariff().Version != tariff.Version {
		s.calculator.SetTariff(tariff)
		log.Info().Int("tariff_version", tariff.Version).Msg("quote calculator tariff refreshed")
	}
	return tariff, nil
}
