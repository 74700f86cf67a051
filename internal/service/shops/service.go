package shops

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	userRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/user"
	"github.com/m04kA/SMC-BarberService/internal/service/shops/models"
	"github.com/m04kA/SMC-BarberService/pkg/normalize"
)

// Service публичные данные барбершопа для страницы записи
type Service struct {
	userRepo    UserRepository
	barberRepo  BarberRepository
	haircutRepo HaircutRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса барбершопов
func NewService(
	userRepo UserRepository,
	barberRepo BarberRepository,
	haircutRepo HaircutRepository,
	logger Logger,
) *Service {
	return &Service{
		userRepo:    userRepo,
		barberRepo:  barberRepo,
		haircutRepo: haircutRepo,
		logger:      logger,
	}
}

// GetBySlug находит барбершоп по публичному имени
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.ShopResponse, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	s.logger.Info("GetBySlug: looking up shop slug=%s", slug)

	user, err := s.userRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, s.translate("GetBySlug", err)
	}

	resp := models.FromDomainUser(user)
	return &resp, nil
}

// GetCatalog возвращает включённых барберов и стрижки барбершопа
func (s *Service) GetCatalog(ctx context.Context, shopID int64) (*models.CatalogResponse, error) {
	s.logger.Info("GetCatalog: fetching catalog for shop=%d", shopID)

	user, err := s.userRepo.GetByID(ctx, shopID)
	if err != nil {
		return nil, s.translate("GetCatalog", err)
	}

	active := true
	barbers, err := s.barberRepo.List(ctx, domain.BarbersFilter{UserID: shopID, Status: &active})
	if err != nil {
		s.logger.Error("GetCatalog: failed to list barbers for shop=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: GetCatalog - list barbers: %v", ErrInternal, err)
	}

	haircuts, err := s.haircutRepo.List(ctx, domain.HaircutsFilter{UserID: shopID, Status: &active})
	if err != nil {
		s.logger.Error("GetCatalog: failed to list haircuts for shop=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: GetCatalog - list haircuts: %v", ErrInternal, err)
	}

	resp := &models.CatalogResponse{
		Shop:     models.FromDomainUser(user),
		Barbers:  make([]models.CatalogBarber, 0, len(barbers)),
		Haircuts: make([]models.CatalogHaircut, 0, len(haircuts)),
	}
	for _, b := range barbers {
		resp.Barbers = append(resp.Barbers, models.CatalogBarber{
			ID:        b.ID,
			Name:      b.Name,
			WorkStart: b.WorkStart.String(),
			WorkEnd:   b.WorkEnd.String(),
		})
	}
	for _, h := range haircuts {
		resp.Haircuts = append(resp.Haircuts, models.CatalogHaircut{
			ID:              h.ID,
			Name:            h.Name,
			Price:           h.Price,
			DisplayPrice:    normalize.FormatPrice(h.Price),
			DurationMinutes: h.DurationMinutes,
		})
	}

	s.logger.Info("GetCatalog: shop=%d has %d barbers and %d haircuts", shopID, len(resp.Barbers), len(resp.Haircuts))
	return resp, nil
}

func (s *Service) translate(op string, err error) error {
	if errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Warn("%s: shop not found", op)
		return ErrShopNotFound
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
