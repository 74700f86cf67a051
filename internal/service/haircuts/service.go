package haircuts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	haircutRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/haircut"
	"github.com/m04kA/SMC-BarberService/internal/service/haircuts/models"
)

// Service сервис каталога стрижек
type Service struct {
	haircutRepo HaircutRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса стрижек
func NewService(haircutRepo HaircutRepository, logger Logger) *Service {
	return &Service{
		haircutRepo: haircutRepo,
		logger:      logger,
	}
}

// Create добавляет стрижку в каталог
func (s *Service) Create(ctx context.Context, req *models.CreateHaircutRequest) (*models.HaircutResponse, error) {
	s.logger.Info("Create: adding haircut for user=%d", req.UserID)

	name, err := validateName(req.Name)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}
	duration, err := parseDuration(req.Duration)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	haircut, err := s.haircutRepo.Create(ctx, &domain.Haircut{
		UserID:          req.UserID,
		Name:            name,
		Price:           price,
		DurationMinutes: duration,
		Status:          true,
	})
	if err != nil {
		s.logger.Error("Create: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created haircut id=%d for user=%d", haircut.ID, req.UserID)
	return models.FromDomainHaircut(haircut), nil
}

// GetByID получает стрижку каталога
func (s *Service) GetByID(ctx context.Context, id, userID int64) (*models.HaircutResponse, error) {
	haircut, err := s.getOwned(ctx, "GetByID", id, userID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainHaircut(haircut), nil
}

// List получает каталог с фильтром по статусу
func (s *Service) List(ctx context.Context, req *models.ListHaircutsRequest) (*models.HaircutListResponse, error) {
	filter := domain.HaircutsFilter{UserID: req.UserID}
	if req.Status != nil && *req.Status != "" {
		status, err := domain.ParseEntityStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = &status
	}

	list, err := s.haircutRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d haircuts for user=%d", len(list), req.UserID)
	return models.FromDomainHaircutList(list), nil
}

// Update меняет стрижку. Уже созданные записи хранят свою длительность и цену
func (s *Service) Update(ctx context.Context, req *models.UpdateHaircutRequest) (*models.HaircutResponse, error) {
	s.logger.Info("Update: updating haircut id=%d by user=%d", req.HaircutID, req.UserID)

	haircut, err := s.getOwned(ctx, "Update", req.HaircutID, req.UserID)
	if err != nil {
		return nil, err
	}

	if err := applyUpdate(haircut, req); err != nil {
		s.logger.Warn("Update: validation failed for haircut id=%d: %v", req.HaircutID, err)
		return nil, err
	}

	updated, err := s.haircutRepo.Update(ctx, haircut)
	if err != nil {
		if errors.Is(err, haircutRepo.ErrHaircutNotFound) {
			return nil, ErrHaircutNotFound
		}
		s.logger.Error("Update: repository error for haircut id=%d: %v", req.HaircutID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated haircut id=%d", updated.ID)
	return models.FromDomainHaircut(updated), nil
}

func (s *Service) getOwned(ctx context.Context, op string, id, userID int64) (*domain.Haircut, error) {
	haircut, err := s.haircutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, haircutRepo.ErrHaircutNotFound) {
			s.logger.Warn("%s: haircut id=%d not found", op, id)
			return nil, ErrHaircutNotFound
		}
		s.logger.Error("%s: repository error for haircut id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if haircut.UserID != userID {
		s.logger.Warn("%s: access denied for user=%d to haircut id=%d", op, userID, id)
		return nil, ErrAccessDenied
	}

	return haircut, nil
}

func applyUpdate(haircut *domain.Haircut, req *models.UpdateHaircutRequest) error {
	if req.Name != nil {
		name, err := validateName(*req.Name)
		if err != nil {
			return err
		}
		haircut.Name = name
	}
	if req.Price != nil {
		price, err := parsePrice(*req.Price)
		if err != nil {
			return err
		}
		haircut.Price = price
	}
	if req.Duration != nil {
		duration, err := parseDuration(*req.Duration)
		if err != nil {
			return err
		}
		haircut.DurationMinutes = duration
	}
	if req.Status != nil {
		status, err := domain.ParseEntityStatus(*req.Status)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		haircut.Status = status
	}
	return nil
}
