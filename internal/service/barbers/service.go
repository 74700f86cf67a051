package barbers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	barberRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/barber"
	"github.com/m04kA/SMC-BarberService/internal/service/barbers/models"
)

// Service сервис управления барберами барбершопа
type Service struct {
	barberRepo BarberRepository
	cache      SlotsCache
	logger     Logger
}

// NewService создает новый экземпляр сервиса барберов
func NewService(barberRepo BarberRepository, cache SlotsCache, logger Logger) *Service {
	return &Service{
		barberRepo: barberRepo,
		cache:      cache,
		logger:     logger,
	}
}

// Create добавляет барбера. Новый барбер сразу принимает записи
func (s *Service) Create(ctx context.Context, req *models.CreateBarberRequest) (*models.BarberResponse, error) {
	s.logger.Info("Create: adding barber for user=%d", req.UserID)

	name, err := validateName(req.Name)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}
	start, err := parseWorkTime("workStart", req.WorkStart)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}
	end, err := parseWorkTime("workEnd", req.WorkEnd)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}
	if err := validateWindow(start, end); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}
	slots, err := parseAvailableAt(req.AvailableAt)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	barber, err := s.barberRepo.Create(ctx, &domain.Barber{
		UserID:      req.UserID,
		Name:        name,
		WorkStart:   start,
		WorkEnd:     end,
		AvailableAt: slots,
		Status:      true,
	})
	if err != nil {
		s.logger.Error("Create: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created barber id=%d for user=%d", barber.ID, req.UserID)
	return models.FromDomainBarber(barber), nil
}

// GetByID получает барбера барбершопа
func (s *Service) GetByID(ctx context.Context, id, userID int64) (*models.BarberResponse, error) {
	barber, err := s.getOwned(ctx, "GetByID", id, userID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBarber(barber), nil
}

// List получает барберов барбершопа с фильтром по статусу
func (s *Service) List(ctx context.Context, req *models.ListBarbersRequest) (*models.BarberListResponse, error) {
	s.logger.Info("List: fetching barbers for user=%d, status=%v", req.UserID, req.Status)

	filter := domain.BarbersFilter{UserID: req.UserID}
	if req.Status != nil && *req.Status != "" {
		status, err := domain.ParseEntityStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = &status
	}

	barbers, err := s.barberRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d barbers for user=%d", len(barbers), req.UserID)
	return models.FromDomainBarberList(barbers), nil
}

// Update меняет профиль, расписание или статус барбера
// После изменения кэш слотов барбера сбрасывается на все даты
func (s *Service) Update(ctx context.Context, req *models.UpdateBarberRequest) (*models.BarberResponse, error) {
	s.logger.Info("Update: updating barber id=%d by user=%d", req.BarberID, req.UserID)

	// 1. Получаем барбера и проверяем владельца
	barber, err := s.getOwned(ctx, "Update", req.BarberID, req.UserID)
	if err != nil {
		return nil, err
	}

	// 2. Применяем изменения
	if err := applyUpdate(barber, req); err != nil {
		s.logger.Warn("Update: validation failed for barber id=%d: %v", req.BarberID, err)
		return nil, err
	}

	// 3. Сохраняем
	updated, err := s.barberRepo.Update(ctx, barber)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			return nil, ErrBarberNotFound
		}
		s.logger.Error("Update: repository error for barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 4. Сбрасываем кэш
	s.invalidate(ctx, "Update", updated.ID)

	s.logger.Info("Update: successfully updated barber id=%d", updated.ID)
	return models.FromDomainBarber(updated), nil
}

// Disable выключает барбера (удаление в API). Записи и история сохраняются
func (s *Service) Disable(ctx context.Context, id, userID int64) error {
	s.logger.Info("Disable: disabling barber id=%d by user=%d", id, userID)

	if _, err := s.getOwned(ctx, "Disable", id, userID); err != nil {
		return err
	}

	if err := s.barberRepo.SetStatus(ctx, id, false); err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			return ErrBarberNotFound
		}
		s.logger.Error("Disable: repository error for barber id=%d: %v", id, err)
		return fmt.Errorf("%w: Disable - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, "Disable", id)

	s.logger.Info("Disable: successfully disabled barber id=%d", id)
	return nil
}

// Вспомогательные методы

func (s *Service) getOwned(ctx context.Context, op string, id, userID int64) (*domain.Barber, error) {
	barber, err := s.barberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("%s: barber id=%d not found", op, id)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("%s: repository error for barber id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if barber.UserID != userID {
		s.logger.Warn("%s: access denied for user=%d to barber id=%d", op, userID, id)
		return nil, ErrAccessDenied
	}

	return barber, nil
}

func (s *Service) invalidate(ctx context.Context, op string, barberID int64) {
	if err := s.cache.InvalidateBarber(ctx, barberID); err != nil {
		s.logger.Warn("%s: failed to invalidate slots cache for barber=%d: %v", op, barberID, err)
	}
}

// applyUpdate применяет заданные поля к барберу с валидацией
func applyUpdate(barber *domain.Barber, req *models.UpdateBarberRequest) error {
	if req.Name != nil {
		name, err := validateName(*req.Name)
		if err != nil {
			return err
		}
		barber.Name = name
	}
	if req.WorkStart != nil {
		start, err := parseWorkTime("workStart", *req.WorkStart)
		if err != nil {
			return err
		}
		barber.WorkStart = start
	}
	if req.WorkEnd != nil {
		end, err := parseWorkTime("workEnd", *req.WorkEnd)
		if err != nil {
			return err
		}
		barber.WorkEnd = end
	}
	if err := validateWindow(barber.WorkStart, barber.WorkEnd); err != nil {
		return err
	}
	if req.AvailableAt != nil {
		slots, err := parseAvailableAt(*req.AvailableAt)
		if err != nil {
			return err
		}
		barber.AvailableAt = slots
	}
	if req.Status != nil {
		status, err := domain.ParseEntityStatus(*req.Status)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		barber.Status = status
	}
	return nil
}
