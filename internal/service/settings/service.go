package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	barberRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/barber"
	settingsRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-BarberService/internal/service/settings/models"
)

// Defaults значения по умолчанию, если у барбершопа нет своих настроек
type Defaults struct {
	SlotStepMinutes         int
	BufferMinutes           int
	AdvanceBookingDays      int
	MinBookingNoticeMinutes int
}

// Service сервис настроек расчёта слотов
type Service struct {
	settingsRepo SettingsRepository
	barberRepo   BarberRepository
	defaults     Defaults
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	settingsRepo SettingsRepository,
	barberRepo BarberRepository,
	defaults Defaults,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		barberRepo:   barberRepo,
		defaults:     defaults,
		logger:       logger,
	}
}

// Resolve возвращает действующие настройки: барбер > барбершоп > значения по умолчанию
// Используется при расчёте слотов и создании бронирования
func (s *Service) Resolve(ctx context.Context, userID int64, barberID *int64) (*domain.SlotSettings, error) {
	found, err := s.settingsRepo.GetWithHierarchy(ctx, userID, barberID)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		s.logger.Error("Resolve: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	return s.defaultSettings(userID), nil
}

// Get возвращает действующие настройки барбершопа или барбера
func (s *Service) Get(ctx context.Context, req *models.GetSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching settings for user=%d, barber=%v", req.UserID, req.BarberID)

	if req.BarberID != nil {
		if err := s.checkBarber(ctx, req.UserID, *req.BarberID); err != nil {
			return nil, err
		}
	}

	settings, err := s.Resolve(ctx, req.UserID, req.BarberID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Get: resolved settings for user=%d (level: %s)", req.UserID, models.LevelOf(settings))
	return models.FromDomainSettings(settings), nil
}

// List возвращает все сохранённые настройки барбершопа
func (s *Service) List(ctx context.Context, userID int64) (*models.SettingsListResponse, error) {
	list, err := s.settingsRepo.GetAllByUser(ctx, userID)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSettingsList(list), nil
}

// Upsert создаёт или обновляет настройки уровня (барбершоп или конкретный барбер)
// Незаданные поля новой записи берутся из действующих настроек уровнем выше
//
// Кэш слотов сбрасывать не нужно: шаг и занимаемые минуты входят в ключ кэша,
// а уведомление и горизонт записи применяются после кэша
func (s *Service) Upsert(ctx context.Context, req *models.UpsertSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Upsert: saving settings for user=%d, barber=%v", req.UserID, req.BarberID)

	// 1. Проверяем барбера
	if req.BarberID != nil {
		if err := s.checkBarber(ctx, req.UserID, *req.BarberID); err != nil {
			return nil, err
		}
	}

	// 2. Ищем настройки ровно этого уровня
	existing, err := s.settingsRepo.GetByScope(ctx, req.UserID, req.BarberID)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		s.logger.Error("Upsert: failed to check existing settings: %v", err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	// 3. Обновляем существующие
	if existing != nil {
		candidate := *existing
		req.ApplyTo(&candidate)
		if err := validateSettings(&candidate); err != nil {
			s.logger.Warn("Upsert: validation failed: %v", err)
			return nil, err
		}

		updated, err := s.settingsRepo.Update(ctx, existing.ID, &candidate)
		if err != nil {
			s.logger.Error("Upsert: failed to update settings id=%d: %v", existing.ID, err)
			return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
		}

		s.logger.Info("Upsert: updated settings id=%d", updated.ID)
		return models.FromDomainSettings(updated), nil
	}

	// 4. Создаём новые на основе действующих
	base, err := s.Resolve(ctx, req.UserID, nil)
	if err != nil {
		return nil, err
	}

	candidate := domain.SlotSettings{
		UserID:                  req.UserID,
		BarberID:                req.BarberID,
		SlotStepMinutes:         base.SlotStepMinutes,
		BufferMinutes:           base.BufferMinutes,
		AdvanceBookingDays:      base.AdvanceBookingDays,
		MinBookingNoticeMinutes: base.MinBookingNoticeMinutes,
	}
	req.ApplyTo(&candidate)
	if err := validateSettings(&candidate); err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, err
	}

	created, err := s.settingsRepo.Create(ctx, &candidate)
	if err != nil {
		s.logger.Error("Upsert: failed to create settings: %v", err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: created settings id=%d (level: %s)", created.ID, models.LevelOf(created))
	return models.FromDomainSettings(created), nil
}

// Вспомогательные методы

func (s *Service) defaultSettings(userID int64) *domain.SlotSettings {
	return &domain.SlotSettings{
		UserID:                  userID,
		SlotStepMinutes:         s.defaults.SlotStepMinutes,
		BufferMinutes:           s.defaults.BufferMinutes,
		AdvanceBookingDays:      s.defaults.AdvanceBookingDays,
		MinBookingNoticeMinutes: s.defaults.MinBookingNoticeMinutes,
	}
}

// checkBarber проверяет, что барбер существует и принадлежит барбершопу
func (s *Service) checkBarber(ctx context.Context, userID, barberID int64) error {
	barber, err := s.barberRepo.GetByID(ctx, barberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("checkBarber: barber id=%d not found", barberID)
			return ErrBarberNotFound
		}
		s.logger.Error("checkBarber: repository error for barber id=%d: %v", barberID, err)
		return fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if barber.UserID != userID {
		s.logger.Warn("checkBarber: barber id=%d does not belong to user=%d", barberID, userID)
		return ErrAccessDenied
	}
	return nil
}

// validateSettings проверяет границы значений
func validateSettings(s *domain.SlotSettings) error {
	if s.SlotStepMinutes < domain.MinSlotStepMinutes || s.SlotStepMinutes > domain.MaxSlotStepMinutes {
		return fmt.Errorf("%w: slotStepMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotStepMinutes, domain.MaxSlotStepMinutes)
	}
	if s.BufferMinutes < domain.MinBufferMinutes || s.BufferMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: bufferMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBufferMinutes, domain.MaxBufferMinutes)
	}
	if s.AdvanceBookingDays < domain.MinAdvanceBookingDays || s.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}
	if s.MinBookingNoticeMinutes < domain.MinBookingNoticeMinutes || s.MinBookingNoticeMinutes > domain.MaxBookingNoticeMinutes {
		return fmt.Errorf("%w: minBookingNoticeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBookingNoticeMinutes, domain.MaxBookingNoticeMinutes)
	}
	return nil
}
