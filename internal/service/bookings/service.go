package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberService/internal/service/bookings/models"
	"github.com/m04kA/SMC-BarberService/pkg/normalize"
)

// Service сервис для работы с бронированиями барбершопа
type Service struct {
	bookingRepo BookingRepository
	barberRepo  BarberRepository
	txManager   TransactionManager
	cache       SlotsCache
	metrics     Metrics
	location    *time.Location
	now         func() time.Time
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	barberRepo BarberRepository,
	txManager TransactionManager,
	cache SlotsCache,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		barberRepo:  barberRepo,
		txManager:   txManager,
		cache:       cache,
		metrics:     metrics,
		location:    location,
		now:         time.Now,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Бронирование доступно только барбершопу, которому оно принадлежит
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getOwned(ctx, "GetByID", id, userID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования барбершопа с фильтрацией по дате, барберу и статусу
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for user=%d", req.UserID)

	filter := domain.BookingsFilter{
		UserID:   req.UserID,
		BarberID: req.BarberID,
	}

	if req.Date != nil && *req.Date != "" {
		date, err := normalize.ParseDate(*req.Date, s.now().In(s.location))
		if err != nil {
			s.logger.Warn("List: invalid date=%q: %v", *req.Date, err)
			return nil, fmt.Errorf("%w: invalid date", ErrInvalidInput)
		}
		filter.Date = &date
	}

	if req.Status != nil && *req.Status != "" {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Finish отмечает стрижку выполненной и увеличивает счётчик барбера
func (s *Service) Finish(ctx context.Context, req *models.ChangeStatusRequest) error {
	s.logger.Info("Finish: finishing booking id=%d by user=%d", req.BookingID, req.UserID)

	var booking *domain.Booking
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = s.getOwned(txCtx, "Finish", req.BookingID, req.UserID)
		if err != nil {
			return err
		}

		if !booking.CanBeFinished() {
			s.logger.Warn("Finish: booking id=%d cannot be finished, status=%s", req.BookingID, booking.Status)
			return ErrCannotFinish
		}

		if err := s.bookingRepo.Finish(txCtx, req.BookingID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrCannotFinish
			}
			return fmt.Errorf("%w: Finish - repository error: %v", ErrInternal, err)
		}

		if err := s.barberRepo.IncrementHaircutsDone(txCtx, booking.BarberID); err != nil {
			return fmt.Errorf("%w: Finish - failed to increment haircuts: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("Finish: failed for booking id=%d: %v", req.BookingID, err)
		}
		return err
	}

	s.afterStatusChange(ctx, booking, domain.EventBookingFinished)
	s.logger.Info("Finish: successfully finished booking id=%d", req.BookingID)
	return nil
}

// Cancel отменяет бронирование и освобождает слоты
func (s *Service) Cancel(ctx context.Context, req *models.ChangeStatusRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", req.BookingID, req.UserID)

	var booking *domain.Booking
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = s.getOwned(txCtx, "Cancel", req.BookingID, req.UserID)
		if err != nil {
			return err
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", req.BookingID, booking.Status)
			return ErrCannotCancel
		}

		if err := s.bookingRepo.Cancel(txCtx, req.BookingID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrCannotCancel
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("Cancel: failed for booking id=%d: %v", req.BookingID, err)
		}
		return err
	}

	s.afterStatusChange(ctx, booking, domain.EventBookingCancelled)
	s.logger.Info("Cancel: successfully cancelled booking id=%d", req.BookingID)
	return nil
}

// Вспомогательные методы

// getOwned получает бронирование и проверяет, что оно принадлежит барбершопу
func (s *Service) getOwned(ctx context.Context, op string, id, userID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("%s: access denied for user=%d to booking id=%d", op, userID, id)
		return nil, ErrAccessDenied
	}

	return booking, nil
}

// afterStatusChange сбрасывает кэш дня и считает событие
// Ошибка кэша не отменяет уже закоммиченное изменение
func (s *Service) afterStatusChange(ctx context.Context, booking *domain.Booking, event string) {
	if err := s.cache.InvalidateDay(ctx, booking.BarberID, booking.BookingDate); err != nil {
		s.logger.Warn("afterStatusChange: failed to invalidate slots cache for barber=%d: %v", booking.BarberID, err)
	}
	s.metrics.IncBookingEvent(event)
}
