package create_booking

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/availability"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	barberRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/barber"
	haircutRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/haircut"
	"github.com/m04kA/SMC-BarberService/pkg/normalize"
	"github.com/m04kA/SMC-BarberService/pkg/txmanager"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	barberRepo   BarberRepository
	haircutRepo  HaircutRepository
	bookingRepo  BookingRepository
	settings     SettingsResolver
	txManager    TransactionManager
	cache        SlotsCache
	metrics      Metrics
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	barberRepo BarberRepository,
	haircutRepo HaircutRepository,
	bookingRepo BookingRepository,
	settings SettingsResolver,
	txManager TransactionManager,
	cache SlotsCache,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		barberRepo:   barberRepo,
		haircutRepo:  haircutRepo,
		bookingRepo:  bookingRepo,
		settings:     settings,
		txManager:    txManager,
		cache:        cache,
		metrics:      metrics,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Свободные слоты пересчитываются в сериализуемой транзакции под блокировкой записей дня,
// поэтому две параллельные записи на пересекающееся время не пройдут обе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: shop=%d, barber=%d, haircut=%d, date=%s, time=%s",
		req.ShopID, req.BarberID, req.HaircutID, req.Date, req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата и время в часовом поясе барбершопа
	now := uc.timeProvider.Now().In(uc.location)
	date, err := normalize.ParseDate(req.Date, now)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid date=%q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	startTime, err := types.NewTimeStringFromString(strings.TrimSpace(req.StartTime))
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid time=%q: %v", req.StartTime, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	// 3. Барбер и стрижка
	barber, err := uc.getBarber(ctx, req.ShopID, req.BarberID)
	if err != nil {
		return nil, err
	}
	haircut, err := uc.getHaircut(ctx, req.ShopID, req.HaircutID)
	if err != nil {
		return nil, err
	}

	// 4. Настройки с учетом иерархии
	settings, err := uc.settings.Resolve(ctx, req.ShopID, &barber.ID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to resolve settings: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve settings: %v", ErrInternal, err)
	}

	// 5. Валидация даты с учетом настроек
	if err := validateDate(date, now, settings.AdvanceBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	earliest := now.Add(time.Duration(settings.MinBookingNoticeMinutes) * time.Minute)

	// 6. Транзакция: пересчёт слотов и создание записи
	var result *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Активные записи дня с блокировкой
		bookings, err := uc.bookingRepo.GetScheduledByBarberAndDate(txCtx, barber.ID, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.2. Свободные слоты без кэша
		free, err := availability.FreeSlots(availability.Day{
			Window:          availability.WorkWindow{Start: barber.WorkStart, End: barber.WorkEnd},
			Explicit:        barber.AvailableAt,
			Booked:          toOccupied(bookings, settings.BufferMinutes),
			ServiceDuration: settings.BlockedMinutes(haircut.DurationMinutes),
			Step:            settings.SlotStepMinutes,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to compute slots for barber=%d: %v", barber.ID, err)
			return fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
		}
		free = availability.BookableFrom(free, date, earliest)

		// 6.3. Время должно быть среди свободных
		if !slices.Contains(free, startTime) {
			uc.logger.Warn("CreateBooking: slot %s is not available for barber=%d on %s",
				startTime, barber.ID, date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 6.4. Создаем бронирование с денормализацией данных
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:          req.ShopID,
			BarberID:        barber.ID,
			HaircutID:       haircut.ID,
			Customer:        strings.TrimSpace(req.Customer),
			CustomerPhone:   req.CustomerPhone,
			BookingDate:     date,
			StartTime:       startTime,
			DurationMinutes: haircut.DurationMinutes,
			Status:          domain.StatusScheduled,
			HaircutName:     haircut.Name,
			HaircutPrice:    haircut.Price,
			BarberName:      barber.Name,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateBooking: concurrent booking for barber=%d on %s", barber.ID, date.Format(domain.DateFormat))
			err = ErrSlotNotAvailable
		}
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.metrics.IncBookingEvent(domain.EventBookingConflict)
			return nil, err
		}
		if !errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			err = fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	// 7. Слоты дня изменились
	if err := uc.cache.InvalidateDay(ctx, barber.ID, date); err != nil {
		uc.logger.Warn("CreateBooking: failed to invalidate slots cache for barber=%d: %v", barber.ID, err)
	}
	uc.metrics.IncBookingEvent(domain.EventBookingCreated)

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		BarberID:        result.BarberID,
		HaircutID:       result.HaircutID,
		Customer:        result.Customer,
		CustomerPhone:   result.CustomerPhone,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		HaircutName:     result.HaircutName,
		HaircutPrice:    result.HaircutPrice,
		BarberName:      result.BarberName,
		CreatedAt:       result.CreatedAt,
	}, nil
}

func (uc *UseCase) getBarber(ctx context.Context, shopID, barberID int64) (*domain.Barber, error) {
	barber, err := uc.barberRepo.GetByID(ctx, barberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateBooking: barber id=%d not found", barberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateBooking: failed to get barber id=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if barber.UserID != shopID {
		uc.logger.Warn("CreateBooking: barber id=%d does not belong to shop=%d", barberID, shopID)
		return nil, ErrBarberNotFound
	}
	if !barber.IsActive() {
		return nil, ErrBarberUnavailable
	}
	return barber, nil
}

func (uc *UseCase) getHaircut(ctx context.Context, shopID, haircutID int64) (*domain.Haircut, error) {
	haircut, err := uc.haircutRepo.GetByID(ctx, haircutID)
	if err != nil {
		if errors.Is(err, haircutRepo.ErrHaircutNotFound) {
			uc.logger.Warn("CreateBooking: haircut id=%d not found", haircutID)
			return nil, ErrHaircutNotFound
		}
		uc.logger.Error("CreateBooking: failed to get haircut id=%d: %v", haircutID, err)
		return nil, fmt.Errorf("%w: failed to get haircut: %v", ErrInternal, err)
	}
	if haircut.UserID != shopID {
		uc.logger.Warn("CreateBooking: haircut id=%d does not belong to shop=%d", haircutID, shopID)
		return nil, ErrHaircutNotFound
	}
	if !haircut.IsActive() {
		return nil, ErrHaircutUnavailable
	}
	return haircut, nil
}

func toOccupied(bookings []*domain.Booking, buffer int) []availability.Occupied {
	occupied := make([]availability.Occupied, 0, len(bookings))
	for _, b := range bookings {
		if !b.OccupiesSlots() {
			continue
		}
		occupied = append(occupied, availability.Occupied{
			Start:           b.StartTime,
			DurationMinutes: b.DurationMinutes + buffer,
		})
	}
	return occupied
}
