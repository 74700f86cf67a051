package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/availability"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/infra/cache/slots"
	barberRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/barber"
	haircutRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/haircut"
	"github.com/m04kA/SMC-BarberService/pkg/normalize"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// UseCase use case для получения свободных слотов барбера
type UseCase struct {
	barberRepo   BarberRepository
	haircutRepo  HaircutRepository
	bookingRepo  BookingRepository
	settings     SettingsResolver
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
		cache:        cache,
		metrics:      metrics,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: shop=%d, barber=%d, haircut=%d, date=%s",
		req.ShopID, req.BarberID, req.HaircutID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время в часовом поясе барбершопа и дата запроса
	now := uc.timeProvider.Now().In(uc.location)
	date, err := normalize.ParseDate(req.Date, now)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid date=%q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
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
		uc.logger.Error("GetAvailableSlots: failed to resolve settings: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve settings: %v", ErrInternal, err)
	}

	// 5. Валидация даты с учетом настроек
	if err := validateDate(date, now, settings.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 6. Слоты дня: кэш или расчёт
	variant := slots.Variant{
		StepMinutes:     settings.SlotStepMinutes,
		DurationMinutes: haircut.DurationMinutes,
		BufferMinutes:   settings.BufferMinutes,
	}
	free, err := uc.daySlots(ctx, barber, date, variant)
	if err != nil {
		return nil, err
	}

	// 7. Убираем слоты, на которые уже поздно записываться
	earliest := now.Add(time.Duration(settings.MinBookingNoticeMinutes) * time.Minute)
	free = availability.BookableFrom(free, date, earliest)

	uc.logger.Info("GetAvailableSlots: %d free slots for barber=%d, haircut=%d, date=%s",
		len(free), barber.ID, haircut.ID, date.Format(domain.DateFormat))

	return &Response{
		Date:            date,
		BarberID:        barber.ID,
		HaircutID:       haircut.ID,
		StepMinutes:     settings.SlotStepMinutes,
		DurationMinutes: settings.BlockedMinutes(haircut.DurationMinutes),
		Slots:           free,
	}, nil
}

// daySlots возвращает свободные слоты дня без учета текущего времени
// Ошибки кэша не ломают запрос: слоты считаются заново
func (uc *UseCase) daySlots(ctx context.Context, barber *domain.Barber, date time.Time, v slots.Variant) ([]types.TimeString, error) {
	cached, ok, err := uc.cache.Get(ctx, barber.ID, date, v)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: cache read failed for barber=%d: %v", barber.ID, err)
	}
	uc.metrics.IncSlotsCache(ok)
	if ok {
		return cached, nil
	}

	// Поколение читается до БД: если запись появится во время расчёта, Set будет отброшен
	gen, genErr := uc.cache.Generation(ctx, barber.ID)
	if genErr != nil {
		uc.logger.Warn("GetAvailableSlots: cache generation read failed for barber=%d: %v", barber.ID, genErr)
	}

	bookings, err := uc.bookingRepo.GetScheduledByBarberAndDate(ctx, barber.ID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	free, err := availability.FreeSlots(availability.Day{
		Window:          availability.WorkWindow{Start: barber.WorkStart, End: barber.WorkEnd},
		Explicit:        barber.AvailableAt,
		Booked:          toOccupied(bookings, v.BufferMinutes),
		ServiceDuration: v.DurationMinutes + v.BufferMinutes,
		Step:            v.StepMinutes,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute slots for barber=%d: %v", barber.ID, err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	if genErr != nil {
		return free, nil
	}
	if err := uc.cache.Set(ctx, barber.ID, date, v, gen, free); err != nil {
		if errors.Is(err, slots.ErrStale) {
			uc.logger.Info("GetAvailableSlots: slots of barber=%d changed during calculation, not cached", barber.ID)
		} else {
			uc.logger.Warn("GetAvailableSlots: cache write failed for barber=%d: %v", barber.ID, err)
		}
	}

	return free, nil
}

func (uc *UseCase) getBarber(ctx context.Context, shopID, barberID int64) (*domain.Barber, error) {
	barber, err := uc.barberRepo.GetByID(ctx, barberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber id=%d not found", barberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get barber id=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	if barber.UserID != shopID {
		uc.logger.Warn("GetAvailableSlots: barber id=%d does not belong to shop=%d", barberID, shopID)
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
			uc.logger.Warn("GetAvailableSlots: haircut id=%d not found", haircutID)
			return nil, ErrHaircutNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get haircut id=%d: %v", haircutID, err)
		return nil, fmt.Errorf("%w: failed to get haircut: %v", ErrInternal, err)
	}
	if haircut.UserID != shopID {
		uc.logger.Warn("GetAvailableSlots: haircut id=%d does not belong to shop=%d", haircutID, shopID)
		return nil, ErrHaircutNotFound
	}
	if !haircut.IsActive() {
		return nil, ErrHaircutUnavailable
	}
	return haircut, nil
}

// toOccupied переводит записи в занятые интервалы; буфер добавляется к каждой
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
