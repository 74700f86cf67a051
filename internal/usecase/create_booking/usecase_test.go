package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	barberRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/barber"
	haircutRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/haircut"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
	"github.com/m04kA/SMC-BarberService/pkg/txmanager"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

var loc = time.FixedZone("BRT", -3*60*60)

type fakeBarbers map[int64]*domain.Barber

func (f fakeBarbers) GetByID(_ context.Context, id int64) (*domain.Barber, error) {
	if b, ok := f[id]; ok {
		return b, nil
	}
	return nil, barberRepo.ErrBarberNotFound
}

type fakeHaircuts map[int64]*domain.Haircut

func (f fakeHaircuts) GetByID(_ context.Context, id int64) (*domain.Haircut, error) {
	if h, ok := f[id]; ok {
		return h, nil
	}
	return nil, haircutRepo.ErrHaircutNotFound
}

type fakeBookings struct {
	bookings []*domain.Booking
	nextID   int64
}

func (f *fakeBookings) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	b.ID = f.nextID
	f.bookings = append(f.bookings, b)
	return b, nil
}

func (f *fakeBookings) GetScheduledByBarberAndDate(_ context.Context, barberID int64, date time.Time) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.BarberID == barberID && b.BookingDate.Equal(date) && b.OccupiesSlots() {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeSettings struct{ settings domain.SlotSettings }

func (f *fakeSettings) Resolve(_ context.Context, _ int64, _ *int64) (*domain.SlotSettings, error) {
	s := f.settings
	return &s, nil
}

type fakeTx struct {
	calls int
	err   error
}

func (f *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type fakeCache struct{ invalidated []int64 }

func (f *fakeCache) InvalidateDay(_ context.Context, barberID int64, _ time.Time) error {
	f.invalidated = append(f.invalidated, barberID)
	return nil
}

type fakeMetrics struct{ events []string }

func (f *fakeMetrics) IncBookingEvent(event string) {
	f.events = append(f.events, event)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc       *UseCase
	bookings *fakeBookings
	settings *fakeSettings
	tx       *fakeTx
	cache    *fakeCache
	metrics  *fakeMetrics
}

func newFixture() *fixture {
	f := &fixture{
		bookings: &fakeBookings{},
		settings: &fakeSettings{settings: domain.SlotSettings{SlotStepMinutes: 10, AdvanceBookingDays: 30}},
		tx:       &fakeTx{},
		cache:    &fakeCache{},
		metrics:  &fakeMetrics{},
	}
	barbers := fakeBarbers{
		3: {ID: 3, UserID: 1, Name: "Joao", WorkStart: "08:00", WorkEnd: "12:00", Status: true},
		4: {ID: 4, UserID: 1, Name: "Off", WorkStart: "08:00", WorkEnd: "12:00", Status: false},
	}
	haircuts := fakeHaircuts{
		7: {ID: 7, UserID: 1, Name: "Degrade", Price: 35, DurationMinutes: 40, Status: true},
		9: {ID: 9, UserID: 2, Name: "Foreign", Price: 20, DurationMinutes: 20, Status: true},
	}
	f.uc = NewUseCase(barbers, haircuts, f.bookings, f.settings, f.tx, f.cache, f.metrics, loc, nopLogger{})
	f.uc.timeProvider = fixedTime{now: time.Date(2024, 3, 5, 7, 0, 0, 0, loc)}
	return f
}

func request(date, start string) *Request {
	return &Request{
		ShopID:        1,
		BarberID:      3,
		HaircutID:     7,
		Date:          date,
		StartTime:     start,
		Customer:      " Maria ",
		CustomerPhone: ptr.Ptr("+55 11 99999-0000"),
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), request("5/3", "9:00"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, types.TimeString("09:00"), resp.StartTime)
	assert.Equal(t, "Maria", resp.Customer)
	assert.Equal(t, 40, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, "Degrade", resp.HaircutName)
	assert.Equal(t, 35.0, resp.HaircutPrice)
	assert.Equal(t, "Joao", resp.BarberName)
	assert.Equal(t, "2024-03-05", resp.BookingDate.Format(domain.DateFormat))

	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, []int64{3}, f.cache.invalidated)
	assert.Equal(t, []string{domain.EventBookingCreated}, f.metrics.events)
}

func TestExecute_OverlapIsConflict(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), request("2024-03-05", "09:00"))
	require.NoError(t, err)

	// 09:30 попадает на вторую половину записи 09:00-09:40
	_, err = f.uc.Execute(context.Background(), request("2024-03-05", "09:30"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// 08:30-09:10 заходит на начало записи
	_, err = f.uc.Execute(context.Background(), request("2024-03-05", "08:30"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	_, err = f.uc.Execute(context.Background(), request("2024-03-05", "09:40"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		domain.EventBookingCreated,
		domain.EventBookingConflict,
		domain.EventBookingConflict,
		domain.EventBookingCreated,
	}, f.metrics.events)
	assert.Len(t, f.bookings.bookings, 2)
}

func TestExecute_OutsideScheduleIsConflict(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), request("2024-03-05", "11:30"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable, "40 minutes from 11:30 runs past closing")

	_, err = f.uc.Execute(context.Background(), request("2024-03-05", "09:05"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable, "not on the slot grid")
}

func TestExecute_NoticeIsRespected(t *testing.T) {
	f := newFixture()
	f.settings.settings.MinBookingNoticeMinutes = 120

	_, err := f.uc.Execute(context.Background(), request("2024-03-05", "08:50"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	_, err = f.uc.Execute(context.Background(), request("2024-03-05", "09:00"))
	assert.NoError(t, err)
}

func TestExecute_SerializationFailureIsConflict(t *testing.T) {
	f := newFixture()
	f.tx.err = txmanager.ErrSerialization

	_, err := f.uc.Execute(context.Background(), request("2024-03-05", "09:00"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, []string{domain.EventBookingConflict}, f.metrics.events)
	assert.Empty(t, f.cache.invalidated)
}

func TestExecute_TransactionFailureIsInternal(t *testing.T) {
	f := newFixture()
	f.tx.err = errors.New("txmanager: failed to begin transaction")

	_, err := f.uc.Execute(context.Background(), request("2024-03-05", "09:00"))
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"no customer", func(r *Request) { r.Customer = " " }, ErrInvalidInput},
		{"no start time", func(r *Request) { r.StartTime = "" }, ErrInvalidInput},
		{"bad start time", func(r *Request) { r.StartTime = "nine" }, ErrInvalidTime},
		{"bad date", func(r *Request) { r.Date = "31/2" }, ErrInvalidDate},
		{"past date", func(r *Request) { r.Date = "2024-03-01" }, ErrInvalidDate},
		{"too far", func(r *Request) { r.Date = "2024-06-01" }, ErrDateTooFarInFuture},
		{"disabled barber", func(r *Request) { r.BarberID = 4 }, ErrBarberUnavailable},
		{"unknown barber", func(r *Request) { r.BarberID = 42 }, ErrBarberNotFound},
		{"foreign haircut", func(r *Request) { r.HaircutID = 9 }, ErrHaircutNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := request("2024-03-05", "09:00")
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.tx.calls)
		})
	}
}
