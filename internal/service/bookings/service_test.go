package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberService/internal/service/bookings/models"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings   map[int64]*domain.Booking
	lastFilter domain.BookingsFilter
	listErr    error
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if b, ok := f.bookings[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.UserID == filter.UserID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) setStatus(id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok || b.Status != domain.StatusScheduled {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) Finish(_ context.Context, id int64) error {
	return f.setStatus(id, domain.StatusFinished)
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64) error {
	return f.setStatus(id, domain.StatusCancelled)
}

type fakeBarberRepo struct {
	done map[int64]int
	err  error
}

func (f *fakeBarberRepo) IncrementHaircutsDone(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.done[id]++
	return nil
}

type fakeTx struct{ calls int }

func (f *fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	svc      *Service
	bookings *fakeBookingRepo
	barbers  *fakeBarberRepo
	cache    *fakeCache
	metrics  *fakeMetrics
}

func newFixture() *fixture {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	f := &fixture{
		bookings: &fakeBookingRepo{bookings: map[int64]*domain.Booking{
			1: {ID: 1, UserID: 10, BarberID: 3, BookingDate: date, StartTime: "09:00", Status: domain.StatusScheduled, HaircutPrice: 35},
			2: {ID: 2, UserID: 10, BarberID: 3, BookingDate: date, StartTime: "10:00", Status: domain.StatusCancelled},
			3: {ID: 3, UserID: 20, BarberID: 7, BookingDate: date, StartTime: "09:00", Status: domain.StatusScheduled},
		}},
		barbers: &fakeBarberRepo{done: map[int64]int{}},
		cache:   &fakeCache{},
		metrics: &fakeMetrics{},
	}
	f.svc = NewService(f.bookings, f.barbers, &fakeTx{}, f.cache, f.metrics, time.UTC, nopLogger{})
	f.svc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return f
}

func TestGetByID(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.GetByID(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", resp.BookingDate)
	assert.Equal(t, "5/3", resp.DisplayDate)
	assert.Equal(t, "R$ 35,00", resp.DisplayPrice)

	_, err = f.svc.GetByID(context.Background(), 3, 10)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.svc.GetByID(context.Background(), 42, 10)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_Filters(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.List(context.Background(), &models.ListBookingsRequest{
		UserID:   10,
		Date:     ptr.Ptr("5/3"),
		BarberID: ptr.Ptr(int64(3)),
		Status:   ptr.Ptr("scheduled"),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	require.NotNil(t, f.bookings.lastFilter.Date)
	assert.Equal(t, "2024-03-05", f.bookings.lastFilter.Date.Format(domain.DateFormat))
	assert.Equal(t, domain.StatusScheduled, *f.bookings.lastFilter.Status)
	assert.Equal(t, int64(3), *f.bookings.lastFilter.BarberID)
}

func TestList_InvalidInput(t *testing.T) {
	f := newFixture()

	_, err := f.svc.List(context.Background(), &models.ListBookingsRequest{UserID: 10, Date: ptr.Ptr("tomorrow")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.List(context.Background(), &models.ListBookingsRequest{UserID: 10, Status: ptr.Ptr("done")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_RepositoryError(t *testing.T) {
	f := newFixture()
	f.bookings.listErr = errors.New("boom")

	_, err := f.svc.List(context.Background(), &models.ListBookingsRequest{UserID: 10})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestList_EmptyIsNotNil(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.List(context.Background(), &models.ListBookingsRequest{UserID: 99})
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)
}

func TestFinish(t *testing.T) {
	f := newFixture()

	err := f.svc.Finish(context.Background(), &models.ChangeStatusRequest{UserID: 10, BookingID: 1})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusFinished, f.bookings.bookings[1].Status)
	assert.Equal(t, 1, f.barbers.done[3])
	assert.Equal(t, []int64{3}, f.cache.invalidated)
	assert.Equal(t, []string{domain.EventBookingFinished}, f.metrics.events)

	err = f.svc.Finish(context.Background(), &models.ChangeStatusRequest{UserID: 10, BookingID: 1})
	assert.ErrorIs(t, err, ErrCannotFinish)
	assert.Equal(t, 1, f.barbers.done[3])
}

func TestFinish_CounterFailureIsInternal(t *testing.T) {
	f := newFixture()
	f.barbers.err = errors.New("deadlock")

	err := f.svc.Finish(context.Background(), &models.ChangeStatusRequest{UserID: 10, BookingID: 1})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, f.metrics.events)
}

func TestCancel(t *testing.T) {
	f := newFixture()

	err := f.svc.Cancel(context.Background(), &models.ChangeStatusRequest{UserID: 10, BookingID: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, f.bookings.bookings[1].Status)
	assert.Equal(t, []string{domain.EventBookingCancelled}, f.metrics.events)
	assert.Zero(t, f.barbers.done[3])

	err = f.svc.Cancel(context.Background(), &models.ChangeStatusRequest{UserID: 10, BookingID: 2})
	assert.ErrorIs(t, err, ErrCannotCancel)

	err = f.svc.Cancel(context.Background(), &models.ChangeStatusRequest{UserID: 10, BookingID: 3})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
