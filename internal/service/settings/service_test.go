package settings

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	barberRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/barber"
	settingsRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-BarberService/internal/service/settings/models"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
)

type fakeSettingsRepo struct {
	byScope  map[string]*domain.SlotSettings
	nextID   int64
	failWith error
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{byScope: map[string]*domain.SlotSettings{}, nextID: 1}
}

func scopeKey(userID int64, barberID *int64) string {
	return fmt.Sprintf("%d:%d", userID, ptr.Value(barberID))
}

func (f *fakeSettingsRepo) Create(_ context.Context, s *domain.SlotSettings) (*domain.SlotSettings, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	created := *s
	created.ID = f.nextID
	f.nextID++
	f.byScope[scopeKey(s.UserID, s.BarberID)] = &created
	return &created, nil
}

func (f *fakeSettingsRepo) GetByScope(_ context.Context, userID int64, barberID *int64) (*domain.SlotSettings, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if s, ok := f.byScope[scopeKey(userID, barberID)]; ok {
		return s, nil
	}
	return nil, settingsRepo.ErrSettingsNotFound
}

func (f *fakeSettingsRepo) GetWithHierarchy(ctx context.Context, userID int64, barberID *int64) (*domain.SlotSettings, error) {
	if barberID != nil {
		if s, err := f.GetByScope(ctx, userID, barberID); err == nil {
			return s, nil
		}
	}
	return f.GetByScope(ctx, userID, nil)
}

func (f *fakeSettingsRepo) GetAllByUser(_ context.Context, userID int64) ([]*domain.SlotSettings, error) {
	out := make([]*domain.SlotSettings, 0)
	for _, s := range f.byScope {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, id int64, s *domain.SlotSettings) (*domain.SlotSettings, error) {
	updated := *s
	updated.ID = id
	f.byScope[scopeKey(s.UserID, s.BarberID)] = &updated
	return &updated, nil
}

type fakeBarberRepo struct {
	barbers map[int64]*domain.Barber
}

func (f *fakeBarberRepo) GetByID(_ context.Context, id int64) (*domain.Barber, error) {
	if b, ok := f.barbers[id]; ok {
		return b, nil
	}
	return nil, barberRepo.ErrBarberNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDefaults = Defaults{
	SlotStepMinutes:         10,
	BufferMinutes:           0,
	AdvanceBookingDays:      30,
	MinBookingNoticeMinutes: 0,
}

func newTestService() (*Service, *fakeSettingsRepo) {
	repo := newFakeSettingsRepo()
	barbers := &fakeBarberRepo{barbers: map[int64]*domain.Barber{
		3: {ID: 3, UserID: 1, Name: "Joao"},
		4: {ID: 4, UserID: 2, Name: "Pedro"},
	}}
	return NewService(repo, barbers, testDefaults, nopLogger{}), repo
}

func TestResolve_Defaults(t *testing.T) {
	svc, _ := newTestService()

	s, err := svc.Resolve(context.Background(), 1, ptr.Ptr(int64(3)))
	require.NoError(t, err)
	assert.Equal(t, 10, s.SlotStepMinutes)
	assert.Equal(t, 30, s.AdvanceBookingDays)
	assert.Equal(t, models.LevelDefault, models.LevelOf(s))
}

func TestResolve_RepositoryError(t *testing.T) {
	svc, repo := newTestService()
	repo.failWith = errors.New("connection reset")

	_, err := svc.Resolve(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpsert_CreatesShopWideFromDefaults(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Upsert(context.Background(), &models.UpsertSettingsRequest{
		UserID:        1,
		BufferMinutes: ptr.Ptr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, models.LevelShop, resp.Level)
	assert.Equal(t, 10, resp.SlotStepMinutes)
	assert.Equal(t, 10, resp.BufferMinutes)
	assert.Equal(t, 30, resp.AdvanceBookingDays)
}

func TestUpsert_BarberInheritsShopThenOverrides(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Upsert(ctx, &models.UpsertSettingsRequest{UserID: 1, SlotStepMinutes: ptr.Ptr(15)})
	require.NoError(t, err)

	resp, err := svc.Upsert(ctx, &models.UpsertSettingsRequest{
		UserID:        1,
		BarberID:      ptr.Ptr(int64(3)),
		BufferMinutes: ptr.Ptr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, models.LevelBarber, resp.Level)
	assert.Equal(t, 15, resp.SlotStepMinutes)
	assert.Equal(t, 5, resp.BufferMinutes)

	got, err := svc.Get(ctx, &models.GetSettingsRequest{UserID: 1, BarberID: ptr.Ptr(int64(3))})
	require.NoError(t, err)
	assert.Equal(t, 5, got.BufferMinutes)

	shop, err := svc.Get(ctx, &models.GetSettingsRequest{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, models.LevelShop, shop.Level)
	assert.Equal(t, 0, shop.BufferMinutes)
}

func TestUpsert_UpdatesExisting(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Upsert(ctx, &models.UpsertSettingsRequest{UserID: 1, SlotStepMinutes: ptr.Ptr(15)})
	require.NoError(t, err)

	second, err := svc.Upsert(ctx, &models.UpsertSettingsRequest{UserID: 1, AdvanceBookingDays: ptr.Ptr(7)})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 15, second.SlotStepMinutes)
	assert.Equal(t, 7, second.AdvanceBookingDays)
}

func TestUpsert_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.UpsertSettingsRequest
	}{
		{"step too small", models.UpsertSettingsRequest{UserID: 1, SlotStepMinutes: ptr.Ptr(1)}},
		{"step too large", models.UpsertSettingsRequest{UserID: 1, SlotStepMinutes: ptr.Ptr(500)}},
		{"negative buffer", models.UpsertSettingsRequest{UserID: 1, BufferMinutes: ptr.Ptr(-5)}},
		{"advance too far", models.UpsertSettingsRequest{UserID: 1, AdvanceBookingDays: ptr.Ptr(400)}},
		{"negative notice", models.UpsertSettingsRequest{UserID: 1, MinBookingNoticeMinutes: ptr.Ptr(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService()
			_, err := svc.Upsert(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpsert_ForeignBarber(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Upsert(context.Background(), &models.UpsertSettingsRequest{
		UserID:   1,
		BarberID: ptr.Ptr(int64(4)),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Get(context.Background(), &models.GetSettingsRequest{UserID: 1, BarberID: ptr.Ptr(int64(99))})
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestList(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Upsert(ctx, &models.UpsertSettingsRequest{UserID: 1, SlotStepMinutes: ptr.Ptr(20)})
	require.NoError(t, err)

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list.Settings, 1)
	assert.Equal(t, 20, list.Settings[0].SlotStepMinutes)

	empty, err := svc.List(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, empty.Settings)
}
