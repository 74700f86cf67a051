package haircuts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	haircutRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/haircut"
	"github.com/m04kA/SMC-BarberService/internal/service/haircuts/models"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
)

type fakeRepo struct {
	haircuts map[int64]*domain.Haircut
	nextID   int64
	err      error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		haircuts: map[int64]*domain.Haircut{
			1: {ID: 1, UserID: 1, Name: "Degrade", Price: 35, DurationMinutes: 40, Status: true},
			2: {ID: 2, UserID: 2, Name: "Navalhado", Price: 50, DurationMinutes: 60, Status: true},
		},
		nextID: 10,
	}
}

func (f *fakeRepo) Create(_ context.Context, h *domain.Haircut) (*domain.Haircut, error) {
	if f.err != nil {
		return nil, f.err
	}
	h.ID = f.nextID
	f.nextID++
	f.haircuts[h.ID] = h
	return h, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Haircut, error) {
	if h, ok := f.haircuts[id]; ok {
		copied := *h
		return &copied, nil
	}
	return nil, haircutRepo.ErrHaircutNotFound
}

func (f *fakeRepo) List(_ context.Context, filter domain.HaircutsFilter) ([]*domain.Haircut, error) {
	out := make([]*domain.Haircut, 0)
	for _, h := range f.haircuts {
		if h.UserID == filter.UserID && (filter.Status == nil || h.Status == *filter.Status) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, h *domain.Haircut) (*domain.Haircut, error) {
	f.haircuts[h.ID] = h
	return h, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate_NormalizesPriceAndDuration(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateHaircutRequest{
		UserID:   1,
		Name:     "Corte + barba",
		Price:    "R$ 1.234,56",
		Duration: "45 min",
	})
	require.NoError(t, err)
	assert.Equal(t, 1234.56, resp.Price)
	assert.Equal(t, "R$ 1.234,56", resp.DisplayPrice)
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, domain.EntityEnabled, resp.Status)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateHaircutRequest
	}{
		{"no name", models.CreateHaircutRequest{Name: "", Price: "35", Duration: "30"}},
		{"price without digits", models.CreateHaircutRequest{Name: "A", Price: "free", Duration: "30"}},
		{"duration without digits", models.CreateHaircutRequest{Name: "A", Price: "35", Duration: "abc"}},
		{"zero duration", models.CreateHaircutRequest{Name: "A", Price: "35", Duration: "0"}},
		{"too long", models.CreateHaircutRequest{Name: "A", Price: "35", Duration: "600 min"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeRepo(), nopLogger{})
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_RepositoryError(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("connection refused")
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateHaircutRequest{UserID: 1, Name: "A", Price: "35", Duration: "30"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpdate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateHaircutRequest{
		UserID:    1,
		HaircutID: 1,
		Duration:  ptr.Ptr("50"),
		Status:    ptr.Ptr("disabled"),
	})
	require.NoError(t, err)
	assert.Equal(t, 50, resp.DurationMinutes)
	assert.Equal(t, domain.EntityDisabled, resp.Status)
	assert.Equal(t, 35.0, repo.haircuts[1].Price)

	_, err = svc.Update(context.Background(), &models.UpdateHaircutRequest{UserID: 1, HaircutID: 2})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 77, 1)
	assert.ErrorIs(t, err, ErrHaircutNotFound)
}

func TestList(t *testing.T) {
	repo := newFakeRepo()
	repo.haircuts[3] = &domain.Haircut{ID: 3, UserID: 1, Name: "Old", Status: false}
	svc := NewService(repo, nopLogger{})

	active, err := svc.List(context.Background(), &models.ListHaircutsRequest{UserID: 1, Status: ptr.Ptr("enabled")})
	require.NoError(t, err)
	require.Len(t, active.Haircuts, 1)
	assert.Equal(t, "Degrade", active.Haircuts[0].Name)
}
