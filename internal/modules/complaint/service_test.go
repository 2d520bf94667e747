package complaint

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"societyhub/internal/domain"
	"societyhub/internal/repository"
)

type mockComplaintRepo struct{ mock.Mock }

func (m *mockComplaintRepo) Create(ctx context.Context, c *domain.Complaint) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil {
		c.ID = 1
	}
	return args.Error(0)
}

func (m *mockComplaintRepo) GetByID(ctx context.Context, id int64) (*domain.Complaint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Complaint), args.Error(1)
}

func (m *mockComplaintRepo) GetByUser(ctx context.Context, userID int64) ([]repository.ComplaintDetail, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]repository.ComplaintDetail), args.Error(1)
}

func (m *mockComplaintRepo) GetAll(ctx context.Context) ([]repository.ComplaintDetail, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.ComplaintDetail), args.Error(1)
}

func (m *mockComplaintRepo) Update(ctx context.Context, c *domain.Complaint) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockComplaintRepo) Resolve(ctx context.Context, id, resolvedBy int64, resolution string, at time.Time) (*domain.Complaint, error) {
	args := m.Called(ctx, id, resolvedBy, resolution, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Complaint), args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newTestService(complaints *mockComplaintRepo, users *mockUserRepo) *Service {
	s := NewService(complaints, users, nil, nil)
	s.now = func() time.Time {
		return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	}
	return s
}

func TestCreateStampsReporterUnit(t *testing.T) {
	complaints := new(mockComplaintRepo)
	users := new(mockUserRepo)

	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Name: "Asha", Unit: "A-101"}, nil)
	complaints.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Complaint) bool {
		return c.Unit == "A-101" && c.Status == domain.ComplaintOpen
	})).Return(nil)

	svc := newTestService(complaints, users)
	created, err := svc.Create(context.Background(), 7, CreateComplaintRequest{
		Title: "Leaking pipe", Description: "Kitchen sink leaks", Category: "plumbing", Priority: "high",
	})

	require.NoError(t, err)
	assert.Equal(t, "A-101", created.Unit)
	complaints.AssertExpectations(t)
}

func TestUpdateEditsOwnOpenComplaint(t *testing.T) {
	complaints := new(mockComplaintRepo)

	complaints.On("GetByID", mock.Anything, int64(1)).Return(&domain.Complaint{
		ID: 1, UserID: 7, Title: "Leaking pipe", Priority: domain.PriorityLow, Status: domain.ComplaintOpen,
	}, nil)
	complaints.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Complaint) bool {
		return c.Title == "Leaking pipe in kitchen" && c.Priority == domain.PriorityHigh
	})).Return(nil)

	svc := newTestService(complaints, new(mockUserRepo))
	updated, err := svc.Update(context.Background(), 1, 7, UpdateComplaintRequest{
		Title: "Leaking pipe in kitchen", Priority: "high",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, updated.Priority)
	complaints.AssertExpectations(t)
}

func TestUpdateRejectsOtherResidents(t *testing.T) {
	complaints := new(mockComplaintRepo)
	complaints.On("GetByID", mock.Anything, int64(1)).Return(&domain.Complaint{
		ID: 1, UserID: 7, Status: domain.ComplaintOpen,
	}, nil)

	svc := newTestService(complaints, new(mockUserRepo))
	_, err := svc.Update(context.Background(), 1, 9, UpdateComplaintRequest{Title: "Hijacked"})

	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestUpdateRejectsResolvedComplaint(t *testing.T) {
	complaints := new(mockComplaintRepo)
	complaints.On("GetByID", mock.Anything, int64(1)).Return(&domain.Complaint{
		ID: 1, UserID: 7, Status: domain.ComplaintResolved,
	}, nil)

	svc := newTestService(complaints, new(mockUserRepo))
	_, err := svc.Update(context.Background(), 1, 7, UpdateComplaintRequest{Title: "Reopened"})

	assert.ErrorIs(t, err, ErrAlreadyResolved)
}
