package visitor

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"societyhub/internal/domain"
	"societyhub/internal/repository"
)

type mockVisitorRepo struct{ mock.Mock }

func (m *mockVisitorRepo) Create(ctx context.Context, v *domain.Visitor) error {
	args := m.Called(ctx, v)
	if args.Error(0) == nil {
		v.ID = 1
	}
	return args.Error(0)
}

func (m *mockVisitorRepo) GetByID(ctx context.Context, id int64) (*domain.Visitor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Visitor), args.Error(1)
}

func (m *mockVisitorRepo) CheckIn(ctx context.Context, id int64, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *mockVisitorRepo) Checkout(ctx context.Context, id int64, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *mockVisitorRepo) GetCurrent(ctx context.Context) ([]repository.VisitorDetail, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.VisitorDetail), args.Error(1)
}

func (m *mockVisitorRepo) GetHistoryByUser(ctx context.Context, userID int64) ([]repository.VisitorDetail, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]repository.VisitorDetail), args.Error(1)
}

func (m *mockVisitorRepo) GetAllHistory(ctx context.Context) ([]repository.VisitorDetail, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.VisitorDetail), args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var pinPattern = regexp.MustCompile(`^\d{4}$`)

func TestRegisterIssuesFourDigitPIN(t *testing.T) {
	visitors := new(mockVisitorRepo)
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Unit: "A-101"}, nil)
	visitors.On("Create", mock.Anything, mock.MatchedBy(func(v *domain.Visitor) bool {
		return pinPattern.MatchString(v.PIN) && v.Unit == "A-101" && v.CheckIn == nil
	})).Return(nil)

	svc := NewService(visitors, users)
	resp, err := svc.Register(context.Background(), 7, CheckinRequest{
		Name: "Ravi", Phone: "9111111111", Purpose: "Delivery",
	})

	require.NoError(t, err)
	assert.Regexp(t, pinPattern, resp.PIN)
	assert.Equal(t, "A-101", resp.Unit)
	visitors.AssertExpectations(t)
}

func TestVerifyPINWrongCode(t *testing.T) {
	visitors := new(mockVisitorRepo)
	visitors.On("GetByID", mock.Anything, int64(1)).Return(&domain.Visitor{ID: 1, PIN: "1234"}, nil)

	svc := NewService(visitors, new(mockUserRepo))
	_, err := svc.VerifyPIN(context.Background(), 1, "9999")

	assert.ErrorIs(t, err, ErrWrongPIN)
}

func TestVerifyPINStampsArrival(t *testing.T) {
	in := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	visitors := new(mockVisitorRepo)
	visitors.On("GetByID", mock.Anything, int64(1)).Return(&domain.Visitor{ID: 1, PIN: "1234", CheckIn: &in}, nil)
	visitors.On("CheckIn", mock.Anything, int64(1), mock.Anything).Return(nil)

	svc := NewService(visitors, new(mockUserRepo))
	resp, err := svc.VerifyPIN(context.Background(), 1, "1234")

	require.NoError(t, err)
	assert.NotNil(t, resp.CheckIn)
}

func TestVerifyPINTwice(t *testing.T) {
	visitors := new(mockVisitorRepo)
	visitors.On("GetByID", mock.Anything, int64(1)).Return(&domain.Visitor{ID: 1, PIN: "1234"}, nil)
	visitors.On("CheckIn", mock.Anything, int64(1), mock.Anything).Return(repository.ErrAlreadyCheckedIn)

	svc := NewService(visitors, new(mockUserRepo))
	_, err := svc.VerifyPIN(context.Background(), 1, "1234")

	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
}

func TestCheckoutBeforeCheckin(t *testing.T) {
	visitors := new(mockVisitorRepo)
	visitors.On("GetByID", mock.Anything, int64(1)).Return(&domain.Visitor{ID: 1, PIN: "1234"}, nil)

	svc := NewService(visitors, new(mockUserRepo))
	_, err := svc.Checkout(context.Background(), 1)

	assert.ErrorIs(t, err, ErrNotCheckedIn)
}

func TestCheckoutUnknownVisitor(t *testing.T) {
	visitors := new(mockVisitorRepo)
	visitors.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(visitors, new(mockUserRepo))
	_, err := svc.Checkout(context.Background(), 9)

	assert.ErrorIs(t, err, ErrVisitorNotFound)
}

func TestHistoryScopesByRole(t *testing.T) {
	visitors := new(mockVisitorRepo)
	visitors.On("GetHistoryByUser", mock.Anything, int64(7)).Return([]repository.VisitorDetail{{ID: 1}}, nil)
	visitors.On("GetAllHistory", mock.Anything).Return([]repository.VisitorDetail{{ID: 1}, {ID: 2}}, nil)

	svc := NewService(visitors, new(mockUserRepo))

	own, err := svc.GetHistory(context.Background(), 7, domain.RoleResident)
	require.NoError(t, err)
	assert.Len(t, own, 1)

	all, err := svc.GetHistory(context.Background(), 7, domain.RoleSecurity)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
