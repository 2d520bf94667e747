package visitor

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"gorm.io/gorm"

	"societyhub/internal/domain"
	"societyhub/internal/repository"
)

type Service struct {
	visitors VisitorRepo
	users    UserRepo
	now      func() time.Time
}

func NewService(visitors VisitorRepo, users UserRepo) *Service {
	return &Service{visitors: visitors, users: users, now: time.Now}
}

// Register pre-registers a visitor for the calling resident and issues
// a 4-digit gate pin.
func (s *Service) Register(ctx context.Context, userID int64, req CheckinRequest) (*CheckinResponse, error) {
	host, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	pin, err := generatePIN()
	if err != nil {
		return nil, err
	}

	v := &domain.Visitor{
		UserID:  userID,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Purpose: req.Purpose,
		Unit:    host.Unit,
		PIN:     pin,
	}
	if err := s.visitors.Create(ctx, v); err != nil {
		return nil, err
	}

	return &CheckinResponse{
		ID:      v.ID,
		Name:    v.Name,
		Unit:    v.Unit,
		Purpose: v.Purpose,
		PIN:     pin,
	}, nil
}

// VerifyPIN checks the gate pin and stamps the arrival time on success.
func (s *Service) VerifyPIN(ctx context.Context, visitorID int64, pin string) (*VisitorResponse, error) {
	v, err := s.visitors.GetByID(ctx, visitorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVisitorNotFound
		}
		return nil, err
	}
	if v.PIN != pin {
		return nil, ErrWrongPIN
	}

	if err := s.visitors.CheckIn(ctx, visitorID, s.now().UTC()); err != nil {
		if errors.Is(err, repository.ErrAlreadyCheckedIn) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, err
	}
	return s.response(ctx, visitorID)
}

func (s *Service) Checkout(ctx context.Context, visitorID int64) (*VisitorResponse, error) {
	v, err := s.visitors.GetByID(ctx, visitorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVisitorNotFound
		}
		return nil, err
	}
	if v.CheckIn == nil {
		return nil, ErrNotCheckedIn
	}

	if err := s.visitors.Checkout(ctx, visitorID, s.now().UTC()); err != nil {
		if errors.Is(err, repository.ErrAlreadyCheckedOut) {
			return nil, ErrAlreadyCheckedOut
		}
		return nil, err
	}
	return s.response(ctx, visitorID)
}

func (s *Service) GetCurrent(ctx context.Context) ([]VisitorResponse, error) {
	rows, err := s.visitors.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

// GetHistory lists the caller's own visitors for residents and the full
// log for security and admin.
func (s *Service) GetHistory(ctx context.Context, userID int64, role domain.UserRole) ([]VisitorResponse, error) {
	var (
		rows []repository.VisitorDetail
		err  error
	)
	if role == domain.RoleResident {
		rows, err = s.visitors.GetHistoryByUser(ctx, userID)
	} else {
		rows, err = s.visitors.GetAllHistory(ctx)
	}
	if err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

func (s *Service) response(ctx context.Context, visitorID int64) (*VisitorResponse, error) {
	v, err := s.visitors.GetByID(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	return &VisitorResponse{
		ID:       v.ID,
		Name:     v.Name,
		Phone:    v.Phone,
		Email:    v.Email,
		Address:  v.Address,
		Purpose:  v.Purpose,
		Unit:     v.Unit,
		CheckIn:  v.CheckIn,
		CheckOut: v.CheckOut,
	}, nil
}

func toResponses(rows []repository.VisitorDetail) []VisitorResponse {
	out := make([]VisitorResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, VisitorResponse{
			ID:       r.ID,
			Name:     r.Name,
			Phone:    r.Phone,
			Email:    r.Email,
			Address:  r.Address,
			Purpose:  r.Purpose,
			Unit:     r.Unit,
			HostName: r.HostName,
			CheckIn:  r.CheckIn,
			CheckOut: r.CheckOut,
		})
	}
	return out
}

// generatePIN draws a uniform 4-digit code from crypto/rand.
func generatePIN() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}
