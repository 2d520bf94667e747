package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"societyhub/internal/domain"
	"societyhub/internal/repository"
)

type Service struct {
	users  UserRepo
	tokens TokenIssuer
}

func NewService(users UserRepo, tokens TokenIssuer) *Service {
	return &Service{users: users, tokens: tokens}
}

func (s *Service) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	role := domain.UserRole(req.Role)
	if role == domain.RoleResident && req.Unit == "" {
		return nil, ErrMissingUnit
	}
	if role == domain.RoleSecurity && req.EmployeeID == "" {
		return nil, ErrMissingEmployeeID
	}

	taken, err := s.users.ExistsByPhone(ctx, req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrPhoneTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         req.Name,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hash),
		Role:         role,
		Unit:         req.Unit,
		EmployeeID:   req.EmployeeID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return s.issue(user)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.users.GetByPhoneAndRole(ctx, req.PhoneNumber, domain.UserRole(req.Role))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue(user)
}

func (s *Service) issue(user *domain.User) (*AuthResponse, error) {
	token, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		Token: token,
		User: UserResponse{
			ID:          user.ID,
			Name:        user.Name,
			PhoneNumber: user.PhoneNumber,
			Role:        string(user.Role),
			Unit:        user.Unit,
			EmployeeID:  user.EmployeeID,
		},
	}, nil
}
