package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barisbulutdemir/raporermak/internal/dto"
	"github.com/barisbulutdemir/raporermak/internal/repository"
)

var ErrUserNotFound = errors.New("kullanıcı bulunamadı")

// UserService handles profiles and account administration.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	List(ctx context.Context, page, pageSize int) ([]dto.UserResponse, int64, error)
	Approve(ctx context.Context, targetID, approvedBy string) error
	Delete(ctx context.Context, targetID, callerID string) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService builds the UserService.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &dto.ProfileResponse{
		ID:            user.UserID,
		Username:      user.Username,
		Name:          user.Name,
		Role:          user.Role,
		Approved:      user.Approved,
		MonthlySalary: user.MonthlySalary,
		HasSignature:  user.Signature != nil && *user.Signature != "",
		CreatedAt:     user.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.MonthlySalary != nil {
		user.MonthlySalary = req.MonthlySalary
	}
	if req.Signature != nil {
		if *req.Signature == "" {
			user.Signature = nil
		} else {
			user.Signature = req.Signature
		}
	}
	user.UpdatedBy = &userID

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("failed to update profile", zap.Error(err))
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}

func (s *userService) List(ctx context.Context, page, pageSize int) ([]dto.UserResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	users, total, err := s.repo.User.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}

	list := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		list = append(list, toUserResponse(&users[i]))
	}
	return list, total, nil
}

func (s *userService) Approve(ctx context.Context, targetID, approvedBy string) error {
	user, err := s.repo.User.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if user.Approved {
		return nil // idempotent
	}

	now := time.Now()
	user.Approved = true
	user.ApprovedBy = &approvedBy
	user.ApprovedAt = &now

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("failed to approve user", zap.Error(err))
		return err
	}

	s.logger.Info("user approved",
		zap.String("user_id", targetID),
		zap.String("approved_by", approvedBy),
	)
	return nil
}

func (s *userService) Delete(ctx context.Context, targetID, callerID string) error {
	if _, err := s.repo.User.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.repo.User.Delete(ctx, targetID, callerID)
}
