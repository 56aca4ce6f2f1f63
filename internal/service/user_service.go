package service

import (
	"context"
	"errors"
	"fmt"

	"staffhub/internal/dto"
	"staffhub/internal/model"
	"staffhub/internal/repository"
	"staffhub/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	CreateUser(ctx context.Context, requester *model.User, input dto.CreateUserInput) (*dto.UserPayload, error)
	GetUser(ctx context.Context, requester *model.User, id uint) (*dto.UserPayload, error)
	ListUsers(ctx context.Context, requester *model.User, filter dto.UserFilter) ([]*dto.UserPayload, error)
	UpdateUser(ctx context.Context, requester *model.User, id uint, input dto.UpdateUserInput) (*dto.UserPayload, error)
	DeleteUser(ctx context.Context, requester *model.User, id uint) error
	UpdateProfile(ctx context.Context, requester *model.User, input dto.UpdateUserInput) (*dto.UserPayload, error)
}

type userService struct {
	repo   repository.UserRepository
	mailer MailDispatcher
}

func NewUserService(repo repository.UserRepository, mailer MailDispatcher) UserService {
	return &userService{
		repo:   repo,
		mailer: mailer,
	}
}

// CreateUser creates a PM or employee under the requester. Admins may create
// both roles; PMs may only create employees. The new user's created_by edge
// points at the requester, which for employees identifies the PM owning their
// hours aggregation.
func (s *userService) CreateUser(ctx context.Context, requester *model.User, input dto.CreateUserInput) (*dto.UserPayload, error) {
	if err := ScopeFor(requester).CanCreateUser(input.Role); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", apperror.ErrDuplicate)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	requesterID := requester.ID
	user := &model.User{
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         input.Role,
		IsActive:     true,
		CreatedByID:  &requesterID,
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if input.PreVerified {
		user.IsVerified = true
	} else {
		user.VerificationToken = uuid.NewString()
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if !input.PreVerified && s.mailer != nil {
		// Fire-and-forget: only the enqueue is guaranteed, never delivery.
		s.mailer.EnqueueVerification(user.Email, user.VerificationToken, user.ID)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    user.ID,
		"role":       user.Role,
		"created_by": requester.ID,
	}).Info("user created")

	return dto.NewUserPayload(user), nil
}

func (s *userService) GetUser(ctx context.Context, requester *model.User, id uint) (*dto.UserPayload, error) {
	user, err := s.findVisibleUser(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	return dto.NewUserPayload(user), nil
}

func (s *userService) ListUsers(ctx context.Context, requester *model.User, filter dto.UserFilter) ([]*dto.UserPayload, error) {
	users, err := s.repo.FindAll(ctx, ScopeFor(requester).Users, filter.Role)
	if err != nil {
		return nil, err
	}

	payloads := make([]*dto.UserPayload, 0, len(users))
	for _, user := range users {
		payloads = append(payloads, dto.NewUserPayload(user))
	}

	return payloads, nil
}

func (s *userService) UpdateUser(ctx context.Context, requester *model.User, id uint, input dto.UpdateUserInput) (*dto.UserPayload, error) {
	user, err := s.findVisibleUser(ctx, requester, id)
	if err != nil {
		return nil, err
	}

	if err := ScopeFor(requester).CanManageUser(user); err != nil {
		return nil, err
	}

	applyUserUpdate(user, input)
	if input.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return dto.NewUserPayload(user), nil
}

// DeleteUser removes a user and cascades over the whole subtree they created.
// Deleting a PM deletes their entire team and its history; that is the
// intended semantics, so it is logged loudly instead of softened.
func (s *userService) DeleteUser(ctx context.Context, requester *model.User, id uint) error {
	user, err := s.findVisibleUser(ctx, requester, id)
	if err != nil {
		return err
	}

	if err := ScopeFor(requester).CanManageUser(user); err != nil {
		return err
	}

	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    id,
		"email":      user.Email,
		"role":       user.Role,
		"deleted_by": requester.ID,
	}).Warn("user deleted with full cascade")

	return nil
}

func (s *userService) UpdateProfile(ctx context.Context, requester *model.User, input dto.UpdateUserInput) (*dto.UserPayload, error) {
	user, err := s.repo.FindByID(ctx, requester.ID)
	if err != nil {
		return nil, err
	}

	applyUserUpdate(user, input)
	// Self-service profile edits never touch the active flag.
	user.IsActive = requester.IsActive

	if input.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return dto.NewUserPayload(user), nil
}

// findVisibleUser resolves a user id through the requester's scope. An id
// outside the visible set reads as not found, never as a permission error,
// so out-of-scope existence does not leak.
func (s *userService) findVisibleUser(ctx context.Context, requester *model.User, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	if err := ScopeFor(requester).CanViewUser(user); err != nil {
		return nil, err
	}

	return user, nil
}

func applyUserUpdate(user *model.User, input dto.UpdateUserInput) {
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
}
