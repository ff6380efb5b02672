package service

import (
	"context"
	"time"

	"cinebook/internal/apperrors"
	"cinebook/internal/auth"
	"cinebook/internal/logger"
	"cinebook/internal/metrics"
	"cinebook/internal/models"
)

type UserService struct {
	users      UserStore
	health     StoreHealth
	publisher  Publisher
	tokens     *auth.Tokens
	bcryptCost int
}

func NewUserService(users UserStore, health StoreHealth, publisher Publisher, tokens *auth.Tokens, bcryptCost int) *UserService {
	return &UserService{
		users:      users,
		health:     health,
		publisher:  publisher,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if !s.health.Available(ctx) {
		return nil, apperrors.StoreDown()
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.FromStore(err, "Error registering user")
	}
	if existing != nil {
		return nil, apperrors.New(apperrors.Conflict, "User with this email already exists")
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "Error registering user", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The pre-insert lookup can lose a race; the unique index settles it.
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.New(apperrors.Conflict, "User with this email already exists")
		}
		return nil, apperrors.FromStore(err, "Error registering user")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "Error registering user", err)
	}

	metrics.UsersRegistered.Inc()

	event := models.UserRegisteredEvent{
		UserID:    user.ID,
		Email:     user.Email,
		Timestamp: time.Now(),
	}
	if err := s.publisher.Publish(models.EventUserRegistered, event); err != nil {
		logger.WithContext(ctx).Warn("Failed to publish user registered event",
			"error", err, "user_id", user.ID)
	}

	return &models.AuthResponse{
		User:  models.UserInfo{ID: user.ID, Name: user.Name, Email: user.Email},
		Token: token,
	}, nil
}

func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if !s.health.Available(ctx) {
		return nil, apperrors.StoreDown()
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.FromStore(err, "Error logging in")
	}
	// Same message for an unknown email and a wrong password, so the
	// response never reveals which one was at fault.
	if user == nil {
		return nil, apperrors.New(apperrors.Unauthorized, "Invalid email or password")
	}
	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.New(apperrors.Unauthorized, "Invalid email or password")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "Error logging in", err)
	}

	return &models.AuthResponse{
		User:  models.UserInfo{ID: user.ID, Name: user.Name, Email: user.Email},
		Token: token,
	}, nil
}
