package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vetlink/vetlink-api/internal/config"
	"github.com/vetlink/vetlink-api/internal/dto"
	"github.com/vetlink/vetlink-api/internal/model"
	"github.com/vetlink/vetlink-api/internal/session"
	"github.com/vetlink/vetlink-api/internal/util"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase struct {
	users    UserRepository
	sessions SessionStore
	cfg      *config.AuthConfig
	logger   *zap.Logger
}

func NewAuthUsecase(users UserRepository, sessions SessionStore, cfg *config.AuthConfig, logger *zap.Logger) *AuthUsecase {
	return &AuthUsecase{users: users, sessions: sessions, cfg: cfg, logger: logger}
}

// maxPasswordBytes is bcrypt's input limit. The DTO's max tag counts runes,
// so multi-byte passwords are checked again here.
const maxPasswordBytes = 72

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (uc *AuthUsecase) Register(ctx context.Context, req dto.RegisterRequest) (*model.User, error) {
	req.Email = normalizeEmail(req.Email)
	if err := util.ValidateStruct(req); err != nil {
		return nil, err
	}
	if len(req.Password) > maxPasswordBytes {
		return nil, invalid("password", fmt.Sprintf("must be at most %d bytes", maxPasswordBytes))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         model.Role(req.Role),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
	}
	if err := uc.users.CreateUser(ctx, user); err != nil {
		return nil, fromRepository(err)
	}

	uc.logger.Info("user registered", zap.String("user_id", user.ID.String()), zap.String("role", string(user.Role)))
	return user, nil
}

// Login checks credentials and opens a session. Unknown emails and wrong
// passwords both yield ErrUnauthorized.
func (uc *AuthUsecase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := util.ValidateStruct(req); err != nil {
		return nil, err
	}

	user, err := uc.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(fromRepository(err), ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrUnauthorized
	}

	token, err := uc.sessions.Create(ctx, session.Session{UserID: user.ID, Role: user.Role}, uc.cfg.SessionTTL)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(uc.cfg.SessionTTL),
		User:      dto.NewUserDTO(user),
	}, nil
}

func (uc *AuthUsecase) Logout(ctx context.Context, token string) error {
	return uc.sessions.Delete(ctx, token)
}

// Authenticate resolves a bearer token to its session.
func (uc *AuthUsecase) Authenticate(ctx context.Context, token string) (session.Session, error) {
	if token == "" {
		return session.Session{}, ErrUnauthorized
	}
	sess, err := uc.sessions.Resolve(ctx, token)
	if errors.Is(err, session.ErrNotFound) {
		return session.Session{}, ErrUnauthorized
	}
	return sess, err
}

func (uc *AuthUsecase) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := uc.users.FindUserByID(ctx, userID)
	return user, fromRepository(err)
}
