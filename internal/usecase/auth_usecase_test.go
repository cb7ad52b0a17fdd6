package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vetlink/vetlink-api/internal/config"
	"github.com/vetlink/vetlink-api/internal/dto"
	"github.com/vetlink/vetlink-api/internal/model"
	"github.com/vetlink/vetlink-api/internal/repository/repotest"
	"github.com/vetlink/vetlink-api/internal/util"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUsecase() (*AuthUsecase, *repotest.Users, *repotest.Sessions) {
	users := repotest.NewUsers()
	sessions := repotest.NewSessions()
	cfg := &config.AuthConfig{SessionTTL: time.Hour, BcryptCost: bcrypt.MinCost}
	return NewAuthUsecase(users, sessions, cfg, zap.NewNop()), users, sessions
}

func validRegistration() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:     "  Jane.Doe@Example.com ",
		Password:  "correct horse",
		Role:      "veteran",
		FirstName: "Jane",
		LastName:  "Doe",
	}
}

func TestAuthRegisterAndLogin(t *testing.T) {
	uc, _, sessions := newAuthUsecase()
	ctx := context.Background()

	user, err := uc.Register(ctx, validRegistration())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "jane.doe@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.PasswordHash == "correct horse" {
		t.Fatal("password stored in clear text")
	}
	if user.Role != model.RoleVeteran {
		t.Fatalf("unexpected role %q", user.Role)
	}

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "JANE.DOE@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" || resp.User.ID != user.ID {
		t.Fatalf("unexpected login response: %+v", resp)
	}
	if sessions.TTL != time.Hour {
		t.Fatalf("session ttl = %v", sessions.TTL)
	}

	sess, err := uc.Authenticate(ctx, resp.Token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if sess.UserID != user.ID || sess.Role != model.RoleVeteran {
		t.Fatalf("unexpected session %+v", sess)
	}

	if err := uc.Logout(ctx, resp.Token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := uc.Authenticate(ctx, resp.Token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("token should be revoked, got %v", err)
	}
}

func TestAuthRegister_Duplicate(t *testing.T) {
	uc, _, _ := newAuthUsecase()
	ctx := context.Background()

	if _, err := uc.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := uc.Register(ctx, validRegistration()); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestAuthRegister_Validation(t *testing.T) {
	uc, _, _ := newAuthUsecase()

	cases := map[string]func(*dto.RegisterRequest){
		"email":    func(r *dto.RegisterRequest) { r.Email = "not-an-email" },
		"password": func(r *dto.RegisterRequest) { r.Password = "short" },
		"role":     func(r *dto.RegisterRequest) { r.Role = "admin" },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			req := validRegistration()
			mutate(&req)

			_, err := uc.Register(context.Background(), req)
			var formErr *util.FormError
			if !errors.As(err, &formErr) {
				t.Fatalf("expected FormError, got %v", err)
			}
			if _, ok := formErr.Errors[field]; !ok {
				t.Fatalf("expected error on %q, got %v", field, formErr.Errors)
			}
		})
	}
}

func TestAuthRegister_PasswordOverBcryptLimit(t *testing.T) {
	uc, users, _ := newAuthUsecase()
	ctx := context.Background()

	req := validRegistration()
	req.Password = strings.Repeat("é", 40) // 40 runes, 80 bytes
	_, err := uc.Register(ctx, req)

	var formErr *util.FormError
	if !errors.As(err, &formErr) {
		t.Fatalf("expected FormError, got %v", err)
	}
	if _, ok := formErr.Errors["password"]; !ok {
		t.Fatalf("missing password error in %+v", formErr.Errors)
	}
	if _, err := users.FindUserByEmail(ctx, "jane.doe@example.com"); err == nil {
		t.Fatal("user created despite invalid password")
	}
}

func TestAuthLogin_BadCredentials(t *testing.T) {
	uc, _, _ := newAuthUsecase()
	ctx := context.Background()
	if _, err := uc.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	for _, req := range []dto.LoginRequest{
		{Email: "jane.doe@example.com", Password: "wrong password"},
		{Email: "nobody@example.com", Password: "correct horse"},
	} {
		if _, err := uc.Login(ctx, req); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("Login(%s) = %v, want ErrUnauthorized", req.Email, err)
		}
	}
}

func TestAuthAuthenticate_EmptyToken(t *testing.T) {
	uc, _, _ := newAuthUsecase()
	if _, err := uc.Authenticate(context.Background(), ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
