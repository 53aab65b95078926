package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	mem "voyago/pkg/memcache"
	"voyago/pkg/utils"
)

type stubAccountRepo struct {
	byEmail map[string]*db_models.Account
	byID    map[string]*db_models.Account
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{
		byEmail: make(map[string]*db_models.Account),
		byID:    make(map[string]*db_models.Account),
	}
}

func (s *stubAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	s.byEmail[account.Email] = account
	s.byID[account.ID.String()] = account
	return nil
}

func (s *stubAccountRepo) FindByID(_ context.Context, id string) (*db_models.Account, error) {
	return s.byID[id], nil
}

func (s *stubAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	return s.byEmail[email], nil
}

func newAccountService(t *testing.T) (AccountServiceInterface, *stubAccountRepo, mem.RevokedTokenStore) {
	t.Setenv("JWT_SECRET", "account-service-test-secret")
	repo := newStubAccountRepo()
	revoked := mem.NewRevokedTokens()
	return NewAccountService(repo, revoked, zap.NewNop()), repo, revoked
}

func signUp(t *testing.T, svc AccountServiceInterface, email string) {
	t.Helper()
	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Trip Planner",
		Email:       email,
		Password:    "hunter2secret",
	})
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
}

func TestCreateAccountRejectsDuplicateEmail(t *testing.T) {
	svc, repo, _ := newAccountService(t)
	signUp(t, svc, "dana@example.com")

	if repo.byEmail["dana@example.com"].PasswordHash == "hunter2secret" {
		t.Fatal("password must not be stored in clear")
	}

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Other",
		Email:       "dana@example.com",
		Password:    "different",
	})
	if !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc, _, _ := newAccountService(t)
	signUp(t, svc, "dana@example.com")

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "dana@example.com",
		Password: "hunter2secret",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if _, err := utils.ValidateToken(token); err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _, _ := newAccountService(t)
	signUp(t, svc, "dana@example.com")

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "dana@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "hunter2secret",
	})
	if !errors.Is(err, utils.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _, revoked := newAccountService(t)
	signUp(t, svc, "dana@example.com")

	token, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "dana@example.com",
		Password: "hunter2secret",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := svc.Logout(token); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if !revoked.IsRevoked(token) {
		t.Fatal("expected token to be revoked after logout")
	}
}

func TestGetProfileReturnsAccount(t *testing.T) {
	svc, repo, _ := newAccountService(t)
	signUp(t, svc, "dana@example.com")
	account := repo.byEmail["dana@example.com"]

	profile, err := svc.GetProfile(context.Background(), account.ID.String())
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if profile.Email != "dana@example.com" || profile.Name != "Trip Planner" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	_, err = svc.GetProfile(context.Background(), "missing-id")
	if !errors.Is(err, utils.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
