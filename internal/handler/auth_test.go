package handler

import (
	"database/sql"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

func authHandler() (*AuthHandler, *fakeUsers, *fakeTokens) {
	users, tokens := &fakeUsers{}, &fakeTokens{}
	cfg := config.Config{JWTSecret: "secret", AccessTTLMin: 15, RefreshTTLDays: 7, BcryptCost: bcrypt.MinCost}
	return NewAuthHandler(cfg, users, tokens), users, tokens
}

func TestRegisterCreatesCustomer(t *testing.T) {
	h, users, tokens := authHandler()
	id := uuid.New()
	users.On("Create", "Ada", "ada@example.com", "correct horse", model.RoleCustomer).Return(id, nil)
	tokens.On("StoreRefresh", id, mock.Anything).Return(nil)

	body := `{"name":"Ada","email":"Ada@Example.com","password":"correct horse"}`
	rec := call{method: http.MethodPost, body: body}.do(t, h.Register)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	got := decodeBody(t, rec.Body.Bytes())
	assert.Equal(t, "customer", got["user"].(map[string]any)["role"])
	assert.NotEmpty(t, got["access"].(map[string]any)["token"])
	users.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h, users, _ := authHandler()
	users.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(uuid.Nil, repository.ErrEmailExists)

	rec := call{method: http.MethodPost, body: `{"name":"Ada","email":"ada@example.com","password":"correct horse"}`}.do(t, h.Register)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", decodeBody(t, rec.Body.Bytes())["code"])
}

func TestRegisterShortPassword(t *testing.T) {
	h, users, _ := authHandler()
	rec := call{method: http.MethodPost, body: `{"name":"Ada","email":"ada@example.com","password":"short"}`}.do(t, h.Register)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateStaffRole(t *testing.T) {
	h, users, _ := authHandler()
	users.On("Create", "Bob", "bob@example.com", "front desk 1", model.RoleClerk).Return(uuid.New(), nil)

	rec := call{method: http.MethodPost, body: `{"name":"Bob","email":"bob@example.com","password":"front desk 1","role":"clerk"}`}.do(t, h.CreateStaff)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = call{method: http.MethodPost, body: `{"name":"Eve","email":"eve@example.com","password":"front desk 1","role":"travel"}`}.do(t, h.CreateStaff)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("correct horse", bcrypt.MinCost)
	require.NoError(t, err)
	member := &model.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: &hash, Role: model.RoleCustomer, IsActive: true}
	walkIn := &model.User{ID: uuid.New(), Email: "walkin@example.com", Role: model.RoleCustomer, IsActive: true}

	h, users, tokens := authHandler()
	users.On("GetByEmail", "ada@example.com").Return(member, nil)
	users.On("GetByEmail", "walkin@example.com").Return(walkIn, nil)
	users.On("GetByEmail", "ghost@example.com").Return(nil, repository.ErrNotFound)
	tokens.On("StoreRefresh", member.ID, mock.Anything).Return(nil)

	tests := []struct {
		name, body string
		want       int
	}{
		{"valid", `{"email":"ada@example.com","password":"correct horse"}`, http.StatusOK},
		{"wrong password", `{"email":"ada@example.com","password":"battery staple"}`, http.StatusUnauthorized},
		{"walk-in has no password", `{"email":"walkin@example.com","password":"anything"}`, http.StatusUnauthorized},
		{"unknown email", `{"email":"ghost@example.com","password":"anything"}`, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := call{method: http.MethodPost, body: tt.body}.do(t, h.Login)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	h, users, tokens := authHandler()
	u := &model.User{ID: uuid.New(), Role: model.RoleTravel, IsActive: true}
	oldHash := utils.HashRefreshRaw("old-token")
	tokens.On("ValidateRefresh", oldHash).Return(u.ID, nil)
	tokens.On("RevokeByHash", oldHash).Return(nil)
	tokens.On("StoreRefresh", u.ID, mock.MatchedBy(func(h string) bool { return h != oldHash })).Return(nil)
	users.On("GetByID", u.ID).Return(u, nil)

	rec := call{method: http.MethodPost, body: `{"refresh_token":"old-token"}`}.do(t, h.Refresh)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	tokens.AssertExpectations(t)
}

func TestRefreshRejectsUnknownToken(t *testing.T) {
	h, _, tokens := authHandler()
	tokens.On("ValidateRefresh", mock.Anything).Return(uuid.Nil, sql.ErrNoRows)

	rec := call{method: http.MethodPost, body: `{"refresh_token":"stale"}`}.do(t, h.Refresh)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	tokens.AssertNotCalled(t, "RevokeByHash", mock.Anything)
}

func TestLogoutAll(t *testing.T) {
	h, _, tokens := authHandler()
	uid := uuid.New()
	tokens.On("RevokeAllForUser", uid).Return(nil)

	rec := call{method: http.MethodPost, user: uid, role: model.RoleCustomer}.do(t, h.LogoutAll)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = call{method: http.MethodPost}.do(t, h.LogoutAll)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
