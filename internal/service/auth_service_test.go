package service

import (
	"context"
	"testing"

	"crm-meetings-be/internal/dto"
	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/pkg/serverutils"
	"crm-meetings-be/internal/repository/specification"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.users[email], nil
}

func newTestAuthService(t *testing.T, email, password string) (IAuthService, uuid.UUID) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	userId := uuid.New()
	repo := &fakeUserRepo{users: map[string]*entity.User{
		email: {
			Id:           userId,
			Email:        email,
			PasswordHash: string(hash),
			FirstName:    "Demo",
			LastName:     "User",
		},
	}}

	return NewAuthService(&fakeFactory{uow: &fakeUnitOfWork{userRepo: repo}}), userId
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, userId := newTestAuthService(t, "demo@example.com", "s3cret")

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "demo@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.Equal(t, userId, res.User.Id)
	assert.Equal(t, "demo@example.com", res.User.Email)

	token, err := jwt.Parse(res.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(serverutils.JwtSecret()), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, userId.String(), claims["user_id"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t, "demo@example.com", "s3cret")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "demo@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	svc, _ := newTestAuthService(t, "demo@example.com", "s3cret")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
