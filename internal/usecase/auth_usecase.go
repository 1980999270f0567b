package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"jobghar/internal/domain/user"
	"jobghar/internal/pkg/jwt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrPasswordsDoNotMatch    = errors.New("passwords do not match")
)

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
	Age             *int
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken string
	Role        user.Role
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, error)
	Login(ctx context.Context, in LoginInput) (LoginResult, error)
}

type Auth struct {
	users user.Repository
	jwt   jwt.Service
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return user.User{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return user.User{}, ErrInvalidInput
	}
	if len(in.Password) < 6 {
		return user.User{}, ErrInvalidInput
	}
	if in.Password != in.ConfirmPassword {
		return user.User{}, ErrPasswordsDoNotMatch
	}

	role := user.RoleSeeker
	if strings.TrimSpace(in.Role) != "" {
		parsed, ok := user.ParseRole(in.Role)
		if !ok {
			return user.User{}, ErrInvalidInput
		}
		role = parsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	created, err := u.users.Create(ctx, user.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Age:          in.Age,
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return user.User{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, ErrInternal
	}

	return sanitizeUser(created), nil
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := u.jwt.GenerateToken(usr.ID, usr.Email, usr.Role)
	if err != nil {
		return LoginResult{}, ErrInternal
	}

	// Login refreshes the stored session token on the account row.
	if err := u.users.UpdateAccessToken(ctx, usr.ID, token); err != nil {
		return LoginResult{}, ErrInternal
	}

	return LoginResult{AccessToken: token, Role: usr.Role}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	u.AccessToken = ""
	return u
}
