package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/elegance/timesheet-system/internal/core/domain"
	"github.com/elegance/timesheet-system/internal/core/ports"
)

// Credential is the single configured email/password pair the service
// accepts. There is no registration path.
type Credential struct {
	Email    string
	Password string
}

// AuthService gates the API behind the configured credential.
type AuthService struct {
	users        ports.UserRepository
	email        string
	passwordHash []byte
	jwtSecret    string
	tokenTTL     time.Duration
}

func NewAuthService(users ports.UserRepository, cred Credential, jwtSecret string, tokenTTL time.Duration) (*AuthService, error) {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	// Hash once at construction so login always goes through a constant-time
	// bcrypt compare, even though the pair comes from configuration.
	hash, err := bcrypt.GenerateFromPassword([]byte(cred.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		users:        users,
		email:        cred.Email,
		passwordHash: hash,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if email != s.email {
		return "", nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	user := &domain.User{Email: email, IsLoggedIn: true}
	if err := s.users.Save(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.users.Clear(ctx)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"email": user.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
