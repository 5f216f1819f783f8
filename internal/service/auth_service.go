package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"workouthelper/internal/models"
	"workouthelper/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 30

	defaultTokenTTL = time.Hour
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,30}$`)

// AccountService implements Accounts. It holds all three repositories so
// account deletion can cascade over owned documents.
type AccountService struct {
	users    repository.Users
	plans    repository.Plans
	workouts repository.Workouts
	cfg      Config
}

func NewAccountService(users repository.Users, plans repository.Plans, workouts repository.Workouts, cfg Config) *AccountService {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	return &AccountService{users: users, plans: plans, workouts: workouts, cfg: cfg}
}

var _ Accounts = (*AccountService)(nil)

func validateUsername(username string) error {
	if username == "" {
		return newValidationError("username is required")
	}
	runes := []rune(username)
	if len(runes) < usernameMinLen {
		return newValidationError(fmt.Sprintf("username must be at least %d characters long", usernameMinLen))
	}
	if len(runes) > usernameMaxLen {
		return newValidationError(fmt.Sprintf("username must be at most %d characters long", usernameMaxLen))
	}
	if !usernamePattern.MatchString(username) {
		return newValidationError("username must not contain white spaces or special characters other than _ or -")
	}
	return nil
}

// Register validates username and password, rejects taken usernames and
// persists the account with tooltips enabled and empty reference arrays.
func (s *AccountService) Register(ctx context.Context, username, password string) (models.User, error) {
	if err := validateUsername(username); err != nil {
		return models.User{}, err
	}
	if err := validatePassword(password); err != nil {
		return models.User{}, err
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return models.User{}, err
	}
	if existing != nil {
		return models.User{}, newConflictError("username is already taken")
	}

	hash, err := hashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return models.User{}, err
	}

	u := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Tooltips:     true,
		Plans:        []string{},
		Workouts:     []string{},
	}
	if err := s.users.Create(ctx, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Claims defines the JWT payload.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Login checks credentials and issues a signed token. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, username, password string) (string, models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", models.User{}, err
	}
	if u == nil {
		return "", models.User{}, ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return "", models.User{}, err
	}
	return token, *u, nil
}

// ParseToken verifies a signed token and returns the embedded user id.
func (s *AccountService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SigningKey), nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}

func (s *AccountService) issueToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString([]byte(s.cfg.SigningKey))
}

// ChangePassword re-verifies the old password before accepting the new one.
func (s *AccountService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) (models.User, error) {
	if oldPassword == "" || newPassword == "" {
		return models.User{}, newValidationError("old password or new password is missing")
	}
	if err := validatePassword(newPassword); err != nil {
		return models.User{}, err
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		return models.User{}, ErrInvalidOldPassword
	}
	if err := verifyPassword(u.PasswordHash, oldPassword); err != nil {
		return models.User{}, ErrInvalidOldPassword
	}

	hash, err := hashPassword(newPassword, s.cfg.BcryptCost)
	if err != nil {
		return models.User{}, err
	}
	if err := s.users.UpdatePasswordHash(ctx, userID, hash); err != nil {
		return models.User{}, err
	}
	u.PasswordHash = hash
	return *u, nil
}

func (s *AccountService) SetTooltips(ctx context.Context, userID string, value bool) (models.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		return models.User{}, newNotFoundError("user is not found")
	}
	if err := s.users.UpdateTooltips(ctx, userID, value); err != nil {
		return models.User{}, err
	}
	u.Tooltips = value
	return *u, nil
}

func (s *AccountService) Tooltips(ctx context.Context, userID string) (bool, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, newNotFoundError("user is not found")
	}
	return u.Tooltips, nil
}

func (s *AccountService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// DeleteAccount removes all workouts and plans whose back-reference matches
// the user, then the user document itself. The three deletes run in that
// fixed order; a failure mid-sequence surfaces to the caller.
func (s *AccountService) DeleteAccount(ctx context.Context, username string) error {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if u == nil {
		return newNotFoundError("user is not found")
	}

	if err := s.workouts.DeleteByUser(ctx, u.ID); err != nil {
		return err
	}
	if err := s.plans.DeleteByUser(ctx, u.ID); err != nil {
		return err
	}
	return s.users.Delete(ctx, u.ID)
}
