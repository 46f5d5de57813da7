package services

import (
	"context"
	"errors"
	"strings"

	"github.com/tanvirhasan/jogajog/internal/logger"
	"github.com/tanvirhasan/jogajog/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrInvalidInput       = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

const maxUsernameLen = 80

// dummyHash is compared against when the username does not exist, so the
// unknown-user and wrong-password paths do comparable work.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash, fullName string) (int64, error)
}

// SessionStarter issues an opaque session token for a user.
type SessionStarter interface {
	Start(ctx context.Context, userID int64) (string, error)
}

// AuthService handles registration, login, and profile reads.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionStarter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionStarter) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
	}
}

// Register creates a new user and returns its id. The password is stored
// only as a bcrypt hash.
func (svc *AuthService) Register(ctx context.Context, username, password, fullName string) (int64, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	fullName = strings.TrimSpace(fullName)

	if username == "" || password == "" || len([]rune(username)) > maxUsernameLen {
		return 0, ErrInvalidInput
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return 0, err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username)
		return 0, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	id, err := svc.writer.Save(ctx, username, string(hashedPassword), fullName)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return 0, err
	}

	return id, nil
}

// Login authenticates a user and returns an opaque session token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.sessions.Start(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to start session", "err", err)
		return "", err
	}

	return token, nil
}

// Profile returns the user with the given id.
func (svc *AuthService) Profile(ctx context.Context, userID int64) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
