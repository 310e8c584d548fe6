package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hostel-backend/models"
	"hostel-backend/utils"

	mysqldrv "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const sessionTTL = 30 * 24 * time.Hour

// AuthService is the identity provider: it owns users and session tokens and
// resolves the current user for a request.
type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

func isDuplicateEntry(err error) bool {
	var me *mysqldrv.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	// SQLite in dev setups reports the same situation differently.
	return strings.Contains(err.Error(), "Duplicate entry") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (s *AuthService) Register(fullName, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errors.New("email_and_password_required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		FullName: strings.TrimSpace(fullName),
		Email:    email,
		Password: string(hash),
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateEntry(err) {
			return nil, errors.New("email_taken")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Login verifies credentials and issues a fresh session token.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errors.New("invalid_credentials")
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", errors.New("invalid_credentials")
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	expires := time.Now().UTC().Add(sessionTTL)
	session := models.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: &expires,
	}
	if err := s.DB.Create(&session).Error; err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	return &user, token, nil
}

// CurrentUser resolves a session token to its user. Returns
// invalid_or_expired_token for unknown or stale tokens.
func (s *AuthService) CurrentUser(token string) (*models.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("invalid_or_expired_token")
	}

	var session models.Session
	now := time.Now().UTC()
	err := s.DB.
		Preload("User").
		Where("token = ? AND (expires_at IS NULL OR expires_at > ?)", token, now).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid_or_expired_token")
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	if session.User.ID == 0 {
		return nil, errors.New("invalid_or_expired_token")
	}

	user := session.User
	return &user, nil
}

// Logout invalidates a session token. Unknown tokens are a no-op.
func (s *AuthService) Logout(token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	return s.DB.Where("token = ?", token).Delete(&models.Session{}).Error
}
