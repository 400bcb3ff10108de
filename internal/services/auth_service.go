package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/patitas-felices/shelter-portal/internal/config"
	"github.com/patitas-felices/shelter-portal/internal/dto"
	"github.com/patitas-felices/shelter-portal/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials is deliberately identical for unknown email and
	// wrong password so login failures never reveal account existence.
	ErrInvalidCredentials = errors.New("correo o contraseña incorrectos")
	ErrInvalidRemember    = errors.New("invalid or expired remember token")
	ErrUserNotFound       = errors.New("usuario no encontrado")
)

// RememberCookie is the signed remember-me cookie name.
const RememberCookie = "patitas_remember"

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Login verifies the credentials and stamps the last login time. The
// returned user carries the stored role string; callers normalize it for
// dashboard routing.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.db.Model(&user).Update("last_login_at", now).Error; err != nil {
		return nil, fmt.Errorf("failed to stamp login: %w", err)
	}
	user.LastLoginAt = &now

	return &user, nil
}

// Register validates the sign-up form and creates the account. Validation
// problems, including a taken email, come back as a per-field error map;
// the error return is reserved for unexpected failures.
func (s *AuthService) Register(form *dto.RegisterForm) (*models.User, map[string]string, error) {
	errs := form.Validate()
	if len(errs) > 0 {
		return nil, errs, nil
	}

	var existing models.User
	if err := s.db.Where("email = ?", form.Email).First(&existing).Error; err == nil {
		return nil, map[string]string{"email": "El correo ya está registrado"}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:        uuid.New(),
		Nombre:    form.Nombre,
		Apellido:  form.Apellido,
		Email:     form.Email,
		Password:  string(hash),
		Rol:       form.Rol,
		Telefono:  form.Telefono,
		Direccion: form.Direccion,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil, nil
}

// GetUser loads a user by id, for prefilled forms and identity refresh.
func (s *AuthService) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// RememberToken signs a long-lived token so a returning browser can
// re-establish its session after the session cookie expires.
func (s *AuthService) RememberToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.ID.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.cfg.RememberExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SessionSecret))
}

// UserFromRememberToken verifies a remember cookie and resolves its user.
func (s *AuthService) UserFromRememberToken(raw string) (*models.User, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.SessionSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidRemember
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidRemember
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrInvalidRemember
	}

	return s.GetUser(userID)
}
