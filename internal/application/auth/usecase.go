package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/netline-api/internal/application/dto"
	"github.com/jhoicas/netline-api/internal/domain"
	"github.com/jhoicas/netline-api/internal/domain/entity"
	"github.com/jhoicas/netline-api/internal/domain/repository"
	"github.com/jhoicas/netline-api/internal/domain/sales"
	"github.com/jhoicas/netline-api/pkg/jwt"
)

// LoginMessage mensaje fijo de login exitoso.
const LoginMessage = "Login successful"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación del panel: login de administradores y sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	loc      *time.Location
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, loc *time.Location) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, loc: loc}
}

// Login verifica username/password de un SYSTEM_ADMINISTRATOR, genera JWT y retorna token + usuario.
// Usuario inexistente y password incorrecto devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username y password son obligatorios", domain.ErrInvalidInput)
	}
	user, err := uc.userRepo.FindAdministrator(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if user.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute).UTC(),
		User:      ToUserResponse(*user, uc.loc),
		Message:   LoginMessage,
	}, nil
}

// Session devuelve la sesión del token junto con el usuario actual del store (si sigue existiendo).
func (uc *AuthUseCase) Session(ctx context.Context, s jwt.Session) (*dto.SessionResponse, error) {
	out := &dto.SessionResponse{
		UserID:    s.UserID,
		Username:  s.Username,
		Role:      s.Role,
		ExpiresAt: s.ExpiresAt,
	}
	user, err := uc.userRepo.FindByID(ctx, s.UserID)
	switch {
	case err == nil:
		u := ToUserResponse(*user, uc.loc)
		out.User = &u
	case errors.Is(err, domain.ErrUserNotFound):
		return nil, domain.ErrUnauthorized
	default:
		return nil, err
	}
	return out, nil
}

// HashPassword genera el hash bcrypt usado al sembrar administradores.
func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", fmt.Errorf("%w: el password debe tener al menos 8 caracteres", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ToUserResponse convierte un usuario a su salida pública.
func ToUserResponse(u entity.User, loc *time.Location) dto.UserResponse {
	return dto.UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		DisplayName:  u.DisplayName,
		UserNumber:   u.UserNumber,
		Role:         string(u.Role),
		RegisteredAt: sales.FormatLocal(u.RegisteredAt, u.RegisteredOK, loc),
	}
}
