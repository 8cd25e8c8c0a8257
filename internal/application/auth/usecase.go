package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/application/dto"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/entity"
	"github.com/Doarmfando/Inventario-Cevi-sub000/internal/domain/repository"
	"github.com/Doarmfando/Inventario-Cevi-sub000/pkg/config"
	"github.com/Doarmfando/Inventario-Cevi-sub000/pkg/jwt"
)

// UseCase registro y login de usuarios. Las contraseñas se guardan con bcrypt
// y el login emite un JWT con user_id y role para el middleware RBAC.
type UseCase struct {
	repo   repository.UserRepository
	jwtCfg config.JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.UserRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{repo: repo, jwtCfg: jwtCfg}
}

// Register da de alta un usuario. Si no se indica rol, se asigna "cocinero"
// (el rol de solo lectura operativa).
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	role := in.Role
	if role == "" {
		role = entity.RoleCocinero
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Login valida credenciales y emite el token. Credenciales malas devuelven
// siempre el mismo error, exista o no el email.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	u, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(u)}, nil
}

// Me devuelve el usuario autenticado a partir del ID del token.
func (uc *UseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(u), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
