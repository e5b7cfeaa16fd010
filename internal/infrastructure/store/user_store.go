package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/netline-api/internal/domain"
	"github.com/jhoicas/netline-api/internal/domain/entity"
	"github.com/jhoicas/netline-api/internal/domain/repository"
	"github.com/jhoicas/netline-api/internal/domain/sales"
)

var _ repository.UserRepository = (*UserStore)(nil)

// UserStore repositorio de usuarios sobre la colección "users".
type UserStore struct {
	src repository.RecordSource
}

// NewUserStore construye el repositorio.
func NewUserStore(src repository.RecordSource) *UserStore {
	return &UserStore{src: src}
}

// FindAdministrator busca un SYSTEM_ADMINISTRATOR por username.
func (s *UserStore) FindAdministrator(ctx context.Context, username string) (*entity.User, error) {
	return s.findOne(ctx, map[string]any{
		"username": username,
		"type":     string(entity.RoleSystemAdministrator),
	})
}

// FindByID busca un usuario por _id.
func (s *UserStore) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return s.findOne(ctx, idFilter(id))
}

func (s *UserStore) findOne(ctx context.Context, filter map[string]any) (*entity.User, error) {
	docs, err := s.src.Find(ctx, CollectionUsers, filter)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrUserNotFound
	}
	u := sales.NormalizeUser(docs[0])
	return &u, nil
}

// List devuelve todos los usuarios.
func (s *UserStore) List(ctx context.Context) ([]entity.User, error) {
	return s.list(ctx, nil)
}

// ListByRoles devuelve los usuarios con alguno de los roles dados.
func (s *UserStore) ListByRoles(ctx context.Context, roles ...entity.Role) ([]entity.User, error) {
	in := make([]any, 0, len(roles))
	for _, r := range roles {
		in = append(in, string(r))
	}
	return s.list(ctx, map[string]any{"type": map[string]any{"$in": in}})
}

func (s *UserStore) list(ctx context.Context, filter map[string]any) ([]entity.User, error) {
	docs, err := s.src.Find(ctx, CollectionUsers, filter)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	users := make([]entity.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, sales.NormalizeUser(d))
	}
	return users, nil
}

// SaveAdministrator crea o actualiza por username un SYSTEM_ADMINISTRATOR.
func (s *UserStore) SaveAdministrator(ctx context.Context, user entity.User) error {
	if user.Username == "" || user.PasswordHash == "" {
		return fmt.Errorf("%w: username y password son obligatorios", domain.ErrInvalidInput)
	}
	registered := user.RegisteredAt
	if registered.IsZero() {
		registered = time.Now().UTC()
	}
	doc := entity.Document{
		"username":      user.Username,
		"password":      user.PasswordHash,
		"type":          string(entity.RoleSystemAdministrator),
		"complete_name": user.DisplayName,
		"created_at":    map[string]any{"$date": registered.Format(time.RFC3339)},
	}
	if err := s.src.UpsertOne(ctx, CollectionUsers, map[string]any{"username": user.Username}, doc); err != nil {
		return fmt.Errorf("guardar administrador: %w", err)
	}
	return nil
}
