package repository

import (
	"context"

	"github.com/jhoicas/netline-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// FindAdministrator busca un SYSTEM_ADMINISTRATOR por username.
	// Devuelve domain.ErrUserNotFound si no existe o tiene otro rol.
	FindAdministrator(ctx context.Context, username string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	// List devuelve todos los usuarios en el orden del store.
	List(ctx context.Context) ([]entity.User, error)
	// ListByRoles devuelve los usuarios con alguno de los roles dados.
	ListByRoles(ctx context.Context, roles ...entity.Role) ([]entity.User, error)
	// SaveAdministrator crea o actualiza (por username) un SYSTEM_ADMINISTRATOR.
	SaveAdministrator(ctx context.Context, user entity.User) error
}
