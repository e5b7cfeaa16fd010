// seed_admin crea o actualiza un usuario SYSTEM_ADMINISTRATOR en el store configurado,
// con el password hasheado con bcrypt.
//
// Uso: go run ./cmd/seed_admin <username> <password> [nombre completo]
// Lee la conexión del mismo .env / variables de entorno que la API.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jhoicas/netline-api/internal/application/auth"
	"github.com/jhoicas/netline-api/internal/domain/entity"
	"github.com/jhoicas/netline-api/internal/infrastructure/store"
	"github.com/jhoicas/netline-api/pkg/config"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Uso: seed_admin <username> <password> [nombre completo]")
		os.Exit(2)
	}
	username := strings.TrimSpace(os.Args[1])
	password := os.Args[2]
	displayName := username
	if len(os.Args) > 3 {
		displayName = strings.Join(os.Args[3:], " ")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash del password: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	src, closeStore, err := store.Open(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar store: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	err = store.NewUserStore(src).SaveAdministrator(ctx, entity.User{
		Username:     username,
		DisplayName:  displayName,
		Role:         entity.RoleSystemAdministrator,
		PasswordHash: hash,
		RegisteredAt: time.Now().UTC(),
		RegisteredOK: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Guardar administrador: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Administrador %q guardado (driver %s)\n", username, cfg.Store.Driver)
}
