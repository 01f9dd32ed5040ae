// mktoken emite un token firmado para desarrollo local, en sustitución del
// proveedor de identidad. El rol viaja como claim, igual que en producción.
//
// Uso: go run ./cmd/mktoken -email admin@cocina.test -role ADMIN
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jhoicas/Cocina-api/pkg/config"
	"github.com/jhoicas/Cocina-api/pkg/token"
)

func main() {
	email := flag.String("email", "dev@cocina.test", "email del usuario")
	role := flag.String("role", "STAFF", "rol de la aplicación (ADMIN o STAFF)")
	userID := flag.String("user", "", "id del usuario (por defecto, uno aleatorio)")
	flag.Parse()

	if *role != "ADMIN" && *role != "STAFF" {
		fmt.Fprintf(os.Stderr, "rol inválido %q: debe ser ADMIN o STAFF\n", *role)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.Auth.JWTSecret == "" {
		fmt.Fprintln(os.Stderr, "AUTH_JWT_SECRET no configurado")
		os.Exit(1)
	}

	id := *userID
	if id == "" {
		id = uuid.New().String()
	}

	tok, err := token.Generate(cfg.Auth.JWTSecret, id, *email, *role, cfg.Auth.Issuer, cfg.Auth.ExpMinutes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(tok)
}
