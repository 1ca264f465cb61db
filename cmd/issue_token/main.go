// issue_token emite un JWT firmado con JWT_SECRET para operar las rutas protegidas.
//
// Uso: go run ./cmd/issue_token [user_id] [role]
// Por defecto: user_id "cli", role "admin".
package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/catalog-api/pkg/config"
	"github.com/jhoicas/catalog-api/pkg/jwt"
)

func main() {
	userID, role := "cli", jwt.RoleAdmin
	if len(os.Args) > 1 {
		userID = os.Args[1]
	}
	if len(os.Args) > 2 {
		role = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	token, err := jwt.Generate(cfg.JWT.Secret, userID, role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
