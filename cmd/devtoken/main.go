// devtoken genera un JWT HS256 con el claim "rol" para probar el portal en local
// sin pasar por el backend. El portal no verifica la firma; el backend sí.
//
// Uso: go run ./cmd/devtoken <rol> [sub] [minutos]
// Ejemplo: go run ./cmd/devtoken admin jperez 120
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jhoicas/softcon-wm/internal/domain/entity"
	"github.com/jhoicas/softcon-wm/pkg/jwt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: devtoken <rol> [sub] [minutos]")
		os.Exit(2)
	}
	rol := os.Args[1]
	if !entity.ValidRole(rol) {
		fmt.Fprintf(os.Stderr, "rol %q no válido (admin, supervisor, bodeguero, trabajador)\n", rol)
		os.Exit(2)
	}
	sub := "dev"
	if len(os.Args) > 2 {
		sub = os.Args[2]
	}
	minutos := 60
	if len(os.Args) > 3 {
		n, err := strconv.Atoi(os.Args[3])
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "minutos inválidos: %q\n", os.Args[3])
			os.Exit(2)
		}
		minutos = n
	}

	secret := os.Getenv("DEV_JWT_SECRET")
	if secret == "" {
		secret = "softcon-dev"
	}
	tok, err := jwt.Generate(secret, sub, rol, minutos)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar token: %v\n", err)
		os.Exit(1)
	}
	// Pegar en el navegador como cookie "token" (o "userToken").
	fmt.Println(tok)
}
