package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cocina-api/internal/application/auth"
)

// AuthMiddleware extrae la credencial bearer, la verifica contra el
// proveedor de identidad y adjunta el principal al contexto de la petición.
//
// A diferencia de una API REST clásica, aquí un token ausente o inválido NO
// corta la petición con 401: la petición sigue como anónima y son las
// guardas de los resolvers quienes deciden qué operaciones permite un
// principal anónimo (solo `me`).
func AuthMiddleware(verifier auth.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c.Get("Authorization"))
		if raw != "" {
			if p, err := verifier.Verify(raw); err == nil {
				c.SetUserContext(auth.WithPrincipal(c.UserContext(), p))
			}
		}
		return c.Next()
	}
}

// bearerToken extrae el token del header Authorization; "" si no hay
// credencial con formato "Bearer <token>".
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
