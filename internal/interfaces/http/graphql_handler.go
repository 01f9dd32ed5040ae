// Package http monta la API GraphQL sobre Fiber: middleware de
// autenticación, endpoint POST /graphql y ruta de salud.
package http

import (
	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/gofiber/fiber/v2"
)

// graphqlRequest cuerpo estándar de una petición GraphQL sobre HTTP.
type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// GraphQLHandler ejecuta la petición contra el esquema. Los errores de
// dominio viajan dentro de la respuesta GraphQL (campo errors), no como
// códigos de estado HTTP: el transporte siempre responde 200 salvo cuerpo
// malformado.
func GraphQLHandler(schema *graphqlgo.Schema) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req graphqlRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": []fiber.Map{{"message": "cuerpo de petición inválido"}},
			})
		}
		resp := schema.Exec(c.UserContext(), req.Query, req.OperationName, req.Variables)
		return c.JSON(resp)
	}
}
