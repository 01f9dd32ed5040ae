package http

import (
	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cocina-api/internal/application/auth"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Schema   *graphqlgo.Schema
	Verifier auth.TokenVerifier
}

// Router registra las rutas de la API. Toda la superficie de negocio vive
// en el único endpoint GraphQL; la autorización es por operación, dentro de
// los resolvers.
func Router(app *fiber.App, deps RouterDeps) {
	app.Post("/graphql", AuthMiddleware(deps.Verifier), GraphQLHandler(deps.Schema))
}
