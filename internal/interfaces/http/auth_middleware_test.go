package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cocina-api/internal/application/auth"
	"github.com/jhoicas/Cocina-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Cocina-api/internal/interfaces/http"
)

// fakeVerifier acepta un único token conocido; cualquier otro es inválido.
type fakeVerifier struct{}

func (fakeVerifier) Verify(raw string) (*auth.Principal, error) {
	if raw != "token-valido" {
		return nil, errors.New("token inválido")
	}
	return &auth.Principal{ID: "u-1", Email: "chef@cocina.test", Role: entity.RoleStaff}, nil
}

// buildApp monta el middleware con un handler que reporta el principal visto.
func buildApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", apphttp.AuthMiddleware(fakeVerifier{}), func(c *fiber.Ctx) error {
		p := auth.PrincipalFrom(c.UserContext())
		if p == nil {
			return c.JSON(fiber.Map{"anonymous": true})
		}
		return c.JSON(fiber.Map{"anonymous": false, "email": p.Email})
	})
	return app
}

func whoami(t *testing.T, app *fiber.App, authHeader string) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestAuthMiddleware_TokenValidoAdjuntaPrincipal(t *testing.T) {
	body := whoami(t, buildApp(), "Bearer token-valido")
	assert.Equal(t, false, body["anonymous"])
	assert.Equal(t, "chef@cocina.test", body["email"])
}

func TestAuthMiddleware_TokenInvalidoSigueAnonimo(t *testing.T) {
	body := whoami(t, buildApp(), "Bearer token-basura")
	assert.Equal(t, true, body["anonymous"],
		"un token inválido degrada a anónimo, no corta la petición")
}

func TestAuthMiddleware_SinHeaderAnonimo(t *testing.T) {
	body := whoami(t, buildApp(), "")
	assert.Equal(t, true, body["anonymous"])
}

func TestAuthMiddleware_FormatoNoBearerAnonimo(t *testing.T) {
	body := whoami(t, buildApp(), "Basic dXNlcjpwYXNz")
	assert.Equal(t, true, body["anonymous"])
}

// esquema mínimo para probar el transporte sin montar toda la API.
const pingSchema = `
	schema { query: Query }
	type Query {
		ping: String!
		viewer: String!
	}
`

type pingResolver struct{}

func (pingResolver) Ping() string { return "pong" }

func (pingResolver) Viewer(ctx context.Context) string {
	if p := auth.PrincipalFrom(ctx); p != nil {
		return p.Email
	}
	return "anonymous"
}

func buildGraphQLApp(t *testing.T) *fiber.App {
	t.Helper()
	schema, err := graphqlgo.ParseSchema(pingSchema, &pingResolver{})
	require.NoError(t, err)

	app := fiber.New()
	app.Post("/graphql", apphttp.AuthMiddleware(fakeVerifier{}), apphttp.GraphQLHandler(schema))
	return app
}

func postGraphQL(t *testing.T, app *fiber.App, body, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestGraphQLHandler_EjecutaQuery(t *testing.T) {
	app := buildGraphQLApp(t)
	resp := postGraphQL(t, app, `{"query":"{ ping }"}`, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "pong", body.Data["ping"])
}

func TestGraphQLHandler_PropagaPrincipal(t *testing.T) {
	app := buildGraphQLApp(t)
	resp := postGraphQL(t, app, `{"query":"{ viewer }"}`, "Bearer token-valido")
	defer resp.Body.Close()

	var body struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "chef@cocina.test", body.Data["viewer"],
		"el principal debe llegar del middleware al resolver")
}

func TestGraphQLHandler_CuerpoInvalido(t *testing.T) {
	app := buildGraphQLApp(t)
	resp := postGraphQL(t, app, `{esto no es json`, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
