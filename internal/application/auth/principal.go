// Package auth modela el principal autenticado de cada petición y las
// comprobaciones de autorización. La verificación del token en sí se delega
// al proveedor de identidad externo (vía TokenVerifier).
package auth

import (
	"context"

	"github.com/jhoicas/Cocina-api/internal/domain"
	"github.com/jhoicas/Cocina-api/internal/domain/entity"
)

// Principal identidad autenticada adjunta a una petición. nil = anónimo:
// la ausencia de credencial no es un error duro, solo limita operaciones.
type Principal struct {
	ID    string
	Email string
	Role  entity.Role
}

// TokenVerifier intercambia una credencial bearer por un principal.
// Implementado contra el proveedor de identidad externo.
type TokenVerifier interface {
	Verify(token string) (*Principal, error)
}

type principalKey struct{}

// WithPrincipal adjunta el principal al contexto de la petición.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom devuelve el principal del contexto, o nil si es anónimo.
func PrincipalFrom(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey{}).(*Principal)
	return p
}

// RequireAuth exige un principal autenticado; anónimo = ErrUnauthenticated.
func RequireAuth(ctx context.Context) (*Principal, error) {
	p := PrincipalFrom(ctx)
	if p == nil {
		return nil, domain.ErrUnauthenticated
	}
	return p, nil
}

// RequireRole exige un principal autenticado con alguno de los roles dados.
// Anónimo = ErrUnauthenticated; autenticado sin rol permitido = ErrForbidden.
func RequireRole(ctx context.Context, roles ...entity.Role) (*Principal, error) {
	p, err := RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range roles {
		if p.Role == r {
			return p, nil
		}
	}
	return nil, domain.ErrForbidden
}
