package auth

import (
	"github.com/jhoicas/Cocina-api/internal/domain/entity"
	"github.com/jhoicas/Cocina-api/pkg/token"
)

var _ TokenVerifier = (*JWTVerifier)(nil)

// JWTVerifier verifica tokens firmados por el proveedor de identidad
// (firma HMAC con secreto compartido). Un token sin claim de rol, o con un
// rol desconocido, degrada a STAFF: el rol solo amplía permisos, nunca
// se asume ADMIN por defecto.
type JWTVerifier struct {
	Secret string
}

// NewJWTVerifier construye el verificador con el secreto del proveedor.
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{Secret: secret}
}

// Verify valida la credencial y devuelve el principal.
// Error = credencial inválida o expirada; el caller decide si eso se
// traduce en principal anónimo (así lo hace el middleware HTTP).
func (v *JWTVerifier) Verify(raw string) (*Principal, error) {
	userID, email, role, err := token.Parse(v.Secret, raw)
	if err != nil {
		return nil, err
	}
	r := entity.RoleStaff
	if entity.Role(role) == entity.RoleAdmin {
		r = entity.RoleAdmin
	}
	return &Principal{ID: userID, Email: email, Role: r}, nil
}
