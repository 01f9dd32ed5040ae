package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrUnauthenticated     = errors.New("autenticación requerida")
	ErrForbidden           = errors.New("permisos insuficientes")
	ErrInvalidMovementType = errors.New("tipo de movimiento inválido")
	ErrInsufficientStock   = errors.New("stock insuficiente: el saldo no puede ser negativo")
)
