package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// ErrUnauthorized y ErrForbidden son deliberadamente distintos: el primero significa
// "no autenticado" (401) y el segundo "autenticado pero sin permiso" (403).
// La capa HTTP nunca debe confundirlos.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autenticado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUserInactive       = errors.New("usuario inactivo")

	// ErrTenantNotResolved: se esperaba un contexto de tenant y no hay (o es inválido).
	// La capa de datos falla cerrada con este error; nunca degrada a consultas sin filtro.
	ErrTenantNotResolved = errors.New("tenant no resuelto")
	ErrTenantSuspended   = errors.New("tenant suspendido")
)
