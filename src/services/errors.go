package services

import "errors"

// Validation errors
var (
	ErrInvalidCubiculo      = errors.New("cubículo inválido")
	ErrInvalidProblema      = errors.New("problema inválido")
	ErrDuplicateOpenTicket  = errors.New("ya existe un ticket abierto para el cubículo")
	ErrInvalidTecnico       = errors.New("técnico inválido")
	ErrInvalidEditData      = errors.New("datos inválidos en edición")
	ErrResolutionIncomplete = errors.New("un ticket resuelto requiere técnico y solución")
	ErrNoValidIDs           = errors.New("sin ids válidos")
	ErrPasswordTooShort     = errors.New("la nueva clave debe tener al menos 4 caracteres")
	ErrPasswordMismatch     = errors.New("las claves no coinciden")
)

// Not-found and authorization errors
var (
	ErrTicketNotFound       = errors.New("ticket no encontrado")
	ErrUnauthorized         = errors.New("clave o confirmación incorrecta")
	ErrWrongCurrentPassword = errors.New("clave actual incorrecta")
	ErrBackupDisabled       = errors.New("respaldo en Google Drive no configurado")
)
