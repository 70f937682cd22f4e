package domain

import (
	"errors"
	"fmt"
)

// Kind clasifica un error de dominio. Es un conjunto cerrado: cada kind mapea
// a exactamente un status HTTP en la capa de interfaces (una sola función de
// traducción), en lugar de comparar errores sentinela dispersos por handler.
type Kind int

const (
	KindValidation   Kind = iota + 1 // 400
	KindUnauthorized                 // 401
	KindForbidden                    // 403
	KindNotFound                     // 404
	KindConflict                     // 409
	KindInternal                     // 500
)

// Error es el error tipado de dominio: kind + código máquina + mensaje humano.
// Details transporta detalle estructurado opcional (ej. turnos en conflicto
// en un 409) que la capa HTTP serializa tal cual.
type Error struct {
	Kind    Kind
	Code    string // UNAUTHORIZED, FORBIDDEN, NOT_FOUND, CONFLICT, VALIDATION...
	Message string
	Details any
	Err     error // causa envuelta, nunca se expone al cliente
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Constructores por kind. Los mensajes son de cara al usuario final.

// Validation error de entrada (cuerpo o parámetros inválidos).
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Code: "VALIDATION", Message: msg}
}

// Unauthorized sesión ausente o inválida.
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Code: "UNAUTHORIZED", Message: msg}
}

// Forbidden denegación por rol, tenant o suscripción. El mensaje distingue la
// causa; la forma de la respuesta es la misma.
func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Code: "FORBIDDEN", Message: msg}
}

// NotFound entidad inexistente o fuera del tenant del solicitante.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Code: "NOT_FOUND", Message: msg}
}

// Conflict violación de unicidad (doble turno, nombre duplicado).
func Conflict(msg string, details any) *Error {
	return &Error{Kind: KindConflict, Code: "CONFLICT", Message: msg, Details: details}
}

// Internal error no clasificado; el mensaje al cliente es genérico.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Code: "INTERNAL", Message: "error interno", Err: err}
}

// AsError extrae un *Error de la cadena de errores, si existe.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// KindOf devuelve el kind de un error; KindInternal si no es un *Error.
func KindOf(err error) Kind {
	if de, ok := AsError(err); ok {
		return de.Kind
	}
	return KindInternal
}
