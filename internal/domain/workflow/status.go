package workflow

import (
	"fmt"
	"strings"
)

// Status es el estado de una instancia de workflow (cuestionario o solicitud de adopción).
// @Enum PENDING, APPROVED, REJECTED
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// Terminal indica si el estado es APPROVED o REJECTED.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", Validation(fmt.Sprintf("invalid status %q", raw))
	}
	return s, nil
}

// ParseExpected parsea el token opcional de concurrencia optimista.
// Vacío = el caller no fija estado esperado.
func ParseExpected(raw string) (*Status, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	s, err := ParseStatus(raw)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Action es la acción de admin sobre una solicitud.
type Action string

const (
	ActionApprove Action = "APPROVE"
	ActionReject  Action = "REJECT"
)

// ParseAction normaliza la acción (case-insensitive en el borde HTTP).
func ParseAction(raw string) (Action, error) {
	a := Action(strings.ToUpper(strings.TrimSpace(raw)))
	switch a {
	case ActionApprove, ActionReject:
		return a, nil
	default:
		return "", Validation(fmt.Sprintf("invalid action %q", raw))
	}
}

// Target devuelve el estado destino de la acción.
func (a Action) Target() Status {
	if a == ActionApprove {
		return StatusApproved
	}
	return StatusRejected
}
