package workflow

import "fmt"

type transition struct {
	from Status
	to   Status
}

// transitions es la tabla declarada de transiciones legales.
// Reaplicar el estado actual (p.ej. REJECTED -> REJECTED) se trata aparte como no-op idempotente.
var transitions = map[transition]struct{}{
	{StatusPending, StatusApproved}: {},
	{StatusPending, StatusRejected}: {},
}

// Machine valida transiciones de estado.
//
// AllowOverwrite reproduce el comportamiento histórico de sobrescritura incondicional
// (cualquier estado -> APPROVED/REJECTED). Solo aplica a Reject y UpdateStatus;
// Approve de cuestionarios siempre exige PENDING.
type Machine struct {
	AllowOverwrite bool
}

// Check valida el paso from -> to. expected es el token opcional de concurrencia:
// si viene y no coincide con from, falla con Conflict.
// Devuelve noop=true cuando from == to (idempotente, no hay nada que escribir).
func (m Machine) Check(from, to Status, expected *Status) (noop bool, err error) {
	if !to.Valid() || !to.Terminal() {
		return false, Validation(fmt.Sprintf("invalid target status %q", to))
	}
	if expected != nil && *expected != from {
		return false, Conflict(fmt.Sprintf("expected status %s, current is %s", *expected, from))
	}
	if from == to {
		return true, nil
	}
	if _, ok := transitions[transition{from, to}]; ok {
		return false, nil
	}
	if m.AllowOverwrite {
		return false, nil
	}
	return false, Conflict(fmt.Sprintf("illegal transition %s -> %s", from, to))
}

// CanTransition expone la tabla sin flag de compatibilidad.
func CanTransition(from, to Status) bool {
	_, ok := transitions[transition{from, to}]
	return ok
}
