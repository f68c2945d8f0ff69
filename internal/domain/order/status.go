package order

import "github.com/printguard/printguard-api/internal/httperr"

// ===============================
// Order Status
// ===============================

type Status string

const (
	StatusPending      Status = "pending"
	StatusInProgress   Status = "in_progress"
	StatusWaitingParts Status = "waiting_parts"
	StatusCompleted    Status = "completed"
	StatusCanceled     Status = "canceled"
)

// InitialStatus é o status de toda OS recém-criada
func InitialStatus() Status {
	return StatusPending
}

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusWaitingParts, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// IsTerminal indica se o status não admite mais transições
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCanceled
}

// ===============================
// Transitions
// ===============================

var transitions = map[Status][]Status{
	StatusPending:      {StatusInProgress, StatusWaitingParts, StatusCompleted, StatusCanceled},
	StatusInProgress:   {StatusWaitingParts, StatusCompleted, StatusCanceled},
	StatusWaitingParts: {StatusInProgress, StatusCompleted, StatusCanceled},
}

// CanTransition valida a mudança de status pedida pelo chamador. O Store em
// si aplica qualquer status; este guarda pertence à borda da API.
func CanTransition(from, to Status) error {
	if !IsValid(to) {
		return httperr.ErrBusiness("invalid_status")
	}
	if IsTerminal(from) {
		return httperr.ErrBusiness("order_already_closed")
	}
	for _, allowed := range transitions[from] {
		if to == allowed {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}
