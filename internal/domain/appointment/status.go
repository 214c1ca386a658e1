package appointment

import "github.com/AuMiauServices/petshop-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

// Os valores seguem o vocabulário gravado no banco desde a primeira
// versão do sistema, por isso ficam em português.
type Status string

const (
	StatusPending         Status = "pendente"
	StatusInProgress      Status = "em andamento"
	StatusAwaitingPayment Status = "a pagar"
	StatusCompleted       Status = "concluído"
	StatusCancelled       Status = "cancelado"
)

func InitialStatus() Status {
	return StatusPending
}

// IsTerminal indica estados que não aceitam mais nenhuma escrita.
func IsTerminal(s Status) bool {
	return s == StatusCancelled || s == StatusCompleted
}

// ===============================
// Validations
// ===============================

// CanCancel define se um agendamento pode ser cancelado pelo dono.
// Cancelar de novo um agendamento cancelado é sempre conflito, nunca
// um sucesso silencioso.
func CanCancel(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrBusiness("already_cancelled")
	}
	if current == StatusCompleted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// ParseTarget valida o status alvo de um avanço. Apenas os três
// estados pós-pendente são aceitos; qualquer outra string é erro.
func ParseTarget(raw string) (Status, error) {
	switch Status(raw) {
	case StatusInProgress, StatusAwaitingPayment, StatusCompleted:
		return Status(raw), nil
	default:
		return "", httperr.ErrBusiness("invalid_status")
	}
}

// CanAdvance define se o status atual aceita o avanço. Não há ordem
// obrigatória entre os três estados pós-pendente: qualquer um deles é
// alcançável de qualquer estado não terminal.
func CanAdvance(current Status, target Status) error {
	if _, err := ParseTarget(string(target)); err != nil {
		return err
	}
	if current == StatusCancelled {
		return httperr.ErrBusiness("appointment_cancelled")
	}
	if current == StatusCompleted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
