package appointment

import (
	"context"

	"go.uber.org/zap"

	"github.com/AuMiauServices/petshop-api/internal/audit"
	domain "github.com/AuMiauServices/petshop-api/internal/domain/appointment"
	"github.com/AuMiauServices/petshop-api/internal/httperr"
	"github.com/AuMiauServices/petshop-api/internal/models"
	"github.com/AuMiauServices/petshop-api/internal/payments"
	"github.com/AuMiauServices/petshop-api/internal/timezone"
)

type AdvanceStatus struct {
	repo     domain.Repository
	audit    audit.Recorder
	payments payments.Linker
	log      *zap.Logger
}

// NewAdvanceStatus monta o caso de uso privilegiado de progresso de
// status. linker pode ser nil quando a integração de pagamento está
// desligada.
func NewAdvanceStatus(
	repo domain.Repository,
	recorder audit.Recorder,
	linker payments.Linker,
	log *zap.Logger,
) *AdvanceStatus {
	return &AdvanceStatus{
		repo:     repo,
		audit:    recorder,
		payments: linker,
		log:      log,
	}
}

func (uc *AdvanceStatus) Execute(
	ctx context.Context,
	actorID uint,
	appointmentID uint,
	rawTarget string,
) (*models.Appointment, error) {

	target, err := domain.ParseTarget(rawTarget)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Advance(ap, target, timezone.Now()); err != nil {
		return nil, err
	}

	// Entrando em "a pagar", geramos o link de cobrança. Falha aqui
	// não desfaz a mudança de status.
	if target == domain.StatusAwaitingPayment && uc.payments != nil && ap.PaymentLink == "" {
		link, err := uc.payments.Link(ctx, ap)
		if err != nil {
			uc.log.Warn("payment link creation failed",
				zap.Uint("appointmentId", ap.ID),
				zap.Error(err),
			)
		} else {
			ap.PaymentLink = link
		}
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"status": string(target)},
	})

	return ap, nil
}
