package appointment

import (
	"context"

	"github.com/AuMiauServices/petshop-api/internal/audit"
	domain "github.com/AuMiauServices/petshop-api/internal/domain/appointment"
	"github.com/AuMiauServices/petshop-api/internal/httperr"
	"github.com/AuMiauServices/petshop-api/internal/models"
	"github.com/AuMiauServices/petshop-api/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCancelAppointment(
	repo domain.Repository,
	recorder audit.Recorder,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: recorder,
	}
}

// Execute cancela um agendamento do próprio dono. Agendamento de
// outra conta responde como inexistente.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForOwner(ctx, appointmentID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Cancel(ap, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
