package appointment

import (
	"context"
	"time"

	"github.com/AuMiauServices/petshop-api/internal/audit"
	domain "github.com/AuMiauServices/petshop-api/internal/domain/appointment"
	"github.com/AuMiauServices/petshop-api/internal/httperr"
	"github.com/AuMiauServices/petshop-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID uint

	PetID      uint
	ServiceIDs []uint

	ScheduledDate time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCreateAppointment(
	repo domain.Repository,
	recorder audit.Recorder,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: recorder,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness("no_services")
	}

	// --------------------------------------------------
	// Pet do solicitante
	// --------------------------------------------------
	pet, err := uc.repo.GetPetForOwner(ctx, in.PetID, in.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("pet_not_found")
	}

	// --------------------------------------------------
	// Serviços: todos precisam existir; reserva parcial é
	// rejeitada, não efetivada pela metade
	// --------------------------------------------------
	ids := dedupe(in.ServiceIDs)
	services, err := uc.repo.ListServicesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(services) != len(ids) {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// Snapshot + totais congelados na criação
	// --------------------------------------------------
	ap := domain.New(in.UserID, pet, services, in.ScheduledDate)

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
