package appointment

import (
	"context"

	"github.com/AuMiauServices/petshop-api/internal/models"
)

type Repository interface {
	// -------- Pet / Service lookups --------
	GetPetForOwner(
		ctx context.Context,
		petID uint,
		ownerID uint,
	) (*models.Pet, error)

	ListServicesByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	// -------- Appointment (create / state change) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	GetAppointmentForOwner(
		ctx context.Context,
		appointmentID uint,
		ownerID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListByOwner(
		ctx context.Context,
		ownerID uint,
	) ([]models.Appointment, error)

	ListAll(
		ctx context.Context,
	) ([]models.Appointment, error)
}
