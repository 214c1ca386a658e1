package appointment

import (
	"time"

	"github.com/AuMiauServices/petshop-api/internal/models"
)

// ===============================
// Aggregation
// ===============================

// SnapshotPet congela os atributos atuais do pet. A cópia é por valor:
// edições ou exclusões posteriores do pet não alteram o agendamento.
func SnapshotPet(p *models.Pet) models.PetSnapshot {
	return models.PetSnapshot{
		PetID: p.ID,
		Name:  p.Name,
		Size:  p.Size,
		Age:   p.Age,
		Breed: p.Breed,
		Notes: p.Notes,
	}
}

// SnapshotServices congela nome, preço e duração de cada serviço
// contratado no momento da reserva.
func SnapshotServices(services []models.Service) models.ServiceSnapshots {
	snaps := make(models.ServiceSnapshots, 0, len(services))
	for _, s := range services {
		snaps = append(snaps, models.ServiceSnapshot{
			ServiceID:     s.ID,
			Name:          s.Name,
			Price:         s.Price,
			EstimatedTime: s.EstimatedTime,
		})
	}
	return snaps
}

// Totals soma preço e duração dos snapshots. Calculado uma única vez
// na criação; nunca recomputado a partir do catálogo vivo.
func Totals(snaps models.ServiceSnapshots) (totalPrice float64, totalMinutes int) {
	for _, s := range snaps {
		totalPrice += s.Price
		totalMinutes += s.EstimatedTime
	}
	return totalPrice, totalMinutes
}

// New monta um agendamento pendente a partir do pet e dos serviços.
func New(ownerID uint, pet *models.Pet, services []models.Service, scheduledDate time.Time) *models.Appointment {
	snaps := SnapshotServices(services)
	totalPrice, totalMinutes := Totals(snaps)

	return &models.Appointment{
		UserID:             ownerID,
		Pet:                SnapshotPet(pet),
		Services:           snaps,
		ScheduledDate:      scheduledDate,
		TotalPrice:         totalPrice,
		TotalEstimatedTime: totalMinutes,
		Status:             string(InitialStatus()),
	}
}

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Advance(ap *models.Appointment, target Status, now time.Time) error {
	if err := CanAdvance(Status(ap.Status), target); err != nil {
		return err
	}

	ap.Status = string(target)
	if target == StatusCompleted {
		ap.CompletedAt = &now
	}
	return nil
}
