package appointment

import (
	"context"

	domain "github.com/AuMiauServices/petshop-api/internal/domain/appointment"
	"github.com/AuMiauServices/petshop-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Own lista os agendamentos do próprio dono, por data agendada.
func (uc *ListAppointments) Own(ctx context.Context, userID uint) ([]models.Appointment, error) {
	return uc.repo.ListByOwner(ctx, userID)
}

// All lista todos os agendamentos; reservado aos papéis privilegiados.
func (uc *ListAppointments) All(ctx context.Context) ([]models.Appointment, error) {
	return uc.repo.ListAll(ctx)
}
