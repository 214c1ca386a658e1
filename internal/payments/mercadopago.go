package payments

import (
	"context"
	"errors"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/AuMiauServices/petshop-api/internal/models"
)

// Linker gera um link de pagamento para um agendamento. A integração
// é opcional: sem token configurado o serviço roda sem Linker.
type Linker interface {
	Link(ctx context.Context, ap *models.Appointment) (string, error)
}

type MercadoPago struct {
	prefs preference.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	if accessToken == "" {
		return nil, errors.New("mercado pago: access token vazio")
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPago{prefs: preference.NewClient(cfg)}, nil
}

// Link cria uma preferência com um item por serviço do snapshot e
// devolve o init point do checkout.
func (m *MercadoPago) Link(ctx context.Context, ap *models.Appointment) (string, error) {
	items := make([]preference.ItemRequest, 0, len(ap.Services))
	for _, s := range ap.Services {
		items = append(items, preference.ItemRequest{
			ID:        strconv.FormatUint(uint64(s.ServiceID), 10),
			Title:     s.Name,
			Quantity:  1,
			UnitPrice: s.Price,
		})
	}

	req := preference.Request{
		Items:             items,
		ExternalReference: strconv.FormatUint(uint64(ap.ID), 10),
	}

	pref, err := m.prefs.Create(ctx, req)
	if err != nil {
		return "", err
	}
	return pref.InitPoint, nil
}
