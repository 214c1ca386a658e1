package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// PetSnapshot congela os dados do pet no momento do agendamento.
type PetSnapshot struct {
	PetID uint   `json:"petId"`
	Name  string `json:"name"`
	Size  string `json:"size"`
	Age   int    `json:"age"`
	Breed string `json:"breed"`
	Notes string `json:"notes"`
}

// ServiceSnapshot congela nome, preço e duração do serviço contratado.
type ServiceSnapshot struct {
	ServiceID     uint    `json:"serviceId"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	EstimatedTime int     `json:"estimatedTime"`
}

type ServiceSnapshots []ServiceSnapshot

func (s ServiceSnapshots) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *ServiceSnapshots) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = nil
		return nil
	default:
		return errors.New("unsupported type for ServiceSnapshots")
	}
}

type Appointment struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"userId"`

	Pet      PetSnapshot      `gorm:"embedded;embeddedPrefix:pet_" json:"pet"`
	Services ServiceSnapshots `gorm:"type:jsonb" json:"services"`

	ScheduledDate time.Time `gorm:"not null" json:"scheduledDate"`

	TotalPrice float64 `gorm:"not null" json:"totalPrice"`

	// Tempo total estimado em minutos
	TotalEstimatedTime int `gorm:"not null" json:"totalEstimatedTime"`

	Status string `gorm:"size:20;default:'pendente'" json:"status"`

	PaymentLink string `gorm:"size:255" json:"paymentLink,omitempty"`

	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
