package models

import "time"

const (
	PetSizeSmall  = "pequeno"
	PetSizeMedium = "médio"
	PetSizeLarge  = "grande"
)

// IsValidPetSize reports whether size is one of the three accepted values.
func IsValidPetSize(size string) bool {
	return size == PetSizeSmall || size == PetSizeMedium || size == PetSizeLarge
}

type Pet struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"userId"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Size  string `gorm:"size:10;not null" json:"size"`
	Age   int    `gorm:"not null" json:"age"`
	Breed string `gorm:"size:100;not null" json:"breed"`
	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
