package model

import "time"

// Category is a product category, stored in the categorias table.
type Category struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Nombre      string `gorm:"not null"`
	Descripcion string

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Category) TableName() string { return "categorias" }
