package model

import "time"

// Address is the supplier address, embedded in the proveedores row.
type Address struct {
	Calle        string
	Ciudad       string
	CodigoPostal string
}

// Supplier is stored in the proveedores table.
type Supplier struct {
	ID       string `gorm:"primaryKey;type:uuid"`
	Nombre   string `gorm:"not null"`
	Contacto string
	Telefono string
	Correo   string

	Direccion Address `gorm:"embedded;embeddedPrefix:direccion_"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Supplier) TableName() string { return "proveedores" }
