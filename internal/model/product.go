package model

import "time"

// Product is an inventory item, stored in the productos table.
type Product struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Nombre      string `gorm:"not null"`
	Descripcion string
	Cantidad    int    `gorm:"not null;default:0"`
	CategoriaID string `gorm:"type:uuid;not null;index"`
	ProveedorID string `gorm:"type:uuid;not null;index"`
	Ubicacion   string

	// Expanded references for the list view. No FK constraints
	// at the store level: deleting a category or supplier leaves the
	// product's reference dangling on purpose.
	Categoria *Category `gorm:"foreignKey:CategoriaID"`
	Proveedor *Supplier `gorm:"foreignKey:ProveedorID"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Product) TableName() string { return "productos" }
