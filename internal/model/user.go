package model

import "time"

// User is a system account, stored in the usuarios table.
// The ID is minted by the sequence allocator, never by the database,
// so autoincrement is disabled on the primary key.
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement:false"`
	Nombre   string `gorm:"not null"`
	Correo   string `gorm:"not null;uniqueIndex"`
	Usuario  string `gorm:"not null;uniqueIndex"` // nickname
	Password string `gorm:"not null"`             // bcrypt hash, never plaintext
	Rol      string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string { return "usuarios" }
