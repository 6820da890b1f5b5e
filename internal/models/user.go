package models

import "time"

const (
	RoleUser       = "user"
	RoleSuperAdmin = "super_admin"
)

type User struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	FullName  string `gorm:"type:varchar(200)"`
	Role      string `gorm:"not null;default:'user'"`
	// Credits is mutated only through the ledger (conditional debit or
	// credit); never assign it directly from service code.
	Credits  int  `gorm:"not null;default:0"`
	IsActive bool `gorm:"default:true"`
	Version  int  `gorm:"default:1"`
}
