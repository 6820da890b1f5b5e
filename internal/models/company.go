package models

import "time"

type Company struct {
	ID           string `gorm:"primarykey;type:varchar(36)"`
	Name         string `gorm:"type:varchar(200);index;not null"`
	Domain       string `gorm:"type:varchar(200);uniqueIndex;not null"`
	LinkedinURL  string `gorm:"type:varchar(300)"`
	Revenue      string `gorm:"type:varchar(50)"`
	EmployeeSize string `gorm:"type:varchar(50);index"`
	Industry     string `gorm:"type:varchar(100);index"`
	Description  string `gorm:"type:text"`
	City         string `gorm:"type:varchar(100)"`
	State        string `gorm:"type:varchar(100)"`
	Country      string `gorm:"type:varchar(100);index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
