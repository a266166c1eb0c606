package models

import "gorm.io/gorm"

type Courier struct {
	gorm.Model
	Name  string `gorm:"not null" json:"name"`
	Phone string `json:"phone"`
}
