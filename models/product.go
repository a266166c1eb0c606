package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Price       uint   `gorm:"not null" json:"price"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}
