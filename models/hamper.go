package models

import "gorm.io/gorm"

// Hamper is a curated bundle of products sold as one item.
type Hamper struct {
	gorm.Model
	Name  string `gorm:"not null" json:"name"`
	Price uint   `gorm:"not null" json:"price"`
}
