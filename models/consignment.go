package models

import "gorm.io/gorm"

// Consignment is a product sold on behalf of a third-party seller.
type Consignment struct {
	gorm.Model
	Name       string `gorm:"not null" json:"name"`
	Price      uint   `gorm:"not null" json:"price"`
	SellerName string `json:"seller_name"`
}
