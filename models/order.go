package models

import "gorm.io/gorm"

type Order struct {
	gorm.Model
	UserID     uint        `json:"user_id"`
	User       User        `json:"-"`
	CourierID  uint        `json:"courier_id"`
	Courier    Courier     `json:"courier"`
	OrderItems []OrderItem `json:"order_items"`
	Total      uint        `gorm:"not null" json:"total"`
	Address    string      `json:"address"`
	Status     string      `gorm:"not null" json:"status"`
}
