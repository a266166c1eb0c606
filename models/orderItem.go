package models

import "gorm.io/gorm"

// OrderItem is one order line. Exactly one of Product, Hamper or Consignment
// is set, depending on what was ordered.
type OrderItem struct {
	gorm.Model
	OrderID       uint         `json:"order_id"`
	ProductID     *uint        `json:"product_id"`
	Product       *Product     `json:"product,omitempty"`
	HamperID      *uint        `json:"hamper_id"`
	Hamper        *Hamper      `json:"hamper,omitempty"`
	ConsignmentID *uint        `json:"consignment_id"`
	Consignment   *Consignment `json:"consignment,omitempty"`
	Quantity      uint         `gorm:"not null" json:"quantity"`
	Subtotal      uint         `json:"subtotal"`
}
