// Package entity defines the domain models for the ngos feature.
package entity

// NGO represents a partner organization that picks up donated medicine.
// Only active NGOs may be referenced by new donation requests.
type NGO struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:255;not null" json:"name"`
	ContactEmail string `gorm:"size:255;not null" json:"contactEmail"`
	ContactPhone string `gorm:"size:50;not null" json:"contactPhone"`
	Address      string `gorm:"size:500;not null" json:"address"`
	Active       bool   `gorm:"not null;default:true" json:"active"`
}
