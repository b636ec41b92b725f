package models

import "gorm.io/gorm"

// Ticket is one open complaint by one citizen against one site.
// At most one ticket per (citizen, site) pair may be active at a time.
type Ticket struct {
	gorm.Model
	TicketID string `json:"ticket_id" gorm:"unique;not null"` // short shareable code
	SiteID   string `json:"site_id" gorm:"not null"`
	Citizen  string `json:"citizen" gorm:"not null"` // citizen phone
	Active   bool   `json:"active"`
}
