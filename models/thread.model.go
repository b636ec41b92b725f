package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ThreadMessage is one follow-up appended under a ticket after creation.
// Entries are append-only; ordering is creation order.
type ThreadMessage struct {
	gorm.Model
	TicketRef uint           `json:"ticket_ref" gorm:"not null;index"` // Ticket primary key
	Action    string         `json:"action" gorm:"default:'Received'"`
	Sender    string         `json:"sender"` // citizen phone
	MsgType   string         `json:"msg_type"`
	Payload   datatypes.JSON `json:"payload"`
}
