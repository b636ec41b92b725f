package store

import (
	"time"
	"zpbot/models"
)

// Store is the persistence contract used by the webhook controllers and the
// draft reminder scheduler. Lookups that miss return (nil, nil) rather than
// an error so callers can branch without sentinel checks.
type Store interface {
	// EnsureCitizen creates the citizen on first contact and refreshes the
	// display name when it changed.
	EnsureCitizen(phone, name string) error

	// FindInfrastructureByID looks a site up by its exact short code.
	FindInfrastructureByID(siteID string) (*models.Infrastructure, error)
	CreateInfrastructure(infra *models.Infrastructure) error
	// FinalizeInfrastructure attaches address and geo to a draft site and
	// clears its draft flag.
	FinalizeInfrastructure(id uint, address string, lat, lng float64) error
	// FindLatestDraft returns the citizen's most recently created draft site.
	FindLatestDraft(citizen string) (*models.Infrastructure, error)
	// FindStaleDrafts returns draft sites created before the cutoff.
	FindStaleDrafts(before time.Time) ([]models.Infrastructure, error)

	// FindActiveTickets returns the citizen's active tickets, most recent
	// first. An empty siteID matches any site.
	FindActiveTickets(citizen, siteID string) ([]models.Ticket, error)
	CreateTicket(siteID, citizen, ticketID string) error

	AddThreadMessage(msg *models.ThreadMessage) error
}
