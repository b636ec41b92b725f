package utils

import (
	"testing"
	"time"
	"zpbot/models"

	"github.com/stretchr/testify/assert"
)

type stubStore struct {
	drafts []models.Infrastructure
}

func (s *stubStore) EnsureCitizen(phone, name string) error { return nil }
func (s *stubStore) FindInfrastructureByID(siteID string) (*models.Infrastructure, error) {
	return nil, nil
}
func (s *stubStore) CreateInfrastructure(infra *models.Infrastructure) error { return nil }
func (s *stubStore) FinalizeInfrastructure(id uint, address string, lat, lng float64) error {
	return nil
}
func (s *stubStore) FindLatestDraft(citizen string) (*models.Infrastructure, error) {
	return nil, nil
}
func (s *stubStore) FindStaleDrafts(before time.Time) ([]models.Infrastructure, error) {
	return s.drafts, nil
}
func (s *stubStore) FindActiveTickets(citizen, siteID string) ([]models.Ticket, error) {
	return nil, nil
}
func (s *stubStore) CreateTicket(siteID, citizen, ticketID string) error { return nil }
func (s *stubStore) AddThreadMessage(msg *models.ThreadMessage) error    { return nil }

type stubSender struct {
	sent map[string][]string
}

func (s *stubSender) SendText(to, body string) error {
	if s.sent == nil {
		s.sent = make(map[string][]string)
	}
	s.sent[to] = append(s.sent[to], body)
	return nil
}

func TestRemindStaleDraftsOncePerCitizen(t *testing.T) {
	st := &stubStore{drafts: []models.Infrastructure{
		{SiteID: "AAAA11111", CreatedBy: "91981", Name: "रस्ता खराब"},
		{SiteID: "BBBB22222", CreatedBy: "91981", Name: "old one"},
		{SiteID: "CCCC33333", CreatedBy: "91999", Name: "streetlight out"},
	}}
	sender := &stubSender{}

	remindStaleDrafts(st, sender)

	assert.Len(t, sender.sent["91981"], 1)
	assert.Len(t, sender.sent["91999"], 1)
	// Reply language follows the draft's complaint text.
	assert.Contains(t, sender.sent["91981"][0], "लोकेशन")
	assert.Contains(t, sender.sent["91999"][0], "location")
}
