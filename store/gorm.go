package store

import (
	"errors"
	"log"
	"time"
	"zpbot/models"

	"gorm.io/gorm"
)

// GormStore implements Store on top of a GORM connection.
type GormStore struct {
	Db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{Db: db}
}

func (s *GormStore) EnsureCitizen(phone, name string) error {
	var citizen models.Citizen
	err := s.Db.Where("phone = ?", phone).First(&citizen).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		citizen = models.Citizen{Phone: phone, Name: name}
		if err := s.Db.Create(&citizen).Error; err != nil {
			return err
		}
		log.Printf("Created new citizen => %s", phone)
		return nil
	}
	if err != nil {
		return err
	}
	if name != "" && citizen.Name != name {
		return s.Db.Model(&citizen).Update("name", name).Error
	}
	return nil
}

func (s *GormStore) FindInfrastructureByID(siteID string) (*models.Infrastructure, error) {
	var infra models.Infrastructure
	err := s.Db.Where("site_id = ?", siteID).First(&infra).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &infra, nil
}

func (s *GormStore) CreateInfrastructure(infra *models.Infrastructure) error {
	return s.Db.Create(infra).Error
}

func (s *GormStore) FinalizeInfrastructure(id uint, address string, lat, lng float64) error {
	return s.Db.Model(&models.Infrastructure{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"address": address,
			"lat":     lat,
			"lng":     lng,
			"draft":   false,
		}).Error
}

func (s *GormStore) FindLatestDraft(citizen string) (*models.Infrastructure, error) {
	var infra models.Infrastructure
	err := s.Db.Where("created_by = ? AND draft = ?", citizen, true).
		Order("created_at desc").
		First(&infra).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &infra, nil
}

func (s *GormStore) FindStaleDrafts(before time.Time) ([]models.Infrastructure, error) {
	var drafts []models.Infrastructure
	err := s.Db.Where("draft = ? AND created_at < ?", true, before).
		Order("created_at desc").
		Find(&drafts).Error
	if err != nil {
		return nil, err
	}
	return drafts, nil
}

func (s *GormStore) FindActiveTickets(citizen, siteID string) ([]models.Ticket, error) {
	db := s.Db.Where("citizen = ? AND active = ?", citizen, true)
	if siteID != "" {
		db = db.Where("site_id = ?", siteID)
	}

	var tickets []models.Ticket
	if err := db.Order("created_at desc").Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (s *GormStore) CreateTicket(siteID, citizen, ticketID string) error {
	ticket := models.Ticket{
		TicketID: ticketID,
		SiteID:   siteID,
		Citizen:  citizen,
		Active:   true,
	}
	if err := s.Db.Create(&ticket).Error; err != nil {
		return err
	}
	log.Printf("Created ticket => %s, site => %s", ticketID, siteID)
	return nil
}

func (s *GormStore) AddThreadMessage(msg *models.ThreadMessage) error {
	return s.Db.Create(msg).Error
}
