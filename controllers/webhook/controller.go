package webhookControllers

import (
	"sync"
	"zpbot/config"
	"zpbot/services/geocode"
	"zpbot/services/openai"
	"zpbot/store"
)

// Transport is the outbound messaging contract (WhatsApp Cloud API).
type Transport interface {
	SendText(to, body string) error
	SendImage(to, imageURL, caption string) error
	SendInteractive(data map[string]interface{}) error
	MarkRead(messageID string) error
	ResolveMediaURL(mediaID string) (string, error)
	DownloadMedia(url string) ([]byte, error)
}

// Analyzer covers the language model calls the pipeline depends on.
type Analyzer interface {
	AnswerKnowledgeBase(query, language string) (string, error)
	ClassifyDepartment(msg string) (openai.Label, error)
	Transcribe(localPath string) (string, error)
	ExtractComplaintFromAudio(transcript string) (string, error)
	ExtractComplaintFromImage(imageURL string) (string, error)
	ExtractLocationPhrase(msg string) (string, error)
}

// Geocoder resolves location phrases and coordinates.
type Geocoder interface {
	Forward(phrase string) (*geocode.Result, error)
	Reverse(lat, lng float64) (string, error)
}

// Controller handles inbound webhook events. All collaborators are injected
// at construction.
type Controller struct {
	Cfg   *config.Config
	Store store.Store
	WA    Transport
	AI    Analyzer
	Geo   Geocoder

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(cfg *config.Config, st store.Store, wa Transport, ai Analyzer, geo Geocoder) *Controller {
	return &Controller{
		Cfg:   cfg,
		Store: st,
		WA:    wa,
		AI:    ai,
		Geo:   geo,
		locks: make(map[string]*sync.Mutex),
	}
}

// lockCitizen serializes event processing per citizen so near-simultaneous
// deliveries (a text and a location pin) cannot race on the most-recent
// draft or ticket selection.
func (ctl *Controller) lockCitizen(phone string) func() {
	ctl.mu.Lock()
	lock, ok := ctl.locks[phone]
	if !ok {
		lock = &sync.Mutex{}
		ctl.locks[phone] = lock
	}
	ctl.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
