package utils

import (
	"log"
	"time"
	"zpbot/store"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// TextSender is the transport slice the scheduler needs.
type TextSender interface {
	SendText(to, body string) error
}

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[DRAFT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartDraftScheduler nudges citizens whose draft complaints from before
// today still have no location. It never closes tickets or drops drafts.
func StartDraftScheduler(st store.Store, sender TextSender) *cron.Cron {
	c := cron.New()

	// 09:00 daily
	_, err := c.AddFunc("0 9 * * *", func() {
		remindStaleDrafts(st, sender)
	})
	if err != nil {
		logScheduler("Error registering reminder job: " + err.Error())
		return c
	}

	c.Start()
	logScheduler("Draft reminder scheduler started")
	return c
}

func remindStaleDrafts(st store.Store, sender TextSender) {
	cutoff := now.BeginningOfDay()

	drafts, err := st.FindStaleDrafts(cutoff)
	if err != nil {
		logScheduler("Error fetching stale drafts: " + err.Error())
		return
	}

	// One nudge per citizen per run, for their newest stale draft.
	reminded := make(map[string]bool)
	for _, draft := range drafts {
		if reminded[draft.CreatedBy] {
			continue
		}
		reminded[draft.CreatedBy] = true

		var body string
		if IsMarathi(draft.Name) {
			body = "तुमची तक्रार लोकेशनच्या प्रतीक्षेत आहे. कृपया लोकेशन पिन करा."
		} else {
			body = "Your complaint is still waiting for a location. Please share a pinned location."
		}
		if err := sender.SendText(draft.CreatedBy, body); err != nil {
			logScheduler("Error sending reminder to " + draft.CreatedBy + ": " + err.Error())
			continue
		}
		logScheduler("Reminded " + draft.CreatedBy + " about draft " + draft.SiteID)
	}
}
