package webhookControllers

import (
	"fmt"
	"log"
	"zpbot/utils"
	webhookValidators "zpbot/validators/webhook"
)

// handleLocation finalizes the citizen's most recent draft complaint with
// the pinned coordinate and issues its ticket.
func (ctl *Controller) handleLocation(event *webhookValidators.Event) {
	lat, lng := event.Lat, event.Lng
	log.Printf("LOCATION => %s, lat=%f, lng=%f", event.From, lat, lng)

	apologize := func() {
		ctl.sendBilingual(event.From, "",
			"लोकेशन प्रक्रिया करताना त्रुटी. पुन्हा प्रयत्न करा.",
			"Error processing location. Please try again.")
	}

	draft, err := ctl.Store.FindLatestDraft(event.From)
	if err != nil {
		log.Printf("Error finding draft: %v", err)
		apologize()
		return
	}
	if draft == nil {
		ctl.sendBilingual(event.From, "",
			"तुमची तात्पुरती तक्रार आढळली नाही. कृपया समस्या सांगा.",
			"No draft request found. Please describe your issue.")
		return
	}

	// Reverse geocode before the write so a failure leaves the draft intact.
	address, err := ctl.Geo.Reverse(lat, lng)
	if err != nil {
		log.Printf("Loc error => %v", err)
		apologize()
		return
	}

	if err := ctl.Store.FinalizeInfrastructure(draft.ID, address, lat, lng); err != nil {
		log.Printf("Error finalizing infra: %v", err)
		apologize()
		return
	}
	log.Printf("Infra finalized => %s", draft.SiteID)

	ticketID := utils.GenerateRandomString(7)
	if err := ctl.Store.CreateTicket(draft.SiteID, event.From, ticketID); err != nil {
		log.Printf("Error creating ticket: %v", err)
		apologize()
		return
	}

	ctl.sendBilingual(event.From, "",
		fmt.Sprintf("तुमचे लोकेशन मिळाले. तक्रार (ID: %s) बनली आहे.", ticketID),
		fmt.Sprintf("Location received. Complaint (ID: %s) is created.", ticketID))

	go utils.NotifyDepartment(ctl.Cfg, draft.Department, ticketID, draft.Name, address)
}
