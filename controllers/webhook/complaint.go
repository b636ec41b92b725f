package webhookControllers

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"zpbot/models"
	"zpbot/services/openai"
	"zpbot/utils"
)

// ticketOrDraft is the merge-vs-new decision for complaint-shaped text. A
// citizen with any active ticket gets the content appended to their newest
// one; otherwise a new complaint record is started.
func (ctl *Controller) ticketOrDraft(msgBody, from string, label *openai.Label) {
	tickets, err := ctl.Store.FindActiveTickets(from, "")
	if err != nil {
		log.Printf("Error finding active tickets: %v", err)
		ctl.sendBilingual(from, msgBody,
			"माफ करा, सध्या प्रक्रिया शक्य नाही. कृपया पुन्हा प्रयत्न करा.",
			"Sorry, we couldn't process that right now. Please try again later.")
		return
	}

	if len(tickets) > 0 {
		latest := tickets[0]
		if ctl.appendToThread(&latest, from, "text", map[string]interface{}{
			"text": map[string]string{"body": msgBody},
		}) {
			ctl.sendBilingual(from, msgBody,
				"तुमची माहिती विद्यमान तक्रारीत जोडली आहे.",
				"Your message has been added to the existing complaint.")
		} else {
			ctl.sendBilingual(from, msgBody,
				"माफ करा, सध्या प्रक्रिया शक्य नाही. कृपया पुन्हा प्रयत्न करा.",
				"Sorry, we couldn't process that right now. Please try again later.")
		}
		return
	}

	// No open ticket: classify now unless the caller already did.
	if label == nil {
		classified, err := ctl.AI.ClassifyDepartment(msgBody)
		if err != nil {
			log.Printf("Error classifying complaint: %v", err)
			ctl.sendBilingual(from, msgBody,
				"क्षमस्व, सध्या मी तुम्हाला मदत करू शकत नाही. कृपया पुन्हा प्रयत्न करा.",
				"Sorry, I'm unable to help at this moment. Please try again later.")
			return
		}
		label = &classified
	}
	log.Printf("Dept => %+v", *label)

	switch label.Kind {
	case openai.KindSmallTalk:
		ctl.sendBilingual(from, msgBody,
			"नमस्कार! तुम्हाला काय मदत हवी?",
			"Hello! How can I help you today?")
		return
	case openai.KindIrrelevant:
		ctl.sendBilingual(from, msgBody,
			"मला खात्री नाही की ही तक्रार आहे. झेडपी पुणे संबंधित काही माहिती हवी असेल तर सांगा.",
			"I'm not sure that's a municipal complaint. Ask me anything about ZP Pune if needed.")
		return
	}

	ctl.createComplaint(msgBody, from, label.Department, "")
}

// appendToThread writes one follow-up message under a ticket. It never
// creates tickets and never touches the active flag.
func (ctl *Controller) appendToThread(ticket *models.Ticket, from, msgType string, payload map[string]interface{}) bool {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error encoding thread payload: %v", err)
		return false
	}

	msg := models.ThreadMessage{
		TicketRef: ticket.ID,
		Action:    "Received",
		Sender:    from,
		MsgType:   msgType,
		Payload:   raw,
	}
	if err := ctl.Store.AddThreadMessage(&msg); err != nil {
		log.Printf("Error adding thread message: %v", err)
		return false
	}
	log.Printf("Added message to ticket => %s", ticket.TicketID)
	return true
}

// createComplaint starts a new complaint record. Text complaints get a
// location extraction pass and, when the phrase geocodes, are finalized with
// a ticket in the same operation. Image complaints (photo set) skip
// extraction and always stay draft pending a location pin.
func (ctl *Controller) createComplaint(complaint, from, department, photo string) {
	infra := models.Infrastructure{
		SiteID:     utils.GenerateRandomString(9),
		Name:       complaint,
		Type:       "Query",
		Department: department,
		CreatedBy:  from,
		Draft:      true,
		Photo:      photo,
	}
	fromImage := photo != ""

	if !fromImage {
		phrase, err := ctl.AI.ExtractLocationPhrase(complaint)
		if err != nil {
			log.Printf("Error extracting location: %v", err)
			ctl.sendBilingual(from, complaint,
				"लोकेशन मिळू शकत नाही. कृपया पिन करा.",
				"Couldn't parse location. Please pin it.")
			return
		}

		if strings.TrimSpace(phrase) != "NO_LOCATION" {
			result, err := ctl.Geo.Forward(phrase)
			if err != nil {
				log.Printf("Geo error => %v", err)
				ctl.sendBilingual(from, complaint,
					"लोकेशन मिळू शकत नाही. कृपया पिन करा.",
					"Couldn't parse location. Please pin it.")
				return
			}
			if result != nil {
				infra.Address = result.Address
				infra.Lat = result.Lat
				infra.Lng = result.Lng
				infra.Draft = false
			} else {
				ctl.sendBilingual(from, complaint,
					"पत्ता शोधता आला नाही. कृपया लोकेशन पिन करा.",
					"Unable to find the address. Please share pinned location.")
			}
		} else {
			ctl.sendBilingual(from, complaint,
				fmt.Sprintf("कृपया लोकेशन शेअर करा जेणेकरून %s विभाग त्वरित मदत करू शकेल.", department),
				fmt.Sprintf("Please share location so the %s department can assist quickly.", department))
		}
	}

	if err := ctl.Store.CreateInfrastructure(&infra); err != nil {
		log.Printf("Infra creation => %v", err)
		ctl.sendBilingual(from, complaint,
			"माफ करा, तक्रार तयार करता आली नाही. पुन्हा प्रयत्न करा.",
			"Sorry, couldn't create your complaint. Please try again later.")
		return
	}
	log.Printf("Complaint record => %s (draft=%v)", infra.SiteID, infra.Draft)

	if !infra.Draft {
		// Located synchronously: issue the ticket in the same operation.
		ticketID := utils.GenerateRandomString(7)
		if err := ctl.Store.CreateTicket(infra.SiteID, from, ticketID); err != nil {
			log.Printf("Error creating ticket: %v", err)
			ctl.sendBilingual(from, complaint,
				"माफ करा, तक्रार तयार करता आली नाही. पुन्हा प्रयत्न करा.",
				"Sorry, couldn't create your complaint. Please try again later.")
			return
		}
		ctl.sendBilingual(from, complaint,
			fmt.Sprintf("नवीन तक्रार तयार केली आहे: %s. लवकरच उपाययोजना केली जाईल.", ticketID),
			fmt.Sprintf("A new complaint is registered: %s. We'll address it soon.", ticketID))
		go utils.NotifyDepartment(ctl.Cfg, department, ticketID, complaint, infra.Address)
		return
	}

	if fromImage {
		ctl.sendBilingual(from, complaint,
			fmt.Sprintf("हे प्रकरण %s विभागाशी संबंधित आहे. कृपया लोकेशन शेअर करा.", department),
			fmt.Sprintf("This seems for the %s department. Please share location.", department))
		return
	}
	ctl.sendBilingual(from, complaint,
		"तुमची तक्रार नोंद झाली. लोकेशन आल्यानंतर पुढील कार्यवाही करु.",
		"Complaint noted. We'll proceed once we have your location.")
}
