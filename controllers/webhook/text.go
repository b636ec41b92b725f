package webhookControllers

import (
	"fmt"
	"log"
	"strings"
	"zpbot/middleware"
	"zpbot/models"
	"zpbot/utils"
	webhookValidators "zpbot/validators/webhook"
)

func (ctl *Controller) handleText(event *webhookValidators.Event) {
	msgBody := strings.TrimSpace(event.Text)
	log.Printf(`TEXT from %s: "%s"`, event.From, msgBody)

	if event.MsgID != "" {
		if err := ctl.WA.MarkRead(event.MsgID); err != nil {
			log.Printf("Error marking message read: %v", err)
		}
	}

	// Site registry lookup runs before everything else: a message matching a
	// known site code is never treated as complaint text.
	infra, err := ctl.lookupSite(msgBody)
	if err != nil {
		log.Printf("Error looking up site: %v", err)
		ctl.sendBilingual(event.From, msgBody,
			"माफ करा, सध्या प्रक्रिया शक्य नाही. कृपया पुन्हा प्रयत्न करा.",
			"Sorry, we couldn't process that right now. Please try again later.")
		return
	}
	if infra != nil {
		ctl.handleKnownSite(infra, event.From, msgBody)
		return
	}

	if strings.HasPrefix(strings.ToUpper(msgBody), "PARK") {
		ctl.handleParkingMessage(msgBody, event.From)
		return
	}

	ctl.handleGeneralText(msgBody, event.From)
}

// lookupSite tries the whole message as a site code, then its first token,
// so "PARK1234 broken streetlight" still hits site PARK1234.
func (ctl *Controller) lookupSite(msgBody string) (*models.Infrastructure, error) {
	infra, err := ctl.Store.FindInfrastructureByID(msgBody)
	if err != nil || infra != nil {
		return infra, err
	}

	fields := strings.Fields(msgBody)
	if len(fields) < 2 {
		return nil, nil
	}
	return ctl.Store.FindInfrastructureByID(fields[0])
}

// handleKnownSite answers a reference to a registered site: show the site,
// then either open a ticket or point at the pending one.
func (ctl *Controller) handleKnownSite(infra *models.Infrastructure, from, msgBody string) {
	log.Printf("Found infra => %s", infra.SiteID)

	if infra.Photo != "" {
		photoURL, err := middleware.BuildMediaURL(ctl.Cfg, infra.Photo)
		if err == nil {
			err = ctl.WA.SendImage(from, photoURL, fmt.Sprintf("Active record => %s", infra.Name))
		}
		if err != nil {
			log.Printf("Error sending infra photo => %v", err)
		}
	} else {
		if err := ctl.WA.SendText(from, fmt.Sprintf("We have an active record for => %s", infra.Name)); err != nil {
			log.Printf("Error sending infra notice => %v", err)
		}
	}

	tickets, err := ctl.Store.FindActiveTickets(from, infra.SiteID)
	if err != nil {
		log.Printf("Error finding active tickets: %v", err)
		ctl.sendBilingual(from, msgBody,
			"माफ करा, सध्या प्रक्रिया शक्य नाही. कृपया पुन्हा प्रयत्न करा.",
			"Sorry, we couldn't process that right now. Please try again later.")
		return
	}

	if len(tickets) > 0 {
		ctl.sendBilingual(from, infra.Name,
			"तुमची तक्रार आधीच प्रलंबित आहे. आम्ही त्यावर कार्य करत आहोत.",
			"You already have an active complaint. We're working on it!")
		return
	}

	ticketID := utils.GenerateRandomString(7)
	if err := ctl.Store.CreateTicket(infra.SiteID, from, ticketID); err != nil {
		log.Printf("Error creating ticket: %v", err)
		ctl.sendBilingual(from, msgBody,
			"माफ करा, तक्रार तयार करता आली नाही. पुन्हा प्रयत्न करा.",
			"Sorry, couldn't create your complaint. Please try again later.")
		return
	}

	ctl.sendBilingual(from, infra.Name,
		fmt.Sprintf("नवीन तक्रार तयार केली आहे: %s. लवकरच उपाययोजना केली जाईल.", ticketID),
		fmt.Sprintf("A new complaint is registered: %s. We'll address it soon.", ticketID))

	go utils.NotifyDepartment(ctl.Cfg, infra.Department, ticketID, infra.Name, infra.Address)
}

// handleGeneralText routes free text: complaints go to the ticket decision,
// everything else gets a knowledge base answer.
func (ctl *Controller) handleGeneralText(msgBody, from string) {
	label, err := ctl.AI.ClassifyDepartment(msgBody)
	if err != nil {
		log.Printf("Error classifying text: %v", err)
		ctl.sendBilingual(from, msgBody,
			"क्षमस्व, सध्या मी तुम्हाला मदत करू शकत नाही. कृपया पुन्हा प्रयत्न करा.",
			"Sorry, I'm unable to help at this moment. Please try again later.")
		return
	}
	log.Printf("Department => %+v", label)

	if !label.IsComplaint() {
		ctl.answerFromKnowledgeBase(msgBody, from)
		return
	}

	ctl.ticketOrDraft(msgBody, from, &label)
}

func (ctl *Controller) answerFromKnowledgeBase(msgBody, from string) {
	language := "English"
	if utils.IsMarathi(msgBody) {
		language = "Marathi"
	}

	kbAnswer, err := ctl.AI.AnswerKnowledgeBase(msgBody, language)
	if err != nil {
		log.Printf("KB error => %v", err)
		ctl.sendBilingual(from, msgBody,
			"क्षमस्व, सध्या मी तुम्हाला मदत करू शकत नाही. कृपया पुन्हा प्रयत्न करा.",
			"Sorry, I'm unable to help at this moment. Please try again later.")
		return
	}

	if len(kbAnswer) < 2 {
		ctl.sendBilingual(from, msgBody,
			"मला याची माहिती नाही. कृपया स्पष्ट करा.",
			"I don't have info on that. Could you clarify?")
		return
	}

	if err := ctl.WA.SendText(from, kbAnswer); err != nil {
		log.Printf("Error sending KB answer: %v", err)
	}
}
