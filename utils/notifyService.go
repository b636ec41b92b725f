package utils

import (
	"fmt"
	"log"
	"zpbot/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// NotifyDepartment emails the civic department inbox when a ticket is
// created. Best effort: failures are logged and never block the citizen
// reply, so callers run it in a goroutine.
func NotifyDepartment(cfg *config.Config, department, ticketID, complaint, address string) {
	if cfg.SendGridKey == "" || cfg.DeptEmailTo == "" {
		return
	}

	subject := fmt.Sprintf("New %s complaint => %s", department, ticketID)
	body := fmt.Sprintf(
		"Ticket: %s\nDepartment: %s\nComplaint: %s\nAddress: %s\n",
		ticketID, department, complaint, address,
	)

	from := mail.NewEmail("ZP Pune Chatbot", cfg.DeptEmailFrom)
	to := mail.NewEmail(department, cfg.DeptEmailTo)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	client := sendgrid.NewSendClient(cfg.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending department notification: %v", err)
		return
	}
	if resp.StatusCode >= 300 {
		log.Printf("Department notification failed: %d, %s", resp.StatusCode, resp.Body)
		return
	}
	log.Printf("Notified %s department for ticket %s", department, ticketID)
}
