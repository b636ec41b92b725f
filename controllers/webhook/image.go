package webhookControllers

import (
	"log"
	"zpbot/middleware"
	"zpbot/services/openai"
	"zpbot/utils"
	webhookValidators "zpbot/validators/webhook"
)

// handleImage persists the photo, then either attaches it to the citizen's
// open ticket or runs vision extraction and starts a draft complaint.
func (ctl *Controller) handleImage(event *webhookValidators.Event) {
	log.Printf("IMAGE from %s, mediaId => %s", event.From, event.MediaID)

	apologize := func() {
		ctl.sendBilingual(event.From, "",
			"छायाचित्रावर प्रक्रिया करताना त्रुटी. पुन्हा प्रयत्न करा.",
			"Error processing your image. Please try again.")
	}

	mediaURL, err := ctl.WA.ResolveMediaURL(event.MediaID)
	if err != nil {
		log.Printf("Error resolving image media: %v", err)
		apologize()
		return
	}
	data, err := ctl.WA.DownloadMedia(mediaURL)
	if err != nil {
		log.Printf("Error downloading image: %v", err)
		apologize()
		return
	}

	fileName, err := utils.SaveImage(ctl.Cfg.MediaDir, data)
	if err != nil {
		log.Printf("Error storing image: %v", err)
		apologize()
		return
	}
	imageURL, err := middleware.BuildMediaURL(ctl.Cfg, fileName)
	if err != nil {
		log.Printf("Error signing image url: %v", err)
		apologize()
		return
	}

	tickets, err := ctl.Store.FindActiveTickets(event.From, "")
	if err != nil {
		log.Printf("Error finding active tickets: %v", err)
		apologize()
		return
	}

	if len(tickets) > 0 {
		latest := tickets[0]
		if ctl.appendToThread(&latest, event.From, "image", map[string]interface{}{
			"image": map[string]string{"url": imageURL},
		}) {
			ctl.sendBilingual(event.From, "",
				"हे छायाचित्र विद्यमान तक्रारीत जोडले आहे.",
				"Your image is attached to the existing complaint.")
		} else {
			apologize()
		}
		return
	}

	ctl.sendBilingual(event.From, "",
		"छायाचित्र तपासत आहे...",
		"Analyzing the image...")

	complaint, err := ctl.AI.ExtractComplaintFromImage(imageURL)
	if err != nil {
		log.Printf("Error analyzing image: %v", err)
		apologize()
		return
	}
	log.Printf("Image complaint => %s", complaint)

	if openai.ExtractionIrrelevant(complaint) {
		ctl.sendBilingual(event.From, "",
			"मला यामध्ये झेडपी तक्रार दिसली नाही. कृपया स्पष्ट करा.",
			"No municipal issue detected. Please clarify.")
		return
	}

	label, err := ctl.AI.ClassifyDepartment(complaint)
	if err != nil {
		log.Printf("Error classifying image complaint: %v", err)
		apologize()
		return
	}
	if !label.IsComplaint() {
		ctl.sendBilingual(event.From, complaint,
			"ही माहिती झेडपी तक्रारीशी संबंधित नाही असे वाटते. कृपया स्पष्ट करा.",
			"Doesn't seem like a ZP Pune complaint. Please clarify.")
		return
	}

	ctl.createComplaint(complaint, event.From, label.Department, fileName)
}
