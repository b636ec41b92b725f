package webhookControllers

import (
	"log"
	"zpbot/services/openai"
	"zpbot/utils"
	webhookValidators "zpbot/validators/webhook"
)

// handleAudio normalizes a voice note: fetch, transcribe, extract a
// complaint line, then run the usual ticket decision. The temp file is
// removed on every exit path.
func (ctl *Controller) handleAudio(event *webhookValidators.Event) {
	log.Printf("AUDIO from %s, mediaId => %s", event.From, event.MediaID)

	apologize := func() {
		ctl.sendBilingual(event.From, "",
			"माफ करा, ऑडिओ प्रक्रिया शक्य नाही. पुन्हा प्रयत्न करा किंवा मजकूरात सांगा.",
			"Sorry, could not process audio. Please try again or type your issue.")
	}

	mediaURL, err := ctl.WA.ResolveMediaURL(event.MediaID)
	if err != nil {
		log.Printf("Error resolving audio media: %v", err)
		apologize()
		return
	}
	data, err := ctl.WA.DownloadMedia(mediaURL)
	if err != nil {
		log.Printf("Error downloading audio: %v", err)
		apologize()
		return
	}

	localPath, cleanup, err := utils.SaveTempAudio(data, event.MediaID)
	if err != nil {
		log.Printf("Error saving audio: %v", err)
		apologize()
		return
	}
	defer cleanup()

	transcript, err := ctl.AI.Transcribe(localPath)
	if err != nil {
		log.Printf("Error transcribing audio: %v", err)
		apologize()
		return
	}
	log.Printf("Audio transcript => %s", transcript)

	complaint, err := ctl.AI.ExtractComplaintFromAudio(transcript)
	if err != nil {
		log.Printf("Error analyzing audio: %v", err)
		apologize()
		return
	}
	log.Printf("Audio complaint => %s", complaint)

	if openai.ExtractionIrrelevant(complaint) {
		ctl.sendBilingual(event.From, transcript,
			"तुमच्या ऑडिओत तक्रार आढळली नाही. कृपया लिखित स्वरूपात सांगा.",
			"I couldn't find a complaint in your audio. Please type it.")
		return
	}

	ctl.ticketOrDraft(complaint, event.From, nil)
}
