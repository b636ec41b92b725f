package webhookControllers

import (
	"log"
	"zpbot/utils"
)

// sendBilingual picks the Marathi reply when the probe text contains
// Devanagari, else the English reply. Callers pass an empty probe when no
// inbound text exists, which always selects English.
func (ctl *Controller) sendBilingual(to, probe, marathiReply, englishReply string) {
	reply := englishReply
	if utils.IsMarathi(probe) {
		reply = marathiReply
	}
	if err := ctl.WA.SendText(to, reply); err != nil {
		log.Printf("Error sending reply to %s: %v", to, err)
	}
}
