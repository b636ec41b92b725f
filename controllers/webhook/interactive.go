package webhookControllers

import (
	"log"
	"zpbot/utils"
	webhookValidators "zpbot/validators/webhook"
)

// handleParkingMessage sends the UPI order-details request for a parking
// text that matched no site record.
func (ctl *Controller) handleParkingMessage(msgBody, from string) {
	log.Printf("Parking => %s", msgBody)
	parkingOrderID := utils.GenerateRandomString(7)

	paymentData := map[string]interface{}{
		"messaging_product": "whatsapp",
		"recipient_type":    "individual",
		"to":                from,
		"type":              "interactive",
		"interactive": map[string]interface{}{
			"type": "order_details",
			"header": map[string]interface{}{
				"type": "image",
				"image": map[string]interface{}{
					"link": "https://static.vecteezy.com/system/resources/previews/019/787/048/original/car-parking-icon-parking-space-on-transparent-background-free-png.png",
				},
			},
			"body":   map[string]interface{}{"text": "ZP Pune Parking Payment"},
			"footer": map[string]interface{}{"text": "Parking lot: PARK1234"},
			"action": map[string]interface{}{
				"name": "review_and_pay",
				"parameters": map[string]interface{}{
					"reference_id":          parkingOrderID,
					"type":                  "digital-goods",
					"payment_type":          "upi",
					"payment_configuration": "saijyotupi",
					"currency":              "INR",
					"total_amount":          map[string]interface{}{"value": 500, "offset": 100},
					"order": map[string]interface{}{
						"status": "pending",
						"items": []map[string]interface{}{
							{
								"retailer_id": "1234567",
								"name":        "Parking Lot: PARK1234",
								"amount":      map[string]interface{}{"value": 750, "offset": 100},
								"sale_amount": map[string]interface{}{"value": 500, "offset": 100},
								"quantity":    1,
							},
						},
						"subtotal": map[string]interface{}{"value": 500, "offset": 100},
					},
				},
			},
		},
	}

	if err := ctl.WA.SendInteractive(paymentData); err != nil {
		log.Printf("Error parkingPayment => %v", err)
		return
	}
	log.Printf("Sent parking payment request => %s", from)
}

// handleInteractive acknowledges structured replies. Reserved for the
// parking pass flow; nothing to persist yet.
func (ctl *Controller) handleInteractive(event *webhookValidators.Event) {
	log.Printf("INTERACTIVE => structured reply from %s", event.From)
}
