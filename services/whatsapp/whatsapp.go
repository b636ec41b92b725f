package whatsapp

import (
	"encoding/json"
	"fmt"
	"log"
	"zpbot/config"

	"github.com/go-resty/resty/v2"
)

const graphBaseURL = "https://graph.facebook.com/v19.0"

// Client talks to the WhatsApp Cloud API. Send failures are logged by the
// caller and never retried.
type Client struct {
	http          *resty.Client
	token         string
	phoneNumberID string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		http:          resty.New(),
		token:         cfg.WhatsAppToken,
		phoneNumberID: cfg.PhoneNumberID,
	}
}

func (c *Client) messagesURL() string {
	return fmt.Sprintf("%s/%s/messages", graphBaseURL, c.phoneNumberID)
}

// SendText sends a plain text message to the citizen.
func (c *Client) SendText(to, body string) error {
	data := map[string]interface{}{
		"messaging_product": "whatsapp",
		"recipient_type":    "individual",
		"to":                to,
		"type":              "text",
		"text":              map[string]interface{}{"body": body, "preview_url": false},
	}

	resp, err := c.http.R().
		SetHeader("Content-Type", "application/json").
		SetAuthToken(c.token).
		SetBody(data).
		Post(c.messagesURL())
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("sendText failed: %d, %s", resp.StatusCode(), resp.String())
	}
	log.Printf("Sent text to %s: %s", to, body)
	return nil
}

// SendImage sends an image by URL with an optional caption.
func (c *Client) SendImage(to, imageURL, caption string) error {
	data := map[string]interface{}{
		"messaging_product": "whatsapp",
		"recipient_type":    "individual",
		"to":                to,
		"type":              "image",
		"image":             map[string]interface{}{"link": imageURL, "caption": caption},
	}

	resp, err := c.http.R().
		SetHeader("Content-Type", "application/json").
		SetAuthToken(c.token).
		SetBody(data).
		Post(c.messagesURL())
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("sendImage failed: %d, %s", resp.StatusCode(), resp.String())
	}
	log.Printf("Sent image to %s", to)
	return nil
}

// SendInteractive sends a prebuilt interactive payload (order details etc).
func (c *Client) SendInteractive(data map[string]interface{}) error {
	resp, err := c.http.R().
		SetHeader("Content-Type", "application/json").
		SetAuthToken(c.token).
		SetBody(data).
		Post(c.messagesURL())
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("sendInteractive failed: %d, %s", resp.StatusCode(), resp.String())
	}
	log.Printf("Sent interactive message")
	return nil
}

// MarkRead flags an inbound message as read.
func (c *Client) MarkRead(messageID string) error {
	data := map[string]interface{}{
		"messaging_product": "whatsapp",
		"status":            "read",
		"message_id":        messageID,
	}

	resp, err := c.http.R().
		SetHeader("Content-Type", "application/json").
		SetAuthToken(c.token).
		SetBody(data).
		Post(c.messagesURL())
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("markRead failed: %d, %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// ResolveMediaURL exchanges a media ID for its short-lived download URL.
func (c *Client) ResolveMediaURL(mediaID string) (string, error) {
	resp, err := c.http.R().
		SetQueryParam("access_token", c.token).
		Get(fmt.Sprintf("%s/%s", graphBaseURL, mediaID))
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("resolveMediaUrl failed: %d, %s", resp.StatusCode(), resp.String())
	}

	var media struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(resp.Body(), &media); err != nil {
		return "", err
	}
	if media.URL == "" {
		return "", fmt.Errorf("resolveMediaUrl: empty url for media %s", mediaID)
	}
	return media.URL, nil
}

// DownloadMedia fetches the raw media bytes from a resolved URL.
func (c *Client) DownloadMedia(url string) ([]byte, error) {
	resp, err := c.http.R().
		SetAuthToken(c.token).
		Get(url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("downloadMedia failed: %d", resp.StatusCode())
	}
	return resp.Body(), nil
}
