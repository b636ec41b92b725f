package webhookValidators

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp() (*fiber.App, *Event) {
	app := fiber.New()
	captured := &Event{}
	app.Post("/webhook", ParseWebhook(), func(c *fiber.Ctx) error {
		event := c.Locals("webhookEvent").(*Event)
		*captured = *event
		return c.SendStatus(fiber.StatusOK)
	})
	return app, captured
}

func post(app *fiber.App, body string) (int, error) {
	req := httptest.NewRequest("POST", "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		return 0, err
	}
	return resp.StatusCode, nil
}

const textEnvelope = `{
  "object": "whatsapp_business_account",
  "entry": [{"changes": [{"value": {
    "metadata": {"display_phone_number": "915550001111"},
    "contacts": [{"profile": {"name": "Asha"}}],
    "messages": [{
      "from": "919812345678",
      "id": "wamid.abc",
      "type": "text",
      "text": {"body": "  streetlight broken in Shirur  "}
    }]
  }}]}]
}`

func TestParseTextMessage(t *testing.T) {
	app, captured := testApp()

	code, err := post(app, textEnvelope)
	require.NoError(t, err)
	assert.Equal(t, 200, code)

	assert.Equal(t, "message", captured.Kind)
	assert.Equal(t, "919812345678", captured.From)
	assert.Equal(t, "Asha", captured.FromName)
	assert.Equal(t, "915550001111", captured.To)
	assert.Equal(t, "text", captured.MsgType)
	assert.Equal(t, "streetlight broken in Shirur", captured.Text)
}

func TestParseLocationMessage(t *testing.T) {
	app, captured := testApp()

	code, err := post(app, `{
	  "object": "whatsapp_business_account",
	  "entry": [{"changes": [{"value": {
	    "messages": [{
	      "from": "919812345678",
	      "id": "wamid.loc",
	      "type": "location",
	      "location": {"latitude": 18.82, "longitude": 74.37}
	    }]
	  }}]}]
	}`)
	require.NoError(t, err)
	assert.Equal(t, 200, code)

	assert.Equal(t, "location", captured.MsgType)
	assert.InDelta(t, 18.82, captured.Lat, 0.001)
	assert.InDelta(t, 74.37, captured.Lng, 0.001)
}

func TestParseImageMessage(t *testing.T) {
	app, captured := testApp()

	code, err := post(app, `{
	  "object": "whatsapp_business_account",
	  "entry": [{"changes": [{"value": {
	    "messages": [{
	      "from": "919812345678",
	      "id": "wamid.img",
	      "type": "image",
	      "image": {"id": "media987"}
	    }]
	  }}]}]
	}`)
	require.NoError(t, err)
	assert.Equal(t, 200, code)
	assert.Equal(t, "media987", captured.MediaID)
}

func TestParseStatusUpdate(t *testing.T) {
	app, captured := testApp()

	code, err := post(app, `{
	  "object": "whatsapp_business_account",
	  "entry": [{"changes": [{"value": {
	    "statuses": [{"status": "delivered"}]
	  }}]}]
	}`)
	require.NoError(t, err)
	assert.Equal(t, 200, code)
	assert.Equal(t, "status", captured.Kind)
	assert.Equal(t, "delivered", captured.Status)
}

func TestMalformedEnvelopeRejected(t *testing.T) {
	app, _ := testApp()

	code, err := post(app, `{"unexpected": true}`)
	require.NoError(t, err)
	assert.Equal(t, 404, code)

	code, err = post(app, `not json at all`)
	require.NoError(t, err)
	assert.Equal(t, 404, code)
}

func TestEmptyChangesAcknowledged(t *testing.T) {
	app, captured := testApp()

	code, err := post(app, `{"object": "whatsapp_business_account", "entry": []}`)
	require.NoError(t, err)
	assert.Equal(t, 200, code)
	assert.Empty(t, captured.Kind) // handler never reached
}
