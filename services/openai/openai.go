package openai

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"zpbot/config"
	"zpbot/knowledgebase"

	"github.com/go-resty/resty/v2"
)

const apiBaseURL = "https://api.openai.com/v1"

// Client wraps the OpenAI chat completion and transcription endpoints used by
// the webhook pipeline.
type Client struct {
	http *resty.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(apiBaseURL).
			SetAuthToken(cfg.OpenAIKey),
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

func (c *Client) chat(req chatRequest) (string, error) {
	resp, err := c.http.R().
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/chat/completions")
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("openai chat failed: %d, %s", resp.StatusCode(), resp.String())
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai chat: empty choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

// AnswerKnowledgeBase answers a general query from the embedded ZP Pune
// knowledge base, in the citizen's language.
func (c *Client) AnswerKnowledgeBase(query, language string) (string, error) {
	systemPrompt := fmt.Sprintf(`
You are a ZP Pune chatbot with a knowledge base about ZP Pune and government schemes.
Use the provided JSON knowledge to answer user queries in a short, friendly manner.
Knowledge Base (in JSON):
%s

User language: %s.
If language = 'Marathi', answer in Marathi only.
If language = 'English', answer in English only.

If question not found in knowledge, respond politely that you don't have info but will find out.
Keep the response short and natural.
`, knowledgebase.JSON(), language)

	return c.chat(chatRequest{
		Model: "gpt-4o",
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: query},
		},
		MaxTokens:   300,
		Temperature: 0.4,
	})
}

// ClassifyDepartment labels citizen text as small talk, irrelevant, or a
// civic department. The response is validated into a Label at this boundary.
func (c *Client) ClassifyDepartment(msg string) (Label, error) {
	systemPrompt := `
You are a ZP Pune chatbot. Government related infrastructure or services
Possible dept: [Education, Primary School, Hospital, RTO, Irrigation, Water Conservation, Administration,
 Anti Corruption, NHAI, MSRCD, MMRDA, Metro, CIDCO, Housing, MHADA, Aadhaar, PDS,
 Food & Civil Supplies, Environment, Police, Fire, Water Supply, Sewage, Encroachment,
 EGS, MGNREGA, Energy, Electricity Board, Public Works, Roads, Street Light,
 Waste Management, Drainage, Agriculture, Animal Husbandry, Health, Garden & Tree,
 Property Tax, Politician Bribe, etc.].
If user text is small talk or greeting, respond "SMALL_TALK".
Otherwise if it's about these depts, respond exactly dept name, else "Irrelevant".
`

	raw, err := c.chat(chatRequest{
		Model: "gpt-4o",
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: msg},
		},
		MaxTokens:   300,
		Temperature: 0.2,
	})
	if err != nil {
		return Label{}, err
	}
	return ParseLabel(raw), nil
}

// Transcribe runs Whisper over a local audio file.
func (c *Client) Transcribe(localPath string) (string, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	resp, err := c.http.R().
		SetFileReader("file", filepath.Base(localPath), file).
		SetFormData(map[string]string{"model": "whisper-1"}).
		Post("/audio/transcriptions")
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("openai transcribe failed: %d, %s", resp.StatusCode(), resp.String())
	}

	var parsed struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return "", err
	}
	return parsed.Text, nil
}

// ExtractComplaintFromAudio condenses a transcript into a single complaint
// line, or "Irrelevant" when the transcript holds no municipal complaint.
func (c *Client) ExtractComplaintFromAudio(transcript string) (string, error) {
	systemPrompt := `
You are a bilingual ZP Pune chatbot analyzing audio transcript. If user text is small talk or greeting, respond "SMALL_TALK".
If there's a complaint about Government related infrastructure or services => single line complaint, else "Irrelevant".
`

	return c.chat(chatRequest{
		Model: "gpt-4o",
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: transcript},
		},
		MaxTokens:   300,
		Temperature: 0.3,
	})
}

// ExtractComplaintFromImage describes the municipal issue visible at the
// image URL as a single complaint line, or "Irrelevant".
func (c *Client) ExtractComplaintFromImage(imageURL string) (string, error) {
	content := []map[string]interface{}{
		{
			"type": "text",
			"text": `Write a single-sentence complaint about a Government related infrastructure or services issue in this image, or "Irrelevant".`,
		},
		{
			"type":      "image_url",
			"image_url": map[string]string{"url": imageURL},
		},
	}

	return c.chat(chatRequest{
		Model: "gpt-4o",
		Messages: []chatMessage{
			{Role: "user", Content: content},
		},
		MaxTokens: 300,
	})
}

// ExtractLocationPhrase pulls a recognizable place name out of complaint
// text, or returns "NO_LOCATION".
func (c *Client) ExtractLocationPhrase(msg string) (string, error) {
	systemPrompt := `
You are a bilingual location extraction system for ZP Pune.
Return recognized location if present, else 'NO_LOCATION'.
`

	return c.chat(chatRequest{
		Model: "gpt-4o",
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: msg},
		},
		MaxTokens:   300,
		Temperature: 0.3,
	})
}
