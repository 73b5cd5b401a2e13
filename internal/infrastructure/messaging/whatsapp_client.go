package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

var ErrMissingWhatsAppCredentials = errors.New("missing WHATSAPP_PHONE_NUMBER_ID or WHATSAPP_ACCESS_TOKEN")

const (
	defaultGraphAPIBaseURL = "https://graph.facebook.com"
	defaultGraphAPIVersion = "v19.0"
	defaultTemplateLocale  = "pt_BR"
)

// WhatsAppClient sends pre-approved template messages through the WhatsApp
// Business Cloud API (Meta Graph API).
type WhatsAppClient struct {
	baseURL       string
	apiVersion    string
	phoneNumberID string
	accessToken   string
	http          *http.Client
}

func NewWhatsAppClient(phoneNumberID, accessToken string) (*WhatsAppClient, error) {
	if phoneNumberID == "" || accessToken == "" {
		return nil, ErrMissingWhatsAppCredentials
	}
	return &WhatsAppClient{
		baseURL:       defaultGraphAPIBaseURL,
		apiVersion:    defaultGraphAPIVersion,
		phoneNumberID: phoneNumberID,
		accessToken:   accessToken,
		http:          &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type templateParameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type templateComponent struct {
	Type       string              `json:"type"`
	Parameters []templateParameter `json:"parameters"`
}

type templateLanguage struct {
	Code string `json:"code"`
}

type templatePayload struct {
	Name       string              `json:"name"`
	Language   templateLanguage    `json:"language"`
	Components []templateComponent `json:"components,omitempty"`
}

type messageRequest struct {
	MessagingProduct string          `json:"messaging_product"`
	To               string          `json:"to"`
	Type             string          `json:"type"`
	Template         templatePayload `json:"template"`
}

func (c *WhatsAppClient) SendTemplate(ctx context.Context, phone, templateName string, params []string) error {
	payload := messageRequest{
		MessagingProduct: "whatsapp",
		To:               phone,
		Type:             "template",
		Template: templatePayload{
			Name:     templateName,
			Language: templateLanguage{Code: defaultTemplateLocale},
		},
	}
	if len(params) > 0 {
		component := templateComponent{Type: "body"}
		for _, p := range params {
			component.Parameters = append(component.Parameters, templateParameter{Type: "text", Text: p})
		}
		payload.Template.Components = []templateComponent{component}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/%s/%s/messages", c.baseURL, c.apiVersion, c.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("whatsapp template %s: unexpected status %d: %s", templateName, resp.StatusCode, detail)
	}
	log.Printf("[messaging][whatsapp] template sent template=%s", templateName)
	return nil
}
