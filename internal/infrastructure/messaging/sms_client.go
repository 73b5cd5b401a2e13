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

var ErrMissingSMSGatewayConfig = errors.New("missing SMS_GATEWAY_URL or SMS_GATEWAY_TOKEN")

// SMSClient posts plain text messages to the carrier aggregator's HTTP API.
type SMSClient struct {
	endpoint string
	token    string
	http     *http.Client
}

func NewSMSClient(endpoint, token string) (*SMSClient, error) {
	if endpoint == "" || token == "" {
		return nil, ErrMissingSMSGatewayConfig
	}
	return &SMSClient{
		endpoint: endpoint,
		token:    token,
		http:     &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type smsRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

func (c *SMSClient) Send(ctx context.Context, phone, body string) error {
	payload, err := json.Marshal(smsRequest{To: phone, Message: body})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sms gateway: unexpected status %d: %s", resp.StatusCode, detail)
	}
	log.Printf("[messaging][sms] message sent chars=%d", len(body))
	return nil
}
