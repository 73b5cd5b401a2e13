package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"frota_cobranca/internal/domain/entities"
	"frota_cobranca/internal/usecase/interfaces"
)

var (
	ErrMissingTraccarBaseURL = errors.New("missing TRACCAR_BASE_URL")
	ErrDeviceNotFound        = errors.New("tracker device not found")
)

const (
	commandEngineStop   = "engineStop"
	commandEngineResume = "engineResume"
)

// TraccarClient talks to the Traccar REST API with basic auth. Commands are
// synchronous: Traccar queues them to the device and answers once accepted.
type TraccarClient struct {
	baseURL  string
	user     string
	password string
	http     *http.Client
}

var _ interfaces.ITrackerClient = (*TraccarClient)(nil)

func NewTraccarClient(baseURL, user, password string) (*TraccarClient, error) {
	if baseURL == "" {
		return nil, ErrMissingTraccarBaseURL
	}
	return &TraccarClient{
		baseURL:  baseURL,
		user:     user,
		password: password,
		http:     &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func (c *TraccarClient) StopEngine(ctx context.Context, deviceID string) error {
	return c.sendCommand(ctx, deviceID, commandEngineStop)
}

func (c *TraccarClient) ResumeEngine(ctx context.Context, deviceID string) error {
	return c.sendCommand(ctx, deviceID, commandEngineResume)
}

type commandRequest struct {
	DeviceID int    `json:"deviceId"`
	Type     string `json:"type"`
}

func (c *TraccarClient) sendCommand(ctx context.Context, deviceID, commandType string) error {
	id, err := strconv.Atoi(deviceID)
	if err != nil {
		return fmt.Errorf("invalid tracker device id %q: %w", deviceID, err)
	}

	body, err := json.Marshal(commandRequest{DeviceID: id, Type: commandType})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/commands/send", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.user, c.password)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("traccar command %s for device %d: unexpected status %d", commandType, id, resp.StatusCode)
	}
	log.Printf("[tracker][traccar] command accepted device_id=%d type=%s", id, commandType)
	return nil
}

type deviceResponse struct {
	ID         int            `json:"id"`
	Attributes map[string]any `json:"attributes"`
}

// LastCommandState reads the device back from Traccar and derives the engine
// state from the engineBlocked attribute the firmware reports.
func (c *TraccarClient) LastCommandState(ctx context.Context, deviceID string) (entities.TrackerState, error) {
	id, err := strconv.Atoi(deviceID)
	if err != nil {
		return entities.TrackerStateNormal, fmt.Errorf("invalid tracker device id %q: %w", deviceID, err)
	}

	q := url.Values{"id": []string{strconv.Itoa(id)}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/devices?"+q.Encode(), nil)
	if err != nil {
		return entities.TrackerStateNormal, err
	}
	req.SetBasicAuth(c.user, c.password)

	resp, err := c.http.Do(req)
	if err != nil {
		return entities.TrackerStateNormal, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return entities.TrackerStateNormal, fmt.Errorf("traccar device read %d: unexpected status %d", id, resp.StatusCode)
	}

	var devices []deviceResponse
	if err := json.NewDecoder(resp.Body).Decode(&devices); err != nil {
		return entities.TrackerStateNormal, err
	}
	if len(devices) == 0 {
		return entities.TrackerStateNormal, ErrDeviceNotFound
	}

	if blocked, ok := devices[0].Attributes["engineBlocked"].(bool); ok && blocked {
		return entities.TrackerStateBlocked, nil
	}
	return entities.TrackerStateNormal, nil
}
