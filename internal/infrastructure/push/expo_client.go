package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ExpoClient posts push messages to the Expo push gateway. Delivery is best
// effort: the caller persists the notification record regardless of the
// gateway outcome.
type ExpoClient struct {
	endpoint   string
	httpClient *http.Client
}

type pushMessage struct {
	To    string                 `json:"to"`
	Title string                 `json:"title"`
	Body  string                 `json:"body"`
	Data  map[string]interface{} `json:"data,omitempty"`
	Sound string                 `json:"sound,omitempty"`
}

func NewExpoClient(endpoint string) *ExpoClient {
	return &ExpoClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send delivers one push message to a device token.
func (c *ExpoClient) Send(ctx context.Context, token, title, body string, data map[string]interface{}) error {
	if token == "" {
		return fmt.Errorf("empty push token")
	}

	payload, err := json.Marshal(pushMessage{
		To:    token,
		Title: title,
		Body:  body,
		Data:  data,
		Sound: "default",
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("push gateway returned %s: %s", resp.Status, string(respBody))
	}

	return nil
}
