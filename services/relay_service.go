// services/relay_service.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// RelayService forwards form submissions to the hosted form relay, which
// emails them to the school. The relay is opaque: we only look at the
// status code, never the body. There is no retry and, matching the site's
// behavior, no timeout.
type RelayService struct {
	endpoint string
	client   *http.Client
}

func NewRelayService(endpoint string) *RelayService {
	return &RelayService{
		endpoint: endpoint,
		client:   &http.Client{},
	}
}

// Send posts the payload as JSON and returns an error unless the relay
// answers with a 2xx status.
func (s *RelayService) Send(payload map[string]interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("relay returned status %d", resp.StatusCode)
	}
	return nil
}
