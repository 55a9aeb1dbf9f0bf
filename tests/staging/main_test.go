//go:build staging

package staging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	stagingURL string
	client     *http.Client
)

func TestMain(m *testing.M) {
	// Get API URL from environment or default to localhost
	stagingURL = os.Getenv("API_URL")
	if stagingURL == "" {
		stagingURL = "http://localhost:8080"
	}

	client = &http.Client{
		Timeout: 10 * time.Second,
	}

	os.Exit(m.Run())
}

// makeRequest calls the staging server as actor. An empty actor is anonymous.
func makeRequest(t *testing.T, method, path, actor string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		bodyReader = bytes.NewReader(jsonBody)
	}

	url := fmt.Sprintf("%s%s", stagingURL, path)
	req, err := http.NewRequest(method, url, bodyReader)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if actor != "" {
		req.Header.Set("X-User-ID", actor)
	}

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		apiKey = "test-api-key" // Default for local testing if not specified
	}
	req.Header.Set("X-API-Key", apiKey)

	resp, err := client.Do(req)
	require.NoError(t, err, "request to %s", url)

	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	return resp, respBody
}

// dataResponse mirrors the API envelope
type dataResponse struct {
	Message string          `json:"message"`
	Version uint64          `json:"version"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, body []byte) dataResponse {
	t.Helper()
	var resp dataResponse
	require.NoError(t, json.Unmarshal(body, &resp), string(body))
	return resp
}
