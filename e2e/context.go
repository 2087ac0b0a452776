package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// TestContext carries one scenario's HTTP state against a running server.
type TestContext struct {
	baseURL    string
	client     *http.Client
	draftID    string
	lastStatus int
	lastBody   []byte
}

func NewTestContext(baseURL string) *TestContext {
	return &TestContext{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Reset clears state between scenarios.
func (tc *TestContext) Reset() {
	tc.draftID = ""
	tc.lastStatus = 0
	tc.lastBody = nil
}

func (tc *TestContext) Do(method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, tc.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	tc.lastStatus = resp.StatusCode
	tc.lastBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	return nil
}

func (tc *TestContext) DraftID() string {
	return tc.draftID
}

func (tc *TestContext) SetDraftID(id string) {
	tc.draftID = id
}

func (tc *TestContext) GetLastResponseStatus() int {
	return tc.lastStatus
}

func (tc *TestContext) GetLastResponseBody() []byte {
	return tc.lastBody
}

// GetResponseField resolves a dotted path such as "record.household.spouses.0.name"
// in the last JSON response. Numeric segments index into arrays.
func (tc *TestContext) GetResponseField(path string) (any, error) {
	var current any
	if err := json.Unmarshal(tc.lastBody, &current); err != nil {
		return nil, fmt.Errorf("response is not JSON: %w", err)
	}
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found at %q", path, segment)
			}
			current = value
		case []any:
			i, err := strconv.Atoi(segment)
			if err != nil || i < 0 || i >= len(node) {
				return nil, fmt.Errorf("index %q out of range for %q", segment, path)
			}
			current = node[i]
		default:
			return nil, fmt.Errorf("cannot descend into %q at %q", path, segment)
		}
	}
	return current, nil
}
