package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mcoot/blockgame-go/internal/api/request"
	"github.com/mcoot/blockgame-go/internal/api/response"
	"github.com/mcoot/blockgame-go/internal/model"
)

// Client is an HTTP client for the leaderboard API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError represents an error response from the API
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an API error
type ErrorResponse struct {
	Error APIError `json:"error"`
}

func (e *APIError) String() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// Do performs an HTTP request
func (c *Client) Do(method, path string, body, result any) error {
	endpoint := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Code != "" {
			return fmt.Errorf("%s", errResp.Error.String())
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// Get performs a GET request
func (c *Client) Get(path string, result any) error {
	return c.Do(http.MethodGet, path, nil, result)
}

// Post performs a POST request
func (c *Client) Post(path string, body, result any) error {
	return c.Do(http.MethodPost, path, body, result)
}

// Health checks the server is up
func (c *Client) Health() (response.Health, error) {
	var result response.Health
	err := c.Get("/api/v1/health", &result)
	return result, err
}

// SubmitScore records a finished game on the server
func (c *Client) SubmitScore(player string, summary model.GameSummary) (response.Score, error) {
	var result response.Score
	err := c.Post("/api/v1/scores", request.SubmitScoreFromSummary(player, summary), &result)
	return result, err
}

// TopScores fetches the high-score table for mode. A zero limit uses the server default.
func (c *Client) TopScores(mode model.GameMode, limit int) (response.ScoreList, error) {
	q := url.Values{}
	q.Set("mode", string(mode))
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var result response.ScoreList
	err := c.Get("/api/v1/scores?"+q.Encode(), &result)
	return result, err
}

// DeleteScore removes a recorded game from the server
func (c *Client) DeleteScore(id string) error {
	return c.Do(http.MethodDelete, "/api/v1/scores/"+url.PathEscape(id), nil, nil)
}

// GetScore fetches a single recorded game
func (c *Client) GetScore(id string) (response.Score, error) {
	var result response.Score
	err := c.Get("/api/v1/scores/"+url.PathEscape(id), &result)
	return result, err
}
