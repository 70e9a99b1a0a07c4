package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client speaks the advisor REST surface with a bearer token.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// StreakState mirrors the server's streak wire shape.
type StreakState struct {
	CurrentStreak  int     `json:"current_streak"`
	LastActiveDate *string `json:"last_active_date"`
}

// ServerTask mirrors the server's task row.
type ServerTask struct {
	ID      uint    `json:"id"`
	Label   string  `json:"label"`
	Skill   *string `json:"skill"`
	Done    bool    `json:"done"`
	DueDate *string `json:"dueDate"`
}

// TaskPayload is the create-task request shape.
type TaskPayload struct {
	Label   string `json:"label"`
	Skill   string `json:"skill,omitempty"`
	DueDate string `json:"dueDate,omitempty"`
}

func (c *Client) Streak(ctx context.Context) (*StreakState, error) {
	var streak StreakState
	if err := c.do(ctx, http.MethodGet, "/api/streak", nil, &streak); err != nil {
		return nil, err
	}
	return &streak, nil
}

func (c *Client) AdvanceStreak(ctx context.Context) (*StreakState, error) {
	var streak StreakState
	if err := c.do(ctx, http.MethodPost, "/api/streak", map[string]interface{}{}, &streak); err != nil {
		return nil, err
	}
	return &streak, nil
}

func (c *Client) TasksDueToday(ctx context.Context) ([]ServerTask, error) {
	var tasks []ServerTask
	if err := c.do(ctx, http.MethodGet, "/api/tasks?due_date=today&limit=50", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) CreateTasks(ctx context.Context, payloads []TaskPayload) ([]ServerTask, error) {
	var tasks []ServerTask
	if err := c.do(ctx, http.MethodPost, "/api/tasks", payloads, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var failure struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		if failure.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, failure.Error)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return err
	}
	if out != nil && envelope.Data != nil {
		return json.Unmarshal(envelope.Data, out)
	}
	return nil
}
