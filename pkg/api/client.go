// Package api is the HTTP client for the Zentask settings backend. It
// is a thin gateway: one round trip per call, no retries, no caching.
// Failures propagate to the caller untranslated.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yasith-1/zentask-admin/pkg/models"
)

// Client is the settings API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// NewClient creates a new settings API client. baseURL is the endpoint
// prefix shared by all categories (e.g. "http://localhost:8080/api/setting").
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// suffix returns the path suffix of a category. The database category
// uses the bare endpoints; email and sms append their own segment.
func suffix(cat models.Category) string {
	switch cat {
	case models.CategoryDatabase:
		return ""
	case models.CategoryEmail:
		return "-email"
	case models.CategorySMS:
		return "-sms"
	default:
		return ""
	}
}

// messageResponse is the body returned by create/update/remove calls.
type messageResponse struct {
	Message string `json:"message"`
}

// List fetches the full saved collection of a category. No filtering or
// pagination happens here; paging is a presentation concern.
func (c *Client) List(ctx context.Context, cat models.Category) ([]models.SettingRecord, error) {
	switch cat {
	case models.CategoryDatabase:
		settings, err := c.ListDatabaseSettings(ctx)
		if err != nil {
			return nil, err
		}
		return databaseRecords(settings), nil
	case models.CategoryEmail:
		settings, err := c.ListEmailSettings(ctx)
		if err != nil {
			return nil, err
		}
		return emailRecords(settings), nil
	case models.CategorySMS:
		settings, err := c.ListSMSSettings(ctx)
		if err != nil {
			return nil, err
		}
		return smsRecords(settings), nil
	default:
		return nil, fmt.Errorf("list settings: unknown category %q", cat)
	}
}

// Create submits a new record and returns the server's success message.
func (c *Client) Create(ctx context.Context, cat models.Category, payload map[string]any) (string, error) {
	url := fmt.Sprintf("%s/add%s", c.baseURL, suffix(cat))

	var resp messageResponse
	if err := c.doRequest(ctx, http.MethodPost, url, payload, &resp); err != nil {
		return "", fmt.Errorf("create %s setting: %w", cat, err)
	}
	return resp.Message, nil
}

// Update replaces an existing record in full and returns the server's
// success message. The record id travels in the body.
func (c *Client) Update(ctx context.Context, cat models.Category, id int, payload map[string]any) (string, error) {
	url := fmt.Sprintf("%s/update%s", c.baseURL, suffix(cat))

	body := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		body[k] = v
	}
	body["id"] = id

	var resp messageResponse
	if err := c.doRequest(ctx, http.MethodPut, url, body, &resp); err != nil {
		return "", fmt.Errorf("update %s setting %d: %w", cat, id, err)
	}
	return resp.Message, nil
}

// Remove deletes a record by id.
func (c *Client) Remove(ctx context.Context, cat models.Category, id int) error {
	url := fmt.Sprintf("%s/remove%s/%d", c.baseURL, suffix(cat), id)

	if err := c.doRequest(ctx, http.MethodDelete, url, nil, nil); err != nil {
		return fmt.Errorf("remove %s setting %d: %w", cat, id, err)
	}
	return nil
}

// GetOne fetches a single record, used to pre-fill an edit form.
func (c *Client) GetOne(ctx context.Context, cat models.Category, id int) (*models.SettingRecord, error) {
	switch cat {
	case models.CategoryDatabase:
		s, err := c.GetDatabaseSetting(ctx, id)
		if err != nil {
			return nil, err
		}
		rec := s.Record()
		return &rec, nil
	case models.CategoryEmail:
		s, err := c.GetEmailSetting(ctx, id)
		if err != nil {
			return nil, err
		}
		rec := s.Record()
		return &rec, nil
	case models.CategorySMS:
		s, err := c.GetSMSSetting(ctx, id)
		if err != nil {
			return nil, err
		}
		rec := s.Record()
		return &rec, nil
	default:
		return nil, fmt.Errorf("get setting: unknown category %q", cat)
	}
}

// ListDatabaseSettings fetches all saved database settings.
func (c *Client) ListDatabaseSettings(ctx context.Context) ([]models.DatabaseSetting, error) {
	var settings []models.DatabaseSetting
	url := fmt.Sprintf("%s/get-all", c.baseURL)
	if err := c.doRequest(ctx, http.MethodGet, url, nil, &settings); err != nil {
		return nil, fmt.Errorf("list database settings: %w", err)
	}
	return settings, nil
}

// ListEmailSettings fetches all saved email settings.
func (c *Client) ListEmailSettings(ctx context.Context) ([]models.EmailSetting, error) {
	var settings []models.EmailSetting
	url := fmt.Sprintf("%s/get-all-email", c.baseURL)
	if err := c.doRequest(ctx, http.MethodGet, url, nil, &settings); err != nil {
		return nil, fmt.Errorf("list email settings: %w", err)
	}
	return settings, nil
}

// ListSMSSettings fetches all saved SMS settings.
func (c *Client) ListSMSSettings(ctx context.Context) ([]models.SMSSetting, error) {
	var settings []models.SMSSetting
	url := fmt.Sprintf("%s/get-all-sms", c.baseURL)
	if err := c.doRequest(ctx, http.MethodGet, url, nil, &settings); err != nil {
		return nil, fmt.Errorf("list sms settings: %w", err)
	}
	return settings, nil
}

// GetDatabaseSetting fetches one database setting by id.
func (c *Client) GetDatabaseSetting(ctx context.Context, id int) (*models.DatabaseSetting, error) {
	var setting models.DatabaseSetting
	url := fmt.Sprintf("%s/get/%d", c.baseURL, id)
	if err := c.doRequest(ctx, http.MethodGet, url, nil, &setting); err != nil {
		return nil, fmt.Errorf("get database setting %d: %w", id, err)
	}
	return &setting, nil
}

// GetEmailSetting fetches one email setting by id.
func (c *Client) GetEmailSetting(ctx context.Context, id int) (*models.EmailSetting, error) {
	var setting models.EmailSetting
	url := fmt.Sprintf("%s/get-email/%d", c.baseURL, id)
	if err := c.doRequest(ctx, http.MethodGet, url, nil, &setting); err != nil {
		return nil, fmt.Errorf("get email setting %d: %w", id, err)
	}
	return &setting, nil
}

// GetSMSSetting fetches one SMS setting by id.
func (c *Client) GetSMSSetting(ctx context.Context, id int) (*models.SMSSetting, error) {
	var setting models.SMSSetting
	url := fmt.Sprintf("%s/get-sms/%d", c.baseURL, id)
	if err := c.doRequest(ctx, http.MethodGet, url, nil, &setting); err != nil {
		return nil, fmt.Errorf("get sms setting %d: %w", id, err)
	}
	return &setting, nil
}

func databaseRecords(settings []models.DatabaseSetting) []models.SettingRecord {
	records := make([]models.SettingRecord, len(settings))
	for i, s := range settings {
		records[i] = s.Record()
	}
	return records
}

func emailRecords(settings []models.EmailSetting) []models.SettingRecord {
	records := make([]models.SettingRecord, len(settings))
	for i, s := range settings {
		records[i] = s.Record()
	}
	return records
}

func smsRecords(settings []models.SMSSetting) []models.SettingRecord {
	records := make([]models.SettingRecord, len(settings))
	for i, s := range settings {
		records[i] = s.Record()
	}
	return records
}

// doRequest performs an HTTP request and decodes the response.
func (c *Client) doRequest(ctx context.Context, method, url string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var msg messageResponse
		if json.Unmarshal(respBody, &msg) == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if result == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
