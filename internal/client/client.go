package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"noteboard/internal/config"
	"noteboard/internal/types"
)

const defaultBaseURL = "http://127.0.0.1:7799"

// Client is the typed HTTP client the UI talks to the server with. It
// satisfies both the notes API and the translation source the cards
// consume.
type Client struct {
	baseURL   string
	tokenPath string
	token     string
	http      *http.Client
}

func New() (*Client, error) {
	tokenPath, err := config.TokenPath()
	if err != nil {
		return nil, err
	}
	baseURL := defaultBaseURL
	if cfg, err := config.Load(); err == nil {
		baseURL = cfg.BaseURL()
	}
	c := &Client{
		baseURL:   baseURL,
		tokenPath: tokenPath,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	_ = c.loadToken()
	return c, nil
}

func NewWithBaseURL(baseURL, token string) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		tokenPath: "",
		token:     token,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, false, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListNotes(ctx context.Context) ([]types.Note, error) {
	var resp NotesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/notes", nil, true, &resp); err != nil {
		return nil, err
	}
	return resp.Notes, nil
}

func (c *Client) CreateNote(ctx context.Context, note types.Note) (*types.Note, error) {
	var resp types.Note
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/notes", note, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	if id <= 0 {
		return errors.New("note id is required")
	}
	path := fmt.Sprintf("/api/v1/notes/%d", id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, true, nil)
}

func (c *Client) Settings(ctx context.Context) (*types.Settings, error) {
	var resp types.Settings
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/settings", nil, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateSettings(ctx context.Context, settings types.Settings) (*types.Settings, error) {
	var resp types.Settings
	if err := c.doJSON(ctx, http.MethodPatch, "/api/v1/settings", settings, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ActiveLocale resolves the server-side locale cards bootstrap with.
func (c *Client) ActiveLocale(ctx context.Context) (string, error) {
	settings, err := c.Settings(ctx)
	if err != nil {
		return "", err
	}
	locale := strings.TrimSpace(settings.Locale)
	if locale == "" {
		locale = types.DefaultLocale
	}
	return locale, nil
}

// Translations fetches the message table for a locale. Unknown locales
// come back as an empty table, never an error.
func (c *Client) Translations(ctx context.Context, locale string) (map[string]string, error) {
	if strings.TrimSpace(locale) == "" {
		return nil, errors.New("locale is required")
	}
	var resp TranslationsResponse
	path := "/api/v1/translations/" + strings.TrimSpace(locale)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, true, &resp); err != nil {
		return nil, err
	}
	return resp.Translations, nil
}

func (c *Client) ShutdownDaemon(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/v1/shutdown", nil, true, nil)
}

// EnsureDaemon makes sure a healthy daemon is reachable, starting one
// in the background if needed.
func (c *Client) EnsureDaemon(ctx context.Context) error {
	resp, err := c.Health(ctx)
	if err == nil && resp.OK {
		return nil
	}

	if err := StartBackgroundDaemon(); err != nil {
		return err
	}

	deadline := time.Now().Add(4 * time.Second)
	var lastErr error
	for time.Now().Before(deadline) {
		resp, err := c.Health(ctx)
		if err == nil && resp.OK {
			_ = c.loadToken()
			return nil
		}
		lastErr = err
		time.Sleep(150 * time.Millisecond)
	}
	if lastErr == nil {
		lastErr = errors.New("daemon not healthy after start")
	}
	return lastErr
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, requireAuth bool, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requireAuth {
		if err := c.ensureToken(); err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) ensureToken() error {
	if strings.TrimSpace(c.token) == "" {
		if err := c.loadToken(); err != nil {
			return err
		}
	}
	if strings.TrimSpace(c.token) == "" {
		return errors.New("token not found; is the server running?")
	}
	return nil
}

func (c *Client) loadToken() error {
	if c.tokenPath == "" {
		return nil
	}
	data, err := os.ReadFile(c.tokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			c.token = ""
			return nil
		}
		return err
	}
	c.token = strings.TrimSpace(string(data))
	return nil
}

func decodeAPIError(resp *http.Response) error {
	type errorPayload struct {
		Error string `json:"error"`
	}
	var payload errorPayload
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	if payload.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
}

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}
