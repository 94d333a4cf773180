// Package client is a small SDK for the meetings API, shaped for embedding in
// CLI tools and UI frontends.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultTimeout = 15 * time.Second

	// Picker data (contacts, leads) changes rarely; cache it briefly so a
	// form being opened repeatedly does not hammer the API.
	optionsCacheTTL = 5 * time.Minute

	contactsCacheKey = "contacts"
	leadsCacheKey    = "leads"
)

// APIError carries the status and message from an error envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	cache      *gocache.Cache
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		cache:      gocache.New(optionsCacheTTL, 10*time.Minute),
	}
}

// SetToken installs the bearer credential used on every subsequent call.
func (c *Client) SetToken(token string) {
	c.token = token
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

// Login authenticates and installs the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var res LoginResult
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &res)
	if err != nil {
		return nil, err
	}
	c.token = res.AccessToken
	return &res, nil
}

func (c *Client) AddMeeting(ctx context.Context, input MeetingInput) (*Meeting, error) {
	var res Meeting
	if err := c.do(ctx, http.MethodPost, "/api/meeting/add", input, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateMeeting(ctx context.Context, id string, input MeetingInput) (*Meeting, error) {
	var res Meeting
	if err := c.do(ctx, http.MethodPost, "/api/meeting/update/"+id, input, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ListMeetings(ctx context.Context, opts ListOptions) (*MeetingList, error) {
	params := url.Values{}
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.CreatedBy != "" {
		params.Set("createdBy", opts.CreatedBy)
	}
	if opts.Related != "" {
		params.Set("related", opts.Related)
	}
	if opts.Agenda != "" {
		params.Set("agenda", opts.Agenda)
	}

	path := "/api/meeting"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var res MeetingList
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ViewMeeting(ctx context.Context, id string) (*Meeting, error) {
	var res Meeting
	if err := c.do(ctx, http.MethodGet, "/api/meeting/view/"+id, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteMeeting(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/meeting/delete/"+id, nil, nil)
}

func (c *Client) DeleteManyMeetings(ctx context.Context, ids []string) (int64, error) {
	var res struct {
		DeletedCount int64 `json:"deletedCount"`
	}
	err := c.do(ctx, http.MethodPost, "/api/meeting/deleteMany", map[string][]string{"ids": ids}, &res)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Contacts returns the contact picker options, served from cache when fresh.
func (c *Client) Contacts(ctx context.Context) ([]Contact, error) {
	if cached, ok := c.cache.Get(contactsCacheKey); ok {
		return cached.([]Contact), nil
	}

	var res []Contact
	if err := c.do(ctx, http.MethodGet, "/api/contact", nil, &res); err != nil {
		return nil, err
	}
	c.cache.Set(contactsCacheKey, res, gocache.DefaultExpiration)
	return res, nil
}

// Leads returns the lead picker options, served from cache when fresh.
func (c *Client) Leads(ctx context.Context) ([]Lead, error) {
	if cached, ok := c.cache.Get(leadsCacheKey); ok {
		return cached.([]Lead), nil
	}

	var res []Lead
	if err := c.do(ctx, http.MethodGet, "/api/lead", nil, &res); err != nil {
		return nil, err
	}
	c.cache.Set(leadsCacheKey, res, gocache.DefaultExpiration)
	return res, nil
}
