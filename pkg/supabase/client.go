// Package supabase provides a thin client for the Supabase REST (PostgREST)
// and auth APIs used by the moodcast backend.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to a Supabase project over its REST and auth endpoints.
type Client struct {
	URL        string
	ServiceKey string
	HTTPClient *http.Client
}

// NewClient creates a new Supabase client.
func NewClient(url, serviceKey string) *Client {
	return &Client{
		URL:        url,
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// User represents a Supabase auth user.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// doRequest executes an HTTP request against the REST API with auth headers
// applied. A non-empty userToken is used for RLS; otherwise the service key
// acts as the bearer.
func (c *Client) doRequest(ctx context.Context, method, url string, query map[string]interface{}, body interface{}, userToken string) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, err
	}

	if len(query) > 0 {
		q := req.URL.Query()
		for key, value := range query {
			q.Add(key, fmt.Sprintf("%v", value))
		}
		req.URL.RawQuery = q.Encode()
	}

	req.Header.Set("apikey", c.ServiceKey)
	if userToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", userToken))
	} else {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.ServiceKey))
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("supabase error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// Query executes a filtered select on a table using the service key.
func (c *Client) Query(ctx context.Context, table string, query map[string]interface{}) ([]byte, error) {
	return c.QueryWithToken(ctx, table, query, "")
}

// QueryWithToken executes a filtered select with a user JWT for RLS.
func (c *Client) QueryWithToken(ctx context.Context, table string, query map[string]interface{}, userToken string) ([]byte, error) {
	url := fmt.Sprintf("%s/rest/v1/%s", c.URL, table)
	return c.doRequest(ctx, http.MethodGet, url, query, nil, userToken)
}

// Insert inserts a record into a table using the service key.
func (c *Client) Insert(ctx context.Context, table string, data interface{}) ([]byte, error) {
	return c.InsertWithToken(ctx, table, data, "")
}

// InsertWithToken inserts a record with a user JWT for RLS.
func (c *Client) InsertWithToken(ctx context.Context, table string, data interface{}, userToken string) ([]byte, error) {
	url := fmt.Sprintf("%s/rest/v1/%s", c.URL, table)
	return c.doRequest(ctx, http.MethodPost, url, nil, data, userToken)
}

// Update updates the record with the given id using the service key.
func (c *Client) Update(ctx context.Context, table, id string, data interface{}) ([]byte, error) {
	return c.UpdateWithToken(ctx, table, id, data, "")
}

// UpdateWithToken updates the record with the given id with a user JWT for RLS.
func (c *Client) UpdateWithToken(ctx context.Context, table, id string, data interface{}, userToken string) ([]byte, error) {
	url := fmt.Sprintf("%s/rest/v1/%s", c.URL, table)
	return c.doRequest(ctx, http.MethodPatch, url, map[string]interface{}{"id": "eq." + id}, data, userToken)
}

// Delete removes the record with the given id using the service key.
func (c *Client) Delete(ctx context.Context, table, id string) error {
	return c.DeleteWithToken(ctx, table, id, "")
}

// DeleteWithToken removes the record with the given id with a user JWT for RLS.
func (c *Client) DeleteWithToken(ctx context.Context, table, id string, userToken string) error {
	url := fmt.Sprintf("%s/rest/v1/%s", c.URL, table)
	_, err := c.doRequest(ctx, http.MethodDelete, url, map[string]interface{}{"id": "eq." + id}, nil, userToken)
	return err
}

// VerifyToken validates a user JWT against the Supabase auth endpoint and
// returns the authenticated user.
func (c *Client) VerifyToken(ctx context.Context, token string) (*User, error) {
	url := fmt.Sprintf("%s/auth/v1/user", c.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("token verification failed (status %d): %s", resp.StatusCode, string(body))
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}

	return &user, nil
}
