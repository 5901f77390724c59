package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"maintenance-dashboard-backend/config"
)

// Client consumes the external backend API: dashboard stats,
// enterprise listing, alert CRUD and user management. It never owns
// the data; every call degrades gracefully so the dashboard keeps
// rendering when the backend is down.
type Client struct {
	cfg    *config.BackendConfig
	client *http.Client
}

// NewClient builds a Client from configuration.
func NewClient(cfg *config.BackendConfig) *Client {
	var transport http.RoundTripper = &http.Transport{}
	if cfg.HTTPProxy != "" {
		proxyURL, err := url.Parse(cfg.HTTPProxy)
		if err != nil {
			log.Printf("Warning: Invalid proxy URL %q: %v. Backend client will not use a proxy.", cfg.HTTPProxy, err)
		} else {
			transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
		}
	}

	return &Client{
		cfg: cfg,
		client: &http.Client{
			Transport: transport,
			Timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// Stats fetches the dashboard counters for an enterprise. On any
// failure it returns zero values together with the error, so callers
// can render zeros and surface a transient notification.
func (c *Client) Stats(ctx context.Context, enterpriseID int64) (Stats, error) {
	var stats Stats
	endpoint := fmt.Sprintf("%s/dashboard/api/stats?entrepriseId=%d", c.cfg.BaseURL, enterpriseID)
	if err := c.getJSON(ctx, endpoint, &stats); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// ListEnterprises fetches the backend's enterprise directory.
func (c *Client) ListEnterprises(ctx context.Context) ([]RemoteEnterprise, error) {
	var list []RemoteEnterprise
	if err := c.getJSON(ctx, c.cfg.BaseURL+"/ent/api/list", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListAlerts fetches the verification alerts of an enterprise.
func (c *Client) ListAlerts(ctx context.Context, enterpriseID int64) ([]Alert, error) {
	var list []Alert
	endpoint := fmt.Sprintf("%s/alertes/api/list?entrepriseId=%d", c.cfg.BaseURL, enterpriseID)
	if err := c.getJSON(ctx, endpoint, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// CreateAlert registers a new verification alert.
func (c *Client) CreateAlert(ctx context.Context, alert Alert) error {
	return c.postJSON(ctx, c.cfg.BaseURL+"/alertes", alert)
}

// UpdateAlert replaces an existing alert.
func (c *Client) UpdateAlert(ctx context.Context, alert Alert) error {
	endpoint := fmt.Sprintf("%s/alertes/%s/%s", c.cfg.BaseURL, alert.EntrepriseID, alert.AlerteID)
	return c.postJSON(ctx, endpoint, alert)
}

// DeleteAlert removes an alert.
func (c *Client) DeleteAlert(ctx context.Context, enterpriseID, alertID string) error {
	endpoint := fmt.Sprintf("%s/alertes/%s/%s/delete", c.cfg.BaseURL, enterpriseID, alertID)
	return c.postJSON(ctx, endpoint, nil)
}

// VerifyAlert marks an alert's machine as verified.
func (c *Client) VerifyAlert(ctx context.Context, enterpriseID, alertID string) error {
	endpoint := fmt.Sprintf("%s/alertes/%s/%s/verifie", c.cfg.BaseURL, enterpriseID, alertID)
	return c.postJSON(ctx, endpoint, nil)
}

// ListUsers fetches the backend's user accounts.
func (c *Client) ListUsers(ctx context.Context) ([]RemoteUser, error) {
	var list []RemoteUser
	if err := c.getJSON(ctx, c.cfg.BaseURL+"/api/users/list", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// CheckRole asks the backend for the caller's role.
func (c *Client) CheckRole(ctx context.Context) (RoleCheck, error) {
	var check RoleCheck
	if err := c.getJSON(ctx, c.cfg.BaseURL+"/api/users/check-role", &check); err != nil {
		return RoleCheck{}, err
	}
	return check, nil
}

// CreateUser registers a backend user account.
func (c *Client) CreateUser(ctx context.Context, user RemoteUser) error {
	return c.postJSON(ctx, c.cfg.BaseURL+"/api/users/create", user)
}

// GetUser fetches one backend user account.
func (c *Client) GetUser(ctx context.Context, userID string) (RemoteUser, error) {
	var user RemoteUser
	if err := c.getJSON(ctx, fmt.Sprintf("%s/api/users/%s", c.cfg.BaseURL, userID), &user); err != nil {
		return RemoteUser{}, err
	}
	return user, nil
}

// UpdateUser replaces a backend user account.
func (c *Client) UpdateUser(ctx context.Context, user RemoteUser) error {
	return c.postJSON(ctx, fmt.Sprintf("%s/api/users/%s", c.cfg.BaseURL, user.ID), user)
}

// DeleteUser removes a backend user account.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/api/users/%s", c.cfg.BaseURL, userID), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, nil)
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload any) error {
	var body io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request payload: %w", err)
		}
		body = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out any) error {
	for key, value := range c.cfg.Headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal backend response: %w", err)
	}
	return nil
}
