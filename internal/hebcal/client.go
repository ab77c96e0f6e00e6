// Package hebcal fetches halachic times, holiday listings and Hebrew date
// conversions from the Hebcal web service.
package hebcal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	apperrors "shul/internal/errors"
)

const (
	providerName   = "hebcal"
	defaultBaseURL = "https://www.hebcal.com"
	timezone       = "Asia/Jerusalem"
)

// Client is a thin HTTP client for the Hebcal API. Requests are bounded by a
// short timeout; callers cache responses, the client does not.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Hebcal client against the public service.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    defaultBaseURL,
	}
}

// NewClientWithBaseURL is used by tests to point at a stub server.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// Zmanim returns the raw daily halachic times payload for a coordinate+date.
func (c *Client) Zmanim(ctx context.Context, latitude, longitude, date string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("cfg", "json")
	q.Set("latitude", latitude)
	q.Set("longitude", longitude)
	q.Set("date", date)
	q.Set("tzid", timezone)
	return c.get(ctx, "/zmanim", q)
}

// Holidays returns the raw holiday listing for the current month at a
// coordinate.
func (c *Client) Holidays(ctx context.Context, latitude, longitude string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("v", "1")
	q.Set("cfg", "json")
	q.Set("maj", "on")
	q.Set("min", "on")
	q.Set("mod", "on")
	q.Set("nx", "on")
	q.Set("year", "now")
	q.Set("month", "now")
	q.Set("ss", "on")
	q.Set("s", "on")
	q.Set("M", "on")
	q.Set("geo", "pos")
	q.Set("latitude", latitude)
	q.Set("longitude", longitude)
	q.Set("tzid", timezone)
	return c.get(ctx, "/hebcal", q)
}

// Converted is the part of the converter response the site shows.
type Converted struct {
	Hebrew string `json:"hebrew"`
	Hy     int    `json:"hy"`
	Hm     string `json:"hm"`
	Hd     int    `json:"hd"`
}

// ConvertToHebrew resolves the Hebrew date for a Gregorian day.
func (c *Client) ConvertToHebrew(ctx context.Context, date time.Time) (*Converted, error) {
	q := url.Values{}
	q.Set("cfg", "json")
	q.Set("g2h", "1")
	q.Set("gy", fmt.Sprintf("%d", date.Year()))
	q.Set("gm", fmt.Sprintf("%d", int(date.Month())))
	q.Set("gd", fmt.Sprintf("%d", date.Day()))

	raw, err := c.get(ctx, "/converter", q)
	if err != nil {
		return nil, err
	}

	var converted Converted
	if err := json.Unmarshal(raw, &converted); err != nil {
		return nil, apperrors.NewGatewayError(providerName, fmt.Errorf("decode converter response: %w", err))
	}
	return &converted, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build hebcal request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewGatewayError(providerName, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewGatewayError(providerName, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewGatewayError(providerName,
			fmt.Errorf("status %d: %s", resp.StatusCode, body))
	}

	return json.RawMessage(body), nil
}
