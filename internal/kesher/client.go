// Package kesher talks to the Kesher payment gateway: it builds the
// provider-specific request envelope, relays hosted-payment-page creation and
// read-only transaction/obligation queries, and normalizes provider failures.
package kesher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	apperrors "shul/internal/errors"
)

const providerName = "kesher"

// PaymentType selects a one-off charge or a recurring standing order.
type PaymentType string

const (
	PaymentTypeSingle    PaymentType = "single"
	PaymentTypeRecurring PaymentType = "recurring"
)

// RecurringConfig carries standing-order parameters.
type RecurringConfig struct {
	StartDate   string `json:"startDate,omitempty"` // YYYY-MM-DD, defaults to today
	EndDate     string `json:"endDate,omitempty"`
	ChargeDay   int    `json:"chargeDay"`             // day of month, 1-28
	NumPayments int    `json:"numPayments,omitempty"` // 0 = unlimited
}

// PaymentPageRequest describes a donation to turn into a hosted payment page.
type PaymentPageRequest struct {
	Amount      decimal.Decimal
	Name        string
	Email       string
	Phone       string
	Dedication  string
	PaymentType PaymentType
	Recurring   *RecurringConfig
}

// Config holds gateway credentials and redirect targets.
type Config struct {
	APIURL        string
	Username      string
	Password      string
	Terminal      string
	PublicBaseURL string
	TestMode      bool
}

// Client is the gateway client. All calls are synchronous request/response;
// no payment state is kept here.
type Client struct {
	httpClient *http.Client
	cfg        Config
}

// NewClient creates a gateway client with a bounded request timeout.
func NewClient(cfg Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cfg:        cfg,
	}
}

// envelope is the provider's request wrapper: a nested Json object plus a
// top-level format marker.
type envelope struct {
	Json   map[string]interface{} `json:"Json"`
	Format string                 `json:"format"`
}

type providerResponse struct {
	Error          string `json:"error"`
	URL            string `json:"url"`
	PaymentPageURL string `json:"paymentPageUrl"`
}

// CreatePaymentPage builds a SendTransaction request and returns the hosted
// payment page URL. Amounts are converted to agorot (minor units).
func (c *Client) CreatePaymentPage(ctx context.Context, req PaymentPageRequest) (string, error) {
	agorot := req.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	payload := map[string]interface{}{
		"userName":   c.cfg.Username,
		"password":   c.cfg.Password,
		"format":     "json",
		"func":       "SendTransaction",
		"terminal":   c.cfg.Terminal,
		"sum":        agorot,
		"fullName":   req.Name,
		"email":      req.Email,
		"phone":      req.Phone,
		"comments":   req.Dedication,
		"currency":   "1", // ILS
		"language":   "he",
		"isTest":     boolFlag(c.cfg.TestMode),
		"successUrl": c.cfg.PublicBaseURL + "/donate/thank-you",
		"cancelUrl":  c.cfg.PublicBaseURL + "/donate",
	}

	if req.PaymentType == PaymentTypeRecurring {
		payload["paymentType"] = "10"
		rc := req.Recurring
		if rc == nil {
			rc = &RecurringConfig{}
		}
		if rc.NumPayments > 0 {
			payload["maxPayments"] = fmt.Sprintf("%d", rc.NumPayments)
		} else {
			payload["maxPayments"] = "0" // unlimited
		}
		startDate := rc.StartDate
		if startDate == "" {
			startDate = time.Now().Format("2006-01-02")
		}
		payload["startDate"] = startDate
		payload["endDate"] = rc.EndDate
		payload["chargeDay"] = fmt.Sprintf("%d", rc.ChargeDay)
	} else {
		payload["paymentType"] = "1"
		payload["maxPayments"] = "1"
	}

	var resp providerResponse
	if err := c.post(ctx, payload, &resp); err != nil {
		return "", err
	}
	if resp.Error != "" {
		return "", apperrors.NewGatewayError(providerName, fmt.Errorf("provider error: %s", resp.Error))
	}
	if resp.URL != "" {
		return resp.URL, nil
	}
	if resp.PaymentPageURL != "" {
		return resp.PaymentPageURL, nil
	}
	return "", apperrors.NewGatewayError(providerName, fmt.Errorf("response carried no payment page url"))
}

// GetTransactions relays a read-only transaction query, both bounds required.
func (c *Client) GetTransactions(ctx context.Context, fromDate, toDate string) (json.RawMessage, error) {
	return c.query(ctx, "GetTrans", fromDate, toDate)
}

// GetObligations relays a read-only standing-order query, both bounds required.
func (c *Client) GetObligations(ctx context.Context, fromDate, toDate string) (json.RawMessage, error) {
	return c.query(ctx, "GetObligations", fromDate, toDate)
}

func (c *Client) query(ctx context.Context, fn, fromDate, toDate string) (json.RawMessage, error) {
	if fromDate == "" || toDate == "" {
		return nil, apperrors.ErrMissingDateRange
	}

	payload := map[string]interface{}{
		"userName": c.cfg.Username,
		"password": c.cfg.Password,
		"format":   "json",
		"func":     fn,
		"fromDate": fromDate,
		"toDate":   toDate,
	}

	var raw json.RawMessage
	if err := c.post(ctx, payload, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) post(ctx context.Context, payload map[string]interface{}, dst interface{}) error {
	body, err := json.Marshal(envelope{Json: payload, Format: "json"})
	if err != nil {
		return fmt.Errorf("marshal gateway request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build gateway request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return apperrors.NewGatewayError(providerName, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return apperrors.NewGatewayError(providerName, err)
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return apperrors.NewGatewayError(providerName,
			fmt.Errorf("status %d: %s", httpResp.StatusCode, respBody))
	}

	if err := json.Unmarshal(respBody, dst); err != nil {
		return apperrors.NewGatewayError(providerName, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
