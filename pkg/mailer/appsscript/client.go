package appsscript

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrymomot/broadcast/pkg/mailer"
)

const (
	defaultSendTimeout   = 30 * time.Second
	defaultHealthTimeout = 10 * time.Second

	sendEndpoint = "send-email"
	healthPath   = "health"
)

// Client talks to an Apps Script email gateway.
// It implements mailer.Sender and mailer.HealthChecker.
type Client struct {
	http   *http.Client
	config Config
}

// New creates a new gateway client.
func New(cfg Config) *Client {
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = defaultSendTimeout
	}
	if cfg.HealthTimeout <= 0 {
		cfg.HealthTimeout = defaultHealthTimeout
	}
	return &Client{
		http:   &http.Client{},
		config: cfg,
	}
}

// sendRequest is the wire envelope for the send-email operation.
// Optional fields are omitted entirely when empty, never sent as null.
type sendRequest struct {
	Endpoint string `json:"endpoint"`
	APIKey   string `json:"api_key"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	FromName string `json:"from_name"`
	HTMLBody string `json:"html_body,omitempty"`
	CC       string `json:"cc,omitempty"`
	BCC      string `json:"bcc,omitempty"`
}

// envelope is the gateway's tagged response variant. Success must be present
// for the payload to be considered well-formed.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// message returns the server-supplied error message, or a fallback.
func (e *envelope) message() string {
	if e.Error != nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return "unknown error"
}

// Send implements mailer.Sender. It POSTs the send-email envelope and
// returns the gateway-assigned message id verbatim. Gateway rejections and
// transport failures both wrap mailer.ErrSendFailed, carrying the server's
// error message untouched when one was supplied.
func (c *Client) Send(ctx context.Context, email *mailer.Email) (string, error) {
	if email == nil || email.To == "" {
		return "", mailer.ErrNoRecipient
	}
	if email.Subject == "" {
		return "", mailer.ErrNoSubject
	}
	if email.Text == "" {
		return "", mailer.ErrNoContent
	}

	payload, err := json.Marshal(sendRequest{
		Endpoint: sendEndpoint,
		APIKey:   c.config.APIKey,
		To:       email.To,
		Subject:  email.Subject,
		Body:     email.Text,
		FromName: email.FromName,
		HTMLBody: email.HTML,
		CC:       email.CC,
		BCC:      email.BCC,
	})
	if err != nil {
		return "", errors.Join(mailer.ErrSendFailed, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.SendTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.APIURL, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Join(mailer.ErrSendFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Join(mailer.ErrSendFailed, err)
	}
	defer resp.Body.Close()

	env, err := decodeEnvelope(resp.Body)
	if err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("%w: unexpected status %d", mailer.ErrSendFailed, resp.StatusCode)
		}
		return "", errors.Join(mailer.ErrSendFailed, err)
	}

	if resp.StatusCode != http.StatusOK || !*env.Success {
		return "", fmt.Errorf("%w: %s", mailer.ErrSendFailed, env.message())
	}

	var data struct {
		MessageID string `json:"messageId"`
	}
	if len(env.Data) > 0 {
		// Message id is informational; a success without one is still a success.
		_ = json.Unmarshal(env.Data, &data)
	}
	return data.MessageID, nil
}

// CheckHealth implements mailer.HealthChecker via GET <url>?path=health.
// Any transport failure, non-200 status, malformed payload, or success=false
// yields an error wrapping mailer.ErrUnhealthy.
func (c *Client) CheckHealth(ctx context.Context) (*mailer.Health, error) {
	u, err := url.Parse(c.config.APIURL)
	if err != nil {
		return nil, errors.Join(mailer.ErrUnhealthy, err)
	}
	q := u.Query()
	q.Set("path", healthPath)
	u.RawQuery = q.Encode()

	ctx, cancel := context.WithTimeout(ctx, c.config.HealthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Join(mailer.ErrUnhealthy, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Join(mailer.ErrUnhealthy, err)
	}
	defer resp.Body.Close()

	env, err := decodeEnvelope(resp.Body)
	if err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: unexpected status %d", mailer.ErrUnhealthy, resp.StatusCode)
		}
		return nil, errors.Join(mailer.ErrUnhealthy, err)
	}

	if resp.StatusCode != http.StatusOK || !*env.Success {
		return nil, fmt.Errorf("%w: %s", mailer.ErrUnhealthy, env.message())
	}

	health := &mailer.Health{}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, health); err != nil {
			return nil, errors.Join(mailer.ErrUnhealthy, mailer.ErrBadResponse, err)
		}
	}
	return health, nil
}

// decodeEnvelope parses a gateway response body into the tagged variant.
// A payload that is not JSON or lacks the success field wraps
// mailer.ErrBadResponse.
func decodeEnvelope(r io.Reader) (*envelope, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, errors.Join(mailer.ErrBadResponse, err)
	}
	if env.Success == nil {
		return nil, fmt.Errorf("%w: missing success field", mailer.ErrBadResponse)
	}
	return &env, nil
}
