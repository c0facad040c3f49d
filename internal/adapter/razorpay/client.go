package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	domainErrors "github.com/bengalbay/payserver/internal/domain/errors"
	"github.com/bengalbay/payserver/internal/domain/model"
)

// UpstreamError carries a processor-side rejection or transport-level failure.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("razorpay: %s (status %d)", e.Message, e.Status)
}

// Client exposes the order-creation capability of the payment processor.
type Client interface {
	CreateOrder(ctx context.Context, req model.OrderRequest) (*model.OrderHandle, error)
}

// HTTPClient implements Client against the Razorpay REST API.
type HTTPClient struct {
	baseURL    *url.URL
	keyID      string
	keySecret  string
	httpClient *http.Client
	logger     *slog.Logger
}

type orderPayload struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// errorEnvelope mirrors Razorpay's error response body.
type errorEnvelope struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// NewHTTPClient creates a Razorpay client with default timeout.
func NewHTTPClient(baseURL, keyID, keySecret string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse razorpay url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("razorpay url must be absolute")
	}
	return &HTTPClient{
		baseURL:   parsed,
		keyID:     keyID,
		keySecret: keySecret,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// CreateOrder asks the processor to mint a payment order. Missing credentials
// fail closed before any network call.
func (c *HTTPClient) CreateOrder(ctx context.Context, req model.OrderRequest) (*model.OrderHandle, error) {
	if c.keyID == "" || c.keySecret == "" {
		return nil, domainErrors.ErrMisconfigured
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v1/orders")

	body, err := json.Marshal(orderPayload{
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.SetBasicAuth(c.keyID, c.keySecret)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &UpstreamError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		msg := upstreamMessage(raw, resp.Status)
		c.logger.Error("razorpay order creation failed",
			slog.Int("status", resp.StatusCode),
			slog.String("message", msg),
		)
		return nil, &UpstreamError{Status: resp.StatusCode, Message: msg}
	}

	var handle model.OrderHandle
	if err := json.Unmarshal(raw, &handle); err != nil {
		return nil, &UpstreamError{Status: resp.StatusCode, Message: fmt.Sprintf("decode order: %v", err)}
	}
	return &handle, nil
}

func upstreamMessage(raw []byte, fallback string) string {
	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Description != "" {
		return envelope.Error.Description
	}
	return fallback
}
