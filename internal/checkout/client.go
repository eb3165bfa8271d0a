package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultAPITimeout = 20 * time.Second

// OrderRequest is the order-creation payload. Amount is in whole rupees.
type OrderRequest struct {
	Type    string `json:"type"`
	Amount  int64  `json:"amount,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	PAN     string `json:"pan,omitempty"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
	PlanID  string `json:"plan_id,omitempty"`
}

// Order is what the server returns for a new payment attempt. Amount is in paise.
type Order struct {
	Type             string `json:"type"`
	OrderID          string `json:"order_id,omitempty"`
	SubscriptionID   string `json:"subscription_id,omitempty"`
	Amount           int64  `json:"amount"`
	Currency         string `json:"currency"`
	KeyID            string `json:"key_id"`
	PaymentReference string `json:"payment_reference"`
}

type VerifyRequest struct {
	Type             string `json:"type"`
	PaymentReference string `json:"payment_reference"`
	OrderID          string `json:"order_id,omitempty"`
	SubscriptionID   string `json:"subscription_id,omitempty"`
	PaymentID        string `json:"payment_id"`
	Signature        string `json:"signature"`
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, req OrderRequest) (Order, error)
}

type Verifier interface {
	Verify(ctx context.Context, req VerifyRequest) error
}

type Canceller interface {
	CancelSubscription(ctx context.Context, subscriptionID string) error
}

// Backend is everything a Flow needs from the payments service.
type Backend interface {
	OrderCreator
	Verifier
	Canceller
}

// APIClient talks to the payments HTTP API. Errors carry the server message as is.
type APIClient struct {
	baseURL string
	client  *http.Client
}

var _ Backend = (*APIClient)(nil)

func NewAPIClient(baseURL string, client *http.Client) *APIClient {
	if client == nil {
		client = &http.Client{Timeout: defaultAPITimeout}
	}
	return &APIClient{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (c *APIClient) CreateOrder(ctx context.Context, req OrderRequest) (Order, error) {
	var out Order
	if err := c.post(ctx, "/v1/payments/orders", req, &out); err != nil {
		return Order{}, err
	}
	return out, nil
}

func (c *APIClient) Verify(ctx context.Context, req VerifyRequest) error {
	return c.post(ctx, "/v1/payments/verify", req, nil)
}

func (c *APIClient) CancelSubscription(ctx context.Context, subscriptionID string) error {
	return c.post(ctx, "/v1/subscriptions/"+url.PathEscape(subscriptionID)+"/cancel", nil, nil)
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"error"`
}

func (c *APIClient) post(ctx context.Context, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil {
			if apiErr.Message != "" {
				return errors.New(apiErr.Message)
			}
			if apiErr.Detail != "" {
				return errors.New(apiErr.Detail)
			}
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}
