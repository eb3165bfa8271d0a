package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"ngo_portal/internal/usecase/interfaces"
)

var ErrMissingEmailFunctionURL = errors.New("missing EMAIL_FUNCTION_URL")

const defaultEmailTimeout = 10 * time.Second

type confirmationPayload struct {
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Reference string `json:"reference"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
}

// EmailFunctionSender posts confirmation emails to a serverless email function.
type EmailFunctionSender struct {
	url    string
	client *http.Client
}

var _ interfaces.IConfirmationSender = (*EmailFunctionSender)(nil)

func NewEmailFunctionSender(url string, client *http.Client) (*EmailFunctionSender, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrMissingEmailFunctionURL
	}
	if client == nil {
		client = &http.Client{Timeout: defaultEmailTimeout}
	}
	return &EmailFunctionSender{url: url, client: client}, nil
}

// NewEmailFunctionSenderFromEnv returns nil (emails disabled) when EMAIL_FUNCTION_URL is unset.
func NewEmailFunctionSenderFromEnv() *EmailFunctionSender {
	s, err := NewEmailFunctionSender(os.Getenv("EMAIL_FUNCTION_URL"), nil)
	if err != nil {
		log.Printf("[notification][email] confirmation emails disabled: %v", err)
		return nil
	}
	return s
}

func (s *EmailFunctionSender) SendPaymentConfirmation(ctx context.Context, email interfaces.PaymentConfirmationEmail) error {
	body, err := json.Marshal(confirmationPayload{
		To:        email.To,
		Subject:   confirmationSubject(email.Type),
		Name:      email.Name,
		Type:      email.Type,
		Reference: email.Reference,
		Amount:    email.Amount,
		Currency:  email.Currency,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("email function request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email function returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	log.Printf("[notification][email] confirmation sent reference=%s type=%s", email.Reference, email.Type)
	return nil
}

func confirmationSubject(paymentType string) string {
	switch paymentType {
	case "donation":
		return "Thank you for your donation"
	case "subscription":
		return "Your membership subscription is active"
	}
	return "Welcome to our membership"
}
