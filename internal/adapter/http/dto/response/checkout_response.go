package response

import "ngo_portal/internal/checkout"

type CheckoutStatusResponse struct {
	State        string            `json:"state"`
	Title        string            `json:"title,omitempty"`
	Message      string            `json:"message,omitempty"`
	Reference    string            `json:"reference,omitempty"`
	Notification string            `json:"notification,omitempty"`
	FieldErrors  map[string]string `json:"field_errors,omitempty"`
	Processing   bool              `json:"processing"`
}

func FromPresentation(p checkout.Presentation) CheckoutStatusResponse {
	return CheckoutStatusResponse{
		State:        string(p.State),
		Title:        p.Title,
		Message:      p.Message,
		Reference:    p.Reference,
		Notification: p.Notification,
		FieldErrors:  p.FieldErrors,
		Processing:   p.Processing,
	}
}

type CheckoutSessionResponse struct {
	SessionID   string                 `json:"session_id"`
	CheckoutURL string                 `json:"checkout_url"`
	Status      CheckoutStatusResponse `json:"status"`
}
