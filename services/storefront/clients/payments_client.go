package clients

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Payment statuses returned by the payments service.
const (
	PaymentAccepted = "Accepted"
	PaymentDeclined = "Declined"
)

type PaymentsClient struct {
	baseURL    string
	httpClient *http.Client
}

type ChargeRequest struct {
	Amount      int    `json:"amount"`
	Method      string `json:"method"`
	PhoneNumber string `json:"phone_number,omitempty"`
	CardNumber  string `json:"card_number,omitempty"`
}

type ChargeResponse struct {
	Status string `json:"status"`
}

func NewPaymentsClient(baseURL string) *PaymentsClient {
	return &PaymentsClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Charge asks the payments service to collect the amount, by M-Pesa push
// or card. It returns the processor's status string.
func (c *PaymentsClient) Charge(req ChargeRequest) (string, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal charge request: %w", err)
	}

	url := fmt.Sprintf("%s/payments/charge", c.baseURL)
	resp, err := c.httpClient.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to call payments service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusPaymentRequired:
		var chargeResp ChargeResponse
		if err := json.Unmarshal(body, &chargeResp); err != nil {
			return "", fmt.Errorf("failed to unmarshal response: %w", err)
		}
		return chargeResp.Status, nil
	case http.StatusBadRequest:
		return "", fmt.Errorf("invalid payment details: %s", string(body))
	default:
		return "", fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}
}
