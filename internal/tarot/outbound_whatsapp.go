package tarot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// WhatsAppOutbound sends text messages through the WhatsApp Cloud API.
type WhatsAppOutbound struct {
	baseURL       string
	phoneNumberID string
	token         string
	client        *http.Client
}

func NewWhatsAppOutbound(baseURL, phoneNumberID, token string) *WhatsAppOutbound {
	return &WhatsAppOutbound{
		baseURL:       baseURL,
		phoneNumberID: phoneNumberID,
		token:         token,
		client:        &http.Client{Timeout: 10 * time.Second},
	}
}

func (o *WhatsAppOutbound) Send(ctx context.Context, to, body string) error {
	b, err := json.Marshal(map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"text":              map[string]string{"body": body},
	})
	if err != nil {
		return err
	}

	url := o.baseURL + "/" + o.phoneNumberID + "/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.token)

	resp, err := o.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return errors.New(
			"whatsapp api error: " +
				resp.Status +
				" body=" + string(respBody),
		)
	}
	return nil
}
