package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"content-scheduler/internal/pkg/config"
	"content-scheduler/internal/pkg/errs"
)

// HTTPMailer delivers one recipient batch per API call. The client timeout
// bounds every call so a hung provider stalls a single batch, not the whole
// pass.
type HTTPMailer struct {
	client    *http.Client
	apiURL    string
	apiKey    string
	from      string
	batchSize int
}

func NewHTTPMailer(cfg config.MailerConfig) *HTTPMailer {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 50
	}
	return &HTTPMailer{
		client:    &http.Client{Timeout: cfg.Timeout},
		apiURL:    cfg.APIURL,
		apiKey:    cfg.APIKey,
		from:      cfg.From,
		batchSize: batchSize,
	}
}

// BatchSize is the hard per-call recipient cap the provider enforces.
func (m *HTTPMailer) BatchSize() int {
	return m.batchSize
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

func (m *HTTPMailer) SendBatch(ctx context.Context, to []string, subject, body string) (string, error) {
	if len(to) == 0 {
		return "", errs.New("empty recipient batch")
	}
	if len(to) > m.batchSize {
		return "", errs.New(fmt.Sprintf("batch of %d exceeds cap of %d recipients", len(to), m.batchSize))
	}

	payload, err := json.Marshal(sendRequest{
		From:    m.from,
		To:      to,
		Subject: subject,
		HTML:    body,
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to encode send request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", errs.Wrap(err, "failed to build send request")
	}
	req.Header.Set("Content-Type", "application/json")
	if m.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+m.apiKey)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "mail send request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", errs.New(fmt.Sprintf("mail provider returned %d: %s", resp.StatusCode, string(raw)))
	}

	var out sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errs.Wrap(err, "failed to decode send response")
	}
	return out.ID, nil
}
