// Package notify implements ports.Notifier.
package notify

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/bft-labs/scoreship/internal/domain"
	"github.com/bft-labs/scoreship/pkg/log"
)

// DefaultTimeout bounds a single webhook request.
const DefaultTimeout = 15 * time.Second

// receiptTimeLayout renders the receipt time in the message body.
const receiptTimeLayout = "2006-01-02 15:04:05"

// ErrNoURL is returned by NewWebhook when no endpoint is configured.
var ErrNoURL = errors.New("notify: webhook url is empty")

// WebhookConfig configures a Webhook.
type WebhookConfig struct {
	URL     string
	ChatID  string
	Timeout time.Duration
	Logger  log.Logger
}

// Webhook posts an HTML-formatted receipt to a chat bot endpoint.
type Webhook struct {
	client *resty.Client
	url    string
	chatID string
	logger log.Logger
}

type message struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// NewWebhook creates a webhook notifier.
func NewWebhook(cfg WebhookConfig) (*Webhook, error) {
	url := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	if url == "" {
		return nil, ErrNoURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNoopLogger()
	}

	cli := resty.New().SetTimeout(cfg.Timeout)

	return &Webhook{client: cli, url: url, chatID: cfg.ChatID, logger: cfg.Logger}, nil
}

// Notify posts the receipt. Non-2xx responses are returned as errors.
func (w *Webhook) Notify(ctx context.Context, receipt domain.TransferReceipt) error {
	resp, err := w.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(message{ChatID: w.chatID, Text: FormatReceipt(receipt), ParseMode: "HTML"}).
		Post(w.url)
	if err != nil {
		return fmt.Errorf("notify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	w.logger.Debug("transfer notification sent",
		log.String("account", receipt.Account),
		log.String("target", string(receipt.Target)),
	)
	return nil
}

// FormatReceipt renders a receipt as an HTML chat message.
func FormatReceipt(r domain.TransferReceipt) string {
	var b strings.Builder
	b.WriteString("<b>Score transfer successful</b>\n")
	fmt.Fprintf(&b, "Account: %s\n", html.EscapeString(r.Account))
	fmt.Fprintf(&b, "Target: %s\n", html.EscapeString(string(r.Target)))
	fmt.Fprintf(&b, "Amount: %d\n", r.Amount)
	fmt.Fprintf(&b, "Fee: %d\n", r.Fee)
	fmt.Fprintf(&b, "Total deducted: %d\n", r.Deducted())
	fmt.Fprintf(&b, "Time: %s", r.At.Format(receiptTimeLayout))
	return b.String()
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
