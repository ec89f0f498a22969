package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/scoreship/internal/domain"
)

func testReceipt() domain.TransferReceipt {
	return domain.TransferReceipt{
		Account: "Wallet-2",
		Target:  "0xabc",
		Amount:  909,
		Fee:     90,
		At:      time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC),
	}
}

func TestWebhook_Notify(t *testing.T) {
	var got message
	var method, contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	wh, err := NewWebhook(WebhookConfig{URL: srv.URL + "/", ChatID: "42", Timeout: time.Second})
	require.NoError(t, err)

	require.NoError(t, wh.Notify(context.Background(), testReceipt()))

	assert.Equal(t, http.MethodPost, method)
	assert.Contains(t, contentType, "application/json")
	assert.Equal(t, "42", got.ChatID)
	assert.Equal(t, "HTML", got.ParseMode)
	assert.Contains(t, got.Text, "Account: Wallet-2")
	assert.Contains(t, got.Text, "Total deducted: 999")
}

func TestWebhook_NotifyNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	wh, err := NewWebhook(WebhookConfig{URL: srv.URL, Timeout: time.Second})
	require.NoError(t, err)

	err = wh.Notify(context.Background(), testReceipt())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 502: upstream down")
}

func TestWebhook_NotifyEmptyErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	wh, err := NewWebhook(WebhookConfig{URL: srv.URL, Timeout: time.Second})
	require.NoError(t, err)

	err = wh.Notify(context.Background(), testReceipt())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 403: Forbidden")
}

func TestNewWebhook_RequiresURL(t *testing.T) {
	_, err := NewWebhook(WebhookConfig{URL: "  "})
	assert.ErrorIs(t, err, ErrNoURL)
}

func TestFormatReceipt_EscapesNames(t *testing.T) {
	r := testReceipt()
	r.Account = "<Wallet&1>"

	text := FormatReceipt(r)

	assert.Contains(t, text, "Account: &lt;Wallet&amp;1&gt;")
	assert.Contains(t, text, "Time: 2026-03-01 08:30:00")
	assert.Contains(t, text, "<b>Score transfer successful</b>")
}

func TestNoop_Notify(t *testing.T) {
	assert.NoError(t, NewNoop().Notify(context.Background(), testReceipt()))
}
