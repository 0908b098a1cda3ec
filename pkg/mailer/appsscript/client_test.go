package appsscript_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/broadcast/pkg/mailer"
	"github.com/dmitrymomot/broadcast/pkg/mailer/appsscript"
)

func newClient(t *testing.T, handler http.HandlerFunc) *appsscript.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return appsscript.New(appsscript.Config{
		APIURL: srv.URL,
		APIKey: "test-key",
	})
}

func validEmail() *mailer.Email {
	return &mailer.Email{
		To:       "ana@example.com",
		Subject:  "Hello",
		Text:     "Hi there",
		FromName: "Team",
	}
}

func TestClient_Send_Success(t *testing.T) {
	t.Parallel()

	var captured map[string]any
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"messageId": "msg-123"},
		})
	})

	id, err := client.Send(context.Background(), validEmail())
	require.NoError(t, err)
	require.Equal(t, "msg-123", id)

	require.Equal(t, "send-email", captured["endpoint"])
	require.Equal(t, "test-key", captured["api_key"])
	require.Equal(t, "ana@example.com", captured["to"])
	require.Equal(t, "Hello", captured["subject"])
	require.Equal(t, "Hi there", captured["body"])
	require.Equal(t, "Team", captured["from_name"])

	// Optional fields must be absent, not null or empty.
	require.NotContains(t, captured, "html_body")
	require.NotContains(t, captured, "cc")
	require.NotContains(t, captured, "bcc")
}

func TestClient_Send_OptionalFields(t *testing.T) {
	t.Parallel()

	var captured map[string]any
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	email := validEmail()
	email.HTML = "<p>Hi</p>"
	email.CC = "cc@example.com"
	email.BCC = "bcc@example.com"

	_, err := client.Send(context.Background(), email)
	require.NoError(t, err)
	require.Equal(t, "<p>Hi</p>", captured["html_body"])
	require.Equal(t, "cc@example.com", captured["cc"])
	require.Equal(t, "bcc@example.com", captured["bcc"])
}

func TestClient_Send_GatewayRejection(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   map[string]any{"message": "quota exceeded"},
		})
	})

	_, err := client.Send(context.Background(), validEmail())
	require.ErrorIs(t, err, mailer.ErrSendFailed)
	require.ErrorContains(t, err, "quota exceeded")
}

func TestClient_Send_MissingSuccessField(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "ok"})
	})

	_, err := client.Send(context.Background(), validEmail())
	require.ErrorIs(t, err, mailer.ErrSendFailed)
	require.ErrorIs(t, err, mailer.ErrBadResponse)
}

func TestClient_Send_NonJSONResponse(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>gateway timeout</html>"))
	})

	_, err := client.Send(context.Background(), validEmail())
	require.ErrorIs(t, err, mailer.ErrSendFailed)
	require.ErrorContains(t, err, "502")
}

func TestClient_Send_TransportFailure(t *testing.T) {
	t.Parallel()

	client := appsscript.New(appsscript.Config{
		APIURL: "http://127.0.0.1:1",
		APIKey: "k",
	})

	_, err := client.Send(context.Background(), validEmail())
	require.ErrorIs(t, err, mailer.ErrSendFailed)
}

func TestClient_Send_LocalValidation(t *testing.T) {
	t.Parallel()

	client := appsscript.New(appsscript.Config{APIURL: "http://example.com", APIKey: "k"})

	_, err := client.Send(context.Background(), &mailer.Email{Subject: "s", Text: "b"})
	require.ErrorIs(t, err, mailer.ErrNoRecipient)

	_, err = client.Send(context.Background(), &mailer.Email{To: "a@b.com", Text: "b"})
	require.ErrorIs(t, err, mailer.ErrNoSubject)

	_, err = client.Send(context.Background(), &mailer.Email{To: "a@b.com", Subject: "s"})
	require.ErrorIs(t, err, mailer.ErrNoContent)
}

func TestClient_CheckHealth_Success(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "health", r.URL.Query().Get("path"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"status":   "healthy",
				"version":  "1.0",
				"services": "gmail",
			},
		})
	})

	health, err := client.CheckHealth(context.Background())
	require.NoError(t, err)
	require.True(t, health.Healthy())
	require.Equal(t, "1.0", health.Version)
	require.Equal(t, "gmail", health.Services)
}

func TestClient_CheckHealth_GatewayUnhealthy(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   map[string]any{"message": "service disabled"},
		})
	})

	_, err := client.CheckHealth(context.Background())
	require.ErrorIs(t, err, mailer.ErrUnhealthy)
	require.ErrorContains(t, err, "service disabled")
}

func TestClient_CheckHealth_NonOKStatus(t *testing.T) {
	t.Parallel()

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	_, err := client.CheckHealth(context.Background())
	require.ErrorIs(t, err, mailer.ErrUnhealthy)
}

func TestClient_CheckHealth_TransportFailure(t *testing.T) {
	t.Parallel()

	client := appsscript.New(appsscript.Config{
		APIURL: "http://127.0.0.1:1",
		APIKey: "k",
	})

	_, err := client.CheckHealth(context.Background())
	require.ErrorIs(t, err, mailer.ErrUnhealthy)
}
