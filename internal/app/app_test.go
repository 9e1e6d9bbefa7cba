package app

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"waterreminder/internal/app/deps"
	appservices "waterreminder/internal/app/services"
	"waterreminder/internal/config"
	"waterreminder/internal/core/domain/logging"
	"waterreminder/internal/core/domain/messaging"
	"waterreminder/internal/core/domain/reminder"
	sendreminder "waterreminder/internal/core/services/send_reminder"
	"waterreminder/internal/implementations/identity"
	reminderstore "waterreminder/internal/implementations/reminder_store"
	tokencodec "waterreminder/internal/implementations/token_codec"

	"github.com/stretchr/testify/require"
)

const NUMBER = reminder.Number("15551234567")

var Now = time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)

type testApp struct {
	router http.Handler
	store  *reminderstore.InMemory
	sender *messaging.TestRichCardSender
	send   *appservices.Services
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.Nil(t, err)
	keyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	codec, err := tokencodec.NewRS256(keyPEM, "test-application", func() time.Time { return Now })
	require.Nil(t, err)

	store := reminderstore.NewInMemory()
	sender := messaging.NewTestRichCardSender()

	d := &deps.Deps{
		Config: &config.Config{
			Port:           3000,
			AllowedOrigins: []string{"*"},
			SenderNumber:   "15550001111",
		},
		Logger:            logging.NewFakeLogger(),
		Now:               func() time.Time { return Now },
		ReminderStore:     store,
		TokenCodec:        codec,
		IdentityGenerator: identity.NewUUID(),
		MessageSender:     sender,
	}
	services := appservices.InitServices(d)

	return &testApp{
		router: InitHttpServer(d, services).Handler,
		store:  store,
		sender: sender,
		send:   services,
	}
}

func (a *testApp) post(t *testing.T, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	a.router.ServeHTTP(recorder, request)
	return recorder
}

func replyEvent(token reminder.Token, from reminder.Number) string {
	return fmt.Sprintf(
		`{"channel":"rcs","message_type":"reply","reply":{"id":"%s"},"from":"%s"}`,
		token,
		from,
	)
}

func TestReminderConfirmedEndToEnd(t *testing.T) {
	// Setup ---
	app := newTestApp(t)
	result, err := app.send.SendReminder.Run(context.Background(), sendreminder.Input{Number: NUMBER})
	require.Nil(t, err)
	require.Equal(t, 1, app.store.Len())

	// Exercise ---
	recorder := app.post(t, "/inbound", replyEvent(result.Reminder.Token, NUMBER))

	// Verify ---
	assert := require.New(t)
	assert.Equal(http.StatusOK, recorder.Code)
	assert.JSONEq(`{"ok": true}`, recorder.Body.String())
	assert.Equal(0, app.store.Len())
}

func TestReplyOnWrongChannelIgnored(t *testing.T) {
	// Setup ---
	app := newTestApp(t)
	result, err := app.send.SendReminder.Run(context.Background(), sendreminder.Input{Number: NUMBER})
	require.Nil(t, err)

	// Exercise ---
	body := fmt.Sprintf(
		`{"channel":"sms","message_type":"reply","reply":{"id":"%s"},"from":"%s"}`,
		result.Reminder.Token,
		NUMBER,
	)
	recorder := app.post(t, "/inbound", body)

	// Verify ---
	assert := require.New(t)
	assert.Equal(http.StatusOK, recorder.Code)
	assert.JSONEq(`{"ok": true}`, recorder.Body.String())
	assert.Equal(1, app.store.Len())
}

func TestReplyWithForgedTokenIgnored(t *testing.T) {
	// Setup ---
	app := newTestApp(t)
	_, err := app.send.SendReminder.Run(context.Background(), sendreminder.Input{Number: NUMBER})
	require.Nil(t, err)

	// A token signed by a different application key.
	forgedApp := newTestApp(t)
	forged, err := forgedApp.send.SendReminder.Run(context.Background(), sendreminder.Input{Number: NUMBER})
	require.Nil(t, err)

	// Exercise ---
	recorder := app.post(t, "/inbound", replyEvent(forged.Reminder.Token, NUMBER))

	// Verify ---
	assert := require.New(t)
	assert.Equal(http.StatusOK, recorder.Code)
	assert.JSONEq(`{"ok": true}`, recorder.Body.String())
	assert.Equal(1, app.store.Len())
}

func TestStatusEventAcknowledged(t *testing.T) {
	// Setup ---
	app := newTestApp(t)

	// Exercise ---
	recorder := app.post(t, "/status", `{"message_uuid":"aaa-bbb","status":"delivered"}`)

	// Verify ---
	assert := require.New(t)
	assert.Equal(http.StatusOK, recorder.Code)
	assert.JSONEq(`{"ok": true}`, recorder.Body.String())
}

func TestSendReminderEndpoint(t *testing.T) {
	// Setup ---
	app := newTestApp(t)

	// Exercise ---
	recorder := app.post(t, "/reminders", fmt.Sprintf(`{"number": "%s"}`, NUMBER))

	// Verify ---
	assert := require.New(t)
	assert.Equal(http.StatusOK, recorder.Code)
	assert.Equal(1, app.store.Len())
	assert.Len(app.sender.Sent, 1)
}

func TestUnknownRouteRendersJSONNotFound(t *testing.T) {
	// Setup ---
	app := newTestApp(t)

	// Exercise ---
	request := httptest.NewRequest(http.MethodGet, "/nope", nil)
	recorder := httptest.NewRecorder()
	app.router.ServeHTTP(recorder, request)

	// Verify ---
	assert := require.New(t)
	assert.Equal(http.StatusNotFound, recorder.Code)
	assert.JSONEq(`{"status": 404, "title": "Not Found"}`, recorder.Body.String())
}

func TestHealthCheck(t *testing.T) {
	// Setup ---
	app := newTestApp(t)

	// Exercise ---
	request := httptest.NewRequest(http.MethodGet, "/_/health", nil)
	recorder := httptest.NewRecorder()
	app.router.ServeHTTP(recorder, request)

	// Verify ---
	assert := require.New(t)
	assert.Equal(http.StatusOK, recorder.Code)
	assert.Equal("OK", recorder.Body.String())
}
