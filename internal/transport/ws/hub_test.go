package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cgabhane/author-website/internal/config"
	"github.com/cgabhane/author-website/internal/logger"
	"github.com/cgabhane/author-website/internal/model"
	"github.com/cgabhane/author-website/internal/service"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func waitForCount(t *testing.T, h *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.Count() == n }, time.Second, 5*time.Millisecond)
}

func TestHub_PublishReachesConnections(t *testing.T) {
	h := NewHub(logger.NewTestLogger(t))
	defer h.Close()

	a := NewConnection("a")
	b := NewConnection("b")
	h.Register(a)
	h.Register(b)
	waitForCount(t, h, 2)

	h.Publish(model.EventSubscriberAdded, map[string]string{"email": "x@example.com"})

	for _, conn := range []*Connection{a, b} {
		select {
		case data := <-conn.Send:
			var msg Message
			require.NoError(t, json.Unmarshal(data, &msg))
			assert.Equal(t, model.EventSubscriberAdded, msg.Type)
			assert.JSONEq(t, `{"email":"x@example.com"}`, string(msg.Payload))
		case <-time.After(time.Second):
			t.Fatal("no event received")
		}
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	h := NewHub(logger.NewTestLogger(t))
	defer h.Close()

	conn := NewConnection("a")
	h.Register(conn)
	waitForCount(t, h, 1)

	h.Unregister(conn)
	waitForCount(t, h, 0)
	_, ok := <-conn.Send
	assert.False(t, ok)
}

func TestHub_PublishWithoutConnections(t *testing.T) {
	h := NewHub(logger.NewTestLogger(t))
	h.Close()
	// must not block after close
	h.Publish(model.EventAssessmentSaved, struct{}{})
}

func newFeedServer(t *testing.T) (*httptest.Server, *Hub, *service.AuthService) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	auth := service.NewAuthService(config.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
		JWTSecret:         "secret",
		TokenTTL:          time.Hour,
	})
	log := logger.NewTestLogger(t)
	hub := NewHub(log)
	handler := NewHandler(hub, auth, nil, log)
	srv := httptest.NewServer(http.HandlerFunc(handler.Events))
	t.Cleanup(func() {
		srv.Close()
		hub.Close()
	})
	return srv, hub, auth
}

func TestHandler_RejectsMissingToken(t *testing.T) {
	srv, _, _ := newFeedServer(t)

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_StreamsEvents(t *testing.T) {
	srv, hub, auth := newFeedServer(t)
	login, err := auth.Login("admin", "pw")
	require.NoError(t, err)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?token=" + login.Token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	waitForCount(t, hub, 1)
	hub.Publish(model.EventAppointmentBooked, map[string]string{"id": "appt-1"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, model.EventAppointmentBooked, msg.Type)
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://example.com"})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.True(t, check(r))

	r.Header.Set("Origin", "https://example.com")
	assert.True(t, check(r))

	r.Header.Set("Origin", "https://evil.test")
	assert.False(t, check(r))
}
