package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"salonweb/internal/model"
)

func testInquiry() model.Inquiry {
	return model.Inquiry{
		ID:      "inq-1",
		Name:    "Jane <Doe>",
		Email:   "jane@example.com",
		Phone:   "(512) 555-0142",
		Service: "Gel Manicure",
		Message: "Saturday & Sunday work best.",
	}
}

func TestHTTPMailerSend(t *testing.T) {
	var got Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer key-123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_abc"}`))
	}))
	defer srv.Close()

	m, err := NewHTTPMailer(srv.URL, "key-123", time.Second)
	require.NoError(t, err)

	res, err := m.Send(context.Background(), Message{From: "site@x.com", To: []string{"salon@x.com"}, Subject: "hi", Text: "body"})
	require.NoError(t, err)
	assert.Equal(t, "msg_abc", res.ID)
	assert.Equal(t, []string{"salon@x.com"}, got.To)
	assert.Equal(t, "hi", got.Subject)
}

func TestHTTPMailerProviderErrors(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantRejected bool
		wantMessage  string
	}{
		{name: "validation", status: http.StatusUnprocessableEntity, body: `{"name":"validation_error","message":"Invalid reply_to"}`, wantRejected: true, wantMessage: "Invalid reply_to"},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"name":"missing_api_key","message":"Missing API key"}`, wantMessage: "Missing API key"},
		{name: "server error without body", status: http.StatusInternalServerError},
		{name: "non json body", status: http.StatusBadGateway, body: "<html>bad gateway</html>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			m, err := NewHTTPMailer(srv.URL, "key", time.Second)
			require.NoError(t, err)

			_, err = m.Send(context.Background(), Message{To: []string{"a@b.co"}})
			var perr *ProviderError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.status, perr.StatusCode)
			assert.Equal(t, tt.wantRejected, perr.Rejected())
			assert.Equal(t, tt.wantMessage, perr.Message)
			assert.False(t, errors.Is(err, ErrNetwork))
		})
	}
}

func TestHTTPMailerNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	m, err := NewHTTPMailer(addr, "key", time.Second)
	require.NoError(t, err)

	_, err = m.Send(context.Background(), Message{To: []string{"a@b.co"}})
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestHTTPMailerTimeoutIsNetworkError(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	m, err := NewHTTPMailer(srv.URL, "key", 20*time.Millisecond)
	require.NoError(t, err)

	_, err = m.Send(context.Background(), Message{To: []string{"a@b.co"}})
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestNewHTTPMailerRequiresSettings(t *testing.T) {
	_, err := NewHTTPMailer("", "key", time.Second)
	assert.Error(t, err)
	_, err = NewHTTPMailer("http://x", "", time.Second)
	assert.Error(t, err)
}

func TestInquiryMessage(t *testing.T) {
	msg, err := InquiryMessage(context.Background(), testInquiry(), "site@x.com", "salon@x.com")
	require.NoError(t, err)

	assert.Equal(t, []string{"salon@x.com"}, msg.To)
	assert.Equal(t, "jane@example.com", msg.ReplyTo)
	assert.Equal(t, "New inquiry from Jane <Doe>: Gel Manicure", msg.Subject)
	assert.Contains(t, msg.Text, "Phone: (512) 555-0142")
	assert.Contains(t, msg.Text, "Reference inq-1")
	assert.Contains(t, msg.HTML, "Jane &lt;Doe&gt;")
	assert.Contains(t, msg.HTML, "Saturday &amp; Sunday")
	assert.NotContains(t, msg.HTML, "<Doe>")
}

func TestMailto(t *testing.T) {
	link := Mailto("hello@salon.com", testInquiry())
	require.True(t, strings.HasPrefix(link, "mailto:hello@salon.com?"))
	assert.NotContains(t, link, "+")

	u, err := url.Parse(link)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "Inquiry from Jane <Doe>: Gel Manicure", q.Get("subject"))
	assert.Equal(t, "Saturday & Sunday work best.\n\nPhone: (512) 555-0142", q.Get("body"))
}

func TestLogMailer(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := NewLogMailer(zap.New(core))

	res, err := m.Send(context.Background(), Message{To: []string{"salon@x.com"}, Subject: "hi"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.ID, "log-"))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "email_not_sent", logs.All()[0].Message)
}
