package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"salonweb/internal/apperr"
	"salonweb/internal/email"
	emailMocks "salonweb/internal/email/mocks"
	"salonweb/internal/model"
	"salonweb/internal/ratelimit"
	"salonweb/internal/service"
	serviceMocks "salonweb/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testSite = Site{
	BaseURL: "https://salon.test",
	Now:     func() time.Time { return time.Date(2026, time.October, 20, 19, 0, 0, 0, time.UTC) },
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})

	t.Run("archive disabled", func(t *testing.T) {
		app := fiber.New()
		app.Get("/health", HealthCheck(nil))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

const validJSON = `{"name":"Jane Doe","email":"jane@example.com","phone":"512-555-0142","service":"Gel Manicure","message":"Do you have Saturday openings?"}`

func TestSubmitContact(t *testing.T) {
	mockSvc := new(serviceMocks.MockContactService)
	app := fiber.New(WithTrustedProxies(fiber.Config{}, []string{"0.0.0.0"}, fiber.HeaderXForwardedFor))
	app.Post("/api/contact", SubmitContact(mockSvc))

	post := func(t *testing.T, body string) *http.Response {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, mock.MatchedBy(func(in service.SubmitInput) bool {
			return in.ClientIP == "203.0.113.9" && in.Form.Email == "jane@example.com" && in.Form.Service == "Gel Manicure"
		})).Return(&service.SubmitResult{InquiryID: "inq-1", Status: model.InquirySent}, nil).Once()

		resp := post(t, validJSON)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result contactResponse
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "inq-1", result.ID)
		assert.Equal(t, model.InquirySent, result.Status)
		assert.NotEmpty(t, result.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, mock.Anything).
			Return(nil, apperr.Validation(map[string]string{"email": "Please enter a valid email address."})).Once()

		resp := post(t, validJSON)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
		assert.Equal(t, "Please enter a valid email address.", res.Error.Fields["email"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("rate limited", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, mock.Anything).Return(nil, apperr.RateLimited(59500*time.Millisecond)).Once()

		resp := post(t, validJSON)
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
		assert.Equal(t, "60", resp.Header.Get("Retry-After"))

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "RATE_LIMITED", res.Error.Code)
		assert.Equal(t, 60, res.Error.RetryAfter)
	})

	t.Run("network failure", func(t *testing.T) {
		appErr := apperr.E(apperr.KindNetwork, errors.New("dial tcp: timeout"))
		appErr.Mailto = "mailto:hello@salon.test?subject=Hi"
		mockSvc.On("Submit", mock.Anything, mock.Anything).Return(nil, appErr).Once()

		resp := post(t, validJSON)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

		body := readBody(t, resp)
		assert.NotContains(t, body, "dial tcp")
		var res errorPayload
		require.NoError(t, json.Unmarshal([]byte(body), &res))
		assert.Equal(t, "DELIVERY_UNAVAILABLE", res.Error.Code)
		assert.Equal(t, "mailto:hello@salon.test?subject=Hi", res.Error.Mailto)
	})

	t.Run("untyped error", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, mock.Anything).Return(nil, errors.New("boom")).Once()

		resp := post(t, validJSON)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.NotContains(t, readBody(t, resp), "boom")
	})

	t.Run("malformed body", func(t *testing.T) {
		resp := post(t, `{"name":`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "BAD_REQUEST", res.Error.Code)
	})
}

func TestSubmitContactForm(t *testing.T) {
	mockSvc := new(serviceMocks.MockContactService)
	app := fiber.New(WithTrustedProxies(fiber.Config{}, []string{"0.0.0.0"}, "X-Real-IP"))
	app.Post("/contact", SubmitContactForm(testSite, mockSvc))

	form := url.Values{}
	form.Set("name", "<b>Jane</b>")
	form.Set("email", "jane@example")
	form.Set("message", "Do you have Saturday openings?")
	form.Set("website", "")

	post := func(t *testing.T) *http.Response {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("X-Real-IP", "198.51.100.20")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("success redirects", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, mock.MatchedBy(func(in service.SubmitInput) bool {
			return in.ClientIP == "198.51.100.20" && in.Form.Name == "<b>Jane</b>"
		})).Return(&service.SubmitResult{InquiryID: "inq-2", Status: model.InquirySent}, nil).Once()

		resp := post(t)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/contact?sent=1", resp.Header.Get("Location"))
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation re-renders", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, mock.Anything).
			Return(nil, apperr.Validation(map[string]string{"email": "Please enter a valid email address."})).Once()

		resp := post(t)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

		body := readBody(t, resp)
		assert.Contains(t, body, "Please enter a valid email address.")
		assert.Contains(t, body, `value="&lt;b&gt;Jane&lt;/b&gt;"`)
		assert.Contains(t, body, `value="jane@example"`)
	})

	t.Run("rate limited", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, mock.Anything).Return(nil, apperr.RateLimited(30*time.Minute)).Once()

		resp := post(t)
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
		assert.Equal(t, "1800", resp.Header.Get("Retry-After"))
		assert.Contains(t, readBody(t, resp), "sent several messages recently")
	})

	t.Run("network failure offers mailto", func(t *testing.T) {
		appErr := apperr.E(apperr.KindNetwork, errors.New("unreachable"))
		appErr.Mailto = "mailto:hello@salon.test?subject=Inquiry"
		mockSvc.On("Submit", mock.Anything, mock.Anything).Return(nil, appErr).Once()

		resp := post(t)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), `href="mailto:hello@salon.test?subject=Inquiry"`)
	})
}

func TestContactPage(t *testing.T) {
	app := fiber.New()
	app.Get("/contact", ContactPage(testSite))

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/contact?sent=1", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Your message is on its way")
	assert.Contains(t, body, `<option value="`)
}

func TestAreaPages(t *testing.T) {
	app := fiber.New()
	app.Get("/areas/:slug", AreaPage(testSite))
	app.Get("/api/areas/:slug", GetArea())

	t.Run("page", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/areas/Round-Rock", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "Round Rock")
	})

	t.Run("unknown page", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/areas/atlantis", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "Page not found")
	})

	t.Run("json", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/areas/leander", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var area model.Area
		json.NewDecoder(resp.Body).Decode(&area)
		assert.Equal(t, "leander", area.Slug)
	})

	t.Run("unknown json", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/areas/atlantis", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
	})
}

func TestGetBusiness(t *testing.T) {
	app := fiber.New()
	app.Get("/api/business", GetBusiness(testSite))

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/business", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["name"])
	// 19:00 UTC is 2:00 PM on a Tuesday in Cedar Park.
	assert.Equal(t, true, body["open_now"])
	assert.Equal(t, "Open now until 7:00 PM", body["status"])
}

func TestListGallery(t *testing.T) {
	mockGallery := new(serviceMocks.MockGalleryService)
	app := fiber.New()
	app.Get("/api/gallery", ListGallery(mockGallery))
	app.Get("/gallery", GalleryPage(testSite, mockGallery))

	images := []model.GalleryImage{{Key: "gallery/a.jpg", URL: "https://cdn.test/a.jpg", Alt: "Chrome tips"}}
	mockGallery.On("List", mock.Anything).Return(images).Twice()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/gallery", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list listResponse[model.GalleryImage]
	json.NewDecoder(resp.Body).Decode(&list)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, images, list.Items)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/gallery", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), `src="https://cdn.test/a.jpg"`)
	mockGallery.AssertExpectations(t)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		trusted []string
		headers map[string]string
		want    string
	}{
		{name: "trusted proxy first hop", trusted: []string{"0.0.0.0"}, headers: map[string]string{"X-Forwarded-For": "203.0.113.1, 10.0.0.2"}, want: "203.0.113.1"},
		{name: "trusted proxy cidr", trusted: []string{"0.0.0.0/8"}, headers: map[string]string{"X-Forwarded-For": "198.51.100.7"}, want: "198.51.100.7"},
		{name: "garbage header falls back to socket", trusted: []string{"0.0.0.0"}, headers: map[string]string{"X-Forwarded-For": "not-an-ip"}, want: "0.0.0.0"},
		{name: "untrusted peer ignores header", headers: map[string]string{"X-Forwarded-For": "203.0.113.1"}, want: "0.0.0.0"},
		{name: "untrusted peer ignores real ip", headers: map[string]string{"X-Real-IP": "198.51.100.7"}, want: "0.0.0.0"},
		{name: "peer outside trusted list", trusted: []string{"10.0.0.1"}, headers: map[string]string{"X-Forwarded-For": "203.0.113.1"}, want: "0.0.0.0"},
		{name: "socket", headers: nil, want: "0.0.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(WithTrustedProxies(fiber.Config{}, tt.trusted, fiber.HeaderXForwardedFor))
			app.Get("/ip", func(c *fiber.Ctx) error { return c.SendString(ClientIP(c)) })

			req := httptest.NewRequest(http.MethodGet, "/ip", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			resp, _ := app.Test(req)
			assert.Equal(t, tt.want, readBody(t, resp))
		})
	}
}

func TestSubmitContact_ForwardedForCannotDodgeLimit(t *testing.T) {
	mailer := new(emailMocks.MockMailer)
	mailer.On("Send", mock.Anything, mock.Anything).Return(email.SendResult{ID: "msg-1"}, nil)

	limiter := ratelimit.New(ratelimit.Rule{Limit: 5, Window: time.Hour})
	svc := service.NewContactService(mailer, limiter, service.ContactOptions{
		Recipient: "hello@salon.test",
		From:      "Website <web@salon.test>",
	})

	app := fiber.New(WithTrustedProxies(fiber.Config{}, nil, fiber.HeaderXForwardedFor))
	app.Post("/api/contact", SubmitContact(svc))

	var accepted, limited int
	for i := 1; i <= 20; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(validJSON))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i))
		resp, err := app.Test(req)
		require.NoError(t, err)

		switch resp.StatusCode {
		case http.StatusCreated:
			accepted++
		case http.StatusTooManyRequests:
			limited++
		default:
			t.Fatalf("unexpected status %d", resp.StatusCode)
		}
	}

	assert.Equal(t, 5, accepted)
	assert.Equal(t, 15, limited)
	mailer.AssertNumberOfCalls(t, "Send", 5)
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(testSite, nil),
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "salonweb_test_total", Help: "test"}))

	RegisterRoutes(app, Deps{
		Site:     testSite,
		Contact:  new(serviceMocks.MockContactService),
		Gallery:  new(serviceMocks.MockGalleryService),
		Gatherer: reg,
	})

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
	})

	t.Run("not found page for browsers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
		assert.Contains(t, readBody(t, resp), "Page not found")
	})

	t.Run("method not allowed", func(t *testing.T) {
		// Health endpoint only allows GET
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "METHOD_NOT_ALLOWED", res.Error.Code)
	})

	t.Run("pages", func(t *testing.T) {
		for _, p := range []string{"/", "/services", "/about", "/contact", "/areas/cedar-park", "/api/services", "/api/areas", "/healthz", "/health"} {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, p, nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode, p)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "salonweb_test_total")
	})
}
