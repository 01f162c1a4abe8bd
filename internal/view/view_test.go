package view

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonweb/internal/contact"
	"salonweb/internal/content"
	"salonweb/internal/model"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

// Tuesday 2:00 PM in Cedar Park.
var tuesdayAfternoon = time.Date(2026, time.October, 20, 14, 0, 0, 0, content.Location())

func TestLayout(t *testing.T) {
	t.Run("chrome", func(t *testing.T) {
		out := render(t, NotFound(Meta{Title: "Not found", Path: "/services", BaseURL: "https://salon.test", Now: tuesdayAfternoon}))

		assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
		assert.Contains(t, out, "<title>Not found | "+templ.EscapeString(content.Business().Name)+"</title>")
		assert.Contains(t, out, `<link rel="canonical" href="https://salon.test/services">`)
		assert.Contains(t, out, `<a href="/services" aria-current="page">`)
		assert.Contains(t, out, "Open now until 7:00 PM")
		assert.Contains(t, out, "<dt>Monday</dt><dd>Closed</dd>")
		assert.Contains(t, out, "&copy; 2026")
		assert.NotContains(t, out, "googletagmanager")
	})

	t.Run("tag manager", func(t *testing.T) {
		out := render(t, NotFound(Meta{GTMID: "GTM-ABC123"}))
		assert.Contains(t, out, "gtm.js?id=")
		assert.Contains(t, out, "'GTM-ABC123'")
		assert.Contains(t, out, "ns.html?id=GTM-ABC123")
	})

	t.Run("malformed tag manager id is ignored", func(t *testing.T) {
		out := render(t, NotFound(Meta{GTMID: "GTM-1');alert(1)//"}))
		assert.NotContains(t, out, "googletagmanager")
		assert.NotContains(t, out, "alert(1)")
	})
}

func TestContact(t *testing.T) {
	services := []string{"Gel Manicure", "Spa Pedicure"}

	t.Run("escapes submitted values", func(t *testing.T) {
		out := render(t, Contact(Meta{Path: "/contact"}, ContactState{
			Form: contact.Form{
				Name:    `"><script>alert(1)</script>`,
				Message: "</textarea><img src=x onerror=alert(1)>",
				Service: "Spa Pedicure",
			},
			Errors:   contact.FieldErrors{"email": "Please enter a valid email address."},
			Services: services,
		}))

		assert.NotContains(t, out, "<script>alert(1)</script>")
		assert.NotContains(t, out, "<img src=x")
		assert.Contains(t, out, "&lt;script&gt;")
		assert.Contains(t, out, `<option value="Spa Pedicure" selected>`)
		assert.Contains(t, out, `aria-invalid="true" aria-describedby="email-error"`)
		assert.Contains(t, out, `<p class="field-error" id="email-error">Please enter a valid email address.</p>`)
		assert.Contains(t, out, `name="website"`)
	})

	t.Run("sent", func(t *testing.T) {
		out := render(t, Contact(Meta{}, ContactState{Sent: true, Services: services}))
		assert.Contains(t, out, "Your message is on its way")
		assert.NotContains(t, out, "field-error")
	})

	t.Run("mailto fallback", func(t *testing.T) {
		out := render(t, Contact(Meta{}, ContactState{
			Alert:  "We couldn't reach our mail service.",
			Mailto: "mailto:hello@salon.test?subject=Hi%20there",
		}))
		assert.Contains(t, out, `role="alert"`)
		assert.Contains(t, out, `href="mailto:hello@salon.test?subject=Hi%20there"`)
	})

	t.Run("map only with key", func(t *testing.T) {
		assert.NotContains(t, render(t, Contact(Meta{}, ContactState{})), "maps/embed")
		out := render(t, Contact(Meta{MapsAPIKey: "k123"}, ContactState{}))
		assert.Contains(t, out, "https://www.google.com/maps/embed/v1/place?")
		assert.Contains(t, out, "key=k123")
	})
}

func TestPages(t *testing.T) {
	m := Meta{Now: tuesdayAfternoon}

	t.Run("home", func(t *testing.T) {
		out := render(t, Home(m, content.Services(), content.Testimonials(), content.Areas()))
		assert.Contains(t, out, `<section class="hero">`)
		assert.Contains(t, out, `href="/areas/cedar-park"`)
		assert.Contains(t, out, "What our clients say")
	})

	t.Run("services", func(t *testing.T) {
		cats := []model.ServiceCategory{{
			Slug: "nails", Name: "Nails & Art",
			Items: []model.ServiceItem{{Name: "Gel", PriceCents: 4500, PriceFrom: true, Minutes: 45}},
		}}
		out := render(t, Services(m, cats))
		assert.Contains(t, out, `<section id="nails"><h2>Nails &amp; Art</h2>`)
		assert.Contains(t, out, "<td>45 min</td><td>$45+</td>")
	})

	t.Run("gallery rejects javascript urls", func(t *testing.T) {
		out := render(t, Gallery(m, []model.GalleryImage{
			{URL: "https://cdn.test/a.jpg", Alt: "Chrome tips"},
			{URL: "javascript:alert(1)", Alt: "bad"},
		}))
		assert.Contains(t, out, `<img src="https://cdn.test/a.jpg" alt="Chrome tips"`)
		assert.NotContains(t, out, "javascript:")
	})

	t.Run("area", func(t *testing.T) {
		a, ok := content.AreaBySlug("leander")
		require.True(t, ok)
		out := render(t, Area(m, a, content.Services()))
		assert.Contains(t, out, templ.EscapeString(a.Headline))
		assert.Contains(t, out, "Neighborhoods we serve")
	})

	t.Run("about", func(t *testing.T) {
		b := content.Business()
		out := render(t, About(m, b))
		assert.Contains(t, out, "Our team")
		assert.Contains(t, out, templ.EscapeString(b.Team[0].Name))
	})
}
