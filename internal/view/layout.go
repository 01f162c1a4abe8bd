package view

import (
	"fmt"
	"regexp"
	"time"

	"github.com/a-h/templ"

	"salonweb/internal/content"
	"salonweb/internal/contact"
)

// Meta carries per-request page metadata and integration settings.
type Meta struct {
	Title       string
	Description string
	// Path is the request path, used for the active nav link and canonical URL.
	Path    string
	BaseURL string
	// GTMID enables the tag manager snippet when it looks like "GTM-XXXX".
	GTMID string
	// MapsAPIKey enables the map widget on pages that show one.
	MapsAPIKey string
	Now        time.Time
}

var gtmPattern = regexp.MustCompile(`^GTM-[A-Z0-9]{4,12}$`)

func (m Meta) title() string {
	name := content.Business().Name
	if m.Title == "" {
		return name
	}
	return m.Title + " | " + name
}

func (m Meta) description() string {
	if m.Description != "" {
		return m.Description
	}
	return content.Business().Description
}

// Layout wraps body in the shared page chrome.
func Layout(m Meta, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		b := content.Business()

		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(m.title())
		h.raw(`</title><meta name="description" content="`)
		h.text(m.description())
		h.raw(`">`)
		if m.BaseURL != "" {
			h.raw(`<link rel="canonical" href="`)
			h.href(m.BaseURL + m.Path)
			h.raw(`">`)
		}
		gtm := gtmPattern.MatchString(m.GTMID)
		if gtm {
			h.raw(`<script>(function(w,d,s,l,i){w[l]=w[l]||[];w[l].push({'gtm.start':new Date().getTime(),event:'gtm.js'});`,
				`var f=d.getElementsByTagName(s)[0],j=d.createElement(s),dl=l!='dataLayer'?'&l='+l:'';j.async=true;`,
				`j.src='https://www.googletagmanager.com/gtm.js?id='+i+dl;f.parentNode.insertBefore(j,f);})(window,document,'script','dataLayer','`,
				m.GTMID, `');</script>`)
		}
		h.raw(`</head><body>`)
		if gtm {
			h.raw(`<noscript><iframe src="https://www.googletagmanager.com/ns.html?id=`, m.GTMID,
				`" height="0" width="0" style="display:none;visibility:hidden"></iframe></noscript>`)
		}

		for _, a := range content.Announcements() {
			h.raw(`<div class="announcement" data-id="`)
			h.text(a.ID)
			h.raw(`" role="status">`)
			if a.Link != "" {
				h.raw(`<a href="`)
				h.href(a.Link)
				h.raw(`">`)
				h.text(a.Text)
				h.raw(`</a>`)
			} else {
				h.text(a.Text)
			}
			h.raw(`<button type="button" class="announcement-dismiss" aria-label="Dismiss">&times;</button></div>`)
		}

		h.raw(`<header><a class="brand" href="/">`)
		h.text(b.Name)
		h.raw(`</a><nav aria-label="Main"><ul>`)
		for _, link := range content.Nav() {
			h.raw(`<li><a href="`)
			h.href(link.Path)
			h.raw(`"`)
			if link.Path == m.Path {
				h.raw(` aria-current="page"`)
			}
			h.raw(`>`)
			h.text(link.Label)
			h.raw(`</a></li>`)
		}
		h.raw(`</ul></nav><a class="cta" href="`)
		h.href(b.BookingURL)
		h.raw(`">Book now</a></header><main>`)

		h.component(body)

		h.raw(`</main>`)
		h.component(footer(m))
		h.raw(`</body></html>`)
	})
}

func footer(m Meta) templ.Component {
	return component(func(h *htmlWriter) {
		b := content.Business()
		h.raw(`<footer><section><h2>Visit us</h2><address>`)
		h.text(b.Address.Street)
		h.raw(`<br>`)
		h.text(fmt.Sprintf("%s, %s %s", b.Address.City, b.Address.Region, b.Address.PostalCode))
		h.raw(`<br><a href="`)
		h.href(telURL(b.Phone))
		h.raw(`">`)
		h.text(b.Phone)
		h.raw(`</a><br><a href="`)
		h.href("mailto:" + b.Email)
		h.raw(`">`)
		h.text(b.Email)
		h.raw(`</a></address></section>`)

		h.raw(`<section><h2>Hours</h2>`)
		if !m.Now.IsZero() {
			h.raw(`<p class="open-status">`)
			h.text(content.Status(m.Now))
			h.raw(`</p>`)
		}
		h.raw(`<dl class="hours">`)
		for _, d := range b.Hours {
			h.raw(`<dt>`)
			h.text(d.Day.String())
			h.raw(`</dt><dd>`)
			h.text(content.FormatDayHours(d))
			h.raw(`</dd>`)
		}
		h.raw(`</dl></section><section><h2>Follow</h2><ul class="social">`)
		for _, s := range b.Social {
			h.raw(`<li><a href="`)
			h.href(s.URL)
			h.raw(`" rel="noopener">`)
			h.text(s.Network)
			h.raw(`</a></li>`)
		}
		h.raw(`</ul></section><p class="copyright">&copy; `)
		year := time.Now().Year()
		if !m.Now.IsZero() {
			year = m.Now.Year()
		}
		h.int(year)
		h.raw(` `)
		h.text(b.Name)
		h.raw(`</p></footer>`)
	})
}

func telURL(phone string) string {
	digits, ok := contact.PhoneDigitsOf(phone)
	if !ok {
		return "tel:" + phone
	}
	return "tel:+1" + digits
}
