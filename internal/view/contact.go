package view

import (
	"fmt"
	"net/url"

	"github.com/a-h/templ"

	"salonweb/internal/contact"
	"salonweb/internal/content"
	"salonweb/internal/model"
)

// ContactState is everything the contact page shows besides static content.
type ContactState struct {
	Form   contact.Form
	Errors contact.FieldErrors
	Sent   bool
	// Alert is a form-level message, shown above the fields.
	Alert string
	// Mailto is offered when the message could not be delivered.
	Mailto   string
	Services []string
}

// Contact renders the contact page with its form.
func Contact(m Meta, s ContactState) templ.Component {
	return Layout(m, component(func(h *htmlWriter) {
		b := content.Business()
		h.raw(`<h1>Contact us</h1><p>Questions about a service, a group booking, or a special request? Send us a note and we'll reply within one business day.</p>`)

		if s.Sent {
			h.raw(`<div class="alert success" role="status">Thanks! Your message is on its way. We'll be in touch soon.</div>`)
		}
		if s.Alert != "" {
			h.raw(`<div class="alert error" role="alert">`)
			h.text(s.Alert)
			if s.Mailto != "" {
				h.raw(` <a href="`)
				h.href(s.Mailto)
				h.raw(`">Email us directly</a>`)
			}
			h.raw(`</div>`)
		}

		h.raw(`<form method="post" action="/contact" novalidate>`)
		field(h, s, "name", "Name", "text", `autocomplete="name" required`)
		field(h, s, "email", "Email", "email", `autocomplete="email" required`)
		field(h, s, "phone", "Phone (optional)", "tel", `autocomplete="tel"`)

		h.raw(`<label for="service">Service</label><select id="service" name="service"><option value="">Not sure yet</option>`)
		for _, name := range s.Services {
			h.raw(`<option value="`)
			h.text(name)
			h.raw(`"`)
			if name == s.Form.Service {
				h.raw(` selected`)
			}
			h.raw(`>`)
			h.text(name)
			h.raw(`</option>`)
		}
		h.raw(`</select>`)
		fieldError(h, s.Errors, "service")

		h.raw(`<label for="message">Message</label><textarea id="message" name="message" rows="6" maxlength="`)
		h.int(contact.MessageMax)
		h.raw(`" required`)
		invalid(h, s.Errors, "message")
		h.raw(`>`)
		h.text(s.Form.Message)
		h.raw(`</textarea>`)
		fieldError(h, s.Errors, "message")

		// Honeypot: hidden from people and assistive tech.
		h.raw(`<div class="hp" aria-hidden="true" style="position:absolute;left:-10000px"><label for="website">Website</label>`,
			`<input id="website" name="website" type="text" tabindex="-1" autocomplete="off"></div>`)

		h.raw(`<button type="submit">Send message</button></form>`)

		h.raw(`<section class="contact-details"><h2>Other ways to reach us</h2><p><a href="`)
		h.href(telURL(b.Phone))
		h.raw(`">`)
		h.text(b.Phone)
		h.raw(`</a><br><a href="`)
		h.href("mailto:" + b.Email)
		h.raw(`">`)
		h.text(b.Email)
		h.raw(`</a></p></section>`)

		h.component(mapEmbed(m.MapsAPIKey, b))
	}))
}

func field(h *htmlWriter, s ContactState, name, label, typ, extra string) {
	value := map[string]string{"name": s.Form.Name, "email": s.Form.Email, "phone": s.Form.Phone}[name]
	h.raw(`<label for="`, name, `">`)
	h.text(label)
	h.raw(`</label><input id="`, name, `" name="`, name, `" type="`, typ, `" value="`)
	h.text(value)
	h.raw(`" `, extra)
	invalid(h, s.Errors, name)
	h.raw(`>`)
	fieldError(h, s.Errors, name)
}

func invalid(h *htmlWriter, errs contact.FieldErrors, name string) {
	if _, ok := errs[name]; ok {
		h.raw(` aria-invalid="true" aria-describedby="`, name, `-error"`)
	}
}

func fieldError(h *htmlWriter, errs contact.FieldErrors, name string) {
	msg, ok := errs[name]
	if !ok {
		return
	}
	h.raw(`<p class="field-error" id="`, name, `-error">`)
	h.text(msg)
	h.raw(`</p>`)
}

// mapEmbed renders the location map when a maps key is configured.
func mapEmbed(key string, b model.Business) templ.Component {
	return component(func(h *htmlWriter) {
		if key == "" {
			return
		}
		q := url.Values{}
		q.Set("key", key)
		q.Set("q", fmt.Sprintf("%s, %s, %s %s", b.Name, b.Address.Street, b.Address.City, b.Address.Region))
		q.Set("center", fmt.Sprintf("%.4f,%.4f", b.Geo.Lat, b.Geo.Lng))
		h.raw(`<section class="map"><iframe title="Map to `)
		h.text(b.Name)
		h.raw(`" src="`)
		h.href("https://www.google.com/maps/embed/v1/place?" + q.Encode())
		h.raw(`" width="600" height="400" style="border:0" loading="lazy" referrerpolicy="no-referrer-when-downgrade" allowfullscreen></iframe></section>`)
	})
}
