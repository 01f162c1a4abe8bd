package view

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"salonweb/internal/content"
	"salonweb/internal/model"
)

// Home renders the landing page.
func Home(m Meta, cats []model.ServiceCategory, reviews []model.Testimonial, areas []model.Area) templ.Component {
	return Layout(m, component(func(h *htmlWriter) {
		b := content.Business()
		h.raw(`<section class="hero"><h1>`)
		h.text(b.Name)
		h.raw(`</h1><p class="tagline">`)
		h.text(b.Tagline)
		h.raw(`</p>`)
		if !m.Now.IsZero() {
			h.raw(`<p class="open-status">`)
			h.text(content.Status(m.Now))
			h.raw(`</p>`)
		}
		h.raw(`<a class="cta" href="`)
		h.href(b.BookingURL)
		h.raw(`">Book an appointment</a> <a href="`)
		h.href(telURL(b.Phone))
		h.raw(`">Call `)
		h.text(b.Phone)
		h.raw(`</a></section>`)

		h.raw(`<section class="highlights"><h2>Why guests choose us</h2><ul>`)
		for _, hl := range b.Highlights {
			h.raw(`<li>`)
			h.text(hl)
			h.raw(`</li>`)
		}
		h.raw(`</ul></section>`)

		h.raw(`<section class="featured"><h2>Services</h2>`)
		for _, c := range cats {
			h.raw(`<article><h3><a href="/services#`)
			h.text(c.Slug)
			h.raw(`">`)
			h.text(c.Name)
			h.raw(`</a></h3><p>`)
			h.text(c.Description)
			h.raw(`</p>`)
			if from, ok := startingPrice(c); ok {
				h.raw(`<p class="price">From `)
				h.text(from)
				h.raw(`</p>`)
			}
			h.raw(`</article>`)
		}
		h.raw(`</section>`)

		h.component(testimonials(reviews))

		if len(areas) > 0 {
			h.raw(`<section class="areas"><h2>Proudly serving</h2><ul>`)
			for _, a := range areas {
				h.raw(`<li><a href="/areas/`)
				h.text(a.Slug)
				h.raw(`">`)
				h.text(a.City)
				h.raw(`</a></li>`)
			}
			h.raw(`</ul></section>`)
		}
	}))
}

func testimonials(reviews []model.Testimonial) templ.Component {
	return component(func(h *htmlWriter) {
		if len(reviews) == 0 {
			return
		}
		h.raw(`<section class="testimonials"><h2>What our clients say</h2>`)
		for _, r := range reviews {
			h.raw(`<blockquote><p>`)
			h.text(r.Text)
			h.raw(`</p><footer>`)
			h.text(r.Author)
			if r.Rating > 0 {
				h.raw(` <span class="rating" aria-label="`)
				h.int(r.Rating)
				h.raw(` out of 5 stars">`)
				h.raw(strings.Repeat("&#9733;", min(r.Rating, 5)))
				h.raw(`</span>`)
			}
			if r.Source != "" {
				h.raw(` via `)
				h.text(r.Source)
			}
			h.raw(`</footer></blockquote>`)
		}
		h.raw(`</section>`)
	})
}

func startingPrice(c model.ServiceCategory) (string, bool) {
	if len(c.Items) == 0 {
		return "", false
	}
	low := c.Items[0].PriceCents
	for _, it := range c.Items[1:] {
		low = min(low, it.PriceCents)
	}
	return content.FormatPrice(low, false), true
}

// Services renders the full service menu.
func Services(m Meta, cats []model.ServiceCategory) templ.Component {
	return Layout(m, component(func(h *htmlWriter) {
		h.raw(`<h1>Services &amp; pricing</h1>`)
		for _, c := range cats {
			h.raw(`<section id="`)
			h.text(c.Slug)
			h.raw(`"><h2>`)
			h.text(c.Name)
			h.raw(`</h2><p>`)
			h.text(c.Description)
			h.raw(`</p><table><thead><tr><th>Service</th><th>Time</th><th>Price</th></tr></thead><tbody>`)
			for _, it := range c.Items {
				h.raw(`<tr><td>`)
				h.text(it.Name)
				if it.Description != "" {
					h.raw(`<br><small>`)
					h.text(it.Description)
					h.raw(`</small>`)
				}
				h.raw(`</td><td>`)
				if it.Minutes > 0 {
					h.text(fmt.Sprintf("%d min", it.Minutes))
				}
				h.raw(`</td><td>`)
				h.text(content.FormatPrice(it.PriceCents, it.PriceFrom))
				h.raw(`</td></tr>`)
			}
			h.raw(`</tbody></table></section>`)
		}
		h.raw(`<p><a class="cta" href="`)
		h.href(content.Business().BookingURL)
		h.raw(`">Book online</a></p>`)
	}))
}

// Gallery renders the image gallery.
func Gallery(m Meta, images []model.GalleryImage) templ.Component {
	return Layout(m, component(func(h *htmlWriter) {
		h.raw(`<h1>Gallery</h1><div class="gallery">`)
		for _, img := range images {
			h.raw(`<figure><img src="`)
			h.href(img.URL)
			h.raw(`" alt="`)
			h.text(img.Alt)
			h.raw(`" loading="lazy">`)
			if img.Caption != "" {
				h.raw(`<figcaption>`)
				h.text(img.Caption)
				h.raw(`</figcaption>`)
			}
			h.raw(`</figure>`)
		}
		h.raw(`</div>`)
	}))
}

// About renders the studio story, team and policies.
func About(m Meta, b model.Business) templ.Component {
	return Layout(m, component(func(h *htmlWriter) {
		h.raw(`<h1>About `)
		h.text(b.Name)
		h.raw(`</h1><p>`)
		h.text(b.Description)
		h.raw(`</p>`)
		if b.Founded > 0 {
			h.raw(`<p>Serving `)
			h.text(b.Address.City)
			h.raw(` since `)
			h.int(b.Founded)
			h.raw(`.</p>`)
		}

		h.raw(`<section><h2>Our team</h2><ul class="team">`)
		for _, t := range b.Team {
			h.raw(`<li><strong>`)
			h.text(t.Name)
			h.raw(`</strong>, `)
			h.text(t.Role)
			if t.Specialty != "" {
				h.raw(`<br><small>`)
				h.text(t.Specialty)
				h.raw(`</small>`)
			}
			h.raw(`</li>`)
		}
		h.raw(`</ul></section>`)

		list(h, "Cleanliness", b.Highlights)
		list(h, "Policies", b.Policies)
		list(h, "Payment", b.Payment)
	}))
}

func list(h *htmlWriter, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	h.raw(`<section><h2>`)
	h.text(heading)
	h.raw(`</h2><ul>`)
	for _, it := range items {
		h.raw(`<li>`)
		h.text(it)
		h.raw(`</li>`)
	}
	h.raw(`</ul></section>`)
}

// Area renders a neighborhood landing page.
func Area(m Meta, a model.Area, cats []model.ServiceCategory) templ.Component {
	return Layout(m, component(func(h *htmlWriter) {
		b := content.Business()
		h.raw(`<h1>`)
		h.text(a.Headline)
		h.raw(`</h1><p>`)
		h.text(a.Blurb)
		h.raw(`</p>`)
		if a.DriveMinutes > 0 {
			h.raw(`<p>About `)
			h.int(a.DriveMinutes)
			h.raw(` minutes from `)
			h.text(a.City)
			h.raw(` to our studio at `)
			h.text(b.Address.Street)
			h.raw(`, `)
			h.text(b.Address.City)
			h.raw(`.</p>`)
		}
		list(h, "Neighborhoods we serve", a.Neighborhoods)
		list(h, "Nearby landmarks", a.Landmarks)

		h.raw(`<section><h2>Popular services</h2><ul>`)
		for _, c := range cats {
			h.raw(`<li><a href="/services#`)
			h.text(c.Slug)
			h.raw(`">`)
			h.text(c.Name)
			h.raw(`</a></li>`)
		}
		h.raw(`</ul></section><p><a class="cta" href="`)
		h.href(b.BookingURL)
		h.raw(`">Book your visit</a> or <a href="/contact">send us a message</a>.</p>`)
	}))
}

// NotFound renders the 404 page.
func NotFound(m Meta) templ.Component {
	return Layout(m, component(func(h *htmlWriter) {
		h.raw(`<h1>Page not found</h1><p>We couldn't find that page. Try the <a href="/services">service menu</a> or <a href="/contact">get in touch</a>.</p>`)
	}))
}

// ServerError renders a generic failure page.
func ServerError(m Meta) templ.Component {
	return Layout(m, component(func(h *htmlWriter) {
		h.raw(`<h1>Something went wrong</h1><p>Please try again in a moment, or call us at `)
		h.text(content.Business().Phone)
		h.raw(`.</p>`)
	}))
}
