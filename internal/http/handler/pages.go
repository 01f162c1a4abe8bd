package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"salonweb/internal/apperr"
	"salonweb/internal/contact"
	"salonweb/internal/content"
	"salonweb/internal/service"
	"salonweb/internal/view"
)

// HomePage renders /.
func HomePage(site Site) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return render(c, fiber.StatusOK, view.Home(site.meta(c, "", ""), content.Services(), content.Testimonials(), content.Areas()))
	}
}

// ServicesPage renders the service menu.
func ServicesPage(site Site) fiber.Handler {
	return func(c *fiber.Ctx) error {
		m := site.meta(c, "Services & pricing", "Manicures, pedicures, gel, dip and extensions with transparent pricing.")
		return render(c, fiber.StatusOK, view.Services(m, content.Services()))
	}
}

// GalleryPage renders the gallery from object storage or the bundled set.
func GalleryPage(site Site, gallery service.GalleryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		images := gallery.List(c.UserContext())
		return render(c, fiber.StatusOK, view.Gallery(site.meta(c, "Gallery", "Recent nail art and manicures from our studio."), images))
	}
}

// AboutPage renders the studio story.
func AboutPage(site Site) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return render(c, fiber.StatusOK, view.About(site.meta(c, "About us", ""), content.Business()))
	}
}

// AreaPage renders a neighborhood landing page or 404.
func AreaPage(site Site) fiber.Handler {
	return func(c *fiber.Ctx) error {
		area, ok := content.AreaBySlug(c.Params("slug"))
		if !ok {
			return render(c, fiber.StatusNotFound, view.NotFound(site.meta(c, "Page not found", "")))
		}
		return render(c, fiber.StatusOK, view.Area(site.meta(c, area.Headline, area.Blurb), area, content.Services()))
	}
}

// ContactPage renders the empty contact form, or the thank-you state after a redirect.
func ContactPage(site Site) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state := view.ContactState{
			Sent:     c.Query("sent") == "1",
			Services: content.ServiceNames(),
		}
		return render(c, fiber.StatusOK, view.Contact(contactMeta(site, c), state))
	}
}

// SubmitContactForm handles the no-JS form post: redirect on success
// (post/redirect/get), otherwise re-render with messages.
func SubmitContactForm(site Site, svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form contact.Form
		if err := c.BodyParser(&form); err != nil {
			return render(c, fiber.StatusBadRequest, view.Contact(contactMeta(site, c), view.ContactState{
				Alert:    apperr.DefaultMessage(apperr.KindValidation),
				Services: content.ServiceNames(),
			}))
		}

		_, err := svc.Submit(c.UserContext(), service.SubmitInput{
			Form:      form,
			ClientIP:  ClientIP(c),
			UserAgent: c.Get(fiber.HeaderUserAgent),
		})
		if err == nil {
			return c.Redirect("/contact?sent=1", fiber.StatusSeeOther)
		}

		appErr, ok := apperr.As(err)
		if !ok {
			appErr = apperr.E(apperr.KindServer, err)
		}
		if appErr.RetryAfter > 0 {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfterSeconds(appErr)))
		}
		form.Website = ""
		state := view.ContactState{
			Form:     form,
			Errors:   appErr.Fields,
			Alert:    appErr.Message,
			Mailto:   appErr.Mailto,
			Services: content.ServiceNames(),
		}
		return render(c, apperr.HTTPStatus(appErr), view.Contact(contactMeta(site, c), state))
	}
}

func contactMeta(site Site, c *fiber.Ctx) view.Meta {
	return site.meta(c, "Contact", "Send us a message about services, group bookings or special requests.")
}
