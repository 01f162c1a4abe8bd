package handler

import (
	"github.com/gofiber/fiber/v2"

	"salonweb/internal/apperr"
	"salonweb/internal/contact"
	"salonweb/internal/content"
	"salonweb/internal/model"
	"salonweb/internal/service"
)

const contactThanks = "Thanks! Your message is on its way. We'll be in touch soon."

type contactResponse struct {
	ID      string              `json:"id"`
	Status  model.InquiryStatus `json:"status"`
	Message string              `json:"message"`
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func newList[T any](items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Items: items, Total: len(items)}
}

// SubmitContact godoc
// @Summary Send a contact inquiry
// @Description Validates the inquiry, applies the per-IP limit and emails it to the salon.
// @Tags contact
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param inquiry body contact.Form true "Inquiry"
// @Success 201 {object} contactResponse
// @Failure 400 {object} errorPayload
// @Failure 429 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /api/contact [post]
func SubmitContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form contact.Form
		if err := c.BodyParser(&form); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "request body must be JSON or form encoded")
		}

		res, err := svc.Submit(c.UserContext(), service.SubmitInput{
			Form:      form,
			ClientIP:  ClientIP(c),
			UserAgent: c.Get(fiber.HeaderUserAgent),
		})
		if err != nil {
			if appErr, ok := apperr.As(err); ok {
				return writeAppError(c, appErr)
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		return c.Status(fiber.StatusCreated).JSON(contactResponse{
			ID:      res.InquiryID,
			Status:  res.Status,
			Message: contactThanks,
		})
	}
}

// GetBusiness godoc
// @Summary Business details, hours and current open status
// @Tags site
// @Produce json
// @Success 200 {object} businessResponse
// @Router /api/business [get]
func GetBusiness(site Site) fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := site.now()
		return c.JSON(businessResponse{
			Business: content.Business(),
			OpenNow:  content.IsOpenAt(now),
			Status:   content.Status(now),
		})
	}
}

type businessResponse struct {
	model.Business
	OpenNow bool   `json:"open_now"`
	Status  string `json:"status"`
}

// ListServices godoc
// @Summary Service menu
// @Tags site
// @Produce json
// @Success 200 {object} listResponse[model.ServiceCategory]
// @Router /api/services [get]
func ListServices() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(newList(content.Services()))
	}
}

// ListAreas godoc
// @Summary Service areas
// @Tags site
// @Produce json
// @Success 200 {object} listResponse[model.Area]
// @Router /api/areas [get]
func ListAreas() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(newList(content.Areas()))
	}
}

// GetArea godoc
// @Summary Service area by slug
// @Tags site
// @Produce json
// @Param slug path string true "Area slug"
// @Success 200 {object} model.Area
// @Failure 404 {object} errorPayload
// @Router /api/areas/{slug} [get]
func GetArea() fiber.Handler {
	return func(c *fiber.Ctx) error {
		area, ok := content.AreaBySlug(c.Params("slug"))
		if !ok {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "area not found")
		}
		return c.JSON(area)
	}
}

// ListGallery godoc
// @Summary Gallery images
// @Tags site
// @Produce json
// @Success 200 {object} listResponse[model.GalleryImage]
// @Router /api/gallery [get]
func ListGallery(gallery service.GalleryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(newList(gallery.List(c.UserContext())))
	}
}
