package handler

import (
	"net"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"

	"salonweb/internal/view"
)

// Site holds the per-deployment values every page needs.
type Site struct {
	BaseURL    string
	GTMID      string
	MapsAPIKey string
	// Now defaults to time.Now.
	Now func() time.Time
}

func (s Site) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s Site) meta(c *fiber.Ctx, title, description string) view.Meta {
	return view.Meta{
		Title:       title,
		Description: description,
		Path:        c.Path(),
		BaseURL:     strings.TrimSuffix(s.BaseURL, "/"),
		GTMID:       s.GTMID,
		MapsAPIKey:  s.MapsAPIKey,
		Now:         s.now(),
	}
}

func render(c *fiber.Ctx, status int, comp templ.Component) error {
	c.Status(status).Type("html", "utf-8")
	return comp.Render(c.UserContext(), c.Response().BodyWriter())
}

// WithTrustedProxies makes c.IP() read header only when the peer is one of
// trusted (IPs or CIDR ranges). Any other peer is identified by its socket address.
func WithTrustedProxies(cfg fiber.Config, trusted []string, header string) fiber.Config {
	cfg.EnableTrustedProxyCheck = true
	cfg.TrustedProxies = trusted
	cfg.EnableIPValidation = true
	if len(trusted) > 0 {
		cfg.ProxyHeader = header
	}
	return cfg
}

// ClientIP resolves the visitor address used for rate limiting and access logs.
// The app must be configured with WithTrustedProxies for proxy headers to count.
func ClientIP(c *fiber.Ctx) string {
	if ip := c.IP(); net.ParseIP(ip) != nil {
		return ip
	}
	return "unknown"
}
