// Package content holds the salon's static site data: business details, hours,
// navigation, the service menu, testimonials, service areas and default gallery.
//
// Everything here is a constant literal. Accessors return copies so callers
// cannot mutate shared state.
package content

import (
	"slices"
	"strings"
	"time"

	"salonweb/internal/model"
)

var business = model.Business{
	Name:        "Lacquer Lounge Nail Studio",
	Tagline:     "Clean, calm, and meticulous nail care in Cedar Park",
	Description: "A boutique nail studio offering manicures, pedicures, gel and dip systems, extensions, and hand-painted nail art. Every tool is sterilized in a medical-grade autoclave and every pedicure basin is pipeless.",
	Phone:       "(512) 555-0142",
	Email:       "hello@lacquerloungenails.com",
	BookingURL:  "https://booking.lacquerloungenails.com",
	Address: model.Address{
		Street:     "1208 Maple Avenue, Suite 110",
		City:       "Cedar Park",
		Region:     "TX",
		PostalCode: "78613",
		Country:    "US",
	},
	Geo: model.GeoPoint{Lat: 30.5052, Lng: -97.8203},
	Social: []model.SocialLink{
		{Network: "instagram", URL: "https://instagram.com/lacquerloungenails"},
		{Network: "facebook", URL: "https://facebook.com/lacquerloungenails"},
		{Network: "tiktok", URL: "https://tiktok.com/@lacquerloungenails"},
	},
	Hours: []model.DayHours{
		{Day: time.Sunday, Open: 11 * 60, Close: 17 * 60},
		{Day: time.Monday, Closed: true},
		{Day: time.Tuesday, Open: 9*60 + 30, Close: 19 * 60},
		{Day: time.Wednesday, Open: 9*60 + 30, Close: 19 * 60},
		{Day: time.Thursday, Open: 9*60 + 30, Close: 20 * 60},
		{Day: time.Friday, Open: 9*60 + 30, Close: 20 * 60},
		{Day: time.Saturday, Open: 9 * 60, Close: 18 * 60},
	},
	PriceRange: "$$",
	TimeZone:   "America/Chicago",
	Founded:    2016,
	Highlights: []string{
		"Autoclave-sterilized metal tools, single-use files and buffers",
		"Pipeless pedicure chairs, disinfected between every guest",
		"Non-toxic, 10-free polish line and HEMA-free gel options",
		"Walk-ins welcome when a technician is free",
	},
	Team: []model.TeamMember{
		{Name: "Mai Tran", Role: "Owner & Lead Technician", Specialty: "Structured gel and hand-painted art"},
		{Name: "Jasmine Ortiz", Role: "Senior Technician", Specialty: "Russian manicures and e-file work"},
		{Name: "Linh Pham", Role: "Technician", Specialty: "Spa pedicures and paraffin treatments"},
		{Name: "Taylor Brooks", Role: "Technician", Specialty: "Acrylic and Gel-X extensions"},
	},
	Policies: []string{
		"Please arrive five minutes early; appointments more than 15 minutes late may need to be rescheduled.",
		"We ask for 24 hours notice to cancel or reschedule.",
		"Fixes within 5 days of your appointment are complimentary.",
		"Guests under 12 must be accompanied by an adult.",
	},
	Payment: []string{"Visa", "Mastercard", "American Express", "Discover", "Apple Pay", "Cash"},
}

var nav = []model.NavLink{
	{Label: "Home", Path: "/"},
	{Label: "Services", Path: "/services"},
	{Label: "Gallery", Path: "/gallery"},
	{Label: "About", Path: "/about"},
	{Label: "Contact", Path: "/contact"},
}

var services = []model.ServiceCategory{
	{
		Slug:        "manicures",
		Name:        "Manicures",
		Description: "Every manicure includes nail shaping, cuticle care, and a hand massage.",
		Items: []model.ServiceItem{
			{Name: "Classic Manicure", PriceCents: 2800, Minutes: 30},
			{Name: "Gel Manicure", Description: "Long-wear gel color, cured under LED.", PriceCents: 4200, Minutes: 45},
			{Name: "Russian Manicure", Description: "Dry e-file cuticle work for a clean, long-lasting finish.", PriceCents: 5500, Minutes: 75},
			{Name: "Gel Removal", PriceCents: 1000, Minutes: 15},
		},
	},
	{
		Slug:        "pedicures",
		Name:        "Pedicures",
		Description: "Pipeless basins, fresh liners, and a heated towel wrap for every guest.",
		Items: []model.ServiceItem{
			{Name: "Classic Pedicure", PriceCents: 3800, Minutes: 40},
			{Name: "Spa Pedicure", Description: "Sugar scrub, mask, and extended massage.", PriceCents: 5200, Minutes: 55},
			{Name: "Deluxe Paraffin Pedicure", Description: "Adds paraffin wax and hot stones.", PriceCents: 6800, Minutes: 70},
			{Name: "Gel Upgrade", PriceCents: 1500, Minutes: 15},
		},
	},
	{
		Slug:        "enhancements",
		Name:        "Enhancements",
		Description: "Length and strength, shaped to suit you.",
		Items: []model.ServiceItem{
			{Name: "Acrylic Full Set", PriceCents: 5500, PriceFrom: true, Minutes: 75},
			{Name: "Gel-X Full Set", PriceCents: 6500, PriceFrom: true, Minutes: 90},
			{Name: "Dip Powder", PriceCents: 4800, Minutes: 60},
			{Name: "Structured Gel Overlay", PriceCents: 5800, Minutes: 75},
			{Name: "Fill", PriceCents: 4000, PriceFrom: true, Minutes: 60},
		},
	},
	{
		Slug:        "nail-art",
		Name:        "Nail Art",
		Description: "Priced per set; bring an inspiration photo and we will quote it at your appointment.",
		Items: []model.ServiceItem{
			{Name: "French or Color Tips", PriceCents: 1000, Minutes: 15},
			{Name: "Chrome or Cat-Eye", PriceCents: 1200, Minutes: 15},
			{Name: "Hand-Painted Designs", PriceCents: 1500, PriceFrom: true, Minutes: 30},
			{Name: "3D Charms and Gems", PriceCents: 500, PriceFrom: true, Minutes: 10},
		},
	},
}

var testimonials = []model.Testimonial{
	{Author: "Rachel K.", Rating: 5, Source: "Google", Text: "Spotless studio and the most precise gel manicure I've ever had. It lasted three full weeks."},
	{Author: "Denise M.", Rating: 5, Source: "Google", Text: "Linh's spa pedicure is worth every penny. I love that they use pipeless tubs."},
	{Author: "Priya S.", Rating: 5, Source: "Yelp", Text: "Mai recreated a design from a photo perfectly. Friendly, on time, and no upselling."},
	{Author: "Alex W.", Rating: 4, Source: "Facebook", Text: "Great Gel-X set; booking online was easy. Parking fills up on Saturdays."},
}

var areas = []model.Area{
	{
		Slug:          "cedar-park",
		City:          "Cedar Park",
		Headline:      "Nail salon in Cedar Park, TX",
		Blurb:         "Right off Whitestone Boulevard, Lacquer Lounge is the neighborhood studio for Cedar Park manicures, pedicures, and nail art.",
		DriveMinutes:  0,
		Neighborhoods: []string{"Buttercup Creek", "Twin Creeks", "Ranch at Brushy Creek", "Cedar Park Town Center"},
		Landmarks:     []string{"H-E-B Plus", "Cedar Park Regional Medical Center"},
	},
	{
		Slug:          "leander",
		City:          "Leander",
		Headline:      "Manicures and pedicures near Leander",
		Blurb:         "A short drive down 183A from Leander, with evening appointments Thursday and Friday.",
		DriveMinutes:  12,
		Neighborhoods: []string{"Crystal Falls", "Travisso", "Block House Creek", "Mason Hills"},
		Landmarks:     []string{"Leander Station", "Austin Community College San Gabriel"},
	},
	{
		Slug:          "round-rock",
		City:          "Round Rock",
		Headline:      "Nail studio serving Round Rock",
		Blurb:         "Round Rock guests come for our structured gel and Russian manicures, about fifteen minutes west on 1431.",
		DriveMinutes:  15,
		Neighborhoods: []string{"Brushy Creek", "Behrens Ranch", "Forest Creek", "Teravista"},
		Landmarks:     []string{"Round Rock Premium Outlets", "Dell Diamond"},
	},
	{
		Slug:          "northwest-austin",
		City:          "Northwest Austin",
		Headline:      "Boutique nail care near Northwest Austin",
		Blurb:         "Skip the crowded downtown salons; we are twenty minutes up 183 with easy parking.",
		DriveMinutes:  20,
		Neighborhoods: []string{"Anderson Mill", "Jollyville", "Avery Ranch", "Lakeline"},
		Landmarks:     []string{"Lakeline Mall", "The Domain"},
	},
}

var gallery = []model.GalleryImage{
	{Key: "gallery/chrome-french.jpg", URL: "/static/gallery/chrome-french.jpg", Alt: "Chrome French tips on almond nails", Caption: "Chrome French"},
	{Key: "gallery/floral-gel.jpg", URL: "/static/gallery/floral-gel.jpg", Alt: "Hand-painted floral gel manicure", Caption: "Hand-painted florals"},
	{Key: "gallery/nude-structured-gel.jpg", URL: "/static/gallery/nude-structured-gel.jpg", Alt: "Nude structured gel overlay", Caption: "Structured gel"},
	{Key: "gallery/red-pedicure.jpg", URL: "/static/gallery/red-pedicure.jpg", Alt: "Classic red spa pedicure", Caption: "Spa pedicure"},
	{Key: "gallery/cat-eye-coffin.jpg", URL: "/static/gallery/cat-eye-coffin.jpg", Alt: "Cat-eye gel on coffin Gel-X extensions", Caption: "Cat-eye Gel-X"},
	{Key: "gallery/minimal-dots.jpg", URL: "/static/gallery/minimal-dots.jpg", Alt: "Minimal dot art on short natural nails", Caption: "Minimal art"},
}

var announcements = []model.Announcement{
	{ID: "holiday-gift-cards", Text: "Gift cards are available in studio and online.", Link: "/contact"},
	{ID: "thursday-late", Text: "Now open until 8 PM on Thursdays and Fridays."},
}

// Business returns the salon details.
func Business() model.Business {
	b := business
	b.Social = slices.Clone(business.Social)
	b.Hours = slices.Clone(business.Hours)
	b.Highlights = slices.Clone(business.Highlights)
	b.Team = slices.Clone(business.Team)
	b.Policies = slices.Clone(business.Policies)
	b.Payment = slices.Clone(business.Payment)
	return b
}

// Nav returns the primary navigation links.
func Nav() []model.NavLink { return slices.Clone(nav) }

// Services returns the service menu.
func Services() []model.ServiceCategory {
	out := make([]model.ServiceCategory, len(services))
	for i, c := range services {
		c.Items = slices.Clone(c.Items)
		out[i] = c
	}
	return out
}

// ServiceNames lists every service item name, used to populate the contact form.
func ServiceNames() []string {
	var names []string
	for _, c := range services {
		for _, it := range c.Items {
			names = append(names, it.Name)
		}
	}
	return names
}

// Testimonials returns client reviews.
func Testimonials() []model.Testimonial { return slices.Clone(testimonials) }

// Areas returns the service-area landing pages.
func Areas() []model.Area {
	out := make([]model.Area, len(areas))
	for i, a := range areas {
		out[i] = cloneArea(a)
	}
	return out
}

// AreaBySlug looks up an area landing page. Matching ignores case and surrounding space.
func AreaBySlug(slug string) (model.Area, bool) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, a := range areas {
		if a.Slug == slug {
			return cloneArea(a), true
		}
	}
	return model.Area{}, false
}

// Gallery returns the bundled gallery images.
func Gallery() []model.GalleryImage { return slices.Clone(gallery) }

// Announcements returns banner messages.
func Announcements() []model.Announcement { return slices.Clone(announcements) }

func cloneArea(a model.Area) model.Area {
	a.Neighborhoods = slices.Clone(a.Neighborhoods)
	a.Landmarks = slices.Clone(a.Landmarks)
	return a
}
