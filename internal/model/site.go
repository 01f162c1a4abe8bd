package model

import "time"

// Business is the salon's public contact and location information.
type Business struct {
	Name        string       `json:"name"`
	Tagline     string       `json:"tagline"`
	Description string       `json:"description"`
	Phone       string       `json:"phone"`
	Email       string       `json:"email"`
	BookingURL  string       `json:"booking_url"`
	Address     Address      `json:"address"`
	Geo         GeoPoint     `json:"geo"`
	Social      []SocialLink `json:"social"`
	Hours       []DayHours   `json:"hours"`
	PriceRange  string       `json:"price_range"`
	TimeZone    string       `json:"time_zone"`
	Founded     int          `json:"founded"`
	Highlights  []string     `json:"highlights"`
	Team        []TeamMember `json:"team"`
	Policies    []string     `json:"policies"`
	Payment     []string     `json:"payment_methods"`
}

// Address is a postal address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// GeoPoint is a latitude/longitude pair used to center the map widget.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SocialLink points to a social profile.
type SocialLink struct {
	Network string `json:"network"`
	URL     string `json:"url"`
}

// DayHours are the opening hours for one weekday. Closed days have Closed set.
// Open and Close are minutes after midnight in the salon's time zone.
type DayHours struct {
	Day    time.Weekday `json:"day"`
	Open   int          `json:"open"`
	Close  int          `json:"close"`
	Closed bool         `json:"closed"`
}

// TeamMember is a technician shown on the about page.
type TeamMember struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Specialty string `json:"specialty"`
}

// NavLink is a navigation entry.
type NavLink struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// ServiceCategory groups priced services on the services page.
type ServiceCategory struct {
	Slug        string        `json:"slug"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Items       []ServiceItem `json:"items"`
}

// ServiceItem is one priced service. PriceCents is the starting price.
type ServiceItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int    `json:"price_cents"`
	PriceFrom   bool   `json:"price_from"`
	Minutes     int    `json:"minutes"`
}

// Testimonial is a client review.
type Testimonial struct {
	Author string `json:"author"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	Source string `json:"source"`
}

// Area is a neighborhood landing page.
type Area struct {
	Slug          string   `json:"slug"`
	City          string   `json:"city"`
	Headline      string   `json:"headline"`
	Blurb         string   `json:"blurb"`
	DriveMinutes  int      `json:"drive_minutes"`
	Neighborhoods []string `json:"neighborhoods"`
	Landmarks     []string `json:"landmarks"`
}

// GalleryImage is one gallery entry.
type GalleryImage struct {
	Key     string `json:"key"`
	URL     string `json:"url"`
	Alt     string `json:"alt"`
	Caption string `json:"caption,omitempty"`
}

// Announcement is a dismissible banner message.
type Announcement struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Link string `json:"link,omitempty"`
}
