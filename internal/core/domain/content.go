package domain

import "time"

// Agreement is a contract with an external party, optionally carrying the
// signed PDF.
type Agreement struct {
	Meta      `bson:",inline"`
	Title     string    `json:"title" bson:"title" validate:"required"`
	Party     string    `json:"party" bson:"party" validate:"required"`
	StartDate time.Time `json:"start_date" bson:"start_date"`
	EndDate   time.Time `json:"end_date" bson:"end_date"`
	Status    string    `json:"status" bson:"status" validate:"omitempty,oneof=draft active expired terminated"`
	Document  *FileRef  `json:"document,omitempty" bson:"document,omitempty"`
}

// Banner is a promotional image slot on the public site. The form tags allow
// the create request to arrive as multipart, image alongside the fields.
type Banner struct {
	Meta      `bson:",inline"`
	Title     string   `json:"title" form:"title" bson:"title" validate:"required"`
	Position  string   `json:"position" form:"position" bson:"position" validate:"required"`
	TargetURL string   `json:"target_url,omitempty" form:"target_url" bson:"target_url,omitempty" validate:"omitempty,url"`
	Language  string   `json:"language" form:"language" bson:"language" validate:"required"`
	Active    bool     `json:"active" form:"active" bson:"active"`
	Image     *FileRef `json:"image,omitempty" bson:"image,omitempty"`
}

// Coupon is a discount code redeemable by subscribers.
type Coupon struct {
	Meta            `bson:",inline"`
	Code            string    `json:"code" bson:"code" validate:"required"`
	Description     string    `json:"description,omitempty" bson:"description,omitempty"`
	DiscountPercent float64   `json:"discount_percent" bson:"discount_percent" validate:"required,gt=0,lte=100"`
	ValidFrom       time.Time `json:"valid_from" bson:"valid_from"`
	ValidTo         time.Time `json:"valid_to" bson:"valid_to"`
	MaxRedemptions  int       `json:"max_redemptions" bson:"max_redemptions" validate:"gte=0"`
	Status          string    `json:"status" bson:"status" validate:"omitempty,oneof=active inactive expired"`
}

// Currency is an exchange-rate entry used when pricing across regions.
type Currency struct {
	Meta         `bson:",inline"`
	Code         string  `json:"code" bson:"code" validate:"required,len=3"`
	Name         string  `json:"name" bson:"name" validate:"required"`
	Symbol       string  `json:"symbol" bson:"symbol" validate:"required"`
	ExchangeRate float64 `json:"exchange_rate" bson:"exchange_rate" validate:"required,gt=0"`
	Base         bool    `json:"base" bson:"base"`
}

// Event is a scheduled public event.
type Event struct {
	Meta     `bson:",inline"`
	Title    string    `json:"title" bson:"title" validate:"required"`
	Venue    string    `json:"venue" bson:"venue" validate:"required"`
	City     string    `json:"city,omitempty" bson:"city,omitempty"`
	StartsAt time.Time `json:"starts_at" bson:"starts_at"`
	EndsAt   time.Time `json:"ends_at" bson:"ends_at"`
	Language string    `json:"language" bson:"language" validate:"required"`
	Category string    `json:"category" bson:"category" validate:"required"`
	Status   string    `json:"status" bson:"status" validate:"omitempty,oneof=draft published cancelled"`
}

// News is a published news item.
type News struct {
	Meta        `bson:",inline"`
	Title       string     `json:"title" bson:"title" validate:"required"`
	Slug        string     `json:"slug" bson:"slug" validate:"required"`
	Language    string     `json:"language" bson:"language" validate:"required"`
	Category    string     `json:"category" bson:"category" validate:"required"`
	Summary     string     `json:"summary,omitempty" bson:"summary,omitempty"`
	Body        string     `json:"body" bson:"body" validate:"required"`
	PublishedAt *time.Time `json:"published_at,omitempty" bson:"published_at,omitempty"`
	Status      string     `json:"status" bson:"status" validate:"omitempty,oneof=draft published archived"`
}

// Podcast is an episode record. Creation is two-step: the details are saved
// first, then the media file is attached against the now-known identity and
// processed asynchronously.
type Podcast struct {
	Meta        `bson:",inline"`
	Title       string    `json:"title" bson:"title" validate:"required"`
	Host        string    `json:"host" bson:"host" validate:"required"`
	Language    string    `json:"language" bson:"language" validate:"required"`
	Category    string    `json:"category" bson:"category" validate:"required"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Episode     int       `json:"episode" bson:"episode" validate:"required,gt=0"`
	Cover       *FileRef  `json:"cover,omitempty" bson:"cover,omitempty"`
	Media       *MediaRef `json:"media,omitempty" bson:"media,omitempty"`
	Status      string    `json:"status" bson:"status" validate:"omitempty,oneof=draft published archived"`
}
