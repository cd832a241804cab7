package domain

import "time"

// ServiceStatus enumerates catalog listing states.
type ServiceStatus string

const (
	ServiceStatusActive    ServiceStatus = "active"
	ServiceStatusInactive  ServiceStatus = "inactive"
	ServiceStatusSuspended ServiceStatus = "suspended"
	ServiceStatusDraft     ServiceStatus = "draft"
)

// PricingType enumerates how a service is charged.
type PricingType string

const (
	PricingFixed  PricingType = "fixed_price"
	PricingHourly PricingType = "hourly"
	PricingQuote  PricingType = "quote"
)

// ServicePricing describes the price model of a listing.
type ServicePricing struct {
	Type          PricingType `json:"type"`
	BasePrice     *float64    `json:"base_price,omitempty"`
	HourlyRate    *float64    `json:"hourly_rate,omitempty"`
	EmergencyRate *float64    `json:"emergency_rate,omitempty"`
	Currency      string      `json:"currency"`
}

// ServiceLocation describes where the service is performed.
type ServiceLocation struct {
	Type          string       `json:"type"`
	ServiceRadius *float64     `json:"service_radius,omitempty"`
	Coordinates   *Coordinates `json:"coordinates,omitempty"`
}

// ServiceMetrics is the per-listing counter snapshot.
type ServiceMetrics struct {
	Views       int     `json:"views"`
	Requests    int     `json:"requests"`
	Completions int     `json:"completions"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
}

// Service is one catalog listing published by a professional.
type Service struct {
	ID             string          `json:"id"`
	ProfessionalID string          `json:"professional_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	Subcategory    *string         `json:"subcategory,omitempty"`
	Tags           []string        `json:"tags"`
	Images         []string        `json:"images"`
	Pricing        ServicePricing  `json:"pricing"`
	Location       ServiceLocation `json:"location"`
	Status         ServiceStatus   `json:"status"`
	Featured       bool            `json:"featured"`
	Emergency      bool            `json:"emergency"`
	Metrics        ServiceMetrics  `json:"metrics"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      *time.Time      `json:"deleted_at,omitempty"`
}
