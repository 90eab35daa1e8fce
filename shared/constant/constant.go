package constant

import (
	"time"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID            = "id"
	RequestParamTableID       = "tableId"
	RequestParamReservationID = "reservationId"
	RequestParamWaitlistID    = "waitlistId"
	RequestParamDate          = "date"
	RequestParamPartySize     = "party_size"
	RequestParamDuration      = "duration"
	RequestParamStatus        = "status"
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	FieldCreatedAt  = "created_at"
	FieldModifiedAt = "modified_at"
)

const (
	PqErrorCodeUniqueViolation      = "23505"
	PqErrorCodeFkViolation          = "23503"
	PqErrorCodeSerializationFailure = "40001"
	PqErrorCodeDeadlockDetected     = "40P01"
)

const (
	DateFormat  = time.RFC3339
	DateOnly    = time.DateOnly
	ClockFormat = "15:04"
)

// Booking policy defaults, overridable through the BOOKING config section.
const (
	MinDurationMinutes     = 30
	MaxDurationMinutes     = 240
	DefaultDurationMinutes = 90
	DefaultSlotMinutes     = 120
	TimeIncrementMinutes   = 30
)

const (
	BookingMaxAttempts = 3
)

const (
	MinutesToHour    = 60
	MinutesToSeconds = 60
)

const (
	CacheKeyAvailabilityPrefix = "availability"
	CacheKeyRestaurantPrefix   = "restaurant"
)

const (
	KafkaTopicReservationCreated   = "reservation.created"
	KafkaTopicReservationModified  = "reservation.modified"
	KafkaTopicReservationCancelled = "reservation.cancelled"
	KafkaTopicWaitlistNotified     = "waitlist.notified"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
