package constant

const (
	// DateTimeLayout is the textual form of every check-in and check-out value.
	DateTimeLayout = "2006-01-02 15:04:05"
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04:05"
)

const (
	HoursPerDay = 24
	CheckInHour = 12
)

const (
	RoomStatusAvailable = "available"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusDone      = "done"
	BookingStatusCancelled = "cancelled"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"

	OtelQueryAttributeKey = "query"
)
