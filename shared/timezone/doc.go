// Package timezone holds the application location used for every booking date.
//
// The location is configured via the APP_TIMEZONE environment variable and is
// initialized when the package is imported. When it is empty the system local
// time is used, which is how check-in and check-out values are interpreted by
// default.
//
//	t, err := timezone.Parse("2006-01-02 15:04:05", "2024-06-01 12:00:00")
//	loc := timezone.GetLocation()
//
// Use standard IANA names ("UTC", "Asia/Jakarta", "Europe/London").
package timezone
