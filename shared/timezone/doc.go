// Package timezone provides timezone utilities for the application.
//
// Usage:
//
//	now := timezone.Now()                          // current time in app timezone
//	today := timezone.Today()                      // midnight of the current day
//	t, err := timezone.Parse("02-01-2006", "25-12-2030")
//	formatted := timezone.Format(t, time.RFC3339)
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is initialized when the package is imported. Use IANA timezone
// database names such as "UTC" or "Asia/Kolkata".
package timezone
