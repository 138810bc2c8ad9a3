// Package timezone pins the service clock to the hotel timezone read from APP_TIMEZONE.
//
// Stay dates are calendar days, so the day boundary matters: a walk-in created at
// 23:30 local time belongs to that local date even when UTC has already rolled over.
// Unknown or empty names fall back to UTC.
package timezone
