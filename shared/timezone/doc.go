// Package timezone pins every calendar computation to the guest house's local zone.
//
// Check-in dates sent as plain YYYY-MM-DD strings mean midnight in that zone, "today" for
// occupancy and reminders is the local calendar day, and formatted timestamps in responses
// are rendered in it. The zone comes from APP_TIMEZONE (an IANA name such as
// "Asia/Kolkata") and falls back to UTC when unset or unknown.
package timezone
