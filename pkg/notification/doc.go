// Package notification delivers notices over email and SMS. A
// NotificationManager routes each notice type to the notifiers registered
// for it, rendering the templates registered per type and system.
package notification
