// Package notifier announces newly captured shows. It supports posting to
// Twitter and a dry-run mode that prints what would be posted, and handles
// OAuth authentication, rate limiting, and message formatting.
package notifier
