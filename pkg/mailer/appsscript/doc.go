// Package appsscript implements mailer.Sender and mailer.HealthChecker
// against a Google Apps Script email gateway.
//
// The gateway is a single-URL JSON API: sends are POSTed with an
// "endpoint":"send-email" envelope carrying the shared api key, and the
// health probe is GET <url>?path=health. Every response is a tagged
// envelope with a boolean "success" field; payloads missing that field are
// rejected as unrecognizable.
//
// The client never retries. Rate limiting between calls is the caller's
// responsibility.
package appsscript
