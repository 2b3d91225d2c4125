// Package audit provides security audit logging for Pixelbin.
//
// Registration, login, and upload events are written as RFC5424 syslog lines
// to stdout so they can be shipped by whatever collects the process output.
// Each event type carries structured data identifying the actor, the subject
// and the outcome.
package audit
