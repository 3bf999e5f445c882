// Package logging provides structured logging for the Northlight SDK and CLI.
//
// Logging is silent by default so that SDK output never pollutes a host
// application's stdout. Set the NORTHLIGHT_LOG_LEVEL environment variable
// (debug, info, warn, error) to enable console output on stderr.
package logging
