package northlight

import (
	"encoding/json"
	"fmt"
)

// ErrorKind represents the category of error that occurred
type ErrorKind int

const (
	// KindInvalidAPIKey indicates a missing or rejected API key
	KindInvalidAPIKey ErrorKind = iota
	// KindNetwork indicates a transport-level failure before any status code
	// was obtained (DNS, timeout, connection reset, non-HTTP response)
	KindNetwork
	// KindRateLimitExceeded indicates the server returned 429
	KindRateLimitExceeded
	// KindFeedbackLimitReached indicates the server returned 402 (free tier cap)
	KindFeedbackLimitReached
	// KindInvalidInput indicates rejected input, local or server-side
	KindInvalidInput
	// KindServerError indicates an unexpected HTTP status from the server
	KindServerError
	// KindDecoding indicates a 2xx response body that failed to decode
	KindDecoding
	// KindMissingUserIdentifier indicates a vote was attempted without a
	// configured user identifier
	KindMissingUserIdentifier
	// KindAlreadyVoted indicates the local vote ledger already contains the
	// feedback id; raised before any network call
	KindAlreadyVoted
)

// String returns a short name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidAPIKey:
		return "invalid API key"
	case KindNetwork:
		return "network error"
	case KindRateLimitExceeded:
		return "rate limit exceeded"
	case KindFeedbackLimitReached:
		return "feedback limit reached"
	case KindInvalidInput:
		return "invalid input"
	case KindServerError:
		return "server error"
	case KindDecoding:
		return "decoding error"
	case KindMissingUserIdentifier:
		return "missing user identifier"
	case KindAlreadyVoted:
		return "already voted"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// Error represents a failure from any Northlight SDK operation.
// Every error returned by this module is either an *Error or wraps one.
type Error struct {
	Kind       ErrorKind // Category of error
	Message    string    // Human-readable detail (may be empty)
	StatusCode int       // HTTP status code (if applicable)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Message != "":
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s (caused by: %v)", e.Kind, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// UserMessage returns the single human-readable message for this error.
// Each kind maps to exactly one message without further branching.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindInvalidAPIKey:
		return "Invalid or missing API key. Please configure Northlight with a valid API key."
	case KindNetwork:
		if e.Err != nil {
			return fmt.Sprintf("Network error: %v", e.Err)
		}
		return "Network error"
	case KindRateLimitExceeded:
		return "Rate limit exceeded. Please try again later."
	case KindFeedbackLimitReached:
		return "Feedback limit reached for free tier (maximum 5 items)."
	case KindInvalidInput:
		return fmt.Sprintf("Invalid input: %s", e.Message)
	case KindServerError:
		if e.Message != "" {
			return e.Message
		}
		return fmt.Sprintf("Server error with status code: %d", e.StatusCode)
	case KindDecoding:
		return fmt.Sprintf("Failed to decode response: %v", e.Err)
	case KindMissingUserIdentifier:
		return "User identifier is required for this operation."
	case KindAlreadyVoted:
		return "You have already voted for this feature request."
	default:
		return e.Error()
	}
}

// NewInvalidAPIKeyError creates an error for a missing or rejected API key
func NewInvalidAPIKeyError() *Error {
	return &Error{Kind: KindInvalidAPIKey}
}

// NewNetworkError creates a transport-level error wrapping the cause
func NewNetworkError(err error) *Error {
	return &Error{Kind: KindNetwork, Err: err}
}

// NewInvalidInputError creates an input validation error
func NewInvalidInputError(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

// NewServerError creates an error for an unexpected HTTP status code.
// message may be empty when the response carried no structured error body.
func NewServerError(statusCode int, message string) *Error {
	return &Error{Kind: KindServerError, StatusCode: statusCode, Message: message}
}

// NewDecodingError creates an error for an undecodable 2xx response body
func NewDecodingError(err error) *Error {
	return &Error{Kind: KindDecoding, Err: err}
}

// NewMissingUserIdentifierError creates an error for a vote attempted
// without a user identifier
func NewMissingUserIdentifierError() *Error {
	return &Error{Kind: KindMissingUserIdentifier}
}

// NewAlreadyVotedError creates the client-side duplicate-vote error
func NewAlreadyVotedError(feedbackID string) *Error {
	return &Error{Kind: KindAlreadyVoted, Message: feedbackID}
}

// IsKind reports whether err is a *Error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	if e, ok := err.(*Error); ok {
		return e.Kind == kind
	}
	return false
}

// IsInvalidAPIKey reports whether err is an invalid-API-key error
func IsInvalidAPIKey(err error) bool { return IsKind(err, KindInvalidAPIKey) }

// IsNetworkError reports whether err is a transport-level error
func IsNetworkError(err error) bool { return IsKind(err, KindNetwork) }

// IsRateLimitExceeded reports whether err is a rate limit error
func IsRateLimitExceeded(err error) bool { return IsKind(err, KindRateLimitExceeded) }

// IsFeedbackLimitReached reports whether err is a feedback limit error
func IsFeedbackLimitReached(err error) bool { return IsKind(err, KindFeedbackLimitReached) }

// IsInvalidInput reports whether err is an input validation error
func IsInvalidInput(err error) bool { return IsKind(err, KindInvalidInput) }

// IsServerError reports whether err is an unexpected-status error
func IsServerError(err error) bool { return IsKind(err, KindServerError) }

// IsDecodingError reports whether err is a response decoding error
func IsDecodingError(err error) bool { return IsKind(err, KindDecoding) }

// IsMissingUserIdentifier reports whether err is a missing-identifier error
func IsMissingUserIdentifier(err error) bool { return IsKind(err, KindMissingUserIdentifier) }

// IsAlreadyVoted reports whether err is the client-side duplicate-vote error
func IsAlreadyVoted(err error) bool { return IsKind(err, KindAlreadyVoted) }

// errorBody is the structured error payload some endpoints return.
// Servers are inconsistent about the field name, so both are accepted.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// structuredMessage extracts a structured error message from a response body,
// returning "" when the body is not JSON or carries no message.
func structuredMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if eb.Error != "" {
		return eb.Error
	}
	return eb.Message
}

// classifyStatus maps a non-2xx HTTP status code and response body to an
// error from the taxonomy. The precedence matters: some APIs use 400/401/403
// interchangeably for validation vs. auth, so the presence of a structured
// message is checked before concluding the credentials were at fault.
func classifyStatus(statusCode int, body []byte) *Error {
	msg := structuredMessage(body)

	switch statusCode {
	case 401, 403:
		if msg != "" {
			return NewInvalidInputError(msg)
		}
		return NewInvalidAPIKeyError()
	case 429:
		return &Error{Kind: KindRateLimitExceeded, StatusCode: statusCode}
	case 402:
		return &Error{Kind: KindFeedbackLimitReached, StatusCode: statusCode}
	case 400:
		if msg != "" {
			return NewInvalidInputError(msg)
		}
		return NewInvalidInputError("Invalid request")
	default:
		return NewServerError(statusCode, msg)
	}
}
