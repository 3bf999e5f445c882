package northlight

import (
	"context"
	"net/url"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/northlight/northlight-go/deviceinfo"
	"github.com/northlight/northlight-go/internal/logging"
)

// maxTitleLength is the longest title the server accepts, in characters
const maxTitleLength = 255

// validateSubmission checks the title and description rules shared by
// feedback and bug submissions
func validateSubmission(title string, description string) error {
	if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
		return NewInvalidInputError("Title must be between 1 and 255 characters")
	}
	if description == "" {
		return NewInvalidInputError("Description cannot be empty")
	}
	return nil
}

// SubmitFeedback submits a feature request and returns the new feedback id.
// category may be empty. A basic device snapshot and the configured user
// email (if any) are attached to the payload.
func (c *Client) SubmitFeedback(ctx context.Context, title string, description string, category string) (string, error) {
	if err := validateSubmission(title, description); err != nil {
		return "", err
	}

	submission := feedbackSubmission{
		Title:       title,
		Description: description,
		Category:    category,
		UserEmail:   c.config.UserEmail(),
		DeviceInfo:  deviceinfo.Capture(c.device, false),
	}

	logging.Debug("submitting feedback", zap.String("title", title))

	resp, err := send[feedbackResponse](ctx, c, "POST", "/feedback", submission)
	if err != nil {
		return "", err
	}
	return resp.FeedbackID, nil
}

// ReportBug submits a defect report and returns the new bug id. severity
// defaults to medium when empty; stepsToReproduce may be empty. The snapshot
// attached to bug reports includes the extended readings (free memory,
// battery level, network type).
func (c *Client) ReportBug(ctx context.Context, title string, description string, severity Severity, stepsToReproduce string) (string, error) {
	if err := validateSubmission(title, description); err != nil {
		return "", err
	}

	if severity == "" {
		severity = SeverityMedium
	}
	if !severity.Valid() {
		return "", NewInvalidInputError("Severity must be one of low, medium, high, critical")
	}

	submission := bugSubmission{
		Title:            title,
		Description:      description,
		Severity:         severity,
		StepsToReproduce: stepsToReproduce,
		UserEmail:        c.config.UserEmail(),
		DeviceInfo:       deviceinfo.Capture(c.device, true),
	}

	logging.Debug("reporting bug",
		zap.String("title", title),
		zap.String("severity", string(severity)),
	)

	resp, err := send[bugResponse](ctx, c, "POST", "/bugs", submission)
	if err != nil {
		return "", err
	}
	return resp.BugID, nil
}

// Vote casts this device's vote for a feedback item and returns the new vote
// count. A user identifier must be configured first; callers that want one
// generated on demand should vote through votes.Ledger.VoteFor, which also
// enforces at-most-one-vote-per-item locally.
func (c *Client) Vote(ctx context.Context, feedbackID string) (int, error) {
	userID := c.config.UserIdentifier()
	if userID == "" {
		return 0, NewMissingUserIdentifierError()
	}

	path := "/feedback/" + url.PathEscape(feedbackID) + "/vote"

	resp, err := send[voteResponse](ctx, c, "POST", path, voteRequest{UserIdentifier: userID})
	if err != nil {
		return 0, err
	}
	return resp.VoteCount, nil
}

// GetPublicFeedback returns the project's public feedback items
func (c *Client) GetPublicFeedback(ctx context.Context) ([]FeedbackItem, error) {
	resp, err := send[feedbackListResponse](ctx, c, "GET", "/feedback", nil)
	if err != nil {
		return nil, err
	}
	return resp.Feedback, nil
}

// GetRoadmap returns the project's public roadmap, ordered by position
func (c *Client) GetRoadmap(ctx context.Context) ([]RoadmapItem, error) {
	resp, err := send[roadmapResponse](ctx, c, "GET", "/roadmap", nil)
	if err != nil {
		return nil, err
	}
	return resp.RoadmapItems, nil
}
