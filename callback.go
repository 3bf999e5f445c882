package northlight

import "context"

// Callback-style variants of the domain operations, for hosts that integrate
// more naturally with completion handlers than with blocking calls. Each is a
// thin adapter over the result-based method: it never fails synchronously,
// and the callback receives either the result or the classified error on a
// fresh goroutine.

// SubmitFeedbackAsync runs SubmitFeedback in the background and delivers the
// feedback id or error to completion
func (c *Client) SubmitFeedbackAsync(ctx context.Context, title string, description string, category string, completion func(feedbackID string, err error)) {
	go func() {
		completion(c.SubmitFeedback(ctx, title, description, category))
	}()
}

// ReportBugAsync runs ReportBug in the background and delivers the bug id or
// error to completion
func (c *Client) ReportBugAsync(ctx context.Context, title string, description string, severity Severity, stepsToReproduce string, completion func(bugID string, err error)) {
	go func() {
		completion(c.ReportBug(ctx, title, description, severity, stepsToReproduce))
	}()
}

// VoteAsync runs Vote in the background and delivers the new vote count or
// error to completion
func (c *Client) VoteAsync(ctx context.Context, feedbackID string, completion func(voteCount int, err error)) {
	go func() {
		completion(c.Vote(ctx, feedbackID))
	}()
}

// GetPublicFeedbackAsync runs GetPublicFeedback in the background and
// delivers the items or error to completion
func (c *Client) GetPublicFeedbackAsync(ctx context.Context, completion func(items []FeedbackItem, err error)) {
	go func() {
		completion(c.GetPublicFeedback(ctx))
	}()
}

// GetRoadmapAsync runs GetRoadmap in the background and delivers the items
// or error to completion
func (c *Client) GetRoadmapAsync(ctx context.Context, completion func(items []RoadmapItem, err error)) {
	go func() {
		completion(c.GetRoadmap(ctx))
	}()
}
