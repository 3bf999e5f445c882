// Package northlight is a Go client for the Northlight feedback service.
//
// The SDK lets an application collect user feedback and bug reports, submit
// them to a Northlight project, browse public feedback, and cast one vote per
// feedback item per device.
//
// # Usage Example
//
//	cfg := northlight.NewConfig()
//	cfg.Configure("nl_live_xxxxxxxx", "")
//	cfg.SetUserEmail("user@example.com")
//
//	client := northlight.NewClient(cfg)
//
//	id, err := client.SubmitFeedback(ctx, "Add dark mode", "Please support dark mode", "ui")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("submitted:", id)
//
// # Voting
//
// Voting is device-scoped and idempotent from the client's point of view.
// The votes subpackage keeps a local ledger of feedback ids this device has
// voted for and short-circuits duplicates before any network call:
//
//	store, _ := votes.NewFileStore("")
//	ledger := votes.NewLedger(store, cfg)
//
//	count, err := ledger.VoteFor(ctx, item.ID, func(ctx context.Context) (int, error) {
//	    return client.Vote(ctx, item.ID)
//	})
//
// # Error Handling
//
// Every failure is a *Error carrying one of the ErrorKind values, with
// wrapped causes reachable through errors.Unwrap. Each kind maps to exactly
// one human-readable message via UserMessage, so presentation layers never
// need to branch further.
//
// # Thread Safety
//
// Config and Client are safe for concurrent use. Concurrent operations are
// independent and not coalesced; the server remains the final arbiter of
// duplicate votes when two VoteFor calls for the same id race.
package northlight
