package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	northlight "github.com/northlight/northlight-go"
	"github.com/northlight/northlight-go/internal/ui"
	"github.com/northlight/northlight-go/internal/urls"
	"github.com/northlight/northlight-go/votes"
)

// Command flags
var (
	apiKey       string
	baseURL      string
	userEmail    string
	outputFormat string
	bugSeverity  string
	bugSteps     string
	category     string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Project API key (or NORTHLIGHT_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Custom API base URL for self-hosted servers (or NORTHLIGHT_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&userEmail, "email", "", "Email attached to submissions (or NORTHLIGHT_EMAIL)")

	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(bugCmd)
	rootCmd.AddCommand(voteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(browseCmd)
}

// newSDK is the composition root: one Config, one Client, and one Ledger
// backed by the platform vote store, shared by the command being run.
func newSDK() (*northlight.Client, *votes.Ledger, error) {
	key := apiKey
	if key == "" {
		key = os.Getenv("NORTHLIGHT_API_KEY")
	}
	if key == "" {
		return nil, nil, fmt.Errorf("no API key configured\n\nSet --api-key, NORTHLIGHT_API_KEY, or a .env file.\nSee %s", urls.APIKeys)
	}

	base := baseURL
	if base == "" {
		base = os.Getenv("NORTHLIGHT_BASE_URL")
	}
	email := userEmail
	if email == "" {
		email = os.Getenv("NORTHLIGHT_EMAIL")
	}

	cfg := northlight.NewConfig()
	cfg.Configure(key, base)
	cfg.SetUserEmail(email)

	client := northlight.NewClient(cfg)

	store, err := votes.NewFileStore("")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open vote store: %w", err)
	}
	ledger := votes.NewLedger(store, cfg)

	return client, ledger, nil
}

// friendly unwraps SDK errors into their single user-facing message
func friendly(err error) error {
	if e, ok := err.(*northlight.Error); ok {
		return fmt.Errorf("%s", e.UserMessage())
	}
	return err
}

var submitCmd = &cobra.Command{
	Use:   "submit <title> <description>",
	Short: "Submit a feature request",
	Long: `Submit a feature request to the project's feedback board.

The title must be 1-255 characters and the description non-empty. A basic
device snapshot is attached to the submission.`,
	Example: `  # Submit feedback
  northlight submit "Add dark mode" "The app is blinding at night"

  # With a category
  northlight submit "Add dark mode" "Please" --category ui`,
	Args: cobra.ExactArgs(2),
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVar(&category, "category", "", "Feedback category")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	client, _, err := newSDK()
	if err != nil {
		return err
	}

	id, err := client.SubmitFeedback(context.Background(), args[0], args[1], category)
	if err != nil {
		return friendly(err)
	}

	fmt.Printf("Feedback submitted: %s\n", id)
	return nil
}

var bugCmd = &cobra.Command{
	Use:   "bug <title> <description>",
	Short: "Report a bug",
	Long: `Report a bug to the project.

Bug reports attach an extended device snapshot including free memory,
battery level, and network type.`,
	Example: `  # Report a bug with default (medium) severity
  northlight bug "Crash on launch" "App crashes immediately on cold start"

  # Critical bug with reproduction steps
  northlight bug "Data loss" "Notes disappear" --severity critical --steps "1. Create note 2. Restart"`,
	Args: cobra.ExactArgs(2),
	RunE: runBug,
}

func init() {
	bugCmd.Flags().StringVar(&bugSeverity, "severity", "medium", "Severity (low, medium, high, critical)")
	bugCmd.Flags().StringVar(&bugSteps, "steps", "", "Steps to reproduce")
}

func runBug(cmd *cobra.Command, args []string) error {
	client, _, err := newSDK()
	if err != nil {
		return err
	}

	id, err := client.ReportBug(context.Background(), args[0], args[1], northlight.Severity(bugSeverity), bugSteps)
	if err != nil {
		return friendly(err)
	}

	fmt.Printf("Bug reported: %s\n", id)
	return nil
}

var voteCmd = &cobra.Command{
	Use:   "vote <feedback-id>",
	Short: "Vote for a feedback item",
	Long: `Cast this device's vote for a feedback item.

Each device gets one vote per item. Votes are recorded in a local ledger,
so voting twice for the same item fails without a network call.
See ` + urls.Voting,
	Args: cobra.ExactArgs(1),
	RunE: runVote,
}

func runVote(cmd *cobra.Command, args []string) error {
	client, ledger, err := newSDK()
	if err != nil {
		return err
	}

	feedbackID := args[0]
	count, err := ledger.VoteFor(context.Background(), feedbackID, func(ctx context.Context) (int, error) {
		return client.Vote(ctx, feedbackID)
	})
	if err != nil {
		return friendly(err)
	}

	fmt.Printf("Voted for %s. New count: %d\n", feedbackID, count)
	return nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List public feedback",
	Example: `  # Compact listing
  northlight list

  # Full details
  northlight list --format detailed

  # JSON output for scripting
  northlight list --format json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&outputFormat, "format", "compact", "Output format (compact, detailed, json)")
}

func runList(cmd *cobra.Command, args []string) error {
	client, ledger, err := newSDK()
	if err != nil {
		return err
	}

	items, err := client.GetPublicFeedback(context.Background())
	if err != nil {
		return friendly(err)
	}

	if len(items) == 0 {
		fmt.Println("No public feedback yet.")
		return nil
	}

	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
	case "detailed":
		for _, item := range items {
			fmt.Println(item.FormatDetailed())
		}
	default:
		for _, item := range items {
			if ledger.HasVoted(item.ID) {
				fmt.Print("✓ ")
			} else {
				fmt.Print("  ")
			}
			fmt.Print(item.FormatCompact())
		}
	}

	return nil
}

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Show the public roadmap",
	RunE:  runRoadmap,
}

func runRoadmap(cmd *cobra.Command, args []string) error {
	client, _, err := newSDK()
	if err != nil {
		return err
	}

	items, err := client.GetRoadmap(context.Background())
	if err != nil {
		return friendly(err)
	}

	if len(items) == 0 {
		fmt.Println("The roadmap is empty.")
		return nil
	}

	for _, item := range items {
		fmt.Println(item.FormatDetailed())
	}
	return nil
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse public feedback interactively",
	Long: `Open an interactive browser for the project's public feedback.

Navigate with arrow keys, vote with v or enter. Items this device already
voted for are marked with a check.`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	client, ledger, err := newSDK()
	if err != nil {
		return err
	}

	program := tea.NewProgram(ui.NewBrowser(client, ledger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}
