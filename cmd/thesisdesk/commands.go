package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hdngo/thesisdesk/internal/store"
	"github.com/hdngo/thesisdesk/internal/workers"
	"github.com/hdngo/thesisdesk/models"
)

// listRecords fetches a full collection and prints it, optionally
// narrowed by the store's search matcher.
func listRecords[T store.Record](ctx context.Context, s *store.Store[T], search string) error {
	if err := s.FetchAll(ctx); err != nil {
		return err
	}
	if search != "" {
		s.Search(search)
		return printJSON(s.Filtered())
	}
	return printJSON(s.Items())
}

// --- login / logout ---

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the backend",
	Long: `Sign in to the backend.

With --remember the session is stored on disk and reused by later
invocations until it expires or you run logout. Without it the session
only lives for this process, which merely verifies the credentials.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		remember, _ := cmd.Flags().GetBool("remember")

		reader := bufio.NewReader(os.Stdin)
		if username == "" {
			fmt.Fprint(os.Stderr, "username: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("reading username: %w", err)
			}
			username = strings.TrimSpace(line)
		}
		if password == "" {
			fmt.Fprint(os.Stderr, "password: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}
			password = strings.TrimSpace(line)
		}

		ctx := cmd.Context()
		app, err := newApp(ctx, remember)
		if err != nil {
			return err
		}

		creds := models.Credentials{Username: username, Password: password}
		if err := app.services.Auth.Login(ctx, creds, remember); err != nil {
			return err
		}

		if remember {
			printSuccess("signed in as %s (session remembered)", username)
		} else {
			printSuccess("credentials for %s verified", username)
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and drop the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := newApp(ctx, true)
		if err != nil {
			return err
		}
		if err := app.services.Auth.Restore(ctx); err != nil {
			return fmt.Errorf("restore session: %w", err)
		}
		if !app.services.Auth.Authenticated() {
			printStep("no stored session")
			return nil
		}

		if err := app.services.Auth.Logout(ctx); err != nil {
			return err
		}
		app.stores.Reset()
		printSuccess("signed out")
		return nil
	},
}

func init() {
	loginCmd.Flags().String("username", "", "account username (prompted if omitted)")
	loginCmd.Flags().String("password", "", "account password (prompted if omitted)")
	loginCmd.Flags().Bool("remember", false, "persist the session across invocations")
}

// --- list ---

var listEntities = []string{
	"students", "lecturers", "theses", "milestones",
	"checklists", "requests", "admins", "semesters",
}

var listCmd = &cobra.Command{
	Use:       "list <entity>",
	Short:     "List records of an entity as JSON",
	ValidArgs: listEntities,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")

		ctx := cmd.Context()
		app, err := newAuthedApp(ctx)
		if err != nil {
			return err
		}

		switch args[0] {
		case "students":
			return listRecords(ctx, app.stores.Students, search)
		case "lecturers":
			return listRecords(ctx, app.stores.Lecturers, search)
		case "theses":
			return listRecords(ctx, app.stores.Theses, search)
		case "milestones":
			return listRecords(ctx, app.stores.Milestones, search)
		case "checklists":
			return listRecords(ctx, app.stores.Checklists, search)
		case "requests":
			return listRecords(ctx, app.stores.Requests, search)
		case "admins":
			return listRecords(ctx, app.stores.Admins, search)
		case "semesters":
			return listRecords(ctx, app.stores.Semesters, search)
		}
		return fmt.Errorf("unknown entity %q", args[0])
	},
}

func init() {
	listCmd.Flags().String("search", "", "filter records by the entity's search fields")
}

// --- groups ---

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List the capstone groups of a semester",
	RunE: func(cmd *cobra.Command, args []string) error {
		semesterID, _ := cmd.Flags().GetString("semester")
		force, _ := cmd.Flags().GetBool("force")
		search, _ := cmd.Flags().GetString("search")
		if semesterID == "" {
			return fmt.Errorf("--semester is required")
		}

		ctx := cmd.Context()
		app, err := newAuthedApp(ctx)
		if err != nil {
			return err
		}

		if err := app.stores.Groups.FetchBySemester(ctx, semesterID, force); err != nil {
			return err
		}
		if search != "" {
			app.stores.Groups.Search(search)
			return printJSON(app.stores.Groups.Filtered())
		}
		return printJSON(app.stores.Groups.Items())
	},
}

func init() {
	groupsCmd.Flags().String("semester", "", "semester ID to list groups for")
	groupsCmd.Flags().Bool("force", false, "refetch even when the semester is already cached")
	groupsCmd.Flags().String("search", "", "filter groups by name or status")
}

// --- import ---

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Batch-import students from a JSON file",
	Long: `Batch-import students from a JSON file.

The file must hold a JSON array of student records, e.g. an enrollment
sheet exported from the registrar system.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading import file: %w", err)
		}

		var students []models.Student
		if err := json.Unmarshal(data, &students); err != nil {
			return fmt.Errorf("parsing import file: %w", err)
		}
		if len(students) == 0 {
			return fmt.Errorf("import file holds no records")
		}

		ctx := cmd.Context()
		app, err := newAuthedApp(ctx)
		if err != nil {
			return err
		}

		if err := app.stores.Students.CreateMany(ctx, students); err != nil {
			return err
		}
		printSuccess("imported %d students", len(students))
		return nil
	},
}

// --- toggle ---

var toggleCmd = &cobra.Command{
	Use:       "toggle <entity> <id>",
	Short:     "Enable or disable an account, or close a checklist",
	ValidArgs: []string{"student", "lecturer", "admin", "checklist"},
	Args:      cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		off, _ := cmd.Flags().GetBool("off")
		enabled := !off

		ctx := cmd.Context()
		app, err := newAuthedApp(ctx)
		if err != nil {
			return err
		}

		id := args[1]
		switch args[0] {
		case "student":
			err = app.stores.Students.Toggle(ctx, id, enabled)
		case "lecturer":
			err = app.stores.Lecturers.Toggle(ctx, id, enabled)
		case "admin":
			err = app.stores.Admins.Toggle(ctx, id, enabled)
		case "checklist":
			err = app.stores.Checklists.Toggle(ctx, id, enabled)
		default:
			return fmt.Errorf("unknown entity %q", args[0])
		}
		if err != nil {
			return err
		}

		printSuccess("%s %s toggled", args[0], id)
		return nil
	},
}

func init() {
	toggleCmd.Flags().Bool("off", false, "disable instead of enable")
}

// --- watch ---

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the local collections fresh until interrupted",
	Long: `Keep the local collections fresh until interrupted.

Fetches every collection once, then refetches on the configured
interval. Useful while projecting a dashboard from the JSON output of
other commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		app, err := newAuthedApp(ctx)
		if err != nil {
			return err
		}

		printStep("initial fetch")
		if err := app.stores.RefreshAll(ctx); err != nil {
			printError("some collections failed to load: %v", err)
		}

		refresher := workers.NewRefresher(app.stores, app.cfg.Workers.RefreshInterval, app.log)
		jobs := workers.New(refresher)
		jobs.Start(ctx)
		defer jobs.Stop()

		printStep("watching, refresh every %s (ctrl-c to stop)", app.cfg.Workers.RefreshInterval)
		<-ctx.Done()
		printStep("stopping")
		return nil
	},
}
