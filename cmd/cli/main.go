package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/iho/txdash/internal/adapter/confirm"
	"github.com/iho/txdash/internal/adapter/notify"
	"github.com/iho/txdash/internal/adapter/remote"
	"github.com/iho/txdash/internal/adapter/report"
	"github.com/iho/txdash/internal/domain"
	"github.com/iho/txdash/internal/infrastructure/logger"
	"github.com/iho/txdash/internal/usecase"
)

// options are the persistent flags shared by every command.
type options struct {
	baseURL   string
	timeout   time.Duration
	retries   int
	assumeYes bool
	reportDir string
	page      int
	pageSize  int
	logLevel  string
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "txdash",
		Short:         "Transaction dashboard CLI",
		Long:          `A command line interface for browsing and managing transactions of a remote transaction service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	defaultURL := os.Getenv("REMOTE_BASE_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:3000/api/v1/transactions"
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.baseURL, "base-url", defaultURL, "Base URL of the transaction service")
	flags.DurationVar(&opts.timeout, "timeout", remote.DefaultTimeout, "Request timeout")
	flags.IntVar(&opts.retries, "retries", 2, "Retries for list requests after a transport failure")
	flags.BoolVarP(&opts.assumeYes, "yes", "y", false, "Answer yes to every confirmation")
	flags.StringVar(&opts.reportDir, "report-dir", ".", "Directory for import error reports")
	flags.IntVar(&opts.page, "page", 1, "Page to load")
	flags.IntVar(&opts.pageSize, "page-size", domain.DefaultPageSize, "Transactions per page (5, 10, 20 or 50)")
	flags.StringVar(&opts.logLevel, "log-level", "disabled", "Log level (debug, info, warn, error, disabled)")

	rootCmd.AddCommand(
		newListCmd(opts),
		newAddCmd(opts),
		newEditCmd(opts),
		newDeleteCmd(opts),
		newDeleteManyCmd(opts),
		newUploadCmd(opts),
	)

	return rootCmd
}

// session is one CLI invocation's dashboard and the collaborators the
// commands report through.
type session struct {
	dashboard  *usecase.Dashboard
	downloader *report.FileDownloader
	out        io.Writer
	opts       *options
}

func newSession(cmd *cobra.Command, opts *options) (*session, error) {
	if !domain.IsValidPageSize(opts.pageSize) {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidPageSize, opts.pageSize)
	}
	if opts.page < 1 {
		return nil, fmt.Errorf("page must be at least 1, got %d", opts.page)
	}

	log := logger.New(logger.Config{Level: opts.logLevel, Format: "console", Out: cmd.ErrOrStderr()})
	downloader := report.NewFileDownloader(opts.reportDir, log)

	client := remote.New(opts.baseURL, opts.timeout,
		remote.WithLogger(log),
		remote.WithListRetries(opts.retries),
	)

	dashboard := usecase.NewDashboard(usecase.DashboardConfig{
		Client:     client,
		Notifier:   notify.NewConsole(cmd.OutOrStdout(), log),
		Confirmer:  confirm.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout(), opts.assumeYes),
		Encoder:    report.NewCSVEncoder(),
		Downloader: downloader,
		Logger:     log.With().Str("component", "dashboard").Logger(),
		PageSize:   opts.pageSize,
	})

	return &session{
		dashboard:  dashboard,
		downloader: downloader,
		out:        cmd.OutOrStdout(),
		opts:       opts,
	}, nil
}

// load fetches the page selected by the persistent flags.
func (s *session) load(cmd *cobra.Command) error {
	return s.dashboard.Refresh(cmd.Context(), s.opts.page, s.opts.pageSize)
}

func (s *session) visible(id int64) (*domain.Transaction, bool) {
	for _, t := range s.dashboard.State().Transactions {
		if t.ID == id {
			return &t, true
		}
	}
	return nil, false
}
