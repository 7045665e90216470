package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/iho/txdash/internal/adapter/http/dto"
	"github.com/iho/txdash/internal/domain"
	"github.com/iho/txdash/internal/usecase"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List one page of transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			if err := s.load(cmd); err != nil {
				return err
			}

			printPage(s, s.dashboard.State())
			return nil
		},
	}
}

// transactionFlags are the form fields of add and edit.
type transactionFlags struct {
	date        string
	description string
	amount      string
	currency    string
}

func (f *transactionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "Date as DD-MM-YYYY or YYYY-MM-DD")
	cmd.Flags().StringVar(&f.description, "description", "", "Description")
	cmd.Flags().StringVar(&f.amount, "amount", "", "Amount in the transaction currency")
	cmd.Flags().StringVar(&f.currency, "currency", "", "ISO 4217 currency code (default USD)")
}

// request builds the form request. Fields whose flag was not set keep the
// value from base.
func (f *transactionFlags) request(cmd *cobra.Command, base domain.TransactionFormData) dto.TransactionRequest {
	req := dto.TransactionRequest{
		Date:        base.Date,
		Description: base.Description,
		Amount:      base.Amount,
		Currency:    base.Currency,
	}

	if cmd.Flags().Changed("date") {
		req.Date = f.date
	}
	if cmd.Flags().Changed("description") {
		req.Description = f.description
	}
	if cmd.Flags().Changed("amount") {
		req.Amount = f.amount
	}
	if cmd.Flags().Changed("currency") {
		req.Currency = f.currency
	}

	return req
}

func newAddCmd(opts *options) *cobra.Command {
	var fields transactionFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := fields.request(cmd, domain.TransactionFormData{})
			data, err := req.ToFormData()
			if err != nil {
				return err
			}

			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			if err := s.load(cmd); err != nil {
				return err
			}
			if err := s.dashboard.OpenForm(usecase.FormCreate, nil); err != nil {
				return err
			}

			return s.dashboard.CreateTransaction(cmd.Context(), data)
		},
	}
	fields.register(cmd)
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newEditCmd(opts *options) *cobra.Command {
	var fields transactionFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction on the selected page",
		Long:  `Edit a transaction shown on the page selected by --page and --page-size. Fields not given keep their current value.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			if err := s.load(cmd); err != nil {
				return err
			}

			target, ok := s.visible(id)
			if !ok {
				return fmt.Errorf("transaction %d is not on page %d", id, opts.page)
			}

			req := fields.request(cmd, target.FormData())
			data, err := req.ToFormData()
			if err != nil {
				return err
			}

			if err := s.dashboard.OpenForm(usecase.FormEdit, target); err != nil {
				return err
			}

			return s.dashboard.EditTransaction(cmd.Context(), id, data)
		},
	}
	fields.register(cmd)

	return cmd
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			if err := s.load(cmd); err != nil {
				return err
			}

			return declinedIsNotAnError(s, s.dashboard.DeleteTransaction(cmd.Context(), id))
		},
	}
}

func newDeleteManyCmd(opts *options) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "delete-many [<id>...]",
		Short: "Delete several transactions on the selected page",
		Args: func(cmd *cobra.Command, args []string) error {
			if all && len(args) > 0 {
				return errors.New("--all does not take ids")
			}
			if !all && len(args) == 0 {
				return errors.New("requires at least one id or --all")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			if err := s.load(cmd); err != nil {
				return err
			}

			if all {
				ids = s.dashboard.State().VisibleIDs()
			}

			s.dashboard.SelectAll(ids)
			selected := s.dashboard.State().Selection
			if len(selected) < len(ids) {
				fmt.Fprintf(s.out, "%d of %d transactions are not on page %d and were skipped\n",
					len(ids)-len(selected), len(ids), opts.page)
			}
			if len(selected) == 0 {
				return errors.New("no transactions to delete")
			}

			return declinedIsNotAnError(s, s.dashboard.DeleteSelected(cmd.Context()))
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Delete every transaction on the selected page")

	return cmd
}

func newUploadCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file.csv>",
		Short: "Import transactions from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			info, err := os.Stat(path)
			if err != nil {
				return err
			}

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			if err := s.load(cmd); err != nil {
				return err
			}

			err = s.dashboard.UploadCSV(cmd.Context(), domain.UploadFile{
				Name:    info.Name(),
				Size:    info.Size(),
				Content: f,
			})

			var callErr *domain.CallError
			if errors.As(err, &callErr) && callErr.Kind == domain.FailureImport {
				fmt.Fprintf(s.out, "Error report: %s\n", s.downloader.Path(domain.ReportFileName))
			}

			return err
		},
	}
}

func declinedIsNotAnError(s *session, err error) error {
	if errors.Is(err, domain.ErrNotConfirmed) {
		fmt.Fprintln(s.out, "Aborted.")
		return nil
	}
	return err
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid transaction id %q", arg)
	}
	return id, nil
}

func printPage(s *session, state usecase.DashboardState) {
	if len(state.Transactions) == 0 {
		fmt.Fprintln(s.out, "No transactions found.")
		return
	}

	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tDESCRIPTION\tAMOUNT\tAMOUNT (INR)")
	for _, t := range state.Transactions {
		amount := t.Currency + " " + t.Amount
		if parsed, err := domain.ParseAmount(t.Amount); err == nil {
			amount = domain.FormatAmount(parsed, t.Currency)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			t.ID,
			domain.DisplayDate(t.Date),
			t.Description,
			amount,
			domain.FormatAmount(t.AmountINR, "INR"),
		)
	}
	w.Flush()

	p := state.Page
	fmt.Fprintf(s.out, "\nPage %d of %d (%d transactions, %d per page)\n",
		p.CurrentPage, max(p.TotalPages, 1), p.TotalCount, p.PageSize)
	if p.HasPrev() {
		fmt.Fprintf(s.out, "Previous: --page %d\n", p.CurrentPage-1)
	}
	if p.HasNext() {
		fmt.Fprintf(s.out, "Next: --page %d\n", p.CurrentPage+1)
	}
}
