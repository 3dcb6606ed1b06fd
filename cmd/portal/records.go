package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gloovup/portal/internal/domain/audit"
	"github.com/gloovup/portal/internal/export"
	"github.com/gloovup/portal/internal/listing"
	"github.com/gloovup/portal/internal/mcp"
	"github.com/gloovup/portal/internal/persist"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var listEntities = []string{"clients", "payments", "projects", "tickets", "users", "renewals"}

type queryFlags struct {
	search       string
	filters      map[string]string
	showArchived bool
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "Case-insensitive search")
	cmd.Flags().StringToStringVarP(&f.filters, "filter", "f", nil, "Filter as key=value, e.g. status=Active (repeatable)")
	cmd.Flags().BoolVar(&f.showArchived, "show-archived", false, "Include archived records")
}

func (f *queryFlags) query() listing.Query {
	return listing.Query{Search: f.search, Filters: f.filters, ShowArchived: f.showArchived}
}

func newListCommand() *cobra.Command {
	var flags queryFlags
	cmd := &cobra.Command{
		Use:       "list <entity>",
		Short:     "Print the records of a list as a table",
		Long:      "Print the records a list shows under the given search and filters. Entities: clients, payments, projects, tickets, users, renewals.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: listEntities,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer rt.Close()

			handler := mcp.NewHandler(mcp.ServicesFromApp(rt.app))
			file, err := handler.Export(cmd.Context(), args[0], flags.query())
			if err != nil {
				return err
			}
			if err := renderCSV(cmd.OutOrStdout(), file); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", file.Rows, args[0])
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newExportCommand() *cobra.Command {
	var (
		flags  queryFlags
		outDir string
	)
	cmd := &cobra.Command{
		Use:       "export <entity>",
		Short:     "Write a list to a dated CSV file",
		Long:      "Write the records a list shows to <entity>_export_<date>.csv. Entities: clients, payments, projects, tickets, users, renewals, domains, payroll.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: append(append([]string{}, listEntities...), "domains", "payroll"),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer rt.Close()

			handler := mcp.NewHandler(mcp.ServicesFromApp(rt.app))
			file, err := handler.Export(cmd.Context(), args[0], flags.query())
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			path := filepath.Join(outDir, file.Filename)
			if err := os.WriteFile(path, []byte(file.Content), 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", file.Rows, path)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&outDir, "output", "o", ".", "Directory to write the CSV into")
	return cmd
}

func newAuditCommand() *cobra.Command {
	var (
		limit  int
		action string
	)
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Print the audit log, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer rt.Close()

			opts := audit.ListOptions{Limit: limit}
			if action != "" {
				a := audit.Action(action)
				opts.Action = &a
			}
			table := newTable(cmd.OutOrStdout(), []string{"Time", "Actor", "Action", "Target", "Details"})
			for _, e := range rt.app.Audit.List(opts) {
				table.Append([]string{e.Timestamp.Local().Format(time.DateTime), e.Actor, string(e.Action), e.Target, e.Details})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries (0 for all)")
	cmd.Flags().StringVar(&action, "action", "", "Only entries with this action, e.g. ROLE_CHANGE")
	return cmd
}

func newResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "reset <tickets|all>",
		Short:     "Restore tickets, or every collection, to the seeded records",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"tickets", "all"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer rt.Close()

			if args[0] == "all" {
				removed, err := persist.NewBridge(rt.kv, rt.logger).Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "cleared %d stored collections\n", removed)
				return nil
			}
			restored := rt.app.Tickets.Reset(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "restored %d tickets\n", len(restored))
			return nil
		},
	}
}

func renderCSV(w io.Writer, file export.File) error {
	records, err := csv.NewReader(bytes.NewReader([]byte(file.Content))).ReadAll()
	if err != nil {
		return fmt.Errorf("read export: %w", err)
	}
	if len(records) == 0 {
		return nil
	}
	table := newTable(w, records[0])
	table.AppendBulk(records[1:])
	table.Render()
	return nil
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	return table
}
