package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/sandevgo/secretowatch/internal/config"
	"github.com/sandevgo/secretowatch/internal/core"
	"github.com/sandevgo/secretowatch/internal/storage/flatfile"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:          "history",
	Short:        "Print the recorded messages",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		cfg := loadConfig(ctx)
		return printHistory(ctx, cmd.OutOrStdout(), flatfile.NewStore(cfg.GetStorePath()), historyLimit)
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "show only the last n records (0 = all)")
	rootCmd.AddCommand(historyCmd)
}

func printHistory(ctx context.Context, w io.Writer, store core.MessageStore, limit int) error {
	msgs, err := store.Load(ctx)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		_, err := fmt.Fprintln(w, "no messages recorded yet")
		return err
	}

	start := 0
	if limit > 0 && limit < len(msgs) {
		start = len(msgs) - limit
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Message"})
	table.SetAutoWrapText(true)
	table.SetColWidth(80)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetRowLine(true)

	for i := start; i < len(msgs); i++ {
		table.Append([]string{strconv.Itoa(i + 1), msgs[i].Body})
	}
	table.Render()
	return nil
}
