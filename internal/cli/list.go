package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpuzzle/puzzle"
)

// listEntry is the JSON shape of one catalog entry.
type listEntry struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Year  int      `json:"year"`
	Day   int      `json:"day"`
	Parts []string `json:"parts"`
}

// NewListCommand creates the "list" command.
func NewListCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the puzzle catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout(), opts.jsonOutput)
		},
	}
}

func runList(w io.Writer, asJSON bool) error {
	catalog := puzzle.Catalog()
	entries := make([]listEntry, 0, len(catalog))
	for _, p := range catalog {
		e := listEntry{ID: p.ID, Title: p.Title, Year: p.Year, Day: p.Day}
		for _, pt := range p.Parts {
			e.Parts = append(e.Parts, pt.Name)
		}
		entries = append(entries, e)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPARTS")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.ID, e.Title, strings.Join(e.Parts, ","))
	}
	return tw.Flush()
}
