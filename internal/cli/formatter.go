package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/mhaglund/locstat/internal/locstat"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintReport outputs the line statistics in human-readable form.
//
// One three-line block is printed per bucket, in ascending key order. In
// combined mode there is a single block and the `in "<key>" files` clause
// is omitted.
func PrintReport(report *locstat.Report, writer io.Writer) error {
	for _, key := range report.Keys() {
		stats := report.Types[key]

		if !report.PerType {
			if _, err := fmt.Fprintf(writer,
				"There are %d lines of code.\nThere are %d empty lines.\n%.2f%% of the lines are empty.\n",
				stats.Code, stats.Empty, stats.PercentEmpty()); err != nil {
				return err
			}

			continue
		}

		if _, err := fmt.Fprintf(writer,
			"There are %d lines of code in %q files.\nThere are %d empty lines in %q files.\n%.2f%% of the lines in %q files are empty.\n",
			stats.Code, key, stats.Empty, key, stats.PercentEmpty(), key); err != nil {
			return err
		}
	}

	return nil
}

// PrintSummary outputs the run summary in human-readable table format.
//
//nolint:forbidigo // This function prints output to the console.
func PrintSummary(report *locstat.Report, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	total := report.Total()

	fmt.Fprintln(w, "\nSummary:\t")
	fmt.Fprintf(w, "Files counted:\t%s\n", humanize.Comma(report.Files))
	fmt.Fprintf(w, "Data read:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(report.Bytes)), report.Bytes) //nolint:gosec // Bytes is always positive
	fmt.Fprintf(w, "Lines total:\t%s (%s code, %s empty)\n",
		humanize.Comma(total.Total()), humanize.Comma(total.Code), humanize.Comma(total.Empty))
	fmt.Fprintf(w, "Skipped entries:\t%s\n", humanize.Comma(report.Skipped))

	fmt.Fprintf(w, "\nElapsed:\t%v\n", report.Elapsed)

	return w.Flush()
}
