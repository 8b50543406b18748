package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/budget-tracker/backend/internal/archive"
)

var header = []string{"Date", "Type", "Category", "Description", "Amount"}

// WriteArchiveCSV writes the summary of the archive followed by its
// transactions.
func WriteArchiveCSV(w io.Writer, a archive.Archive) error {
	c := csv.NewWriter(w)

	records := [][]string{
		{"Month", fmt.Sprintf("%s %d", a.Month, a.Year)},
		{"Key", a.Key},
		{"Total income", a.Summary.TotalIncome.StringFixed(2)},
		{"Total expense", a.Summary.TotalExpense.StringFixed(2)},
		{"Balance", a.Summary.Balance.StringFixed(2)},
		{"Transactions", fmt.Sprint(a.Summary.TransactionCount)},
	}

	if err := c.WriteAll(records); err != nil {
		return err
	}

	// Blank line between the summary and the table
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	records = [][]string{header}
	for _, t := range a.Transactions {
		records = append(records, []string{
			t.Date.String(),
			string(t.Type),
			t.Category,
			t.Description,
			t.Amount.StringFixed(2),
		})
	}

	return c.WriteAll(records)
}

// WriteArchivesCSV writes all archives, separated by blank lines.
func WriteArchivesCSV(w io.Writer, archives []archive.Archive) error {
	for i, a := range archives {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}

		if err := WriteArchiveCSV(w, a); err != nil {
			return fmt.Errorf("writing archive %s: %w", a.Key, err)
		}
	}

	return nil
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9_]`)

// Filename joins the parts with underscores and replaces every character
// outside of [A-Za-z0-9_] with an underscore.
func Filename(ext string, parts ...string) string {
	return unsafeFilename.ReplaceAllString(strings.Join(parts, "_"), "_") + "." + ext
}
