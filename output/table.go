package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pharmanav/ndcfinder/resolver/entities"
)

// maxCell keeps table cells readable; packaging descriptions can be long.
const maxCell = 40

func clip(s string) string {
	if len(s) <= maxCell {
		return s
	}
	return s[:maxCell-3] + "..."
}

// RenderTable prints records as an aligned table with a trailing count line.
func RenderTable(w io.Writer, records []entities.NDCRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "Name\tRxCUI\tNDC\tNDC9\tNDC10\tDesc\tMfg\tRoute\tStrength")

	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			clip(rec.Name),
			rec.ConceptID,
			rec.NDC,
			rec.NDC9,
			rec.NDC10,
			clip(rec.Description),
			clip(rec.Manufacturer),
			rec.Route,
			rec.Strength,
		)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}

	fmt.Fprintf(w, "\n%d record(s)\n", len(records))
	return nil
}
