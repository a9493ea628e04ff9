package dbinit

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Announce prints every migration with instructions for applying it by hand.
// It stops at the first unreadable file. Nothing is ever sent to the database.
func Announce(w io.Writer, migs []Migration) error {
	type row struct {
		name       string
		size       int
		statements int
	}
	rows := make([]row, 0, len(migs))
	for _, m := range migs {
		fmt.Fprintf(w, "\n--- Migration: %s ---\n", m.Name)
		b, err := os.ReadFile(m.Path)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", m.Name, err)
		}
		sql := string(b)
		debug("announcing %s (%d bytes)", m.Name, len(b))
		fmt.Fprintf(w, "SQL:\n%s\n", sql)
		fmt.Fprintln(w, "Note: paste the SQL above into the SQL Editor of the Supabase Dashboard")
		fmt.Fprintln(w, "or apply it with the Supabase CLI: supabase db push")
		rows = append(rows, row{name: m.Name, size: len(b), statements: countStatements(sql)})
	}

	fmt.Fprintln(w)
	t := tablewriter.NewWriter(w)
	t.Header("Migration", "Bytes", "Statements")
	for _, r := range rows {
		_ = t.Append([]string{r.name, strconv.Itoa(r.size), strconv.Itoa(r.statements)})
	}
	return t.Render()
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "\nUsage:")
	fmt.Fprintln(w, "1. Copy the SQL above into the SQL Editor of the Supabase Dashboard")
	fmt.Fprintln(w, "2. Or use the Supabase CLI:")
	fmt.Fprintln(w, "   - supabase init (if the project is not initialized yet)")
	fmt.Fprintln(w, "   - put the SQL files in supabase/migrations/")
	fmt.Fprintln(w, "   - supabase db push")
}
