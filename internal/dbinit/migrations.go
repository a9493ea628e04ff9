package dbinit

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pricememory/internal/common/fsutil"
)

// Migration is one *.sql file in the migrations directory.
type Migration struct {
	Name string
	Path string
	Size int64
}

// ListMigrations returns the *.sql files of dir in lexicographic filename order.
// Subdirectories are skipped, even when their name ends in .sql.
func ListMigrations(dir string) ([]Migration, error) {
	if !fsutil.IsDir(dir) {
		return nil, missingDirError{dir: dir}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	var out []Migration
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".sql" {
			continue
		}
		m := Migration{Name: e.Name(), Path: filepath.Join(dir, e.Name())}
		if fi, err := e.Info(); err == nil {
			m.Size = fi.Size()
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// countStatements counts semicolon-terminated statements in sql, ignoring
// semicolons inside comments, quoted strings and dollar-quoted bodies. A trailing
// statement without a semicolon is counted too.
func countStatements(sql string) int {
	n := 0
	pending := false
	for i := 0; i < len(sql); i++ {
		c := sql[i]
		switch {
		case c == '-' && strings.HasPrefix(sql[i:], "--"):
			if j := strings.IndexByte(sql[i:], '\n'); j >= 0 {
				i += j
			} else {
				i = len(sql)
			}
		case c == '/' && strings.HasPrefix(sql[i:], "/*"):
			if j := strings.Index(sql[i+2:], "*/"); j >= 0 {
				i += j + 3
			} else {
				i = len(sql)
			}
		case c == '\'' || c == '"':
			pending = true
			for i++; i < len(sql); i++ {
				if sql[i] == c {
					if i+1 < len(sql) && sql[i+1] == c {
						i++
						continue
					}
					break
				}
			}
		case c == '$':
			pending = true
			if tag, ok := dollarTag(sql[i:]); ok {
				if j := strings.Index(sql[i+len(tag):], tag); j >= 0 {
					i += len(tag) + j + len(tag) - 1
				} else {
					i = len(sql)
				}
			}
		case c == ';':
			if pending {
				n++
			}
			pending = false
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
		default:
			pending = true
		}
	}
	if pending {
		n++
	}
	return n
}

// dollarTag returns the opening tag ("$$" or "$name$") at the start of s.
func dollarTag(s string) (string, bool) {
	for j := 1; j < len(s); j++ {
		switch c := s[j]; {
		case c == '$':
			return s[:j+1], true
		case c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || (j > 1 && c >= '0' && c <= '9'):
		default:
			return "", false
		}
	}
	return "", false
}
