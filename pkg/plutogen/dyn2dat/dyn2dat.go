// Package dyn2dat converts SCOS context exports (".dyn") into the parameter
// lists (".dat") the procedure environment reads.
package dyn2dat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry is one converted parameter.
type Entry struct {
	Name        string
	Description string
}

// Parse reads a .dyn stream. The first line is a header and is skipped. A
// line starting with "###" opens a comment block whose lines become the
// description of the next data line. Descriptions containing "====" are
// separators and are dropped.
func Parse(r io.Reader) ([]Entry, error) {
	var (
		entries   []Entry
		desc      strings.Builder
		inComment bool
		first     = true
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if first {
			first = false
			continue
		}
		if strings.HasPrefix(line, "###") {
			inComment = true
		}
		if !strings.HasPrefix(line, "#") {
			inComment = false
			if strings.TrimSpace(line) == "" {
				continue
			}
			name, _, _ := strings.Cut(line, "\t")
			d := strings.TrimSpace(desc.String())
			if strings.Contains(d, "====") {
				d = ""
			}
			entries = append(entries, Entry{Name: name, Description: d})
			desc.Reset()
			continue
		}
		if inComment {
			text := strings.ReplaceAll(strings.ReplaceAll(line, "# ", ""), "#", "")
			desc.WriteString(text)
			desc.WriteByte(' ')
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return entries, nil
}

// Write emits one "name<TAB>description" line per entry.
func Write(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", e.Name, e.Description); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Convert reads the .dyn file at in and writes the .dat file at out.
func Convert(in, out string) (int, error) {
	src, err := os.Open(in)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", in, err)
	}
	defer src.Close()

	entries, err := Parse(src)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", in, err)
	}

	dst, err := os.Create(out)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", out, err)
	}
	if err := Write(dst, entries); err != nil {
		dst.Close()
		return 0, fmt.Errorf("failed to write %s: %w", out, err)
	}
	return len(entries), dst.Close()
}

// OutputPath returns in with its ".dyn" extension replaced by ".dat".
func OutputPath(in string) string {
	return strings.TrimSuffix(in, ".dyn") + ".dat"
}
