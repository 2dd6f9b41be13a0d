package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/ckdu/internal/du"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
	// SizeWidth is the width of the right-aligned size column.
	SizeWidth = 10
	// Indent is added once per tree level.
	Indent = "  "
	// Placeholder replaces the contents of collapsed directories.
	Placeholder = "..."
)

// TreeOptions controls how much of the tree PrintTree expands.
type TreeOptions struct {
	// Depth is the deepest level printed (0=unlimited).
	Depth int
	// Boring lists directory names whose contents are collapsed.
	Boring []string
}

// PrintJSON outputs the scan result in JSON format.
func PrintJSON(result *du.Result, writer io.Writer) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTree outputs the tree below root, one line per entry:
// the human-readable size, the indentation and the name, with a trailing
// slash for directories. Boring directories and directories at the depth
// limit show a single placeholder line instead of their contents.
func PrintTree(root *du.Node, writer io.Writer, opts TreeOptions) error {
	p := treePrinter{
		w:      bufio.NewWriter(writer),
		depth:  opts.Depth,
		boring: make(map[string]struct{}, len(opts.Boring)),
	}

	for _, name := range opts.Boring {
		p.boring[name] = struct{}{}
	}

	p.print(root, 0)

	return p.w.Flush()
}

type treePrinter struct {
	w      *bufio.Writer
	depth  int
	boring map[string]struct{}
}

func (p *treePrinter) print(node *du.Node, level int) {
	name := node.Name
	if node.IsDir() {
		name += "/"
	}

	p.line(humanize.IBytes(uint64(node.Total())), level, name) //nolint:gosec // Sizes are never negative

	if len(node.Children) == 0 {
		return
	}

	if p.collapsed(node, level) {
		p.line("", level+1, Placeholder)

		return
	}

	for _, child := range node.Children {
		p.print(child, level+1)
	}
}

func (p *treePrinter) line(size string, level int, name string) {
	fmt.Fprintf(p.w, "%*s  %s%s\n", SizeWidth, size, strings.Repeat(Indent, level), name)
}

// collapsed reports whether the contents of node are hidden. The root is
// never collapsed by name.
func (p *treePrinter) collapsed(node *du.Node, level int) bool {
	if p.depth > 0 && level >= p.depth {
		return true
	}

	if level == 0 {
		return false
	}

	_, ok := p.boring[node.Name]

	return ok
}

// PrintSummary outputs the totals of a scan.
func PrintSummary(result *du.Result, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	total := result.Total()

	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n", humanize.IBytes(uint64(total)), total) //nolint:gosec // Never negative
	fmt.Fprintf(w, "Entries:\t%d\n", result.Entries)
	fmt.Fprintf(w, "Hard links counted once:\t%d\n", result.Duplicates)
	fmt.Fprintf(w, "Errors:\t%d\n", result.FailureCount)

	fmt.Fprintf(w, "\nElapsed:\t%v\n", result.Elapsed)

	return w.Flush()
}
