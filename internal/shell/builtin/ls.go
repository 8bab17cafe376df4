package builtin

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ksuda/taminal/internal/shell"
)

// ls lists directory entries in fixed-width columns, directories marked
// with a trailing separator. Unreadable directories produce a single error
// line and no partial output.
func (d *Dispatcher) ls(_ context.Context, sess *shell.Session, args []string) Result {
	dirArg := "."
	if len(args) > 0 {
		dirArg = args[0]
	}

	entries, err := d.fs.ListDir(d.target(dirArg, sess))
	if err != nil {
		return Result{Lines: []Line{errLine("ls: %s: %s", dirArg, osReason(err))}}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)

	columns := d.lsOpts.Columns
	width := d.lsOpts.ColumnWidth

	var lines []Line
	var row strings.Builder
	for i, name := range names {
		row.WriteString(fmt.Sprintf("%-*s", width, name))
		if (i+1)%columns == 0 {
			lines = append(lines, line("%s", row.String()))
			row.Reset()
		}
	}
	if row.Len() > 0 {
		lines = append(lines, line("%s", row.String()))
	}

	return Result{Lines: lines}
}

// pwd emits the current directory verbatim, or the lookup error when the
// working directory cannot be determined.
func (d *Dispatcher) pwd(_ context.Context, sess *shell.Session, _ []string) Result {
	wd, err := sess.WorkingDir()
	if err != nil {
		return Result{Lines: []Line{errLine("pwd: %v", err)}}
	}
	return Result{Lines: []Line{line("%s", wd)}}
}
