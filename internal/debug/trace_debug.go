//go:build debug

package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/timandy/routine"
)

// Enabled is true when the binary is built with the debug tag, which turns
// on verbose per-operation tracing via Log.
const Enabled = true

// Log prints a trace line to stderr, tagged with the caller's file and
// line and the calling goroutine's id — tree mutations interleave across
// goroutines under the single-writer/external-reader model, and the
// goroutine id is what lets a trace be read back as one coherent
// sequence per writer. context, if non-empty, is a printf template (plus
// args) printed before operation; this identifies a batch of related
// calls, the way a caller might tag every step of one MakePath with the
// key it was given.
func Log(context []any, operation string, format string, args ...any) {
	skip := 1
again:
	pc, file, line, _ := runtime.Caller(skip)
	fn := runtime.FuncForPC(pc)
	name := fn.Name()
	name = name[strings.LastIndex(name, ".")+1:]
	if strings.HasPrefix(name, "log") || strings.Contains(name, "Log") {
		skip++
		goto again
	}

	file = filepath.Base(file)

	buf := new(strings.Builder)
	_, _ = fmt.Fprintf(buf, "%s:%d [g%04d]", file, line, routine.Goid())
	if len(context) >= 1 {
		_, _ = fmt.Fprintf(buf, " ["+context[0].(string), context[1:]...)
		_, _ = buf.WriteString("]")
	}
	_, _ = fmt.Fprintf(buf, " %s: ", operation)
	_, _ = fmt.Fprintf(buf, format, args...)
	_, _ = buf.WriteString("\n")

	_, _ = os.Stderr.WriteString(buf.String())
}
