package pkgrouter

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"
	"strings"

	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
)

//nolint:gochecknoglobals // swapped in tests
var stackOutput io.Writer = os.Stderr

//nolint:contextcheck // ignore error
func middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				//nolint:err113,errorlint // this must compare directly
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				slog.ErrorContext(r.Context(), "panic on the server", "because", rvr)

				printStackTrace(stackOutput, strings.Split(string(debug.Stack()), "\n"))

				if r.Header.Get("Connection") == "Upgrade" {
					return
				}

				encodeError(r.Context(), w, pkgerror.NewServer(fmt.Errorf("panic: %v", rvr)))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func printStackTrace(out io.Writer, lines []string) {
	fmt.Fprintln(out, "===== ===== START ===== =====")
	for i := 0; i < len(lines)-1; i++ {
		line := strings.TrimSpace(lines[i+1])
		if strings.Contains(line, "/internal/") && strings.Contains(line, ".go") {
			if idx := strings.Index(line, ".go:"); idx != -1 {
				end := strings.Index(line[idx:], " ")
				if end == -1 {
					end = len(line)
				} else {
					end += idx
				}
				shortPath := line[:end]
				internalIdx := strings.Index(shortPath, "/internal/")
				if internalIdx != -1 {
					shortPath = shortPath[internalIdx+1:]
					fmt.Fprintln(out, "stack trace: ", shortPath)
				}
			}
		}
	}
	fmt.Fprintln(out, "===== ===== END ===== =====")
}
