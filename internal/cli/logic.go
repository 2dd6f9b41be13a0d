package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/idelchi/ckdu/internal/du"
	"github.com/idelchi/ckdu/internal/errdesc"
)

func logic(options Options, stdout, stderr io.Writer) error {
	log := newLogger(stderr, options.Debug)

	enableProgress := strings.ToLower(options.Output) != "json" &&
		!options.Debug &&
		isTerminal(stderr)

	ctx := context.Background()

	// Simple progress callback that prints directly to stderr
	var progressHook func(entries, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		progressHook = func(entries, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d entries, %s",
				entries, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(stderr, "\r\033[2K%s\r", msg)
		}
	}

	result, err := du.Run(ctx, du.Options{
		Path:      options.Path,
		OnFailure: reportFailure(log, func() { clearStatus(stderr, enableProgress) }),
		Log:       log,
	}, progressHook)

	clearStatus(stderr, enableProgress)

	if err != nil {
		return err
	}

	switch strings.ToLower(options.Output) {
	case "json":
		return PrintJSON(result, stdout)
	case "table":
		if err := PrintTree(result.Root, stdout, TreeOptions{Depth: options.Depth, Boring: options.Boring}); err != nil {
			return err
		}

		if options.Summary {
			return PrintSummary(result, stdout)
		}

		return nil
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}

// newLogger creates the diagnostics logger writing to w.
func newLogger(w io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	return log
}

// reportFailure returns the failure hook for du.Run. Each failure is logged
// as a warning carrying the operation, the path and the errno name.
func reportFailure(log logrus.FieldLogger, before func()) func(error) {
	return func(err error) {
		if before != nil {
			before()
		}

		name, description := errdesc.Describe(err)

		entry := log.WithFields(logrus.Fields{
			"errno": name,
			"cause": description,
		})

		var pathErr *du.PathError
		if !errors.As(err, &pathErr) {
			entry.Warn(err.Error())

			return
		}

		entry.WithFields(logrus.Fields{
			"op":   pathErr.Op(),
			"path": pathErr.Path,
		}).Warn(pathErr.Kind.Error())
	}
}

// clearStatus clears the progress line.
func clearStatus(w io.Writer, enabled bool) {
	if enabled {
		fmt.Fprint(w, "\r\033[2K\r")
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}
