package audit

import (
	"fmt"
	"io"
	"os"
)

// ConfirmFunc is the injected confirmation capability used before a
// destructive action. Implementations may prompt interactively or
// return a fixed answer for headless runs and tests.
type ConfirmFunc func(action, target string) (bool, error)

// Remover deletes qualifying directories, gated by dry-run and
// confirmation. A Remover never aborts a scan: deletion failures are
// reported to Warnings and swallowed so remaining candidates are still
// processed.
type Remover struct {
	// DryRun reports what would be removed without touching the
	// filesystem.
	DryRun bool

	// Confirm gates each deletion. Nil means no confirmation is
	// required (the caller already opted in, e.g. via --yes).
	Confirm ConfirmFunc

	// Out receives "Would remove:"/"Removed:" lines.
	Out io.Writer

	// Warnings receives non-fatal deletion failures.
	Warnings io.Writer

	// removeFn overrides os.RemoveAll in tests.
	removeFn func(path string) error
}

func (r *Remover) removeAll(path string) error {
	if r.removeFn != nil {
		return r.removeFn(path)
	}
	return os.RemoveAll(path)
}

// Remove handles a single candidate directory.
//
// The returned error is non-nil only when the confirmation itself
// fails (e.g. the prompt was interrupted); a failed deletion is a
// warning, not an error.
func (r *Remover) Remove(path string) error {
	if r.DryRun {
		fmt.Fprintf(r.Out, "Would remove: %s\n", path)
		return nil
	}

	if r.Confirm != nil {
		ok, err := r.Confirm("delete", path)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	if err := r.removeAll(path); err != nil {
		fmt.Fprintf(r.Warnings, "Warning: could not remove %s: %v\n", path, err)
		return nil
	}

	fmt.Fprintf(r.Out, "Removed: %s\n", path)
	return nil
}
