package clipboard

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// writeAll is swapped out in tests.
var writeAll = clipboard.WriteAll

// Copy puts text on the system clipboard. When that is not possible the
// text is written to fallback so it can be copied by hand, and copied is
// false. The returned error only reports a failed fallback write.
func Copy(text string, fallback io.Writer) (copied bool, err error) {
	if !clipboard.Unsupported {
		if err := writeAll(text); err == nil {
			return true, nil
		}
	}
	if _, err := fmt.Fprintln(fallback, text); err != nil {
		return false, fmt.Errorf("write fallback: %w", err)
	}
	return false, nil
}
