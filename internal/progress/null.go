package progress

import (
	"fmt"
	"os"
)

// Null discards all progress output except warnings, which still go to
// stderr — used under --no-progress. Output is not checked for a TTY, so
// without that flag the terminal sink is used.
type Null struct{}

func (Null) NewBar(string, int64) Bar { return nullBar{} }

type nullBar struct{}

func (nullBar) Inc() {}

func (nullBar) Warn(line string) {
	fmt.Fprintln(os.Stderr, line)
}

func (nullBar) Close() {}
