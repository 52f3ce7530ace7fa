package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
)

// Terminal renders one progressbar/v3 bar per stream. Streams run one after
// another, so only the current stream's bar is live at a time.
type Terminal struct {
	out io.Writer
}

// NewTerminal builds a terminal sink writing to stderr, keeping stdout free
// for any piped output.
func NewTerminal() *Terminal {
	return &Terminal{out: os.Stderr}
}

func (t *Terminal) NewBar(label string, total int64) Bar {
	description := fmt.Sprintf("%s (%s rows)", label, humanize.Comma(total))
	bar := progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(t.out),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(t.out) }),
	)
	return &terminalBar{bar: bar, out: t.out}
}

type terminalBar struct {
	bar *progressbar.ProgressBar
	out io.Writer
}

func (b *terminalBar) Inc() {
	_ = b.bar.Add(1)
}

func (b *terminalBar) Warn(line string) {
	_ = b.bar.Clear()
	fmt.Fprintln(b.out, line)
}

func (b *terminalBar) Close() {
	_ = b.bar.Close()
}
