package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullSinkIsSilentAndSafe(t *testing.T) {
	sink := Null{}
	bar := sink.NewBar("posts", 10)
	bar.Inc()
	bar.Warn("ignored")
	bar.Close()
}

func TestTerminalSinkRendersDescription(t *testing.T) {
	var buf bytes.Buffer
	sink := &Terminal{out: &buf}
	bar := sink.NewBar("posts", 2)
	bar.Inc()
	bar.Inc()
	bar.Close()
	assert.Contains(t, buf.String(), "posts")
}
