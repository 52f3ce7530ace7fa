package scylladest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fireproject/scylla-migrate/internal/model"
)

func TestNoteArgsColumnCount(t *testing.T) {
	n := &model.Note{ID: "p1"}
	args := noteArgs(n)
	assert.Len(t, args, strings.Count(insertNote, "?"))
}

func TestInsertHomeTimelineArgsPrefixesFeedUserID(t *testing.T) {
	entry := &model.HomeTimelineEntry{FeedUserID: "u3", Note: model.Note{ID: "p1"}}
	args := append([]any{entry.FeedUserID}, noteArgs(&entry.Note)...)
	assert.Equal(t, "u3", args[0])
	assert.Len(t, args, strings.Count(insertHomeTimeline, "?"))
}
