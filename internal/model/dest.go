package model

import "time"

// DriveFileEmbed is the structured drive-file value embedded inline in
// note/home_timeline rows (field names match the camelCase CQL UDT columns).
type DriveFileEmbed struct {
	ID           string
	Type         string
	CreatedAt    time.Time
	Name         string
	Comment      *string
	Blurhash     *string
	URL          string
	ThumbnailURL *string
	IsSensitive  bool
	IsLink       bool
	MD5          string
	Size         int32
	Width        *int32
	Height       *int32
}

// NoteEditEmbed is one entry of a note's embedded edit history.
type NoteEditEmbed struct {
	Content   *string
	CW        *string
	Files     []DriveFileEmbed
	UpdatedAt time.Time
}

// PollEmbed is the structured poll value embedded in a note row. Choices is
// 1-based: key 1 is the first choice.
type PollEmbed struct {
	ExpiresAt *time.Time
	Multiple  bool
	Choices   map[int32]string
}

// Note is the destination "note" row: the canonical copy of a post with all
// look-ups denormalized inline.
type Note struct {
	CreatedAtDate  time.Time
	CreatedAt      time.Time
	ID             string
	Visibility     string
	Content        *string
	Lang           *string
	Name           *string
	CW             *string
	LocalOnly      bool
	RenoteCount    int32
	RepliesCount   int32
	URI            *string
	URL            *string
	Score          int32
	Files          []DriveFileEmbed
	VisibleUserIDs []string
	Mentions       []string
	MentionedRemoteUsers string
	Emojis         []string
	Tags           []string
	HasPoll        bool
	Poll           *PollEmbed
	ThreadID       *string
	ChannelID      *string
	UserID         string
	UserHost       string
	ReplyID        *string
	ReplyUserID    *string
	ReplyUserHost  *string
	ReplyContent   *string
	ReplyCW        *string
	ReplyFiles     []DriveFileEmbed
	RenoteID       *string
	RenoteUserID   *string
	RenoteUserHost *string
	RenoteContent  *string
	RenoteCW       *string
	RenoteFiles    []DriveFileEmbed
	Reactions      map[string]int32
	NoteEdit       []NoteEditEmbed
	UpdatedAt      *time.Time
}

// HomeTimelineEntry is the destination "home_timeline" row: a Note payload
// prefixed by the feed owner's user id. One row per {author, subscriber}
// pair.
type HomeTimelineEntry struct {
	FeedUserID string
	Note
}

// DestReaction is the destination "reaction" row — a straight field copy of
// the source reaction, no look-ups.
type DestReaction struct {
	ID        string
	NoteID    string
	UserID    string
	Reaction  string
	CreatedAt time.Time
}

// DestPollVote is the destination "poll_vote" row. Choice is a list to
// support multiple-choice polls and the merge-on-write behavior when a
// voter changes their vote.
type DestPollVote struct {
	NoteID    string
	UserID    string
	UserHost  *string
	Choice    []int32
	CreatedAt time.Time
}

// DestNotification is the destination "notification" row.
type DestNotification struct {
	TargetID      string
	CreatedAtDate time.Time
	CreatedAt     time.Time
	ID            string
	NotifierID    *string
	NotifierHost  *string
	Type          string
	EntityID      *string
	Reaction      *string
	Choice        *int32
	CustomBody    *string
	CustomHeader  *string
	CustomIcon    *string
}
