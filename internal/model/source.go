// Package model declares the record shapes read from PostgreSQL and written
// to ScyllaDB, along with the structured values embedded inline in
// denormalized rows.
package model

import (
	"database/sql"
	"time"
)

// Post is a row from the source "note" table.
type Post struct {
	ID                  string
	UserID              string
	UserHost            sql.NullString
	Visibility          string
	Text                sql.NullString
	CW                  sql.NullString
	Name                sql.NullString
	LocalOnly           bool
	RenoteCount         int32
	RepliesCount        int32
	URI                 sql.NullString
	URL                 sql.NullString
	Score               int32
	FileIDs             []string
	VisibleUserIDs      []string
	Mentions            []string
	MentionedRemoteUsers string
	Emojis              []string
	Tags                []string
	Reactions           []byte // raw JSON object, projected by transform.ProjectReactions
	Lang                sql.NullString
	ThreadID            sql.NullString
	ChannelID           sql.NullString
	ReplyID             sql.NullString
	ReplyUserID         sql.NullString
	ReplyUserHost       sql.NullString
	RenoteID            sql.NullString
	RenoteUserID        sql.NullString
	RenoteUserHost      sql.NullString
	CreatedAt           time.Time
	UpdatedAt           sql.NullTime
}

// HostOrLocal returns UserHost, defaulting to "local" when null — used both
// for the note row itself and for deciding self-timeline fan-out.
func (p Post) HostOrLocal() string {
	if p.UserHost.Valid {
		return p.UserHost.String
	}
	return "local"
}

// IsLocal reports whether the post's author is on this instance.
func (p Post) IsLocal() bool {
	return !p.UserHost.Valid
}

// Reaction is a row from the source "note_reaction" table.
type Reaction struct {
	ID        string
	NoteID    string
	UserID    string
	Reaction  string
	CreatedAt time.Time
}

// PollVote is a row from the source "poll_vote" table.
type PollVote struct {
	ID        string
	NoteID    string
	UserID    string
	Choice    int32
	CreatedAt time.Time
}

// Notification is a row from the source "notification" table.
type Notification struct {
	ID                    string
	NotifieeID            string
	NotifierID            sql.NullString
	Type                  string
	NoteID                sql.NullString
	FollowRequestID       sql.NullString
	UserGroupInvitationID sql.NullString
	AppAccessTokenID      sql.NullString
	Reaction              sql.NullString
	Choice                sql.NullInt32
	CustomBody            sql.NullString
	CustomHeader          sql.NullString
	CustomIcon            sql.NullString
	CreatedAt             time.Time
}

// EntityID returns the first non-null entity reference, in fixed
// precedence order: note, follow request, user-group invitation, app
// access token.
func (n Notification) EntityID() sql.NullString {
	for _, candidate := range []sql.NullString{
		n.NoteID, n.FollowRequestID, n.UserGroupInvitationID, n.AppAccessTokenID,
	} {
		if candidate.Valid {
			return candidate
		}
	}
	return sql.NullString{}
}

// Poll is the source "poll" row related to a post, fetched by post id.
type Poll struct {
	PostID    string
	ExpiresAt sql.NullTime
	Multiple  bool
	Choices   []string // ordered; index i corresponds to destination choice key i+1
}

// NoteEdit is one entry in a post's source "note_edit" history.
type NoteEdit struct {
	PostID    string
	Text      sql.NullString
	CW        sql.NullString
	FileIDs   []string
	UpdatedAt time.Time
}

// DriveFile is a source "drive_file" row, fetched by id set.
type DriveFile struct {
	ID           string
	Type         string
	CreatedAt    time.Time
	Name         string
	Comment      sql.NullString
	Blurhash     sql.NullString
	URL          string
	ThumbnailURL sql.NullString
	IsSensitive  bool
	IsLink       bool
	MD5          string
	Size         int32
	Properties   []byte // raw JSON; width/height extracted on demand
}

// User is a source "user" row, fetched by id.
type User struct {
	ID   string
	Host sql.NullString
}

// HostOrNil returns a *string suitable for binding into a nullable
// destination column: nil when the user is local.
func (u User) HostOrNil() *string {
	if !u.Host.Valid {
		return nil
	}
	h := u.Host.String
	return &h
}
