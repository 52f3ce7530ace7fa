package scylladest

// The six CQL statements the stream driver compiles once at startup and
// shares by reference across worker goroutines. Identifiers are quoted
// because the destination schema uses mixed-case column names.

const insertNote = `INSERT INTO note (
	"createdAtDate", "createdAt", "id", "visibility", "content", "lang", "name", "cw",
	"localOnly", "renoteCount", "repliesCount", "uri", "url", "score", "files",
	"visibleUserIds", "mentions", "mentionedRemoteUsers", "emojis", "tags",
	"hasPoll", "poll", "threadId", "channelId", "userId", "userHost",
	"replyId", "replyUserId", "replyUserHost", "replyContent", "replyCw", "replyFiles",
	"renoteId", "renoteUserId", "renoteUserHost", "renoteContent", "renoteCw", "renoteFiles",
	"reactions", "noteEdit", "updatedAt"
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const insertHomeTimeline = `INSERT INTO home_timeline (
	"feedUserId",
	"createdAtDate", "createdAt", "id", "visibility", "content", "lang", "name", "cw",
	"localOnly", "renoteCount", "repliesCount", "uri", "url", "score", "files",
	"visibleUserIds", "mentions", "mentionedRemoteUsers", "emojis", "tags",
	"hasPoll", "poll", "threadId", "channelId", "userId", "userHost",
	"replyId", "replyUserId", "replyUserHost", "replyContent", "replyCw", "replyFiles",
	"renoteId", "renoteUserId", "renoteUserHost", "renoteContent", "renoteCw", "renoteFiles",
	"reactions", "noteEdit", "updatedAt"
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const insertReaction = `INSERT INTO reaction ("id", "noteId", "userId", "reaction", "createdAt") VALUES (?, ?, ?, ?, ?)`

const insertPollVote = `INSERT INTO poll_vote ("noteId", "userId", "userHost", "choice", "createdAt") VALUES (?, ?, ?, ?, ?)`

const selectPollVote = `SELECT "noteId", "userId", "userHost", "choice", "createdAt" FROM poll_vote WHERE "noteId" = ? AND "userId" = ?`

const insertNotification = `INSERT INTO notification (
	"targetId", "createdAtDate", "createdAt", "id", "notifierId", "notifierHost",
	"type", "entityId", "reaction", "choice", "customBody", "customHeader", "customIcon"
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
