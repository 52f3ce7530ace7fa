package transform

import "github.com/fireproject/scylla-migrate/internal/model"

// Reaction is a straight field copy; no dependent look-ups.
func Reaction(r model.Reaction) model.DestReaction {
	return model.DestReaction{
		ID:        r.ID,
		NoteID:    r.NoteID,
		UserID:    r.UserID,
		Reaction:  r.Reaction,
		CreatedAt: r.CreatedAt,
	}
}
