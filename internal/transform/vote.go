package transform

import (
	"context"
	"fmt"

	"github.com/fireproject/scylla-migrate/internal/apperr"
	"github.com/fireproject/scylla-migrate/internal/model"
)

// VoteStore is the destination-side look-up a vote merge needs. Declared
// here so tests can substitute a recorder instead of a real scylladest.Client.
type VoteStore interface {
	SelectPollVote(ctx context.Context, noteID, userID string) (*model.DestPollVote, error)
}

// Vote resolves the voter's host, merges the new
// choice into any existing stored row, and dedupes the result
// order-preserving. A voter with no matching user row is skipped entirely —
// no row is written and nothing is reported.
func Vote(ctx context.Context, reader Reader, store VoteStore, vote model.PollVote) (*model.DestPollVote, error) {
	voter, err := reader.UserByID(ctx, vote.UserID)
	if err != nil {
		return nil, apperr.Wrap(apperr.SourceQuery, fmt.Errorf("voter %s: %w", vote.UserID, err))
	}
	if voter == nil {
		return nil, nil
	}

	row := &model.DestPollVote{
		NoteID:    vote.NoteID,
		UserID:    vote.UserID,
		UserHost:  voter.HostOrNil(),
		Choice:    []int32{vote.Choice},
		CreatedAt: vote.CreatedAt,
	}

	existing, err := store.SelectPollVote(ctx, vote.NoteID, vote.UserID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Decode, fmt.Errorf("select existing vote: %w", err))
	}
	if existing != nil {
		row.Choice = dedupeInt32(append(row.Choice, existing.Choice...))
	}
	return row, nil
}

func dedupeInt32(in []int32) []int32 {
	seen := make(map[int32]struct{}, len(in))
	out := make([]int32, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
