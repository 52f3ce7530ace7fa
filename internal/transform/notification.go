package transform

import (
	"context"
	"fmt"

	"github.com/fireproject/scylla-migrate/internal/apperr"
	"github.com/fireproject/scylla-migrate/internal/model"
)

// Notification resolves the notifier's host and the entity-id precedence
// order. The destination column is "reaction" and this binds to it
// directly — the source's column-name typo is not reproduced.
func Notification(ctx context.Context, reader Reader, n model.Notification) (*model.DestNotification, error) {
	var notifierHost *string
	if n.NotifierID.Valid {
		notifier, err := reader.UserByID(ctx, n.NotifierID.String)
		if err != nil {
			return nil, apperr.Wrap(apperr.SourceQuery, fmt.Errorf("notifier %s: %w", n.NotifierID.String, err))
		}
		if notifier != nil {
			notifierHost = notifier.HostOrNil()
		}
	}

	entityID := n.EntityID()

	return &model.DestNotification{
		TargetID:      n.NotifieeID,
		CreatedAtDate: dateOf(n.CreatedAt),
		CreatedAt:     n.CreatedAt,
		ID:            n.ID,
		NotifierID:    model.NullStringPtr(n.NotifierID),
		NotifierHost:  notifierHost,
		Type:          n.Type,
		EntityID:      model.NullStringPtr(entityID),
		Reaction:      model.NullStringPtr(n.Reaction),
		Choice:        model.NullInt32Ptr(n.Choice),
		CustomBody:    model.NullStringPtr(n.CustomBody),
		CustomHeader:  model.NullStringPtr(n.CustomHeader),
		CustomIcon:    model.NullStringPtr(n.CustomIcon),
	}, nil
}
