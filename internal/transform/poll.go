package transform

import "github.com/fireproject/scylla-migrate/internal/model"

// embedPoll converts an ordered source choice list into a 1-based
// destination map.
func embedPoll(p *model.Poll) *model.PollEmbed {
	if p == nil {
		return nil
	}
	choices := make(map[int32]string, len(p.Choices))
	for i, c := range p.Choices {
		choices[int32(i+1)] = c
	}
	return &model.PollEmbed{
		ExpiresAt: model.NullTimePtr(p.ExpiresAt),
		Multiple:  p.Multiple,
		Choices:   choices,
	}
}
