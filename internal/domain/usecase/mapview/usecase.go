package mapview

import (
	"context"

	"solar-map/internal/domain/model"
)

type UseCase interface {
	// Render resolves query to a city and returns its map. A blank or unmatched query yields the
	// national view; unmatched queries carry suggestions.
	Render(ctx context.Context, query string) (model.MapResponse, error)

	// WarmUp clears the map cache and composes the national view plus every city into it.
	// It returns the number of maps stored.
	WarmUp(ctx context.Context, runID string) (int, error)
}
