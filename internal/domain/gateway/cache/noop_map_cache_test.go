package cache

import (
	"testing"

	"solar-map/internal/domain/entity"
	"solar-map/internal/domain/model"
)

func TestNoopMapCacheAlwaysMisses(t *testing.T) {
	c := NewNoopMapCache()
	ctx := t.Context()

	if err := c.Set(ctx, "solar:Сочи", entity.Map{Selected: "Сочи"}); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := c.Get(ctx, "solar:Сочи"); ok || err != nil {
		t.Errorf("Get = %v, %v; want miss", ok, err)
	}
	if n, err := c.Clear(ctx); n != 0 || err != nil {
		t.Errorf("Clear = %d, %v", n, err)
	}
	if h := c.Health(ctx); h.Status != model.StatusDisabled {
		t.Errorf("status = %s", h.Status)
	}
}
