package cart

import (
	"context"
	"testing"

	"streesilk/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTier is an in-memory durable tier with merge-by-(owner, product)
// semantics and optional per-product failures.
type fakeTier struct {
	lines   map[string]*entity.CartLine
	failOn  map[string]bool
	added   []string
	addSeen int
}

func newFakeTier() *fakeTier {
	return &fakeTier{
		lines:  make(map[string]*entity.CartLine),
		failOn: make(map[string]bool),
	}
}

func (t *fakeTier) AddQuantity(_ context.Context, line *entity.CartLine) error {
	t.addSeen++
	if t.failOn[line.ProductID] {
		return errors.New("store unavailable")
	}

	key := line.OwnerID + "/" + line.ProductID
	if existing, ok := t.lines[key]; ok {
		existing.Quantity += line.Quantity

		return nil
	}

	copied := *line
	t.lines[key] = &copied
	t.added = append(t.added, line.ProductID)

	return nil
}

func snapshot(productID string, price int64) entity.CartLine {
	return entity.CartLine{
		ProductID: productID,
		Name:      "Muga Silk Saree " + productID,
		Price:     price,
		Category:  "Muga",
		Image:     "https://cdn.example.com/" + productID + ".jpg",
	}
}

func TestReconciler_AddMergesByProduct(t *testing.T) {
	r := NewReconciler(nil)

	require.NoError(t, r.Add(snapshot("p1", 250000), 2))
	require.NoError(t, r.Add(snapshot("p1", 250000), 3))
	require.NoError(t, r.Add(snapshot("p2", 100000), 1))

	lines := r.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, "p1", lines[0].ID, "line id mirrors the product id")
	assert.Equal(t, int64(250000*5+100000), r.Total())
	assert.Equal(t, 6, r.Count())
}

func TestReconciler_AddRejectsNonPositiveQuantity(t *testing.T) {
	r := NewReconciler(nil)

	assert.ErrorIs(t, r.Add(snapshot("p1", 100), 0), ErrInvalidQuantity)
	assert.ErrorIs(t, r.Add(snapshot("p1", 100), -2), ErrInvalidQuantity)
	assert.Empty(t, r.Lines())
}

func TestReconciler_UpdateQuantityToZeroRemoves(t *testing.T) {
	r := NewReconciler(nil)
	require.NoError(t, r.Add(snapshot("p1", 100), 2))

	r.UpdateQuantity("p1", 0)

	assert.Empty(t, r.Lines())
	assert.Zero(t, r.Total())
	assert.Zero(t, r.Count())
}

func TestReconciler_UpdateQuantityOverwrites(t *testing.T) {
	r := NewReconciler(nil)
	require.NoError(t, r.Add(snapshot("p1", 100), 2))

	r.UpdateQuantity("p1", 7)

	require.Len(t, r.Lines(), 1)
	assert.Equal(t, 7, r.Lines()[0].Quantity)
}

func TestReconciler_RemoveMissingLineIsNoop(t *testing.T) {
	r := NewReconciler(nil)
	require.NoError(t, r.Add(snapshot("p1", 100), 1))

	r.Remove("does-not-exist")

	assert.Len(t, r.Lines(), 1)
}

func TestReconciler_EmptyCartDerivationsAreZero(t *testing.T) {
	r := NewReconciler(nil)

	assert.Zero(t, r.Total())
	assert.Zero(t, r.Count())
}

func TestReconciler_IdentifyDrainsAllLines(t *testing.T) {
	r := NewReconciler(entity.CartLines{
		{ProductID: "p1", Name: "A", Price: 100, Quantity: 1},
		{ProductID: "p2", Name: "B", Price: 200, Quantity: 2},
	})
	tier := newFakeTier()

	require.NoError(t, r.Identify(context.Background(), "u1", tier))

	assert.Equal(t, StateAuthenticated, r.State())
	assert.Empty(t, r.Lines(), "local tier is cleared after the drain")
	require.Len(t, tier.lines, 2)
	assert.Equal(t, 1, tier.lines["u1/p1"].Quantity)
	assert.Equal(t, 2, tier.lines["u1/p2"].Quantity)
	assert.Equal(t, "u1", tier.lines["u1/p1"].OwnerID)
}

func TestReconciler_SecondIdentifyIsNoop(t *testing.T) {
	r := NewReconciler(entity.CartLines{
		{ProductID: "p1", Price: 100, Quantity: 1},
	})
	tier := newFakeTier()

	require.NoError(t, r.Identify(context.Background(), "u1", tier))
	first := tier.addSeen

	require.NoError(t, r.Identify(context.Background(), "u1", tier))

	assert.Equal(t, first, tier.addSeen, "a completed drain never re-adds lines")
	assert.Equal(t, 1, tier.lines["u1/p1"].Quantity)
}

func TestReconciler_EmptyLocalTierSkipsDrain(t *testing.T) {
	r := NewReconciler(nil)
	tier := newFakeTier()

	require.NoError(t, r.Identify(context.Background(), "u1", tier))

	assert.Equal(t, StateAuthenticated, r.State())
	assert.Zero(t, tier.addSeen)
}

func TestReconciler_FailedDrainResumesPendingLines(t *testing.T) {
	r := NewReconciler(entity.CartLines{
		{ProductID: "p1", Price: 100, Quantity: 1},
		{ProductID: "p2", Price: 200, Quantity: 2},
		{ProductID: "p3", Price: 300, Quantity: 3},
	})
	tier := newFakeTier()
	tier.failOn["p2"] = true

	err := r.Identify(context.Background(), "u1", tier)
	require.Error(t, err)
	assert.Equal(t, StateSyncing, r.State())
	assert.Len(t, r.Lines(), 2, "migrated lines leave the local tier, pending lines stay")

	// The outage clears; the retry must pick up p2 and p3 without touching p1.
	tier.failOn["p2"] = false
	require.NoError(t, r.Identify(context.Background(), "u1", tier))

	assert.Equal(t, StateAuthenticated, r.State())
	require.Len(t, tier.lines, 3)
	assert.Equal(t, 1, tier.lines["u1/p1"].Quantity, "retry did not double-add the migrated line")
	assert.Equal(t, 2, tier.lines["u1/p2"].Quantity)
	assert.Equal(t, 3, tier.lines["u1/p3"].Quantity)
}

func TestReconciler_SeedLinesAreCopied(t *testing.T) {
	seed := entity.CartLines{{ProductID: "p1", Price: 100, Quantity: 1}}
	r := NewReconciler(seed)

	seed[0].Quantity = 99

	assert.Equal(t, 1, r.Lines()[0].Quantity)
}
