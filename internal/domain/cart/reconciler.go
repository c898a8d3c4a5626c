// Package cart implements the reconciliation engine that keeps a single
// logical cart per user across two storage tiers: an ephemeral local tier
// used before authentication and a durable identity-keyed tier used after.
package cart

import (
	"context"
	"errors"
	"time"

	"streesilk/internal/domain/entity"
)

// State is the engine's position in the session lifecycle.
type State int

const (
	// StateAnonymous means no verified identity is present; the local tier
	// is the source of truth.
	StateAnonymous State = iota

	// StateSyncing means an identity just became available and the local
	// tier is being drained into the durable tier.
	StateSyncing

	// StateAuthenticated means the durable tier is the source of truth.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateSyncing:
		return "syncing"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// ErrInvalidQuantity is returned when an add requests fewer than one unit.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// DurableTier is the identity-keyed storage the local tier drains into.
// AddQuantity must merge by (owner, product): an existing line's quantity is
// incremented, a missing line is created.
type DurableTier interface {
	AddQuantity(ctx context.Context, line *entity.CartLine) error
}

// Reconciler owns the decision of which cart tier is authoritative during a
// single session and performs the one-time drain between them. A Reconciler
// belongs to exactly one session and is not safe for concurrent use; the
// request model is single-threaded per session.
type Reconciler struct {
	state   State
	local   entity.CartLines
	drained bool

	now func() int64
}

// NewReconciler starts an engine for a fresh session, seeding the local tier
// with any lines the device already held. The initial state is anonymous;
// call Identify as soon as (and whenever) an identity is available.
func NewReconciler(local entity.CartLines) *Reconciler {
	return &Reconciler{
		state: StateAnonymous,
		local: append(entity.CartLines(nil), local...),
		now:   func() int64 { return time.Now().UnixMilli() },
	}
}

// State reports the engine's current lifecycle state.
func (r *Reconciler) State() State {
	return r.state
}

// Lines returns a copy of the local tier.
func (r *Reconciler) Lines() entity.CartLines {
	return append(entity.CartLines(nil), r.local...)
}

// Total is the local tier's value in minor units.
func (r *Reconciler) Total() int64 {
	return r.local.Total()
}

// Count is the local tier's unit count.
func (r *Reconciler) Count() int {
	return r.local.Count()
}

// Add merges a product snapshot into the local tier. A line already holding
// the same product has its quantity incremented; otherwise a new line is
// appended. Lines merge by product identity alone: size and color are carried
// as display data, not as part of the line key.
func (r *Reconciler) Add(snapshot entity.CartLine, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	now := r.now()
	for i := range r.local {
		if r.local[i].ProductID == snapshot.ProductID {
			r.local[i].Quantity += quantity
			r.local[i].UpdatedAt = now

			return nil
		}
	}

	snapshot.ID = snapshot.ProductID
	snapshot.Quantity = quantity
	snapshot.CreatedAt = now
	snapshot.UpdatedAt = now
	r.local = append(r.local, snapshot)

	return nil
}

// UpdateQuantity overwrites a local line's quantity. A quantity of zero or
// less delegates to Remove.
func (r *Reconciler) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		r.Remove(productID)

		return
	}

	for i := range r.local {
		if r.local[i].ProductID == productID {
			r.local[i].Quantity = quantity
			r.local[i].UpdatedAt = r.now()

			return
		}
	}
}

// Remove deletes a local line. Removing an absent line is a no-op.
func (r *Reconciler) Remove(productID string) {
	for i := range r.local {
		if r.local[i].ProductID == productID {
			r.local = append(r.local[:i], r.local[i+1:]...)

			return
		}
	}
}

// Clear empties the local tier.
func (r *Reconciler) Clear() {
	r.local = nil
}

// Identify reacts to an identity becoming available: it drains the local
// tier into the durable tier line by line and advances the engine to the
// authenticated state. An empty local tier skips the drain entirely.
//
// The drain is guarded by completion, not by attempt: a failure mid-drain
// leaves the engine in the syncing state with only the still-pending lines
// local, so a retry resumes where it stopped without re-adding migrated
// lines. Once a drain has fully completed, further calls are no-ops.
func (r *Reconciler) Identify(ctx context.Context, ownerID string, tier DurableTier) error {
	if r.drained {
		return nil
	}

	if len(r.local) == 0 {
		r.drained = true
		r.state = StateAuthenticated

		return nil
	}

	r.state = StateSyncing
	for len(r.local) > 0 {
		line := r.local[0]
		line.OwnerID = ownerID
		line.ID = line.ProductID

		if err := tier.AddQuantity(ctx, &line); err != nil {
			return err
		}
		r.local = r.local[1:]
	}

	r.local = nil
	r.drained = true
	r.state = StateAuthenticated

	return nil
}
