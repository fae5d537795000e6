package reconcile

import (
	"context"

	"cdn-manager/core/resource"
)

// Adapter defines how the reconciler reads one resource kind.
type Adapter interface {
	// Name returns the resource kind (e.g., "origin").
	Name() string

	// NaturalKey returns the attribute used to find the resource when no id is
	// known (e.g., "hostname").
	NaturalKey() string

	// New returns a record with no attributes. Its UpdatePayload builds creation
	// bodies.
	New() resource.Reconcilable

	// Get fetches a resource by id. A missing resource yields (nil, nil).
	Get(ctx context.Context, id int64) (resource.Reconcilable, error)

	// List returns every resource of the kind.
	List(ctx context.Context) ([]resource.Reconcilable, error)
}

// Mutator is implemented by adapters that can change remote state.
type Mutator interface {
	Adapter

	// Create posts a new resource and returns the server's record.
	Create(ctx context.Context, payload map[string]any) (resource.Reconcilable, error)

	// Update sends payload for the resource with id and returns the server's record.
	Update(ctx context.Context, id int64, payload map[string]any) (resource.Reconcilable, error)

	// Delete removes the resource. A missing resource yields faults.ErrNotFound.
	Delete(ctx context.Context, id int64) error
}
