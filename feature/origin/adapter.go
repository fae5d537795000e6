package origin

import (
	"context"

	"cdn-manager/core/reconcile"
	"cdn-manager/core/resource"
)

// Client is the part of the StrikeTracker client the adapter uses.
type Client interface {
	ListOrigins(ctx context.Context) ([]*resource.Origin, error)
	GetOrigin(ctx context.Context, id int64) (*resource.Origin, error)
	CreateOrigin(ctx context.Context, payload map[string]any) (*resource.Origin, error)
	UpdateOrigin(ctx context.Context, id int64, payload map[string]any) (*resource.Origin, error)
	DeleteOrigin(ctx context.Context, id int64) error
}

// Adapter lets the reconciler read and mutate origins.
type Adapter struct {
	client Client
}

var _ reconcile.Mutator = (*Adapter)(nil)

// NewAdapter wraps client.
func NewAdapter(client Client) *Adapter {
	return &Adapter{client: client}
}

func (a *Adapter) Name() string { return "origin" }

func (a *Adapter) NaturalKey() string { return resource.OriginNaturalKey }

func (a *Adapter) New() resource.Reconcilable {
	o, _ := resource.NewOrigin(nil)
	return o
}

func (a *Adapter) Get(ctx context.Context, id int64) (resource.Reconcilable, error) {
	o, err := a.client.GetOrigin(ctx, id)
	if err != nil || o == nil {
		// A nil *Origin inside the interface would not compare equal to nil.
		return nil, err
	}
	return o, nil
}

func (a *Adapter) List(ctx context.Context) ([]resource.Reconcilable, error) {
	origins, err := a.client.ListOrigins(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]resource.Reconcilable, 0, len(origins))
	for _, o := range origins {
		out = append(out, o)
	}
	return out, nil
}

func (a *Adapter) Create(ctx context.Context, payload map[string]any) (resource.Reconcilable, error) {
	return wrap(a.client.CreateOrigin(ctx, payload))
}

func (a *Adapter) Update(ctx context.Context, id int64, payload map[string]any) (resource.Reconcilable, error) {
	return wrap(a.client.UpdateOrigin(ctx, id, payload))
}

func (a *Adapter) Delete(ctx context.Context, id int64) error {
	return a.client.DeleteOrigin(ctx, id)
}

func wrap(o *resource.Origin, err error) (resource.Reconcilable, error) {
	if err != nil || o == nil {
		return nil, err
	}
	return o, nil
}
