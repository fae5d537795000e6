package reconcile

import (
	"context"
	"fmt"
	"strconv"

	"cdn-manager/core/faults"
	"cdn-manager/core/resource"
)

// Resolve finds the remote record a request refers to.
//
// An id is tried first. When no id is given, or the id is not found, and the desired
// mapping carries the adapter's natural key, the collection is scanned and the first
// record with an equal natural key wins. Nil means the resource does not exist.
func Resolve(ctx context.Context, adapter Adapter, req Request) (resource.Reconcilable, error) {
	if req.ID != nil {
		current, err := adapter.Get(ctx, *req.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s %d: %w", adapter.Name(), *req.ID, err)
		}
		if current != nil {
			return current, nil
		}
	}

	key := adapter.NaturalKey()
	want, ok := req.Desired[key]
	if !ok {
		return nil, nil
	}

	items, err := adapter.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", adapter.Name(), err)
	}
	for _, item := range items {
		if value, has := item.Lookup(key); has && resource.Equal(value, want) {
			return item, nil
		}
	}
	return nil, nil
}

// PlanReconcile resolves the resource and decides what to do with it.
// It does NOT mutate anything; use Apply for that.
func PlanReconcile(ctx context.Context, adapter Adapter, req Request) (*Plan, error) {
	intent, err := normalizeIntent(req.Intent)
	if err != nil {
		return nil, err
	}

	current, err := Resolve(ctx, adapter, req)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Action:  ActionNone,
		Key:     planKey(adapter, req, current),
		Current: current,
	}

	switch {
	case current == nil && intent == IntentPresent:
		plan.Action = ActionCreated
		plan.Payload = adapter.New().UpdatePayload(req.Desired)
	case current == nil && intent == IntentAbsent:
		plan.Action = ActionNone
	case intent == IntentAbsent:
		plan.Action = ActionDeleted
	default:
		changes := current.Diff(req.Desired)
		if len(changes) == 0 {
			break
		}
		plan.Action = ActionUpdated
		plan.Changes = changes
		plan.Payload = current.UpdatePayload(changes)
	}

	return plan, nil
}

func normalizeIntent(intent Intent) (Intent, error) {
	switch intent {
	case "":
		return IntentPresent, nil
	case IntentPresent, IntentAbsent:
		return intent, nil
	default:
		return "", faults.Configuration("state must be one of %q or %q, got %q", IntentPresent, IntentAbsent, intent)
	}
}

func planKey(adapter Adapter, req Request, current resource.Reconcilable) string {
	if current != nil {
		if id, ok := current.Identifier(); ok {
			return strconv.FormatInt(id, 10)
		}
	}
	if req.ID != nil {
		return strconv.FormatInt(*req.ID, 10)
	}
	if value, ok := req.Desired[adapter.NaturalKey()]; ok {
		return fmt.Sprint(value)
	}
	return ""
}
