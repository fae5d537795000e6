package reconcile

import (
	"context"
	"errors"
	"fmt"

	"cdn-manager/core/faults"
	"cdn-manager/core/resource"
)

// Apply executes a plan and returns the result.
//
// Dry runs and no-op plans make no call. Otherwise exactly one mutating call is made
// and the record the server returns becomes the result resource. On failure the
// returned result carries the planned action with Changed false and the resolved
// projection, alongside the error.
func Apply(ctx context.Context, adapter Adapter, plan *Plan, req Request) (*Result, error) {
	before := plan.Before()

	if plan.Action == ActionNone {
		return newResult(ActionNone, before, before, req.ReportDiff), nil
	}
	if req.DryRun {
		expected := plan.Expected()
		resourceView := expected
		if plan.Action == ActionDeleted {
			resourceView = before
		}
		result := newResult(plan.Action, resourceView, before, false)
		if req.ReportDiff {
			result.Diff = &Diff{Before: before, After: expected}
		}
		return result, nil
	}

	partial := &Result{Action: plan.Action, Changed: false, Resource: before}

	mutator, ok := adapter.(Mutator)
	if !ok {
		return partial, fmt.Errorf("adapter %s does not implement Mutator interface", adapter.Name())
	}

	switch plan.Action {
	case ActionCreated:
		created, err := mutator.Create(ctx, plan.Payload)
		if err != nil {
			return partial, fmt.Errorf("failed to create %s %s: %w", adapter.Name(), plan.Key, err)
		}
		after := project(created, plan.Payload)
		return newResult(ActionCreated, after, before, req.ReportDiff), nil

	case ActionUpdated:
		id, err := identifier(adapter, plan)
		if err != nil {
			return partial, err
		}
		updated, err := mutator.Update(ctx, id, plan.Payload)
		if err != nil {
			return partial, fmt.Errorf("failed to update %s %s: %w", adapter.Name(), plan.Key, err)
		}
		after := project(updated, plan.Expected())
		return newResult(ActionUpdated, after, before, req.ReportDiff), nil

	case ActionDeleted:
		id, err := identifier(adapter, plan)
		if err != nil {
			return partial, err
		}
		if err := mutator.Delete(ctx, id); err != nil {
			if errors.Is(err, faults.ErrNotFound) {
				// Removed between resolve and delete.
				gone := newResult(ActionNone, map[string]any{}, before, req.ReportDiff)
				if gone.Diff != nil {
					gone.Diff.After = map[string]any{}
				}
				return gone, nil
			}
			return partial, fmt.Errorf("failed to delete %s %s: %w", adapter.Name(), plan.Key, err)
		}
		result := newResult(ActionDeleted, before, before, false)
		if req.ReportDiff {
			result.Diff = &Diff{Before: before, After: map[string]any{}}
		}
		return result, nil
	}

	return partial, fmt.Errorf("unknown action %q", plan.Action)
}

// Reconcile plans and applies a request.
func Reconcile(ctx context.Context, adapter Adapter, req Request) (*Result, error) {
	plan, err := PlanReconcile(ctx, adapter, req)
	if err != nil {
		return &Result{Action: ActionNone, Resource: map[string]any{}}, err
	}
	return Apply(ctx, adapter, plan, req)
}

func newResult(action ActionType, after, before map[string]any, reportDiff bool) *Result {
	result := &Result{
		Action:   action,
		Changed:  action != ActionNone,
		Resource: after,
	}
	if reportDiff {
		result.Diff = &Diff{Before: before, After: after}
	}
	return result
}

// project re-projects the server's record, falling back when the server returned none.
func project(rec resource.Reconcilable, fallback map[string]any) map[string]any {
	if rec == nil {
		return fallback
	}
	return rec.Project()
}

func identifier(adapter Adapter, plan *Plan) (int64, error) {
	id, ok := plan.Current.Identifier()
	if !ok {
		return 0, fmt.Errorf("%s %s has no id", adapter.Name(), plan.Key)
	}
	return id, nil
}
