// Package reconcile converges one remote resource to a desired state.
//
// A reconciliation runs as a single sequential chain:
//
//  1. Resolve: look the resource up by id, or by scanning the collection for the
//     adapter's natural key when no id is known or the id is not found.
//  2. Plan: decide between create, update, delete and no-op from the intent and
//     the record's Diff against the desired mapping.
//  3. Apply: issue at most one mutating call through the adapter's Mutator and
//     re-project the record the server returns.
//
// Dry runs stop after planning and report the state the mutation would produce.
// A missing resource is never an error. Any other failure aborts the chain with
// the partial result built so far.
//
// # Adapters
//
// An Adapter reads one resource kind, and a Mutator changes it. Adapters return
// records from core/resource, so diffing and payload building stay with the record
// types:
//
//	plan, err := reconcile.PlanReconcile(ctx, adapter, req)
//	if err != nil {
//	    return err
//	}
//	result, err := reconcile.Apply(ctx, adapter, plan, req)
package reconcile
