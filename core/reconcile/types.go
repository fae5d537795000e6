package reconcile

import "cdn-manager/core/resource"

// Intent is the desired existence of a resource.
type Intent string

const (
	// IntentPresent converges the resource to the desired attributes, creating it if needed.
	IntentPresent Intent = "present"
	// IntentAbsent removes the resource if it exists.
	IntentAbsent Intent = "absent"
)

// ActionType is the mutation a reconciliation performs.
type ActionType string

const (
	// ActionNone leaves the resource untouched.
	ActionNone ActionType = "none"
	// ActionCreated creates the resource.
	ActionCreated ActionType = "created"
	// ActionUpdated sends the changed attributes.
	ActionUpdated ActionType = "updated"
	// ActionDeleted removes the resource.
	ActionDeleted ActionType = "deleted"
)

// Request describes one reconciliation.
type Request struct {
	// ID selects the resource directly. Optional.
	ID *int64

	// Desired maps attribute names to their desired values. Only non-null values
	// belong here.
	Desired map[string]any

	// Intent defaults to IntentPresent when empty.
	Intent Intent

	// DryRun prevents any mutating call.
	DryRun bool

	// ReportDiff adds the before and after projections to the result.
	ReportDiff bool
}

// Diff holds the projections around a reconciliation.
type Diff struct {
	Before map[string]any `json:"before"`
	After  map[string]any `json:"after"`
}

// Result is the outcome of a reconciliation.
type Result struct {
	// Action is the mutation performed, or the one a dry run would perform.
	Action ActionType `json:"action"`

	// Changed is true whenever Action is not ActionNone.
	Changed bool `json:"changed"`

	// Resource is the projection of the resource after the action.
	Resource map[string]any `json:"resource"`

	// Diff is set only when the request asked for it.
	Diff *Diff `json:"diff,omitempty"`
}

// Plan is the decision taken for a request, before anything is applied.
type Plan struct {
	// Action is the mutation to perform.
	Action ActionType `json:"action"`

	// Key identifies the resource in logs: its id, or its natural key value.
	Key string `json:"key"`

	// Current is the resolved remote record, nil when the resource does not exist.
	Current resource.Reconcilable `json:"-"`

	// Changes holds the desired values that differ from Current. Set for updates.
	Changes map[string]any `json:"changes,omitempty"`

	// Payload is the body of the create or update call.
	Payload map[string]any `json:"payload,omitempty"`
}

// Before returns the projection of the resolved record, or an empty mapping.
func (p *Plan) Before() map[string]any {
	if p.Current == nil {
		return map[string]any{}
	}
	return p.Current.Project()
}

// Expected returns the projection the resource should have once the plan is applied.
func (p *Plan) Expected() map[string]any {
	switch p.Action {
	case ActionCreated:
		return copyMap(p.Payload)
	case ActionUpdated:
		after := p.Before()
		for key, value := range p.Changes {
			after[key] = value
		}
		return after
	case ActionDeleted:
		return map[string]any{}
	default:
		return p.Before()
	}
}

func copyMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
