// Package faults defines the error taxonomy shared by the transport, decoder and
// reconciler layers.
//
// Every fatal failure is a *TypedError carrying one of the categories below, so the
// command boundary can report a single message regardless of where the failure was
// raised. HTTP failures additionally wrap a *Details with the request URL, status and
// the server supplied reason.
//
// A 404 from the API is not a failure: it surfaces as ErrNotFound and the resource
// layer turns it into an explicit "no resource" result.
//
// # Usage
//
//	if faults.IsCategory(err, faults.ConfigurationError) {
//	    // nothing was sent over the network
//	}
//
//	var details *faults.Details
//	if errors.As(err, &details) {
//	    fmt.Println(details.Status)
//	}
package faults
