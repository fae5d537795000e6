package checks

// Status is the outcome of one check.
type Status string

const (
	StatusOK       Status = "ok"
	StatusWarn     Status = "warn"
	StatusError    Status = "error"
	StatusDisabled Status = "disabled"
	StatusFixed    Status = "fixed"
)

// Result strictly types the outcome of a single backend check.
type Result struct {
	Name    string   `json:"name"`
	Status  Status   `json:"status"`
	Detail  string   `json:"detail,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

// Failed reports whether the check found a problem that was not fixed.
func (r Result) Failed() bool {
	return r.Status == StatusError
}

// Disabled builds the result for a backend that is switched off.
func Disabled(name string) Result {
	return Result{Name: name, Status: StatusDisabled}
}

func failed(name string, err error) Result {
	return Result{Name: name, Status: StatusError, Detail: err.Error()}
}
