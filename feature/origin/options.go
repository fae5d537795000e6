package origin

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"cdn-manager/core/faults"
	"cdn-manager/core/reconcile"
	"cdn-manager/core/resource"
)

const (
	// DefaultType is sent when no origin type is given.
	DefaultType = "EXTERNAL"
	// AuthenticationNone disables origin authentication.
	AuthenticationNone = "NONE"
	// AuthenticationBasic enables HTTP basic authentication towards the origin.
	AuthenticationBasic = "BASIC"
)

// Options are the inputs of one origin reconciliation.
//
// Pointer fields are optional; only the ones that are set end up in the desired
// state. Host and URI are aliases of Hostname and Path.
type Options struct {
	ID       *int64  `json:"id,omitempty"`
	Name     *string `json:"name,omitempty"`
	Hostname *string `json:"hostname,omitempty"`
	Host     *string `json:"host,omitempty"`
	Port     *int    `json:"port,omitempty"`
	Type     *string `json:"type,omitempty"`
	Path     *string `json:"path,omitempty"`
	URI      *string `json:"uri,omitempty"`

	OriginPullHeaders  *string `json:"originPullHeaders,omitempty"`
	OriginCacheHeaders *string `json:"originCacheHeaders,omitempty"`
	CertificateCN      *string `json:"certificateCN,omitempty"`

	RequestTimeoutSeconds        *int  `json:"requestTimeoutSeconds,omitempty"`
	ErrorCacheTTLSeconds         *int  `json:"errorCacheTTLSeconds,omitempty"`
	MaxRetryCount                *int  `json:"maxRetryCount,omitempty"`
	SecurePort                   *int  `json:"securePort,omitempty"`
	MaximumOriginPullSeconds     *int  `json:"maximumOriginPullSeconds,omitempty"`
	MaxRequestsPerConnection     *int  `json:"maxRequestsPerConnection,omitempty"`
	MaxConnectionsPerEdge        *int  `json:"maxConnectionsPerEdge,omitempty"`
	MaxConnectionsPerEdgeEnabled *bool `json:"maxConnectionsPerEdgeEnabled,omitempty"`
	VerifyCertificate            *bool `json:"verifyCertificate,omitempty"`

	// Username and Password are the basic auth credentials sent to the origin.
	Username           *string `json:"username,omitempty"`
	Password           *string `json:"password,omitempty"`
	AuthenticationType *string `json:"authenticationType,omitempty"`

	// State is present (default) or absent.
	State string `json:"state,omitempty"`

	// Config is a raw JSON object used verbatim as the desired state. When set,
	// every attribute option above is ignored.
	Config string `json:"config,omitempty"`

	// Check reports what would change without changing it.
	Check bool `json:"check,omitempty"`
	// Diff adds before and after projections to the result.
	Diff bool `json:"diff,omitempty"`
}

// Desired returns the desired state: the parsed Config when given, otherwise
// every set option plus the type and authenticationType defaults.
func (o Options) Desired() (map[string]any, error) {
	if o.Config != "" {
		return parseConfig(o.Config)
	}

	hostname, err := alias("hostname", o.Hostname, "host", o.Host)
	if err != nil {
		return nil, err
	}
	path, err := alias("path", o.Path, "uri", o.URI)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any)
	set(out, "name", o.Name)
	set(out, "hostname", hostname)
	set(out, "port", o.Port)
	set(out, "path", path)
	set(out, "type", withDefault(o.Type, DefaultType))
	set(out, "originPullHeaders", o.OriginPullHeaders)
	set(out, "originCacheHeaders", o.OriginCacheHeaders)
	set(out, "certificateCN", o.CertificateCN)
	set(out, "requestTimeoutSeconds", o.RequestTimeoutSeconds)
	set(out, "errorCacheTTLSeconds", o.ErrorCacheTTLSeconds)
	set(out, "maxRetryCount", o.MaxRetryCount)
	set(out, "securePort", o.SecurePort)
	set(out, "maximumOriginPullSeconds", o.MaximumOriginPullSeconds)
	set(out, "maxRequestsPerConnection", o.MaxRequestsPerConnection)
	set(out, "maxConnectionsPerEdge", o.MaxConnectionsPerEdge)
	set(out, "maxConnectionsPerEdgeEnabled", o.MaxConnectionsPerEdgeEnabled)
	set(out, "verifyCertificate", o.VerifyCertificate)
	set(out, "username", o.Username)
	set(out, "password", o.Password)
	set(out, "authenticationType", withDefault(o.AuthenticationType, AuthenticationNone))
	return out, nil
}

// Request validates the options and builds the reconcile request.
func (o Options) Request() (reconcile.Request, error) {
	intent, err := o.intent()
	if err != nil {
		return reconcile.Request{}, err
	}
	if o.AuthenticationType != nil {
		switch *o.AuthenticationType {
		case AuthenticationNone, AuthenticationBasic:
		default:
			return reconcile.Request{}, faults.Configuration("authenticationType must be one of %s or %s, got %q",
				AuthenticationNone, AuthenticationBasic, *o.AuthenticationType)
		}
	}

	desired, err := o.Desired()
	if err != nil {
		return reconcile.Request{}, err
	}

	if o.Config == "" {
		if err := requiredTogether(desired, "hostname", "port", "path"); err != nil {
			return reconcile.Request{}, err
		}
	}
	if _, ok := desired[resource.OriginNaturalKey]; !ok && o.ID == nil {
		return reconcile.Request{}, faults.Configuration("state is %s but none of the following are set: id, hostname", intent)
	}

	return reconcile.Request{
		ID:         o.ID,
		Desired:    desired,
		Intent:     intent,
		DryRun:     o.Check,
		ReportDiff: o.Diff,
	}, nil
}

// LockKey names the origin for cross-process locking: the hostname when known,
// otherwise the id. A run known only by id also locks the hostname it resolves to.
func (o Options) LockKey() string {
	if o.Config != "" {
		if desired, err := parseConfig(o.Config); err == nil {
			if v, ok := desired[resource.OriginNaturalKey]; ok {
				return fmt.Sprint(v)
			}
		}
	}
	if o.Hostname != nil {
		return *o.Hostname
	}
	if o.Host != nil {
		return *o.Host
	}
	if o.ID != nil {
		return fmt.Sprint(*o.ID)
	}
	return ""
}

func (o Options) intent() (reconcile.Intent, error) {
	switch reconcile.Intent(o.State) {
	case "":
		return reconcile.IntentPresent, nil
	case reconcile.IntentPresent, reconcile.IntentAbsent:
		return reconcile.Intent(o.State), nil
	default:
		return "", faults.Configuration("state must be one of %s or %s, got %q",
			reconcile.IntentPresent, reconcile.IntentAbsent, o.State)
	}
}

func parseConfig(raw string) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()

	var desired map[string]any
	if err := dec.Decode(&desired); err != nil {
		return nil, faults.Decode("config is not a valid JSON object", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, faults.Decode("config is not a valid JSON object", fmt.Errorf("unexpected data after top-level value"))
	}
	if desired == nil {
		return nil, faults.Decode("config is not a valid JSON object", fmt.Errorf("got null"))
	}
	return desired, nil
}

func alias[T comparable](name string, value *T, aliasName string, aliasValue *T) (*T, error) {
	switch {
	case value == nil:
		return aliasValue, nil
	case aliasValue == nil || *aliasValue == *value:
		return value, nil
	default:
		return nil, faults.Configuration("%s and its alias %s are both set to different values", name, aliasName)
	}
}

func withDefault(value *string, fallback string) *string {
	if value != nil {
		return value
	}
	return &fallback
}

func set[T any](out map[string]any, key string, value *T) {
	if value != nil {
		out[key] = *value
	}
}

func requiredTogether(desired map[string]any, keys ...string) error {
	var missing []string
	for _, key := range keys {
		if _, ok := desired[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 && len(missing) < len(keys) {
		return faults.Configuration("parameters are required together: %v, missing %v", keys, missing)
	}
	return nil
}
