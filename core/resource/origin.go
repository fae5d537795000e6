package resource

// Origin is an upstream host the CDN pulls content from.
type Origin struct {
	attributes

	ID                    *int64  `mapstructure:"id"`
	Name                  string  `mapstructure:"name"`
	Type                  *string `mapstructure:"type"`
	Path                  string  `mapstructure:"path"`
	CreatedDate           *string `mapstructure:"createdDate"`
	UpdatedDate           *string `mapstructure:"updatedDate"`
	RequestTimeoutSeconds *int    `mapstructure:"requestTimeoutSeconds"`
	ErrorCacheTTLSeconds  *int    `mapstructure:"errorCacheTTLSeconds"`
	MaxRetryCount         *int    `mapstructure:"maxRetryCount"`
	AuthenticationType    *string `mapstructure:"authenticationType"`
	Hostname              string  `mapstructure:"hostname"`
	Port                  int     `mapstructure:"port"`
	SecurePort            *int    `mapstructure:"securePort"`
	OriginPullHeaders     *string `mapstructure:"originPullHeaders"`
	OriginCacheHeaders    *string `mapstructure:"originCacheHeaders"`
	VerifyCertificate     *bool   `mapstructure:"verifyCertificate"`
	CertificateCN         *string `mapstructure:"certificateCN"`
}

// OriginNaturalKey is the attribute used to find an origin when no id is known.
const OriginNaturalKey = "hostname"

var originRequired = []string{
	"id", "name", "type", "path", "createdDate", "updatedDate",
	"requestTimeoutSeconds", "errorCacheTTLSeconds", "maxRetryCount",
	"authenticationType", "hostname", "port", "securePort",
	"originPullHeaders", "originCacheHeaders", "verifyCertificate",
	"certificateCN",
}

// originBaseFields are always projected, even on an origin that never carried them.
var originBaseFields = []string{"name", "port", "path", "hostname"}

// immutableFields are server managed and never sent back.
var immutableFields = []string{"id", "createdDate", "updatedDate"}

func newOrigin(obj map[string]any) (Record, bool) {
	o := &Origin{}
	populate(obj, o, &o.attributes)
	return o, true
}

// NewOrigin builds an origin from a plain mapping without classification.
// An empty or nil mapping yields a fresh record with no optional attributes.
func NewOrigin(obj map[string]any) (*Origin, bool) {
	if len(obj) == 0 {
		return &Origin{attributes: newAttributes(nil, nil)}, true
	}
	rec, ok := newOrigin(obj)
	if !ok {
		return nil, false
	}
	return rec.(*Origin), true
}

// AsOrigin returns v as an origin. Besides classified origins it accepts an
// unrecognized object that carries the natural key, since the API omits some
// optional origin attributes on older records.
func AsOrigin(v any) (*Origin, bool) {
	switch t := v.(type) {
	case *Origin:
		return t, true
	case *Unrecognized:
		if _, ok := t.Fields[OriginNaturalKey]; !ok {
			return nil, false
		}
		return NewOrigin(t.Fields)
	default:
		return nil, false
	}
}

func (o *Origin) Kind() Kind { return KindOrigin }

// Project returns name, port, path and hostname plus every optional attribute the
// API sent.
func (o *Origin) Project() map[string]any {
	out := map[string]any{
		"name":     o.Name,
		"port":     o.Port,
		"path":     o.Path,
		"hostname": o.Hostname,
	}
	setOptional(out, o.attributes, "id", o.ID)
	setOptional(out, o.attributes, "type", o.Type)
	setOptional(out, o.attributes, "createdDate", o.CreatedDate)
	setOptional(out, o.attributes, "updatedDate", o.UpdatedDate)
	setOptional(out, o.attributes, "requestTimeoutSeconds", o.RequestTimeoutSeconds)
	setOptional(out, o.attributes, "errorCacheTTLSeconds", o.ErrorCacheTTLSeconds)
	setOptional(out, o.attributes, "maxRetryCount", o.MaxRetryCount)
	setOptional(out, o.attributes, "authenticationType", o.AuthenticationType)
	setOptional(out, o.attributes, "securePort", o.SecurePort)
	setOptional(out, o.attributes, "originPullHeaders", o.OriginPullHeaders)
	setOptional(out, o.attributes, "originCacheHeaders", o.OriginCacheHeaders)
	setOptional(out, o.attributes, "verifyCertificate", o.VerifyCertificate)
	setOptional(out, o.attributes, "certificateCN", o.CertificateCN)
	return o.overlay(out)
}

func (o *Origin) Identifier() (int64, bool) {
	if o.ID == nil {
		return 0, false
	}
	return *o.ID, true
}

func (o *Origin) Lookup(key string) (any, bool) {
	return lookup(o.Project(), o.attributes, key)
}

// Diff returns key -> desired value for every desired key whose current value differs.
// Desired keys the origin does not carry are ignored.
func (o *Origin) Diff(desired map[string]any) map[string]any {
	return diffAttributes(o.Project(), o.attributes, desired)
}

// UpdatePayload drops id and timestamps from the projection and overlays updates.
// Base attributes the origin never carried are left out unless updates set them,
// so a payload built on a fresh origin holds only what was asked for.
func (o *Origin) UpdatePayload(updates map[string]any) map[string]any {
	payload := o.Project()
	for _, key := range immutableFields {
		delete(payload, key)
	}
	for _, key := range originBaseFields {
		if !o.Has(key) {
			delete(payload, key)
		}
	}
	for key, value := range updates {
		payload[key] = value
	}
	return payload
}
