package resource

// Service is a delivery service attached to a host.
type Service struct {
	attributes

	ID          int64  `mapstructure:"id"`
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
	Type        string `mapstructure:"type"`
}

var serviceRequired = []string{"id", "name", "description", "type"}

func newService(obj map[string]any) (Record, bool) {
	s := &Service{}
	populate(obj, s, &s.attributes)
	return s, true
}

func (s *Service) Kind() Kind { return KindService }

func (s *Service) Project() map[string]any {
	return s.overlay(map[string]any{
		"id":          s.ID,
		"name":        s.Name,
		"description": s.Description,
		"type":        s.Type,
	})
}

// Scope is a configuration scope of a host on one platform.
type Scope struct {
	attributes

	ID          int64   `mapstructure:"id"`
	Platform    string  `mapstructure:"platform"`
	Path        string  `mapstructure:"path"`
	CreatedDate string  `mapstructure:"createdDate"`
	UpdatedDate string  `mapstructure:"updatedDate"`
	Name        *string `mapstructure:"name"`
}

var scopeRequired = []string{"id", "platform", "path", "createdDate", "updatedDate"}

// scopePlatforms are the platform values a scope may carry.
var scopePlatforms = map[string]struct{}{
	"CDS": {},
	"ALL": {},
}

func newScope(obj map[string]any) (Record, bool) {
	platform, ok := obj["platform"].(string)
	if !ok {
		return nil, false
	}
	if _, ok := scopePlatforms[platform]; !ok {
		return nil, false
	}
	s := &Scope{}
	populate(obj, s, &s.attributes)
	return s, true
}

func (s *Scope) Kind() Kind { return KindScope }

func (s *Scope) Project() map[string]any {
	out := map[string]any{
		"id":          s.ID,
		"platform":    s.Platform,
		"path":        s.Path,
		"createdDate": s.CreatedDate,
		"updatedDate": s.UpdatedDate,
	}
	setOptional(out, s.attributes, "name", s.Name)
	return s.overlay(out)
}

// ScopeContainer wraps a single scope, as returned by scope endpoints.
type ScopeContainer struct {
	attributes

	Scope any `mapstructure:"scope"`
}

var scopeContainerRequired = []string{"scope"}

func newScopeContainer(obj map[string]any) (Record, bool) {
	c := &ScopeContainer{}
	populate(obj, c, &c.attributes)
	return c, true
}

func (c *ScopeContainer) Kind() Kind { return KindScopeContainer }

// Project returns the projection of the wrapped scope.
func (c *ScopeContainer) Project() map[string]any {
	if rec, ok := c.Scope.(Record); ok {
		return rec.Project()
	}
	return map[string]any{"scope": projectValue(c.Scope)}
}

// Host is a CDN hostname with its services and scopes.
type Host struct {
	attributes

	Name     string `mapstructure:"name"`
	HashCode string `mapstructure:"hashCode"`
	Type     string `mapstructure:"type"`
	// Services and Scopes hold *Service and *Scope items, or whatever else the
	// API nested there, such as a scope on a platform other than CDS or ALL.
	Services    []any  `mapstructure:"services"`
	Scopes      []any  `mapstructure:"scopes"`
	CreatedDate string `mapstructure:"createdDate"`
	UpdatedDate string `mapstructure:"updatedDate"`
}

var hostRequired = []string{"name", "hashCode", "type", "services", "scopes", "createdDate", "updatedDate"}

func newHost(obj map[string]any) (Record, bool) {
	h := &Host{}
	populate(obj, h, &h.attributes)
	return h, true
}

func (h *Host) Kind() Kind { return KindHost }

func (h *Host) Project() map[string]any {
	scopes := make([]any, 0, len(h.Scopes))
	for _, scope := range h.Scopes {
		scopes = append(scopes, projectValue(scope))
	}
	services := make([]any, 0, len(h.Services))
	for _, service := range h.Services {
		services = append(services, projectValue(service))
	}
	return h.overlay(map[string]any{
		"name":        h.Name,
		"hashCode":    h.HashCode,
		"type":        h.Type,
		"createdDate": h.CreatedDate,
		"updatedDate": h.UpdatedDate,
		"scopes":      scopes,
		"services":    services,
	})
}
