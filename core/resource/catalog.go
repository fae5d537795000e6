package resource

// Platform is a delivery platform offered by the CDN.
type Platform struct {
	attributes

	ID           int64  `mapstructure:"id"`
	Code         string `mapstructure:"code"`
	Name         string `mapstructure:"name"`
	Capabilities any    `mapstructure:"capabilities"`
	Type         string `mapstructure:"type"`
	Available    any    `mapstructure:"available"`
}

var platformRequired = []string{"id", "code", "name", "capabilities", "type", "available"}

func newPlatform(obj map[string]any) (Record, bool) {
	p := &Platform{}
	populate(obj, p, &p.attributes)
	return p, true
}

func (p *Platform) Kind() Kind { return KindPlatform }

func (p *Platform) Project() map[string]any {
	return p.overlay(map[string]any{
		"id":           p.ID,
		"code":         p.Code,
		"name":         p.Name,
		"capabilities": projectValue(p.Capabilities),
		"type":         p.Type,
		"available":    p.Available,
	})
}

// Pop is an edge point of presence.
type Pop struct {
	attributes

	ID         int64  `mapstructure:"id"`
	Code       string `mapstructure:"code"`
	Name       string `mapstructure:"name"`
	Group      any    `mapstructure:"group"`
	Region     any    `mapstructure:"region"`
	Country    any    `mapstructure:"country"`
	Latitude   any    `mapstructure:"latitude"`
	Scannable  any    `mapstructure:"scannable"`
	Longitude  any    `mapstructure:"longitude"`
	Analyzable any    `mapstructure:"analyzable"`
}

var popRequired = []string{
	"id", "code", "name", "group", "region", "country",
	"latitude", "scannable", "longitude", "analyzable",
}

func newPop(obj map[string]any) (Record, bool) {
	p := &Pop{}
	populate(obj, p, &p.attributes)
	return p, true
}

func (p *Pop) Kind() Kind { return KindPop }

func (p *Pop) Project() map[string]any {
	return p.overlay(map[string]any{
		"id":         p.ID,
		"code":       p.Code,
		"name":       p.Name,
		"group":      projectValue(p.Group),
		"region":     projectValue(p.Region),
		"country":    projectValue(p.Country),
		"latitude":   p.Latitude,
		"scannable":  p.Scannable,
		"longitude":  p.Longitude,
		"analyzable": p.Analyzable,
	})
}

// Notification is an account notification.
type Notification struct {
	attributes

	ID          int64  `mapstructure:"id"`
	CreatedDate string `mapstructure:"createdDate"`
	Services    any    `mapstructure:"services"`
	Subject     string `mapstructure:"subject"`
	Subtitle    string `mapstructure:"subtitle"`
}

var notificationRequired = []string{"id", "createdDate", "services", "subject", "subtitle"}

func newNotification(obj map[string]any) (Record, bool) {
	n := &Notification{}
	populate(obj, n, &n.attributes)
	return n, true
}

func (n *Notification) Kind() Kind { return KindNotification }

func (n *Notification) Project() map[string]any {
	return n.overlay(map[string]any{
		"id":          n.ID,
		"createdDate": n.CreatedDate,
		"services":    projectValue(n.Services),
		"subject":     n.Subject,
		"subtitle":    n.Subtitle,
	})
}

// Doc is an API documentation entry.
type Doc struct {
	attributes

	Code        any    `mapstructure:"code"`
	Category    string `mapstructure:"category"`
	Description string `mapstructure:"description"`
}

var docRequired = []string{"code", "category", "description"}

func newDoc(obj map[string]any) (Record, bool) {
	d := &Doc{}
	populate(obj, d, &d.attributes)
	return d, true
}

func (d *Doc) Kind() Kind { return KindDoc }

func (d *Doc) Project() map[string]any {
	return d.overlay(map[string]any{
		"code":        d.Code,
		"category":    d.Category,
		"description": d.Description,
	})
}

// BillingRegion is a region used for usage billing.
type BillingRegion struct {
	attributes

	ID   int64  `mapstructure:"id"`
	Code string `mapstructure:"code"`
	Name string `mapstructure:"name"`
}

var billingRegionRequired = []string{"id", "code", "name"}

func newBillingRegion(obj map[string]any) (Record, bool) {
	b := &BillingRegion{}
	populate(obj, b, &b.attributes)
	return b, true
}

func (b *BillingRegion) Kind() Kind { return KindBillingRegion }

func (b *BillingRegion) Project() map[string]any {
	return b.overlay(map[string]any{
		"id":   b.ID,
		"code": b.Code,
		"name": b.Name,
	})
}
