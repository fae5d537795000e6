package resource

// IPList is a list response whose items are plain strings, such as the edge IP
// whitelist.
type IPList struct {
	attributes

	List []string `mapstructure:"list"`
}

func newIPList(obj map[string]any) (Record, bool) {
	l := &IPList{}
	populate(obj, l, &l.attributes)
	return l, true
}

func (l *IPList) Kind() Kind { return KindIPList }

func (l *IPList) Project() map[string]any {
	items := make([]any, len(l.List))
	for i, ip := range l.List {
		items[i] = ip
	}
	return l.overlay(map[string]any{"list": items})
}

// List is an ordered container of decoded items.
type List struct {
	attributes

	Items []any
}

func newList(obj map[string]any, items []any) *List {
	return &List{
		attributes: newAttributes(obj, otherKeys(obj, "list")),
		Items:      items,
	}
}

func (l *List) Kind() Kind { return KindList }

// Project wraps the projected items under "list". Use Values for the bare sequence.
func (l *List) Project() map[string]any {
	return map[string]any{"list": l.Values()}
}

// Values returns the projection of every item, in order.
func (l *List) Values() []any {
	out := make([]any, len(l.Items))
	for i, item := range l.Items {
		out[i] = ToValue(item)
	}
	return out
}

// Origins returns the items that are origins, in order. See AsOrigin.
func (l *List) Origins() []*Origin {
	var origins []*Origin
	for _, item := range l.Items {
		if origin, ok := AsOrigin(item); ok {
			origins = append(origins, origin)
		}
	}
	return origins
}

// Unrecognized is an object that matched no known shape. Its fields are kept
// unchanged.
type Unrecognized struct {
	Fields map[string]any
}

func (u *Unrecognized) Kind() Kind { return KindUnrecognized }

func (u *Unrecognized) Project() map[string]any {
	out := make(map[string]any, len(u.Fields))
	for k, v := range u.Fields {
		out[k] = projectValue(v)
	}
	return out
}

func otherKeys(obj map[string]any, skip string) []string {
	keys := make([]string, 0, len(obj))
	for key := range obj {
		if key != skip {
			keys = append(keys, key)
		}
	}
	return keys
}
