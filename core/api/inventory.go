package api

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"cdn-manager/core/faults"
	"cdn-manager/core/resource"
)

type endpoint struct {
	path    string
	account bool
}

// inventory maps a readable kind to its collection endpoint.
var inventory = map[string]endpoint{
	"origins":         {path: "origins", account: true},
	"hosts":           {path: "hosts", account: true},
	"certificates":    {path: "certificates", account: true},
	"notifications":   {path: "notifications", account: true},
	"services":        {path: "services", account: true},
	"pops":            {path: "/api/v1/pops"},
	"platforms":       {path: "/api/v1/platforms"},
	"billing-regions": {path: "/api/v1/billingRegions"},
	"ip-whitelist":    {path: "/api/v1/ipWhitelist"},
	"docs":            {path: "/api/v1/docs"},
}

// InventoryKinds returns the kinds Fetch accepts, sorted.
func InventoryKinds() []string {
	kinds := make([]string, 0, len(inventory))
	for kind := range inventory {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Fetch reads a whole collection and returns it decoded.
func (c *Client) Fetch(ctx context.Context, kind string) (resource.Record, error) {
	ep, ok := inventory[kind]
	if !ok {
		return nil, faults.Configuration("unknown inventory kind %q", kind)
	}

	path := ep.path
	if ep.account {
		path = c.accountPath(ep.path)
	}

	data, err := c.Send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", kind, err)
	}
	return resource.Decode(data)
}
