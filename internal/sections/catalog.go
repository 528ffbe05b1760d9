// Package sections declares the dashboard's sections and builds the route
// table and sidebar entries from them.
package sections

import (
	"fmt"

	"github.com/ziadkadry99/hvacpanel/internal/navigation"
	"github.com/ziadkadry99/hvacpanel/internal/routes"
	"github.com/ziadkadry99/hvacpanel/internal/sidebar"
)

// DefaultKey is the section shown for the empty location.
const DefaultKey navigation.RouteKey = "pulpit"

// Section describes one area of the dashboard.
type Section struct {
	Key         navigation.RouteKey
	Title       string
	Icon        string
	Description string // Markdown
	DetailTitle string // empty: no detail view
	CreateTitle string // empty: no create view
	AlsoActive  []string
}

// Catalog lists the sections in sidebar order.
var Catalog = []Section{
	{
		Key:   "pulpit",
		Title: "Dashboard",
		Icon:  "gauge",
		Description: "Today's **open service orders**, overdue inspections and " +
			"low-stock alerts at a glance.",
	},
	{
		Key:         "klienci",
		Title:       "Clients",
		Icon:        "users",
		Description: "Registry of clients and their service sites. Open a client to see its equipment and order history.",
		DetailTitle: "Client",
		CreateTitle: "New client",
	},
	{
		Key:         "urzadzenia",
		Title:       "Equipment",
		Icon:        "fan",
		Description: "Installed HVAC units: heat pumps, split systems, chillers and rooftop units, with serial numbers and warranty dates.",
		DetailTitle: "Equipment",
		CreateTitle: "Register equipment",
	},
	{
		Key:   "zlecenia",
		Title: "Service orders",
		Icon:  "wrench",
		Description: "Service orders move through *new → scheduled → in progress → completed → invoiced*. " +
			"Open an order to assign a technician or record parts used.",
		DetailTitle: "Service order",
		CreateTitle: "New service order",
	},
	{
		Key:         "zamowienia",
		Title:       "Purchase orders",
		Icon:        "truck",
		Description: "Purchase orders for parts and refrigerant from suppliers.",
		DetailTitle: "Purchase order",
		CreateTitle: "New purchase order",
		AlsoActive:  []string{"/dostawcy", "/dostawcy/**"},
	},
	{
		Key:         "magazyn",
		Title:       "Inventory",
		Icon:        "boxes",
		Description: "Stock levels per warehouse and service van.",
		DetailTitle: "Stock item",
	},
	{
		Key:         "konwersacje",
		Title:       "Conversations",
		Icon:        "messages",
		Description: "Message threads with clients and technicians.",
		DetailTitle: "Conversation",
		CreateTitle: "New conversation",
	},
	{
		Key:         "raporty",
		Title:       "Reports",
		Icon:        "chart",
		Description: "Revenue, technician utilisation and first-time-fix rate.",
	},
	{
		Key:         "ustawienia",
		Title:       "Settings",
		Icon:        "cog",
		Description: "Users, roles and company details.",
	},
}

// Lookup returns the catalog section for key.
func Lookup(key navigation.RouteKey) (Section, bool) {
	for _, s := range Catalog {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}

// Keys returns the section keys in catalog order.
func Keys() []string {
	keys := make([]string, len(Catalog))
	for i, s := range Catalog {
		keys[i] = string(s.Key)
	}
	return keys
}

// Table builds the route table. deepPath overrides the unmatched deep path
// policy per section key; keys not in the catalog are rejected.
func Table(defaultKey navigation.RouteKey, deepPath map[string]routes.Fallback) (*routes.Table, error) {
	for k := range deepPath {
		if _, ok := Lookup(navigation.RouteKey(k)); !ok {
			return nil, fmt.Errorf("sections: deep path policy for unknown section %q", k)
		}
	}

	entries := make([]routes.Entry, 0, len(Catalog))
	for _, s := range Catalog {
		e := routes.Entry{
			Key:                 s.Key,
			Title:               s.Title,
			Description:         s.Description,
			List:                routes.Static(routes.KindList, s.Title),
			OnUnmatchedDeepPath: deepPath[string(s.Key)],
		}
		if s.DetailTitle != "" {
			e.Detail = routes.Static(routes.KindDetail, s.DetailTitle)
		}
		if s.CreateTitle != "" {
			e.Create = routes.Static(routes.KindCreate, s.CreateTitle)
		}
		entries = append(entries, e)
	}
	return routes.NewTable(defaultKey, entries)
}

// NavEntries returns the sidebar entries. The default section links to the
// root location and stays lit when addressed by its own key.
func NavEntries(defaultKey navigation.RouteKey) []sidebar.NavEntry {
	out := make([]sidebar.NavEntry, 0, len(Catalog))
	for _, s := range Catalog {
		e := sidebar.NavEntry{
			Path:       "/" + string(s.Key),
			Title:      s.Title,
			Icon:       s.Icon,
			AlsoActive: s.AlsoActive,
		}
		if s.Key == defaultKey {
			e.Path = "/"
			e.AlsoActive = append([]string{"/" + string(s.Key), "/" + string(s.Key) + "/**"}, s.AlsoActive...)
		}
		out = append(out, e)
	}
	return out
}
