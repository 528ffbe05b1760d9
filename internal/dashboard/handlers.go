package dashboard

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/ziadkadry99/hvacpanel/internal/navigation"
	"github.com/ziadkadry99/hvacpanel/internal/routes"
	"github.com/ziadkadry99/hvacpanel/internal/sidebar"
)

// routeResponse describes one route table entry.
type routeResponse struct {
	Key                 navigation.RouteKey `json:"key"`
	Title               string              `json:"title"`
	Default             bool                `json:"default"`
	HasDetail           bool                `json:"has_detail"`
	HasCreate           bool                `json:"has_create"`
	OnUnmatchedDeepPath routes.Fallback     `json:"on_unmatched_deep_path"`
}

func (d *Dashboard) handleResolve(w http.ResponseWriter, r *http.Request) {
	st := d.parser.Parse(r.URL.Query().Get("hash"))
	writeJSON(w, http.StatusOK, d.Resolve(st, nil))
}

func (d *Dashboard) handleRoutes(w http.ResponseWriter, r *http.Request) {
	table := d.dispatcher.Table()
	entries := table.Entries()
	out := make([]routeResponse, len(entries))
	for i, e := range entries {
		out[i] = routeResponse{
			Key:                 e.Key,
			Title:               e.Title,
			Default:             e.Key == table.DefaultKey(),
			HasDetail:           e.Detail != nil,
			HasCreate:           e.Create != nil,
			OnUnmatchedDeepPath: e.OnUnmatchedDeepPath,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (d *Dashboard) handleSidebar(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sidebar.Layout{Collapsed: d.sidebar.Collapsed()})
}

func (d *Dashboard) handleSidebarToggle(w http.ResponseWriter, r *http.Request) {
	// A failed write is logged by the controller; the toggle still applies.
	collapsed, _ := d.sidebar.Toggle(r.Context())
	writeJSON(w, http.StatusOK, sidebar.Layout{Collapsed: collapsed})
}

// handleViewFragment renders the view for the location after /views as
// HTML. It is the same fragment a render frame carries.
func (d *Dashboard) handleViewFragment(w http.ResponseWriter, r *http.Request) {
	res := d.Resolve(d.parser.Parse(fragmentPath(r)), nil)
	if res.HTML == "" {
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(res.HTML))
}

// fragmentPath recovers the location from a /views request. Clients escape
// each segment, so it is unescaped segment by segment from the raw path:
// ids holding '?', '#' or '%' come back exactly as the hash carried them.
func fragmentPath(r *http.Request) string {
	segs := strings.Split(strings.TrimPrefix(r.URL.EscapedPath(), "/views"), "/")
	for i, seg := range segs {
		if u, err := url.PathUnescape(seg); err == nil {
			segs[i] = u
		}
	}
	return strings.Join(segs, "/")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
