package dashboard

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/hvacpanel/internal/navigation"
	"github.com/ziadkadry99/hvacpanel/internal/routes"
	"github.com/ziadkadry99/hvacpanel/internal/sidebar"
)

// Dashboard serves the admin shell and resolves locations into views.
type Dashboard struct {
	parser       navigation.Parser
	dispatcher   *routes.Dispatcher
	matcher      *sidebar.Matcher
	sidebar      *sidebar.Controller
	descriptions map[navigation.RouteKey]template.HTML
	logger       *zap.Logger
}

// New creates a Dashboard. Section descriptions are rendered once here so
// that resolving a location does no work beyond the lookup.
func New(parser navigation.Parser, dispatcher *routes.Dispatcher, matcher *sidebar.Matcher, ctrl *sidebar.Controller, logger *zap.Logger) (*Dashboard, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	md := newMarkdown()
	desc := make(map[navigation.RouteKey]template.HTML)
	for _, e := range dispatcher.Table().Entries() {
		html, err := md.render(e.Description)
		if err != nil {
			return nil, fmt.Errorf("rendering description of %s: %w", e.Key, err)
		}
		desc[e.Key] = html
	}
	return &Dashboard{
		parser:       parser,
		dispatcher:   dispatcher,
		matcher:      matcher,
		sidebar:      ctrl,
		descriptions: desc,
		logger:       logger,
	}, nil
}

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.ServeIndex)
	r.Get("/views", d.handleViewFragment)
	r.Get("/views/*", d.handleViewFragment)
	r.Route("/api", func(r chi.Router) {
		r.Get("/navigation/resolve", d.handleResolve)
		r.Get("/navigation/routes", d.handleRoutes)
		r.Get("/sidebar", d.handleSidebar)
		r.Post("/sidebar/toggle", d.handleSidebarToggle)
	})
	r.Get("/ws/navigation", d.handleWebSocket)
}

// Resolution is everything the shell needs to render one location.
type Resolution struct {
	State           navigation.State `json:"state"`
	Href            string           `json:"href"`
	View            routes.View      `json:"view"`
	DescriptionHTML template.HTML    `json:"description_html,omitempty"`
	Nav             []sidebar.Item   `json:"nav"`
	Sidebar         sidebar.Layout   `json:"sidebar"`
	// HTML is the rendered view fragment for exactly this state.
	HTML template.HTML `json:"html"`
}

// Resolve dispatches st and derives the sidebar highlight from the same
// state. drawer may be nil for stateless callers.
func (d *Dashboard) Resolve(st navigation.State, drawer *sidebar.Drawer) Resolution {
	view := d.dispatcher.Dispatch(st)
	layout := sidebar.Layout{Collapsed: d.sidebar.Collapsed()}
	if drawer != nil {
		layout.DrawerOpen = drawer.IsOpen()
	}
	res := Resolution{
		State:   st,
		Href:    d.parser.Href(st),
		View:    view,
		Nav:     d.matcher.Items(st.Path),
		Sidebar: layout,
	}
	if view.Kind != routes.KindNotFound {
		res.DescriptionHTML = d.descriptions[view.Section]
	}

	var buf bytes.Buffer
	if err := viewTemplate.Execute(&buf, res); err != nil {
		d.logger.Error("rendering view", zap.String("path", st.Path), zap.Error(err))
		return res
	}
	res.HTML = template.HTML(buf.String())
	return res
}
