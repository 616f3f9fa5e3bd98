package view

import (
	"context"
	"fmt"
	"sync"
	"time"

	"swifttrack-dashboard/internal/logger"
	appErrors "swifttrack-dashboard/pkg/errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Tab selects which list a view renders and, optionally, one of its
// categories.
type Tab struct {
	Name     string
	List     string
	Category string
}

// Config describes one dashboard. Panels are applied in order on every
// refresh, so a list whose ownership depends on another must come after
// it. A Lazy view fetches only the active tab's list.
type Config struct {
	Name   string
	Panels []Panel
	Tabs   []Tab
	Lazy   bool
}

// View is a mounted dashboard: it owns its snapshots exclusively and
// re-fetches only when asked to.
type View struct {
	name   string
	panels []Panel
	tabs   []Tab
	lazy   bool

	mu          sync.Mutex
	active      int
	inFlight    int
	lastErr     error
	refreshedAt time.Time
}

func New(cfg Config) (*View, error) {
	if len(cfg.Panels) == 0 {
		return nil, fmt.Errorf("view %s has no lists", cfg.Name)
	}

	names := make(map[string]bool, len(cfg.Panels))
	for _, p := range cfg.Panels {
		if names[p.Name()] {
			return nil, fmt.Errorf("view %s: duplicate list %s", cfg.Name, p.Name())
		}
		names[p.Name()] = true
	}

	tabs := cfg.Tabs
	if len(tabs) == 0 {
		tabs = []Tab{{List: cfg.Panels[0].Name()}}
	}
	for _, tab := range tabs {
		if !names[tab.List] {
			return nil, fmt.Errorf("view %s: tab %q: %w", cfg.Name, tab.Name, appErrors.ErrUnknownList)
		}
	}

	return &View{
		name:   cfg.Name,
		panels: cfg.Panels,
		tabs:   tabs,
		lazy:   cfg.Lazy,
	}, nil
}

func (v *View) Name() string {
	return v.name
}

// Tabs lists the named tabs; it is empty for single-table views.
func (v *View) Tabs() []string {
	var names []string
	for _, t := range v.tabs {
		if t.Name != "" {
			names = append(names, t.Name)
		}
	}
	return names
}

func (v *View) ActiveTab() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tabs[v.active].Name
}

// Loading reports whether a refresh is in flight.
func (v *View) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.inFlight > 0
}

// Refresh fetches the view's lists concurrently and applies them only if
// every fetch succeeded. On failure the error is logged and returned and
// the previous snapshots stay as they were. Responses are not fenced: a
// slow refresh that completes last wins.
func (v *View) Refresh(ctx context.Context) error {
	v.mu.Lock()
	targets := v.targetsLocked()
	v.inFlight++
	v.mu.Unlock()

	start := time.Now()
	appliers, err := join(ctx, targets)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.inFlight--

	if err != nil {
		v.lastErr = err
		logger.Error("Failed to refresh view",
			zap.String("view", v.name),
			zap.Error(err),
		)
		return err
	}

	keys := Keys{}
	for _, apply := range appliers {
		apply(keys)
	}
	v.lastErr = nil
	v.refreshedAt = time.Now()

	logger.Debug("View refreshed",
		zap.String("view", v.name),
		zap.Int("lists", len(targets)),
		zap.Duration("latency", time.Since(start)),
	)
	return nil
}

// SelectTab switches tabs. A lazy view re-fetches for the new tab; the
// returned error is the refresh error, the tab switch itself still holds.
func (v *View) SelectTab(ctx context.Context, name string) error {
	v.mu.Lock()
	index := -1
	for i, t := range v.tabs {
		if t.Name != "" && t.Name == name {
			index = i
			break
		}
	}
	if index < 0 {
		v.mu.Unlock()
		return fmt.Errorf("%w: %q", appErrors.ErrUnknownTab, name)
	}
	v.active = index
	v.mu.Unlock()

	if v.lazy {
		return v.Refresh(ctx)
	}
	return nil
}

// Snapshot is the render model of a view.
type Snapshot struct {
	View        string     `json:"view"`
	Tabs        []string   `json:"tabs,omitempty"`
	ActiveTab   string     `json:"active_tab,omitempty"`
	Loading     bool       `json:"loading"`
	RefreshedAt *time.Time `json:"refreshed_at,omitempty"`
	Error       string     `json:"error,omitempty"`
	Summaries   []Summary  `json:"summaries"`
	List        string     `json:"list"`
	Category    string     `json:"category,omitempty"`
	Search      string     `json:"search,omitempty"`
	Records     any        `json:"records"`
	Table       Table      `json:"-"`
}

// Table is a list rendered as strings, in column order.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Snapshot renders the active tab narrowed by q. An empty q.Category
// falls back to the tab's own category.
func (v *View) Snapshot(q Query) (Snapshot, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	tab := v.tabs[v.active]
	panel := v.panelLocked(tab.List)
	if q.Category == "" {
		q.Category = tab.Category
	}
	if q.Category != "" && !panel.HasCategory(q.Category) {
		return Snapshot{}, appErrors.NewAppError(appErrors.CodeValidation,
			fmt.Sprintf("unknown category %q for %s", q.Category, panel.Name()), appErrors.ErrInvalidInput)
	}

	snap := Snapshot{
		View:      v.name,
		Tabs:      v.Tabs(),
		ActiveTab: tab.Name,
		Loading:   v.inFlight > 0,
		Summaries: make([]Summary, len(v.panels)),
		List:      panel.Name(),
		Category:  q.Category,
		Search:    q.Search,
		Records:   panel.Records(q),
		Table:     panel.Table(q),
	}
	if !v.refreshedAt.IsZero() {
		at := v.refreshedAt
		snap.RefreshedAt = &at
	}
	if v.lastErr != nil {
		snap.Error = v.lastErr.Error()
	}
	for i, p := range v.panels {
		snap.Summaries[i] = p.Summary()
	}
	return snap, nil
}

// Summary returns the summary of one list by name.
func (v *View) Summary(list string) (Summary, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	p := v.panelLocked(list)
	if p == nil {
		return Summary{}, fmt.Errorf("%w: %s", appErrors.ErrUnknownList, list)
	}
	return p.Summary(), nil
}

func (v *View) targetsLocked() []Panel {
	if !v.lazy {
		return v.panels
	}
	return []Panel{v.panelLocked(v.tabs[v.active].List)}
}

func (v *View) panelLocked(name string) Panel {
	for _, p := range v.panels {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// join runs every fetch and waits for all of them to settle. Fetches are
// not cancelled when a sibling fails; any failure discards all results.
func join(ctx context.Context, panels []Panel) ([]applier, error) {
	appliers := make([]applier, len(panels))

	var g errgroup.Group
	for i, p := range panels {
		g.Go(func() error {
			apply, err := p.fetch(ctx)
			if err != nil {
				return err
			}
			appliers[i] = apply
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return appliers, nil
}
