package view

import (
	"context"
	"fmt"
	"slices"
)

// Source fetches a whole collection from the API.
type Source[T any] func(ctx context.Context) ([]T, error)

// Keys indexes the identities kept by lists applied earlier in the same
// refresh, by list name. Ownership predicates use it to follow relations
// such as "deliveries of my orders".
type Keys map[string]map[string]struct{}

func (k Keys) Has(list, key string) bool {
	_, ok := k[list][key]
	return ok
}

// Column renders one table column of a record.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// ListConfig parameterizes a List. Owns may be nil to keep every record.
type ListConfig[T any] struct {
	Name       string
	Source     Source[T]
	Owns       func(item T, keys Keys) bool
	Key        func(T) string
	Fields     func(T) []string
	Status     func(T) string
	Categories []Category
	Columns    []Column[T]
}

// Panel is the type-erased view of a List that View works with.
type Panel interface {
	Name() string
	Loaded() bool
	Len() int
	Summary() Summary
	Records(q Query) any
	Table(q Query) Table
	HasCategory(name string) bool

	fetch(ctx context.Context) (applier, error)
}

// applier installs fetched data; it runs only after every fetch of a
// refresh succeeded.
type applier func(keys Keys)

// List is an ownership-filtered snapshot of one collection. It is not
// safe for concurrent use on its own; View serializes access.
type List[T any] struct {
	cfg    ListConfig[T]
	items  []T
	loaded bool
}

func NewList[T any](cfg ListConfig[T]) *List[T] {
	return &List[T]{cfg: cfg, items: []T{}}
}

func (l *List[T]) Name() string { return l.cfg.Name }
func (l *List[T]) Loaded() bool { return l.loaded }
func (l *List[T]) Len() int     { return len(l.items) }

// Items returns a copy of the filtered snapshot.
func (l *List[T]) Items() []T {
	return slices.Clone(l.items)
}

func (l *List[T]) HasCategory(name string) bool {
	if name == OtherCategory {
		return true
	}
	for _, c := range l.cfg.Categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

func (l *List[T]) fetch(ctx context.Context) (applier, error) {
	if l.cfg.Source == nil {
		return nil, fmt.Errorf("list %s has no source", l.cfg.Name)
	}
	all, err := l.cfg.Source(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", l.cfg.Name, err)
	}
	return func(keys Keys) { l.apply(all, keys) }, nil
}

// apply replaces the snapshot wholesale with the owned subset of all.
func (l *List[T]) apply(all []T, keys Keys) {
	owned := make([]T, 0, len(all))
	for _, item := range all {
		if l.cfg.Owns == nil || l.cfg.Owns(item, keys) {
			owned = append(owned, item)
		}
	}
	l.items = owned
	l.loaded = true

	if l.cfg.Key != nil {
		set := make(map[string]struct{}, len(owned))
		for _, item := range owned {
			set[l.cfg.Key(item)] = struct{}{}
		}
		keys[l.cfg.Name] = set
	}
}

func (l *List[T]) Summary() Summary {
	return summarize(l.cfg.Name, l.loaded, l.items, l.cfg.Status, l.cfg.Categories)
}

// Filter narrows the snapshot without touching it.
func (l *List[T]) Filter(q Query) []T {
	m := newMatcher(q.Search)
	out := make([]T, 0, len(l.items))
	for _, item := range l.items {
		if q.Category != "" && l.category(item) != q.Category {
			continue
		}
		if !m.any(l.fields(item)) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (l *List[T]) Records(q Query) any {
	return l.Filter(q)
}

func (l *List[T]) Table(q Query) Table {
	t := Table{
		Headers: make([]string, len(l.cfg.Columns)),
		Rows:    [][]string{},
	}
	for i, col := range l.cfg.Columns {
		t.Headers[i] = col.Header
	}
	for _, item := range l.Filter(q) {
		row := make([]string, len(l.cfg.Columns))
		for i, col := range l.cfg.Columns {
			row[i] = col.Value(item)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func (l *List[T]) fields(item T) []string {
	if l.cfg.Fields == nil {
		return nil
	}
	return l.cfg.Fields(item)
}

func (l *List[T]) category(item T) string {
	if l.cfg.Status == nil {
		return OtherCategory
	}
	return classify(l.cfg.Status(item), l.cfg.Categories)
}
