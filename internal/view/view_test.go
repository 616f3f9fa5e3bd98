package view

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	appErrors "swifttrack-dashboard/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID     string
	Owner  string
	Parent string
	Status string
}

var itemCategories = []Category{
	{Name: "Open", Statuses: []string{"Pending"}},
	{Name: "Done", Statuses: []string{"Delivered"}},
}

func staticSource(items ...item) Source[item] {
	return func(context.Context) ([]item, error) {
		return items, nil
	}
}

func failingSource(err error) Source[item] {
	return func(context.Context) ([]item, error) {
		return nil, err
	}
}

func countingSource(calls *atomic.Int32, items ...item) Source[item] {
	return func(context.Context) ([]item, error) {
		calls.Add(1)
		return items, nil
	}
}

func itemList(name string, src Source[item], owns func(item, Keys) bool) *List[item] {
	return NewList(ListConfig[item]{
		Name:       name,
		Source:     src,
		Owns:       owns,
		Key:        func(i item) string { return i.ID },
		Fields:     func(i item) []string { return []string{i.ID, i.Status} },
		Status:     func(i item) string { return i.Status },
		Categories: itemCategories,
		Columns: []Column[item]{
			{Header: "ID", Value: func(i item) string { return i.ID }},
			{Header: "Status", Value: func(i item) string { return i.Status }},
		},
	})
}

func ownedBy(user string) func(item, Keys) bool {
	return func(i item, _ Keys) bool { return i.Owner == user }
}

func TestRefreshKeepsOnlyOwnedRecords(t *testing.T) {
	list := itemList("deliveries", staticSource(
		item{ID: "1", Owner: "D001", Status: "Pending"},
		item{ID: "2", Owner: "D002", Status: "Pending"},
		item{ID: "3", Owner: "D001", Status: "Delivered"},
	), ownedBy("D001"))

	v, err := New(Config{Name: "driver", Panels: []Panel{list}})
	require.NoError(t, err)
	require.NoError(t, v.Refresh(context.Background()))

	items := list.Items()
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, "D001", it.Owner)
	}
}

func TestSummaryPartitionsTotal(t *testing.T) {
	list := itemList("deliveries", staticSource(
		item{ID: "1", Status: "Pending"},
		item{ID: "2", Status: "Delivered"},
		item{ID: "3", Status: "Delivered"},
		item{ID: "4", Status: "Lost"},
	), nil)

	v, err := New(Config{Name: "manager", Panels: []Panel{list}})
	require.NoError(t, err)
	require.NoError(t, v.Refresh(context.Background()))

	s, err := v.Summary("deliveries")
	require.NoError(t, err)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 1, s.Count("Open"))
	assert.Equal(t, 2, s.Count("Done"))
	assert.Equal(t, 1, s.Count(OtherCategory))

	sum := s.Other
	for _, c := range s.Categories {
		sum += c.Count
	}
	assert.Equal(t, s.Total, sum)
}

func TestFallbackCategoryClaimsRemainder(t *testing.T) {
	s := summarize("drivers", true, []string{"Available", "On Leave", "Busy"},
		func(s string) string { return s },
		[]Category{
			{Name: "Available", Statuses: []string{"Available"}},
			{Name: "Unavailable", Fallback: true},
		})

	assert.Equal(t, 1, s.Count("Available"))
	assert.Equal(t, 2, s.Count("Unavailable"))
	assert.Zero(t, s.Other)
}

func TestSearchDoesNotMutateSnapshot(t *testing.T) {
	list := itemList("orders", staticSource(
		item{ID: "ORD-1", Status: "Pending"},
		item{ID: "ord-2", Status: "Delivered"},
		item{ID: "X-3", Status: "Pending"},
	), nil)

	v, err := New(Config{Name: "customer", Panels: []Panel{list}})
	require.NoError(t, err)
	require.NoError(t, v.Refresh(context.Background()))

	first, err := v.Snapshot(Query{Search: "ORD"})
	require.NoError(t, err)
	second, err := v.Snapshot(Query{Search: "ORD"})
	require.NoError(t, err)

	assert.Equal(t, first.Records, second.Records)
	assert.Len(t, first.Records.([]item), 2)
	assert.Equal(t, 3, list.Len())

	all, err := v.Snapshot(Query{})
	require.NoError(t, err)
	assert.Len(t, all.Records.([]item), 3)
}

func TestSearchFoldsCase(t *testing.T) {
	m := newMatcher("STRASSE")
	assert.True(t, m.any([]string{"Hauptstraße 1"}))
	assert.False(t, m.any([]string{"Main Street"}))
	assert.True(t, newMatcher("").any(nil))
}

func TestCategoryFilter(t *testing.T) {
	list := itemList("deliveries", staticSource(
		item{ID: "1", Status: "Pending"},
		item{ID: "2", Status: "Delivered"},
		item{ID: "3", Status: "Lost"},
	), nil)

	v, err := New(Config{
		Name:   "driver",
		Panels: []Panel{list},
		Tabs: []Tab{
			{Name: "pending", List: "deliveries", Category: "Open"},
			{Name: "completed", List: "deliveries", Category: "Done"},
		},
	})
	require.NoError(t, err)
	require.NoError(t, v.Refresh(context.Background()))

	snap, err := v.Snapshot(Query{})
	require.NoError(t, err)
	assert.Equal(t, "pending", snap.ActiveTab)
	assert.Equal(t, [][]string{{"1", "Pending"}}, snap.Table.Rows)

	snap, err = v.Snapshot(Query{Category: OtherCategory})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"3", "Lost"}}, snap.Table.Rows)

	_, err = v.Snapshot(Query{Category: "Nope"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidInput)

	require.NoError(t, v.SelectTab(context.Background(), "completed"))
	snap, err = v.Snapshot(Query{})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"2", "Delivered"}}, snap.Table.Rows)
}

func TestFailedJoinAppliesNothing(t *testing.T) {
	good := item{ID: "1", Owner: "C1", Status: "Pending"}
	orders := itemList("orders", staticSource(good), nil)
	deliveries := itemList("deliveries", staticSource(item{ID: "D1", Status: "Pending"}), nil)

	v, err := New(Config{Name: "customer", Panels: []Panel{orders, deliveries}})
	require.NoError(t, err)
	require.NoError(t, v.Refresh(context.Background()))
	require.Equal(t, 1, orders.Len())

	boom := errors.New("API Error: Internal Server Error")
	orders.cfg.Source = staticSource(good, item{ID: "2", Status: "Pending"})
	deliveries.cfg.Source = failingSource(boom)

	err = v.Refresh(context.Background())
	require.ErrorIs(t, err, boom)

	assert.Equal(t, 1, orders.Len())
	assert.Equal(t, 1, deliveries.Len())

	snap, err := v.Snapshot(Query{})
	require.NoError(t, err)
	assert.Contains(t, snap.Error, "fetch deliveries")
	assert.False(t, snap.Loading)
}

func TestLoadingWhileRefreshInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	list := itemList("deliveries", func(context.Context) ([]item, error) {
		close(started)
		<-release
		return []item{{ID: "1", Status: "Pending"}}, nil
	}, nil)

	v, err := New(Config{Name: "supplier", Panels: []Panel{list}})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- v.Refresh(context.Background()) }()
	<-started

	assert.True(t, v.Loading())
	snap, err := v.Snapshot(Query{})
	require.NoError(t, err)
	assert.True(t, snap.Loading)
	assert.Zero(t, snap.Summaries[0].Total)

	close(release)
	require.NoError(t, <-done)

	assert.False(t, v.Loading())
	snap, err = v.Snapshot(Query{})
	require.NoError(t, err)
	assert.False(t, snap.Loading)
	assert.Equal(t, 1, snap.Summaries[0].Total)
}

func TestFirstRefreshFailureLeavesListsEmpty(t *testing.T) {
	list := itemList("users", failingSource(errors.New("down")), nil)
	v, err := New(Config{Name: "admin", Panels: []Panel{list}})
	require.NoError(t, err)

	require.Error(t, v.Refresh(context.Background()))
	assert.False(t, list.Loaded())
	assert.Zero(t, list.Len())

	snap, err := v.Snapshot(Query{})
	require.NoError(t, err)
	assert.Nil(t, snap.RefreshedAt)
	assert.Empty(t, snap.Records.([]item))
}

func TestOwnershipFollowsEarlierList(t *testing.T) {
	orders := itemList("orders", staticSource(
		item{ID: "O1", Owner: "C1"},
		item{ID: "O2", Owner: "C2"},
	), ownedBy("C1"))
	deliveries := itemList("deliveries", staticSource(
		item{ID: "D1", Parent: "O1"},
		item{ID: "D2", Parent: "O2"},
		item{ID: "D3", Parent: "O9"},
	), func(i item, keys Keys) bool { return keys.Has("orders", i.Parent) })

	v, err := New(Config{Name: "customer", Panels: []Panel{orders, deliveries}})
	require.NoError(t, err)
	require.NoError(t, v.Refresh(context.Background()))

	got := deliveries.Items()
	require.Len(t, got, 1)
	assert.Equal(t, "D1", got[0].ID)
}

func TestLazyViewFetchesActiveTabOnly(t *testing.T) {
	var usersCalls, vehiclesCalls atomic.Int32
	users := itemList("users", countingSource(&usersCalls, item{ID: "U1"}), nil)
	vehicles := itemList("vehicles", countingSource(&vehiclesCalls, item{ID: "V1"}), nil)

	v, err := New(Config{
		Name:   "admin",
		Panels: []Panel{users, vehicles},
		Tabs: []Tab{
			{Name: "users", List: "users"},
			{Name: "vehicles", List: "vehicles"},
		},
		Lazy: true,
	})
	require.NoError(t, err)

	require.NoError(t, v.Refresh(context.Background()))
	assert.Equal(t, int32(1), usersCalls.Load())
	assert.Zero(t, vehiclesCalls.Load())
	assert.False(t, vehicles.Loaded())

	require.NoError(t, v.SelectTab(context.Background(), "vehicles"))
	assert.Equal(t, int32(1), usersCalls.Load())
	assert.Equal(t, int32(1), vehiclesCalls.Load())
	assert.Equal(t, "vehicles", v.ActiveTab())

	require.NoError(t, v.SelectTab(context.Background(), "vehicles"))
	assert.Equal(t, int32(2), vehiclesCalls.Load())
}

func TestSelectUnknownTab(t *testing.T) {
	list := itemList("deliveries", staticSource(), nil)
	v, err := New(Config{Name: "driver", Panels: []Panel{list}, Tabs: []Tab{{Name: "active", List: "deliveries"}}})
	require.NoError(t, err)

	err = v.SelectTab(context.Background(), "archive")
	assert.ErrorIs(t, err, appErrors.ErrUnknownTab)
	assert.Equal(t, "active", v.ActiveTab())
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(Config{Name: "empty"})
	assert.Error(t, err)

	list := itemList("users", staticSource(), nil)
	_, err = New(Config{Name: "admin", Panels: []Panel{list}, Tabs: []Tab{{Name: "x", List: "vehicles"}}})
	assert.ErrorIs(t, err, appErrors.ErrUnknownList)

	_, err = New(Config{Name: "admin", Panels: []Panel{list, list}})
	assert.Error(t, err)
}
