package core

import (
	"reflect"
	"testing"
	"time"
)

func fixtureItems() []Item {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []Item{
		{ID: 1, Location: "Library 2F", Status: ItemStored, RegisteredAt: Timestamp{Time: base}, Tags: []Tag{{ID: 1, Name: "Wallet"}}},
		{ID: 2, Location: "Cafeteria", Status: ItemReserved, RegisteredAt: Timestamp{Time: base.Add(2 * time.Hour)}, Tags: []Tag{{ID: 2, Name: "Umbrella"}}},
		{ID: 3, Location: "Gym", Status: ItemFound, RegisteredAt: Timestamp{Time: base.Add(time.Hour)}},
		{ID: 4, Location: "library lobby", Status: ItemStored, RegisteredAt: Timestamp{Time: base.Add(3 * time.Hour)}, Tags: []Tag{{ID: 3, Name: "phone"}}},
	}
}

func ids(items []Item) []int {
	out := make([]int, 0, len(items))
	for _, i := range items {
		out = append(out, i.ID)
	}
	return out
}

func TestCountByStatus(t *testing.T) {
	got := CountByStatus(fixtureItems())
	want := StatusCounts{Total: 4, Stored: 2, Reserved: 1, Found: 1}
	if got != want {
		t.Errorf("CountByStatus() = %+v, want %+v", got, want)
	}
	if got := CountByStatus(nil); got != (StatusCounts{}) {
		t.Errorf("CountByStatus(nil) = %+v", got)
	}
}

func TestRecentItems(t *testing.T) {
	items := fixtureItems()
	got := RecentItems(items, 3)
	if want := []int{4, 2, 3}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("RecentItems() = %v, want %v", ids(got), want)
	}
	if items[0].ID != 1 {
		t.Error("RecentItems must not reorder its input")
	}
	if got := RecentItems(items, 10); len(got) != 4 {
		t.Errorf("RecentItems(10) len = %d, want 4", len(got))
	}
}

func TestSearchItems(t *testing.T) {
	tests := []struct {
		name   string
		status ItemStatus
		text   string
		want   []int
	}{
		{name: "All", want: []int{1, 2, 3, 4}},
		{name: "Status Only", status: ItemStored, want: []int{1, 4}},
		{name: "Location Case Insensitive", text: "LIBRARY", want: []int{1, 4}},
		{name: "Tag Name", text: "umbr", want: []int{2}},
		{name: "Status And Text", status: ItemStored, text: "phone", want: []int{4}},
		{name: "No Match", text: "bicycle", want: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(SearchItems(fixtureItems(), tt.status, tt.text))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SearchItems() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPickupLogState(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	cancelled := Timestamp{Time: now.Add(-time.Hour)}
	tests := []struct {
		name string
		log  PickupLog
		want string
	}{
		{name: "Used", log: PickupLog{IsUsed: true, ExpiresAt: Timestamp{Time: now.Add(-time.Hour)}}, want: "used"},
		{name: "Cancelled", log: PickupLog{CancelledAt: &cancelled, ExpiresAt: Timestamp{Time: now.Add(time.Hour)}}, want: "cancelled"},
		{name: "Expired", log: PickupLog{ExpiresAt: Timestamp{Time: now.Add(-time.Minute)}}, want: "expired"},
		{name: "Pending", log: PickupLog{ExpiresAt: Timestamp{Time: now.Add(time.Minute)}}, want: "pending"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.log.State(now); got != tt.want {
				t.Errorf("State() = %q, want %q", got, tt.want)
			}
		})
	}
}
