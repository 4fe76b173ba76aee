package core

import (
	"slices"
	"strings"
)

type StatusCounts struct {
	Total    int `json:"total"`
	Stored   int `json:"stored"`
	Reserved int `json:"reserved"`
	Found    int `json:"found"`
}

func CountByStatus(items []Item) StatusCounts {
	c := StatusCounts{Total: len(items)}
	for _, i := range items {
		switch i.Status {
		case ItemStored:
			c.Stored++
		case ItemReserved:
			c.Reserved++
		case ItemFound:
			c.Found++
		}
	}
	return c
}

// RecentItems returns the n most recently registered items, newest first.
// The input slice is not modified.
func RecentItems(items []Item, n int) []Item {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b Item) int {
		return b.RegisteredAt.Compare(a.RegisteredAt.Time)
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// SearchItems keeps items with the given status (empty matches all) whose
// location or any tag name contains text, case-insensitively.
func SearchItems(items []Item, status ItemStatus, text string) []Item {
	needle := strings.ToLower(strings.TrimSpace(text))
	res := make([]Item, 0, len(items))
	for _, i := range items {
		if status != "" && i.Status != status {
			continue
		}
		if needle != "" && !itemContains(i, needle) {
			continue
		}
		res = append(res, i)
	}
	return res
}

func itemContains(i Item, needle string) bool {
	if strings.Contains(strings.ToLower(i.Location), needle) {
		return true
	}
	for _, t := range i.Tags {
		if strings.Contains(strings.ToLower(t.Name), needle) {
			return true
		}
	}
	return false
}
