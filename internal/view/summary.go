package view

import "slices"

// OtherCategory collects statuses that no category claims.
const OtherCategory = "Other"

// Category groups status values under one name. A fallback category
// claims every status not listed by an earlier category.
type Category struct {
	Name     string
	Statuses []string
	Fallback bool
}

type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Summary partitions a list by category. The counts and Other are
// disjoint and add up to Total.
type Summary struct {
	List       string  `json:"list"`
	Loaded     bool    `json:"loaded"`
	Total      int     `json:"total"`
	Categories []Count `json:"categories"`
	Other      int     `json:"other"`
}

// Count returns the size of a category, or of Other.
func (s Summary) Count(name string) int {
	if name == OtherCategory {
		return s.Other
	}
	for _, c := range s.Categories {
		if c.Name == name {
			return c.Count
		}
	}
	return 0
}

// classify returns the first category that claims status.
func classify(status string, categories []Category) string {
	for _, c := range categories {
		if c.Fallback || slices.Contains(c.Statuses, status) {
			return c.Name
		}
	}
	return OtherCategory
}

func summarize[T any](list string, loaded bool, items []T, status func(T) string, categories []Category) Summary {
	s := Summary{
		List:       list,
		Loaded:     loaded,
		Total:      len(items),
		Categories: make([]Count, len(categories)),
	}
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		s.Categories[i] = Count{Name: c.Name}
		index[c.Name] = i
	}

	for _, item := range items {
		name := OtherCategory
		if status != nil {
			name = classify(status(item), categories)
		}
		if i, ok := index[name]; ok {
			s.Categories[i].Count++
		} else {
			s.Other++
		}
	}
	return s
}
