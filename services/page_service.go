package services

import (
	"sort"

	"github.com/fauzanakmal/travel_agency/models"
	"github.com/google/uuid"
)

type NavItem struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Slug     string    `json:"slug"`
	Children []NavItem `json:"children,omitempty"`
}

// BuildNavTree nests published pages under their parents, ordered by
// sort_order. Pages pointing at a missing parent are treated as roots.
func BuildNavTree(pages []models.Page) []NavItem {
	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].SortOrder < pages[j].SortOrder
	})

	known := make(map[uuid.UUID]bool, len(pages))
	for _, p := range pages {
		known[p.ID] = true
	}

	childrenOf := make(map[uuid.UUID][]models.Page)
	var roots []models.Page
	for _, p := range pages {
		if p.ParentID != nil && known[*p.ParentID] {
			childrenOf[*p.ParentID] = append(childrenOf[*p.ParentID], p)
		} else {
			roots = append(roots, p)
		}
	}

	var build func(p models.Page) NavItem
	build = func(p models.Page) NavItem {
		item := NavItem{ID: p.ID, Title: p.Title, Slug: p.Slug}
		for _, child := range childrenOf[p.ID] {
			item.Children = append(item.Children, build(child))
		}
		return item
	}

	items := make([]NavItem, 0, len(roots))
	for _, root := range roots {
		items = append(items, build(root))
	}
	return items
}
