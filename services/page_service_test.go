package services

import (
	"testing"

	"github.com/fauzanakmal/travel_agency/models"
	"github.com/google/uuid"
)

func TestBuildNavTree(t *testing.T) {
	homeID := uuid.New()
	aboutID := uuid.New()
	teamID := uuid.New()

	pages := []models.Page{
		{ID: aboutID, Title: "About Us", Slug: "about", SortOrder: 2},
		{ID: homeID, Title: "Home", Slug: "home", SortOrder: 1},
		{ID: teamID, Title: "Our Team", Slug: "team", SortOrder: 1, ParentID: &aboutID},
	}

	tree := BuildNavTree(pages)

	if len(tree) != 2 {
		t.Fatalf("got %d roots, want 2", len(tree))
	}
	if tree[0].Slug != "home" || tree[1].Slug != "about" {
		t.Errorf("roots ordered as [%s %s], want [home about]", tree[0].Slug, tree[1].Slug)
	}
	if len(tree[1].Children) != 1 || tree[1].Children[0].Slug != "team" {
		t.Errorf("about children = %+v, want single team page", tree[1].Children)
	}
	if len(tree[0].Children) != 0 {
		t.Errorf("home should have no children, got %+v", tree[0].Children)
	}
}

func TestBuildNavTreeOrphanBecomesRoot(t *testing.T) {
	missingParent := uuid.New()
	pages := []models.Page{
		{ID: uuid.New(), Title: "Dangling", Slug: "dangling", ParentID: &missingParent},
	}

	tree := BuildNavTree(pages)
	if len(tree) != 1 || tree[0].Slug != "dangling" {
		t.Fatalf("orphan page should surface as a root, got %+v", tree)
	}
}

func TestBuildNavTreeSiblingOrder(t *testing.T) {
	parentID := uuid.New()
	pages := []models.Page{
		{ID: parentID, Title: "Guides", Slug: "guides", SortOrder: 1},
		{ID: uuid.New(), Title: "Visa", Slug: "visa", SortOrder: 3, ParentID: &parentID},
		{ID: uuid.New(), Title: "Packing", Slug: "packing", SortOrder: 1, ParentID: &parentID},
		{ID: uuid.New(), Title: "Health", Slug: "health", SortOrder: 2, ParentID: &parentID},
	}

	tree := BuildNavTree(pages)
	if len(tree) != 1 {
		t.Fatalf("got %d roots, want 1", len(tree))
	}
	got := make([]string, 0, len(tree[0].Children))
	for _, child := range tree[0].Children {
		got = append(got, child.Slug)
	}
	want := []string{"packing", "health", "visa"}
	for i := range want {
		if i >= len(got) || got[i] != want[i] {
			t.Fatalf("children order = %v, want %v", got, want)
		}
	}
}

func TestBuildNavTreeEmpty(t *testing.T) {
	if tree := BuildNavTree(nil); len(tree) != 0 {
		t.Errorf("expected empty tree, got %+v", tree)
	}
}
