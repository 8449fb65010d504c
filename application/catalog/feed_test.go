package catalog

import (
	"reflect"
	"testing"

	"github.com/urbannest/furniture-store/model"
)

func feedIDs(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFeedStore_Accumulate(t *testing.T) {
	p := func(id string) model.Product { return model.Product{ID: id} }

	t.Run("successive pages extend the feed", func(t *testing.T) {
		fs := newFeedStore()

		got := fs.Accumulate("s1", "sig", 1, []model.Product{p("a"), p("b")})
		if !reflect.DeepEqual(feedIDs(got), []string{"a", "b"}) {
			t.Fatalf("page 1 feed = %v", feedIDs(got))
		}

		got = fs.Accumulate("s1", "sig", 2, []model.Product{p("c"), p("d")})
		if !reflect.DeepEqual(feedIDs(got), []string{"a", "b", "c", "d"}) {
			t.Fatalf("page 2 feed = %v", feedIDs(got))
		}
	})

	t.Run("repeated ids are never duplicated", func(t *testing.T) {
		fs := newFeedStore()

		fs.Accumulate("s1", "sig", 1, []model.Product{p("a"), p("b")})
		got := fs.Accumulate("s1", "sig", 2, []model.Product{p("b"), p("c")})
		if !reflect.DeepEqual(feedIDs(got), []string{"a", "b", "c"}) {
			t.Fatalf("feed = %v, want no duplicate ids", feedIDs(got))
		}
	})

	t.Run("page one restarts the feed", func(t *testing.T) {
		fs := newFeedStore()

		fs.Accumulate("s1", "sig", 1, []model.Product{p("a"), p("b")})
		fs.Accumulate("s1", "sig", 2, []model.Product{p("c")})
		got := fs.Accumulate("s1", "sig", 1, []model.Product{p("x")})
		if !reflect.DeepEqual(feedIDs(got), []string{"x"}) {
			t.Fatalf("feed after reset = %v, want [x]", feedIDs(got))
		}
	})

	t.Run("changed filter signature restarts the feed", func(t *testing.T) {
		fs := newFeedStore()

		fs.Accumulate("s1", "sig-a", 1, []model.Product{p("a"), p("b")})
		got := fs.Accumulate("s1", "sig-b", 2, []model.Product{p("c")})
		if !reflect.DeepEqual(feedIDs(got), []string{"c"}) {
			t.Fatalf("feed after signature change = %v, want [c]", feedIDs(got))
		}
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		fs := newFeedStore()

		fs.Accumulate("s1", "sig", 1, []model.Product{p("a")})
		got := fs.Accumulate("s2", "sig", 1, []model.Product{p("b")})
		if !reflect.DeepEqual(feedIDs(got), []string{"b"}) {
			t.Fatalf("session s2 feed = %v, want [b]", feedIDs(got))
		}
	})
}

func TestQuerySignatureExcludesPage(t *testing.T) {
	q1 := model.DefaultCatalogQuery()
	q2 := model.DefaultCatalogQuery()
	q2.Page = 7

	if querySignature(q1) != querySignature(q2) {
		t.Fatalf("signatures differ across pages: %q vs %q", querySignature(q1), querySignature(q2))
	}

	q2.SearchQuery = "oak"
	if querySignature(q1) == querySignature(q2) {
		t.Fatal("signature unchanged after filter change")
	}
}
