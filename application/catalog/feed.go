package catalog

import (
	"fmt"
	"sync"

	"github.com/urbannest/furniture-store/model"
)

// feedStore holds the per-session running lists for the infinite view
// mode. A feed accumulates successive pages; fetching page 1 or changing
// any filter dimension starts the feed over.
type feedStore struct {
	mu    sync.Mutex
	feeds map[string]*feed
}

type feed struct {
	signature string
	items     []model.Product
	seen      map[string]bool
}

func newFeedStore() *feedStore {
	return &feedStore{feeds: make(map[string]*feed)}
}

// Accumulate merges one fetched page into the session's feed and returns
// the running list. Products already in the feed are skipped, so repeated
// fetches never introduce duplicate ids.
func (fs *feedStore) Accumulate(sessionID, signature string, page int, pageItems []model.Product) []model.Product {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	f, ok := fs.feeds[sessionID]
	if !ok || f.signature != signature || page == 1 {
		f = &feed{signature: signature, seen: make(map[string]bool)}
		fs.feeds[sessionID] = f
	}

	for _, p := range pageItems {
		if f.seen[p.ID] {
			continue
		}
		f.seen[p.ID] = true
		f.items = append(f.items, p)
	}

	out := make([]model.Product, len(f.items))
	copy(out, f.items)
	return out
}

// Drop discards the session's feed.
func (fs *feedStore) Drop(sessionID string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	delete(fs.feeds, sessionID)
}

// querySignature identifies one combination of filter dimensions. The
// page is deliberately excluded: advancing pages extends the same feed.
func querySignature(q model.CatalogQuery) string {
	return fmt.Sprintf("%s|%s|%v|%v|%v|%s|%d",
		q.Category, q.SearchQuery, q.PriceMin, q.PriceMax, q.InStockOnly, q.SortBy, q.PerPage)
}
