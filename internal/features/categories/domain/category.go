package domain

import (
	"errors"
	"strconv"
	"time"

	hood "hood-sync/internal/features/hood/domain"
)

// ErrInvalidCategoryID is returned for a negative parent id.
var ErrInvalidCategoryID = errors.New("invalid category id")

const keyPrefix = "hood:categories:"

// ShopKey is the cache key of the seller's own shop categories.
const ShopKey = keyPrefix + "shop"

// BrowseKey returns the cache key of the children of parentID.
func BrowseKey(parentID int) string {
	return keyPrefix + strconv.Itoa(parentID)
}

// CategoryListing is one level of the category tree as served to clients.
type CategoryListing struct {
	// Parent is the browsed category id, or "shop" for shop categories.
	Parent     string          `json:"parent"`
	Categories []hood.Category `json:"categories"`
	FetchedAt  time.Time       `json:"fetched_at"`
	// Cached is set when the listing was served from the cache.
	Cached bool `json:"cached"`
}

// Insertable returns the categories items can be listed in.
func (l *CategoryListing) Insertable() []hood.Category {
	out := []hood.Category{}
	for _, c := range l.Categories {
		if c.InsertProduct {
			out = append(out, c)
		}
	}
	return out
}
