// Package cache keeps computed dashboard series in an in-process byte cache.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/model"
)

// ErrMiss is returned by Get when no entry is cached for a currency pair.
var ErrMiss = errors.New("view cache miss")

// Entry is the cached result of one selection: the normalized series and its extrema.
// Chart frames are rebuilt from the series on every read.
type Entry struct {
	Series  model.NormalizedSeries
	Extrema model.ExtremaReport
}

// wireEntry stores points column-wise. Dates of a date axis are rebuilt from
// their YYYY-MM-DD labels.
type wireEntry struct {
	Reference string              `json:"ref"`
	Selected  string              `json:"sel"`
	Axis      model.DateAxis      `json:"axis"`
	Labels    []string            `json:"labels"`
	Values    []float64           `json:"values"`
	Extrema   model.ExtremaReport `json:"extrema"`
}

// Stats is a snapshot of the cache counters.
type Stats struct {
	Entries int64   `json:"entries"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hitRate"`
}

// ViewCache stores Entries keyed by (reference, selected). It is safe for concurrent use.
type ViewCache struct {
	cache *freecache.Cache
	ttl   time.Duration
}

// NewViewCache creates a cache of sizeBytes. A ttl of zero keeps entries until evicted.
// freecache enforces a minimum size of 512KB.
func NewViewCache(sizeBytes int, ttl time.Duration) *ViewCache {
	return &ViewCache{
		cache: freecache.NewCache(sizeBytes),
		ttl:   ttl,
	}
}

func key(reference, selected string) []byte {
	return []byte(reference + "\x00" + selected)
}

// Get returns the cached entry for the pair or ErrMiss.
func (c *ViewCache) Get(reference, selected string) (Entry, error) {
	data, err := c.cache.Get(key(reference, selected))
	if errors.Is(err, freecache.ErrNotFound) {
		return Entry{}, ErrMiss
	}
	if err != nil {
		return Entry{}, fmt.Errorf("failed to get %s/%s: %w", reference, selected, err)
	}

	var w wireEntry
	if err := json.Unmarshal(data, &w); err != nil {
		return Entry{}, fmt.Errorf("failed to decode cached view %s/%s: %w", reference, selected, err)
	}

	if len(w.Labels) != len(w.Values) {
		return Entry{}, fmt.Errorf("failed to decode cached view %s/%s: %d labels for %d values",
			reference, selected, len(w.Labels), len(w.Values))
	}

	points := make([]model.SeriesPoint, len(w.Labels))
	for i, label := range w.Labels {
		points[i] = model.SeriesPoint{Label: label, Value: w.Values[i]}
		if w.Axis == model.DateAxisDate {
			date, err := time.Parse(model.DateLayout, label)
			if err != nil {
				return Entry{}, fmt.Errorf("failed to decode cached view %s/%s: %w", reference, selected, err)
			}
			points[i].Date = date
		}
	}
	return Entry{
		Series: model.NormalizedSeries{
			Reference: w.Reference,
			Selected:  w.Selected,
			Axis:      w.Axis,
			Points:    points,
		},
		Extrema: w.Extrema,
	}, nil
}

// Set stores the entry for the pair. Entries too large for the cache return
// freecache.ErrLargeEntry (wrapped).
func (c *ViewCache) Set(reference, selected string, entry Entry) error {
	w := wireEntry{
		Reference: entry.Series.Reference,
		Selected:  entry.Series.Selected,
		Axis:      entry.Series.Axis,
		Labels:    make([]string, len(entry.Series.Points)),
		Values:    make([]float64, len(entry.Series.Points)),
		Extrema:   entry.Extrema,
	}
	for i, p := range entry.Series.Points {
		w.Labels[i] = p.Label
		w.Values[i] = p.Value
	}

	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to encode view %s/%s: %w", reference, selected, err)
	}

	ttlSeconds := int(c.ttl.Seconds())
	if ttlSeconds <= 0 {
		ttlSeconds = 0 // No expiry
	}
	if err := c.cache.Set(key(reference, selected), data, ttlSeconds); err != nil {
		return fmt.Errorf("failed to set %s/%s: %w", reference, selected, err)
	}
	return nil
}

// Stats returns the current counters.
func (c *ViewCache) Stats() Stats {
	return Stats{
		Entries: c.cache.EntryCount(),
		Hits:    c.cache.HitCount(),
		Misses:  c.cache.MissCount(),
		HitRate: c.cache.HitRate(),
	}
}

// ResetStats zeroes the hit and miss counters.
func (c *ViewCache) ResetStats() {
	c.cache.ResetStatistics()
}
