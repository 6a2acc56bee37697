package engine

import (
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/andareed/worldviz/panel"
)

// SpecCache memoizes chart specs keyed on (dataset version, chart kind,
// filter state, scale policy). Entries are immutable once inserted; a
// singleflight group guarantees a key is computed once even if two charts
// for the same snapshot are requested together.
type SpecCache struct {
	mu    sync.Mutex
	specs map[string]*ChartSpec
	group singleflight.Group
}

func NewSpecCache() *SpecCache {
	return &SpecCache{specs: make(map[string]*ChartSpec)}
}

// Bubble returns the memoized bubble spec for the snapshot, computing and
// inserting it on first use. Error results (EmptyView included) are never
// cached, so a later non-empty view recomputes.
func (c *SpecCache) Bubble(ds *panel.Dataset, f FilterState, policy ScalePolicy) (*ChartSpec, error) {
	key := cacheKey(ds, "bubble", f.Key(), policy.String())
	return c.lookup(key, func() (*ChartSpec, error) {
		view, err := BuildView(ds, f)
		if err != nil {
			return nil, err
		}
		return BuildBubbleSpec(ds, view, f, policy)
	})
}

// ConnectedScatter returns the memoized connected-scatterplot spec for the
// snapshot and country set.
func (c *SpecCache) ConnectedScatter(ds *panel.Dataset, f FilterState, countries []string) (*ChartSpec, error) {
	key := cacheKey(ds, "scatter", f.Key(), strings.Join(countries, ","))
	return c.lookup(key, func() (*ChartSpec, error) {
		return BuildConnectedScatterSpec(ds, f, countries)
	})
}

func (c *SpecCache) lookup(key string, compute func() (*ChartSpec, error)) (*ChartSpec, error) {
	c.mu.Lock()
	if spec, ok := c.specs[key]; ok {
		c.mu.Unlock()
		return spec, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		return compute()
	})
	if err != nil {
		return nil, err
	}

	spec := v.(*ChartSpec)
	c.mu.Lock()
	c.specs[key] = spec
	c.mu.Unlock()
	return spec, nil
}

// Len reports how many specs are cached (for the debug footer).
func (c *SpecCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.specs)
}

func cacheKey(ds *panel.Dataset, parts ...string) string {
	var b strings.Builder
	b.WriteString("v")
	// dataset identity first: a reload invalidates everything
	b.WriteString(u64hex(ds.Version))
	for _, p := range parts {
		b.WriteByte('|')
		b.WriteString(p)
	}
	return b.String()
}

func u64hex(v uint64) string {
	const digits = "0123456789abcdef"
	var buf [16]byte
	for i := 15; i >= 0; i-- {
		buf[i] = digits[v&0xf]
		v >>= 4
	}
	return string(buf[:])
}
