package bake

import (
	"math"
	"sync/atomic"

	"github.com/npillmayer/curvature"
	"gonum.org/v1/gonum/floats"
)

// Table is an immutable, uniformly sampled lookup table. Entry i holds the
// value at abscissa i/(Len()-1). Tables are never modified after they have
// been published.
type Table struct {
	values   []float64
	revision uint64
}

// NewTable wraps values into a table. The table takes ownership of values.
func NewTable(values []float64, revision uint64) *Table {
	return &Table{values: values, revision: revision}
}

// Len returns the number of samples in the table; 0 for a nil table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.values)
}

// At returns sample i.
func (t *Table) At(i int) float64 {
	return t.values[i]
}

// Values returns a copy of the samples.
func (t *Table) Values() []float64 {
	if t == nil {
		return nil
	}
	return append([]float64(nil), t.values...)
}

// Revision is the revision of the curve data the table has been computed from.
func (t *Table) Revision() uint64 {
	if t == nil {
		return 0
	}
	return t.revision
}

// Bounds returns the smallest and largest sample value.
func (t *Table) Bounds() (lo, hi float64, ok bool) {
	if t.Len() == 0 {
		return 0, 0, false
	}
	return floats.Min(t.values), floats.Max(t.values), true
}

// Sample linearly interpolates the table at offset, where offset 0 maps to
// the first entry and offset 1 to the last. Offsets outside [0,1] are clamped
// to the end entries. ok is false for an empty table.
func (t *Table) Sample(offset float64) (value float64, ok bool) {
	n := t.Len()
	switch n {
	case 0:
		return 0, false
	case 1:
		return t.values[0], true
	}
	fi := offset * float64(n-1)
	i := int(math.Floor(fi))
	if i < 0 {
		i, fi = 0, 0
	} else if i >= n {
		i, fi = n-1, 0
	}
	if i+1 < n {
		return curvature.Lerp(t.values[i], t.values[i+1], fi-float64(i)), true
	}
	return t.values[n-1], true
}

// Cache holds the most recently published table. Readers never block and
// always see a complete table: a new table is swapped in as a whole.
type Cache struct {
	current atomic.Pointer[Table]
}

// Load returns the current table, or nil if nothing has been published yet.
func (c *Cache) Load() *Table {
	return c.current.Load()
}

// Publish replaces the current table, unless the current table has been
// computed from a newer revision. It reports whether t has been installed.
func (c *Cache) Publish(t *Table) bool {
	for {
		cur := c.current.Load()
		if cur != nil && cur.Revision() > t.Revision() {
			tracer().Debugf("dropped table of revision %d, have %d", t.Revision(), cur.Revision())
			return false
		}
		if c.current.CompareAndSwap(cur, t) {
			tracer().Debugf("published table of %d samples, revision %d", t.Len(), t.Revision())
			return true
		}
	}
}

// Sample reads the current table at offset, see Table.Sample.
func (c *Cache) Sample(offset float64) (float64, bool) {
	return c.Load().Sample(offset)
}
