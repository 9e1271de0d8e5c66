package burning

import "github.com/gogpu/burning/internal/vertex"

// cacheSize is the number of transformed vertices resident at once.
const cacheSize = 16

// cacheSlot is one transformed source vertex. lit is set once lighting
// and texture coordinates have been computed.
type cacheSlot struct {
	index int
	pair  vertex.Pair
	lit   bool
	keep  bool
}

// vertexCache maps source vertex indices of one draw call to transformed
// vertices. When a primitive references a vertex that is not resident it
// refills the cache from the upcoming index window, evicting only slots
// that window does not reference.
type vertexCache struct {
	slots [cacheSize]cacheSlot

	verts   []Vertex
	indices Indices
	ptype   PrimitiveType
	prims   int

	// fill transforms a source vertex into a slot without lighting it.
	fill func(s *cacheSlot, v *Vertex)

	fills, hits int
}

// reset prepares the cache for one draw call. A nil index stream
// addresses the vertices in order.
func (c *vertexCache) reset(verts []Vertex, indices Indices, ptype PrimitiveType) {
	if indices == nil {
		indices = sequential(len(verts))
	}
	c.verts = verts
	c.indices = indices
	c.ptype = ptype
	c.prims = ptype.PrimitiveCount(indices.Len())
	for i := range c.slots {
		c.slots[i] = cacheSlot{index: -1}
	}
	c.fills, c.hits = 0, 0
}

// face returns the index positions of primitive i and how many there are.
// Odd strip triangles are reordered to keep a consistent winding.
func (c *vertexCache) face(i int) (pos [3]int, n int) {
	switch c.ptype {
	case Points:
		return [3]int{i}, 1
	case Lines:
		return [3]int{2 * i, 2*i + 1}, 2
	case LineStrip:
		return [3]int{i, i + 1}, 2
	case LineLoop:
		return [3]int{i, (i + 1) % c.indices.Len()}, 2
	case Triangles:
		return [3]int{3 * i, 3*i + 1, 3*i + 2}, 3
	case TriangleStrip:
		if i&1 == 1 {
			return [3]int{i + 1, i, i + 2}, 3
		}
		return [3]int{i, i + 1, i + 2}, 3
	default: // TriangleFan, Polygon
		return [3]int{0, i + 1, i + 2}, 3
	}
}

// get resolves primitive i into slots. It reports false when an index is
// out of range.
func (c *vertexCache) get(i int, out *[3]*cacheSlot) (n int, ok bool) {
	pos, n := c.face(i)
	var src [3]int
	for k := range n {
		idx := c.indices.At(pos[k])
		if idx < 0 || idx >= len(c.verts) {
			return n, false
		}
		src[k] = idx
	}

	resident := true
	for k := range n {
		if out[k] = c.lookup(src[k]); out[k] == nil {
			resident = false
		}
	}
	if resident {
		c.hits += n
		return n, true
	}

	c.refill(src[:n], pos[n-1]+1)
	for k := range n {
		out[k] = c.lookup(src[k])
	}
	return n, true
}

func (c *vertexCache) lookup(idx int) *cacheSlot {
	for i := range c.slots {
		if c.slots[i].index == idx {
			return &c.slots[i]
		}
	}
	return nil
}

// refill keeps the slots referenced by need and by the indices from
// position next onward, up to the cache size, and fills whatever of those
// is missing into the freed slots.
func (c *vertexCache) refill(need []int, next int) {
	for i := range c.slots {
		c.slots[i].keep = false
	}

	var want [cacheSize]int
	nw := 0
	add := func(idx int) {
		if idx < 0 || idx >= len(c.verts) {
			return
		}
		for _, w := range want[:nw] {
			if w == idx {
				return
			}
		}
		want[nw] = idx
		nw++
	}
	for _, idx := range need {
		add(idx)
	}
	for p := next; p < c.indices.Len() && nw < cacheSize; p++ {
		add(c.indices.At(p))
	}

	var missing [cacheSize]int
	nm := 0
	for _, idx := range want[:nw] {
		if s := c.lookup(idx); s != nil {
			s.keep = true
			continue
		}
		missing[nm] = idx
		nm++
	}

	free := 0
	for _, idx := range missing[:nm] {
		for c.slots[free].keep {
			free++
		}
		s := &c.slots[free]
		*s = cacheSlot{index: idx, keep: true}
		c.fill(s, &c.verts[idx])
		c.fills++
	}
}
