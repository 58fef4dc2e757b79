package gridgraph

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/crucible/grid"
)

// maxBucketCost is the largest MaxCost served by the bucket queue; dearer
// surfaces use a binary heap.
const maxBucketCost = 255

// FreeCost returns the cheapest total cost of moving from src to dst when every
// orthogonal step is allowed (no heading or run-length rules). The cost of src
// itself is not counted. Because it ignores movement history it is a lower
// bound for any constrained search between the same cells.
//
// Behavior:
//  1. Validate both endpoints (ErrOutOfBounds).
//  2. MaxCost <= 255: bucket-queue Dijkstra (Dial's algorithm), MaxCost+1
//     circular buckets hold every pending distance.
//  3. Otherwise: binary-heap Dijkstra, so no cost bound is assumed.
//  4. Stop when dst is settled. A total above uint64 yields ErrCostOverflow.
//
// Complexity: buckets O(W·H + D) with D the returned distance; heap
// O(W·H·log(W·H)).
// Memory:     O(W·H + MaxCost) or O(W·H).
func (cs *CostSurface) FreeCost(src, dst grid.Vector) (uint64, error) {
	if !cs.InBounds(src) || !cs.InBounds(dst) {
		return 0, fmt.Errorf("%w: %v → %v on %dx%d", ErrOutOfBounds, src, dst, cs.shape.Width, cs.shape.Height)
	}
	if src == dst {
		return 0, nil
	}
	if cs.maxCost <= maxBucketCost {
		return cs.freeCostBuckets(cs.shape.Index(src), cs.shape.Index(dst)), nil
	}

	return cs.freeCostHeap(src, dst)
}

// freeCostBuckets runs Dial's algorithm. With costs at most 255 the distances
// fit in an int on any surface that fits in memory.
func (cs *CostSurface) freeCostBuckets(s, t int) uint64 {
	const inf = math.MaxInt
	n := cs.shape.Area()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = inf
	}
	nb := cs.maxCost + 1
	buckets := make([][]int, nb)

	dist[s] = 0
	buckets[0] = append(buckets[0], s)
	pending := 1

	for d := 0; pending > 0; d++ {
		b := d % nb
		for len(buckets[b]) > 0 {
			last := len(buckets[b]) - 1
			u := buckets[b][last]
			buckets[b] = buckets[b][:last]
			pending--
			if dist[u] != d {
				continue // stale
			}
			if u == t {
				return uint64(d)
			}
			for _, nbr := range cs.shape.Coordinate(u).CardinalNeighbors() {
				c, ok := cs.CostAt(nbr.Pos)
				if !ok {
					continue
				}
				v := cs.shape.Index(nbr.Pos)
				nd := d + c
				if nd < dist[v] {
					dist[v] = nd
					buckets[nd%nb] = append(buckets[nd%nb], v)
					pending++
				}
			}
		}
	}

	// The surface is rectangular, so t is always settled above.
	return uint64(dist[t])
}

// freeCostHeap runs Dijkstra with a lazy binary heap over cells.
func (cs *CostSurface) freeCostHeap(src, dst grid.Vector) (uint64, error) {
	n := cs.shape.Area()
	dist := make([]uint64, n)
	for i := range dist {
		dist[i] = math.MaxUint64
	}
	s, t := cs.shape.Index(src), cs.shape.Index(dst)
	dist[s] = 0
	pq := cellPQ{{cell: s}}
	overflow := false

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(cellItem)
		if item.dist != dist[item.cell] {
			continue // stale
		}
		if item.cell == t {
			return item.dist, nil
		}
		for _, nbr := range cs.shape.Coordinate(item.cell).CardinalNeighbors() {
			c, ok := cs.CostAt(nbr.Pos)
			if !ok {
				continue
			}
			nd := item.dist + uint64(c)
			if nd < item.dist || nd == math.MaxUint64 {
				overflow = true
				continue
			}
			v := cs.shape.Index(nbr.Pos)
			if nd < dist[v] {
				dist[v] = nd
				heap.Push(&pq, cellItem{cell: v, dist: nd})
			}
		}
	}
	if overflow {
		return 0, fmt.Errorf("%w: %v → %v", ErrCostOverflow, src, dst)
	}

	return dist[t], nil
}

// cellItem is a heap entry: a row-major cell index and its tentative distance.
type cellItem struct {
	cell int
	dist uint64
}

// cellPQ is a min-heap of cellItem ordered by distance.
type cellPQ []cellItem

func (pq cellPQ) Len() int            { return len(pq) }
func (pq cellPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq cellPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(cellItem)) }
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
