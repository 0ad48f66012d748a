// SPDX-License-Identifier: MIT

package phtree

import (
	"math/rand/v2"
	"testing"
)

// TestFullTableBulkInsertFindRemove exercises a much larger population than
// the gold-table test, across dimension counts 1, 2, 3 and 6 and a few key
// widths, checking round-trip find/remove correctness rather than window
// queries.
func TestFullTableBulkInsertFindRemove(t *testing.T) {
	for _, tc := range []struct {
		k, w, n int
	}{
		{1, 64, 2000},
		{2, 32, 4000},
		{3, 16, 4000},
		{6, 8, 2000},
	} {
		tc := tc
		t.Run("", func(t *testing.T) {
			rng := rand.New(rand.NewPCG(uint64(tc.k), uint64(tc.w)))
			tr, err := New[int](tc.k, tc.w)
			if err != nil {
				t.Fatal(err)
			}

			// cap the sampled range well under 2^63 regardless of w, so
			// randomPoint's int64 conversion never overflows
			hi := Key(1<<uint(tc.w) - 1)
			if tc.w == 64 {
				hi = Key(1)<<62 - 1
			}

			var points []Point
			seen := make(map[Point]bool)
			for len(points) < tc.n {
				p := randomPoint(rng, tc.k, 0, hi)
				if seen[p] {
					continue
				}
				seen[p] = true
				points = append(points, p)
				tr.Insert(p, len(points)-1)
			}

			if tr.Len() != tc.n {
				t.Fatalf("Len() = %d, want %d", tr.Len(), tc.n)
			}
			for _, p := range points {
				if _, ok := tr.Find(p); !ok {
					t.Fatalf("Find(%v) failed for an inserted point", p)
				}
			}

			// shuffle removal order away from insertion order
			rng.Shuffle(len(points), func(i, j int) {
				points[i], points[j] = points[j], points[i]
			})
			for i, p := range points {
				if !tr.Remove(p) {
					t.Fatalf("Remove(%v) reported false at step %d", p, i)
				}
				if tr.Len() != tc.n-i-1 {
					t.Fatalf("Len() = %d after %d removals, want %d", tr.Len(), i+1, tc.n-i-1)
				}
			}
			if !tr.Empty() {
				t.Fatal("tree not empty after removing every point")
			}
		})
	}
}

func TestInvalidDimensionsAndWidthRejected(t *testing.T) {
	if _, err := New[int](0, 32); err == nil {
		t.Fatal("New with k=0 should fail")
	}
	if _, err := New[int](MaxDims+1, 32); err == nil {
		t.Fatal("New with k > MaxDims should fail")
	}
	if _, err := New[int](2, 24); err == nil {
		t.Fatal("New with an unsupported width should fail")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	tr, _ := New[int](2, 16)
	tr.Insert(Point{1, 1}, 10)
	tr.Insert(Point{2, 2}, 20)

	c := tr.Clone()
	c.Insert(Point{3, 3}, 30)
	tr.Remove(Point{1, 1})

	if tr.Len() != 1 {
		t.Fatalf("original Len() = %d, want 1", tr.Len())
	}
	if c.Len() != 3 {
		t.Fatalf("clone Len() = %d, want 3", c.Len())
	}
	if _, ok := tr.Find(Point{1, 1}); ok {
		t.Fatal("Remove on the original did not take effect")
	}
	if _, ok := c.Find(Point{1, 1}); !ok {
		t.Fatal("clone lost an entry present at clone time")
	}
}
