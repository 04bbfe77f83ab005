/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package scene

import (
	"log/slog"
	"math"

	"github.com/dhconnelly/rtreego"

	applog "sketchcore/internal/log"
)

// indexEpsilon pads R-tree rectangles so zero-area bounds are representable
// and edge-touching bounds still intersect. Candidates are a superset; exact
// classification always runs afterwards.
const indexEpsilon = 1e-9

// Index is an R-tree over the rotated bounds of a fixed element snapshot.
// It answers candidate queries for rubber-band selection over large scenes.
// An Index is safe for concurrent readers once built.
type Index struct {
	tree *rtreego.Rtree
	size int
}

type indexEntry struct {
	el   *Element
	rect rtreego.Rect
}

func (e *indexEntry) Bounds() rtreego.Rect { return e.rect }

// NewIndex bulk-builds an index over the given elements.
func NewIndex(elements []*Element) *Index {
	tree := rtreego.NewTree(2, 25, 50)
	for _, el := range elements {
		r, err := boundsToRect(RotatedBounds(el))
		if err != nil {
			// cannot happen for finite bounds; skip rather than fail the build
			continue
		}
		tree.Insert(&indexEntry{el: el, rect: r})
	}
	ix := &Index{tree: tree, size: len(elements)}
	applog.WithComponent("scene").Debug("spatial index built", slog.Int("elements", ix.size))
	return ix
}

// Len returns the number of indexed elements.
func (ix *Index) Len() int { return ix.size }

// Candidates returns every indexed element whose rotated bounds may
// intersect b, in no particular order.
func (ix *Index) Candidates(b Bounds) []*Element {
	r, err := boundsToRect(b)
	if err != nil {
		return nil
	}
	hits := ix.tree.SearchIntersect(r)
	out := make([]*Element, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*indexEntry).el)
	}
	return out
}

func boundsToRect(b Bounds) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{b.MinX - indexEpsilon, b.MinY - indexEpsilon},
		[]float64{
			math.Max(b.Width(), 0) + 2*indexEpsilon,
			math.Max(b.Height(), 0) + 2*indexEpsilon,
		},
	)
}
