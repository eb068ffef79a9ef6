// Copyright 2024 The Histostat Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package statistics implements the per-column, chunk-level histogram
// family used by the optimizer to prune predicates and estimate the row
// count they select: Equal-Num-Elements, Equal-Width and Equal-Height
// histograms sharing one abstract estimation and pruning core.
package statistics

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/chunkstore/histostat/statistics/logutil"
)

// Variant names the bucket-partitioning algorithm a Histogram was built
// with. It is metadata only; estimation and pruning read nothing but the
// BucketStore and Domain.
type Variant int

// Supported histogram variants.
const (
	VariantEqualNumElements Variant = iota
	VariantEqualWidth
	VariantEqualHeight
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case VariantEqualNumElements:
		return "equal-num-elements"
	case VariantEqualWidth:
		return "equal-width"
	case VariantEqualHeight:
		return "equal-height"
	default:
		return "unknown"
	}
}

// Histogram is the abstract, variant-agnostic estimation and pruning
// engine. It owns its bucket arrays exclusively and holds no reference to
// the source column once built: it is a value object, safe to share
// across goroutines the moment a builder returns it.
type Histogram[T any] struct {
	variant Variant
	domain  Domain[T]
	store   *BucketStore[T]

	// totalRowCount is the row count recorded at build time. The builders
	// set it to the sum of the counts of the values they are given; no
	// builder takes a separate column row count, so rows outside every
	// bucket (such as NULLs) are not recorded here. TotalCount() below is
	// always the sum of bucket counts, the quantity every estimation
	// formula in this file actually uses.
	totalRowCount uint64
}

func newHistogram[T any](variant Variant, domain Domain[T], store *BucketStore[T], totalRowCount uint64) *Histogram[T] {
	return &Histogram[T]{variant: variant, domain: domain, store: store, totalRowCount: totalRowCount}
}

// Variant reports which builder produced this histogram.
func (h *Histogram[T]) Variant() Variant {
	return h.variant
}

// NumBuckets is the number of buckets actually populated. For
// Equal-Height this may be less than the number requested at build time;
// see Degraded.
func (h *Histogram[T]) NumBuckets() uint64 {
	return uint64(h.store.Len())
}

// TotalCount is the sum of every bucket's row count, the quantity used
// throughout equality/inequality estimation. For every histogram the
// builders produce it equals TotalRowCount.
func (h *Histogram[T]) TotalCount() uint64 {
	return h.store.TotalCount()
}

// TotalDistinctCount is the sum of every bucket's distinct-value count.
func (h *Histogram[T]) TotalDistinctCount() uint64 {
	return h.store.TotalDistinct()
}

// TotalRowCount is the row count recorded by the builder: the sum of the
// counts of the values it was given.
func (h *Histogram[T]) TotalRowCount() uint64 {
	return h.totalRowCount
}

// Degraded reports whether the actual bucket count is smaller than what
// the caller asked for. Equal-Height degrades because distinct values are
// atomic and are never split across buckets; Equal-Num-Elements produces
// at most one bucket per distinct value, and integer Equal-Width at most
// one bucket per integer in [min, max].
func (h *Histogram[T]) Degraded(requestedBuckets uint64) bool {
	return h.NumBuckets() < requestedBuckets
}

// BucketForValue returns the unique bucket whose [min, max] contains v, or
// (0, false) if no bucket does (v falls in a gap between buckets, or
// outside the histogram's overall range).
func (h *Histogram[T]) BucketForValue(v T) (int, bool) {
	n := h.store.Len()
	if n == 0 {
		return 0, false
	}
	i := sort.Search(n, func(i int) bool { return h.domain.Compare(h.store.Maxs[i], v) >= 0 })
	if i == n {
		return 0, false
	}
	if h.domain.Compare(v, h.store.Mins[i]) < 0 {
		return 0, false
	}
	return i, true
}

// LowerBoundBucket returns the smallest index i with max_i >= v, or
// (0, false) if v is greater than every bucket's max.
func (h *Histogram[T]) LowerBoundBucket(v T) (int, bool) {
	n := h.store.Len()
	if n == 0 {
		return 0, false
	}
	i := sort.Search(n, func(i int) bool { return h.domain.Compare(h.store.Maxs[i], v) >= 0 })
	if i == n {
		return 0, false
	}
	return i, true
}

// UpperBoundBucket returns the smallest index i with max_i > v, or
// (0, false) if v is greater than or equal to every bucket's max.
func (h *Histogram[T]) UpperBoundBucket(v T) (int, bool) {
	n := h.store.Len()
	if n == 0 {
		return 0, false
	}
	i := sort.Search(n, func(i int) bool { return h.domain.Compare(h.store.Maxs[i], v) > 0 })
	if i == n {
		return 0, false
	}
	return i, true
}

// equalCount is the row count estimate for value equality.
func (h *Histogram[T]) equalCount(v T) float64 {
	n := h.store.Len()
	if n == 0 {
		return 0
	}
	if h.domain.Compare(v, h.store.Mins[0]) < 0 || h.domain.Compare(v, h.store.Maxs[n-1]) > 0 {
		return 0
	}
	i, ok := h.BucketForValue(v)
	if !ok {
		return 0
	}
	distinct := h.store.Distincts[i]
	if distinct == 0 {
		return 0
	}
	return float64(h.store.Counts[i]) / float64(distinct)
}

// lessCount is the row count estimate for value < v. The
// fraction contributed by the straddled bucket is always clamped to
// [0, 1] by Domain.Fraction, so a v that falls in a gap between buckets
// (bucket_for_value undefined, lower_bound_bucket picks the next bucket up)
// naturally contributes zero from that bucket without a special case.
func (h *Histogram[T]) lessCount(v T) float64 {
	n := h.store.Len()
	if n == 0 {
		return 0
	}
	if h.domain.Compare(v, h.store.Mins[0]) <= 0 {
		return 0
	}
	if h.domain.Compare(v, h.store.Maxs[n-1]) > 0 {
		return float64(h.store.TotalCount())
	}
	i, ok := h.BucketForValue(v)
	if !ok {
		i, ok = h.LowerBoundBucket(v)
		if !ok {
			return float64(h.store.TotalCount())
		}
	}
	var below float64
	for j := 0; j < i; j++ {
		below += float64(h.store.Counts[j])
	}
	frac := h.domain.Fraction(h.store.Mins[i], h.store.Maxs[i], v)
	return below + frac*float64(h.store.Counts[i])
}

// betweenCount implements estimate(between(a,b)) = estimate(<=b) - estimate(<a),
// the closed interval [a, b].
func (h *Histogram[T]) betweenCount(a, b T) float64 {
	if h.domain.Compare(a, b) > 0 {
		return 0
	}
	v := h.lessCount(b) + h.equalCount(b) - h.lessCount(a)
	if v < 0 {
		v = 0
	}
	return v
}

// EstimateCardinality estimates the number of rows selected by pred when
// the column is compared against v (or, for Between, against the closed
// interval [v, pred.Upper]). The result is non-negative and is exactly
// zero whenever CanPrune returns true. Like and NotLike are not handled
// here: use StringHistogram.EstimateLike/CanPruneLike.
func (h *Histogram[T]) EstimateCardinality(v T, pred Predicate[T]) float32 {
	if h.store.Len() == 0 {
		return 0
	}
	total := float64(h.store.TotalCount())
	switch pred.Kind {
	case Equals:
		return float32(h.equalCount(v))
	case NotEquals:
		return float32(total - h.equalCount(v))
	case LessThan:
		return float32(h.lessCount(v))
	case LessThanEquals:
		return float32(h.lessCount(v) + h.equalCount(v))
	case GreaterThan:
		gt := total - h.lessCount(v) - h.equalCount(v)
		if gt < 0 {
			gt = 0
		}
		return float32(gt)
	case GreaterThanEquals:
		return float32(total - h.lessCount(v))
	case Between:
		return float32(h.betweenCount(v, pred.Upper))
	default:
		logutil.StatsLogger().Warn("unsupported predicate kind for histogram estimation", zap.Stringer("kind", pred.Kind))
		return float32(total)
	}
}

// CanPrune conservatively decides whether pred is guaranteed to select no
// rows: it never returns true when a matching value might exist. Bounds
// checks against min_0/max_last are used directly rather than
// derived from EstimateCardinality == 0, since floating-point subtraction
// in the general estimate could round to a nonzero value near a true
// boundary and must never be allowed to defeat a valid prune.
func (h *Histogram[T]) CanPrune(v T, pred Predicate[T]) bool {
	n := h.store.Len()
	if n == 0 {
		return true
	}
	min0, maxLast := h.store.Mins[0], h.store.Maxs[n-1]
	switch pred.Kind {
	case Equals:
		return h.equalCount(v) == 0
	case NotEquals:
		return float64(h.store.TotalCount())-h.equalCount(v) == 0
	case LessThan:
		return h.domain.Compare(v, min0) <= 0
	case LessThanEquals:
		return h.domain.Compare(v, min0) < 0
	case GreaterThan:
		return h.domain.Compare(v, maxLast) >= 0
	case GreaterThanEquals:
		return h.domain.Compare(v, maxLast) > 0
	case Between:
		return h.domain.Compare(v, pred.Upper) > 0 ||
			h.domain.Compare(pred.Upper, min0) < 0 ||
			h.domain.Compare(v, maxLast) > 0
	default:
		return false
	}
}

// Clone deep-copies the histogram; the returned value shares no backing
// array with the receiver: histograms need to be freely cloneable by
// value.
func (h *Histogram[T]) Clone() *Histogram[T] {
	return &Histogram[T]{
		variant:       h.variant,
		domain:        h.domain,
		store:         h.store.clone(),
		totalRowCount: h.totalRowCount,
	}
}

// String renders a short header plus one line per bucket.
func (h *Histogram[T]) String() string {
	return fmt.Sprintf("histogram(%s): buckets=%d total=%d distinct=%d\n%s",
		h.variant, h.NumBuckets(), h.TotalCount(), h.TotalDistinctCount(), h.store.String())
}
