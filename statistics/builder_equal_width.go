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

package statistics

import (
	"math"

	"github.com/pingcap/errors"
	"modernc.org/mathutil"
)

// BuildEqualWidthInt partitions the closed range [min, max] into
// n = min(numBuckets, span) buckets of as-equal-as-possible integer width:
// span = max-min+1, W = span/n, R = span mod n, and the
// first R buckets get width W+1. Buckets that end up containing no
// distinct value from values are still emitted with count=0, distinct=0,
// since the range partition is fixed by min/max/numBuckets alone and does
// not depend on which values are actually present. values must be sorted
// ascending by Value with no duplicates.
func BuildEqualWidthInt(min, max int64, values []SortedValue[int64], numBuckets uint64) (*Histogram[int64], error) {
	domain := IntDomain{}
	if numBuckets == 0 {
		numBuckets = 1
	}
	if max < min {
		return nil, errors.Trace(ErrMaxLessThanMin)
	}
	span := uint64(max-min) + 1
	n := mathutil.MinUint64(numBuckets, span)
	base := span / n
	remainder := span % n

	store := newBucketStore[int64](int(n))
	var totalRows uint64
	vi := 0
	lo := min
	for i := uint64(0); i < n; i++ {
		width := base
		if i < remainder {
			width++
		}
		hi := lo + int64(width) - 1
		var count, distinct uint64
		for vi < len(values) && values[vi].Value <= hi {
			count += values[vi].Count
			distinct++
			vi++
		}
		store.append(lo, hi, count, distinct)
		totalRows += count
		lo = hi + 1
	}
	return newHistogram(VariantEqualWidth, domain, store, totalRows), nil
}

// BuildEqualWidthFloat partitions the closed range [min, max] into
// numBuckets buckets of equal float width: span =
// math.Nextafter(max-min, +Inf) so that the half-open Fraction semantics
// of FloatDomain see the same edge this builder used to cut buckets,
// W = span/numBuckets computed as an exact float divide with no
// remainder redistribution (there is no integer "one wider" bucket for a
// continuous domain). Each bucket after the first starts at
// math.Nextafter of the previous bucket's max. values must be sorted
// ascending by Value with no duplicates.
func BuildEqualWidthFloat(min, max float64, values []SortedValue[float64], numBuckets uint64) (*Histogram[float64], error) {
	domain := FloatDomain{}
	if numBuckets == 0 {
		numBuckets = 1
	}
	if math.IsNaN(min) || math.IsNaN(max) {
		return nil, errors.Trace(ErrNaN)
	}
	if max < min {
		return nil, errors.Trace(ErrMaxLessThanMin)
	}
	span := math.Nextafter(max-min, math.Inf(1))
	width := span / float64(numBuckets)

	store := newBucketStore[float64](int(numBuckets))
	var totalRows uint64
	vi := 0
	lo := min
	for i := uint64(0); i < numBuckets; i++ {
		hi := lo + width
		if i == numBuckets-1 {
			hi = max
		}
		var count, distinct uint64
		for vi < len(values) && values[vi].Value <= hi {
			count += values[vi].Count
			distinct++
			vi++
		}
		store.append(lo, hi, count, distinct)
		totalRows += count
		lo = math.Nextafter(hi, math.Inf(1))
	}
	return newHistogram(VariantEqualWidth, domain, store, totalRows), nil
}
