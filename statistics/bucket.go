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
	"fmt"
	"strings"

	"github.com/pingcap/errors"
)

// BucketStore holds the four parallel arrays shared by every histogram
// variant: per-bucket min, max, row count and distinct-value count. Layout
// is identical across variants; only how a builder populates it differs.
// A BucketStore is built once and never mutated afterwards.
type BucketStore[T any] struct {
	Mins      []T
	Maxs      []T
	Counts    []uint64
	Distincts []uint64
}

// newBucketStore preallocates the four arrays to capacity.
func newBucketStore[T any](capacity int) *BucketStore[T] {
	return &BucketStore[T]{
		Mins:      make([]T, 0, capacity),
		Maxs:      make([]T, 0, capacity),
		Counts:    make([]uint64, 0, capacity),
		Distincts: make([]uint64, 0, capacity),
	}
}

// append adds one bucket. Builders are the only callers; a BucketStore
// handed to a Histogram is never appended to again.
func (s *BucketStore[T]) append(min, max T, count, distinct uint64) {
	s.Mins = append(s.Mins, min)
	s.Maxs = append(s.Maxs, max)
	s.Counts = append(s.Counts, count)
	s.Distincts = append(s.Distincts, distinct)
}

// Len is the number of buckets.
func (s *BucketStore[T]) Len() int {
	return len(s.Mins)
}

// TotalCount sums every bucket's row count.
func (s *BucketStore[T]) TotalCount() uint64 {
	var total uint64
	for _, c := range s.Counts {
		total += c
	}
	return total
}

// TotalDistinct sums every bucket's distinct-value count.
func (s *BucketStore[T]) TotalDistinct() uint64 {
	var total uint64
	for _, d := range s.Distincts {
		total += d
	}
	return total
}

// Bucket returns the bounds and counters of bucket i. It returns
// ErrInvalidBucketIndex, a precondition violation, when i is out of range.
func (s *BucketStore[T]) Bucket(i int) (min, max T, count, distinct uint64, err error) {
	if i < 0 || i >= s.Len() {
		return min, max, 0, 0, errors.Trace(ErrInvalidBucketIndex)
	}
	return s.Mins[i], s.Maxs[i], s.Counts[i], s.Distincts[i], nil
}

// clone deep-copies the store; the returned store shares no backing array
// with the receiver.
func (s *BucketStore[T]) clone() *BucketStore[T] {
	out := &BucketStore[T]{
		Mins:      make([]T, len(s.Mins)),
		Maxs:      make([]T, len(s.Maxs)),
		Counts:    make([]uint64, len(s.Counts)),
		Distincts: make([]uint64, len(s.Distincts)),
	}
	copy(out.Mins, s.Mins)
	copy(out.Maxs, s.Maxs)
	copy(out.Counts, s.Counts)
	copy(out.Distincts, s.Distincts)
	return out
}

// String renders one line per bucket.
func (s *BucketStore[T]) String() string {
	lines := make([]string, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		lines = append(lines, fmt.Sprintf("bucket %d: min=%v max=%v count=%d distinct=%d", i, s.Mins[i], s.Maxs[i], s.Counts[i], s.Distincts[i]))
	}
	return strings.Join(lines, "\n")
}
