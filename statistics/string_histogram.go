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

import "strings"

// StringHistogram wraps a Histogram[string] with a LIKE-pattern
// estimation layer built on top of ordinary range estimation: a
// pattern's literal prefix (everything before the first '%' or '_', or
// the whole pattern if it has neither) is turned into a half-open range
// [prefix, prefixUpperBound(prefix)) and estimated the same way a
// BETWEEN would be.
type StringHistogram struct {
	*Histogram[string]
}

// NewStringHistogram wraps h.
func NewStringHistogram(h *Histogram[string]) *StringHistogram {
	return &StringHistogram{Histogram: h}
}

// literalPrefix returns the longest prefix of pattern containing no LIKE
// metacharacter.
func literalPrefix(pattern string) string {
	if i := strings.IndexAny(pattern, "%_"); i >= 0 {
		return pattern[:i]
	}
	return pattern
}

// CanPruneLike conservatively decides whether pattern can select no rows,
// by pruning the range implied by its literal prefix. A pattern with an
// empty literal prefix (starts with '%' or '_') can never be pruned this
// way, since every value in the histogram might still match: it is never
// reported as prunable.
func (h *StringHistogram) CanPruneLike(pattern string) (bool, error) {
	prefix := literalPrefix(pattern)
	if prefix == "" {
		return false, nil
	}
	if err := ValidateString(prefix); err != nil {
		return false, err
	}
	n := h.Histogram.store.Len()
	if n == 0 {
		return true, nil
	}
	min0, maxLast := h.Histogram.store.Mins[0], h.Histogram.store.Maxs[n-1]
	if strings.Compare(prefix, maxLast) > 0 {
		return true, nil
	}
	upper, ok, err := prefixUpperBound(prefix)
	if err != nil {
		return false, err
	}
	if ok && strings.Compare(upper, min0) <= 0 {
		return true, nil
	}
	return false, nil
}

// EstimateLike estimates the row count matching pattern by estimating the
// half-open range [prefix, prefixUpperBound(prefix)); when prefix has no
// finite upper bound (every character of the prefix is already the
// alphabet maximum, or the prefix is empty) the estimate degrades to
// "everything at or above prefix", i.e. GreaterThanEquals.
func (h *StringHistogram) EstimateLike(pattern string) (float32, error) {
	prefix := literalPrefix(pattern)
	if prefix == "" {
		return float32(h.Histogram.TotalCount()), nil
	}
	if err := ValidateString(prefix); err != nil {
		return 0, err
	}
	upper, ok, err := prefixUpperBound(prefix)
	if err != nil {
		return 0, err
	}
	if !ok {
		return h.Histogram.EstimateCardinality(prefix, Predicate[string]{Kind: GreaterThanEquals}), nil
	}
	ge := h.Histogram.EstimateCardinality(prefix, Predicate[string]{Kind: GreaterThanEquals})
	lt := h.Histogram.EstimateCardinality(upper, Predicate[string]{Kind: LessThan})
	total := float64(h.Histogram.TotalCount())
	est := float64(ge) - (total - float64(lt))
	if est < 0 {
		est = 0
	}
	return float32(est), nil
}
