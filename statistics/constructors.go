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

// NewIntEqualNumElementsHistogram builds an Equal-Num-Elements histogram
// over an IntDomain column, sparing the caller from constructing the
// (stateless) domain by hand.
func NewIntEqualNumElementsHistogram(values []SortedValue[int64], maxBuckets uint64) (*Histogram[int64], error) {
	return BuildEqualNumElements[int64](IntDomain{}, values, maxBuckets)
}

// NewFloatEqualNumElementsHistogram builds an Equal-Num-Elements
// histogram over a FloatDomain column.
func NewFloatEqualNumElementsHistogram(values []SortedValue[float64], maxBuckets uint64) (*Histogram[float64], error) {
	return BuildEqualNumElements[float64](FloatDomain{}, values, maxBuckets)
}

// NewStringEqualNumElementsHistogram builds an Equal-Num-Elements
// histogram over a StringDomain column using prefixLength (or
// DefaultPrefixLength when prefixLength <= 0) for the fraction-estimation
// embedding.
func NewStringEqualNumElementsHistogram(values []SortedValue[string], maxBuckets uint64, prefixLength int) (*Histogram[string], error) {
	return BuildEqualNumElements[string](NewStringDomain(prefixLength), values, maxBuckets)
}
