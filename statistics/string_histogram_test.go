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
	"testing"

	"github.com/stretchr/testify/require"
)

func newFixtureStringHistogram() *StringHistogram {
	domain := NewStringDomain(DefaultPrefixLength)
	store := newBucketStore[string](2)
	store.append("apple", "banana", 10, 2)
	store.append("cherry", "date", 10, 2)
	h := newHistogram(VariantEqualNumElements, domain, store, 20)
	return NewStringHistogram(h)
}

func TestLiteralPrefix(t *testing.T) {
	require.Equal(t, "ban", literalPrefix("ban%"))
	require.Equal(t, "b", literalPrefix("b_n"))
	require.Equal(t, "banana", literalPrefix("banana"))
	require.Equal(t, "", literalPrefix("%anything"))
}

func TestStringHistogramCanPruneLikeOutsideRange(t *testing.T) {
	h := newFixtureStringHistogram()
	ok, err := h.CanPruneLike("zzz%")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = h.CanPruneLike("aaa%")
	require.NoError(t, err)
	require.True(t, ok, "aaa is entirely below apple, the histogram minimum")

	ok, err = h.CanPruneLike("banana%")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStringHistogramCanPruneLikeWithNoLiteralPrefix(t *testing.T) {
	h := newFixtureStringHistogram()
	ok, err := h.CanPruneLike("%anything")
	require.NoError(t, err)
	require.False(t, ok, "an unanchored pattern can never be pruned by prefix range alone")
}

func TestStringHistogramCanPruneLikeRejectsUnsupportedCharacters(t *testing.T) {
	h := newFixtureStringHistogram()
	_, err := h.CanPruneLike("Banana%")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnsupportedCharacter)
}

func TestStringHistogramEstimateLikeFullPattern(t *testing.T) {
	h := newFixtureStringHistogram()
	est, err := h.EstimateLike("%")
	require.NoError(t, err)
	require.Equal(t, float32(20), est)
}

func TestStringHistogramEstimateLikeNonNegative(t *testing.T) {
	h := newFixtureStringHistogram()
	patterns := []string{"a%", "b%", "c%", "d%", "z%", "cherry%"}
	for _, p := range patterns {
		est, err := h.EstimateLike(p)
		require.NoError(t, err)
		require.GreaterOrEqual(t, est, float32(0))
		require.LessOrEqual(t, est, float32(20))
	}
}
