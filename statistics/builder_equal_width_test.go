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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildEqualWidthIntUnevenBuckets(t *testing.T) {
	// span=10, K=4 -> base=2, remainder=2: buckets [0,2] [3,5] [6,7] [8,9]
	values := []SortedValue[int64]{
		{Value: 0, Count: 2},
		{Value: 5, Count: 1},
		{Value: 9, Count: 1},
	}
	h, err := BuildEqualWidthInt(0, 9, values, 4)
	require.NoError(t, err)
	require.Equal(t, uint64(4), h.NumBuckets())

	min, max, count, distinct, err := h.store.Bucket(0)
	require.NoError(t, err)
	require.Equal(t, int64(0), min)
	require.Equal(t, int64(2), max)
	require.Equal(t, uint64(2), count)
	require.Equal(t, uint64(1), distinct)

	min, max, count, distinct, err = h.store.Bucket(2)
	require.NoError(t, err)
	require.Equal(t, int64(6), min)
	require.Equal(t, int64(7), max)
	require.Equal(t, uint64(0), count, "an empty bucket is still emitted with zero count")
	require.Equal(t, uint64(0), distinct)

	min, max, count, distinct, err = h.store.Bucket(3)
	require.NoError(t, err)
	require.Equal(t, int64(8), min)
	require.Equal(t, int64(9), max)
	require.Equal(t, uint64(1), count)
	require.Equal(t, uint64(1), distinct)
}

func TestBuildEqualWidthIntRejectsMaxLessThanMin(t *testing.T) {
	_, err := BuildEqualWidthInt(10, 5, nil, 2)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMaxLessThanMin)
}

func TestBuildEqualWidthFloatHalfOpenBuckets(t *testing.T) {
	values := []SortedValue[float64]{
		{Value: 2.5, Count: 1},
		{Value: 7.5, Count: 1},
	}
	h, err := BuildEqualWidthFloat(0.0, 10.0, values, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(2), h.NumBuckets())

	min, max, count, distinct, err := h.store.Bucket(0)
	require.NoError(t, err)
	require.Equal(t, 0.0, min)
	require.Equal(t, uint64(1), count)
	require.Equal(t, uint64(1), distinct)
	require.Less(t, max, 5.001)

	_, max, count, distinct, err = h.store.Bucket(1)
	require.NoError(t, err)
	require.Equal(t, 10.0, max, "the last float bucket's upper edge is exactly the column max")
	require.Equal(t, uint64(1), count)
	require.Equal(t, uint64(1), distinct)
}

func TestBuildEqualWidthFloatRejectsNaN(t *testing.T) {
	_, err := BuildEqualWidthFloat(math.NaN(), 1.0, nil, 2)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNaN)
}
