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

// Package logutil provides the single zap logger used by the statistics
// package. Do not use it to log messages unrelated to histograms.
package logutil

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once   sync.Once
	logger *zap.Logger
)

func base() *zap.Logger {
	once.Do(func() {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		logger = l
	})
	return logger
}

// StatsLogger with category "stats" is used to log statistic related
// messages. Do not use it to log messages that are not related to
// statistics.
func StatsLogger() *zap.Logger {
	return base().With(zap.String("category", "stats"))
}

// ReplaceGlobals swaps the process-wide logger, for hosts embedding this
// package that already run their own zap core.
func ReplaceGlobals(l *zap.Logger) {
	base()
	logger = l
}
