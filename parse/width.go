// Copyright 2023 Matthew P. Dargan. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// width returns the number of terminal columns s occupies. Wide east asian
// characters take two columns, combining sequences one.
func width(s string) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	seg := segment.NewSegmenter(grapheme.NewBreaker(1))
	seg.Init(strings.NewReader(s))
	w := 0
	for seg.Next() {
		w += uax11.Width(seg.Bytes(), uax11.LatinContext)
	}
	return w
}
