// Copyright 2025 The aurora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vcs

import (
	"context"
	"strings"

	"golang.org/x/mod/semver"
)

// LatestTag returns the highest semver-ordered tag of remote.
// Tags that do not parse as semantic versions (with or without a leading "v")
// are ignored. Returns "" when the remote has no usable tags.
func LatestTag(ctx context.Context, v VCS, remote string) (string, error) {
	tags, err := v.Tags(ctx, remote)
	if err != nil {
		return "", err
	}

	best := ""
	bestKey := ""
	for _, tag := range tags {
		key := tag
		if !strings.HasPrefix(key, "v") {
			key = "v" + key
		}
		if !semver.IsValid(key) {
			continue
		}
		if best == "" || semver.Compare(key, bestKey) > 0 {
			best, bestKey = tag, key
		}
	}
	return best, nil
}
