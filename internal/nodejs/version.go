// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package nodejs

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MajorVersion extracts the major version from an npm version range such as
// "^18.2.0", "~17.0", ">=16 <19" or "18". It is best-effort: for compound
// ranges only the leading comparator is considered. The second return is
// false when no version can be parsed from the range (e.g. "latest", "*",
// workspace or file references).
func MajorVersion(versionRange string) (uint64, bool) {
	v := strings.TrimSpace(versionRange)
	if i := strings.IndexAny(v, " |,"); i >= 0 {
		v = v[:i]
	}
	v = strings.TrimLeft(v, "^~<>=v")

	parsed, err := semver.NewVersion(v)
	if err != nil {
		return 0, false
	}

	return parsed.Major(), true
}
