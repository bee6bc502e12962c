package parser

import (
	"strconv"
	"strings"
)

// AsyncAPIVersion represents each canonical 2.x version of the AsyncAPI
// Specification that may be found at:
// https://github.com/asyncapi/spec/releases
type AsyncAPIVersion int

const (
	// Unknown represents an unknown or invalid AsyncAPI version
	Unknown AsyncAPIVersion = iota
	// AsyncAPIVersion200 AsyncAPI Specification Version 2.0.0
	AsyncAPIVersion200
	// AsyncAPIVersion210 AsyncAPI Specification Version 2.1.0
	AsyncAPIVersion210
	// AsyncAPIVersion220 AsyncAPI Specification Version 2.2.0
	AsyncAPIVersion220
	// AsyncAPIVersion230 AsyncAPI Specification Version 2.3.0
	AsyncAPIVersion230
	// AsyncAPIVersion240 AsyncAPI Specification Version 2.4.0
	AsyncAPIVersion240
	// AsyncAPIVersion250 AsyncAPI Specification Version 2.5.0
	AsyncAPIVersion250
	// AsyncAPIVersion260 AsyncAPI Specification Version 2.6.0
	AsyncAPIVersion260
)

var (
	versionToString = map[AsyncAPIVersion]string{
		AsyncAPIVersion200: "2.0.0",
		AsyncAPIVersion210: "2.1.0",
		AsyncAPIVersion220: "2.2.0",
		AsyncAPIVersion230: "2.3.0",
		AsyncAPIVersion240: "2.4.0",
		AsyncAPIVersion250: "2.5.0",
		AsyncAPIVersion260: "2.6.0",
	}

	stringToVersion = func() map[string]AsyncAPIVersion {
		m := make(map[string]AsyncAPIVersion, len(versionToString))
		for k, v := range versionToString {
			m[v] = k
		}
		return m
	}()

	// minorToVersion maps a 2.x minor number to its version for future
	// patch lookups, e.g. "2.6.3" resolves to AsyncAPIVersion260.
	minorToVersion = map[int]AsyncAPIVersion{
		0: AsyncAPIVersion200,
		1: AsyncAPIVersion210,
		2: AsyncAPIVersion220,
		3: AsyncAPIVersion230,
		4: AsyncAPIVersion240,
		5: AsyncAPIVersion250,
		6: AsyncAPIVersion260,
	}
)

func (v AsyncAPIVersion) String() string {
	if s, ok := versionToString[v]; ok {
		return s
	}
	return "unknown"
}

// IsValid returns true if this is a valid version
func (v AsyncAPIVersion) IsValid() bool {
	_, ok := versionToString[v]
	return ok
}

// ParseVersion will attempt to parse the string s into an AsyncAPIVersion,
// and returns false if not valid. This function supports:
// 1. Exact version matches (e.g., "2.0.0", "2.6.0")
// 2. Future patch versions within a known 2.x minor series (e.g., "2.6.3" maps to "2.6.0")
// 3. Pre-release suffixes (e.g., "2.6.0-rc1" maps to "2.6.0")
func ParseVersion(s string) (AsyncAPIVersion, bool) {
	// First try exact match (handles all known versions)
	if v, ok := stringToVersion[s]; ok {
		return v, true
	}

	major, minor, ok := parseMajorMinor(s)
	if !ok || major != 2 {
		return Unknown, false
	}
	if v, ok := minorToVersion[minor]; ok {
		return v, true
	}
	return Unknown, false
}

// parseMajorMinor extracts the major and minor segments of a semver string,
// stripping any pre-release or build suffix.
func parseMajorMinor(s string) (major, minor int, ok bool) {
	if i := strings.IndexAny(s, "-+"); i >= 0 {
		s = s[:i]
	}
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return 0, 0, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return major, minor, true
}
