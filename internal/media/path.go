package media

import (
	"regexp"
	"strings"
)

// DefaultLegacyFolder is the subpath assets were authored under before the base path was configurable
const DefaultLegacyFolder = "Portfolio"

var absoluteURL = regexp.MustCompile(`(?i)^https?://`)

// Resolver turns media references into URLs under a deployment base path
type Resolver struct {
	base    string // always starts and ends with "/"
	segment string // base without slashes, "" when serving from root
	legacy  string
}

// NewResolver creates a Resolver for the given base path and legacy folder
func NewResolver(base, legacyFolder string) *Resolver {
	segment := strings.Trim(base, "/")
	normalized := "/"
	if segment != "" {
		normalized = "/" + segment + "/"
	}
	return &Resolver{
		base:    normalized,
		segment: segment,
		legacy:  strings.Trim(legacyFolder, "/"),
	}
}

// Base returns the normalized deployment base
func (r *Resolver) Base() string {
	return r.base
}

// IsAbsolute reports whether ref is an http(s) URL
func IsAbsolute(ref string) bool {
	return absoluteURL.MatchString(ref)
}

// Resolve returns the URL for ref. Empty input yields empty output and
// absolute URLs are returned unchanged.
func (r *Resolver) Resolve(ref string) string {
	if ref == "" {
		return ""
	}
	if IsAbsolute(ref) {
		return ref
	}
	return r.base + r.Clean(ref)
}

// Clean returns ref relative to the base, with leading slashes and any
// redundant base or legacy folder prefix removed
func (r *Resolver) Clean(ref string) string {
	clean := strings.TrimLeft(ref, "/")
	if r.segment != "" {
		clean = trimFolder(clean, r.segment)
	} else if r.legacy != "" {
		clean = trimFolder(clean, r.legacy)
	}
	return clean
}

// trimFolder removes leading "folder/" segments matched case-insensitively
func trimFolder(ref, folder string) string {
	prefix := folder + "/"
	for len(ref) >= len(prefix) && strings.EqualFold(ref[:len(prefix)], prefix) {
		ref = strings.TrimLeft(ref[len(prefix):], "/")
	}
	return ref
}
