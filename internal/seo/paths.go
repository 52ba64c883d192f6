package seo

import (
	"path"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// IndexMarker is the file stem that represents the implicit root of a directory.
const IndexMarker = "index"

// contentExtensions are stripped from the last path segment.
var contentExtensions = map[string]struct{}{
	".md":       {},
	".markdown": {},
	".mdx":      {},
	".html":     {},
	".htm":      {},
}

// Normalize converts a content path into a root-relative URL path under pathBase.
//
// The content-file extension and any trailing index segment are removed, the
// base is prefixed once, and empty segments collapse. The top-level index maps
// to pathBase + "/". Absolute inputs that already carry the base are not
// prefixed again, so Normalize(b, Normalize(b, p)) == Normalize(b, p).
func Normalize(pathBase, relativePath string) string {
	base := splitSegments(pathBase)
	return joinURLPath(base, baseFreeSegments(base, relativePath))
}

// CanonicalURL returns the absolute canonical URL of a content page.
func CanonicalURL(site Site, relativePath string) string {
	return strings.TrimRight(site.HostBase, "/") + Normalize(site.PathBase, relativePath)
}

// CleanBase returns pathBase as "" or "/seg[/seg...]" without a trailing slash.
func CleanBase(pathBase string) string {
	segs := splitSegments(pathBase)
	if len(segs) == 0 {
		return ""
	}
	return "/" + strings.Join(segs, "/")
}

// IsIndexSegment reports whether seg is the index marker, with or without an extension.
func IsIndexSegment(seg string) bool {
	if seg == IndexMarker {
		return true
	}
	return strings.TrimSuffix(seg, path.Ext(seg)) == IndexMarker
}

// contentPathSegments returns the base-free, extension-free segments of a
// content path and whether it named an index page.
func contentPathSegments(relativePath string) (segs []string, isIndex bool) {
	segs = splitSegments(relativePath)
	if len(segs) == 0 {
		return nil, true
	}
	isIndex = IsIndexSegment(stripContentExtension(segs[len(segs)-1]))
	return trimIndexAndExtension(segs), isIndex
}

// baseFreeSegments strips base from an absolute p that already carries it and
// cleans what remains.
func baseFreeSegments(base []string, p string) []string {
	segs := splitSegments(p)
	if isAbsolute(p) && hasSegmentPrefix(segs, base) {
		segs = segs[len(base):]
	}
	return trimIndexAndExtension(segs)
}

// trimIndexAndExtension drops trailing index segments and content extensions.
// A stem left as "." or ".." is resolved the way splitSegments resolves it.
func trimIndexAndExtension(segs []string) []string {
	for len(segs) > 0 {
		last := segs[len(segs)-1]
		if IsIndexSegment(last) {
			segs = segs[:len(segs)-1]
			continue
		}
		stripped := stripContentExtension(last)
		if stripped == last {
			break
		}
		switch stripped {
		case "", ".":
			segs = segs[:len(segs)-1]
			continue
		case "..":
			segs = segs[:len(segs)-1]
			if len(segs) > 0 {
				segs = segs[:len(segs)-1]
			}
			continue
		}
		segs[len(segs)-1] = stripped
	}
	return segs
}

func stripContentExtension(seg string) string {
	ext := strings.ToLower(path.Ext(seg))
	if _, ok := contentExtensions[ext]; ok {
		return seg[:len(seg)-len(ext)]
	}
	return seg
}

// splitSegments splits p on slashes after NFC normalization, dropping empty and
// "." segments and resolving ".." against the preceding segment.
func splitSegments(p string) []string {
	p = norm.NFC.String(strings.ReplaceAll(p, `\`, "/"))
	parts := strings.Split(p, "/")
	segs := make([]string, 0, len(parts))
	for _, part := range parts {
		switch part {
		case "", ".":
			continue
		case "..":
			if len(segs) > 0 {
				segs = segs[:len(segs)-1]
			}
			continue
		}
		segs = append(segs, part)
	}
	return segs
}

func isAbsolute(p string) bool {
	return strings.HasPrefix(p, "/") || strings.HasPrefix(p, `\`)
}

func hasSegmentPrefix(segs, prefix []string) bool {
	if len(prefix) == 0 || len(segs) < len(prefix) {
		return false
	}
	for i := range prefix {
		if segs[i] != prefix[i] {
			return false
		}
	}
	return true
}

func joinURLPath(base, segs []string) string {
	var b strings.Builder
	for _, s := range base {
		b.WriteByte('/')
		b.WriteString(s)
	}
	if len(segs) == 0 {
		b.WriteByte('/')
		return b.String()
	}
	for _, s := range segs {
		b.WriteByte('/')
		b.WriteString(s)
	}
	return b.String()
}
