package utils

import (
	"path"
	"regexp"
	"strings"
	"time"
)

// DisambiguationLayout is the minute-precision layout stamped into
// disambiguated names.
const DisambiguationLayout = "2006-01-02 15-04"

// regex to test whether a name already ends in a disambiguation stamp
var disambiguationSuffix = regexp.MustCompile(`\s*\(\d{4}-\d{2}-\d{2} \d{2}-\d{2} UTC\)$`)

// DisambiguateName returns name with a UTC timestamp suffix appended, used
// to retry a create or move that collided with an existing name. With
// keepExt set the extension is split off first and reattached after the
// suffix, so "report.pdf" becomes "report (2026-08-23 14-05 UTC).pdf". Any
// previous suffix is stripped before the new one is stamped, so repeated
// renames never stack.
func DisambiguateName(name string, keepExt bool, now time.Time) string {
	base, ext := name, ""
	if keepExt {
		base, ext = SplitExt(name)
	}
	base = StripDisambiguationSuffix(base)
	return base + " (" + now.UTC().Format(DisambiguationLayout) + " UTC)" + ext
}

// StripDisambiguationSuffix removes a timestamp suffix stamped by
// DisambiguateName, if present.
func StripDisambiguationSuffix(name string) string {
	return disambiguationSuffix.ReplaceAllString(name, "")
}

// SplitExt splits name into base and extension at the final dot. A name
// whose only dot is the leading one, like ".bashrc", counts as having no
// extension.
func SplitExt(name string) (base, ext string) {
	ext = path.Ext(name)
	if ext == name {
		return name, ""
	}
	return strings.TrimSuffix(name, ext), ext
}
