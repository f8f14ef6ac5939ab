package box

import (
	"math"
	"reflect"
	"strconv"
)

// Attrs is the attribute map carried by every item and by the account.
// Values are the decoded JSON forms handed over by the Transport: strings,
// numbers, bools, nested Attrs, slices, and materialized Item references.
type Attrs map[string]any

// Wire attribute names. itemCollection and parentFolder only ever appear in
// raw transport payloads; normalization rewrites them to children and parent
// before anything is cached.
const (
	attrID             = "id"
	attrFolderID       = "folder_id"
	attrType           = "type"
	attrName           = "name"
	attrDescription    = "description"
	attrSize           = "size"
	attrEtag           = "etag"
	attrCreatedAt      = "created_at"
	attrModifiedAt     = "modified_at"
	attrParent         = "parent"
	attrParentFolder   = "parent_folder"
	attrChildren       = "children"
	attrItemCollection = "item_collection"
	attrEntries        = "entries"
	attrTotalCount     = "total_count"
	attrSharedLink     = "shared_link"
	attrMessage        = "message"
	attrSha1           = "sha1"
	attrVersions       = "versions"
)

// asAttrs returns v as an Attrs map. Raw JSON decoding produces
// map[string]any, normalized payloads carry Attrs, so both are accepted.
func asAttrs(v any) (Attrs, bool) {
	switch m := v.(type) {
	case Attrs:
		return m, true
	case map[string]any:
		return Attrs(m), true
	default:
		return nil, false
	}
}

func asSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

// stringValue returns v as a string when it is one.
func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// idString renders an identifier attribute as its canonical string form.
// Some payload shapes carry numeric ids, so whole numbers are accepted and
// rendered in decimal.
func idString(v any) (string, bool) {
	switch id := v.(type) {
	case string:
		return id, true
	case float64:
		if id == math.Trunc(id) {
			return strconv.FormatInt(int64(id), 10), true
		}
		return "", false
	case int:
		return strconv.Itoa(id), true
	case int64:
		return strconv.FormatInt(id, 10), true
	default:
		return "", false
	}
}

// intValue returns v as an int, accepting the numeric types JSON decoding
// and callers hand over.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// merge upserts every pair of in into a. Existing keys are overwritten,
// keys absent from in are left untouched.
func (a Attrs) merge(in Attrs) {
	for k, v := range in {
		a[k] = v
	}
}

// equalValues compares a criteria value against a cached attribute value.
// Numeric values compare by magnitude regardless of their Go type, item
// type tags compare against their string form.
func equalValues(want, got any) bool {
	if want == nil || got == nil {
		return want == got
	}
	if t, ok := want.(ItemType); ok {
		want = string(t)
	}
	if t, ok := got.(ItemType); ok {
		got = string(t)
	}
	if wf, ok := floatValue(want); ok {
		if gf, gok := floatValue(got); gok {
			return wf == gf
		}
		return false
	}
	return reflect.DeepEqual(want, got)
}

func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
