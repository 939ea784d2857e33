// Package jsondiff computes RFC 6902 JSON Patches between trip snapshots so
// clients can apply mutation deltas instead of re-fetching session state.
package jsondiff

import (
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

var emptyPatch = []byte("[]")

// Between marshals a and b and returns the patch transforming a into b,
// serialized as a JSON array of ops.
func Between(a, b interface{}) ([]byte, error) {
	var av, bv interface{}

	ab, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(ab, &av); err != nil {
		return nil, err
	}

	bb, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(bb, &bv); err != nil {
		return nil, err
	}

	ops := Diff(av, bv, "")
	if len(ops) == 0 {
		return emptyPatch, nil
	}
	return json.Marshal(ops)
}

// Diff computes the patch that transforms a into b. Both values should come
// from json.Unmarshal into interface{}. Path is "" for the root document.
func Diff(a, b interface{}, path string) []map[string]interface{} {
	if a == nil && b == nil {
		return nil
	}
	if a == nil || b == nil {
		return []map[string]interface{}{replaceOp(path, b)}
	}

	aMap, aIsMap := a.(map[string]interface{})
	bMap, bIsMap := b.(map[string]interface{})
	if aIsMap && bIsMap {
		return diffObjects(aMap, bMap, path)
	}

	aArr, aIsArr := a.([]interface{})
	bArr, bIsArr := b.([]interface{})
	if aIsArr && bIsArr {
		return diffArrays(aArr, bArr, path)
	}

	if a != b {
		return []map[string]interface{}{replaceOp(path, b)}
	}

	return nil
}

func diffObjects(a, b map[string]interface{}, path string) []map[string]interface{} {
	var ops []map[string]interface{}

	for k := range a {
		if _, ok := b[k]; !ok {
			ops = append(ops, removeOp(path+"/"+escapeKey(k)))
		}
	}

	for k, bv := range b {
		childPath := path + "/" + escapeKey(k)
		av, inA := a[k]
		if !inA {
			ops = append(ops, addOp(childPath, bv))
		} else {
			ops = append(ops, Diff(av, bv, childPath)...)
		}
	}

	return ops
}

func diffArrays(a, b []interface{}, path string) []map[string]interface{} {
	var ops []map[string]interface{}

	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}

	for i := 0; i < minLen; i++ {
		ops = append(ops, Diff(a[i], b[i], path+"/"+strconv.Itoa(i))...)
	}

	// Removals in reverse order to keep indices valid.
	for i := len(a) - 1; i >= minLen; i-- {
		ops = append(ops, removeOp(path+"/"+strconv.Itoa(i)))
	}

	for i := minLen; i < len(b); i++ {
		ops = append(ops, addOp(path+"/"+strconv.Itoa(i), b[i]))
	}

	return ops
}

func replaceOp(path string, value interface{}) map[string]interface{} {
	return map[string]interface{}{"op": "replace", "path": path, "value": value}
}

func addOp(path string, value interface{}) map[string]interface{} {
	return map[string]interface{}{"op": "add", "path": path, "value": value}
}

func removeOp(path string) map[string]interface{} {
	return map[string]interface{}{"op": "remove", "path": path}
}

// escapeKey escapes a JSON Pointer token per RFC 6901.
func escapeKey(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}
