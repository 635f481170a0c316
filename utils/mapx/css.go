// File: css.go
// Title: CSS Custom Properties
// Description: Serialisation of flat or shallow objects into CSS custom
//              property declarations.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-02
// Modified: 2026-10-02
//
// Change History:
// - 2026-10-02 v0.3.0: Initial implementation

package mapx

import (
	"fmt"
	"slices"
	"strings"

	mdwerrors "github.com/msto63/datakit/core/errors"
	"github.com/msto63/datakit/core/result"
	"github.com/msto63/datakit/utils/dotpath"
	"github.com/msto63/datakit/utils/stringx"
	"github.com/msto63/datakit/utils/typex"
)

const opMapToCSSVars = "mapToCssVars"

// MapToCSSVars renders obj as space separated "--<prefix><key>: <value>;"
// declarations in key order. Values that are objects are flattened one level
// into "<key>-<child>" names; slices are rendered as comma lists and nil
// values are skipped.
func MapToCSSVars(obj any, prefix ...string) result.Result[string] {
	if !IsObject(obj) {
		return result.Err[string](mdwerrors.InvalidType(mdwerrors.GroupObjects, opMapToCSSVars, obj, expectedObject))
	}
	p := strings.Join(prefix, "")

	var decls []string
	for _, key := range sortedKeys(obj) {
		value, _ := dotpath.Lookup(obj, key)
		if typex.IsNullish(value) {
			continue
		}
		if !IsObject(value) {
			rendered := cssValue(value)
			if rendered.IsErr() {
				return result.Err[string](rendered.Err())
			}
			decls = append(decls, declaration(p+key, rendered.MustUnwrap()))
			continue
		}

		for _, child := range sortedKeys(value) {
			nested, _ := dotpath.Lookup(value, child)
			if typex.IsNullish(nested) {
				continue
			}
			if IsObject(nested) {
				return result.Err[string](mdwerrors.InvalidInput(mdwerrors.GroupObjects, opMapToCSSVars, nil,
					fmt.Sprintf("Property %q is nested more than one level", key+"."+child)))
			}
			rendered := cssValue(nested)
			if rendered.IsErr() {
				return result.Err[string](rendered.Err())
			}
			decls = append(decls, declaration(p+key+"-"+child, rendered.MustUnwrap()))
		}
	}
	return result.Ok(strings.Join(decls, " "))
}

func declaration(name, value string) string {
	return "--" + name + ": " + value + ";"
}

func cssValue(v any) result.Result[string] {
	if typex.IsArray(v) {
		return stringx.ToCommaList(v)
	}
	return result.Ok(fmt.Sprint(v))
}

func sortedKeys(obj any) []string {
	keys, _ := dotpath.Keys(obj)
	keys = slices.Clone(keys)
	slices.Sort(keys)
	return keys
}
