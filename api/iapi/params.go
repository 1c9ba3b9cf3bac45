package iapi

import (
	"fmt"
	"net/url"
	"reflect"

	"github.com/samber/lo"
)

// Optional query parameters for a single request.
//
// A nil value or a nil pointer means the parameter is absent and it will not be sent at all.
// Pointers are dereferenced before formatting, so `Params{"id": &id}` sends the value of id.
type Params map[string]any

// Builds the query string values, leaving out every absent parameter.
func (p Params) Values() url.Values {
	present := lo.OmitBy(p, func(_ string, v any) bool {
		return isAbsent(v)
	})

	values := url.Values{}
	for k, v := range present {
		values.Set(k, formatParam(v))
	}

	return values
}

func isAbsent(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func formatParam(v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		return fmt.Sprint(rv.Elem().Interface())
	}

	return fmt.Sprint(v)
}
