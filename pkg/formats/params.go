package formats

import (
	"strconv"
	"strings"
)

// paramParser converts a single whitespace-delimited token.
type paramParser[T any] func(token string) (T, bool)

func parseFloat(token string) (float32, bool) {
	v, err := strconv.ParseFloat(token, 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}

func parseInt(token string) (int, bool) {
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseString(token string) (string, bool) {
	return token, true
}

// scanParams converts the tokens of params in order and stops at the first
// token that does not convert. The rejected token is returned as bad.
func scanParams[T any](params string, parse paramParser[T]) (values []T, bad string) {
	for _, token := range strings.Fields(params) {
		v, ok := parse(token)
		if !ok {
			return values, token
		}
		values = append(values, v)
	}
	return values, ""
}

// readParams reads between minParams and maxParams values from the current
// line of f and pads the result to maxParams with def. On a count violation
// an error is recorded and ok is false.
func readParams[T any](d *Diagnostics, f *sourceFile, minParams, maxParams int, def T, parse paramParser[T]) (values []T, ok bool) {
	values, bad := scanParams(f.params, parse)
	if bad != "" {
		d.warnf(f, "Malformed parameter \"%s\" ignored along with the rest of the line", bad)
	}

	n := len(values)
	if n < minParams || n > maxParams {
		if minParams != maxParams {
			d.errorf(f, "'%s' does not take %d parameter(s) (expected %d-%d)", f.keyword, n, minParams, maxParams)
		} else {
			d.errorf(f, "'%s' does not take %d parameter(s) (expected %d)", f.keyword, n, minParams)
		}
		return nil, false
	}

	for len(values) < maxParams {
		values = append(values, def)
	}
	return values, true
}

// readParamsAtLeast reads at least minParams values from the current line of f.
func readParamsAtLeast[T any](d *Diagnostics, f *sourceFile, minParams int, parse paramParser[T]) (values []T, ok bool) {
	values, bad := scanParams(f.params, parse)
	if bad != "" {
		d.warnf(f, "Malformed parameter \"%s\" ignored along with the rest of the line", bad)
	}

	if len(values) < minParams {
		d.errorf(f, "'%s' does not take %d parameter(s) (expected %d)", f.keyword, len(values), minParams)
		return nil, false
	}
	return values, true
}
