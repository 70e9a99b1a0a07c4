// Package validate holds the per-resource request validators. Each validator
// is a pure function from a decoded JSON body to a typed input or an Error
// with a stable machine-readable code. Validators stop at the first
// violation; they never aggregate.
//
// Every mutating resource checks for owner-identifying keys before anything
// else: the owning user id comes from the session alone, and a payload that
// tries to smuggle one in is rejected outright.
package validate

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

// Stable error codes shared across resources.
const (
	CodeUserIDNotAllowed = "USER_ID_NOT_ALLOWED"
	CodeInvalidJSON      = "INVALID_JSON"
)

// Error is a validation failure with a stable code. It satisfies the error
// interface so services can pass it through untouched.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func fail(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// baseOwnerKeys are rejected on every mutating payload; individual resources
// add their own aliases (authorId on ratings, userID on recommendations).
var baseOwnerKeys = []string{"userId", "user_id"}

// CheckOwnerKeys rejects payloads that carry an owner-identifying top-level
// key. Matching is exact on key names, checked before any semantic
// validation.
func CheckOwnerKeys(body map[string]interface{}, aliases ...string) *Error {
	for _, key := range append(append([]string{}, baseOwnerKeys...), aliases...) {
		if _, ok := body[key]; ok {
			return fail(CodeUserIDNotAllowed, "User ID cannot be provided in request body")
		}
	}
	return nil
}

// roundTripsAsJSON reports whether v survives a serialize->parse cycle
// unchanged. Free-form maps and lists must pass this before being accepted
// for storage.
func roundTripsAsJSON(v interface{}) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		return false
	}
	var back interface{}
	if err := json.Unmarshal(raw, &back); err != nil {
		return false
	}
	again, err := json.Marshal(back)
	if err != nil {
		return false
	}
	return reflect.DeepEqual(raw, again)
}

// coerceInt converts a decoded JSON value to an int the way the ratings
// endpoint historically did: numbers truncate toward zero, numeric strings
// parse after trimming, everything else fails.
func coerceInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return int(f), true
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.Atoi(s); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true
		}
		return 0, false
	}
	return 0, false
}

func isObject(v interface{}) bool {
	_, ok := v.(map[string]interface{})
	return ok
}

func isArray(v interface{}) bool {
	_, ok := v.([]interface{})
	return ok
}
