package propath

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// maxSafeIndex is the largest value usable as an array index, one
// below 2^53 so numeric string keys round-trip without precision loss.
const maxSafeIndex = 1<<53 - 1

// IsIndex reports whether key can serve as a non-negative integer
// array index: an integer kind, an integral float, or a string of
// decimal digits with no sign and no leading zero (the literal "0"
// excepted), all below 2^53-1.
func IsIndex(key any) bool {
	switch k := key.(type) {
	case int:
		return k >= 0 && int64(k) < maxSafeIndex
	case int8:
		return k >= 0
	case int16:
		return k >= 0
	case int32:
		return k >= 0
	case int64:
		return k >= 0 && k < maxSafeIndex
	case uint:
		return uint64(k) < maxSafeIndex
	case uint8, uint16, uint32:
		return true
	case uint64:
		return k < maxSafeIndex
	case float32:
		return isIndexFloat(float64(k))
	case float64:
		return isIndexFloat(k)
	case string:
		return isIndexString(k)
	case json.Number:
		return isIndexString(string(k))
	}
	return false
}

func isIndexFloat(f float64) bool {
	return f >= 0 && f < maxSafeIndex && f == math.Trunc(f)
}

// isIndexString is the string form of the index test: decimal digits
// only, no leading zero except the literal "0".
func isIndexString(s string) bool {
	// 2^53-1 has 16 digits, so anything longer cannot be in range.
	if s == "" || len(s) > 16 {
		return false
	}
	if s[0] == '0' {
		return s == "0"
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	return err == nil && n < maxSafeIndex
}

// toIndex converts an index-classified key to a machine int. It
// accepts exactly the values IsIndex accepts.
func toIndex(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		if IsIndex(k) {
			return k, true
		}
	case int8:
		if k >= 0 {
			return int(k), true
		}
	case int16:
		if k >= 0 {
			return int(k), true
		}
	case int32:
		if k >= 0 {
			return int(k), true
		}
	case int64:
		if IsIndex(k) {
			return int(k), true
		}
	case uint:
		if IsIndex(k) {
			return int(k), true
		}
	case uint8:
		return int(k), true
	case uint16:
		return int(k), true
	case uint32:
		return int(k), true
	case uint64:
		if IsIndex(k) {
			return int(k), true
		}
	case float32:
		if isIndexFloat(float64(k)) {
			return int(k), true
		}
	case float64:
		if isIndexFloat(k) {
			return int(k), true
		}
	case string:
		if isIndexString(k) {
			n, _ := strconv.ParseInt(k, 10, 64)
			return int(n), true
		}
	case json.Number:
		return toIndex(string(k))
	}
	return 0, false
}

// toKey canonicalizes a key into its string property-key form.
// Negative zero keeps its sign so it stays distinguishable from "0".
func toKey(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case int:
		return strconv.Itoa(k)
	case int8:
		return strconv.FormatInt(int64(k), 10)
	case int16:
		return strconv.FormatInt(int64(k), 10)
	case int32:
		return strconv.FormatInt(int64(k), 10)
	case int64:
		return strconv.FormatInt(k, 10)
	case uint:
		return strconv.FormatUint(uint64(k), 10)
	case uint8:
		return strconv.FormatUint(uint64(k), 10)
	case uint16:
		return strconv.FormatUint(uint64(k), 10)
	case uint32:
		return strconv.FormatUint(uint64(k), 10)
	case uint64:
		return strconv.FormatUint(k, 10)
	case float32:
		return toKey(float64(k))
	case float64:
		if k == 0 && math.Signbit(k) {
			return "-0"
		}
		return strconv.FormatFloat(k, 'f', -1, 64)
	case json.Number:
		return k.String()
	}
	return fmt.Sprint(key)
}
