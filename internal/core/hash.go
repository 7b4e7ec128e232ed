package core

import "strconv"

// HashContent is a polynomial rolling hash over the bytes, stable across
// runs and platforms. It keys ETags and the export manifest.
func HashContent(content []byte) string {
	var result uint64
	for _, b := range content {
		result = (result*31 + uint64(b)) % 1000000007
	}
	return strconv.FormatUint(result, 10)
}

// ETag wraps a content hash as a strong HTTP entity tag.
func ETag(content []byte) string {
	return `"` + HashContent(content) + `"`
}
