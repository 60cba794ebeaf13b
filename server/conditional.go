package server

import (
	"net/http"
	"strings"
)

const weakValidatorPrefix = "W/"

// conditionalHeaders are matched case-insensitively
var conditionalHeaders = []string{"If-Match", "If-None-Match"}

// NormalizeConditionalHeaders returns a copy of the headers with the weak
// validator marker stripped from If-Match and If-None-Match. Object stores
// only issue strong ETags, so a weak validator from a client would otherwise
// never match. Every other header is copied as is, including the spelling of
// its key.
func NormalizeConditionalHeaders(headers http.Header) http.Header {
	normalized := make(http.Header, len(headers))

	for key, values := range headers {
		if !isConditionalHeader(key) {
			normalized[key] = append([]string(nil), values...)
			continue
		}

		stripped := make([]string, len(values))
		for i, value := range values {
			stripped[i] = stripWeakValidators(value)
		}
		normalized[key] = stripped
	}

	return normalized
}

func isConditionalHeader(key string) bool {
	for _, name := range conditionalHeaders {
		if strings.EqualFold(key, name) {
			return true
		}
	}
	return false
}

func stripWeakValidators(value string) string {
	if !strings.Contains(value, ",") {
		return strings.TrimPrefix(strings.TrimSpace(value), weakValidatorPrefix)
	}

	tags := strings.Split(value, ",")
	for i, tag := range tags {
		tags[i] = strings.TrimPrefix(strings.TrimSpace(tag), weakValidatorPrefix)
	}
	return strings.Join(tags, ", ")
}

// Conditions holds the preconditions of a read
type Conditions struct {
	IfMatch     []string
	IfNoneMatch []string
}

// ConditionsFromHeaders extracts preconditions from already normalized headers
func ConditionsFromHeaders(headers http.Header) Conditions {
	var conditions Conditions

	for key, values := range headers {
		switch {
		case strings.EqualFold(key, "If-Match"):
			conditions.IfMatch = append(conditions.IfMatch, splitETagList(values)...)
		case strings.EqualFold(key, "If-None-Match"):
			conditions.IfNoneMatch = append(conditions.IfNoneMatch, splitETagList(values)...)
		}
	}

	return conditions
}

func splitETagList(values []string) []string {
	var tags []string
	for _, value := range values {
		for _, tag := range strings.Split(value, ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

// IsZero reports whether no preconditions were sent
func (c Conditions) IsZero() bool {
	return len(c.IfMatch) == 0 && len(c.IfNoneMatch) == 0
}

// NotModified reports whether a read of an object with the given ETag should
// answer with metadata only. A matching If-None-Match or a failed If-Match
// both suppress the body.
func (c Conditions) NotModified(etag string) bool {
	if len(c.IfMatch) > 0 && !etagListContains(c.IfMatch, etag) {
		return true
	}
	if len(c.IfNoneMatch) > 0 && etagListContains(c.IfNoneMatch, etag) {
		return true
	}
	return false
}

func etagListContains(tags []string, etag string) bool {
	etag = unquoteETag(etag)
	for _, tag := range tags {
		if tag == "*" || unquoteETag(tag) == etag {
			return true
		}
	}
	return false
}

func unquoteETag(etag string) string {
	etag = strings.TrimPrefix(etag, weakValidatorPrefix)
	return strings.Trim(etag, `"`)
}

// QuoteETag returns the strong, quoted form of an ETag
func QuoteETag(etag string) string {
	return `"` + unquoteETag(etag) + `"`
}
