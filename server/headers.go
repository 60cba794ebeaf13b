package server

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	config "github.com/acearchive/files/server/config"
)

const (
	HeaderAllow                    = "Allow"
	HeaderRange                    = "Range"
	HeaderETag                     = "ETag"
	HeaderLastModified             = "Last-Modified"
	HeaderContentLength            = "Content-Length"
	HeaderContentType              = "Content-Type"
	HeaderContentRange             = "Content-Range"
	HeaderContentDisposition       = "Content-Disposition"
	HeaderContentEncoding          = "Content-Encoding"
	HeaderContentLanguage          = "Content-Language"
	HeaderAcceptRanges             = "Accept-Ranges"
	HeaderReprDigest               = "Repr-Digest"
	HeaderLocation                 = "Location"
	HeaderContentTypeOptions       = "X-Content-Type-Options"
	HeaderContentSecurityPolicy    = "Content-Security-Policy"
	HeaderReferrerPolicy           = "Referrer-Policy"
	HeaderStrictTransportSecurity  = "Strict-Transport-Security"
	HeaderCacheControl             = "Cache-Control"
	HeaderAccessControlAllowOrigin = "Access-Control-Allow-Origin"
	HeaderPermissionsPolicy        = "Permissions-Policy"
	HeaderRequestID                = "X-Request-Id"
)

// DefaultContentType is used when neither the store nor the metadata knows the media type
const DefaultContentType = "application/octet-stream"

// cspDirective is one Content-Security-Policy directive and its sources
type cspDirective struct {
	name    string
	sources []string
}

// contentSecurityPolicy builds the policy for the archive domain. Files on
// this domain may be user submitted, so everything not needed by the viewer
// page or by self-contained HTML artifacts is denied.
func contentSecurityPolicy(archiveDomain string) string {
	archive := "https://" + strings.TrimSuffix(archiveDomain, "/")

	directives := []cspDirective{
		{name: "default-src", sources: []string{"'none'"}},
		{name: "script-src", sources: []string{"'self'"}},
		{name: "style-src", sources: []string{"'self'", "'unsafe-inline'", archive}},
		{name: "img-src", sources: []string{"'self'", archive}},
		{name: "font-src", sources: []string{"'self'", archive}},
		{name: "media-src", sources: []string{"'self'"}},
		{name: "object-src", sources: []string{"'self'"}},
		{name: "frame-src", sources: []string{"'self'"}},
		{name: "form-action", sources: []string{"'none'"}},
		{name: "frame-ancestors", sources: []string{"'self'", "https:"}},
		{name: "base-uri", sources: []string{"'self'"}},
	}

	rendered := make([]string, len(directives))
	for i, directive := range directives {
		rendered[i] = directive.name + " " + strings.Join(directive.sources, " ")
	}
	return strings.Join(rendered, "; ")
}

// ResponseHeaders is the immutable set of hardened headers attached to every
// response. Build it once with NewResponseHeaders and share it.
type ResponseHeaders struct {
	common [][2]string
}

// NewResponseHeaders builds the common header set from configuration
func NewResponseHeaders(cfg *config.Config) *ResponseHeaders {
	delivery := cfg.DeliveryConfig

	referrerPolicy := delivery.ReferrerPolicy
	if referrerPolicy == "" {
		referrerPolicy = "strict-origin"
	}

	allowOrigin := delivery.AllowOrigin
	if allowOrigin == "" {
		allowOrigin = "*"
	}

	return &ResponseHeaders{
		common: [][2]string{
			{HeaderAcceptRanges, "bytes"},
			{HeaderContentTypeOptions, "nosniff"},
			{HeaderContentSecurityPolicy, contentSecurityPolicy(cfg.DomainConfig.ArchiveDomain)},
			{HeaderReferrerPolicy, referrerPolicy},
			{HeaderStrictTransportSecurity, fmt.Sprintf("max-age=%d; includeSubDomains; preload", int64(delivery.StrictTransportMaxAge.Seconds()))},
			{HeaderCacheControl, fmt.Sprintf("public, max-age=%d", int64(delivery.CacheMaxAge.Seconds()))},
			{HeaderAccessControlAllowOrigin, allowOrigin},
			{HeaderPermissionsPolicy, "camera=(), microphone=(), geolocation=(), display-capture=()"},
		},
	}
}

// Apply sets the common headers on h, replacing existing values
func (r *ResponseHeaders) Apply(h http.Header) {
	for _, header := range r.common {
		h.Set(header[0], header[1])
	}
}

// Get returns the value of one common header
func (r *ResponseHeaders) Get(name string) string {
	for _, header := range r.common {
		if strings.EqualFold(header[0], name) {
			return header[1]
		}
	}
	return ""
}

// Clone returns a fresh header map holding only the common headers
func (r *ResponseHeaders) Clone() http.Header {
	h := make(http.Header, len(r.common))
	r.Apply(h)
	return h
}

var (
	weekDays = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	months   = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

// LastModifiedValue formats t as an IMF-fixdate in GMT
func LastModifiedValue(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%s, %02d %s %04d %02d:%02d:%02d GMT",
		weekDays[t.Weekday()],
		t.Day(),
		months[t.Month()-1],
		t.Year(),
		t.Hour(),
		t.Minute(),
		t.Second(),
	)
}

// headersDebugRepr renders headers one per line in sorted order for debug logs
func headersDebugRepr(banner string, h http.Header) string {
	keys := make([]string, 0, len(h))
	for key := range h {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(banner)
	b.WriteString(":")
	for _, key := range keys {
		for _, value := range h[key] {
			b.WriteString("\n  ")
			b.WriteString(key)
			b.WriteString(": ")
			b.WriteString(value)
		}
	}
	return b.String()
}
