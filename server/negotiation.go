package server

import (
	"mime"
	"sort"
	"strconv"
	"strings"
)

const htmlMediaType = "text/html"

// mediaRange is one entry of an Accept header
type mediaRange struct {
	mediaType string
	q         float64
}

// parseAccept parses the Accept header values into media ranges sorted by
// descending weight. Ranges with equal weight keep their order. Malformed
// entries are skipped.
func parseAccept(values []string) []mediaRange {
	var ranges []mediaRange
	for _, value := range values {
		for _, entry := range strings.Split(value, ",") {
			entry = strings.TrimSpace(entry)
			if entry == "" {
				continue
			}

			mediaType, params, err := mime.ParseMediaType(entry)
			if err != nil {
				continue
			}

			q := 1.0
			if qValue, ok := params["q"]; ok {
				parsed, err := strconv.ParseFloat(qValue, 64)
				if err != nil {
					continue
				}
				q = parsed
			}

			ranges = append(ranges, mediaRange{mediaType: mediaType, q: q})
		}
	}

	sort.SliceStable(ranges, func(i, j int) bool {
		return ranges[i].q > ranges[j].q
	})
	return ranges
}

// PrefersHTML reports whether a client sending these Accept values would
// rather have an HTML page than a file of the given media type. HTML wins
// when it is acceptable and the file's own type is either not listed or
// ranked below it.
func PrefersHTML(accept []string, fileMediaType string) bool {
	fileMediaType = strings.ToLower(fileMediaType)
	if parsed, _, err := mime.ParseMediaType(fileMediaType); err == nil {
		fileMediaType = parsed
	}

	htmlRank, fileRank := -1, -1
	for i, r := range parseAccept(accept) {
		if r.q <= 0 {
			continue
		}
		if r.mediaType == htmlMediaType && htmlRank < 0 {
			htmlRank = i
		}
		if r.mediaType == fileMediaType && fileRank < 0 {
			fileRank = i
		}
	}

	if htmlRank < 0 {
		return false
	}
	return fileRank < 0 || htmlRank < fileRank
}
