package server

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// RangeKind identifies the shape of a parsed Range request
type RangeKind int

const (
	// RangeWholeDocument means no Range header was sent
	RangeWholeDocument RangeKind = iota

	// RangeUntilEnd is `bytes=N-`
	RangeUntilEnd

	// RangeInclusive is `bytes=N-M`
	RangeInclusive

	// RangeSuffix is `bytes=-N`
	RangeSuffix
)

// String returns the string representation of the RangeKind
func (k RangeKind) String() string {
	switch k {
	case RangeWholeDocument:
		return "whole-document"
	case RangeUntilEnd:
		return "until-end"
	case RangeInclusive:
		return "inclusive"
	case RangeSuffix:
		return "suffix"
	default:
		return "unknown"
	}
}

// RangeRequest is a parsed single-range `Range` header. Only the fields
// relevant to Kind are set.
type RangeRequest struct {
	Kind   RangeKind
	Offset uint64
	End    uint64
	Length uint64
	Suffix uint64
}

// ByteRange is a range resolved against an object's size. End is inclusive.
type ByteRange struct {
	Start uint64
	End   uint64
	Total uint64
}

var (
	// ErrUnsupportedRangeUnit is returned for units other than bytes
	ErrUnsupportedRangeUnit = errors.New("units other than `bytes` are not supported")

	// ErrMalformedRange is returned when the header cannot be parsed
	ErrMalformedRange = errors.New("failed to parse range")

	// ErrRangeNotSatisfiable is returned when a range lies outside the object
	ErrRangeNotSatisfiable = errors.New("range is outside the bounds of the file")
)

// RangeNotSatisfiableError is returned by Resolve. Total is the size of the
// object the range was resolved against. It matches ErrRangeNotSatisfiable
// under errors.Is.
type RangeNotSatisfiableError struct {
	Total uint64
}

func (e *RangeNotSatisfiableError) Error() string {
	return ErrRangeNotSatisfiable.Error()
}

// Is reports whether target is ErrRangeNotSatisfiable
func (e *RangeNotSatisfiableError) Is(target error) bool {
	return target == ErrRangeNotSatisfiable
}

// ContentRange renders the Content-Range value sent with a 416
func (e *RangeNotSatisfiableError) ContentRange() string {
	return fmt.Sprintf("bytes */%d", e.Total)
}

// WholeDocument returns the request used when no Range header is present
func WholeDocument() RangeRequest {
	return RangeRequest{Kind: RangeWholeDocument}
}

// ParseRangeRequest parses the value of a Range header. A blank value means
// the whole document. When several ranges are listed only the first one is
// served; multipart/byteranges responses are not produced.
func ParseRangeRequest(header string) (RangeRequest, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return WholeDocument(), nil
	}

	unit, ranges, ok := strings.Cut(header, "=")
	if !ok {
		return RangeRequest{}, fmt.Errorf("%w: %q", ErrMalformedRange, header)
	}

	if strings.TrimSpace(unit) != "bytes" {
		return RangeRequest{}, ErrUnsupportedRangeUnit
	}

	first, _, _ := strings.Cut(ranges, ",")

	startText, endText, ok := strings.Cut(first, "-")
	if !ok {
		return RangeRequest{}, fmt.Errorf("%w: %q", ErrMalformedRange, header)
	}
	startText = strings.TrimSpace(startText)
	endText = strings.TrimSpace(endText)

	switch {
	case startText == "" && endText == "":
		return RangeRequest{}, fmt.Errorf("%w: %q", ErrMalformedRange, header)

	case startText == "":
		suffix, err := parseRangeBound(endText)
		if err != nil {
			return RangeRequest{}, err
		}
		return RangeRequest{Kind: RangeSuffix, Suffix: suffix}, nil

	case endText == "":
		offset, err := parseRangeBound(startText)
		if err != nil {
			return RangeRequest{}, err
		}
		return RangeRequest{Kind: RangeUntilEnd, Offset: offset}, nil

	default:
		offset, err := parseRangeBound(startText)
		if err != nil {
			return RangeRequest{}, err
		}
		end, err := parseRangeBound(endText)
		if err != nil {
			return RangeRequest{}, err
		}
		if end < offset {
			return RangeRequest{}, fmt.Errorf("%w: range end %d is before start %d", ErrMalformedRange, end, offset)
		}
		return RangeRequest{Kind: RangeInclusive, Offset: offset, End: end, Length: end - offset + 1}, nil
	}
}

func parseRangeBound(text string) (uint64, error) {
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a byte position", ErrMalformedRange, text)
		}
	}

	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a byte position", ErrMalformedRange, text)
	}
	return n, nil
}

// IsPartial reports whether the request asks for less than the whole document
func (r RangeRequest) IsPartial() bool {
	return r.Kind != RangeWholeDocument
}

// String renders the request back into header form
func (r RangeRequest) String() string {
	switch r.Kind {
	case RangeUntilEnd:
		return fmt.Sprintf("bytes=%d-", r.Offset)
	case RangeInclusive:
		return fmt.Sprintf("bytes=%d-%d", r.Offset, r.End)
	case RangeSuffix:
		return fmt.Sprintf("bytes=-%d", r.Suffix)
	default:
		return ""
	}
}

// Resolve returns the bytes the request selects from an object of the given
// size. An inclusive end past the object is clamped, as is a suffix longer
// than the object. Offsets at or past the end and empty suffixes are
// unsatisfiable.
func (r RangeRequest) Resolve(total uint64) (ByteRange, error) {
	switch r.Kind {
	case RangeWholeDocument:
		if total == 0 {
			return ByteRange{Total: 0}, nil
		}
		return ByteRange{Start: 0, End: total - 1, Total: total}, nil

	case RangeUntilEnd:
		if r.Offset >= total {
			return ByteRange{}, &RangeNotSatisfiableError{Total: total}
		}
		return ByteRange{Start: r.Offset, End: total - 1, Total: total}, nil

	case RangeInclusive:
		if r.Offset >= total {
			return ByteRange{}, &RangeNotSatisfiableError{Total: total}
		}
		end := r.End
		if end >= total {
			end = total - 1
		}
		return ByteRange{Start: r.Offset, End: end, Total: total}, nil

	case RangeSuffix:
		if r.Suffix == 0 || total == 0 {
			return ByteRange{}, &RangeNotSatisfiableError{Total: total}
		}
		suffix := r.Suffix
		if suffix > total {
			suffix = total
		}
		return ByteRange{Start: total - suffix, End: total - 1, Total: total}, nil

	default:
		return ByteRange{}, fmt.Errorf("unknown range kind %d", r.Kind)
	}
}

// Length returns the number of bytes in the resolved range
func (b ByteRange) Length() uint64 {
	if b.Total == 0 {
		return 0
	}
	return b.End - b.Start + 1
}

// ContentRange renders the Content-Range header value
func (b ByteRange) ContentRange() string {
	return fmt.Sprintf("bytes %d-%d/%d", b.Start, b.End, b.Total)
}

// IsWhole reports whether the range covers the entire object
func (b ByteRange) IsWhole() bool {
	return b.Start == 0 && b.Length() == b.Total
}
