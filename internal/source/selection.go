package source

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// ParseSelection parses a "start:end" byte-offset pair into a Span for the
// given file. Offsets are half-open: "10:20" selects bytes 10..19.
func ParseSelection(sel string, file FileID) (Span, error) {
	startStr, endStr, ok := strings.Cut(sel, ":")
	if !ok {
		return NoSpan, fmt.Errorf("selection %q: expected start:end byte offsets", sel)
	}

	start, err := parseOffset(startStr)
	if err != nil {
		return NoSpan, fmt.Errorf("selection %q: %w", sel, err)
	}
	end, err := parseOffset(endStr)
	if err != nil {
		return NoSpan, fmt.Errorf("selection %q: %w", sel, err)
	}
	if end < start {
		return NoSpan, fmt.Errorf("selection %q: end precedes start", sel)
	}

	return Span{File: file, Start: start, End: end}, nil
}

func parseOffset(s string) (uint32, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad offset %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative offset %d", n)
	}
	off, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0, fmt.Errorf("offset %d overflows: %w", n, err)
	}
	return off, nil
}
