// Package version implements the conda version grammar used to validate
// version bounds taken from foreign manifests.
//
// A version is an optional numeric epoch followed by "!", a sequence of
// segments separated by ".", "-" or "_", and an optional local part after
// "+". Each segment is a run of numeric and alphabetic components, e.g.
// "1.2.3.4", "2.0rc1", "1.0.post1" or "1!2.0+cuda11".
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidVersion indicates a literal outside the version grammar.
var ErrInvalidVersion = errors.New("invalid version")

// Version is a parsed version literal.
type Version struct {
	raw      string
	epoch    uint64
	segments []segment
	local    []segment
}

type segment []component

// component is either numeric or alphabetic.
type component struct {
	num   uint64
	str   string
	isNum bool
}

// Parse parses raw. Letters are case-insensitive; the first component of the
// version must be numeric.
func Parse(raw string) (Version, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return Version{}, invalid(raw, "empty version")
	}

	v := Version{raw: raw}
	if head, rest, ok := strings.Cut(s, "!"); ok {
		epoch, err := strconv.ParseUint(head, 10, 64)
		if err != nil {
			return Version{}, invalid(raw, "epoch must be a number")
		}
		v.epoch = epoch
		s = rest
	}

	public, local, hasLocal := strings.Cut(s, "+")

	var err error
	if v.segments, err = parseSegments(public); err != nil {
		return Version{}, invalid(raw, err.Error())
	}
	if !v.segments[0][0].isNum {
		return Version{}, invalid(raw, "must start with a number")
	}
	if hasLocal {
		if v.local, err = parseSegments(local); err != nil {
			return Version{}, invalid(raw, "local version: "+err.Error())
		}
	}
	return v, nil
}

func invalid(raw, reason string) error {
	return fmt.Errorf("version: parse %q: %w: %s", raw, ErrInvalidVersion, reason)
}

func parseSegments(s string) ([]segment, error) {
	if s == "" {
		return nil, errors.New("no segments")
	}

	var out []segment
	for {
		i := strings.IndexAny(s, ".-_")
		part := s
		if i >= 0 {
			part = s[:i]
		}
		if part == "" {
			return nil, errors.New("empty segment")
		}

		seg, err := parseSegment(part)
		if err != nil {
			return nil, err
		}
		out = append(out, seg)

		if i < 0 {
			return out, nil
		}
		s = s[i+1:]
	}
}

func parseSegment(s string) (segment, error) {
	var seg segment
	for s != "" {
		n := runLength(s, isDigit)
		if n > 0 {
			num, err := strconv.ParseUint(s[:n], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("number %q out of range", s[:n])
			}
			seg = append(seg, component{num: num, isNum: true})
			s = s[n:]
			continue
		}

		n = runLength(s, isLetter)
		if n == 0 {
			return nil, fmt.Errorf("unexpected character %q", s[0])
		}
		seg = append(seg, component{str: s[:n]})
		s = s[n:]
	}
	return seg, nil
}

func runLength(s string, pred func(byte) bool) int {
	n := 0
	for n < len(s) && pred(s[n]) {
		n++
	}
	return n
}

func isDigit(c byte) bool  { return '0' <= c && c <= '9' }
func isLetter(c byte) bool { return 'a' <= c && c <= 'z' }
