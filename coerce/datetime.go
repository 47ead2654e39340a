package coerce

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/zero-day-ai/datafilter/filtererr"
	"github.com/zero-day-ai/datafilter/value"
)

// dateTimeLayouts are tried in order when no explicit format is given.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
	time.UnixDate,
	time.RubyDate,
	"02.01.2006",
	"02.01.2006 15:04:05",
}

// GetDateTime returns nil for null input, the empty string, the string "0"
// and the integer 0. Anything else is passed to RequireDateTime.
func GetDateTime(v value.Value, opts ...Option) (*time.Time, error) {
	switch v.Kind() {
	case value.KindNull:
		return nil, nil
	case value.KindString:
		if s, _ := v.AsString(); s == "" || s == "0" {
			return nil, nil
		}
	case value.KindInt:
		if n, _ := v.AsInt(); n == 0 {
			return nil, nil
		}
	}

	t, err := RequireDateTime(v, opts...)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// RequireDateTime coerces v to a time.
//
// With WithFormat, only strings are accepted and they must match the layout
// exactly. Without a format, strings are matched against a list of common
// layouts and the keywords "now", "today", "yesterday", "tomorrow" and
// "@<unix seconds>"; integers are read as Unix seconds. The empty string and
// "0" are always rejected.
//
// Strings without a zone are read in the InLocation location, UTC by default.
// With InLocation the result is also converted into that location. A failed
// parse is reported as a *filtererr.WrongTypeError whose Previous holds the
// parser error.
func RequireDateTime(v value.Value, opts ...Option) (time.Time, error) {
	o := newOptions(opts)

	expected := "datetime (int or string)"
	if o.format != "" {
		expected = "datetime string"
	}

	loc := o.location
	if loc == nil {
		loc = time.UTC
	}

	t, ok, cause := parseDateTime(v, o, loc)
	if !ok {
		wrongType := filtererr.NewWrongType(expected, v)
		if cause != nil {
			wrongType.WithPrevious(cause)
		}
		return time.Time{}, wrongType
	}

	if o.location != nil {
		t = t.In(o.location)
	}
	return t, nil
}

func parseDateTime(v value.Value, o options, loc *time.Location) (time.Time, bool, error) {
	switch v.Kind() {
	case value.KindString:
		s, _ := v.AsString()
		if s == "" || s == "0" {
			return time.Time{}, false, nil
		}
		if o.format != "" {
			t, err := time.ParseInLocation(o.format, s, loc)
			if err != nil {
				return time.Time{}, false, err
			}
			return t, true, nil
		}
		return parseDateTimeString(s, o.now, loc)
	case value.KindInt:
		if o.format != "" {
			return time.Time{}, false, nil
		}
		n, _ := v.AsInt()
		return time.Unix(n, 0).UTC(), true, nil
	default:
		return time.Time{}, false, nil
	}
}

func parseDateTimeString(s string, now func() time.Time, loc *time.Location) (time.Time, bool, error) {
	switch strings.ToLower(s) {
	case "now":
		return now().In(loc), true, nil
	case "today":
		return midnight(now(), loc, 0), true, nil
	case "yesterday":
		return midnight(now(), loc, -1), true, nil
	case "tomorrow":
		return midnight(now(), loc, 1), true, nil
	}

	if epoch, found := strings.CutPrefix(s, "@"); found {
		n, err := strconv.ParseInt(epoch, 10, 64)
		if err != nil {
			return time.Time{}, false, err
		}
		return time.Unix(n, 0).UTC(), true, nil
	}

	var lastErr error
	for _, layout := range dateTimeLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			lastErr = err
			continue
		}
		if strings.Contains(layout, "MST") && !zoneResolved(t, loc) {
			name, _ := t.Zone()
			return time.Time{}, false, fmt.Errorf("parse %q: unknown time zone abbreviation %s", s, name)
		}
		return t, true, nil
	}
	return time.Time{}, false, lastErr
}

// zoneResolved reports whether the zone abbreviation parsed into t carries a
// real offset. The time package gives abbreviations it cannot resolve a zero
// offset.
func zoneResolved(t time.Time, loc *time.Location) bool {
	name, offset := t.Zone()
	if offset != 0 {
		return true
	}
	switch name {
	case "UTC", "GMT", "UT", "Z":
		return true
	}
	locName, locOffset := t.In(loc).Zone()
	return locName == name && locOffset == 0
}

func midnight(now time.Time, loc *time.Location, days int) time.Time {
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d+days, 0, 0, 0, 0, loc)
}
