package promotion

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCouponCode  = errors.New("invalid coupon code format")
	ErrInvalidTimeFormat  = errors.New("time of day must match HH:MM")
	ErrWrappingTimeWindow = errors.New("time window must not wrap past midnight")
	ErrHalfOpenTimeWindow = errors.New("time window requires both start and end")
)

var (
	couponCodeRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{3,32}$`)
	timeOfDayRegex  = regexp.MustCompile(`^([0-9]{2}):([0-9]{2})$`)
)

// Code is a coupon activation code. Matching against a supplied code is
// case-sensitive and exact; the only normalization anywhere is a trim.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(code)
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

func (c Code) Matches(supplied string) bool {
	return string(c) == strings.TrimSpace(supplied)
}

// TimeWindow restricts a promotion to a daily interval, inclusive on both
// ends. Windows never wrap past midnight; a wrapping definition is rejected
// at catalog-write time.
type TimeWindow struct {
	startMin int
	endMin   int
}

func parseTimeOfDay(s string) (int, error) {
	m := timeOfDayRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, ErrInvalidTimeFormat
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	if hh > 23 || mm > 59 {
		return 0, ErrInvalidTimeFormat
	}
	return hh*60 + mm, nil
}

func NewTimeWindow(start, end string) (TimeWindow, error) {
	startMin, err := parseTimeOfDay(start)
	if err != nil {
		return TimeWindow{}, err
	}
	endMin, err := parseTimeOfDay(end)
	if err != nil {
		return TimeWindow{}, err
	}
	if endMin < startMin {
		return TimeWindow{}, ErrWrappingTimeWindow
	}
	return TimeWindow{startMin: startMin, endMin: endMin}, nil
}

func (w TimeWindow) Contains(t time.Time) bool {
	m := t.Hour()*60 + t.Minute()
	return m >= w.startMin && m <= w.endMin
}

func (w TimeWindow) Start() string { return formatTimeOfDay(w.startMin) }
func (w TimeWindow) End() string   { return formatTimeOfDay(w.endMin) }

func formatTimeOfDay(m int) string {
	digits := []byte{
		byte('0' + m/60/10), byte('0' + m/60%10),
		':',
		byte('0' + m%60/10), byte('0' + m%60%10),
	}
	return string(digits)
}

// RefSet is a set of entity references used for service/product/outlet
// scoping. The empty set is a documented sentinel meaning "unrestricted".
type RefSet struct {
	ids map[uuid.UUID]struct{}
}

func NewRefSet(ids []uuid.UUID) RefSet {
	if len(ids) == 0 {
		return RefSet{}
	}
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return RefSet{ids: set}
}

func (s RefSet) Empty() bool {
	return len(s.ids) == 0
}

func (s RefSet) Contains(id uuid.UUID) bool {
	_, ok := s.ids[id]
	return ok
}

func (s RefSet) IDs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}
