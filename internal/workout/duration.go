package workout

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	rangeRe    = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:-|–|to)\s*(\d+(?:\.\d+)?)`)
	durationRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(hours?|hrs?|h|minutes?|mins?|m|seconds?|secs?|s)\b`)
	bareRe     = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	// unitGapRe splits "1h15m" so every unit ends on a word boundary.
	unitGapRe = regexp.MustCompile(`([a-z])(\d)`)
)

// ParseMinutes turns free-form durations such as "30 min", "1h 15m", "45" or
// "90s" into whole minutes, rounding seconds up. Ranges use their upper bound.
// A number needs a unit unless it stands alone, so "10 reps" is not a
// duration. Unparsable input yields 0.
func ParseMinutes(s string) int {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0
	}
	s = rangeRe.ReplaceAllString(s, "$2")
	if bareRe.MatchString(s) {
		v, _ := strconv.ParseFloat(s, 64)
		return int(math.Ceil(v - 1e-9))
	}
	s = unitGapRe.ReplaceAllString(s, "$1 $2")

	var total float64
	for _, m := range durationRe.FindAllStringSubmatch(s, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		switch unit := m[2]; {
		case strings.HasPrefix(unit, "h"):
			total += v * 60
		case strings.HasPrefix(unit, "s"):
			total += v / 60
		default:
			total += v
		}
	}
	return int(math.Ceil(total - 1e-9))
}
