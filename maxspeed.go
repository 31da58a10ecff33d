package osm2graph

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const mphToKmh = 1.609344

var (
	mphRegExp = regexp.MustCompile(`^(\d+\.?\d*)\s*mph$`)
	kmhRegExp = regexp.MustCompile(`^(\d+\.?\d*)\s*km/h$`)
)

// parseMaxSpeed converts `maxspeed` tag value into km/h.
// Plain integers are taken as is, values with 'km/h' or 'mph' unit are converted.
// Anything else ('none', 'signals', 'RU:urban', ...) gives fallback
func parseMaxSpeed(value string, fallback int) int {
	value = strings.TrimSpace(value)
	if speed, err := strconv.Atoi(value); err == nil {
		return speed
	}
	if found := kmhRegExp.FindStringSubmatch(value); found != nil {
		speed, err := strconv.ParseFloat(found[1], 64)
		if err == nil {
			return int(math.Round(speed))
		}
	}
	if found := mphRegExp.FindStringSubmatch(value); found != nil {
		speed, err := strconv.ParseFloat(found[1], 64)
		if err == nil {
			return int(math.Round(speed * mphToKmh))
		}
	}
	return fallback
}
