package factorymod

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/FactoryModExplorer_Go/internal/domain"
)

var durationPattern = regexp.MustCompile(`^(\d+)([a-z]+)$`)

// durationUnits maps duration suffixes to seconds
var durationUnits = map[string]int{
	"s": 1,
}

// parseDuration converts a duration such as "20s" into seconds.
func parseDuration(n *yaml.Node) (int, error) {
	text, err := requireString(n)
	if err != nil {
		return 0, err
	}
	match := durationPattern.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return 0, fmt.Errorf(ErrFmtInvalidDuration, domain.ErrMalformedValue, strconv.Quote(text))
	}
	amount, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, fmt.Errorf(ErrFmtInvalidDuration, domain.ErrMalformedValue, strconv.Quote(text))
	}
	unit, ok := durationUnits[match[2]]
	if !ok {
		return 0, fmt.Errorf(ErrFmtUnknownUnit, domain.ErrMalformedValue, match[2], strconv.Quote(text))
	}
	return amount * unit, nil
}

// requireString returns the text of a string scalar.
func requireString(n *yaml.Node) (string, error) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode || n.ShortTag() != tagStr {
		return "", fmt.Errorf(ErrFmtNotString, domain.ErrMalformedValue, describe(n))
	}
	return n.Value, nil
}

// requireNumber returns the value of an int or float scalar.
func requireNumber(n *yaml.Node) (float64, error) {
	n = resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return 0, fmt.Errorf(ErrFmtNotNumber, domain.ErrMalformedValue, describe(n))
	}
	switch n.ShortTag() {
	case tagInt, tagFloat:
		var f float64
		if err := n.Decode(&f); err != nil {
			return 0, fmt.Errorf(ErrFmtNotNumber, domain.ErrMalformedValue, describe(n))
		}
		return f, nil
	}
	return 0, fmt.Errorf(ErrFmtNotNumber, domain.ErrMalformedValue, describe(n))
}

// requireInt returns the value of a number scalar that has no fraction.
func requireInt(n *yaml.Node) (int, error) {
	f, err := requireNumber(n)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf(ErrFmtNotInteger, domain.ErrMalformedValue, describe(n))
	}
	return int(f), nil
}

// optionalString returns the text of a string scalar, or "" when absent.
func optionalString(n *yaml.Node) (string, error) {
	if isNull(n) {
		return "", nil
	}
	return requireString(n)
}

// fieldError prefixes err with the name of the field it came from.
func fieldError(key string, err error) error {
	return fmt.Errorf(ErrFmtField, key, err)
}
