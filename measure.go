package latex

import (
	"strconv"

	"github.com/pkg/errors"
)

// cmInPixel is amount of CSS pixels in one centimeter
const cmInPixel = 37.7952755906

// pixels is the size of one unit in CSS pixels, for units accepted in \vspace{...} and \\[...]. Font relative
// units assume 10pt font.
var pixels = map[string]float32{
	"pt": cmInPixel / 28.4527,
	"bp": cmInPixel * 2.54 / 72,
	"pc": cmInPixel / 28.4527 * 12,
	"mm": cmInPixel / 10,
	"cm": cmInPixel,
	"in": cmInPixel * 2.54,
	"ex": cmInPixel * 0.15132,
	"em": cmInPixel * 0.35146,
	"px": 1,
}

// Measure splits a length into a number and units, for example: 4pt, -0.5em, 1.2cm
func Measure(raw string) (float32, string, error) {
	match := measure.FindStringSubmatch(raw)
	if len(match) == 0 {
		return 0, "", errors.Errorf("unable to parse length %#v", raw)
	}

	number, err := strconv.ParseFloat(match[1], 32)
	if err != nil {
		return 0, "", errors.Wrapf(err, "invalid number in length %#v", raw)
	}

	return float32(number), match[2], nil
}

// MeasurePixels converts a length to CSS pixels, lengths relative to the page (\textwidth) are not supported
func MeasurePixels(raw string) (float32, error) {
	n, u, err := Measure(raw)
	if err != nil {
		return 0, err
	}

	return ToPixels(n, u)
}

func ToPixels(value float32, unit string) (float32, error) {
	k, ok := pixels[unit]
	if !ok {
		return 0, errors.Errorf("length unit %#v is not supported", unit)
	}

	return value * k, nil
}
