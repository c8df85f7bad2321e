package config

import "fmt"

// ValidationError reports a parameter that violates its declared bounds.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

func validate(p Params) error {
	switch {
	case p.Width < 640 || p.Width > 7680:
		return bounds("Width", p.Width, 640, 7680)
	case p.Height < 480 || p.Height > 4320:
		return bounds("Height", p.Height, 480, 4320)
	case p.RainSpeed < 0.1 || p.RainSpeed > 5.0:
		return bounds("RainSpeed", p.RainSpeed, 0.1, 5.0)
	case p.RainDensity < 0.1 || p.RainDensity > 2.0:
		return bounds("RainDensity", p.RainDensity, 0.1, 2.0)
	case p.CharSizeMin < 6 || p.CharSizeMin > 40:
		return bounds("CharSizeMin", p.CharSizeMin, 6, 40)
	case p.CharSizeMax < 6 || p.CharSizeMax > 40:
		return bounds("CharSizeMax", p.CharSizeMax, 6, 40)
	case p.CharSizeMax < p.CharSizeMin:
		return &ValidationError{
			Field:  "CharSizeMax",
			Reason: fmt.Sprintf("must be >= CharSizeMin (%d < %d)", p.CharSizeMax, p.CharSizeMin),
		}
	case p.FadingSpeed < 0.01 || p.FadingSpeed > 0.5:
		return bounds("FadingSpeed", p.FadingSpeed, 0.01, 0.5)
	case p.SpeedVariation < 0.0 || p.SpeedVariation > 2.0:
		return bounds("SpeedVariation", p.SpeedVariation, 0.0, 2.0)
	case p.CharSet == CharSetCustom && p.CustomChars == "":
		return &ValidationError{
			Field:  "CustomChars",
			Reason: "must not be empty when CharSet is Custom",
		}
	}
	return nil
}

func bounds[T int | float64](field string, got, lo, hi T) error {
	return &ValidationError{
		Field:  field,
		Reason: fmt.Sprintf("%v out of range [%v, %v]", got, lo, hi),
	}
}
