package preferences

import (
	"fmt"
	"strings"

	"github.com/janisto/lazydrobe/internal/platform/validation"
)

// BodyInfo is the user's height and gender as typed.
type BodyInfo struct {
	Feet   string `yaml:"feet"`
	Inches string `yaml:"inches"`
	Gender string `yaml:"gender"`
}

// With refuses inches that are not a number in [0, 12), the empty string
// included. Accepted inches are stored trimmed.
func (b BodyInfo) With(field, value string) (BodyInfo, error) {
	switch field {
	case "feet":
		b.Feet = value
	case "inches":
		if err := validation.Var("inches", value, "inches"); err != nil {
			return b, err
		}
		b.Inches = strings.TrimSpace(value)
	case "gender":
		b.Gender = value
	default:
		return b, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return b, nil
}

func (b BodyInfo) Merge(o BodyInfo) BodyInfo {
	return BodyInfo{
		Feet:   mergeString(b.Feet, o.Feet),
		Inches: mergeString(b.Inches, o.Inches),
		Gender: mergeString(b.Gender, o.Gender),
	}
}

// Height renders e.g. `5' 7"`, leaving out empty parts.
func (b BodyInfo) Height() string {
	var parts []string
	if b.Feet != "" {
		parts = append(parts, b.Feet+"'")
	}
	if b.Inches != "" {
		parts = append(parts, b.Inches+`"`)
	}
	return strings.Join(parts, " ")
}

func (b BodyInfo) Summary() Summary {
	return Summary{
		{Label: "Height", Value: orNotSpecified(b.Height())},
		{Label: "Gender", Value: orNotSpecified(b.Gender)},
	}
}
