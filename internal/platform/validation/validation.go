// Package validation wraps go-playground/validator with the rules the wardrobe
// domain needs and turns failures into explicit field violations.
package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-playground/validator/v10"
)

// decimalLiteral matches plain decimal numbers; ParseFloat alone also takes
// hex floats, underscores and inf/nan spellings.
var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Violation is one refused field.
type Violation struct {
	Field   string `json:"field"   doc:"Field that failed validation"`
	Rule    string `json:"rule"    doc:"Rule that was violated, e.g. notblank or inches"`
	Message string `json:"message" doc:"Human readable explanation"`
}

// Error carries every violation found for a submission.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Field + ": " + v.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Details converts violations into huma error details for 422 responses.
// Locations follow huma's "body.<field>" convention.
func (e *Error) Details() []error {
	out := make([]error, len(e.Violations))
	for i, v := range e.Violations {
		out[i] = &huma.ErrorDetail{
			Message:  v.Message,
			Location: "body." + v.Field,
			Value:    v.Rule,
		}
	}
	return out
}

// AsError reports whether err carries validation violations.
func AsError(err error) (*Error, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// NewError builds a single-violation error.
func NewError(field, rule, message string) *Error {
	return &Error{Violations: []Violation{{Field: field, Rule: rule, Message: message}}}
}

func instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)

		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("inches", func(fl validator.FieldLevel) bool {
			return ValidInches(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// Struct validates s and returns *Error listing every failed field, in field order.
func Struct(s any) error {
	return convert(instance().Struct(s), "")
}

// Var validates a single value under field, e.g. Var("inches", "13", "omitempty,inches").
func Var(field string, value any, tag string) error {
	return convert(instance().Var(value, tag), field)
}

// ValidInches reports whether s, surrounding spaces aside, is a finite decimal
// number in [0, 12). The empty string is not a number.
func ValidInches(s string) bool {
	s = strings.TrimSpace(s)
	if !decimalLiteral.MatchString(s) {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f >= 0 && f < 12
}

func convert(err error, field string) error {
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return fmt.Errorf("validate: %w", err)
	}
	out := &Error{Violations: make([]Violation, 0, len(ves))}
	for _, fe := range ves {
		name := fe.Field()
		if field != "" {
			name = field
		}
		out.Violations = append(out.Violations, Violation{
			Field:   name,
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "must not be empty"
	case "inches":
		return "must be a number from 0 up to but not including 12"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	default:
		return name
	}
}
