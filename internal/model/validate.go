package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var timeSlotRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		return ValidTimeSlot(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidTimeSlot reports whether s is a zero-padded 24h "HH:MM" value.
func ValidTimeSlot(s string) bool {
	return timeSlotRegex.MatchString(s)
}

// ValidationError lists the fields of an input that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid fields: %s", strings.Join(e.Fields, ", "))
}

// Validate checks one of the write inputs (WorkoutInput, ExerciseInput,
// MealInput, MarkDoneInput) and returns a *ValidationError when it fails.
func Validate(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return &ValidationError{Fields: fields}
}
