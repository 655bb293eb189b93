package notes

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}()

// Normalize cleans user input: the title is whitespace-collapsed, blank tags
// are dropped, times move to the local zone and a missing color becomes
// DefaultColor. Content is kept verbatim. Duplicate tags are left for
// Validate to reject.
func (d Draft) Normalize() Draft {
	d.Title = strings.Join(strings.Fields(d.Title), " ")
	if !d.Date.IsZero() {
		d.Date = d.Date.Local()
	}
	if d.Reminder != nil {
		r := d.Reminder.Local()
		d.Reminder = &r
	}

	tags := make([]string, 0, len(d.Tags))
	for _, t := range d.Tags {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	d.Tags = tags

	d.Color = strings.TrimSpace(d.Color)
	if d.Color == "" {
		d.Color = DefaultColor
	}
	return d
}

// Validate checks a normalized draft and returns a *ValidationError naming
// the first failing field.
func Validate(d Draft) error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ValidationError{Field: fieldName(fe), Reason: reason(fe)}
	}
	return &ValidationError{Field: "note", Reason: err.Error()}
}

func fieldName(fe validator.FieldError) string {
	// dive errors are reported as tags[2]; report the collection
	name, _, _ := strings.Cut(fe.Field(), "[")
	return name
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "unique":
		return "must not contain duplicates"
	case "hexcolor":
		return "must be a hex color"
	case "max":
		return "is too long"
	default:
		return "failed " + fe.Tag()
	}
}
