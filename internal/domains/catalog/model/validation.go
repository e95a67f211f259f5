package model

import (
	"errors"
	"sort"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Field names used in ValidationError.Field
const (
	FieldName      = "name"
	FieldTitle     = "title"
	FieldAuthor    = "author"
	FieldBook      = "book"
	FieldDate      = "date"
	FieldRoyalties = "royalties"
)

const (
	msgNotText     = "must be text"
	msgEmptyName   = "must be non-empty text"
	msgNotAuthor   = "must be an Author instance"
	msgNotBook     = "must be a Book instance"
	msgMissingID   = "is required"
	msgEmptyUpdate = "at least one field must be provided"
)

// isText accepts strings (or string pointers) holding valid UTF-8.
// A nil pointer is left to other rules.
var isText = validation.By(func(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	s, ok := v.(string)
	if !ok || !utf8.ValidString(s) {
		return errors.New(msgNotText)
	}
	return nil
})

var (
	nameRules  = []validation.Rule{validation.Required.Error(msgEmptyName), isText}
	titleRules = []validation.Rule{isText}
	dateRules  = []validation.Rule{isText}
)

// authorRules accepts only non-nil authors registered in c
func (c *Catalog) authorRules() []validation.Rule {
	return []validation.Rule{
		validation.NotNil.Error(msgNotAuthor),
		validation.By(func(value interface{}) error {
			if a, _ := value.(*Author); a == nil || a.catalog != c {
				return errors.New(msgNotAuthor)
			}
			return nil
		}),
	}
}

// bookRules accepts only non-nil books registered in c
func (c *Catalog) bookRules() []validation.Rule {
	return []validation.Rule{
		validation.NotNil.Error(msgNotBook),
		validation.By(func(value interface{}) error {
			if b, _ := value.(*Book); b == nil || b.catalog != c {
				return errors.New(msgNotBook)
			}
			return nil
		}),
	}
}

// check runs rules against value and reports the first failure as a ValidationError
func check(field string, value interface{}, rules ...validation.Rule) error {
	if err := validation.Validate(value, rules...); err != nil {
		return &ValidationError{Field: field, Message: err.Error(), Err: err}
	}
	return nil
}

// fromStructErrors converts the result of validation.ValidateStruct into a
// ValidationError for the first failing field in name order.
func fromStructErrors(err error) error {
	if err == nil {
		return nil
	}
	var errs validation.Errors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return &ValidationError{Field: "request", Message: err.Error(), Err: err}
	}

	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	first := errs[fields[0]]
	return &ValidationError{Field: fields[0], Message: first.Error(), Err: first}
}
