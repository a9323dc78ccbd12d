package trim

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrNotTrimmed is returned by [Trimmed].
	ErrNotTrimmed = validation.NewError("validation_not_trimmed", "must not have leading or trailing whitespace")
	// ErrBlank is returned by [NotBlank].
	ErrBlank = validation.NewError("validation_blank", "cannot be blank")
)

// Trimmed is an ozzo-validation rule that checks a string has no leading or
// trailing whitespace. Empty values pass; use it with validation.Each for
// lists.
var Trimmed = validation.NewStringRuleWithError(func(s string) bool {
	t := s
	return Space(&t) == s
}, ErrNotTrimmed)

// NotBlank is an ozzo-validation rule that rejects a present string made of
// whitespace only, including "". Absent values (nil, an unset [Optional])
// pass; combine with validation.Required to reject them too.
var NotBlank = notBlankRule{err: ErrBlank}

type notBlankRule struct {
	err validation.Error
}

// Validate checks value.
func (r notBlankRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	s, err := validation.EnsureString(value)
	if err != nil {
		return err
	}
	if IsBlank(s) {
		return r.err
	}
	return nil
}

// Error sets the error message for the rule.
func (r notBlankRule) Error(message string) notBlankRule {
	r.err = r.err.SetMessage(message)
	return r
}
