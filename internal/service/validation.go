package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/cgabhane/author-website/internal/apperror"
	"github.com/go-playground/validator/v10"
)

const invalidInputMessage = "Please check your input and try again."

// fieldMessages are the user-facing messages per request field
var fieldMessages = map[string]string{
	"name":        "Name must be at least 2 characters",
	"email":       "Please enter a valid email address",
	"sessionType": "Please select a session type",
	"date":        "Please select a date",
	"time":        "Please select a time slot",
	"interests":   "Please select at least one valid interest",
	"score":       "Please provide a valid score",
	"level":       "Please provide a valid skill level",
	"username":    "Username is required",
	"password":    "Password is required",
	"questionId":  "Please provide a valid question id",
	"optionIndex": "Please select an option",
}

// Validator checks request structs and converts failures to field errors
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Struct validates s, returning an apperror validation error on failure
func (val *Validator) Struct(s interface{}) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.Internal(err)
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	seen := make(map[string]bool)
	for _, fe := range verrs {
		field := topLevelField(fe)
		if seen[field] {
			continue
		}
		seen[field] = true
		fields = append(fields, apperror.FieldError{Field: field, Message: messageFor(field, fe)})
	}
	return apperror.Validation(invalidInputMessage, fields...)
}

// topLevelField maps "SubscribeRequest.interests[0]" to "interests"
func topLevelField(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if i := strings.IndexAny(ns, ".["); i >= 0 {
		ns = ns[:i]
	}
	return ns
}

func messageFor(field string, fe validator.FieldError) string {
	if msg, ok := fieldMessages[field]; ok {
		return msg
	}
	return fmt.Sprintf("%s failed the %s check", field, fe.Tag())
}
