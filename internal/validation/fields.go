package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failed constraint, in the shape the web client
// already parses ({"errors":[{"msg":...,"path":...}]}).
type FieldError struct {
	Type     string `json:"type"`
	Value    any    `json:"value,omitempty"`
	Msg      string `json:"msg"`
	Path     string `json:"path"`
	Location string `json:"location"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct checks s against its `validate` tags. The `msg` tag supplies the
// client-facing message and `redact:"true"` keeps the submitted value out of
// the error. A nil result means s is valid.
func Struct(s any) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Type: "field", Msg: err.Error(), Location: "body"}}
	}

	t := reflect.Indirect(reflect.ValueOf(s)).Type()

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		item := FieldError{
			Type:     "field",
			Value:    fe.Value(),
			Msg:      fe.Error(),
			Path:     fe.Field(),
			Location: "body",
		}

		if f, ok := t.FieldByName(fe.StructField()); ok {
			if msg := f.Tag.Get("msg"); msg != "" {
				item.Msg = msg
			}
			if f.Tag.Get("redact") == "true" {
				item.Value = nil
			}
		}

		out = append(out, item)
	}

	return out
}

// Messages flattens field errors for logs and error strings.
func Messages(fields []FieldError) string {
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, f.Path+": "+f.Msg)
	}
	return strings.Join(msgs, "; ")
}
