package api

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katakuxiko/abogado-virtual/internal/model"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func invalidBody() model.ValidationErrorResponse {
	return model.ValidationErrorResponse{Detail: []model.ValidationIssue{{
		Loc:  []string{"body"},
		Msg:  "JSON decode error",
		Type: "json_invalid",
	}}}
}

// validationIssues converts validator output into body-located issues.
func validationIssues(err error) []model.ValidationIssue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []model.ValidationIssue{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}}
	}
	out := make([]model.ValidationIssue, 0, len(verrs))
	for _, fe := range verrs {
		issue := model.ValidationIssue{Loc: []string{"body", fe.Field()}}
		switch fe.Tag() {
		case "required":
			issue.Msg, issue.Type = "Field required", "missing"
		default:
			issue.Msg, issue.Type = "Invalid value", fe.Tag()
		}
		out = append(out, issue)
	}
	return out
}
