package pkgrouter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
)

const maxBodyBytes = 1 << 20

//nolint:gochecknoglobals // validator caches struct metadata, build it once
var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonName)
	})
	return validate
}

// Bind decodes the JSON request body into dst and validates it using the
// `validate` struct tags.
//
// The body must be exactly one JSON object. Keys are matched against the
// json names of dst case-sensitively; keys that differ only in case are
// ignored, so a required field sent as "Title" is still missing.
//
// Every failure (missing body, malformed JSON, wrong field types, failed
// rules) is reported as a validation error whose fields are located under
// "body".
func Bind(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return pkgerror.NewValidation(map[string]string{"body": "field required"})
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))

	var object map[string]json.RawMessage
	if err := dec.Decode(&object); err != nil {
		return decodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return pkgerror.NewInvalidFormat()
	}
	if object == nil {
		return pkgerror.NewValidation(map[string]string{"body": "field required"})
	}

	if names := jsonFieldNames(dst); names != nil {
		for key := range object {
			if _, ok := names[key]; !ok {
				delete(object, key)
			}
		}
	}

	exact, err := json.Marshal(object)
	if err != nil {
		return pkgerror.NewServer(err)
	}
	if err := json.Unmarshal(exact, dst); err != nil {
		return decodeError(err)
	}

	if err := getValidator().Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return pkgerror.NewServer(err)
		}

		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[bodyLocation(fe.Namespace())] = describeRule(fe)
		}
		return pkgerror.NewValidation(fields)
	}

	return nil
}

// jsonName is the name encoding/json uses for fld, or "" when it is skipped.
func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// jsonFieldNames returns the exported json names of the struct dst points to,
// or nil when dst is not a struct.
func jsonFieldNames(dst any) map[string]struct{} {
	t := reflect.TypeOf(dst)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	names := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		fld := t.Field(i)
		if !fld.IsExported() {
			continue
		}
		if name := jsonName(fld); name != "" {
			names[name] = struct{}{}
		}
	}
	return names
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return pkgerror.NewValidation(map[string]string{"body": "value is not a valid object"})
		}
		return pkgerror.NewValidation(map[string]string{"body." + typeErr.Field: "value is not a valid " + typeErr.Type.Kind().String()})
	}

	if errors.Is(err, io.EOF) {
		return pkgerror.NewValidation(map[string]string{"body": "field required"})
	}

	return pkgerror.NewInvalidFormat()
}

// bodyLocation turns a validator namespace ("BlogPost.title") into "body.title".
func bodyLocation(namespace string) string {
	if _, rest, found := strings.Cut(namespace, "."); found {
		return "body." + rest
	}
	return "body." + namespace
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	default:
		if fe.Param() != "" {
			return "failed on the '" + fe.Tag() + "=" + fe.Param() + "' rule"
		}
		return "failed on the '" + fe.Tag() + "' rule"
	}
}
