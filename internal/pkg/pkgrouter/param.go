package pkgrouter

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
	"github.com/spf13/cast"
)

// GetParam reads a path parameter from the request context (as stored by httprouter).
func GetParam(ctx context.Context, key string) string {
	return httprouter.ParamsFromContext(ctx).ByName(key)
}

// ParamInt reads a required integer path parameter.
//
// A value that is not a base-10 int64 is reported as a validation error
// located at "path.<key>".
func ParamInt(ctx context.Context, key string) (int64, error) {
	raw := GetParam(ctx, key)
	if raw == "" {
		return 0, pkgerror.NewValidation(map[string]string{"path." + key: "field required"})
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, pkgerror.NewValidation(map[string]string{"path." + key: "value is not a valid integer"})
	}

	return value, nil
}

// QueryInt reads an optional integer query parameter, returning def when it is absent or empty.
func QueryInt(r *http.Request, key string, def int64) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, pkgerror.NewValidation(map[string]string{"query." + key: "value is not a valid integer"})
	}

	return value, nil
}

// QueryBool reads an optional boolean query parameter, returning def when it is absent or empty.
//
// Besides the forms strconv understands it accepts yes/no and on/off, in any case.
func QueryBool(r *http.Request, key string, def bool) (bool, error) {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(key)))
	switch raw {
	case "":
		return def, nil
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}

	value, err := cast.ToBoolE(raw)
	if err != nil {
		return false, pkgerror.NewValidation(map[string]string{"query." + key: "value could not be parsed to a boolean"})
	}

	return value, nil
}

// QueryString reads an optional text query parameter, returning nil when it is absent.
func QueryString(r *http.Request, key string) *string {
	values, ok := r.URL.Query()[key]
	if !ok || len(values) == 0 {
		return nil
	}

	value := values[0]
	return &value
}
