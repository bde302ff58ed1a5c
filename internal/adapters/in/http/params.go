package http

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// pathID binds a uuid path parameter the way generated echo wrappers do.
func pathID(c echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromGoogle(id)
}

func pathValue[T any](c echo.Context, name string) (T, error) {
	var v T
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &v,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return v, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}

// optionalQuery binds a form-style query parameter. A missing parameter yields nil.
func optionalQuery[T any](c echo.Context, name string) (*T, error) {
	var v *T
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &v); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}

func optionalDate(c echo.Context, name string) (*time.Time, error) {
	d, err := optionalQuery[openapi_types.Date](c, name)
	if err != nil || d == nil {
		return nil, err
	}
	t := d.Time
	return &t, nil
}

func optionalDecimal(c echo.Context, name string) (*decimal.Decimal, error) {
	raw, err := optionalQuery[string](c, name)
	if err != nil || raw == nil {
		return nil, err
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &d, nil
}
