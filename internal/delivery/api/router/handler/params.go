package handler

import (
	"net/url"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func principal(c echo.Context) (*entity.User, error) {
	user, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	return user, nil
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidID.WithDetails(name + " is not a valid id")
	}

	return id, nil
}

// ownedID returns the id of the resource the ownership guard loaded, falling back to the path.
func ownedID(c echo.Context, name string) (uuid.UUID, error) {
	if res, ok := deliverycontext.GetResource[entity.OwnedResource](c); ok {
		return res.ResourceID(), nil
	}

	return pathID(c, name)
}

// bindAndValidate binds the request into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("malformed request body"), err.Error())
	}

	return errors.WithStack(c.Validate(req))
}

// optionalFormValue reports a form field only when the client actually sent it.
func optionalFormValue(form url.Values, name string) *string {
	values, ok := form[name]
	if !ok || len(values) == 0 {
		return nil
	}
	value := values[0]

	return &value
}
