// Package handler contains the HTTP handlers of the API.
package handler

import (
	"encoding/json"
	"strconv"
	"time"

	deliverycontext "tnp/internal/delivery/context"
	"tnp/internal/domain/entity"
	domainerrors "tnp/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var errInvalidBody = domainerrors.BadRequest("Invalid request body")

// Date accepts either a calendar date (2024-01-31) or an RFC 3339 timestamp.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.Wrap(err, "date must be a string")
	}

	for _, layout := range []string{time.DateOnly, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()

			return nil
		}
	}

	return errors.Errorf("invalid date %q", s)
}

// timePtr returns nil for an absent date.
func (d *Date) timePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time

	return &t
}

// OptionalDate tells an absent field (Set is false) from an explicit null (Set is true, Value nil).
type OptionalDate struct {
	Set   bool
	Value *Date
}

// UnmarshalJSON implements json.Unmarshaler. It only runs when the key is present.
func (o *OptionalDate) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil

		return nil
	}

	var d Date
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	o.Value = &d

	return nil
}

// cleared reports whether the client explicitly sent null.
func (o OptionalDate) cleared() bool {
	return o.Set && o.Value == nil
}

// bindAndValidate decodes the request into req and runs the registered validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errInvalidBody.WithCause(err)
	}

	return errors.WithStack(c.Validate(req))
}

// callerIdentity returns the identity attached by the auth middleware.
func callerIdentity(c echo.Context) (*entity.Identity, error) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return nil, domainerrors.ErrMissingCredentials
	}

	return identity, nil
}

func parseUUIDParam(c echo.Context, name string, missing *domainerrors.APIError) (uuid.UUID, error) {
	raw := c.Param(name)
	if raw == "" {
		return uuid.Nil, missing
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.BadRequest("Invalid " + name + " format").WithCause(err)
	}

	return id, nil
}

// positiveQueryInt reads an optional positive integer; fallback is used when the parameter is absent.
func positiveQueryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, domainerrors.BadRequest(name + " must be a positive integer")
	}

	return v, nil
}
