package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type geoRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// addressRequest serves both create and update; on update absent fields stay untouched.
type addressRequest struct {
	Label       *string     `json:"label"`
	AddressLine *string     `json:"addressLine"`
	Landmarks   *[]string   `json:"landmarks"`
	City        *string     `json:"city"`
	State       *string     `json:"state"`
	Country     *string     `json:"country"`
	PinCode     *string     `json:"pinCode"`
	Geo         *geoRequest `json:"geo"`
	IsDefault   bool        `json:"isDefault"`
}

func (r addressRequest) patch() (address.Patch, error) {
	var p address.Patch
	if r.Label != nil {
		label, err := address.ParseLabel(*r.Label)
		if err != nil {
			return address.Patch{}, err
		}
		p.Label = &label
	}
	if r.Geo != nil {
		geo, err := kernel.NewGeoPoint(r.Geo.Latitude, r.Geo.Longitude)
		if err != nil {
			return address.Patch{}, err
		}
		p.Geo = &geo
	}
	p.AddressLine = r.AddressLine
	p.Landmarks = r.Landmarks
	p.City = r.City
	p.State = r.State
	p.Country = r.Country
	p.PinCode = r.PinCode
	return p, nil
}

func (r addressRequest) details() (address.Details, error) {
	p, err := r.patch()
	if err != nil {
		return address.Details{}, err
	}
	var d address.Details
	if p.Label != nil {
		d.Label = *p.Label
	}
	if p.Geo != nil {
		d.Geo = *p.Geo
	}
	if p.Landmarks != nil {
		d.Landmarks = *p.Landmarks
	}
	d.AddressLine = deref(p.AddressLine)
	d.City = deref(p.City)
	d.State = deref(p.State)
	d.Country = deref(p.Country)
	d.PinCode = deref(p.PinCode)
	return d, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (s *Server) CreateAddress(c echo.Context) error {
	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	details, err := req.details()
	if err != nil {
		return err
	}

	addressID := kernel.NewUUID()
	cmd, err := commands.NewCreateAddressCommand(addressID, principal(c).UserID, details, req.IsDefault)
	if err != nil {
		return err
	}
	if err := s.commands.CreateAddress.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	created, err := s.findAddress(c, addressID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Address created successfully", echo.Map{"address": created})
}

func (s *Server) ListAddresses(c echo.Context) error {
	query, err := queries.NewListAddressesQuery(principal(c).UserID)
	if err != nil {
		return err
	}
	list, err := s.queries.Addresses.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Addresses fetched", echo.Map{"count": len(list), "addresses": list})
}

func (s *Server) GetDefaultAddress(c echo.Context) error {
	query, err := queries.NewGetDefaultAddressQuery(principal(c).UserID)
	if err != nil {
		return err
	}
	view, err := s.queries.Addresses.GetDefault(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Default address fetched", echo.Map{"address": view})
}

func (s *Server) UpdateAddress(c echo.Context) error {
	addressID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	patch, err := req.patch()
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateAddressCommand(addressID, principal(c).UserID, patch)
	if err != nil {
		return err
	}
	if err := s.commands.UpdateAddress.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	updated, err := s.findAddress(c, addressID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Address updated successfully", echo.Map{"address": updated})
}

func (s *Server) SetDefaultAddress(c echo.Context) error {
	addressID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewSetDefaultAddressCommand(addressID, principal(c).UserID)
	if err != nil {
		return err
	}
	if err := s.commands.SetDefault.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	updated, err := s.findAddress(c, addressID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Default address updated", echo.Map{"address": updated})
}

func (s *Server) DeleteAddress(c echo.Context) error {
	addressID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteAddressCommand(addressID, principal(c).UserID)
	if err != nil {
		return err
	}
	if err := s.commands.DeleteAddress.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Address deleted successfully", echo.Map{"id": addressID.String()})
}

// findAddress reads back one of the caller's addresses after a write.
func (s *Server) findAddress(c echo.Context, addressID kernel.UUID) (queries.AddressView, error) {
	query, err := queries.NewListAddressesQuery(principal(c).UserID)
	if err != nil {
		return queries.AddressView{}, err
	}
	list, err := s.queries.Addresses.Handle(c.Request().Context(), query)
	if err != nil {
		return queries.AddressView{}, err
	}
	for _, a := range list {
		if a.ID == addressID.Bytes() {
			return a, nil
		}
	}
	return queries.AddressView{}, errs.NewObjectNotFoundError("address", addressID.String())
}
