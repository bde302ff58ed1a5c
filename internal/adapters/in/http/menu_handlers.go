package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type menuItemRequest struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	Category     *string          `json:"category"`
	ImageURL     *string          `json:"imageUrl"`
	IsVegetarian *bool            `json:"isVegetarian"`
	IsVegan      *bool            `json:"isVegan"`
	Rating       *float64         `json:"ratings"`
	Reviews      *int             `json:"reviews"`
	IsAvailable  *bool            `json:"isAvailable"`
}

func (r menuItemRequest) patch() (menu.Patch, error) {
	p := menu.Patch{
		Name:         r.Name,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		IsVegetarian: r.IsVegetarian,
		IsVegan:      r.IsVegan,
		Rating:       r.Rating,
		Reviews:      r.Reviews,
		IsAvailable:  r.IsAvailable,
	}
	if r.Price != nil {
		price, err := kernel.NewMoney(*r.Price)
		if err != nil {
			return menu.Patch{}, err
		}
		p.Price = &price
	}
	if r.Category != nil {
		category, err := menu.ParseCategory(*r.Category)
		if err != nil {
			return menu.Patch{}, err
		}
		p.Category = &category
	}
	return p, nil
}

func (r menuItemRequest) details() (menu.Details, error) {
	p, err := r.patch()
	if err != nil {
		return menu.Details{}, err
	}
	d := menu.Details{
		Name:        deref(p.Name),
		Description: deref(p.Description),
		ImageURL:    deref(p.ImageURL),
	}
	if p.Price != nil {
		d.Price = *p.Price
	}
	if p.Category != nil {
		d.Category = *p.Category
	}
	if p.IsVegetarian != nil {
		d.IsVegetarian = *p.IsVegetarian
	}
	if p.IsVegan != nil {
		d.IsVegan = *p.IsVegan
	}
	return d, nil
}

// menuFilter reads the catalog filters shared by the public and admin listings.
func menuFilter(c echo.Context) (queries.MenuFilter, error) {
	var f queries.MenuFilter

	name, err := optionalQuery[string](c, "name")
	if err != nil {
		return f, err
	}
	category, err := optionalQuery[string](c, "category")
	if err != nil {
		return f, err
	}
	f.Name, f.Category = deref(name), deref(category)

	if f.MinPrice, err = optionalDecimal(c, "minPrice"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = optionalDecimal(c, "maxPrice"); err != nil {
		return f, err
	}
	if f.MinRating, err = optionalQuery[float64](c, "rating"); err != nil {
		return f, err
	}
	if f.Vegan, err = optionalQuery[bool](c, "isVegan"); err != nil {
		return f, err
	}
	if f.Vegetarian, err = optionalQuery[bool](c, "isVegetarian"); err != nil {
		return f, err
	}

	sort, err := optionalQuery[string](c, "sort")
	if err != nil {
		return f, err
	}
	switch deref(sort) {
	case "popular":
		f.Sort = queries.SortPopular
	case "price":
		f.Sort = queries.SortByPrice
	default:
		f.Sort = queries.SortNewest
	}

	limit, err := optionalQuery[int](c, "limit")
	if err != nil {
		return f, err
	}
	if limit != nil {
		f.Limit = *limit
	}
	return f, nil
}

func (s *Server) listMenu(c echo.Context, query queries.ListMenuItemsQuery, message string) error {
	items, err := s.queries.MenuItems.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, message, echo.Map{"count": len(items), "menuItems": items})
}

func (s *Server) ListMenuItems(c echo.Context) error {
	filter, err := menuFilter(c)
	if err != nil {
		return err
	}
	query, err := queries.NewListMenuItemsQuery(filter)
	if err != nil {
		return err
	}
	return s.listMenu(c, query, "Menu items fetched")
}

func (s *Server) AdminListMenuItems(c echo.Context) error {
	filter, err := menuFilter(c)
	if err != nil {
		return err
	}
	filter.IncludeUnavailable = true
	query, err := queries.NewListMenuItemsQuery(filter)
	if err != nil {
		return err
	}
	return s.listMenu(c, query, "Menu items fetched")
}

func (s *Server) PopularMenuItems(c echo.Context) error {
	return s.listMenu(c, queries.NewPopularMenuItemsQuery(), "Popular menu items fetched")
}

func (s *Server) NewMenuItems(c echo.Context) error {
	return s.listMenu(c, queries.NewNewMenuItemsQuery(), "New menu items fetched")
}

func (s *Server) MenuItemsByPriceRange(c echo.Context) error {
	minPrice, err := optionalDecimal(c, "min")
	if err != nil {
		return err
	}
	maxPrice, err := optionalDecimal(c, "max")
	if err != nil {
		return err
	}
	query, err := queries.NewPriceRangeMenuItemsQuery(minPrice, maxPrice)
	if err != nil {
		return err
	}
	return s.listMenu(c, query, "Menu items fetched")
}

func (s *Server) MenuItemsByCategory(c echo.Context) error {
	category, err := pathValue[string](c, "category")
	if err != nil {
		return err
	}
	query, err := queries.NewListMenuItemsQuery(queries.MenuFilter{Category: category})
	if err != nil {
		return err
	}
	return s.listMenu(c, query, "Menu items fetched")
}

func (s *Server) MostRatedMenuItems(c echo.Context) error {
	rating, err := pathValue[float64](c, "rating")
	if err != nil {
		return err
	}
	query, err := queries.NewListMenuItemsQuery(queries.MenuFilter{MinRating: &rating, Sort: queries.SortPopular})
	if err != nil {
		return err
	}
	return s.listMenu(c, query, "Menu items fetched")
}

func (s *Server) GetMenuItem(c echo.Context) error {
	return s.getMenuItem(c, false)
}

func (s *Server) AdminGetMenuItem(c echo.Context) error {
	return s.getMenuItem(c, true)
}

func (s *Server) getMenuItem(c echo.Context, includeUnavailable bool) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	item, err := s.queries.MenuItems.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !item.IsAvailable && !includeUnavailable {
		return errs.NewObjectNotFoundError("menuItem", id.String())
	}
	return respond(c, http.StatusOK, "Menu item fetched", echo.Map{"menuItem": item})
}

func (s *Server) CreateMenuItem(c echo.Context) error {
	var req menuItemRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	details, err := req.details()
	if err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuItemCommand(id, principal(c).UserID, details)
	if err != nil {
		return err
	}
	if err := s.commands.CreateMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	item, err := s.queries.MenuItems.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Menu item created", echo.Map{"menuItem": item})
}

func (s *Server) UpdateMenuItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req menuItemRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	patch, err := req.patch()
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateMenuItemCommand(id, patch)
	if err != nil {
		return err
	}
	if err := s.commands.UpdateMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	item, err := s.queries.MenuItems.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Menu item updated", echo.Map{"menuItem": item})
}

func (s *Server) ToggleMenuItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewToggleMenuItemCommand(id)
	if err != nil {
		return err
	}
	available, err := s.commands.ToggleMenuItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	message := "Menu item is now unavailable"
	if available {
		message = "Menu item is now available"
	}
	return respond(c, http.StatusOK, message, echo.Map{"id": id.String(), "isAvailable": available})
}

func (s *Server) DeleteMenuItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteMenuItemCommand(id)
	if err != nil {
		return err
	}
	if err := s.commands.DeleteMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Menu item deleted", echo.Map{"id": id.String()})
}
