package queries

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ShowcaseSize is the length of the popular and new item lists.
const ShowcaseSize = 10

var (
	ErrListMenuItemsQueryIsNotConstructed = errors.New(
		"ListMenuItemsQuery must be created via one of the NewListMenuItemsQuery constructors",
	)

	ErrPriceRangeIsInvalid = errs.NewValueIsInvalidError("priceRange")
)

type MenuSort int

const (
	SortNewest MenuSort = iota
	SortPopular
	SortByPrice
)

// MenuFilter narrows the catalog listing. Zero values mean "no restriction".
type MenuFilter struct {
	Name       string
	Category   string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	MinRating  *float64
	Vegan      *bool
	Vegetarian *bool

	// IncludeUnavailable is set by admin listings; customers only see available items.
	IncludeUnavailable bool

	Sort  MenuSort
	Limit int
}

type ListMenuItemsQuery struct { //nolint:recvcheck //using for validation
	filter   MenuFilter
	category menu.Category

	guard guard.ConstructorGuard
}

func NewListMenuItemsQuery(filter MenuFilter) (ListMenuItemsQuery, error) {
	filter.Name = strings.ToLower(strings.TrimSpace(filter.Name))

	var err error
	var category menu.Category
	if c := strings.TrimSpace(filter.Category); c != "" {
		var catErr error
		category, catErr = parseCategoryFold(c)
		err = errors.Join(err, catErr)
	}
	if filter.MinPrice != nil && filter.MinPrice.IsNegative() {
		err = errors.Join(err, fmt.Errorf("%w: minPrice must not be negative", ErrPriceRangeIsInvalid))
	}
	if filter.MaxPrice != nil && filter.MaxPrice.IsNegative() {
		err = errors.Join(err, fmt.Errorf("%w: maxPrice must not be negative", ErrPriceRangeIsInvalid))
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		err = errors.Join(err, fmt.Errorf("%w: minPrice is greater than maxPrice", ErrPriceRangeIsInvalid))
	}
	if r := filter.MinRating; r != nil && (*r < menu.RatingMin || *r > menu.RatingMax) {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("rating", *r, menu.RatingMin, menu.RatingMax))
	}
	if filter.Limit < 0 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("limit", filter.Limit, 0, "unbounded"))
	}
	if err != nil {
		return ListMenuItemsQuery{}, err
	}

	return ListMenuItemsQuery{
		filter:   filter,
		category: category,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewPopularMenuItemsQuery lists the best rated available items.
func NewPopularMenuItemsQuery() ListMenuItemsQuery {
	return ListMenuItemsQuery{
		filter: MenuFilter{Sort: SortPopular, Limit: ShowcaseSize},
		guard:  guard.NewConstructorGuard(),
	}
}

// NewNewMenuItemsQuery lists the most recently added available items.
func NewNewMenuItemsQuery() ListMenuItemsQuery {
	return ListMenuItemsQuery{
		filter: MenuFilter{Sort: SortNewest, Limit: ShowcaseSize},
		guard:  guard.NewConstructorGuard(),
	}
}

// NewPriceRangeMenuItemsQuery requires both bounds, cheapest first.
func NewPriceRangeMenuItemsQuery(minPrice, maxPrice *decimal.Decimal) (ListMenuItemsQuery, error) {
	var err error
	if minPrice == nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("minPrice"))
	}
	if maxPrice == nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("maxPrice"))
	}
	if err != nil {
		return ListMenuItemsQuery{}, err
	}
	return NewListMenuItemsQuery(MenuFilter{MinPrice: minPrice, MaxPrice: maxPrice, Sort: SortByPrice})
}

func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

func (q ListMenuItemsQuery) Filter() MenuFilter { return q.filter }

// Category is the parsed category filter, empty when absent.
func (q ListMenuItemsQuery) Category() menu.Category { return q.category }

func parseCategoryFold(s string) (menu.Category, error) {
	for _, c := range menu.Categories() {
		if strings.EqualFold(c.String(), s) {
			return c, nil
		}
	}
	return menu.ParseCategory(s)
}
