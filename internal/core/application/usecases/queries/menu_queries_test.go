package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type MenuQueriesTestSuite struct {
	querySuite
}

func TestMenuQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(MenuQueriesTestSuite))
}

func names(items []queries.MenuItemView) []string {
	out := make([]string, 0, len(items))
	for _, i := range items {
		out = append(out, i.Name)
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func (s *MenuQueriesTestSuite) seedCatalog() {
	now := time.Now().UTC()
	s.seedDish(dish{name: "Paneer Tikka", category: menu.Appetizer, price: 180, vegetarian: true, rating: 4.6, available: true, createdAt: now.Add(-3 * time.Hour)})
	s.seedDish(dish{name: "Chicken Tikka", category: menu.Appetizer, price: 220, rating: 4.8, available: true, createdAt: now.Add(-2 * time.Hour)})
	s.seedDish(dish{name: "Vegan Curry", category: menu.MainCourse, price: 260, vegan: true, vegetarian: true, rating: 3.9, available: true, createdAt: now.Add(-time.Hour)})
	s.seedDish(dish{name: "Gulab Jamun", category: menu.Dessert, price: 90, vegetarian: true, rating: 4.2, available: true, createdAt: now})
	s.seedDish(dish{name: "Sold Out Tikka", category: menu.Appetizer, price: 150, rating: 5, available: false, createdAt: now})
}

func (s *MenuQueriesTestSuite) list(f queries.MenuFilter) []string {
	q, err := queries.NewListMenuItemsQuery(f)
	s.Require().NoError(err)
	items, err := queries.NewListMenuItemsQueryHandler(s.db).Handle(context.Background(), q)
	s.Require().NoError(err)
	return names(items)
}

func (s *MenuQueriesTestSuite) TestList_Filters() {
	s.seedCatalog()

	s.Equal([]string{"Gulab Jamun", "Vegan Curry", "Chicken Tikka", "Paneer Tikka"}, s.list(queries.MenuFilter{}))
	s.ElementsMatch([]string{"Chicken Tikka", "Paneer Tikka"}, s.list(queries.MenuFilter{Name: "TIKKA"}))
	s.ElementsMatch([]string{"Chicken Tikka", "Paneer Tikka", "Sold Out Tikka"},
		s.list(queries.MenuFilter{Name: "tikka", IncludeUnavailable: true}))
	s.Equal([]string{"Gulab Jamun"}, s.list(queries.MenuFilter{Category: "dessert"}))
	s.Equal([]string{"Vegan Curry"}, s.list(queries.MenuFilter{Category: "main course"}))
	s.Equal([]string{"Vegan Curry"}, s.list(queries.MenuFilter{Vegan: ptr(true)}))
	s.ElementsMatch([]string{"Gulab Jamun", "Vegan Curry", "Paneer Tikka"}, s.list(queries.MenuFilter{Vegetarian: ptr(true)}))
	s.ElementsMatch([]string{"Chicken Tikka", "Paneer Tikka"}, s.list(queries.MenuFilter{MinRating: ptr(4.5)}))
	s.ElementsMatch([]string{"Paneer Tikka", "Chicken Tikka"}, s.list(queries.MenuFilter{
		MinPrice: ptr(decimal.NewFromInt(150)),
		MaxPrice: ptr(decimal.NewFromInt(250)),
	}))
}

func (s *MenuQueriesTestSuite) TestList_InvalidFilters() {
	_, err := queries.NewListMenuItemsQuery(queries.MenuFilter{Category: "Soup"})
	s.Require().ErrorIs(err, menu.ErrInvalidCategory)

	_, err = queries.NewListMenuItemsQuery(queries.MenuFilter{
		MinPrice: ptr(decimal.NewFromInt(300)),
		MaxPrice: ptr(decimal.NewFromInt(100)),
	})
	s.Require().ErrorIs(err, queries.ErrPriceRangeIsInvalid)

	_, err = queries.NewListMenuItemsQuery(queries.MenuFilter{MinPrice: ptr(decimal.NewFromInt(-1))})
	s.Require().ErrorIs(err, errs.ErrValueIsInvalid)

	_, err = queries.NewListMenuItemsQuery(queries.MenuFilter{MinRating: ptr(5.5)})
	s.Require().ErrorIs(err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewPriceRangeMenuItemsQuery(ptr(decimal.NewFromInt(10)), nil)
	s.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func (s *MenuQueriesTestSuite) TestPriceRange_CheapestFirst() {
	s.seedCatalog()

	q, err := queries.NewPriceRangeMenuItemsQuery(ptr(decimal.NewFromInt(0)), ptr(decimal.NewFromInt(200)))
	s.Require().NoError(err)
	items, err := queries.NewListMenuItemsQueryHandler(s.db).Handle(context.Background(), q)
	s.Require().NoError(err)
	s.Equal([]string{"Gulab Jamun", "Paneer Tikka"}, names(items))
}

func (s *MenuQueriesTestSuite) TestPopularAndNew_AreCappedShowcases() {
	now := time.Now().UTC()
	for i := range 12 {
		s.seedDish(dish{
			name:      fmt.Sprintf("Dish %02d", i),
			price:     100,
			rating:    float64(i%6) * 0.9,
			available: true,
			createdAt: now.Add(time.Duration(i) * time.Minute),
		})
	}
	s.seedDish(dish{name: "Hidden Gem", price: 100, rating: 5, available: false, createdAt: now.Add(time.Hour)})
	handler := queries.NewListMenuItemsQueryHandler(s.db)

	popular, err := handler.Handle(context.Background(), queries.NewPopularMenuItemsQuery())
	s.Require().NoError(err)
	s.Len(popular, queries.ShowcaseSize)
	s.NotContains(names(popular), "Hidden Gem")
	for i := 1; i < len(popular); i++ {
		s.GreaterOrEqual(popular[i-1].Rating, popular[i].Rating)
	}

	fresh, err := handler.Handle(context.Background(), queries.NewNewMenuItemsQuery())
	s.Require().NoError(err)
	s.Len(fresh, queries.ShowcaseSize)
	s.Equal("Dish 11", fresh[0].Name)
}

func (s *MenuQueriesTestSuite) TestGet() {
	item := s.seedDish(dish{name: "Kheer", category: menu.Dessert, price: 70, available: false})
	handler := queries.NewListMenuItemsQueryHandler(s.db)

	got, err := handler.Get(context.Background(), item.ID())
	s.Require().NoError(err)
	s.Equal("Kheer", got.Name)
	s.Equal("Dessert", got.Category)
	s.False(got.IsAvailable)
	s.True(got.Price.Equal(decimal.NewFromInt(70)))

	_, err = handler.Get(context.Background(), kernel.NewUUID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
