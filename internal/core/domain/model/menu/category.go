package menu

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Category is the section of the menu a dish is listed under.
type Category string

const (
	Appetizer  Category = "Appetizer"
	MainCourse Category = "Main Course"
	Dessert    Category = "Dessert"
)

var ErrInvalidCategory = errs.NewValueIsInvalidError("category")

// Categories lists every category in menu order.
func Categories() []Category {
	return []Category{Appetizer, MainCourse, Dessert}
}

// ParseCategory matches s exactly against the known category names.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q is not one of Appetizer, Main Course, Dessert", ErrInvalidCategory, s)
}

func (c Category) String() string {
	return string(c)
}
