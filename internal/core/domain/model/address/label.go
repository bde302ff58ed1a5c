package address

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

type Label string

const (
	LabelHome  Label = "Home"
	LabelWork  Label = "Work"
	LabelOther Label = "Other"
)

var ErrInvalidLabel = errs.NewValueIsInvalidError("label")

// ParseLabel defaults an empty label to Home.
func ParseLabel(s string) (Label, error) {
	switch Label(s) {
	case "":
		return LabelHome, nil
	case LabelHome, LabelWork, LabelOther:
		return Label(s), nil
	default:
		return "", fmt.Errorf("%w: %q is not one of Home, Work, Other", ErrInvalidLabel, s)
	}
}

func (l Label) String() string {
	return string(l)
}
