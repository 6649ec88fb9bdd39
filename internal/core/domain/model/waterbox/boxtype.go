package waterbox

import (
	"fmt"

	"waterinfra/internal/pkg/errs"
)

// BoxType classifies the physical installation of a water connection point.
type BoxType int

const (
	// BoxTypeUnknown represents an invalid or undefined box type.
	BoxTypeUnknown BoxType = iota

	// BoxTypeDomestic is a household connection.
	BoxTypeDomestic

	// BoxTypeCommercial is a connection serving a commercial property.
	BoxTypeCommercial

	// BoxTypeCommunal is a shared connection serving several households.
	BoxTypeCommunal
)

func getBoxTypeStrings() map[BoxType]string {
	return map[BoxType]string{
		BoxTypeUnknown:    "Unknown",
		BoxTypeDomestic:   "Domestic",
		BoxTypeCommercial: "Commercial",
		BoxTypeCommunal:   "Communal",
	}
}

// BoxTypeFromString parses a box type from its string representation.
func BoxTypeFromString(s string) (BoxType, error) {
	for boxType, str := range getBoxTypeStrings() {
		if str == s && boxType != BoxTypeUnknown {
			return boxType, nil
		}
	}
	return BoxTypeUnknown, errs.NewValueIsInvalidErrorWithCause("boxType",
		fmt.Errorf("%q is not a valid box type", s))
}

// Validate checks if the BoxType value is valid.
func (t BoxType) Validate() error {
	if _, ok := getBoxTypeStrings()[t]; !ok || t == BoxTypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("boxType",
			fmt.Errorf("%d is not a valid box type", t))
	}
	return nil
}

// String returns the human-readable name of the box type.
func (t BoxType) String() string {
	if str, ok := getBoxTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
