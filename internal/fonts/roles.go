package fonts

import "slices"

// Role names a font slot in the tag layout.
type Role string

// Font roles used by the layout descriptor.
const (
	Small       Role = "small"
	Medium      Role = "medium"
	MediumBold  Role = "medium-bold"
	AtSight     Role = "at-sight"
	Installment Role = "installment"
	SmallBold   Role = "small-bold"
	LargeBold   Role = "large-bold"
	Price       Role = "price"
	FromPrice   Role = "from-price"
)

// Weight selects which candidate list a role is resolved from.
type Weight int

const (
	Regular Weight = iota
	Bold
)

func (w Weight) String() string {
	if w == Bold {
		return "bold"
	}
	return "regular"
}

type roleDef struct {
	weight Weight
	size   float64
}

var roleDefs = map[Role]roleDef{
	Small:       {Regular, 14},
	Medium:      {Regular, 35},
	MediumBold:  {Bold, 28},
	AtSight:     {Bold, 26},
	Installment: {Bold, 38},
	SmallBold:   {Bold, 20},
	LargeBold:   {Bold, 40},
	Price:       {Bold, 85},
	FromPrice:   {Bold, 70},
}

var roleOrder = []Role{Small, Medium, MediumBold, AtSight, Installment, SmallBold, LargeBold, Price, FromPrice}

// Roles returns every role in a stable order.
func Roles() []Role {
	return slices.Clone(roleOrder)
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleDefs[r]
	return ok
}

// Weight returns the role's weight. Unknown roles are Regular.
func (r Role) Weight() Weight {
	return roleDefs[r].weight
}

// Size returns the role's size in pixels (points at 72 DPI).
func (r Role) Size() float64 {
	return roleDefs[r].size
}
