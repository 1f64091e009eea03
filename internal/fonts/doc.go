// Package fonts resolves the typefaces drawn on a tag.
//
// # Roles
//
// A tag uses nine font roles, each a (weight, pixel size) pair:
//
//	small        regular 14
//	medium       regular 35
//	medium-bold  bold    28
//	at-sight     bold    26
//	installment  bold    38
//	small-bold   bold    20
//	large-bold   bold    40
//	price        bold    85
//	from-price   bold    70
//
// # Resolution Order
//
// For each role the Resolver walks an ordered candidate list and keeps the
// first file that parses:
//
//	Resolver
//	    │
//	    ├── explicit files   - WithFiles (config fonts.regular / fonts.bold)
//	    ├── operator dirs    - WithDirs (--font-dir, CARTAZES_FONT_DIRS)
//	    ├── platform bucket  - windows, darwin or linux-style system folders
//	    └── built-in face    - basicfont.Face7x13, fixed size
//
// Resolution never fails. A role that reaches the built-in face is reported
// by FontSet.Fallbacks so callers can warn about degraded output.
package fonts
