// Package layout describes where each piece of a tag is drawn. The default
// descriptor is compiled into the binary; Parse exists for tests and library
// callers with a different template.
package layout

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/LorhanBezerra/gerador-cartazes/internal/fonts"
	"github.com/LorhanBezerra/gerador-cartazes/internal/yamlutil"
)

//go:embed default.yaml
var defaultYAML []byte

// Sentinel errors for layout operations.
var (
	ErrParse        = errors.New("failed to parse layout")
	ErrInvalidItem  = errors.New("invalid layout item")
	ErrUnknownField = errors.New("unknown field")
	ErrUnknownRole  = errors.New("unknown font role")
	ErrInvalidColor = errors.New("invalid color")
)

// Record fields an item can display, in spreadsheet column order.
const (
	FieldCode             = "code"
	FieldDescription      = "description"
	FieldPriceFrom        = "price_from"
	FieldPriceTo          = "price_to"
	FieldInstallmentPrice = "installment_price"
	FieldBranch           = "branch"
	FieldDefectNote       = "defect_note"
	FieldTreatmentNote    = "treatment_note"
	FieldWarehouse        = "warehouse"
)

// Fields lists every field in spreadsheet column order.
var Fields = []string{
	FieldCode, FieldDescription, FieldPriceFrom, FieldPriceTo, FieldInstallmentPrice,
	FieldBranch, FieldDefectNote, FieldTreatmentNote, FieldWarehouse,
}

// Point is a pixel position on the template.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Line is a straight stroke from the item's position to To.
type Line struct {
	To    Point   `yaml:"to"`
	Width float64 `yaml:"width"`
}

// Item is one drawing instruction. Exactly one of Text, Field or Line is set.
type Item struct {
	Name     string     `yaml:"name"`
	Text     string     `yaml:"text"`     // literal text, may contain '\n'
	Field    string     `yaml:"field"`    // record field to display
	Prefix   string     `yaml:"prefix"`   // prepended to the field value
	MaxRunes int        `yaml:"maxRunes"` // truncate the field value, 0 = no limit
	At       Point      `yaml:"at"`
	Font     fonts.Role `yaml:"font"`
	Color    string     `yaml:"color"`
	Line     *Line      `yaml:"line"`

	rgba color.NRGBA
}

// IsLine reports whether the item draws a line rather than text.
func (it Item) IsLine() bool {
	return it.Line != nil
}

// RGBA returns the item's color, resolved by Validate.
func (it Item) RGBA() color.NRGBA {
	return it.rgba
}

// Layout is an ordered list of drawing instructions.
type Layout struct {
	Items []Item `yaml:"items"`
}

// Parse decodes and validates a layout descriptor. Unknown keys are rejected.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yamlutil.UnmarshalStrict(data, &l); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

var defaultLayout = sync.OnceValues(func() (*Layout, error) {
	return Parse(defaultYAML)
})

// Default returns a copy of the built-in layout.
func Default() *Layout {
	l, err := defaultLayout()
	if err != nil {
		panic("layout: built-in descriptor is invalid: " + err.Error())
	}
	return l.Clone()
}

// Clone returns a deep copy of l.
func (l *Layout) Clone() *Layout {
	c := &Layout{Items: make([]Item, len(l.Items))}
	for i, it := range l.Items {
		if it.Line != nil {
			line := *it.Line
			it.Line = &line
		}
		c.Items[i] = it
	}
	return c
}

// Validate checks every item and resolves its color.
func (l *Layout) Validate() error {
	if len(l.Items) == 0 {
		return fmt.Errorf("%w: layout has no items", ErrInvalidItem)
	}
	for i := range l.Items {
		if err := l.Items[i].validate(); err != nil {
			return fmt.Errorf("item %d (%s): %w", i, l.Items[i].Name, err)
		}
	}
	return nil
}

func (it *Item) validate() error {
	kinds := 0
	if it.Text != "" {
		kinds++
	}
	if it.Field != "" {
		kinds++
	}
	if it.Line != nil {
		kinds++
	}
	if kinds != 1 {
		return fmt.Errorf("%w: exactly one of text, field or line must be set", ErrInvalidItem)
	}

	rgba, err := ParseColor(it.Color)
	if err != nil {
		return err
	}
	it.rgba = rgba

	if it.Line != nil {
		if it.Line.Width <= 0 {
			return fmt.Errorf("%w: line width must be positive", ErrInvalidItem)
		}
		return nil
	}

	if !it.Font.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownRole, it.Font)
	}
	if it.Field != "" && !slices.Contains(Fields, it.Field) {
		return fmt.Errorf("%w: %q", ErrUnknownField, it.Field)
	}
	if it.MaxRunes < 0 {
		return fmt.Errorf("%w: maxRunes must not be negative", ErrInvalidItem)
	}
	return nil
}

// ParseColor accepts black, red, white or #rrggbb.
func ParseColor(s string) (color.NRGBA, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black":
		return color.NRGBA{A: 0xff}, nil
	case "red":
		return color.NRGBA{R: 0xff, A: 0xff}, nil
	case "white":
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, nil
	}

	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok || len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Truncate returns the first n runes of s; n <= 0 returns s unchanged.
func Truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
