package pptx

import (
	"fmt"

	"github.com/tsawler/deckview/xmltree"
)

// builtinColors is the fallback scheme-color table, matching the
// default Office theme. Theme parts override these per name.
var builtinColors = map[string]string{
	"accent1":  "#4472C4",
	"accent2":  "#ED7D31",
	"accent3":  "#A5A5A5",
	"accent4":  "#FFC000",
	"accent5":  "#5B9BD5",
	"accent6":  "#70AD47",
	"dk1":      "#000000",
	"tx1":      "#000000",
	"lt1":      "#FFFFFF",
	"bg1":      "#FFFFFF",
	"dk2":      "#44546A",
	"tx2":      "#44546A",
	"lt2":      "#E7E6E6",
	"bg2":      "#E7E6E6",
	"hlink":    "#0563C1",
	"folHlink": "#954F72",
}

// schemeAliases maps the placeholder color names used in shape markup
// to the slot names a theme's clrScheme declares.
var schemeAliases = map[string]string{
	"tx1": "dk1",
	"tx2": "dk2",
	"bg1": "lt1",
	"bg2": "lt2",
}

// Theme resolves scheme-color names to hex colors. The zero value
// resolves everything through the built-in table.
type Theme struct {
	colors map[string]string
}

// Resolve returns the "#RRGGBB" color for a scheme-color name, falling
// back to the built-in table when the theme does not declare the name.
// Unknown names return an empty string.
func (t *Theme) Resolve(name string) string {
	if t != nil && t.colors != nil {
		if c, ok := t.colors[name]; ok {
			return c
		}
		if alias, ok := schemeAliases[name]; ok {
			if c, ok := t.colors[alias]; ok {
				return c
			}
		}
	}
	return builtinColors[name]
}

// ParseTheme reads the clrScheme from a theme part.
func ParseTheme(data []byte) (*Theme, error) {
	root, err := xmltree.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing theme: %w", err)
	}

	scheme := root.FindFirst(nsDrawingML, "clrScheme")
	if scheme == nil {
		return &Theme{}, nil
	}

	colors := make(map[string]string)
	for _, slot := range scheme.Children {
		var hex string
		if srgb := slot.FindChild(nsDrawingML, "srgbClr"); srgb != nil {
			hex = srgb.Attr("val")
		} else if sys := slot.FindChild(nsDrawingML, "sysClr"); sys != nil {
			hex = sys.Attr("lastClr")
		}
		if c, ok := normalizeHex(hex); ok {
			colors[slot.Name.Local] = c
		}
	}

	return &Theme{colors: colors}, nil
}
