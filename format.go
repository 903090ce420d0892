package timechart

import "strconv"

type formatterKind uint8

const (
	formatNumber formatterKind = iota
	formatPercent
	formatCustom
)

// Formatter turns an axis value into a tick label. It is a tagged
// variant rather than a bare function so that the built-in cases can
// be compared; see Equal.
type Formatter struct {
	kind     formatterKind
	decimals int
	fn       func(float64) string
}

// NumberFormatter formats values as plain decimals.
func NumberFormatter(decimals int) Formatter {
	return Formatter{kind: formatNumber, decimals: decimals}
}

// PercentFormatter formats values as percentages with the given number
// of decimals, e.g. 0.5 -> "50%".
func PercentFormatter(decimals int) Formatter {
	return Formatter{kind: formatPercent, decimals: decimals}
}

// CustomFormatter wraps an arbitrary formatting callback. Custom
// formatters are excluded from Equal.
func CustomFormatter(fn func(float64) string) Formatter {
	return Formatter{kind: formatCustom, fn: fn}
}

// Format renders v as a label. The zero Formatter formats as a whole
// number.
func (f Formatter) Format(v float64) string {
	switch f.kind {
	case formatPercent:
		return strconv.FormatFloat(v*100, 'f', f.decimals, 64) + "%"
	case formatCustom:
		return f.fn(v)
	default:
		return strconv.FormatFloat(v, 'f', f.decimals, 64)
	}
}

// Equal reports whether two formatters are interchangeable. Callback
// formatters carry no comparable identity, so Equal reports false
// whenever either side is custom. This is a deliberate limitation of
// closure-valued configuration, not an oversight.
func (f Formatter) Equal(o Formatter) bool {
	if f.kind == formatCustom || o.kind == formatCustom {
		return false
	}
	return f.kind == o.kind && f.decimals == o.decimals
}
