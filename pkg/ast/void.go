package ast

// voidTags are the HTML elements that can never have children. The set
// is case-sensitive: only the lowercase names are void.
var voidTags = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoid reports whether tag is a void element name.
func IsVoid(tag string) bool {
	return voidTags[tag]
}
