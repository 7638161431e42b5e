// Package requirements models recipe requirement lists and merges them
// without losing or duplicating packages.
package requirements

import "strings"

// Item is one entry of a requirement list.
//
// The set of implementations is closed: Binary, Source and Template.
type Item interface {
	isItem()
	String() string
}

// Concrete is an Item that names a package.
type Concrete interface {
	Item
	PackageName() string
}

// Binary is a package resolved from a channel. Spec is the full match spec,
// e.g. "ros-jazzy-rclcpp >=28.1".
type Binary struct {
	Name string
	Spec string
}

// Source is a package built from a source location.
type Source struct {
	Name     string
	Location string
}

// Template is an unevaluated recipe expression such as
// "${{ compiler('c') }}".
type Template struct {
	Raw string
}

func (Binary) isItem()   {}
func (Source) isItem()   {}
func (Template) isItem() {}

func (b Binary) PackageName() string { return b.Name }
func (s Source) PackageName() string { return s.Name }

func (b Binary) String() string   { return b.Spec }
func (s Source) String() string   { return s.Name + " @ " + s.Location }
func (t Template) String() string { return t.Raw }

// Set holds the requirement buckets of a recipe.
type Set struct {
	Build          []Item
	Host           []Item
	Run            []Item
	RunConstraints []Item
}

// ParseItem turns a requirement string into a Template when it contains a
// template expression and into a Binary otherwise.
func ParseItem(s string) Item {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "${{") {
		return Template{Raw: s}
	}
	return Binary{Name: packageName(s), Spec: s}
}

// ParseItems applies ParseItem to every string.
func ParseItems(specs ...string) []Item {
	out := make([]Item, 0, len(specs))
	for _, s := range specs {
		out = append(out, ParseItem(s))
	}
	return out
}

// Strings renders items in order.
func Strings(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.String())
	}
	return out
}

func packageName(spec string) string {
	if i := strings.IndexAny(spec, " <>=!~,[*"); i >= 0 {
		return spec[:i]
	}
	return spec
}
