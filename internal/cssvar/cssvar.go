// Package cssvar projects a token tree onto CSS custom properties.
//
// Every leaf becomes one declaration whose name is a pure function of its
// token path, so projecting the same tokens twice always yields the same
// names and the same rendered sheet.
package cssvar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/style"
	"github.com/alexisbeaulieu97/themekit/internal/tokens"
)

const (
	DefaultPrefix    = "chakra"
	DefaultSeparator = "-"
	DefaultSelector  = ":root"
)

// Options controls variable naming.
type Options struct {
	Prefix    string
	Separator string
}

// DefaultOptions returns the naming used when a theme does not configure one.
func DefaultOptions() Options {
	return Options{Prefix: DefaultPrefix, Separator: DefaultSeparator}
}

func (o Options) separator() string {
	if o.Separator == "" {
		return DefaultSeparator
	}
	return o.Separator
}

// Projection is the result of projecting a token tree.
type Projection struct {
	// Vars maps a custom property name (including the leading "--") to its literal value.
	Vars map[string]string
	// Refs mirrors the input tree with every leaf replaced by var(--name).
	Refs tokens.Tree

	opts Options
}

var escaper = strings.NewReplacer(".", `\.`, "/", `\/`, " ", "-")

// Name derives the custom property name for a token path.
func Name(path []string, opts Options) string {
	parts := make([]string, 0, len(path)+1)
	if opts.Prefix != "" {
		parts = append(parts, opts.Prefix)
	}
	for _, segment := range path {
		parts = append(parts, escaper.Replace(segment))
	}
	return "--" + strings.Join(parts, opts.separator())
}

// Reference wraps a custom property name in var().
func Reference(name string) string {
	return fmt.Sprintf("var(%s)", name)
}

// Project walks tree and builds the flat variable map and the reference mirror.
// Alias leaves ({colors.gray.200}) project to a reference of their target.
func Project(tree tokens.Tree, opts Options) Projection {
	p := Projection{
		Vars: make(map[string]string),
		Refs: tokens.Tree{},
		opts: opts,
	}

	tokens.Walk(tree, func(path []string, value any) {
		name := Name(path, opts)
		literal := style.FormatValue(value)
		if target, ok := tokens.AliasTarget(value); ok {
			literal = Reference(Name(strings.Split(target, "."), opts))
		}
		p.Vars[name] = literal
		setPath(p.Refs, path, Reference(name))
	})

	return p
}

// ProjectStore projects a store. Alias targets are taken from the store so
// keys containing dots keep their escaped form.
func ProjectStore(store *tokens.Store, opts Options) Projection {
	p := Project(store.Tree(), opts)
	store.Walk(func(path []string, _ any) {
		if target, ok := store.AliasPath(path); ok {
			p.Vars[Name(path, opts)] = Reference(Name(target, opts))
		}
	})
	return p
}

func setPath(tree tokens.Tree, path []string, value any) {
	node := tree
	for _, segment := range path[:len(path)-1] {
		next, ok := node[segment].(tokens.Tree)
		if !ok {
			next = tokens.Tree{}
			node[segment] = next
		}
		node = next
	}
	node[path[len(path)-1]] = value
}

// Names returns every variable name in lexical order.
func (p Projection) Names() []string {
	names := make([]string, 0, len(p.Vars))
	for name := range p.Vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Ref returns the var() reference for a dotted token path, if projected.
func (p Projection) Ref(path ...string) (string, bool) {
	var node any = p.Refs
	for _, segment := range path {
		obj, ok := style.AsObject(node)
		if !ok {
			return "", false
		}
		node, ok = obj[segment]
		if !ok {
			return "", false
		}
	}
	ref, ok := node.(string)
	return ref, ok
}

// Options returns the naming options used to build the projection.
func (p Projection) Options() Options {
	return p.opts
}

// Sheet renders the declarations under selector in deterministic order.
func (p Projection) Sheet(selector string) string {
	if selector == "" {
		selector = DefaultSelector
	}

	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, name := range p.Names() {
		fmt.Fprintf(&b, "  %s: %s;\n", name, p.Vars[name])
	}
	b.WriteString("}\n")
	return b.String()
}
