// Package tokens implements the design-token store: a nested, immutable tree
// of named primitive values (colors, spacing, font sizes) with path lookups
// and alias interpolation.
package tokens

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/style"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Tree is a nested token mapping. Leaves are strings or numbers.
type Tree = style.Object

// maxAliasDepth bounds alias chains; cycles are rejected at construction so
// this only guards against pathological but acyclic chains.
const maxAliasDepth = 32

var aliasPattern = regexp.MustCompile(`^\{([^{}\s]+)\}$`)

// Store holds a validated token tree. It is never mutated after NewStore
// returns; re-theming builds a new Store.
type Store struct {
	tree    Tree
	aliases map[string][]string
}

// NewStore deep-merges override onto base and validates the result.
func NewStore(base, override Tree) (*Store, error) {
	merged := style.Merge(base, override)

	if err := validateLeaves(nil, merged); err != nil {
		return nil, err
	}

	s := &Store{tree: merged, aliases: map[string][]string{}}
	if err := s.indexAliases(); err != nil {
		return nil, err
	}

	return s, nil
}

// MustStore is NewStore for static trees known to be valid.
func MustStore(base, override Tree) *Store {
	s, err := NewStore(base, override)
	if err != nil {
		panic(err)
	}
	return s
}

func validateLeaves(path []string, tree Tree) error {
	for key, value := range tree {
		here := append(append([]string(nil), path...), key)
		if value == nil {
			continue
		}
		if nested, ok := style.AsObject(value); ok {
			if err := validateLeaves(here, nested); err != nil {
				return err
			}
			continue
		}
		if !style.IsScalar(value) {
			return themeerrors.NewValidationError(strings.Join(here, "."), fmt.Sprintf("token value must be a string or number, got %T", value), nil)
		}
	}
	return nil
}

func (s *Store) indexAliases() error {
	graph := make(map[string]string)

	var err error
	s.Walk(func(path []string, value any) {
		if err != nil {
			return
		}
		target, ok := AliasTarget(value)
		if !ok {
			return
		}
		resolved, lookupErr := s.splitPath(target)
		if lookupErr != nil {
			err = themeerrors.NewValidationError(strings.Join(path, "."), fmt.Sprintf("alias %q does not resolve", target), lookupErr)
			return
		}
		if node, _ := s.Get(resolved...); node != nil {
			if _, isGroup := style.AsObject(node); isGroup {
				err = themeerrors.NewValidationError(strings.Join(path, "."), fmt.Sprintf("alias %q names a token group, not a value", target), nil)
				return
			}
		}
		from := strings.Join(path, ".")
		to := strings.Join(resolved, ".")
		s.aliases[from] = resolved
		graph[from] = to
	})
	if err != nil {
		return err
	}

	if cycle := detectCycle(graph); len(cycle) > 0 {
		return themeerrors.NewValidationError("tokens", fmt.Sprintf("alias cycle detected: %s", strings.Join(cycle, " -> ")), themeerrors.ErrTokenCycle)
	}

	return nil
}

// AliasTarget reports whether value is an alias of the form {path.to.token}.
func AliasTarget(value any) (string, bool) {
	str, ok := value.(string)
	if !ok {
		return "", false
	}
	m := aliasPattern.FindStringSubmatch(strings.TrimSpace(str))
	if len(m) != 2 {
		return "", false
	}
	return m[1], true
}

// Get returns the scalar or sub-tree stored at path. Sub-trees are copies.
func (s *Store) Get(path ...string) (any, error) {
	if len(path) == 0 {
		return style.Clone(s.tree), nil
	}

	var node any = s.tree
	for _, segment := range path {
		obj, ok := style.AsObject(node)
		if !ok {
			return nil, themeerrors.NewTokenNotFoundError(path, segment)
		}
		next, ok := obj[segment]
		if !ok || next == nil {
			return nil, themeerrors.NewTokenNotFoundError(path, segment)
		}
		node = next
	}

	if obj, ok := style.AsObject(node); ok {
		return style.Clone(obj), nil
	}
	return node, nil
}

// Lookup resolves a dotted path. Keys that themselves contain dots (such as
// the spacing token "0.5") are matched greedily.
func (s *Store) Lookup(dotted string) (any, error) {
	path, err := s.splitPath(dotted)
	if err != nil {
		return nil, err
	}
	return s.Get(path...)
}

// Resolve looks up a dotted path and follows aliases to a final value.
func (s *Store) Resolve(dotted string) (any, error) {
	path, err := s.splitPath(dotted)
	if err != nil {
		return nil, err
	}

	for depth := 0; depth < maxAliasDepth; depth++ {
		target, ok := s.aliases[strings.Join(path, ".")]
		if !ok {
			break
		}
		path = target
	}

	return s.Get(path...)
}

// Has reports whether dotted names an existing token or group.
func (s *Store) Has(dotted string) bool {
	_, err := s.Lookup(dotted)
	return err == nil
}

// IsAlias reports whether the leaf at dotted is an alias of another token.
func (s *Store) IsAlias(dotted string) (string, bool) {
	path, err := s.splitPath(dotted)
	if err != nil {
		return "", false
	}
	target, ok := s.aliases[strings.Join(path, ".")]
	return strings.Join(target, "."), ok
}

// AliasPath returns the exact key path an alias leaf points at.
func (s *Store) AliasPath(path []string) ([]string, bool) {
	target, ok := s.aliases[strings.Join(path, ".")]
	if !ok {
		return nil, false
	}
	return append([]string(nil), target...), true
}

// Path splits dotted into the exact key path it names in the store.
func (s *Store) Path(dotted string) ([]string, error) {
	return s.splitPath(dotted)
}

func (s *Store) splitPath(dotted string) ([]string, error) {
	trimmed := strings.TrimSpace(dotted)
	if trimmed == "" {
		return nil, themeerrors.NewTokenNotFoundError(nil, "")
	}
	segments := strings.Split(trimmed, ".")

	var path []string
	node := s.tree
	for i := 0; i < len(segments); {
		matched := false
		for j := len(segments); j > i; j-- {
			key := strings.Join(segments[i:j], ".")
			value, ok := node[key]
			if !ok || value == nil {
				continue
			}
			path = append(path, key)
			i = j
			matched = true
			if nested, isObj := style.AsObject(value); isObj {
				node = nested
			} else if i < len(segments) {
				return nil, themeerrors.NewTokenNotFoundError(segments, segments[i])
			}
			break
		}
		if !matched {
			return nil, themeerrors.NewTokenNotFoundError(segments, segments[i])
		}
	}
	return path, nil
}

// Tree returns a copy of the full token tree.
func (s *Store) Tree() Tree {
	return style.Clone(s.tree)
}

// Walk visits every leaf in deterministic (lexically sorted) order.
func (s *Store) Walk(fn func(path []string, value any)) {
	Walk(s.tree, fn)
}

// Walk visits every leaf of tree in deterministic order.
func Walk(tree Tree, fn func(path []string, value any)) {
	walk(nil, tree, fn)
}

func walk(prefix []string, tree Tree, fn func(path []string, value any)) {
	for _, key := range style.Keys(tree) {
		value := tree[key]
		if value == nil {
			continue
		}
		path := append(append([]string(nil), prefix...), key)
		if nested, ok := style.AsObject(value); ok {
			walk(path, nested, fn)
			continue
		}
		fn(path, value)
	}
}

// Paths returns every leaf path joined with dots, sorted.
func (s *Store) Paths() []string {
	var out []string
	s.Walk(func(path []string, _ any) {
		out = append(out, strings.Join(path, "."))
	})
	sort.Strings(out)
	return out
}

// IsNotFound reports whether err is a token lookup miss.
func IsNotFound(err error) bool {
	return errors.Is(err, themeerrors.ErrTokenNotFound)
}
