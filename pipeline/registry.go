package pipeline

import (
	"sort"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/pseudoloc/method"
)

// factory creates a method for a pipeline configuration.
type factory func(*config) method.Method

var registry = treemap.NewWithStringComparator() // name -> factory
var aliases = treemap.NewWithStringComparator()  // alias -> []string

func init() {
	registry.Put("fakebidi", factory(func(*config) method.Method {
		return method.FakeBidi{}
	}))
	registry.Put("accents", factory(func(*config) method.Method {
		return method.Accents{}
	}))
	registry.Put("brackets", factory(func(*config) method.Method {
		return method.Brackets{}
	}))
	registry.Put("expander", factory(func(c *config) method.Method {
		return method.Expander{Context: c.widthContext}
	}))
	//
	aliases.Put("psaccent", []string{"accents", "expander", "brackets"})
	aliases.Put("psbidi", []string{"fakebidi"})
}

// lookup finds the factory for a method name.
func lookup(name string) (factory, bool) {
	f, found := registry.Get(name)
	if !found {
		return nil, false
	}
	return f.(factory), true
}

// expand resolves an alias to a list of method names. Names which are not
// aliases are returned as they are.
func expand(name string) []string {
	if chain, found := aliases.Get(name); found {
		return chain.([]string)
	}
	return []string{name}
}

// Names returns the names of all registered methods and aliases, sorted.
func Names() []string {
	names := make([]string, 0, registry.Size()+aliases.Size())
	for _, k := range registry.Keys() {
		names = append(names, k.(string))
	}
	for _, k := range aliases.Keys() {
		names = append(names, k.(string))
	}
	sort.Strings(names)
	return names
}

// IsAlias is a predicate to check if a name denotes a chain of methods.
func IsAlias(name string) bool {
	_, found := aliases.Get(name)
	return found
}
