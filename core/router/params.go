package router

// WildcardKey is the parameter name under which a wildcard route binds
// the joined remainder of the matched path.
const WildcardKey = "*"

// Params holds path parameters extracted during a match, in the order
// they appear in the route pattern.
type Params struct {
	keys   []string
	values []string
}

// Get returns the value bound to the given parameter name.
func (p Params) Get(name string) (string, bool) {
	for i, k := range p.keys {
		if k == name {
			return p.values[i], true
		}
	}
	return "", false
}

// Keys returns the parameter names in pattern order.
func (p Params) Keys() []string {
	return p.keys
}

// Len returns the number of bound parameters.
func (p Params) Len() int {
	return len(p.keys)
}

func (p *Params) add(key, value string) {
	p.keys = append(p.keys, key)
	p.values = append(p.values, value)
}
