package plan

// Registry records which annotated type each generated identifier belongs
// to. One registry covers one package, the scope generated names live in.
type Registry struct {
	owners map[string]string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{owners: make(map[string]string)}
}

// Claim records that owner emits name. When name is already taken it
// returns the previous owner and false, leaving the registry unchanged.
func (r *Registry) Claim(name, owner string) (string, bool) {
	if prev, ok := r.owners[name]; ok {
		return prev, false
	}

	r.owners[name] = owner

	return owner, true
}

// Owner returns the type that claimed name.
func (r *Registry) Owner(name string) (string, bool) {
	owner, ok := r.owners[name]

	return owner, ok
}
