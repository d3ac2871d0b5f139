package settings

//go:generate mockgen -source=interfaces.go -destination=../mock/resolver_mock.go -package=mock

// Resolver locates the defaults a component ships.
//
// A component without defaults is not an error: Resolve returns found ==
// false and a nil error. Any returned error means the defaults exist but
// could not be loaded.
type Resolver interface {
	Resolve(component string, live Reader) (defaults Tree, found bool, err error)
}
