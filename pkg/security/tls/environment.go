package tls

// DevelopmentName is the name of the development deployment environment.
const DevelopmentName = "development"

// Environment is a deployment environment. It is either Development or a
// named non-development environment such as "staging" or "prod"; the zero
// value is Development.
type Environment struct {
	name string
}

// Development is the environment in which services talk to each other
// directly with self-signed certificates.
var Development = Environment{}

// ParseEnvironment maps an environment name to an Environment. The empty
// name and "development" both yield Development.
func ParseEnvironment(name string) Environment {
	if name == "" || name == DevelopmentName {
		return Development
	}
	return Environment{name: name}
}

// IsDevelopment reports whether e is the development environment.
func (e Environment) IsDevelopment() bool {
	return e.name == ""
}

// Name returns the environment name used in TLS material file names.
func (e Environment) Name() string {
	if e.IsDevelopment() {
		return DevelopmentName
	}
	return e.name
}

// String implements fmt.Stringer.
func (e Environment) String() string {
	return e.Name()
}
