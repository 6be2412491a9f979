package canvas

// version follows semantic versioning. Bindings compare the major number.
const version = "1.0.0"

// Version returns the library version.
func Version() string {
	return version
}
