package assets

// DefaultStyleName is the name of the built-in stylesheet.
const DefaultStyleName = "default"

// StyleLoader loads CSS stylesheets by name (without .css extension).
// Implementations return ErrStyleNotFound for unknown names and
// ErrInvalidAssetName for names with path components.
type StyleLoader interface {
	LoadStyle(name string) (string, error)
}

// defaultLoader backs the package-level LoadStyle.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a built-in style by name.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// Styles lists the names of the built-in styles.
func Styles() []string {
	return defaultLoader.Names()
}
