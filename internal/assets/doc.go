// Package assets provides the stylesheets of the HTML companion document.
//
// Styles are plain CSS files looked up by name. The built-in styles are
// embedded in the binary; a custom directory may add new styles or shadow
// built-in ones:
//
//	<basePath>/
//	  styles/
//	    report.css
//	    default.css   # replaces the embedded default
//
// Names never carry the .css extension or path components. Lookups in a
// custom directory are confined to it, symlinks included.
package assets
