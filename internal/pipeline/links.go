package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// RelinkHTML adjusts references in an HTML companion document so it works
// when written away from its markdown source:
//   - a[href] pointing at a relative .md file is redirected to the sibling
//     .html file (fragment kept)
//   - img[src] with a relative path becomes a file:// URL under sourceDir
//
// URLs, anchors and absolute paths are left alone, as are image paths that
// escape sourceDir. An empty sourceDir only applies the link redirection.
func RelinkHTML(doc, sourceDir string) (string, error) {
	var absDir string
	if sourceDir != "" {
		var err error
		if absDir, err = filepath.Abs(sourceDir); err != nil {
			return "", err
		}
	}

	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return "", err
	}
	relink(root, absDir)

	var sb strings.Builder
	if err := html.Render(&sb, root); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func relink(n *html.Node, absDir string) {
	if n.Type == html.ElementNode {
		for i, a := range n.Attr {
			switch {
			case n.Data == "a" && a.Key == "href":
				n.Attr[i].Val = markdownToHTMLLink(a.Val)
			case n.Data == "img" && a.Key == "src" && absDir != "":
				n.Attr[i].Val = imageFileURL(a.Val, absDir)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		relink(c, absDir)
	}
}

func isLocalPath(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return false
	}
	if u, err := url.Parse(ref); err != nil || u.Scheme != "" {
		return false
	}
	return !filepath.IsAbs(ref) && !strings.HasPrefix(ref, "/")
}

func markdownToHTMLLink(ref string) string {
	if !isLocalPath(ref) {
		return ref
	}
	path, fragment, _ := strings.Cut(ref, "#")
	ext := filepath.Ext(path)
	if !strings.EqualFold(ext, ".md") && !strings.EqualFold(ext, ".markdown") {
		return ref
	}
	out := strings.TrimSuffix(path, ext) + ".html"
	if fragment != "" {
		out += "#" + fragment
	}
	return out
}

func imageFileURL(ref, absDir string) string {
	if !isLocalPath(ref) {
		return ref
	}
	abs := filepath.Join(absDir, filepath.FromSlash(ref))
	rel, err := filepath.Rel(absDir, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ref
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}
