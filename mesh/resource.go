package mesh

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// resource wraps a streamable local file or remote .obj resource.
type resource struct {
	io.ReadCloser
	url *url.URL
}

// Path returns the path or URL to this resource.
func (r *resource) Path() string {
	return r.url.String()
}

// newResource opens a local path or http(s):// URL. relTo, if non-nil,
// anchors a relative pathToResource to its own location.
func newResource(pathToResource string, relTo *resource) (*resource, error) {
	u, err := url.Parse(strings.Replace(pathToResource, `\`, `/`, -1))
	if err != nil {
		return nil, err
	}

	if u.Scheme == "" && relTo != nil {
		path := u.Path
		u, _ = u.Parse(relTo.url.String())
		prefix := u.Path
		if u.Scheme == "" {
			prefix, err = filepath.Abs(relTo.url.String())
			if err != nil {
				return nil, fmt.Errorf("mesh: could not resolve path relative to %s: %w", relTo.url.String(), err)
			}
		}
		u.Path = filepath.Dir(prefix) + "/" + path
	}

	var reader io.ReadCloser
	switch u.Scheme {
	case "":
		reader, err = os.Open(filepath.Clean(u.Path))
		if err != nil {
			return nil, err
		}
	case "http", "https":
		resp, err := http.Get(u.String())
		if err != nil {
			return nil, fmt.Errorf("mesh: could not fetch %q: %w", u.String(), err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("mesh: could not fetch %q: status %d", u.String(), resp.StatusCode)
		}
		reader = resp.Body
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	return &resource{ReadCloser: reader, url: u}, nil
}
