package window

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"time"
)

// HTTPFS is a read-only fs.FS that fetches files over HTTP relative to a
// base URL. The browser build uses it to load sprites served next to the
// page.
type HTTPFS struct {
	Base   *url.URL
	Client *http.Client
	Ctx    context.Context
}

// NewHTTPFS parses base and returns a filesystem rooted there.
func NewHTTPFS(ctx context.Context, base string) (*HTTPFS, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("asset base url: %w", err)
	}
	if u.Path == "" || u.Path[len(u.Path)-1] != '/' {
		u.Path += "/"
	}
	return &HTTPFS{Base: u, Client: http.DefaultClient, Ctx: ctx}, nil
}

// Open fetches name and buffers its contents.
func (h *HTTPFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}

	ref := &url.URL{Path: name}
	req, err := http.NewRequestWithContext(h.Ctx, http.MethodGet, h.Base.ResolveReference(ref).String(), nil)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	resp, err := h.Client.Do(req)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	case resp.StatusCode != http.StatusOK:
		return nil, &fs.PathError{Op: "open", Path: name, Err: fmt.Errorf("http status %s", resp.Status)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}

	modTime, _ := http.ParseTime(resp.Header.Get("Last-Modified"))
	return &httpFile{
		Reader: bytes.NewReader(data),
		info:   httpFileInfo{name: path.Base(name), size: int64(len(data)), modTime: modTime},
	}, nil
}

type httpFile struct {
	*bytes.Reader
	info httpFileInfo
}

func (f *httpFile) Stat() (fs.FileInfo, error) { return f.info, nil }
func (f *httpFile) Close() error { return nil }

type httpFileInfo struct {
	name    string
	size    int64
	modTime time.Time
}

func (i httpFileInfo) Name() string { return i.name }
func (i httpFileInfo) Size() int64 { return i.size }
func (i httpFileInfo) Mode() fs.FileMode { return 0o444 }
func (i httpFileInfo) ModTime() time.Time { return i.modTime }
func (i httpFileInfo) IsDir() bool { return false }
func (i httpFileInfo) Sys() any { return nil }
