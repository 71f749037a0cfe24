package filesearch

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// walker encapsulates state of a single search.
type walker struct {
	fsys fs.FS
	opts Options
}

// FindFile returns the slash-separated path (relative to fsys, prefixed with
// root) of the first regular file called name under root.
func FindFile(fsys fs.FS, root, name string, opts ...Option) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return "", err
	}
	w := &walker{fsys: fsys, opts: o}
	found, err := w.findFile(cleanRoot(root), name, 0)
	if err != nil {
		return "", err
	}
	if found == "" {
		return "", fmt.Errorf("%w: file %q under %q", ErrNotFound, name, root)
	}
	return found, nil
}

// FindSubpath returns the path of the first occurrence of
// subpath[0]/.../subpath[n-1] under root, where the last element is a file.
func FindSubpath(fsys fs.FS, root string, subpath []string, opts ...Option) (string, error) {
	if len(subpath) == 0 {
		return "", ErrEmptySubpath
	}
	for _, s := range subpath {
		if err := checkName(s); err != nil {
			return "", err
		}
	}
	o, err := buildOptions(opts)
	if err != nil {
		return "", err
	}
	w := &walker{fsys: fsys, opts: o}
	found, err := w.findSubpath(cleanRoot(root), subpath, 0)
	if err != nil {
		return "", err
	}
	if found == "" {
		return "", fmt.Errorf("%w: subpath %q under %q", ErrNotFound, strings.Join(subpath, "/"), root)
	}
	return found, nil
}

// enter performs the per-directory bookkeeping shared by both searches:
// cancellation, depth limit, hook and listing. ok is false when the
// directory must be skipped.
func (w *walker) enter(dir string, depth int) (entries []fs.DirEntry, ok bool, err error) {
	select {
	case <-w.opts.Ctx.Done():
		return nil, false, w.opts.Ctx.Err()
	default:
	}
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil, false, nil
	}
	if w.opts.OnVisit != nil {
		if err = w.opts.OnVisit(dir, depth); err != nil {
			return nil, false, fmt.Errorf("filesearch: OnVisit hook for %q: %w", dir, err)
		}
	}
	entries, err = fs.ReadDir(w.fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) && depth > 0 {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("filesearch: read %q: %w", dir, err)
	}
	return entries, true, nil
}

func (w *walker) findFile(dir, name string, depth int) (string, error) {
	entries, ok, err := w.enter(dir, depth)
	if err != nil || !ok {
		return "", err
	}
	for _, e := range entries {
		p := path.Join(dir, e.Name())
		if e.IsDir() {
			found, err := w.findFile(p, name, depth+1)
			if err != nil || found != "" {
				return found, err
			}
			continue
		}
		if e.Type().IsRegular() && e.Name() == name {
			return p, nil
		}
	}
	return "", nil
}

func (w *walker) findSubpath(dir string, subpath []string, depth int) (string, error) {
	entries, ok, err := w.enter(dir, depth)
	if err != nil || !ok {
		return "", err
	}
	if found, err := w.anchored(dir, subpath, depth); err != nil || found != "" {
		return found, err
	}
	for _, e := range preferFirst(entries, subpath[0]) {
		if !e.IsDir() {
			continue
		}
		found, err := w.findSubpath(path.Join(dir, e.Name()), subpath, depth+1)
		if err != nil || found != "" {
			return found, err
		}
	}
	return "", nil
}

// anchored follows subpath starting exactly at dir, which sits at depth.
// It returns "" if any link of the chain is missing, of the wrong kind or
// below MaxDepth.
func (w *walker) anchored(dir string, subpath []string, depth int) (string, error) {
	if w.opts.MaxDepth >= 0 && depth+len(subpath)-1 > w.opts.MaxDepth {
		return "", nil
	}
	select {
	case <-w.opts.Ctx.Done():
		return "", w.opts.Ctx.Err()
	default:
	}
	p := path.Join(dir, subpath[0])
	info, err := fs.Stat(w.fsys, p)
	if err != nil {
		return "", nil
	}
	if len(subpath) == 1 {
		if info.Mode().IsRegular() {
			return p, nil
		}
		return "", nil
	}
	if !info.IsDir() {
		return "", nil
	}
	return w.anchored(p, subpath[1:], depth+1)
}

// preferFirst returns entries with the one called name moved to the front.
// The relative order of the others is preserved.
func preferFirst(entries []fs.DirEntry, name string) []fs.DirEntry {
	for i, e := range entries {
		if e.Name() != name {
			continue
		}
		if i == 0 {
			return entries
		}
		out := make([]fs.DirEntry, 0, len(entries))
		out = append(out, e)
		out = append(out, entries[:i]...)
		return append(out, entries[i+1:]...)
	}
	return entries
}

func checkName(name string) error {
	if name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return nil
}

func cleanRoot(root string) string {
	if root == "" {
		return "."
	}
	return path.Clean(root)
}
