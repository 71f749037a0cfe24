// Package filesearch finds files in a directory tree with depth-first search.
//
// Two searches are provided, both over an fs.FS so that callers can pass
// os.DirFS for the real disk or testing/fstest.MapFS in tests:
//
//   - FindFile(fsys, root, name): the first regular file called name, in
//     depth-first pre-order with entries sorted by name. A directory is
//     descended into as soon as it is met.
//   - FindSubpath(fsys, root, subpath): the first place where the chain
//     subpath[0]/subpath[1]/.../file exists. At every directory the chain is
//     first tried anchored right there; otherwise the search goes deeper,
//     visiting a child named subpath[0] before its siblings.
//
// Options:
//
//   - WithContext(ctx)     cancellation, checked once per directory.
//   - WithOnVisit(fn)      pre-order hook per directory; an error aborts.
//   - WithMaxDepth(limit)  do not descend below limit (root is depth 0).
//
// Errors:
//
//   - ErrNotFound          nothing matched.
//   - ErrEmptySubpath      FindSubpath called with no elements.
//   - ErrBadName           a name is empty or contains a slash.
//   - ErrOptionViolation   negative MaxDepth other than the default -1.
//
// Directories that cannot be read because of fs.ErrPermission are skipped;
// any other read error aborts the search and is returned wrapped.
package filesearch
