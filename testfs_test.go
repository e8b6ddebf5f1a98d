package antglob

import "sort"

// testTree is an in-memory synthetic directory tree built from a flat
// list of "/"-separated file paths, the Go counterpart of the original
// implementation's list_to_tree/walk_from_list helpers: a stand-in for
// a real filesystem so walk-style tests don't need to touch disk.
type testTree struct {
	dirs  map[string]*testTree
	files []string
}

func newTestTree(paths []string) *testTree {
	root := &testTree{dirs: map[string]*testTree{}}
	for _, p := range paths {
		root.attach(SplitPath(p))
	}
	return root
}

func (t *testTree) attach(components []string) {
	if len(components) == 1 {
		t.files = append(t.files, components[0])
		return
	}
	node, rest := components[0], components[1:]
	child, ok := t.dirs[node]
	if !ok {
		child = &testTree{dirs: map[string]*testTree{}}
		t.dirs[node] = child
	}
	child.attach(rest)
}

// walkEntry mirrors one yield of os.walk(): the directory's full path
// components, its immediate subdirectory names, and its file names.
type walkEntry struct {
	path  []string
	dirs  []string
	files []string
}

// walk returns every directory in the tree in depth-first pre-order,
// rooted at path (typically nil, for the tree's own root).
func (t *testTree) walk(path []string) []walkEntry {
	var dirNames []string
	for name := range t.dirs {
		dirNames = append(dirNames, name)
	}
	sort.Strings(dirNames)

	files := append([]string(nil), t.files...)
	sort.Strings(files)

	entries := []walkEntry{{path: path, dirs: dirNames, files: files}}
	for _, name := range dirNames {
		child := t.dirs[name]
		childPath := append(append([]string(nil), path...), name)
		entries = append(entries, child.walk(childPath)...)
	}
	return entries
}

// matchingFiles walks the tree and returns every file path (as a
// "/"-joined string) that a Compiled glob matches, pruning descent
// into directories the glob's verdict rules out entirely.
func matchingFiles(c Compiled, t *testTree) []string {
	var out []string
	var visit func(path []string, node *testTree)
	visit = func(path []string, node *testTree) {
		verdict := c.MatchDirectory(path)
		if verdict.NoSubdirectories() && !verdict.Match() {
			return
		}
		for _, name := range node.files {
			full := append(append([]string(nil), path...), name)
			if c.MatchFile(full) {
				out = append(out, JoinPath(full))
			}
		}
		if verdict.NoSubdirectories() {
			return
		}
		var names []string
		for name := range node.dirs {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			visit(append(append([]string(nil), path...), name), node.dirs[name])
		}
	}
	visit(nil, t)
	return out
}
