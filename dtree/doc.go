// Package dtree provides an in-memory hierarchical namespace: a simplified
// directory tree holding uniquely named entries, with no file contents,
// permissions or links attached.
//
// The main features of this package include:
//
//   - Defining the DTree and DEnt structures, which model directories and
//     their entries in a nested, hierarchical format with sorted children.
//   - Creating subdirectories and resolving a sequence of component names to
//     the subtree it denotes, through which the caller may read or mutate.
//   - Enumerating the path to every reachable leaf, and walking the tree with
//     a visitor to collect or inspect entries.
//   - Supporting the comparison of two directory structures to identify
//     differences such as added or removed subdirectories.
//
// Trees are not safe for concurrent use; callers that share a tree across
// goroutines must serialize access externally.
package dtree
