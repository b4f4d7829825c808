// Package value defines the tree of typed values a configuration document is decoded into.
//
// A Value is exactly one of: a Table (string-keyed, insertion-ordered), a Sequence, or a
// scalar (string, integer, float, bool or datetime). There is no implicit coercion between
// kinds: an integer is never reported as a float, and a sequence is never treated as a table.
//
// Tables are held by pointer, so a Value of kind Table shares its *Table with every copy of
// the Value. Use Clone to obtain an independent tree.
//
// Navigation:
//
//	root := value.TableOf(tbl)
//	child, ok := root.Child("server")
//	if sub, isTable := child.AsTable(); isTable {
//	    sub.Set("port", value.Int(8080))
//	}
package value
