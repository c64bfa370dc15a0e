// Package driver turns an ordered stream of construction calls into a
// scene tree.
//
// A Driver owns a root node and a Cursor pointing at the node new nodes are
// linked under.  Each add call creates one node, links it as the last child
// of the cursor node and returns it.  AddNode additionally enters the new
// group; SelectParent leaves it.
//
// Parameter calls decorate the most recently linked child of the cursor
// node, and only when that child has the expected type.  Otherwise the tree
// is left unchanged.  The returned error says what happened; the
// construction protocol itself never fails, so callers that want the
// lenient behaviour may ignore it.
//
//	d := driver.New()
//	d.AddNode()
//	d.AddTranslate(1, 2, 3)
//	d.AddSphere(5, -5, 5, 360)
//	d.SelectParent()
//	root := d.Root()
//
// A Driver is not safe for concurrent use; concurrent builds use separate
// drivers.
package driver
