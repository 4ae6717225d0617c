// Void elements — <br>, <img>, <hr>, <input>, <meta>, <link> and friends —
// are not defined in this package. Every element type here is built on
// element[Parent], whose Node() always emits a matching close tag; giving a
// void element the same treatment would serialize valid-looking but
// incorrect HTML (`<br></br>`), while special-casing the writer for a
// handful of self-closing names would be a structural exception the rest
// of this package has no other use for. Adding one later means adding a
// self-closing flag to node.Tag and teaching bytecode.Write and
// render.Render about it; nothing here needs that variant today.
package html5
