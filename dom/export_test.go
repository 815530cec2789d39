package dom

// LocalLabel has the same type literal as an unnamed struct declared in
// package dom_test, but a different type.
var LocalLabel = struct{ label string }{}

var TypeName = typeName
