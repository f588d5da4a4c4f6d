package core

// QualifiedNamer is the capability a host object exposes to render as a
// hierarchical path instead of a bare type name. Values implementing it
// render as their qualified name, optionally behind a configured root
// prefix.
type QualifiedNamer interface {
	QualifiedName() string
}
