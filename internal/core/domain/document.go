package domain

// Document is the full state of a host document: every collection and every
// variable, in host enumeration order.
type Document struct {
	Collections []Collection
	Variables   []Variable
}
