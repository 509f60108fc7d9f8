package grammar

// arena allocates attributeHandles for one Grammar instance. The original
// evaluator used a process-wide static counter on Attribute; the Design
// Notes flag that as a hazard (concurrent Grammar instances, e.g. in
// tests, would share counter state). Scoping the allocator to the Grammar
// makes handles dense and reproducible per analysis run, and nothing else
// needs to reach across Grammar instances.
type arena struct {
	next attributeHandle
}

func (ar *arena) alloc(name string, index int, kind Kind, needed bool) *Attribute {
	h := ar.next
	ar.next++
	return newAttribute(h, name, index, kind, needed)
}
