package evaluator

// Heap owns every list and record a program creates. Containers are
// addressed by integer handle into per-kind arenas; the arenas only grow, so
// a live handle stays valid across collections. Swept slots go on free
// stacks and are reused by the next allocation.
type Heap struct {
	lists   [][]Value
	records []map[string]Value

	freeLists   []int
	freeRecords []int

	// pressure counts container slots plus elements and fields created
	// since the last collection.
	pressure int
}

func NewHeap() *Heap {
	return &Heap{}
}

func (h *Heap) AllocList(elems []Value) int {
	h.pressure += len(elems) + 1
	if n := len(h.freeLists); n > 0 {
		handle := h.freeLists[n-1]
		h.freeLists = h.freeLists[:n-1]
		h.lists[handle] = elems
		return handle
	}
	h.lists = append(h.lists, elems)
	return len(h.lists) - 1
}

func (h *Heap) AllocRecord(fields map[string]Value) int {
	h.pressure += len(fields) + 1
	if n := len(h.freeRecords); n > 0 {
		handle := h.freeRecords[n-1]
		h.freeRecords = h.freeRecords[:n-1]
		h.records[handle] = fields
		return handle
	}
	h.records = append(h.records, fields)
	return len(h.records) - 1
}

func (h *Heap) List(handle int) []Value {
	return h.lists[handle]
}

func (h *Heap) SetList(handle int, elems []Value) {
	h.lists[handle] = elems
}

func (h *Heap) Record(handle int) map[string]Value {
	return h.records[handle]
}

func (h *Heap) Pressure() int {
	return h.pressure
}
