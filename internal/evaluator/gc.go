package evaluator

// Collect runs one mark-and-sweep pass. Roots are every value reachable
// from the scope stack; marking recurses only into containers seen for the
// first time, so cyclic structures terminate. Sweeping empties unmarked
// slots and pushes their handles on the free stacks.
func (h *Heap) Collect(roots []Value) {
	markedLists := make([]bool, len(h.lists))
	markedRecords := make([]bool, len(h.records))

	for _, root := range roots {
		h.mark(root, markedLists, markedRecords)
	}

	for i := range h.lists {
		if markedLists[i] {
			continue
		}
		h.lists[i] = nil
		if !containsHandle(h.freeLists, i) {
			h.freeLists = append(h.freeLists, i)
		}
	}
	for i := range h.records {
		if markedRecords[i] {
			continue
		}
		h.records[i] = nil
		if !containsHandle(h.freeRecords, i) {
			h.freeRecords = append(h.freeRecords, i)
		}
	}

	h.pressure = 0
}

func (h *Heap) mark(v Value, markedLists, markedRecords []bool) {
	switch v.Kind {
	case KindList:
		if markedLists[v.Handle] {
			return
		}
		markedLists[v.Handle] = true
		for _, elem := range h.lists[v.Handle] {
			h.mark(elem, markedLists, markedRecords)
		}
	case KindRecord:
		if markedRecords[v.Handle] {
			return
		}
		markedRecords[v.Handle] = true
		for _, field := range h.records[v.Handle] {
			h.mark(field, markedLists, markedRecords)
		}
	}
}

func containsHandle(handles []int, h int) bool {
	for _, x := range handles {
		if x == h {
			return true
		}
	}
	return false
}
