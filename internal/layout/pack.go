package layout

// Item describes one field to place: its size and alignment in bytes.
// Align must be a power of two.
type Item struct {
	Size  uintptr
	Align uintptr
}

// Placement is the result of packing a sequence of items.
type Placement struct {
	Offsets []uintptr
	Size    uintptr
	Align   uintptr
}

// AlignTo rounds offset up to the next multiple of align.
func AlignTo(offset, align uintptr) uintptr {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// Pack places items in declaration order and returns their offsets
// together with the padded total size. An empty sequence packs to size
// zero with alignment one.
func Pack(items []Item) Placement {
	if len(items) == 0 {
		return Placement{Align: 1}
	}

	offsets := make([]uintptr, len(items))
	maxAlign := uintptr(1)
	offset := uintptr(0)

	for i, it := range items {
		offset = AlignTo(offset, it.Align)
		offsets[i] = offset

		if it.Align > maxAlign {
			maxAlign = it.Align
		}

		offset += it.Size
	}

	return Placement{
		Offsets: offsets,
		Size:    AlignTo(offset, maxAlign),
		Align:   maxAlign,
	}
}
