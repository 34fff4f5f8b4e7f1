package buffer

// optimize reduces a pending UndoGroup to an equivalent group of minimum
// size (§4.4): reorder modifications into coordinate order, merge
// contiguous compatible pairs, cancel overlapping insert/erase pairs, and
// drop anything left empty. Repeated to a fixpoint. g is not modified;
// the result is a fresh slice.
func optimize(g UndoGroup) UndoGroup {
	out := append(UndoGroup(nil), g...)
	for len(out) > 1 {
		reordered := reorderSort(out)
		merged, mergedProgress := mergePass(out)
		out = merged
		dropped, droppedProgress := dropEmpty(out)
		out = dropped
		if !reordered && !mergedProgress && !droppedProgress {
			break
		}
	}
	return out
}

// reorderSort bubble-sorts g into non-decreasing coordinate order in place,
// adjusting coordinates/content at each swap so the net effect of the
// sequence is preserved. Returns whether any swap occurred.
func reorderSort(g UndoGroup) bool {
	changed := false
	for {
		swapped := false
		for i := 0; i+1 < len(g); i++ {
			if g[i+1].Coord.Less(g[i].Coord) {
				g[i], g[i+1] = reorderStep(g[i], g[i+1])
				swapped = true
				changed = true
			}
		}
		if !swapped {
			return changed
		}
	}
}

// reorderStep applies the §4.4 reorder rule to an adjacent (cur, next) pair
// with next.Coord < cur.Coord, returning the pair in swapped order with
// coordinates/content adjusted so the net effect is unchanged.
func reorderStep(cur, next Modification) (atI, atI1 Modification) {
	nextEnd := next.end()
	switch {
	case next.Kind == ModInsert:
		sameLine := cur.Coord.Line == next.Coord.Line
		cur.Coord.Line += nextEnd.Line - next.Coord.Line
		if sameLine {
			cur.Coord.Column += nextEnd.Column - next.Coord.Column
		}

	case next.Kind == ModErase && cur.Kind == ModInsert && cur.Coord.Less(nextEnd):
		start := countByteTo(next.Coord, cur.Coord, next.Content)
		length := len(cur.Content)
		if rem := len(next.Content) - start; rem < length {
			length = rem
		}
		cur.Coord = next.Coord
		cur.Content = cur.Content[length:]
		next.Content = next.Content[:start] + next.Content[start+length:]

	case next.Kind == ModErase && cur.Kind == ModInsert:
		sameLine := cur.Coord.Line == next.Coord.Line
		cur.Coord.Line -= nextEnd.Line - next.Coord.Line
		if sameLine {
			cur.Coord.Column -= nextEnd.Column - next.Coord.Column
		}

	case next.Kind == ModErase && cur.Kind == ModErase && cur.Coord.Less(nextEnd):
		offset := countByteTo(next.Coord, cur.Coord, next.Content)
		next.Content = next.Content[:offset] + cur.Content + next.Content[offset:]
		cur.Coord = next.Coord
		cur.Content = ""

	default:
		// plain swap, nothing to adjust
	}
	return next, cur
}

// mergePass scans adjacent pairs in coordinate order and applies the §4.4
// merge/cancel rules. Returns the (possibly shorter) group and whether any
// rule fired.
func mergePass(g UndoGroup) (UndoGroup, bool) {
	progress := false
	i := 0
	for i+1 < len(g) {
		cur, next := g[i], g[i+1]
		switch {
		case cur.Kind == ModErase && next.Kind == ModErase && cur.Coord == next.Coord:
			cur.Content += next.Content
			g[i] = cur
			g = append(g[:i+1], g[i+2:]...)
			progress = true

		case cur.Kind == ModInsert && next.Kind == ModInsert && insertWithinInsert(cur, next):
			offset := countByteTo(cur.Coord, next.Coord, cur.Content)
			cur.Content = cur.Content[:offset] + next.Content + cur.Content[offset:]
			g[i] = cur
			g = append(g[:i+1], g[i+2:]...)
			progress = true

		case cur.Kind == ModInsert && next.Kind == ModErase && eraseWithinInsert(cur, next):
			prefix := countByteTo(cur.Coord, next.Coord, cur.Content)
			insertLen, eraseLen := len(cur.Content), len(next.Content)
			if prefix+eraseLen < insertLen {
				cur.Content = cur.Content[:prefix] + cur.Content[prefix+eraseLen:]
			} else {
				cur.Content = cur.Content[:prefix]
			}
			if insertLen-prefix < eraseLen {
				next.Content = next.Content[insertLen-prefix:]
			} else {
				next.Content = ""
			}
			g[i], g[i+1] = cur, next
			progress = true
			i += 2

		case cur.Kind == ModErase && next.Kind == ModInsert && cur.Coord == next.Coord:
			if p, ok := overlaps(cur.Content, next.Content); ok && p < len(cur.Content) {
				eraseLen := len(cur.Content)
				cur.Content = cur.Content[:p]
				next.Content = next.Content[eraseLen-p:]
				g[i], g[i+1] = cur, next
				progress = true
				i += 2
			} else {
				i++
			}

		default:
			i++
		}
	}
	return g, progress
}

// insertWithinInsert reports whether next's coord lies within cur's
// inserted span, inclusive of both ends (§4.4 Insert+Insert merge).
func insertWithinInsert(cur, next Modification) bool {
	end := cur.end()
	return cur.Coord.LessOrEqual(next.Coord) && next.Coord.LessOrEqual(end)
}

// eraseWithinInsert reports whether next's erase falls inside cur's
// inserted region (§4.4 Insert+Erase merge).
func eraseWithinInsert(cur, next Modification) bool {
	end := cur.end()
	return cur.Coord.LessOrEqual(next.Coord) && next.Coord.Less(end)
}

// dropEmpty removes modifications whose content became empty. Filters g
// in place and returns whether anything was dropped.
func dropEmpty(g UndoGroup) (UndoGroup, bool) {
	progress := false
	out := g[:0]
	for _, m := range g {
		if m.empty() {
			progress = true
			continue
		}
		out = append(out, m)
	}
	return out, progress
}
