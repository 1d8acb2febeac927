package sand

// ChunkSize reports the edge length of a chunk in cells.
func (w *World) ChunkSize() int { return w.chunkSize }

// ChunkCols reports the number of chunk columns.
func (w *World) ChunkCols() int { return w.chunkCols }

// ChunkRows reports the number of chunk rows.
func (w *World) ChunkRows() int { return w.chunkRows }

// ActiveChunks exposes the per-chunk activity bitmap, row-major over the
// chunk grid. Read-only, for diagnostics and overlays.
func (w *World) ActiveChunks() []bool { return w.active }

// chunkIndex maps cell coordinates to the index of their containing chunk.
// The coordinates are expected to be valid cell coordinates; the bounds
// check is a defensive guard and callers skip the cell when it fails.
func (w *World) chunkIndex(x, y int) (int, bool) {
	cx := x / w.chunkSize
	cy := y / w.chunkSize
	if cx < 0 || cx >= w.chunkCols || cy < 0 || cy >= w.chunkRows {
		return 0, false
	}
	return cy*w.chunkCols + cx, true
}

// warmUp stages the chunk containing cell (x, y) and every existing
// grid-adjacent chunk for the next tick. Waking the whole neighborhood
// keeps a mover that crosses a chunk edge from landing in a sleeping
// chunk. Edges clamp; there is no wraparound.
func (w *World) warmUp(x, y int) {
	cx := x / w.chunkSize
	cy := y / w.chunkSize
	for dy := -1; dy <= 1; dy++ {
		ny := cy + dy
		if ny < 0 || ny >= w.chunkRows {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := cx + dx
			if nx < 0 || nx >= w.chunkCols {
				continue
			}
			w.forecast[ny*w.chunkCols+nx] = true
		}
	}
}

// commitForecast replaces the active set with the staged one and clears the
// staging bitmap, so moves made during tick N decide what tick N+1 sweeps.
// The hot flag ends up true iff anything stayed active.
func (w *World) commitForecast() {
	w.hot = false
	for i, staged := range w.forecast {
		if staged {
			w.hot = true
		}
		w.active[i] = staged
		w.forecast[i] = false
	}
}
