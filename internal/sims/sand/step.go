package sand

// Step advances the automaton by one discrete tick.
//
// Rows are swept bottom-up so a cell that falls lands in a row that has
// already been finalized this tick. The column direction alternates with
// row parity, which keeps horizontal spreading from drifting to one side.
// Cells in inactive chunks are never visited.
func (w *World) Step() {
	if !w.hot {
		return
	}

	for i := range w.dirty {
		w.dirty[i] = false
	}

	for y := w.h - 1; y >= 0; y-- {
		preference := 1
		if y%2 != 0 {
			preference = -1
		}

		for col := 0; col < w.w; col++ {
			x := col
			if preference < 0 {
				x = w.w - 1 - col
			}

			if w.dirty[y*w.w+x] {
				continue
			}
			chunk, ok := w.chunkIndex(x, y)
			if !ok || !w.active[chunk] {
				continue
			}

			switch w.materials[y*w.w+x] {
			case Sand:
				w.stepSand(x, y, preference)
			case Water:
				w.stepWater(x, y, preference)
			case Smoke:
				w.stepSmoke(x, y, preference)
			}
		}
	}

	// Dirty flags are tick-local; leave none behind.
	for i := range w.dirty {
		w.dirty[i] = false
	}

	w.commitForecast()
}

// swap exchanges material, tint and spread between cells a and b, reporting
// whether the exchange happened. Density-ordered pairs (solid over liquid
// or gas, liquid over gas) always exchange and leave both dirty flags
// untouched, so a dense cell can keep displacing lighter ones within a
// single tick. Every other pair moves at most once per cell per tick: the
// swap is refused when either cell is dirty, and afterwards each cell that
// received something other than air is marked dirty.
func (w *World) swap(ax, ay, bx, by int) bool {
	if ax < 0 || ay < 0 || ax >= w.w || ay >= w.h {
		return false
	}
	if bx < 0 || by < 0 || bx >= w.w || by >= w.h {
		return false
	}
	a := ay*w.w + ax
	b := by*w.w + bx

	sa := StateOf(w.materials[a])
	sb := StateOf(w.materials[b])
	priority := (sa == StateSolid && sb != StateSolid) ||
		(sa == StateLiquid && sb == StateGas)

	if !priority && (w.dirty[a] || w.dirty[b]) {
		return false
	}

	ma, mb := w.materials[a], w.materials[b]
	w.materials[a], w.materials[b] = mb, ma
	w.tints[a], w.tints[b] = w.tints[b], w.tints[a]
	w.spreads[a], w.spreads[b] = w.spreads[b], w.spreads[a]

	if !priority {
		if mb != Air {
			w.dirty[a] = true
		}
		if ma != Air {
			w.dirty[b] = true
		}
	}
	return true
}

// stepSand lets a sand cell fall straight down through liquid or gas, then
// probe diagonally downward out to its spread limit.
func (w *World) stepSand(x, y, preference int) {
	if below, ok := w.Get(x, y+1); ok && StateOf(below) != StateSolid {
		if w.swap(x, y, x, y+1) {
			w.warmUp(x, y+1)
			return
		}
	}

	spread := int(w.spreads[y*w.w+x])
	leftBlocked, rightBlocked := false, false
	dir := -preference

	for i := 1; i <= spread; i++ {
		for probe := 0; probe < 2; probe++ {
			dir = -dir
			if (dir < 0 && leftBlocked) || (dir > 0 && rightBlocked) {
				continue
			}
			nx := x + i*dir
			if nx < 0 || nx >= w.w {
				continue
			}

			// The horizontal path has to stay sand or gas all the way
			// out, otherwise this side is finished for the tick.
			path := w.materials[y*w.w+nx]
			if path != Sand && StateOf(path) != StateGas {
				if dir < 0 {
					leftBlocked = true
				} else {
					rightBlocked = true
				}
				continue
			}

			target, ok := w.Get(nx, y+1)
			switch {
			case ok && target == Sand:
				// Occupied by kin; keep probing farther out.
			case ok && StateOf(target) == StateGas:
				if w.swap(x, y, nx, y+1) {
					w.warmUp(nx, y+1)
					return
				}
			default:
				if dir < 0 {
					leftBlocked = true
				} else {
					rightBlocked = true
				}
			}
		}
		if leftBlocked && rightBlocked {
			break
		}
	}
}

// stepWater lets a water cell fall into gas, then probe diagonally
// downward, then level out horizontally along its own row. Unlike sand,
// water never sinks through other water.
func (w *World) stepWater(x, y, preference int) {
	if below, ok := w.Get(x, y+1); ok && StateOf(below) == StateGas {
		if w.swap(x, y, x, y+1) {
			w.warmUp(x, y+1)
			return
		}
	}

	spread := int(w.spreads[y*w.w+x])

	leftBlocked, rightBlocked := false, false
	dir := -preference
	for i := 1; i <= spread; i++ {
		for probe := 0; probe < 2; probe++ {
			dir = -dir
			if (dir < 0 && leftBlocked) || (dir > 0 && rightBlocked) {
				continue
			}
			nx := x + i*dir
			if nx < 0 || nx >= w.w {
				continue
			}

			path := w.materials[y*w.w+nx]
			if path != Water && StateOf(path) != StateGas {
				if dir < 0 {
					leftBlocked = true
				} else {
					rightBlocked = true
				}
				continue
			}

			target, ok := w.Get(nx, y+1)
			switch {
			case ok && target == Water:
			case ok && StateOf(target) == StateGas:
				if w.swap(x, y, nx, y+1) {
					w.warmUp(nx, y+1)
					return
				}
			default:
				if dir < 0 {
					leftBlocked = true
				} else {
					rightBlocked = true
				}
			}
		}
		if leftBlocked && rightBlocked {
			break
		}
	}

	// Leveling pass: nothing below gave way, so slide sideways into gas
	// cells on the same row.
	leftBlocked, rightBlocked = false, false
	dir = -preference
	for i := 1; i <= spread; i++ {
		for probe := 0; probe < 2; probe++ {
			dir = -dir
			if (dir < 0 && leftBlocked) || (dir > 0 && rightBlocked) {
				continue
			}
			nx := x + i*dir
			if nx < 0 || nx >= w.w {
				continue
			}

			target := w.materials[y*w.w+nx]
			switch {
			case target == Water:
			case StateOf(target) == StateGas:
				if w.swap(x, y, nx, y) {
					w.warmUp(nx, y)
					return
				}
			default:
				if dir < 0 {
					leftBlocked = true
				} else {
					rightBlocked = true
				}
			}
		}
		if leftBlocked && rightBlocked {
			break
		}
	}
}

// stepSmoke is the inverse-gravity rule: rise straight up into air, then
// probe diagonally upward, then drift horizontally. Smoke only ever moves
// into air, never through other smoke.
func (w *World) stepSmoke(x, y, preference int) {
	if above, ok := w.Get(x, y-1); ok && above == Air {
		if w.swap(x, y, x, y-1) {
			w.warmUp(x, y-1)
			return
		}
	}

	spread := int(w.spreads[y*w.w+x])

	leftBlocked, rightBlocked := false, false
	dir := -preference
	for i := 1; i <= spread; i++ {
		for probe := 0; probe < 2; probe++ {
			dir = -dir
			if (dir < 0 && leftBlocked) || (dir > 0 && rightBlocked) {
				continue
			}
			nx := x + i*dir
			if nx < 0 || nx >= w.w {
				continue
			}

			path := w.materials[y*w.w+nx]
			if path != Smoke && path != Air {
				if dir < 0 {
					leftBlocked = true
				} else {
					rightBlocked = true
				}
				continue
			}

			target, ok := w.Get(nx, y-1)
			switch {
			case ok && target == Smoke:
			case ok && target == Air:
				if w.swap(x, y, nx, y-1) {
					w.warmUp(nx, y-1)
					return
				}
			default:
				if dir < 0 {
					leftBlocked = true
				} else {
					rightBlocked = true
				}
			}
		}
		if leftBlocked && rightBlocked {
			break
		}
	}

	leftBlocked, rightBlocked = false, false
	dir = -preference
	for i := 1; i <= spread; i++ {
		for probe := 0; probe < 2; probe++ {
			dir = -dir
			if (dir < 0 && leftBlocked) || (dir > 0 && rightBlocked) {
				continue
			}
			nx := x + i*dir
			if nx < 0 || nx >= w.w {
				continue
			}

			target := w.materials[y*w.w+nx]
			switch {
			case target == Smoke:
			case target == Air:
				if w.swap(x, y, nx, y) {
					w.warmUp(nx, y)
					return
				}
			default:
				if dir < 0 {
					leftBlocked = true
				} else {
					rightBlocked = true
				}
			}
		}
		if leftBlocked && rightBlocked {
			break
		}
	}
}
