package sim

// fakeHost is a scripted Host that counts allocations and input polls.
type fakeHost struct {
	now    float64
	seeds  []uint64
	next   int
	held   map[Input]bool
	polls  map[Input]int
	failAt  int // 1-based Alloc call that returns nil, 0 for never
	shortAt int // 1-based Alloc call that returns one byte too few

	allocCalls int
	frees      int
	live       map[*byte]int
}

func newFakeHost(seeds ...uint64) *fakeHost {
	return &fakeHost{
		seeds: seeds,
		held:  make(map[Input]bool),
		polls: make(map[Input]int),
		live:  make(map[*byte]int),
	}
}

func (h *fakeHost) Alloc(size int) []byte {
	h.allocCalls++
	if h.failAt == h.allocCalls {
		return nil
	}
	n := size
	if h.shortAt == h.allocCalls {
		n = size - 1
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = 0xAA // dirty memory must not leak into the board
	}
	h.live[&buf[0]]++
	return buf
}

func (h *fakeHost) Free(buf []byte) {
	h.frees++
	h.live[&buf[0]]--
	if h.live[&buf[0]] == 0 {
		delete(h.live, &buf[0])
	}
}

func (h *fakeHost) Time() float64 {
	return h.now
}

func (h *fakeHost) Seed() uint64 {
	if h.next >= len(h.seeds) {
		return 0
	}
	s := h.seeds[h.next]
	h.next++
	return s
}

func (h *fakeHost) InputPressed(in Input) bool {
	h.polls[in]++
	return h.held[in]
}

// repeatSeed returns n copies of seed.
func repeatSeed(seed uint64, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = seed
	}
	return out
}

// activeCells returns the active piece occupancy pattern via the query API.
func activeCells(s *Sim) [MaxHeight][MaxWidth]bool {
	var out [MaxHeight][MaxWidth]bool
	for y := range s.TetrominoMaxHeight() {
		for x := range s.TetrominoMaxWidth() {
			out[y][x] = s.TetrominoValue(x, y)
		}
	}
	return out
}
