package input

// Bindings lists the key codes bound to each action.
type Bindings map[Action][]int

// KeyHandler turns key press and release notifications into action state. Several codes
// may drive one action; the action stays held while any of them is down. Edge detection
// comes from the caller through Tap, once per frame.
type KeyHandler struct {
	byCode map[int]Action
	codes  map[Action][]int
	down   map[int]bool
	tapped map[Action]bool
}

func NewKeyHandler(b Bindings) *KeyHandler {
	h := &KeyHandler{
		byCode: make(map[int]Action),
		codes:  make(map[Action][]int),
		down:   make(map[int]bool),
		tapped: make(map[Action]bool),
	}
	for _, a := range Actions() {
		for _, code := range b[a] {
			h.Bind(a, code)
		}
	}
	return h
}

// Bind adds code to action. Rebinding a code moves it to the new action.
func (h *KeyHandler) Bind(a Action, code int) {
	if prev, ok := h.byCode[code]; ok {
		if prev == a {
			return
		}
		h.codes[prev] = without(h.codes[prev], code)
	}
	h.byCode[code] = a
	h.codes[a] = append(h.codes[a], code)
}

// Codes returns the key codes bound to a.
func (h *KeyHandler) Codes(a Action) []int {
	return append([]int(nil), h.codes[a]...)
}

// BoundCodes returns every bound key code.
func (h *KeyHandler) BoundCodes() []int {
	out := make([]int, 0, len(h.byCode))
	for _, a := range Actions() {
		out = append(out, h.codes[a]...)
	}
	return out
}

// Press records code going down. Unbound codes are ignored.
func (h *KeyHandler) Press(code int) {
	if _, ok := h.byCode[code]; !ok {
		return
	}
	h.down[code] = true
}

// Release records code going up.
func (h *KeyHandler) Release(code int) {
	if _, ok := h.byCode[code]; !ok {
		return
	}
	delete(h.down, code)
}

// Set is Press or Release depending on down, for callers that poll key state.
func (h *KeyHandler) Set(code int, down bool) {
	if down {
		h.Press(code)
		return
	}
	h.Release(code)
}

func (h *KeyHandler) IsPressed(a Action) bool {
	for _, code := range h.codes[a] {
		if h.down[code] {
			return true
		}
	}
	return false
}

// NewFrame forgets the previous frame's taps.
func (h *KeyHandler) NewFrame() {
	clear(h.tapped)
}

// Tap records that code went down this frame. Unbound codes are ignored.
func (h *KeyHandler) Tap(code int) {
	if a, ok := h.byCode[code]; ok {
		h.tapped[a] = true
	}
}

// JustPressed reports whether any code bound to a was tapped this frame.
func (h *KeyHandler) JustPressed(a Action) bool {
	return h.tapped[a]
}

func without(codes []int, code int) []int {
	out := codes[:0]
	for _, c := range codes {
		if c != code {
			out = append(out, c)
		}
	}
	return out
}
