package game

// record is an applied move plus, for slides, where the stone landed.
type record struct {
	move    Move
	landing Vec2
}

// history keeps a player's last two moves, most recent first.
type history [2]*record

func (h *history) push(r *record) {
	h[1] = h[0]
	h[0] = r
}

func (h *history) clear() {
	*h = history{}
}

// slides returns the older and newer move when both are slides.
func (h *history) slides() (older, newer *record, ok bool) {
	if h[0] == nil || h[1] == nil {
		return nil, nil, false
	}
	if _, isSlide := h[1].move.(SlideStone); !isSlide {
		return nil, nil, false
	}
	if _, isSlide := h[0].move.(SlideStone); !isSlide {
		return nil, nil, false
	}
	return h[1], h[0], true
}
