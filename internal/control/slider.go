package control

// Slider is an integer input bounded to [Min, Max] with step 1.
type Slider struct {
	Min   int `json:"min"`
	Max   int `json:"max"`
	Value int `json:"value"`
}

// NewSlider returns a slider starting at initial, clamped into range.
func NewSlider(lo, hi, initial int) Slider {
	s := Slider{Min: lo, Max: hi}
	s.Set(initial)
	return s
}

// Set stores v clamped to the slider bounds and returns the stored value.
func (s *Slider) Set(v int) int {
	s.Value = Clamp(v, s.Min, s.Max)
	return s.Value
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
