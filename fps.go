package adventure

// fpsWindow is how often the achieved rate is recomputed, in seconds.
const fpsWindow = 0.5

// fpsMeter measures the achieved tick rate over fixed windows.
type fpsMeter struct {
	elapsed float64
	frames  int
	rate    float64
}

// observe records one tick of dt seconds and reports whether the rate was
// refreshed.
func (m *fpsMeter) observe(dt float64) bool {
	if !(dt >= 0) || !isFinite(dt) {
		return false
	}
	m.elapsed += dt
	m.frames++
	if m.elapsed < fpsWindow {
		return false
	}
	m.rate = float64(m.frames) / m.elapsed
	m.elapsed = 0
	m.frames = 0
	return true
}

// Rate returns the most recently measured ticks per second.
func (m *fpsMeter) Rate() float64 { return m.rate }
