package page

import "time"

// Scroll indicator opacities. The indicator hides once the page is scrolled past IndicatorThreshold.
const (
	IndicatorThreshold   = 0.1
	IndicatorOpacity     = 0.7
	indicatorHiddenAlpha = 0
)

// IndicatorAlpha returns the scroll indicator opacity for fraction s.
func IndicatorAlpha(s float32) float32 {
	if s > IndicatorThreshold {
		return indicatorHiddenAlpha
	}
	return IndicatorOpacity
}

// LoadingScreen fades the startup cover out after Delay, over Fade, then hides it.
type LoadingScreen struct {
	Delay time.Duration `yaml:"delay"`
	Fade  time.Duration `yaml:"fade"`
}

// DefaultLoadingScreen stays opaque for two seconds and fades for half a second.
func DefaultLoadingScreen() LoadingScreen {
	return LoadingScreen{Delay: 2 * time.Second, Fade: 500 * time.Millisecond}
}

// Opacity returns the cover opacity elapsed after startup.
func (l LoadingScreen) Opacity(elapsed time.Duration) float32 {
	if elapsed <= l.Delay {
		return 1
	}
	if l.Fade <= 0 || elapsed >= l.Delay+l.Fade {
		return 0
	}
	return 1 - float32(elapsed-l.Delay)/float32(l.Fade)
}

// Hidden reports whether the cover is gone for good.
func (l LoadingScreen) Hidden(elapsed time.Duration) bool {
	return elapsed >= l.Delay+l.Fade
}
