package logging

import "time"

// Time runs fn and logs how long it took at debug level.
//
//	logging.Time("synthesize palettes", func() {
//	    light, dark = palette.Synthesize(rng, mode)
//	})
func Time(name string, fn func()) {
	Get().Time(name, fn)
}

// TimeWithResult is Time for functions returning a value.
func TimeWithResult[T any](name string, fn func() T) T {
	var out T
	Get().Time(name, func() { out = fn() })
	return out
}

// Time runs fn, logging its duration through l. Disabled loggers skip the
// clock entirely.
func (l *Logger) Time(name string, fn func()) {
	if !l.IsEnabled() {
		fn()
		return
	}

	start := time.Now()
	fn()
	elapsed := time.Since(start)
	l.Debug(name, "duration", elapsed.String(), "us", elapsed.Microseconds())
}
