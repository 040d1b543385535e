// export_test.go exports private functions for white-box testing.
package app

import "time"

// WithDebounce sets how long the document must stay quiet before a watched
// change is pushed.
func (a *App) WithDebounce(window time.Duration) *App {
	a.debounce = window
	return a
}
