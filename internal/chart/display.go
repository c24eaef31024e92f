package chart

// Display shows a rendered canvas, for example in a window.
type Display interface {
	Show(c *Canvas) error
}
