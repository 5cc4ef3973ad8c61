package shell

import (
	"errors"
	"fmt"
)

// ErrOverlayOccludesContent is returned when the fixed overlay is taller than the
// offset of the content region below it
var ErrOverlayOccludesContent = errors.New("overlay height exceeds content top offset")

// Layout holds the pixel sizes of the shell regions
type Layout struct {
	HeaderHeight  int
	ToolbarHeight int
	ContentOffset int
	OverlayZ      int
}

// DefaultLayout matches h-16 header + h-12 toolbar over an mt-28 content region
var DefaultLayout = Layout{
	HeaderHeight:  64,
	ToolbarHeight: 48,
	ContentOffset: 112,
	OverlayZ:      10,
}

// OverlayHeight is the height of the pinned header + toolbar block.
// The overlay is clipped to this height so it does not grow with the viewport width.
func (l Layout) OverlayHeight() int {
	return l.HeaderHeight + l.ToolbarHeight
}

// Validate checks that every size is usable and that the overlay clears the content
func (l Layout) Validate() error {
	if l.HeaderHeight < 0 || l.ToolbarHeight < 0 || l.ContentOffset < 0 {
		return fmt.Errorf("negative region size in layout %+v", l)
	}
	if l.OverlayHeight() > l.ContentOffset {
		return fmt.Errorf("%w: %dpx > %dpx", ErrOverlayOccludesContent, l.OverlayHeight(), l.ContentOffset)
	}
	return nil
}

func (l Layout) overlayStyle() string {
	return fmt.Sprintf("position:fixed;top:0;left:0;width:100%%;z-index:%d;height:%dpx;overflow:hidden", l.OverlayZ, l.OverlayHeight())
}

func (l Layout) contentStyle() string {
	return fmt.Sprintf("margin-top:%dpx", l.ContentOffset)
}
