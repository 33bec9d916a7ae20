package runtime

import (
	"fmt"

	"github.com/adrg/xdg"
)

const (
	XDGName = "stackit"
)

// StateFile is a path under the XDG state dir, created on demand. Logs live
// here.
func StateFile(filename string) (string, error) {
	return xdg.StateFile(fmt.Sprintf("%s/%s", XDGName, filename))
}
