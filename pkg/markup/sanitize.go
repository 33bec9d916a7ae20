package markup

import "github.com/microcosm-cc/bluemonday"

// ugcPolicy allows the elements Render emits (strong, em, del, pre, code, a,
// img, li, br) and drops scripts, event handlers and unsafe URLs.
var ugcPolicy = bluemonday.UGCPolicy()

// Sanitize strips anything from a fragment that the UGC policy does not allow.
// Render never calls this itself; hosts that display untrusted input opt in.
func Sanitize(f Fragment) Fragment {
	return Fragment(ugcPolicy.Sanitize(string(f)))
}

// RenderSafe is Render followed by Sanitize.
func RenderSafe(text string) Fragment {
	return Sanitize(Render(text))
}
