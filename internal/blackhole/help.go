package blackhole

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Binding documents one input binding of the viewer.
type Binding struct {
	Keys   string
	Action string
}

// Bindings is the input surface, in help order.
var Bindings = []Binding{
	{"W / S", "zoom in / out"},
	{"A / D", "orbit left / right"},
	{"Q / E", "camera down / up"},
	{"Arrows", "orbit and height"},
	{"Mouse drag", "orbit and height"},
	{"Scroll", "zoom"},
	{"+ / -", "mass"},
	{"[ / ]", "spin"},
	{"B / N", "disk brightness"},
	{"T / Y", "disk temperature"},
	{"O / P", "disk opacity"},
	{"1-4", "quality low / medium / high / ultra"},
	{"R", "toggle photon rings"},
	{"I", "toggle Einstein ring"},
	{"J", "toggle jets"},
	{"K", "toggle disk"},
	{"Space", "pause"},
	{", / .", "time scale"},
	{"Backspace", "reset"},
	{"H", "this help"},
	{"F1", "status"},
	{"Esc", "quit"},
}

const (
	titleColor = "#F5A623"
	keyColor   = "#7FB3FF"
)

// PrintHelp writes the key bindings to w, styled when w is a terminal.
func PrintHelp(w io.Writer) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w, out.String("Black hole viewer controls").Bold().Foreground(out.Color(titleColor)))
	for _, b := range Bindings {
		fmt.Fprintf(w, "  %s  %s\n", out.String(fmt.Sprintf("%-10s", b.Keys)).Foreground(out.Color(keyColor)), b.Action)
	}
}

// PrintStatus writes the current parameters to w.
func PrintStatus(w io.Writer, s State) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w, out.String("Status").Bold().Foreground(out.Color(titleColor)))
	for _, l := range s.Summary() {
		fmt.Fprintf(w, "  %s\n", l)
	}
}
