// Package banner renders short texts in large ASCII lettering.
package banner

import (
	"fmt"
	"io"

	"github.com/common-nighthawk/go-figure"
)

func Render(w io.Writer, text string) {
	fig := figure.NewFigure(text, "", true)
	fmt.Fprintln(w, fig.String())
}
