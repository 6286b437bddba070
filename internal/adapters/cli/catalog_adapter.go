package cli

import (
	"fmt"
	"io"

	"github.com/example/encore/internal/core/performance"
)

// PrintCatalog lists every technique and setback a performance can be dealt.
// Derived techniques show their stateless base values.
func PrintCatalog(out io.Writer, cards []performance.Card, setbacks []performance.Setback) {
	fmt.Fprintln(out, headerColor.Sprintf("Techniques (%d)", len(cards)))
	for _, card := range cards {
		line := TechniqueLine(performance.ViewTechnique(card.Base()))
		if card.IsDerived() {
			line += dimColor.Sprint(" (varies)")
		}
		fmt.Fprintf(out, "  %s\n", line)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, headerColor.Sprintf("Setbacks (%d)", len(setbacks)))
	for _, s := range setbacks {
		fmt.Fprintf(out, "  %s %s\n", setbackColor.Sprint(s.Name), s.Description)
	}
}
