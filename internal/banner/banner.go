package banner

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
)

// Print writes the startup banner with the active network and store.
func Print(network, store string) {
	myFigure := figure.NewColorFigure("AUDITHOOK", "doom", "cyan", true)
	myFigure.Print()

	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)

	_, _ = cyan.Println("════════════════════════════════════════════════")
	_, _ = green.Println(fmt.Sprintf("    Uniswap v4 hook audits | network: base-%s | store: %s", network, store))
	_, _ = cyan.Println("════════════════════════════════════════════════")
}
