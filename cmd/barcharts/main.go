package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/HamletTheHamster/barcharts/internal/cli"
)

const (
	cmdName = "barcharts"

	shortDesc = "Draw the bar chart tutorial."
	longDesc  = `Draw the bar chart tutorial: basic, grouped, stacked, horizontal and
error bar charts over a small fixed data set.

Each chart is rendered, optionally shown in a gnuplot window (--show,
builds tagged gnuplot only), and released before the next one starts. The basic chart is always written to
basic_bar.png in the output directory; --all writes every chart and
--gif steps through all of them in one animated GIF.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
