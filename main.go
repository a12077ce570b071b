package main

import (
	"fmt"

	"go.creack.net/gocalc/parser"
)

// Demo inputs, including a few invalid ones to showcase the error
// reporting. A failing expression never aborts the batch.
var samples = []string{
	"1 + 2",
	"2 * 3 + 4",
	"2 * (3 + 4)",
	"8 / 2 * (2 + 2)",
	"3 + 4 * (2 - 1)",
	"10 / 4",
	"--3",
	"-(2 + 3) * 2",
	"1 / 0",
	"(1 + 2",
	"1 2",
	"1 + $foo",
	"",
}

func main() {
	for _, expr := range samples {
		result, err := parser.Run(expr)
		if err != nil {
			fmt.Printf("%q => error: %s\n", expr, err)
			continue
		}
		fmt.Printf("%q => %g\n", expr, result)
	}
}
