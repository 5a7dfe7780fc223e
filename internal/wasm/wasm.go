// Package main renders a few DuckDB values in order to test WASM compilation.
package main

import (
	"fmt"

	"github.com/theory/duckvalues/value/bit"
	"github.com/theory/duckvalues/value/types"
)

func main() {
	// Render a timestamp with a fixed offset; WASM has no zoneinfo.
	ts := types.TimestampTZ(1612325106007800)
	str, _ := ts.FormatIn(types.FixedOffsets{"Asia/Kolkata": 19800}, "Asia/Kolkata")

	//nolint:forbidigo
	fmt.Printf("%s\n%s\n", str, bit.FromString("10110", '1'))
}
