// Command fxgen lists, describes and renders fx filters.
//
// Usage:
//
//	fxgen -list [-category name]
//	fxgen -describe NAME
//	fxgen -filter NAME [-set key=value]... [-in image] [-size WxH] [-out path|-]
//
// Values given with -set use the filter's string syntax: numbers, colors
// ("red", "#ff000080", "1,0,0"), points ("x,y"), vectors ("1,0,0,0") and
// image file paths.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
