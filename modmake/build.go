package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	xormatrixVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())
	b.Test().Does(Go().TestAll())

	xormatrix := NewAppBuild("xormatrix", "cmd/xormatrix", xormatrixVersion)
	xormatrix.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", xormatrixVersion)
	})
	xormatrix.Variant("windows", "amd64")
	xormatrix.Variant("linux", "amd64")
	xormatrix.Variant("linux", "arm64")
	xormatrix.Variant("darwin", "amd64")
	xormatrix.Variant("darwin", "arm64")
	b.ImportApp(xormatrix)

	b.Execute()
}
