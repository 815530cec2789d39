/*
Command propgen generates the typed property constructors of package style from a
YAML schema. It is run through go generate:

	go run ./cmd/propgen --schema dom/style/properties.yaml --out dom/style/properties_gen.go

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
