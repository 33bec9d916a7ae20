package main

import (
	_ "expvar"
	_ "net/http/pprof"

	"github.com/byxorna/stackit/cmd"
)

func main() {
	cmd.Execute()
}
