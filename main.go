package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/kpv/cmd"
	"github.com/PolarWolf314/kpv/internal/ui"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint("Error:")+" "+err.Error())
		if hint := cmd.ErrorHint(err); hint != "" {
			fmt.Fprintln(os.Stderr, ui.Info.Sprint(ui.Arrow)+" "+hint)
		}
		os.Exit(1)
	}
}
