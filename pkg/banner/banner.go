// Package banner prints the startup banner with the service name and the Go
// runtime version.
package banner

import (
	"fmt"
	"io"
	"os"
	"runtime"
)

const (
	colorGreen = "\x1b[32;20m"
	colorBlue  = "\033[38;5;39m"
	colorReset = "\033[0m"
)

var art = []string{
	`  _____     _            _   _ _          `,
	` |_   _|   | |          | | (_) |         `,
	`   | |   __| | ___ _ __ | |_ _| |_ _   _  `,
	`   | |  / _` + "`" + ` |/ _ \ '_ \| __| | __| | | | `,
	`  _| |_| (_| |  __/ | | | |_| | |_| |_| | `,
	` |_____|\__,_|\___|_| |_|\__|_|\__|\__, | `,
	`                                    __/ | `,
	`                                   |___/  `,
}

// Print writes the banner and runtime info to w.
func Print(w io.Writer, appName, version string) {
	fmt.Fprintln(w)
	for _, line := range art {
		fmt.Fprintf(w, "%s%s%s\n", colorGreen, line, colorReset)
	}
	fmt.Fprintf(w, "%s:: %s :: (%s)%s\n", colorBlue, appName, version, colorReset)
	fmt.Fprintf(w, "%s:: %s ::%s\n", colorBlue, runtime.Version(), colorReset)
	fmt.Fprintln(w)
}

// PrintStdout writes the banner to standard output.
func PrintStdout(appName, version string) {
	Print(os.Stdout, appName, version)
}
