// Command aerovlm solves vortex-lattice wing cases, runs (α, Mach) sweeps and
// serves the solver over HTTP.
//
//	aerovlm solve --case wing.ini --plot lift.png --pdf report.pdf
//	aerovlm sweep --case wing.ini --out table.txt --xlsx table.xlsx
//	aerovlm serve --env .env
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
