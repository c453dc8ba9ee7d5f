// Devtool bundles the development workflow helpers: environment checks,
// database readiness, coverage gating and a live probe for the event
// stream.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "check-deps":
		err = runCheckDeps()
	case "check-db":
		err = runCheckDB()
	case "wait-for-db":
		err = runWaitForDB()
	case "check-coverage":
		if len(os.Args) < 4 {
			fmt.Println("Usage: devtool check-coverage <coverage_file> <threshold>")
			os.Exit(1)
		}
		err = runCheckCoverage(os.Args[2], os.Args[3])
	case "probe-sse":
		err = runProbeSSE(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		PrintError("%v", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: devtool <command> [args...]")
	fmt.Println("Commands:")
	fmt.Println("  check-deps      Check for required dependencies")
	fmt.Println("  check-db        Check if database is running and ready")
	fmt.Println("  wait-for-db     Wait for database to accept connections")
	fmt.Println("  check-coverage  Check test coverage against a threshold")
	fmt.Println("  probe-sse       Watch the live event stream of a running API")
}
