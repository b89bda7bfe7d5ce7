// mkicon renders the launcher icon into every Android mipmap density bucket.
// Usage: go run ./cmd/mkicon (from the project root)
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/Mavwarf/mkicon/internal/mipmap"
	"github.com/Mavwarf/mkicon/internal/paths"
	"github.com/Mavwarf/mkicon/internal/raster"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

const title = "PUBG Mobile KeyAuth Loader Icon Generator"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	rasterizer := ""

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "help", "-h", "--help":
			printUsage(stdout)
			return 0
		case "version", "-V", "--version":
			printVersion(stdout)
			return 0
		case "--rasterizer", "-r":
			if i+1 < len(args) {
				rasterizer = args[i+1]
				i++
			} else {
				fmt.Fprintf(stderr, "Error: --rasterizer requires a value (%s)\n", strings.Join(raster.Names(), ", "))
				return 1
			}
		default:
			fmt.Fprintf(stderr, "Error: unexpected argument %q\n", args[i])
			fmt.Fprintf(stderr, "Run 'mkicon help' for usage.\n")
			return 1
		}
	}

	fmt.Fprintln(stdout, title)
	fmt.Fprintln(stdout, strings.Repeat("=", 50))

	r, err := raster.New(rasterizer)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := mipmap.Generate(paths.ResDir, r, stdout); err != nil {
		if errors.Is(err, mipmap.ErrNoResDir) {
			fmt.Fprintf(stderr, "Error: Please run this script from the project root directory\n")
			return 1
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, raster.ErrUnavailable) {
			fmt.Fprintf(stderr, "Please install %s (librsvg) or use --rasterizer %s\n",
				raster.DefaultRSVGBin, raster.NameBuiltin)
		}
		fmt.Fprintln(stdout, "\nFailed to generate icons. Please check the error messages above.")
		return 1
	}

	fmt.Fprintln(stdout, "\nSuccess! PNG icons generated for all density buckets.")
	fmt.Fprintln(stdout, "The adaptive icons will automatically use the vector drawables on Android 8.0+")
	fmt.Fprintln(stdout, "and fall back to PNG icons on older devices.")
	return 0
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "mkicon %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "mkicon %s - Generate Android launcher icons for every density bucket\n", version)
	fmt.Fprintf(w, `
Usage:
  mkicon [options]

Run from the project root (the directory containing %s).

Options:
  --rasterizer, -r <name>   builtin (default) or rsvg (needs rsvg-convert on PATH)

Commands:
  version, -V, --version    Show version and build date
  help, -h, --help          Show this help message

Output:
  %s/mipmap-{mdpi,hdpi,xhdpi,xxhdpi,xxxhdpi}/ic_launcher.png
  %s/mipmap-{mdpi,hdpi,xhdpi,xxhdpi,xxxhdpi}/ic_launcher_round.png
`, paths.ResDir, paths.ResDir, paths.ResDir)
}
