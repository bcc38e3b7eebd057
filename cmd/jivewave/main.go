package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/linuxmatters/jivewave/internal/audio"
	"github.com/linuxmatters/jivewave/internal/cli"
	"github.com/linuxmatters/jivewave/internal/imaging"
	"github.com/linuxmatters/jivewave/internal/waveform"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

var CLI struct {
	Input      string `arg:"" name:"input" help:"Input audio file (wav, mp3, flac, ogg, aiff)" optional:""`
	Output     string `arg:"" name:"output" help:"Output image file (png, bmp, tiff)" optional:""`
	Width      int    `help:"Width of the resulting image in pixels" default:"1920"`
	Height     int    `help:"Height of the resulting image in pixels" default:"120"`
	Oversample int    `short:"s" help:"Envelope bins computed per pixel column (more takes longer)" default:"32"`
	Foreground string `help:"Waveform color as a name or comma-separated RGBA values" default:"0,0,0,255"`
	Background string `help:"Background color as a name or comma-separated RGBA values" default:"0,0,0,0"`
	Normalize  bool   `short:"n" help:"Scale the waveform to fill the vertical space"`
	Overwrite  bool   `short:"y" help:"Overwrite existing files without prompting"`
	Version    bool   `help:"Show version information"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("jivewave"),
		kong.Description("Render your audio into a crisp rectified waveform image."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if CLI.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	// Validate required arguments when not showing version
	if CLI.Input == "" || CLI.Output == "" {
		cli.PrintError("<input> and <output> are required")
		os.Exit(1)
	}

	// Validate input file exists and is a regular file
	info, err := os.Stat(CLI.Input)
	if os.IsNotExist(err) {
		cli.PrintError(fmt.Sprintf("input file does not exist: %s", CLI.Input))
		os.Exit(1)
	}
	if err == nil && info.IsDir() {
		cli.PrintError(fmt.Sprintf("input is not a file: %s", CLI.Input))
		os.Exit(1)
	}

	_ = ctx // Kong context available for future use

	renderImage(CLI.Input, CLI.Output)
}

func renderImage(inputFile, outputFile string) {
	start := time.Now()

	// Parse the colors and validate dimensions before any decode work
	foreground, err := waveform.ParseColor(CLI.Foreground)
	if err != nil {
		cli.PrintError(fmt.Sprintf("parsing foreground color: %v", err))
		os.Exit(1)
	}
	background, err := waveform.ParseColor(CLI.Background)
	if err != nil {
		cli.PrintError(fmt.Sprintf("parsing background color: %v", err))
		os.Exit(1)
	}

	cfg := waveform.Config{
		Width:      CLI.Width,
		Height:     CLI.Height,
		Oversample: CLI.Oversample,
		Foreground: foreground,
		Background: background,
		Normalize:  CLI.Normalize,
	}
	if err := cfg.Validate(); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	output := prepareOutputPath(outputFile)

	// Existing output needs an explicit go-ahead
	if _, err := os.Stat(output); err == nil && !CLI.Overwrite {
		if !cli.Confirm(fmt.Sprintf("There is already a file at %q. Overwrite?", output)) {
			os.Exit(1)
		}
	}

	if err := createOutputDirectories(output); err != nil {
		cli.PrintError(fmt.Sprintf("creating output directory: %v", err))
		os.Exit(1)
	}

	// Decode the whole input up front; a decode failure aborts before
	// any canvas work begins.
	decoder, err := audio.Open(inputFile)
	if err != nil {
		cli.PrintError(fmt.Sprintf("opening audio: %v", err))
		os.Exit(1)
	}
	defer decoder.Close()

	samples, err := audio.ReadAll(decoder)
	if err != nil {
		cli.PrintError(fmt.Sprintf("decoding audio: %v", err))
		os.Exit(1)
	}
	channels := decoder.NumChannels()

	img, err := waveform.Render(samples, channels, cfg)
	if err != nil {
		cli.PrintError(fmt.Sprintf("rendering waveform: %v", err))
		os.Exit(1)
	}

	if err := imaging.WriteFile(output, img); err != nil {
		cli.PrintError(fmt.Sprintf("writing image: %v", err))
		os.Exit(1)
	}

	cli.PrintInfo("Samples", fmt.Sprintf("%d (%d channels)", len(samples)/channels, channels))
	cli.PrintInfo("Output", output)
	cli.PrintSuccess(fmt.Sprintf("Finished after %s", cli.FormatDuration(time.Since(start))))
}

// prepareOutputPath normalizes the output file name: no extension gets
// ".png", and an extension no image encoder claims gets ".png" appended
// rather than silently reinterpreted.
func prepareOutputPath(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return path + ".png"
	}
	if !imaging.Supported(strings.TrimPrefix(strings.ToLower(ext), ".")) {
		return path + ".png"
	}
	return path
}

// createOutputDirectories ensures the parent directories of path exist.
func createOutputDirectories(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		cli.PrintInfo("Created output directory", dir)
	}
	return nil
}
