// Command carve is a CLI front end for the content-aware resizing engine.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/contentaware/carve"
	"github.com/contentaware/carve/internal/term"
	xterm "golang.org/x/term"
)

const helpBanner = `
┌─┐┌─┐┬┬─┐┌─┐
│  ├─┤│├┬┘├┤
└─┘┴ ┴┴┴└─└─┘

Content aware image resize tool.
`

// pipeName indicates that stdin/stdout is being used as the file name.
const pipeName = "-"

// maxWorkers caps the number of files processed concurrently for directory runs.
const maxWorkers = 20

type jobResult struct {
	path string
	err  error
}

var (
	source      = flag.String("in", pipeName, "Source image or directory")
	destination = flag.String("out", pipeName, "Destination image or directory")
	newWidth    = flag.Int("width", 0, "New width")
	newHeight   = flag.Int("height", 0, "New height")
	percentage  = flag.Bool("perc", false, "Treat width/height as a percentage of the original")
	square      = flag.Bool("square", false, "Resize to a square using the smaller of width/height")
	sobel       = flag.Bool("sobel", false, "Use the Sobel operator instead of the gradient energy function")
	bias        = flag.Float64("bias", carve.DefaultBias, "Energy bias applied under protected or object-marked pixels")
	debug       = flag.Bool("debug", false, "Render a debug overlay of each chosen seam")
	maskPath    = flag.String("mask", "", "Protect mask file path")
	rMaskPath   = flag.String("rmask", "", "Object removal mask file path")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently for directory sources")

	spinner *term.Spinner
)

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpBanner)
		flag.PrintDefaults()
	}
	flag.Parse()

	term.NoColor = !xterm.IsTerminal(int(os.Stderr.Fd()))

	if !(*newWidth > 0 || *newHeight > 0 || *square || *rMaskPath != "") {
		flag.Usage()
		log.Fatal(term.DecorateText("provide a width, height, square, or removal mask", term.ErrorMessage))
	}

	cfg := carve.Config{
		EnergyOp:     carve.GradientAbs,
		BiasMagnitude: *bias,
		DebugOverlay: *debug,
	}
	if *sobel {
		cfg.EnergyOp = carve.Sobel
	}

	defaultMsg := fmt.Sprintf("%s %s",
		term.DecorateText("⚡ carve", term.StatusMessage),
		term.DecorateText("⇢ resizing in progress...", term.DefaultMessage),
	)
	spinner = term.NewSpinner(defaultMsg, time.Millisecond*80, true)

	fi, err := os.Stat(*source)
	if *source == pipeName {
		fi, err = os.Stdin.Stat()
	}
	if err != nil {
		log.Fatal(term.DecorateText(fmt.Sprintf("failed to stat source: %v", err), term.ErrorMessage))
	}

	now := time.Now()
	switch {
	case fi.IsDir():
		err = runDirectory(cfg)
	default:
		err = processPath(*source, *destination, cfg)
		printStatus(*destination, err)
	}
	if err == nil {
		fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", term.DecorateText(term.FormatTime(time.Since(now)), term.SuccessMessage))
	} else {
		os.Exit(1)
	}
}

func runDirectory(cfg carve.Config) error {
	if _, err := os.Stat(*destination); err != nil {
		if err := os.Mkdir(*destination, 0755); err != nil {
			return err
		}
	}

	n := *workers
	if n <= 0 || n > maxWorkers {
		n = runtime.NumCPU()
	}

	done := make(chan struct{})
	defer close(done)

	paths, errc := walkDir(done, *source)

	results := make(chan jobResult)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			consumeFiles(done, paths, results, cfg)
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var firstErr error
	for res := range results {
		if res.err != nil {
			firstErr = res.err
		}
		printStatus(res.path, res.err)
	}
	if err := <-errc; err != nil {
		return err
	}
	return firstErr
}

// walkDir walks src recursively, sending each supported regular file's path
// on the returned channel, terminating early if done is closed.
func walkDir(done <-chan struct{}, src string) (<-chan string, <-chan error) {
	paths := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(paths)
		errc <- filepath.Walk(src, func(path string, f os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !f.Mode().IsRegular() {
				return nil
			}
			if !isSupportedExtension(filepath.Ext(f.Name())) {
				return nil
			}
			select {
			case <-done:
				return fmt.Errorf("directory walk cancelled")
			case paths <- path:
			}
			return nil
		})
	}()
	return paths, errc
}

func consumeFiles(done <-chan struct{}, paths <-chan string, results chan<- jobResult, cfg carve.Config) {
	for src := range paths {
		dst := filepath.Join(*destination, filepath.Base(src))
		err := processPath(src, dst, cfg)
		select {
		case <-done:
			return
		case results <- jobResult{path: src, err: err}:
		}
	}
}

func printStatus(path string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %s: %v\n", term.DecorateText("✘", term.ErrorMessage), path, err)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", term.DecorateText("✔", term.SuccessMessage), path)
}

// processPath opens in (or stdin), resizes it per the current flags, and
// writes the result to out (or stdout), wiring the spinner to the engine's
// progress hook.
func processPath(in, out string, cfg carve.Config) error {
	src, err := openSource(in)
	if err != nil {
		return err
	}
	defer src.Close()

	img, err := decodeImg(src, in)
	if err != nil {
		return err
	}

	protect, object, err := loadMasks()
	if err != nil {
		return err
	}

	buf := carve.BufferFromImage(img)
	width, height := resolveTargetDims(buf.Width, buf.Height)

	sess, err := carve.NewSession(buf, protect, object, cfg)
	if err != nil {
		return err
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	stop := make(chan struct{})
	go func() {
		select {
		case <-signalChan:
			spinner.Stop()
			os.Exit(1)
		case <-stop:
		}
	}()
	defer close(stop)

	spinner.Start()
	result, _, _, err := sess.Run(height, width, func(obs carve.Observation) bool {
		spinner.Tick(fmt.Sprintf("%dx%d", sess.Width(), sess.Height()))
		return false
	})
	if err != nil && !errors.Is(err, carve.ErrCancelled) {
		spinner.StopMsg = term.DecorateText("resize failed", term.ErrorMessage) + "\n"
		spinner.Stop()
		return err
	}
	spinner.StopMsg = term.DecorateText("done", term.SuccessMessage) + "\n"
	spinner.Stop()

	dst, err := openDestination(out)
	if err != nil {
		return err
	}
	defer dst.Close()

	return encodeImg(dst, result.ToImage(), out)
}

func resolveTargetDims(srcW, srcH int) (width, height int) {
	width, height = *newWidth, *newHeight
	if *percentage {
		if width > 0 {
			width = srcW * width / 100
		}
		if height > 0 {
			height = srcH * height / 100
		}
	}
	if *square {
		side := srcW
		if srcH < side {
			side = srcH
		}
		width, height = side, side
	}
	return width, height
}

func loadMasks() (protect, object *carve.Mask, err error) {
	if *maskPath != "" {
		if err := requireImageFile(*maskPath); err != nil {
			return nil, nil, err
		}
		f, err := os.Open(*maskPath)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		img, err := decodeImg(f, *maskPath)
		if err != nil {
			return nil, nil, err
		}
		protect = carve.MaskFromImage(img)
	}
	if *rMaskPath != "" {
		if err := requireImageFile(*rMaskPath); err != nil {
			return nil, nil, err
		}
		f, err := os.Open(*rMaskPath)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		img, err := decodeImg(f, *rMaskPath)
		if err != nil {
			return nil, nil, err
		}
		object = carve.MaskFromImage(img)
	}
	return protect, object, nil
}

func openSource(path string) (io.ReadCloser, error) {
	if path == pipeName {
		if xterm.IsTerminal(int(os.Stdin.Fd())) {
			return nil, fmt.Errorf("`-` must be used with a pipe for stdin")
		}
		return os.Stdin, nil
	}
	return os.Open(path)
}

func openDestination(path string) (io.WriteCloser, error) {
	if path == pipeName {
		return os.Stdout, nil
	}
	return os.Create(path)
}
