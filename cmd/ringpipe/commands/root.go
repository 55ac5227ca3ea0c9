package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/haivivi/bytering/pkg/buffer"
)

var (
	// Global flags
	capacity int
	chunk    int
	verbose  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ringpipe",
	Short: "Pump stdin to stdout through a ring buffer",
	Long: `ringpipe - copy stdin to stdout through a fixed-capacity ring buffer.

A producer goroutine fills the buffer from stdin through write sessions and a
consumer goroutine drains it to stdout through read sessions, so input and
output never stall each other for longer than the buffer can absorb.

Examples:
  # Pipe a file through a 4KB ring
  ringpipe < input.bin > output.bin

  # Small ring, verbose progress on stderr
  ringpipe --capacity 256 --chunk 64 -v < input.bin > output.bin
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// A capacity-0 ring never hands out a writable range, so the
		// pump could not even observe EOF on its input.
		if capacity <= 0 {
			return fmt.Errorf("capacity must be positive, got %d", capacity)
		}
		if chunk <= 0 {
			return fmt.Errorf("chunk must be positive, got %d", chunk)
		}
		rb, err := buffer.New(capacity)
		if err != nil {
			return fmt.Errorf("create buffer: %w", err)
		}
		logLevel := slog.LevelWarn
		if verbose {
			logLevel = slog.LevelInfo
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
		return pump(rb, os.Stdin, os.Stdout, chunk, logger)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().IntVar(&capacity, "capacity", 1<<12, "ring buffer capacity in bytes")
	rootCmd.Flags().IntVar(&chunk, "chunk", 512, "maximum bytes per session")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
}

// pump copies in to out through rb until EOF. The producer goroutine owns the
// write sessions, the calling goroutine owns the read sessions; neither ever
// blocks on the buffer, an empty or full window just yields the processor.
func pump(rb *buffer.RingBuffer, in io.Reader, out io.Writer, chunk int, logger *slog.Logger) error {
	var (
		eof     atomic.Bool
		inTotal atomic.Int64
	)

	producerErr := make(chan error, 1)
	go func() {
		defer eof.Store(true)
		for {
			r, err := rb.BeginWriting(chunk)
			if err != nil {
				producerErr <- err
				return
			}
			var n int
			var readErr error
			if r.IsValid() {
				n, readErr = in.Read(rb.Storage()[r.Start : r.End+1])
			}
			if err := rb.FinishWriting(n); err != nil {
				producerErr <- err
				return
			}
			inTotal.Add(int64(n))
			if readErr != nil {
				if readErr == io.EOF {
					producerErr <- nil
				} else {
					producerErr <- readErr
				}
				return
			}
			if n == 0 {
				runtime.Gosched()
			}
		}
	}()

	var outTotal int64
	for {
		r, err := rb.BeginReading(chunk)
		if err != nil {
			return err
		}
		var n int
		if r.IsValid() {
			if _, err := out.Write(rb.Storage()[r.Start : r.End+1]); err != nil {
				_ = rb.FinishReading(0)
				return err
			}
			n = r.Length()
		}
		if err := rb.FinishReading(n); err != nil {
			return err
		}
		outTotal += int64(n)
		if n == 0 {
			if eof.Load() && rb.IsEmpty() {
				break
			}
			runtime.Gosched()
		}
	}

	if err := <-producerErr; err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	logger.Info("pipe finished", "in", inTotal.Load(), "out", outTotal)
	return nil
}
