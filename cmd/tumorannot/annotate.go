package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"tumorannot/pkg/annotation"
	"tumorannot/pkg/batch"
)

var annotateOpts struct {
	InputDir string
}

var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Annotate a batch of volumes with extreme-point bounding boxes",
	Long: `Annotate walks a directory of volumes in order. For each volume the
operator places six extreme points (leftmost/rightmost, anterior/posterior,
superior/inferior tumor boundary), creates a bounding box, optionally adjusts
the relaxation margin, and submits the annotation as a JSON record.

Point coordinates come from the external viewer; this command accepts the
committed coordinates on standard input:

  point <x> <y> <z>   commit one extreme point (physical coordinates, mm)
  box                 create the bounding box from the six points
  relax <r>           set the relaxation margin and recompute the box
  submit              write the annotation record for the current volume
  next                advance to the next volume
  place               re-enter point placement
  reset               discard points and box for the current volume
  status              show session state
  quit                exit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnnotate(annotateOpts.InputDir)
	},
}

func init() {
	annotateCmd.Flags().StringVarP(&annotateOpts.InputDir, "input", "i", "", "Directory containing volumes to annotate")
	annotateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(annotateCmd)
}

// runAnnotate drives one annotation session: batch discovery, the command
// loop standing in for the interactive viewer, and record writing.
func runAnnotate(dir string) error {
	volumes, err := batch.Scan(dir, cfg.Batch.Extensions)
	if err != nil {
		return err
	}

	sess := annotation.NewSession(annotation.Options{
		AutoReenterPlacement: cfg.Placement.AutoReenter,
		DefaultRelaxation:    cfg.Annotation.DefaultRelaxation,
	})
	if err := sess.LoadBatch(volumes); err != nil {
		return err
	}

	writer := batch.Writer{Dir: dir, SubDir: cfg.Batch.OutputDir}

	bar := progressbar.NewOptions(len(volumes),
		progressbar.OptionSetDescription("Annotating"),
		progressbar.OptionSetWriter(os.Stderr), // Write bar to Stderr
		progressbar.OptionShowCount(),
	)

	fmt.Printf("Loaded %d volumes from %s\n", len(volumes), dir)
	printCurrent(sess)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Print("> ")
			continue
		}

		if quit := handleCommand(sess, writer, bar, line); quit {
			return nil
		}
		fmt.Print("> ")
	}

	return scanner.Err()
}

// handleCommand executes one operator command. Engine errors are surfaced as
// messages and never end the session.
func handleCommand(sess *annotation.Session, writer batch.Writer, bar *progressbar.ProgressBar, line string) bool {
	fields := strings.Fields(line)

	switch fields[0] {
	case "point":
		handlePoint(sess, fields[1:])

	case "box":
		box, err := sess.CreateBox()
		if err != nil {
			fmt.Printf("Cannot create box: %v\n", err)
			break
		}
		size := box.Size()
		fmt.Printf("Box center (%.2f, %.2f, %.2f), size (%.2f, %.2f, %.2f)\n",
			box.Center.X, box.Center.Y, box.Center.Z, size.X, size.Y, size.Z)

	case "relax":
		handleRelax(sess, fields[1:])

	case "submit":
		rec, err := sess.Record()
		if err != nil {
			fmt.Printf("Cannot submit: %v\n", err)
			break
		}
		outPath, err := writer.Write(rec)
		if err != nil {
			fmt.Printf("Failed to write annotation: %v\n", err)
			break
		}
		fmt.Printf("Annotation saved to %s\n", outPath)

	case "next":
		if err := sess.Advance(); err != nil {
			if errors.Is(err, annotation.ErrAtEnd) {
				fmt.Println("Already at the last volume")
			} else {
				fmt.Printf("Cannot advance: %v\n", err)
			}
			break
		}
		bar.Add(1)
		printCurrent(sess)

	case "place":
		if err := sess.BeginPlacement(); err != nil {
			fmt.Printf("Cannot enter placement: %v\n", err)
		}

	case "reset":
		sess.ResetCurrent()
		fmt.Println("Cleared points and box for the current volume")

	case "status":
		printStatus(sess)

	case "quit", "exit":
		return true

	default:
		fmt.Printf("Unknown command %q (try: point, box, relax, submit, next, place, reset, status, quit)\n", fields[0])
	}

	return false
}

func handlePoint(sess *annotation.Session, args []string) {
	if len(args) != 3 {
		fmt.Println("Usage: point <x> <y> <z>")
		return
	}

	var coords [3]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			fmt.Printf("Invalid coordinate %q: %v\n", arg, err)
			return
		}
		coords[i] = v
	}

	p := r3.Vec{X: coords[0], Y: coords[1], Z: coords[2]}
	if !sess.CommitPoint(p) {
		fmt.Printf("Point dropped (%s, %d of %d points placed)\n",
			sess.Placement(), sess.PointCount(), annotation.MaxPoints)
		return
	}

	if cfg.Output.Verbose {
		fmt.Printf("Point %d of %d placed at (%.2f, %.2f, %.2f)\n",
			sess.PointCount(), annotation.MaxPoints, p.X, p.Y, p.Z)
	}
	if sess.PointCount() == annotation.MaxPoints {
		fmt.Println("All six extreme points placed; run 'box' to create the bounding box")
	}
}

func handleRelax(sess *annotation.Session, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: relax <margin>")
		return
	}

	r, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Printf("Invalid relaxation %q: %v\n", args[0], err)
		return
	}

	if r > cfg.Annotation.MaxRelaxation {
		fmt.Printf("Note: relaxation %.1f exceeds the configured control range of %.1f\n",
			r, cfg.Annotation.MaxRelaxation)
	}

	box, err := sess.SetRelaxation(r)
	if err != nil {
		fmt.Printf("Cannot set relaxation: %v\n", err)
		return
	}

	size := box.Size()
	fmt.Printf("Relaxation %.2f, size now (%.2f, %.2f, %.2f)\n",
		sess.Relaxation(), size.X, size.Y, size.Z)
}

func printCurrent(sess *annotation.Session) {
	vol, ok := sess.Current()
	if !ok {
		return
	}
	fmt.Printf("Volume %d of %d: %s\n", sess.Index()+1, sess.Len(), vol.Filename)
}

func printStatus(sess *annotation.Session) {
	fmt.Printf("Phase: %s\n", sess.Phase())
	if vol, ok := sess.Current(); ok {
		fmt.Printf("Volume: %s (%d of %d, %.0f%% of batch passed)\n",
			vol.Filename, sess.Index()+1, sess.Len(), sess.Progress()*100)
	}
	fmt.Printf("Placement: %s, %d of %d points\n",
		sess.Placement(), sess.PointCount(), annotation.MaxPoints)

	if box, ok := sess.Box(); ok {
		size := box.Size()
		fmt.Printf("Box: center (%.2f, %.2f, %.2f), size (%.2f, %.2f, %.2f), relaxation %.2f\n",
			box.Center.X, box.Center.Y, box.Center.Z, size.X, size.Y, size.Z, sess.Relaxation())
	} else {
		fmt.Println("Box: none")
	}
}
