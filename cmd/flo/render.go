package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"flo/internal/button"
	"flo/internal/intake"
	"flo/internal/log"
	"flo/internal/render"
)

type renderOptions struct {
	view    string
	count   int
	width   int
	height  int
	out     string
	history string

	press float64
	from  string
	morph float64
}

func newRenderCmd(opts *options) *cobra.Command {
	ro := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the gauge, graph or button as SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, ro, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&ro.view, "view", "gauge", "Drawing: gauge, graph or button")
	cmd.Flags().IntVarP(&ro.count, "count", "n", 0, "Glasses drunk today, clamped to the goal")
	cmd.Flags().IntVar(&ro.width, "width", 0, "Width in SVG units (default depends on the view)")
	cmd.Flags().IntVar(&ro.height, "height", 0, "Height in SVG units (default depends on the view)")
	cmd.Flags().StringVarP(&ro.out, "out", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&ro.history, "history", "", "History CSV file (default: history_file from the config)")
	cmd.Flags().Float64Var(&ro.press, "press", 0, "Button press, 0 at rest to 1 fully pressed")
	cmd.Flags().StringVar(&ro.from, "from", "", "Button symbol being switched from: plus, minus or oval")
	cmd.Flags().Float64Var(&ro.morph, "morph", 0, "Progress of the symbol switch set by --from, 0 to 1")
	return cmd
}

// defaultSize is the size each view is designed at.
func defaultSize(v render.View) (int, int) {
	switch v {
	case render.GraphView:
		return 300, 250
	case render.ButtonView:
		return 100, 100
	}
	return 230, 230
}

func runRender(opts *options, ro *renderOptions, stdout io.Writer) error {
	v, err := render.ParseView(ro.view)
	if err != nil {
		return err
	}
	if ro.count < 0 {
		return fmt.Errorf("invalid count: %d", ro.count)
	}
	scene, err := opts.cfg.Scene()
	if err != nil {
		return err
	}
	if scene.Frame, err = ro.frame(); err != nil {
		return err
	}

	tracker := opts.cfg.Tracker()
	path := ro.history
	if path == "" {
		path = opts.cfg.HistoryFile
	}
	if path != "" {
		h, err := intake.LoadHistoryCSV(path)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		tracker.SetHistory(intake.LastDays(h, opts.cfg.Days))
	}
	for i := 0; i < ro.count; i++ {
		if !tracker.Add() {
			break
		}
	}

	w, h := defaultSize(v)
	if ro.width > 0 {
		w = ro.width
	}
	if ro.height > 0 {
		h = ro.height
	}

	r := tracker.Reading()
	if ro.out == "" {
		err = scene.Write(stdout, v, w, h, r)
	} else {
		err = writeFile(ro.out, func(f io.Writer) error { return scene.Write(f, v, w, h, r) })
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", v, err)
	}
	log.Infow("rendered", "view", v, "width", w, "height", h, "out", ro.out)
	return nil
}

// frame reads the button pose flags.
func (ro *renderOptions) frame() (render.ButtonFrame, error) {
	f := render.ButtonFrame{Press: ro.press, Morph: ro.morph}
	if ro.press < 0 || ro.press > 1 {
		return f, fmt.Errorf("invalid press: %v", ro.press)
	}
	if ro.morph < 0 || ro.morph > 1 {
		return f, fmt.Errorf("invalid morph: %v", ro.morph)
	}
	if ro.from != "" {
		k, err := button.ParseKind(ro.from)
		if err != nil {
			return f, err
		}
		f.From = &k
	}
	return f, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
