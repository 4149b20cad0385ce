package main

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/signadot/sdl-format/go-sdl/ir"
	"github.com/signadot/sdl-format/go-sdl/libdiff"
	"github.com/signadot/sdl-format/go-sdl/parse"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Loop == "" {
		if len(args) != 2 {
			return fmt.Errorf("%w: diff (without -loop) requires 2 args, got %v", cli.ErrUsage, args)
		}
		d1, err := getDocFile(cc, args[0])
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[0], err)
		}
		d2, err := getDocFile(cc, args[1])
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[1], err)
		}
		differs, err := diffInputs(cfg, cc, d1, d2, false)
		if err != nil {
			return err
		}
		if differs {
			return cli.ExitCodeErr(1)
		}
		return nil
	}
	return diffLoop(cfg, cc)
}

func diffLoop(cfg *DiffConfig, cc *cli.Context) error {
	var last []*ir.Node
	ticker := time.NewTicker(cfg.LoopEvery)
	defer ticker.Stop()
	diffCount := 0
	for i := 0; i != cfg.LoopLim; i++ {
		cmd := exec.Command("sh", "-c", cfg.Loop)
		r, err := cmd.StdoutPipe()
		if err != nil {
			return fmt.Errorf("unable to create pipe for command %q: %w", cfg.Loop, err)
		}
		cmd.WaitDelay = cfg.LoopEvery
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("unable to start %q: %w", cfg.Loop, err)
		}
		d, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		next, err := parse.Parse(d)
		if err != nil {
			return fmt.Errorf("error decoding command output: %w", err)
		}
		differs, err := diffInputs(cfg, cc, last, next, diffCount > 0)
		if err != nil {
			return err
		}
		if differs {
			diffCount++
		}
		if err := cmd.Wait(); err != nil {
			return fmt.Errorf("command %q exited with an error: %w", cfg.Loop, err)
		}
		last = next
		<-ticker.C
	}
	return nil
}

func diffInputs(cfg *DiffConfig, cc *cli.Context, a, b []*ir.Node, sep bool) (bool, error) {
	if cfg.Reverse {
		a, b = b, a
	}
	edits := libdiff.DiffForest(a, b)
	if !libdiff.Changed(edits) {
		return false, nil
	}
	w := cc.Out
	if sep {
		if _, err := io.WriteString(w, "---\n"); err != nil {
			return false, fmt.Errorf("unable to write separator: %w", err)
		}
	}
	if cfg.Loop != "" {
		when := time.Now().Format(time.RFC3339Nano)
		if _, err := io.WriteString(w, "# difference found at "+when+"\n"); err != nil {
			return false, err
		}
	}
	text := libdiff.Format(edits)
	if cfg.colorize(w) {
		text = colorDiff(text)
	}
	if _, err := io.WriteString(w, text); err != nil {
		return false, err
	}
	return true, nil
}

func colorDiff(text string) string {
	lines := strings.SplitAfter(text, "\n")
	for i, ln := range lines {
		switch {
		case strings.HasPrefix(ln, "+"):
			lines[i] = color.GreenString("%s", strings.TrimSuffix(ln, "\n")) + "\n"
		case strings.HasPrefix(ln, "-"):
			lines[i] = color.RedString("%s", strings.TrimSuffix(ln, "\n")) + "\n"
		}
	}
	return strings.Join(lines, "")
}
