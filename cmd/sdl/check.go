package main

import (
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	for _, file := range fileArgs(args) {
		nodes, err := getDocFile(cc, file)
		if err != nil {
			failed++
			theLog.Error("invalid", append([]any{"file", file}, parseErrAttrs(err)...)...)
			continue
		}
		if cfg.Quiet {
			continue
		}
		total := 0
		for _, n := range nodes {
			total += 1 + len(n.Descendants())
		}
		theLog.Info("ok", "file", file, "statements", total)
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
