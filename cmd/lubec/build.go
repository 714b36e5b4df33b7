package main

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/saumitralohokare/lubec/codegen"
)

func newBuildCmd() *cobra.Command {
	var demo, out string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "build a named sample module and write its assembly",
		RunE: func(cmd *cobra.Command, args []string) error {
			build, ok := demos[demo]
			if !ok {
				return errors.Errorf("unknown demo %q (known: %s)", demo, knownDemos())
			}

			log.WithFields(logrus.Fields{"demo": demo, "out": out}).Info("generating assembly")

			module := build()
			asm := codegen.Generate(module)
			if err := asm.SaveTo(out); err != nil {
				return errors.Wrap(err, "saving assembly")
			}

			log.WithField("out", out).Info("wrote assembly")
			return nil
		},
	}

	cmd.Flags().StringVar(&demo, "demo", "const-return", fmt.Sprintf("sample module to build (%s)", knownDemos()))
	cmd.Flags().StringVar(&out, "out", "a.s", "output assembly path")
	return cmd
}

func knownDemos() string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
