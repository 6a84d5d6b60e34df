package preprocess

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"mdbi/config"
	"mdbi/state"
)

// DumpConfig outputs program configuration and, when book.toml is given,
// preprocessor options resolved from it as a second YAML document.
func DumpConfig(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err  error
		data []byte
		kind string
	)

	if cmd.Bool("default") {
		kind = "default"
		data, err = config.Prepare()
	} else {
		kind = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if bookFile := cmd.String("book"); len(bookFile) > 0 {
		opts, err := config.LoadBookOptions(bookFile)
		if err != nil {
			return fmt.Errorf("unable to get preprocessor options: %w", err)
		}
		optsData, err := config.DumpOptions(opts)
		if err != nil {
			return err
		}
		data = append(data, fmt.Sprintf("---\n# [preprocessor.%s] from %s\n", config.PreprocessorName, bookFile)...)
		data = append(data, optsData...)
	}

	out := env.Stdout
	if len(fname) > 0 {
		f, err := os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer f.Close()
		out = f
	} else {
		fname = "STDOUT"
	}
	env.Log.Info("Outputing configuration", zap.String("state", kind), zap.String("file", fname))

	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
