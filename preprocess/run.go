// Package preprocess implements mdbook-internal actions: processing of the
// book mdbook hands over and renderer support queries.
package preprocess

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"mdbi/book"
	"mdbi/config"
	"mdbi/host"
	"mdbi/misc"
	"mdbi/state"
)

// Run is the default action: it reads [context, book] from stdin, handles
// internal sections and chapters and writes the book back to stdout.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("preprocess")

	if cmd.Args().Len() > 0 {
		log.Warn("Mailformed command line, unexpected arguments", zap.Strings("ignoring", cmd.Args().Slice()))
	}

	defer func(start time.Time) {
		log.Debug("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, env.Stdin, env.Stdout, env.Rpt, log)
}

// process handles the whole exchange with mdbook independently of CLI
// framework.
func process(ctx context.Context, in io.Reader, out io.Writer, rpt *config.Report, log *zap.Logger) error {
	req, err := host.ReadRequest(in)
	if err != nil {
		return err
	}
	rpt.StoreData("input.json", req.Raw)

	if err := ctx.Err(); err != nil {
		return err
	}

	compatible, err := host.CheckVersion(req.Context.MdbookVersion)
	if err != nil {
		return err
	}
	if !compatible {
		log.Warn("Plugin was built against different version of mdbook",
			zap.String("plugin", misc.GetAppName()),
			zap.String("built against", misc.MdbookVersion),
			zap.String("called from", req.Context.MdbookVersion))
	}

	opts, err := config.FromContext(req.Context.Config)
	if err != nil {
		return fmt.Errorf("unable to decode [preprocessor.%s] configuration: %w", config.PreprocessorName, err)
	}
	if data, err := config.DumpOptions(opts); err == nil {
		rpt.StoreData("options.yaml", data)
	}

	log.Debug("Processing book",
		zap.String("root", req.Context.Root),
		zap.String("renderer", req.Context.Renderer),
		zap.String("mdbook", req.Context.MdbookVersion),
		zap.Int("chapters", book.CountChapters(req.Book.Sections)))

	// stages rewrite the book in place
	var before *book.Book
	if rpt != nil {
		before = req.Book.Clone()
	}

	result := Transform(req.Book, opts, log)

	if before != nil {
		rpt.StoreData("book-before.txt", []byte(before.String()))
		rpt.StoreData("book-after.txt", []byte(result.String()))
	}

	data, err := host.EncodeBook(result)
	if err != nil {
		return err
	}
	rpt.StoreData("output.json", data)

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("unable to write processed book: %w", err)
	}
	return nil
}

// ErrRendererNotSupported is returned by Supports for renderers we refuse to
// work with. It is not a failure, exit code carries the answer.
var ErrRendererNotSupported = errors.New("renderer is not supported")

// unsupportedRenderer is the only renderer we decline, everything else gets
// processed.
const unsupportedRenderer = "not-supported"

// SupportsRenderer reports whether book built by renderer should be
// preprocessed.
func SupportsRenderer(renderer string) bool {
	return renderer != unsupportedRenderer
}

// Supports answers mdbook question whether renderer is supported.
func Supports(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("supports")

	renderer := cmd.Args().First()
	if len(renderer) == 0 {
		return errors.New("no renderer has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Mailformed command line, too many renderers", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	if !SupportsRenderer(renderer) {
		log.Debug("Renderer is not supported", zap.String("renderer", renderer))
		return fmt.Errorf("%w: %s", ErrRendererNotSupported, renderer)
	}
	log.Debug("Renderer is supported", zap.String("renderer", renderer))
	return nil
}
