package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/posener/complete"
	"github.com/willabides/kongplete"

	"github.com/datapeek/datapeek/cmd"
)

var cli struct {
	View     cmd.ViewCmd     `cmd:"" help:"Browse a tabular dataset in the terminal."`
	Serve    cmd.ServeCmd    `cmd:"" help:"Serve a dataset over a JSON API."`
	Generate cmd.GenerateCmd `cmd:"" help:"Generate a sample dataset with mixed column types."`
}

func main() {
	parser := kong.Must(
		&cli,
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Description("Terminal viewer for large tabular datasets with multi-line cells"),
	)
	kongplete.Complete(parser, kongplete.WithPredictor("file", complete.PredictFiles("*")))

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	ctx.FatalIfErrorf(ctx.Run())
}
