/*
Package cli provides helpers shared by the frontend command.

Output Formatting:

Commands that print a result support text and JSON:

	format, err := cli.ParseOutputFormat(flags.format)
	if err != nil {
		return err
	}
	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), result)

Signal Handling:

The server runs until SIGINT or SIGTERM:

	ctx, stop := cli.SetupSignalHandler(cmd.Context())
	defer stop()
*/
package cli
