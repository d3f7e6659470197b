package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// completionCommand prints a completion script for the named shell.
func (c *CLI) completionCommand() *cobra.Command {
	generators := map[string]func(*cobra.Command, io.Writer) error{
		"bash": func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
		"zsh":  func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
		"fish": func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	}

	return &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for sitegrid.

  $ source <(sitegrid completion bash)
  $ sitegrid completion zsh > "${fpath[1]}/_sitegrid"
  $ sitegrid completion fish > ~/.config/fish/completions/sitegrid.fish`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return generators[args[0]](cmd.Root(), cmd.OutOrStdout())
		},
	}
}
