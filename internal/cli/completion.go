package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand wires cobra's shell completion generators.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for planforge.

Load it for the current session:

  bash:       source <(planforge completion bash)
  zsh:        planforge completion zsh > "${fpath[1]}/_planforge"
  fish:       planforge completion fish | source
  powershell: planforge completion powershell | Out-String | Invoke-Expression

To install permanently, write the script wherever your shell loads
completions from (bash_completion.d, fpath, the fish completions
directory, or your PowerShell profile).`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
