package cmd

import (
	"github.com/spf13/cobra"
)

// manifestsCmd represents the manifests command.
var manifestsCmd = newManifestsCmd()

func newManifestsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "manifests",
		Aliases: []string{"ls"},
		Short:   "List dependency manifests in install order",
		Long: `Manifests lists every requirements.txt and requirements-dev.txt below the
project root in the order the pip strategy installs them: primary manifests
first, then dev manifests, each group sorted by path. The runtime directory,
.git and the configured ignore globs are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui := newConsole(cmd)

			provisioner, err := buildProvisioner(cmd, ui)
			if err != nil {
				return err
			}

			root, manifests, err := provisioner.Manifests(cmd.Context())
			if err != nil {
				return err
			}

			return ui.DisplayManifests(root, manifests)
		},
	}
}

func init() {
	rootCmd.AddCommand(manifestsCmd)
}
