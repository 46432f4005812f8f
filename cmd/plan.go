package cmd

import (
	"github.com/spf13/cobra"
)

// planCmd represents the plan command.
var planCmd = newPlanCmd()

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show the decisions a bootstrap run would take",
		Long: `Plan resolves the project root, mode and interpreter, then reports what the
bootstrap would do with the runtime environment, which dependency strategy it
would use, which manifests it would install and whether hooks would be
registered. Nothing is created, removed or installed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui := newConsole(cmd)

			provisioner, err := buildProvisioner(cmd, ui)
			if err != nil {
				return err
			}

			plan, err := provisioner.Plan(cmd.Context())
			if err != nil {
				return err
			}

			return ui.DisplayPlan(plan)
		},
	}
}

func init() {
	rootCmd.AddCommand(planCmd)
}
