package commands

import (
	"github.com/spf13/cobra"
	"go.velt.ch/jplaunch/internal/app"
	"go.velt.ch/jplaunch/internal/core/domain"
)

func (c *CLI) newLaunchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "launch [directory]",
		Short: "Discover and execute the project's tests",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workingDir := "."
			if len(args) == 1 {
				workingDir = args[0]
			}

			skip, _ := cmd.Flags().GetBool("skip")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			isolate, _ := cmd.Flags().GetBool("isolate")
			reunite, _ := cmd.Flags().GetBool("reunite")
			timeout, _ := cmd.Flags().GetInt("timeout")
			executor, _ := cmd.Flags().GetString("executor")
			tags, _ := cmd.Flags().GetStringArray("tag")
			parameters, _ := cmd.Flags().GetStringToString("parameter")
			setVersions, _ := cmd.Flags().GetStringToString("set-version")
			javaOptions, _ := cmd.Flags().GetStringArray("java-option")
			enableAssertions, _ := cmd.Flags().GetBool("enable-assertions")

			return c.app.Launch(cmd.Context(), app.LaunchOptions{
				WorkingDir:       workingDir,
				Skip:             skip,
				DryRun:           dryRun,
				Isolate:          isolate,
				Reunite:          reunite,
				TimeoutSeconds:   timeout,
				Executor:         executor,
				Tags:             tags,
				Parameters:       parameters,
				VersionOverrides: setVersions,
				JavaOptions:      javaOptions,
				EnableAssertions: enableAssertions,
			})
		},
	}
	cmd.Flags().Bool("skip", false, "Skip the launch entirely")
	cmd.Flags().Bool("dry-run", false, "Discover tests without executing them")
	cmd.Flags().Bool("isolate", true, "Give each top-level dependency its own isolation group")
	cmd.Flags().Bool("reunite", true, "Merge main and test outputs into one runtime group")
	cmd.Flags().Int("timeout", domain.DefaultTimeoutSeconds, "Global timeout in seconds")
	cmd.Flags().StringP("executor", "e", string(domain.ExecutorDirect), "Execution strategy: DIRECT or JAVA")
	cmd.Flags().StringArrayP("tag", "t", nil, "Include only tests matching this tag expression (repeatable, OR semantics)")
	cmd.Flags().StringToStringP("parameter", "p", nil, "Engine configuration parameter as key=value (repeatable)")
	cmd.Flags().StringToString("set-version", nil, "Override a component version as key=version (repeatable)")
	cmd.Flags().StringArray("java-option", nil, "Extra option for the launched runtime (repeatable)")
	cmd.Flags().Bool("enable-assertions", false, "Launch the runtime with assertions enabled")
	return cmd
}
