// Package analyze implements the `driftscan analyze` command: load both
// resource lists, run the drift analysis, write the report, and optionally
// upload it.
package analyze

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/crmarques/driftscan/analyzer"
	"github.com/crmarques/driftscan/config"
	"github.com/crmarques/driftscan/debugctx"
	"github.com/crmarques/driftscan/internal/cli/common"
	"github.com/crmarques/driftscan/reportstore"
	"github.com/crmarques/driftscan/uploader"
)

type Dependencies struct {
	ResourceLists reportstore.ResourceListStore
	Reports       reportstore.ReportStore
	Config        config.Config
	NewUploader   func(ctx context.Context, cfg config.Config) (uploader.ReportUploader, error)
}

func NewCommand(deps Dependencies, globalFlags *common.GlobalFlags) *cobra.Command {
	var (
		upload             bool
		ignoreAttributes   []string
		suppressAttributes []string
		jqExpression       string
	)

	command := &cobra.Command{
		Use:   "analyze <observed-file> <declared-file> <output-file>",
		Short: "Analyze drift between observed and declared resources",
		Example: `  driftscan analyze cloud.json iac.json report.json
  driftscan analyze cloud.yaml iac.yaml report.json --ignore status --upload`,
		Args: cobra.ExactArgs(3),
		RunE: func(command *cobra.Command, args []string) error {
			observedPath, err := common.ValidateInputFile(args[0])
			if err != nil {
				return err
			}
			declaredPath, err := common.ValidateInputFile(args[1])
			if err != nil {
				return err
			}
			outputPath, err := common.ValidateOutputPath(args[2])
			if err != nil {
				return err
			}

			observed, err := deps.ResourceLists.LoadResourceList(command.Context(), observedPath)
			if err != nil {
				return err
			}
			declared, err := deps.ResourceLists.LoadResourceList(command.Context(), declaredPath)
			if err != nil {
				return err
			}

			rules := &analyzer.CompareRules{
				IgnoreAttributes:   ignoreAttributes,
				SuppressAttributes: suppressAttributes,
				JQExpression:       jqExpression,
			}
			run := analyzer.New(
				analyzer.WithCompareRules(rules),
				analyzer.WithIndexEventSink(warningSink(command.ErrOrStderr())),
			)

			report, err := run.Analyze(command.Context(), observed, declared)
			if err != nil {
				return err
			}

			if err := deps.Reports.WriteReport(command.Context(), outputPath, report); err != nil {
				return err
			}

			summary := reportstore.Summarize(report)
			if err := common.WriteOutput(command, globalFlags.Output, summary, renderSummary(outputPath)); err != nil {
				return err
			}

			if !upload {
				return nil
			}
			if deps.NewUploader == nil {
				return common.ValidationError("report upload is not configured", nil)
			}
			reportUploader, err := deps.NewUploader(command.Context(), deps.Config)
			if err != nil {
				return err
			}
			location, err := reportUploader.UploadReport(command.Context(), outputPath)
			if err != nil {
				return err
			}
			debugctx.Printf(command.Context(), "report uploaded to %s", location)
			_, err = fmt.Fprintf(command.ErrOrStderr(), "report uploaded to %s\n", location)
			return err
		},
	}

	command.Flags().BoolVar(&upload, "upload", false, "upload the report to the configured object store")
	command.Flags().StringSliceVar(&ignoreAttributes, "ignore", nil, "top-level attributes to ignore during comparison")
	command.Flags().StringSliceVar(&suppressAttributes, "suppress", nil, "dotted attribute paths to suppress during comparison")
	command.Flags().StringVar(&jqExpression, "jq", "", "jq expression applied to both sides before comparison")

	return command
}

func warningSink(w io.Writer) func(analyzer.IndexEvent) {
	yellow := color.New(color.FgYellow)
	return func(event analyzer.IndexEvent) {
		field := "id"
		if event.Kind == analyzer.IndexEventDuplicateName {
			field = "name"
		}
		_, _ = yellow.Fprintf(w, "warning: duplicate declared resource %s %q, later entry overwrites earlier one\n", field, event.Key)
	}
}

func renderSummary(outputPath string) func(io.Writer, reportstore.Summary) error {
	return func(w io.Writer, summary reportstore.Summary) error {
		green := color.New(color.FgGreen)
		yellow := color.New(color.FgYellow)
		red := color.New(color.FgRed)

		if _, err := fmt.Fprintf(w, "Report saved to: %s\n", outputPath); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "Analyzed %d resources: %s match, %s modified, %s missing\n",
			summary.Total,
			green.Sprintf("%d", summary.Match),
			yellow.Sprintf("%d", summary.Modified),
			red.Sprintf("%d", summary.Missing),
		)
		return err
	}
}
