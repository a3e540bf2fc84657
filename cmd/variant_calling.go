package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pcawg2/payload-tools/internal/core/services"
	"github.com/pcawg2/payload-tools/pkg/ui"
)

var (
	vcNormalAnalysis string
	vcTumourAnalysis string
	vcFiles          []string
	vcWfName         string
	vcWfShortName    string
	vcWfVersion      string
	vcWfRun          string
)

var variantCallingCmd = &cobra.Command{
	Use:   "variant-calling",
	Short: "Generate the payload for variant calling results",
	Long: `Describe VCF files and their indexes produced by a variant caller,
together with the sample, specimen and donor of the analysed alignment.

Supported callers: sanger-wgs, sanger-wxs, broad-mutect2 (somatic, need -t)
and HaplotypeCaller (germline). Somatic VCFs are classified by filename and
annotated with the tools and analysis type that produced them.

Unlike the legacy script, broad-mutect2 is accepted and HaplotypeCaller
describes the normal analysis rather than the tumour one.

The payload is written to <uuid>.variant_calling.payload.json.

Examples:
  payload-tools variant-calling -n normal.json -t tumour.json \
    -f x.flagged.muts.vcf.gz -f x.flagged.muts.vcf.gz.tbi \
    -w sanger-wgs-variant-calling -s sanger-wgs -v 2.1.0 -r run-42`,
	Args: cobra.NoArgs,
	RunE: runVariantCalling,
}

func init() {
	f := variantCallingCmd.Flags()
	f.StringVarP(&vcNormalAnalysis, "normal-analysis", "n", "", "sequencing_alignment analysis of the normal sample")
	f.StringVarP(&vcTumourAnalysis, "tumour-analysis", "t", "", "sequencing_alignment analysis of the tumour sample")
	f.StringSliceVarP(&vcFiles, "files", "f", nil, "files to be uploaded (repeatable)")
	f.StringVarP(&vcWfName, "wf-name", "w", "", "workflow full name")
	f.StringVarP(&vcWfShortName, "wf-short-name", "s", "", "workflow short name")
	f.StringVarP(&vcWfVersion, "wf-version", "v", "", "workflow version")
	f.StringVarP(&vcWfRun, "wf-run", "r", "", "workflow run ID")

	for _, name := range []string{"normal-analysis", "files", "wf-name", "wf-short-name", "wf-version", "wf-run"} {
		_ = variantCallingCmd.MarkFlagRequired(name)
	}
}

func runVariantCalling(cmd *cobra.Command, args []string) error {
	svc := services.NewVariantCallingService(documentStore, fileInspector, logger)

	res, err := svc.Execute(cmd.Context(), services.VariantCallingRequest{
		NormalAnalysisPath: vcNormalAnalysis,
		TumourAnalysisPath: vcTumourAnalysis,
		Files:              vcFiles,
		WorkflowName:       vcWfName,
		WorkflowShortName:  vcWfShortName,
		WorkflowVersion:    vcWfVersion,
		WorkflowRunID:      vcWfRun,
	})
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess("Payload written: " + res.Path))
	fmt.Print(renderFiles(res.Files))
	return nil
}
