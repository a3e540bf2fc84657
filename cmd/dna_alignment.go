package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pcawg2/payload-tools/internal/core/services"
	"github.com/pcawg2/payload-tools/pkg/ui"
)

var (
	alignFile          string
	alignInputPayloads []string
	alignWfShortName   string
	alignWfVersion     string
	alignTemplate      string
)

var dnaAlignmentCmd = &cobra.Command{
	Use:   "dna-alignment",
	Short: "Generate the payload for an aligned reads file",
	Long: `Describe an aligned BAM/CRAM file and its .bai/.crai index (size, MD5,
data type), link the read group input payloads and record the workflow.
The payload is written to payload.json.

Examples:
  payload-tools dna-alignment -f sample.bam -a rg1.json -a rg2.json \
    -c dna-seq -v 1.0.0`,
	Args: cobra.NoArgs,
	RunE: runDNAAlignment,
}

func init() {
	f := dnaAlignmentCmd.Flags()
	f.StringVarP(&alignFile, "file_to_upload", "f", "", "aligned reads file to upload")
	f.StringSliceVarP(&alignInputPayloads, "input_payload", "a", nil, "input payloads for the analysis (repeatable)")
	f.StringVarP(&alignWfShortName, "wf_short_name", "c", "", "workflow short name")
	f.StringVarP(&alignWfVersion, "wf_version", "v", "", "workflow version")
	f.StringVarP(&alignTemplate, "template", "t", "", "payload template (default: built-in)")

	_ = dnaAlignmentCmd.MarkFlagRequired("file_to_upload")
	_ = dnaAlignmentCmd.MarkFlagRequired("wf_short_name")
}

func runDNAAlignment(cmd *cobra.Command, args []string) error {
	svc := services.NewAlignmentPayloadService(documentStore, fileInspector, logger)

	res, err := svc.Execute(cmd.Context(), services.AlignmentRequest{
		FilePath:          alignFile,
		InputPayloads:     alignInputPayloads,
		WorkflowShortName: alignWfShortName,
		WorkflowVersion:   alignWfVersion,
		TemplatePath:      alignTemplate,
	})
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess("Payload written: " + res.Path))
	fmt.Print(renderFiles(res.Files))
	return nil
}
