package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pcawg2/payload-tools/internal/adapters/uploader"
	"github.com/pcawg2/payload-tools/internal/core/ports"
	"github.com/pcawg2/payload-tools/internal/core/services"
	"github.com/pcawg2/payload-tools/pkg/ui"
)

var (
	submitEndpointURL string
	submitBucketName  string
	submitMetadata    string
	submitPayload     string
	submitSkipUpload  bool
)

var cephSubmitCmd = &cobra.Command{
	Use:   "ceph-submit",
	Short: "Finalize a payload and upload it to object storage",
	Long: `Assign a bundle id, info block and file object ids to a payload,
write it as <id>.json and copy it to the derived storage key.

The key layout depends on the payload type:
  sequencing_experiment, dna_alignment_qc   <base>/<type>/<id>.json
  lane_seq_submission, lane_seq_qc          <base>/<type>/<read_group>/<id>.json
  dna_alignment                             <base>/<type>/<bam|cram>/<id>.json
  somatic_variant_call                      <base>/<type>/<tool>/<data_type>/<id>.json

Examples:
  payload-tools ceph-submit -s https://object.example.org -b argo-payloads \
    -m metadata.json -p payload.json`,
	Args: cobra.NoArgs,
	RunE: runCephSubmit,
}

func init() {
	f := cephSubmitCmd.Flags()
	f.StringVarP(&submitEndpointURL, "endpoint-url", "s", "", "object storage endpoint URL (default from config)")
	f.StringVarP(&submitBucketName, "bucket-name", "b", "", "bucket name (default from config)")
	f.StringVarP(&submitMetadata, "metadata", "m", "", "metadata file containing the submitted information")
	f.StringVarP(&submitPayload, "payload", "p", "", "payload file")
	f.BoolVar(&submitSkipUpload, "skip-upload", false, "write the payload without uploading it")

	_ = cephSubmitCmd.MarkFlagRequired("metadata")
	_ = cephSubmitCmd.MarkFlagRequired("payload")
}

func runCephSubmit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	bucket := submitBucketName
	if bucket == "" {
		bucket = appConfig.BucketName
	}

	var up ports.Uploader
	if !submitSkipUpload {
		u, err := uploader.New(ctx, appConfig, submitEndpointURL, logger)
		if err != nil {
			return err
		}
		up = u
	}

	svc := services.NewCephSubmissionService(documentStore, up, logger)
	res, err := svc.Execute(ctx, services.SubmitRequest{
		MetadataPath: submitMetadata,
		PayloadPath:  submitPayload,
		BucketName:   bucket,
		SkipUpload:   submitSkipUpload,
	})
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess("Payload written: " + res.LocalPath))
	fmt.Println(ui.RenderKeyValue("Object key", res.ObjectKey))
	if res.Uploaded {
		fmt.Println(ui.FormatUpload("Uploaded to s3://" + res.ObjectKey))
	} else {
		fmt.Println(ui.FormatMuted("(upload skipped)"))
	}

	return nil
}
