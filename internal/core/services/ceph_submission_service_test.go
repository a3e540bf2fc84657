package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcawg2/payload-tools/internal/core/domain"
	"github.com/pcawg2/payload-tools/internal/core/ports/mocks"
)

func submissionMetadata() map[string]any {
	return map[string]any{
		"library_strategy":          "WGS",
		"program_id":                "TEST-PR",
		"submitter_donor_id":        "DO1",
		"submitter_sample_id":       "SA1",
		"tumour_normal_designation": "Normal",
	}
}

func setupSubmission(t *testing.T, payload map[string]any) (*CephSubmissionService, *mocks.MockDocumentStore, *mocks.MockUploader) {
	t.Helper()
	store := mocks.NewMockDocumentStore()
	store.AddDocument("metadata.json", submissionMetadata())
	store.AddDocument("payload.json", payload)
	uploader := mocks.NewMockUploader()
	return NewCephSubmissionService(store, uploader, nil), store, uploader
}

func TestCephSubmission_Alignment(t *testing.T) {
	svc, store, uploader := setupSubmission(t, map[string]any{
		"type": "dna_alignment",
		"files": map[string]any{
			"aligned_seq": map[string]any{"name": "sample.cram"},
			"index":       map[string]any{"name": "sample.cram.crai"},
		},
	})

	res, err := svc.Execute(context.Background(), SubmitRequest{
		MetadataPath: "metadata.json",
		PayloadPath:  "payload.json",
		BucketName:   "bucket",
	})
	require.NoError(t, err)

	assert.True(t, res.Uploaded)
	assert.Equal(t, res.PayloadID+".json", res.LocalPath)
	assert.Equal(t, "bucket/PCAWG2/WGS/TEST-PR/DO1/SA1.normal/dna_alignment/cram/"+res.PayloadID+".json", res.ObjectKey)

	require.Equal(t, 1, uploader.CallCount())
	assert.Equal(t, mocks.UploadCall{LocalPath: res.LocalPath, ObjectKey: res.ObjectKey}, uploader.Calls[0])

	doc, ok := store.WrittenDocument(res.LocalPath)
	require.True(t, ok)
	assert.Equal(t, res.PayloadID, doc["id"])

	info := doc["info"].(map[string]any)
	assert.Equal(t, "TEST-PR", info["program_id"])

	files := doc["files"].(map[string]any)
	aligned := files["aligned_seq"].(map[string]any)
	assert.Equal(t, domain.ObjectID(res.PayloadID, "sample.cram"), aligned["object_id"])
}

func TestCephSubmission_SequencingExperimentDropsInfo(t *testing.T) {
	svc, store, _ := setupSubmission(t, map[string]any{"type": "sequencing_experiment"})

	res, err := svc.Execute(context.Background(), SubmitRequest{
		MetadataPath: "metadata.json",
		PayloadPath:  "payload.json",
		BucketName:   "bucket",
	})
	require.NoError(t, err)

	doc, ok := store.WrittenDocument(res.LocalPath)
	require.True(t, ok)
	_, hasInfo := doc["info"]
	assert.False(t, hasInfo)
	assert.True(t, strings.HasSuffix(res.ObjectKey, "/sequencing_experiment/"+res.PayloadID+".json"))
}

func TestCephSubmission_UnknownTypeWritesNothing(t *testing.T) {
	svc, store, uploader := setupSubmission(t, map[string]any{"type": "rna_expression"})

	_, err := svc.Execute(context.Background(), SubmitRequest{
		MetadataPath: "metadata.json",
		PayloadPath:  "payload.json",
		BucketName:   "bucket",
	})
	require.ErrorIs(t, err, domain.ErrUnknownPayloadType)
	assert.Empty(t, store.Written)
	assert.Equal(t, 0, uploader.CallCount())
}

func TestCephSubmission_MissingPathFieldWritesNothing(t *testing.T) {
	svc, store, _ := setupSubmission(t, map[string]any{"type": "lane_seq_submission", "inputs": map[string]any{}})

	_, err := svc.Execute(context.Background(), SubmitRequest{
		MetadataPath: "metadata.json",
		PayloadPath:  "payload.json",
		BucketName:   "bucket",
	})
	require.ErrorIs(t, err, domain.ErrMissingField)
	assert.Empty(t, store.Written)
}

func TestCephSubmission_SkipUpload(t *testing.T) {
	svc, store, uploader := setupSubmission(t, map[string]any{"type": "dna_alignment_qc"})

	res, err := svc.Execute(context.Background(), SubmitRequest{
		MetadataPath: "metadata.json",
		PayloadPath:  "payload.json",
		BucketName:   "bucket",
		SkipUpload:   true,
	})
	require.NoError(t, err)
	assert.False(t, res.Uploaded)
	assert.Len(t, store.Written, 1)
	assert.Equal(t, 0, uploader.CallCount())
}

func TestCephSubmission_UploadFailure(t *testing.T) {
	svc, _, uploader := setupSubmission(t, map[string]any{"type": "dna_alignment_qc"})
	uploader.Err = &domain.ExternalCommandError{Command: "aws", Code: 255, Err: errors.New("exit status 255")}

	res, err := svc.Execute(context.Background(), SubmitRequest{
		MetadataPath: "metadata.json",
		PayloadPath:  "payload.json",
		BucketName:   "bucket",
	})

	var cmdErr *domain.ExternalCommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, 255, cmdErr.ExitCode())
	require.NotNil(t, res)
	assert.False(t, res.Uploaded)
}

func TestCephSubmission_FreshIDPerRun(t *testing.T) {
	svc, _, _ := setupSubmission(t, map[string]any{"type": "dna_alignment_qc"})
	req := SubmitRequest{MetadataPath: "metadata.json", PayloadPath: "payload.json", BucketName: "bucket", SkipUpload: true}

	first, err := svc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.PayloadID, second.PayloadID)
}

func TestCephSubmission_PreservesNumbers(t *testing.T) {
	svc, store, _ := setupSubmission(t, map[string]any{
		"type":       "dna_alignment_qc",
		"read_count": json.Number("123456789012345678"),
		"ratio":      json.Number("0.10"),
	})

	res, err := svc.Execute(context.Background(), SubmitRequest{
		MetadataPath: "metadata.json",
		PayloadPath:  "payload.json",
		BucketName:   "bucket",
		SkipUpload:   true,
	})
	require.NoError(t, err)

	raw := string(store.Written[res.LocalPath])
	assert.Contains(t, raw, `"read_count": 123456789012345678`)
	assert.Contains(t, raw, `"ratio": 0.10`)
}
