package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcawg2/payload-tools/internal/core/domain"
	"github.com/pcawg2/payload-tools/pkg/config"
)

// TestCommandStructure verifies that all commands are properly registered
func TestCommandStructure(t *testing.T) {
	commands := []string{"ceph-submit", "dna-alignment", "variant-calling", "version", "config", "doctor"}

	for _, name := range commands {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{name})
			require.NoError(t, err)
			require.NotNil(t, cmd)
			assert.Equal(t, name, cmd.Name())
		})
	}
}

func TestRootCommandExists(t *testing.T) {
	require.NotNil(t, rootCmd)
	assert.Equal(t, "payload-tools", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
}

// TestCommandsHaveHelp verifies all commands have help text
func TestCommandsHaveHelp(t *testing.T) {
	commands := rootCmd.Commands()
	require.NotEmpty(t, commands)

	for _, cmd := range commands {
		t.Run(cmd.Name(), func(t *testing.T) {
			assert.NotEmpty(t, cmd.Short, "command %q has no Short description", cmd.Name())
		})
	}
}

func TestFlagShorthands(t *testing.T) {
	tests := []struct {
		cmd       *cobra.Command
		flag      string
		shorthand string
	}{
		{cephSubmitCmd, "endpoint-url", "s"},
		{cephSubmitCmd, "bucket-name", "b"},
		{cephSubmitCmd, "metadata", "m"},
		{cephSubmitCmd, "payload", "p"},
		{dnaAlignmentCmd, "file_to_upload", "f"},
		{dnaAlignmentCmd, "input_payload", "a"},
		{dnaAlignmentCmd, "wf_short_name", "c"},
		{dnaAlignmentCmd, "wf_version", "v"},
		{variantCallingCmd, "normal-analysis", "n"},
		{variantCallingCmd, "tumour-analysis", "t"},
		{variantCallingCmd, "files", "f"},
		{variantCallingCmd, "wf-run", "r"},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.Name()+"/"+tt.flag, func(t *testing.T) {
			f := tt.cmd.Flags().Lookup(tt.flag)
			require.NotNil(t, f)
			assert.Equal(t, tt.shorthand, f.Shorthand)
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(errors.New("boom")))
	assert.Equal(t, 1, exitCode(domain.ErrUnknownPayloadType))

	cmdErr := &domain.ExternalCommandError{Command: "aws", Code: 7}
	assert.Equal(t, 7, exitCode(fmt.Errorf("upload failed: %w", cmdErr)))

	notStarted := &domain.ExternalCommandError{Command: "aws", Code: -1}
	assert.Equal(t, 1, exitCode(notStarted))
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", formatSize(512))
	assert.Equal(t, "1.0 KiB", formatSize(1024))
	assert.Equal(t, "1.5 MiB", formatSize(1024*1024*3/2))
}

// resetFlags restores every flag of the command tree to its default
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// runCLI executes the root command inside a scratch working directory
func runCLI(t *testing.T, dir string, args ...string) error {
	t.Helper()
	t.Cleanup(func() { resetFlags(rootCmd) })

	base := []string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--output-dir", filepath.Join(dir, "out"),
	}
	rootCmd.SetArgs(append(base, args...))
	return rootCmd.ExecuteContext(context.Background())
}

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func readJSON(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func submissionFixture(t *testing.T, payloadType string) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)

	writeJSON(t, filepath.Join(dir, "metadata.json"), map[string]any{
		"library_strategy":          "WGS",
		"program_id":                "TEST-PR",
		"submitter_donor_id":        "DO1",
		"submitter_sample_id":       "SA1",
		"tumour_normal_designation": "Primary tumour",
	})
	writeJSON(t, filepath.Join(dir, "payload.json"), map[string]any{
		"type":       payloadType,
		"experiment": map[string]any{"platform": "ILLUMINA"},
	})
	return dir
}

func TestCephSubmit_SkipUpload(t *testing.T) {
	dir := submissionFixture(t, "sequencing_experiment")

	err := runCLI(t, dir, "ceph-submit", "-b", "bucket", "-m", "metadata.json", "-p", "payload.json", "--skip-upload")
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(dir, "out"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	doc := readJSON(t, filepath.Join(dir, "out", entries[0].Name()))
	assert.Equal(t, doc["id"].(string)+".json", entries[0].Name())
	assert.NotContains(t, doc, "info")
	assert.Equal(t, map[string]any{"platform": "ILLUMINA"}, doc["experiment"])
}

func TestCephSubmit_UnknownTypeWritesNothing(t *testing.T) {
	dir := submissionFixture(t, "bogus")

	err := runCLI(t, dir, "ceph-submit", "-b", "bucket", "-m", "metadata.json", "-p", "payload.json", "--skip-upload")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownPayloadType)
	assert.Equal(t, 1, exitCode(err))

	_, statErr := os.Stat(filepath.Join(dir, "out"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDNAAlignment_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample.cram"), []byte("cram"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample.cram.crai"), []byte("crai"), 0644))
	writeJSON(t, filepath.Join(dir, "rg1.json"), map[string]any{"program_id": "TEST-PR", "analysisId": "an-1"})
	writeJSON(t, filepath.Join(dir, "rg2.json"), map[string]any{"program_id": "TEST-PR", "analysisId": "an-2"})

	err := runCLI(t, dir, "dna-alignment",
		"-f", "sample.cram", "-a", "rg1.json", "-a", "rg2.json",
		"-c", "dna-seq", "-v", "1.0.0")
	require.NoError(t, err)

	doc := readJSON(t, filepath.Join(dir, "out", "payload.json"))
	assert.Equal(t, "TEST-PR", doc["study"])
	assert.Len(t, doc["inputs"], 2)

	files := doc["file"].([]any)
	require.Len(t, files, 2)
	assert.Equal(t, "crai", files[1].(map[string]any)["fileType"])

	workflow := doc["workflow"].(map[string]any)
	assert.Equal(t, "dna-seq-alignment", workflow["fullName"])
}

func TestDNAAlignment_UnknownWorkflow(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	err := runCLI(t, dir, "dna-alignment", "-f", "sample.bam", "-c", "nope")
	assert.ErrorIs(t, err, domain.ErrUnknownWorkflow)
}

func TestVariantCalling_UnsupportedCaller(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeJSON(t, filepath.Join(dir, "normal.json"), map[string]any{"analysisId": "an-n"})

	err := runCLI(t, dir, "variant-calling",
		"-n", "normal.json", "-f", "x.vcf.gz",
		"-w", "some-workflow", "-s", "mystery", "-v", "1", "-r", "run-1")
	assert.ErrorIs(t, err, domain.ErrUnsupportedCaller)
}

func TestConfigInit_RepairsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("uploader: rclone\n"), 0644))

	// the broken file still blocks commands that need it
	err := runCLI(t, dir, "doctor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rclone")
	resetFlags(rootCmd)

	require.NoError(t, runCLI(t, dir, "version"))
	resetFlags(rootCmd)

	require.NoError(t, runCLI(t, dir, "config", "init", "--force"))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, config.UploaderAWSCLI, cfg.Uploader)
}
