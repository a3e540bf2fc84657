package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/pcawg2/payload-tools/pkg/config"
	"github.com/pcawg2/payload-tools/pkg/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the submission environment",
	Long: `Diagnose issues with the payload-tools setup.

Checks for:
  - Configuration file existence
  - Object storage endpoint and bucket
  - The upload backend (aws CLI in PATH or SDK credentials)
  - A writable output directory`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	fmt.Println(ui.StyleTitle.Render("payload-tools doctor"))
	fmt.Println()

	failed := 0
	check := func(name string, fn func() error) {
		if !checkStep(name, fn) {
			failed++
		}
	}

	check("Configuration File", func() error {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return fmt.Errorf("missing at %s (defaults in use)", configPath)
		}
		return nil
	})

	check("Bucket Name", func() error {
		if appConfig.BucketName == "" {
			return fmt.Errorf("not set (pass -b to ceph-submit)")
		}
		return nil
	})

	check("Endpoint URL", func() error {
		if appConfig.EndpointURL == "" {
			return fmt.Errorf("not set (AWS default endpoint will be used)")
		}
		return nil
	})

	switch appConfig.Uploader {
	case config.UploaderAWSCLI:
		check("aws CLI", func() error {
			if _, err := exec.LookPath(appConfig.AWSCLI); err != nil {
				return fmt.Errorf("%q not found in PATH", appConfig.AWSCLI)
			}
			return nil
		})
	case config.UploaderSDK:
		check("S3 Credentials", func() error {
			if appConfig.AccessKeyID == "" || appConfig.SecretAccessKey == "" {
				return fmt.Errorf("static keys not set (default credential chain will be used)")
			}
			return nil
		})
	}

	check("Output Directory", func() error {
		dir := appConfig.OutputDir
		if dir == "" {
			dir = "."
		}
		f, err := os.CreateTemp(dir, ".payload-tools-*")
		if err != nil {
			return fmt.Errorf("not writable: %v", err)
		}
		name := f.Name()
		_ = f.Close()
		return os.Remove(name)
	})

	fmt.Println()
	if failed > 0 {
		fmt.Println(ui.FormatWarning(fmt.Sprintf("%d check(s) need attention", failed)))
	} else {
		fmt.Println(ui.FormatSuccess("All checks passed"))
	}
	return nil
}

// checkStep runs a check function and prints the result
func checkStep(name string, check func() error) bool {
	err := check()
	if err == nil {
		fmt.Printf("%s %s\n", ui.StyleSuccess.Render(ui.IconSuccess), name)
		return true
	}
	fmt.Printf("%s %s\n", ui.StyleError.Render(ui.IconError), name)
	fmt.Printf("    %s\n", ui.StyleMuted.Render(err.Error()))
	return false
}
