package cmd

import (
	"fmt"

	"github.com/pcawg2/payload-tools/internal/core/domain"
	"github.com/pcawg2/payload-tools/pkg/ui"
)

// renderFiles renders the file descriptors of a payload as a table
func renderFiles(files []domain.FileDescriptor) string {
	table := ui.NewTable("FILE", "TYPE", "SIZE", "MD5", "DATA TYPE")
	for _, f := range files {
		dataType := f.DataType
		if dt, ok := f.Info["data_type"].(string); ok {
			dataType = dt
		}
		table.AddRow(f.FileName, f.FileType, formatSize(f.FileSize), f.FileMd5sum, dataType)
	}
	return table.Render()
}

// formatSize renders a byte count with a binary unit
func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
