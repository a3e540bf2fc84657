package domain

import (
	"path/filepath"
	"strings"
)

// AccessControlled is the only access level files are submitted with
const AccessControlled = "controlled"

// Content type labels
const (
	DataTypeAlignedReads      = "Aligned Reads"
	DataTypeAlignedReadsIndex = "Aligned Reads Index"
	DataTypeSSM               = "SSM"
	DataTypeVCFIndex          = "vcf_index"
)

// FileDescriptor describes one physical file of a payload
type FileDescriptor struct {
	FileName   string         `json:"fileName"`
	FileType   string         `json:"fileType"`
	FileSize   int64          `json:"fileSize"`
	FileMd5sum string         `json:"fileMd5sum"`
	FileAccess string         `json:"fileAccess"`
	DataType   string         `json:"dataType,omitempty"`
	Info       map[string]any `json:"info,omitempty"`
}

// extension returns the text after the last dot of the base name
func extension(path string) string {
	name := filepath.Base(path)
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

// AlignedFileType returns the file type of an alignment artifact, ignoring a trailing .gz
// "sample.bam" -> "bam", "sample.cram.crai" -> "crai"
func AlignedFileType(path string) string {
	return extension(strings.TrimSuffix(path, ".gz"))
}

// AlignedDataType labels bam/cram as reads and everything else as an index
func AlignedDataType(fileType string) string {
	switch fileType {
	case "bam", "cram":
		return DataTypeAlignedReads
	default:
		return DataTypeAlignedReadsIndex
	}
}

// VariantFileType returns the upper-cased extension of a variant calling artifact
// "x.vcf.gz" -> "GZ", "x.vcf.gz.tbi" -> "TBI"
func VariantFileType(path string) string {
	return strings.ToUpper(extension(path))
}

// VariantDataType labels VCF indexes as vcf_index and everything else as SSM
func VariantDataType(path string) string {
	if IsIndexFile(path) {
		return DataTypeVCFIndex
	}
	return DataTypeSSM
}
