package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// dataTypeRule maps a filename pattern to a variant data type
type dataTypeRule struct {
	pattern *regexp.Regexp
	label   string
}

// dataTypeRules are evaluated in order, first match wins
var dataTypeRules = []dataTypeRule{
	{regexp.MustCompile(`.*\.copynumber\.caveman\.vcf\.gz$`), "cnv"},
	{regexp.MustCompile(`.*\.annot\.vcf\.gz$`), "sv"},
	{regexp.MustCompile(`.*\.flagged\.vcf\.gz$`), "indel"},
	{regexp.MustCompile(`.*\.flagged\.muts\.vcf\.gz$`), "snv"},
	{regexp.MustCompile(`^broad-mutect2\.snv-indel\.vcf\.gz$`), "snv-indel"},
}

// indexExtensions are stripped before classifying an index file
var indexExtensions = []string{".tbi", ".idx"}

// ClassifyDataType returns the variant data type of a VCF (or VCF index) by filename
func ClassifyDataType(path string) (string, error) {
	name := filepath.Base(path)
	for _, ext := range indexExtensions {
		name = strings.TrimSuffix(name, ext)
	}

	for _, rule := range dataTypeRules {
		if rule.pattern.MatchString(name) {
			return rule.label, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownDataType, filepath.Base(path))
}

// IsIndexFile reports whether path is a VCF index (.tbi or .idx)
func IsIndexFile(path string) bool {
	for _, ext := range indexExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
