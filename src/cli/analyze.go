package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"readme-gen/src/config"
	"readme-gen/src/internal/common"
	"readme-gen/src/internal/inference"
	"readme-gen/src/internal/scan"
	"readme-gen/src/internal/sidecar"
)

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	common.SetSampleLineLimit(cfg.MaxSampleLines)

	root, analysis, err := analyzeProject(projectRoot(args), cfg)
	if err != nil {
		return err
	}

	meta := inference.Infer(root, analysis)
	printAnalysis(analysis, meta)

	if saveSidecar {
		path, err := sidecar.Save(root, meta)
		if err != nil {
			return err
		}
		logrus.Infof("Saved inferred metadata to %s", path)
	}

	if outPath != "" {
		if err := writeAnalysisJSON(outPath, analysis, meta); err != nil {
			return err
		}
		logrus.Infof("Wrote analysis to %s", outPath)
	}
	return nil
}

// analyzeProject validates the root and runs the scanner with the
// configured extra exclusions.
func analyzeProject(path string, cfg *config.Config) (string, *scan.Analysis, error) {
	root, err := common.ValidateAndGetWorkingDir(path)
	if err != nil {
		return "", nil, err
	}

	logrus.Infof("Analyzing project: %s", root)
	scanner := scan.NewScanner()
	scanner.ExtraExcludeDirs = cfg.ExtraExcludeDirs
	analysis, err := scanner.Scan(root)
	if err != nil {
		return "", nil, err
	}
	return root, analysis, nil
}

// analysisReport is the JSON shape written by --out.
type analysisReport struct {
	Analysis *scan.Analysis      `json:"analysis"`
	Metadata *inference.Metadata `json:"metadata"`
}

func writeAnalysisJSON(path string, analysis *scan.Analysis, meta *inference.Metadata) error {
	data, err := json.MarshalIndent(analysisReport{Analysis: analysis, Metadata: meta}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write analysis file: %w", err)
	}
	return nil
}
