package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"readme-gen/src/config"
	"readme-gen/src/internal/common"
	"readme-gen/src/internal/inference"
	"readme-gen/src/internal/render"
	"readme-gen/src/internal/sidecar"
)

func runGenerateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	common.SetSampleLineLimit(cfg.MaxSampleLines)

	output := cfg.Output
	if outputName != "" {
		output = outputName
	}
	policy, err := sidecar.ParsePolicy(mergePolicy)
	if err != nil {
		return err
	}

	root, analysis, err := analyzeProject(projectRoot(args), cfg)
	if err != nil {
		return err
	}
	logrus.Infof("Found %d files, %d lines across %d languages",
		analysis.FileCount, analysis.LineCount, len(analysis.Languages))

	fresh := inference.Infer(root, analysis)

	stored, err := sidecar.Load(root)
	if err != nil {
		return err
	}
	if stored != nil && policy != sidecar.MergeIgnore {
		logrus.Infof("Merging stored metadata from %s (policy: %s)", sidecar.FileName, policy)
	}
	meta := sidecar.Merge(fresh, stored, policy)

	var samples []render.Sample
	if includeSamples && cfg.IncludeSamples {
		samples = render.CollectSamples(root)
		logrus.Infof("Collected %d code samples", len(samples))
	}

	content := render.Render(analysis, meta, samples)
	path, backup, err := render.WriteReadme(root, output, content)
	if err != nil {
		return err
	}
	if backup != "" {
		logrus.Infof("Backed up existing %s to %s", output, backup)
	}

	if _, err := sidecar.Save(root, meta); err != nil {
		logrus.Warnf("Could not update %s: %v", sidecar.FileName, err)
	}

	fmt.Printf("README written to %s\n", path)
	printSummary(analysis, meta, path)
	return nil
}
