package main

import (
	"github.com/spf13/cobra"

	"github.com/hyeonwoo/careerfit/internal/simulation"
)

var (
	simBase        float64
	simSkills      []string
	simExperiences []string
	simCerts       []string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Project the score change from hypothetical profile additions",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&simBase, "base", 0, "base overall score")
	simulateCmd.Flags().StringSliceVar(&simSkills, "skills", nil, "skills to add")
	simulateCmd.Flags().StringSliceVar(&simExperiences, "experiences", nil, "experiences to add")
	simulateCmd.Flags().StringSliceVar(&simCerts, "certifications", nil, "certifications to add")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(_ *cobra.Command, _ []string) error {
	// Pure projection; no engine wiring needed.
	return printJSON(simulation.Simulate(simBase, simSkills, simExperiences, simCerts))
}
