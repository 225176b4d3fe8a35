// ABOUTME: CLI command for evaluating vital signs.
// ABOUTME: Parses raw flag text, evaluates it, and renders or exports the report.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/healthai/internal/config"
	"github.com/harperreed/healthai/internal/export"
	"github.com/harperreed/healthai/internal/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newAssessCmd(a *app) *cobra.Command {
	var (
		raw    models.RawVitals
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:     "assess",
		Aliases: []string{"a"},
		Short:   "Evaluate vital signs",
		Long: `Evaluate a set of vital signs and print a health report.

WHAT IT REPORTS:

  BMI             weight / (height in m)², with category
                  Underweight < 18.5 ≤ Normal < 25 ≤ Overweight < 30 ≤ Obese
  Blood Pressure  Normal, Elevated, Stage 1 or Stage 2 Hypertension
  Heart Rate      Low (Bradycardia) < 60, Normal 60-100, High (Tachycardia) > 100
  Overall Risk    Low, Moderate (1-2 factors) or High (3+ factors)
                  Factors: BMI ≥ 30, BP ≥ 140/90, abnormal heart rate, age > 65

Every flag except --temperature is required.

OUTPUT:

  --format text (default), json, yaml, or markdown. With -o the report is
  written to a file; text becomes markdown when writing to a file.

EXAMPLES:

  healthai assess --systolic 130 --diastolic 85 --heart-rate 75 \
    --weight 85 --height 170 --age 45 --gender male
  healthai assess ... --format json
  healthai assess ... --format markdown -o ~/reports/today.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := models.ParseVitals(raw)
			if err != nil {
				return err
			}

			report, err := a.evaluator.Evaluate(in)
			if err != nil {
				return err
			}
			assessment := models.NewAssessment(in, report)

			a.logger.Debug("evaluated vitals",
				zap.String("id", assessment.ShortID()),
				zap.Float64("bmi", report.BodyMassIndex),
				zap.String("risk", string(report.OverallRisk)),
				zap.Int("risk_factors", report.RiskFactorCount()),
			)

			f := a.cfg.GetFormat()
			if format != "" {
				if f, err = export.ParseFormat(format); err != nil {
					return err
				}
			}

			if output != "" {
				if f == export.FormatText {
					f = export.FormatMarkdown
				}
				data, err := export.Assessment(assessment, f)
				if err != nil {
					return err
				}
				path := config.ExpandPath(output)
				if err := os.WriteFile(path, data, 0600); err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Wrote %s report %s to %s\n", f, assessment.ShortID(), path)
				return nil
			}

			if f == export.FormatText {
				renderReport(cmd.OutOrStdout(), assessment)
				return nil
			}
			data, err := export.Assessment(assessment, f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			if err == nil && f == export.FormatJSON {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return err
		},
	}

	cmd.Flags().StringVar(&raw.Systolic, "systolic", "", "systolic blood pressure (mmHg)")
	cmd.Flags().StringVar(&raw.Diastolic, "diastolic", "", "diastolic blood pressure (mmHg)")
	cmd.Flags().StringVar(&raw.HeartRate, "heart-rate", "", "resting heart rate (bpm)")
	cmd.Flags().StringVar(&raw.Temperature, "temperature", "", "body temperature (°C, optional)")
	cmd.Flags().StringVar(&raw.Weight, "weight", "", "weight (kg)")
	cmd.Flags().StringVar(&raw.Height, "height", "", "height (cm)")
	cmd.Flags().StringVar(&raw.Age, "age", "", "age (years)")
	cmd.Flags().StringVar(&raw.Gender, "gender", "", "gender: male, female, other")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, json, yaml, markdown (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report to a file")

	return cmd
}
