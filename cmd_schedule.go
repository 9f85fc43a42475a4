package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"priority-scheduler/internal/render"
	"priority-scheduler/internal/requests"
	"priority-scheduler/internal/responses"
	"priority-scheduler/internal/schedulers"
)

const algorithmAll = "all"

func newScheduleCmd(loadConfig configLoader) *cobra.Command {
	var (
		file      string
		algorithm string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule the processes listed in a YAML or JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			if output != "table" && output != "json" {
				return fmt.Errorf("unsupported output %q, want table or json", output)
			}

			if algorithm == "" {
				algorithm = cfg.DefaultAlgorithm
			}

			data, err := readInput(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			request, err := requests.ParseBatch(data)
			if err != nil {
				return err
			}

			if cfg.StrictValidation {
				if err := request.IsValid(); err != nil {
					return fmt.Errorf("validate input: %w", err)
				}
			}

			var results []responses.ScheduleResponse
			if strings.EqualFold(algorithm, algorithmAll) {
				results = schedulers.All(request.Processes, cfg.AveragePrecision)
			} else {
				selected, err := schedulers.Lookup(algorithm)
				if err != nil {
					return err
				}

				response, err := schedulers.Schedule(selected, request.Processes, cfg.AveragePrecision)
				if err != nil {
					return err
				}
				results = append(results, response)
			}

			logger.Debug().
				Str("run_id", uuid.NewString()).
				Str("algorithm", algorithm).
				Int("processes", len(request.Processes)).
				Msg("batch scheduled")

			return writeResults(cmd.OutOrStdout(), output, results)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "process list file, - for stdin")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "priority, fcfs, sjf or all (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "table or json")
	return cmd
}

func readInput(stdin io.Reader, file string) ([]byte, error) {
	if file == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	return data, nil
}

func writeResults(w io.Writer, output string, results []responses.ScheduleResponse) error {
	if output == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		if len(results) == 1 {
			return encoder.Encode(results[0])
		}
		return encoder.Encode(responses.CompareResponse{Results: results})
	}

	rendered := make([]string, 0, len(results))
	for _, result := range results {
		rendered = append(rendered, render.Schedule(result))
	}

	_, err := fmt.Fprintln(w, strings.Join(rendered, "\n\n"))
	return err
}
