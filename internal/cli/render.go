package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/HamletTheHamster/barcharts/internal/chart"
	"github.com/HamletTheHamster/barcharts/internal/notebook"
)

const renderExample = `  # Render the stacked chart to ./stacked_bar.png
  barcharts render stacked

  # Render the grouped chart as SVG
  barcharts render grouped --file grouped.svg
`

// NewRenderCmd returns the render command.
func NewRenderCmd() *cobra.Command {
	kinds := make([]string, len(chart.Kinds))
	for i, k := range chart.Kinds {
		kinds[i] = string(k)
	}

	cmd := &cobra.Command{
		Use:          "render <kind>",
		Short:        "Render a single chart",
		Example:      renderExample,
		Args:         cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:    kinds,
		SilenceUsage: true,
		RunE: func(cc *cobra.Command, args []string) error {
			s, err := newSession(cc)
			if err != nil {
				return err
			}

			kind := chart.Kind(args[0])

			file, err := cc.Flags().GetString("file")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}
			if file == "" {
				file = filepath.Join(s.Dir, notebook.FileName(kind)+"."+s.Formats[0])
			}

			return s.RenderOne(kind, file)
		},
	}

	cmd.Flags().StringP("file", "f", "", "Output file, its extension selects the format")

	return cmd
}
