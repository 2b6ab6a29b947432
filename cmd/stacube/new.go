package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	stacube "github.com/stacmeta/stacube"
	"github.com/stacmeta/stacube/stac"
)

func newNewCmd(ctx *cliContext) *cobra.Command {
	var (
		id   string
		dims []string
	)
	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Create a skeleton cube Item",
		Long: `new writes a STAC Item with the datacube extension declared and a
dimension skeleton. Dimension names decide their variant: x and y become
horizontal spatial axes covering the whole globe, z becomes vertical,
time becomes temporal with an open extent and any other name becomes an
additional dimension. Edit the extents and steps to match the actual
cube.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if id == "" {
				id = uuid.NewString()
			}

			item := stac.NewItem(id)
			e, err := stacube.Ext(item, stacube.AddIfMissing())
			if err != nil {
				return err
			}
			skeleton, err := skeletonDimensions(dims)
			if err != nil {
				return err
			}
			e.SetDimensions(skeleton)

			if err := stac.WriteFile(path, item); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s (id %s)\n", path, id)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "item id (default: random UUID)")
	cmd.Flags().StringSliceVar(&dims, "dims", []string{"time", "y", "x"}, "dimension names for the skeleton")
	return cmd
}

func skeletonDimensions(names []string) (map[string]stacube.Dimension, error) {
	dims := make(map[string]stacube.Dimension, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		d, err := stacube.DimensionFrom(skeletonBag(name))
		if err != nil {
			return nil, fmt.Errorf("dimension %q: %w", name, err)
		}
		dims[name] = d
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("at least one dimension name is required")
	}
	return dims, nil
}

func skeletonBag(name string) map[string]any {
	switch name {
	case "x":
		return map[string]any{
			"type":             stacube.DimensionTypeSpatial,
			"axis":             stacube.AxisX,
			"extent":           []any{-180.0, 180.0},
			"reference_system": 4326,
		}
	case "y":
		return map[string]any{
			"type":             stacube.DimensionTypeSpatial,
			"axis":             stacube.AxisY,
			"extent":           []any{-90.0, 90.0},
			"reference_system": 4326,
		}
	case "z":
		return map[string]any{
			"type":   stacube.DimensionTypeSpatial,
			"axis":   stacube.AxisZ,
			"extent": []any{nil, nil},
		}
	case "time", "t":
		return map[string]any{
			"type":   stacube.DimensionTypeTemporal,
			"extent": []any{nil, nil},
		}
	default:
		return map[string]any{"type": "other"}
	}
}
