package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	stacube "github.com/stacmeta/stacube"
	"github.com/stacmeta/stacube/coards"
	"github.com/stacmeta/stacube/stac"
)

func newImportCmd(ctx *cliContext) *cobra.Command {
	var (
		id       string
		assetKey string
		href     string
	)
	cmd := &cobra.Command{
		Use:   "import <netcdf-file> <item-file>",
		Short: "Build a cube Item from a COARDS NetCDF file",
		Long: `import reads the dimensions and variables of a COARDS style NetCDF
file and writes a STAC Item describing them with the datacube
extension. The spatial bbox and the temporal interval of the Item are
derived from the cube when possible.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := args[0], args[1]
			cube, err := coards.FromFile(src)
			if err != nil {
				return err
			}
			ctx.logger.Debug("read netcdf",
				zap.String("path", src),
				zap.Int("dimensions", len(cube.Dimensions)),
				zap.Int("variables", len(cube.Variables)))

			if id == "" {
				id = uuid.NewString()
			}
			item := stac.NewItem(id)
			e, err := stacube.Ext(item, stacube.AddIfMissing())
			if err != nil {
				return err
			}
			cube.ApplyTo(e)

			if bounds, err := e.SpatialBounds(); err == nil {
				item.BBox = []float64{bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y}
			} else if !errors.Is(err, stacube.ErrNoSpatialDimensions) {
				return err
			}
			if err := applyInterval(item, e); err != nil {
				return err
			}

			if href == "" {
				href = filepath.Base(src)
			}
			asset := stac.NewAsset(href)
			asset.Type = stac.MediaTypeNetCDF
			asset.Roles = []string{"data"}
			item.AddAsset(assetKey, asset)

			if err := stac.WriteFile(dst, item); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %s -> %s (id %s)\n", src, dst, id)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "item id (default: random UUID)")
	cmd.Flags().StringVar(&assetKey, "asset-key", "data", "asset key for the source file")
	cmd.Flags().StringVar(&href, "href", "", "asset href (default: source file name)")
	return cmd
}

// applyInterval fills the Item datetime fields from the cube's temporal
// dimension. A cube without one leaves the open datetime in place.
func applyInterval(item *stac.Item, e *stacube.Extension) error {
	start, end, err := e.TemporalInterval()
	if err != nil {
		if errors.Is(err, stacube.ErrNoTemporalDimension) {
			return nil
		}
		return err
	}
	if start != nil {
		item.Properties["start_datetime"] = start.UTC().Format(time.RFC3339)
		item.Properties["datetime"] = start.UTC().Format(time.RFC3339)
	}
	if end != nil {
		item.Properties["end_datetime"] = end.UTC().Format(time.RFC3339)
	}
	return nil
}
