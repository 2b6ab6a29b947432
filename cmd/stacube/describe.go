package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	stacube "github.com/stacmeta/stacube"
	"github.com/stacmeta/stacube/internal/cli/ui"
	"github.com/stacmeta/stacube/props"
)

func newDescribeCmd(ctx *cliContext) *cobra.Command {
	var assetKey string
	cmd := &cobra.Command{
		Use:   "describe <file>",
		Short: "Show the dimensions and variables of a cube document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, obj, err := loadExtension(args[0], assetKey)
			if err != nil {
				return err
			}
			ctx.logger.Debug("loaded document", zap.String("path", args[0]))

			dims, err := e.Dimensions()
			if err != nil {
				return err
			}
			vars, err := e.Variables()
			if err != nil {
				var reqErr *props.RequiredPropertyError
				if !errors.As(err, &reqErr) {
					return err
				}
				vars = nil
			}

			out := cmd.OutOrStdout()
			switch ctx.cfg.Output {
			case "json", "yaml":
				return writeReport(out, ctx.cfg.Output, buildReport(objectID(obj), e, dims, vars))
			default:
				writeDescribeText(out, ctx.cfg.NoColor, objectID(obj), e, dims, vars)
				return nil
			}
		},
	}
	cmd.Flags().StringVar(&assetKey, "asset", "", "describe the named asset of an Item")
	return cmd
}

// describeReport is the machine readable form of the describe output.
type describeReport struct {
	ID         string                    `json:"id,omitempty" yaml:"id,omitempty"`
	Kind       string                    `json:"kind" yaml:"kind"`
	Dimensions map[string]map[string]any `json:"cube:dimensions" yaml:"cube:dimensions"`
	Variables  map[string]map[string]any `json:"cube:variables,omitempty" yaml:"cube:variables,omitempty"`
}

func buildReport(id string, e *stacube.Extension, dims map[string]stacube.Dimension, vars map[string]*stacube.Variable) describeReport {
	rep := describeReport{
		ID:         id,
		Kind:       string(e.Kind()),
		Dimensions: make(map[string]map[string]any, len(dims)),
	}
	for name, d := range dims {
		rep.Dimensions[name] = d.Properties()
	}
	if vars != nil {
		rep.Variables = make(map[string]map[string]any, len(vars))
		for name, v := range vars {
			rep.Variables[name] = v.Properties()
		}
	}
	return rep
}

func writeReport(w io.Writer, format string, rep describeReport) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		data, err := yaml.Marshal(rep)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
}

func writeDescribeText(w io.Writer, noColor bool, id string, e *stacube.Extension, dims map[string]stacube.Dimension, vars map[string]*stacube.Variable) {
	kv := ui.NewKeyValue()
	if noColor {
		kv.DisableColor()
	}
	if id != "" {
		kv.Add("id", id)
	}
	kv.Add("kind", string(e.Kind()))
	kv.Add("dimensions", strconv.Itoa(len(dims)))
	kv.Add("variables", strconv.Itoa(len(vars)))
	kv.Render(w)
	fmt.Fprintln(w)

	dt := ui.NewTable("NAME", "TYPE", "KIND", "AXIS", "EXTENT", "STEP", "UNIT")
	if noColor {
		dt.DisableColor()
	}
	for _, name := range sortedNames(dims) {
		dt.AddRow(dimensionRow(name, dims[name])...)
	}
	dt.Render(w)

	if len(vars) == 0 {
		return
	}
	fmt.Fprintln(w)
	vt := ui.NewTable("NAME", "TYPE", "DIMENSIONS", "UNIT", "SHAPE")
	if noColor {
		vt.DisableColor()
	}
	for _, name := range sortedVariableNames(vars) {
		vt.AddRow(variableRow(name, vars[name])...)
	}
	vt.Render(w)
}

func dimensionRow(name string, d stacube.Dimension) []string {
	typ, _ := d.Type()
	row := []string{name, typ, string(d.Kind()), "", "", "", ""}
	switch dim := d.(type) {
	case *stacube.HorizontalSpatialDimension:
		if axis, err := dim.Axis(); err == nil {
			row[3] = axis
		}
		if extent, err := dim.Extent(); err == nil {
			row[4] = formatFloats(extent)
		}
		row[5] = formatNumericStep(dim.Step())
	case *stacube.VerticalSpatialDimension:
		if axis, err := dim.Axis(); err == nil {
			row[3] = axis
		}
		if extent, ok := dim.Extent(); ok {
			row[4] = formatNullableFloats(extent)
		}
		row[5] = formatNumericStep(dim.Step())
		if unit, ok := dim.Unit(); ok {
			row[6] = unit
		}
	case *stacube.TemporalDimension:
		if extent, ok := dim.Extent(); ok {
			row[4] = formatNullableStrings(extent)
		}
		if step, presence := dim.Step(); presence == props.Present {
			row[5] = step
		} else if presence == props.Null {
			row[5] = "irregular"
		}
	case *stacube.AdditionalDimension:
		if extent, ok := dim.Extent(); ok {
			row[4] = formatNullableFloats(extent)
		}
		row[5] = formatNumericStep(dim.Step())
		if unit, ok := dim.Unit(); ok {
			row[6] = unit
		}
	}
	return row
}

func variableRow(name string, v *stacube.Variable) []string {
	row := []string{name, "", "", "", ""}
	if typ, err := v.Type(); err == nil {
		row[1] = typ
	}
	if dims, err := v.Dimensions(); err == nil {
		row[2] = strings.Join(dims, ", ")
	}
	if unit, ok := v.Unit(); ok {
		row[3] = unit
	}
	if shape, ok := v.Shape(); ok {
		row[4] = formatInts(shape)
	}
	return row
}

func formatNumericStep(step float64, presence props.Presence) string {
	switch presence {
	case props.Present:
		return formatFloat(step)
	case props.Null:
		return "irregular"
	default:
		return ""
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatFloats(fs []float64) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = formatFloat(f)
	}
	return strings.Join(parts, " .. ")
}

func formatNullableFloats(fs []*float64) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		if f == nil {
			parts[i] = "open"
		} else {
			parts[i] = formatFloat(*f)
		}
	}
	return strings.Join(parts, " .. ")
}

func formatNullableStrings(ss []*string) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		if s == nil {
			parts[i] = "open"
		} else {
			parts[i] = *s
		}
	}
	return strings.Join(parts, " .. ")
}

func formatInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " x ")
}

func sortedNames(m map[string]stacube.Dimension) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedVariableNames(m map[string]*stacube.Variable) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
