package stacube

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/stacmeta/stacube/props"
)

// Issue codes produced by Check.
const (
	CodeRequired         = "required"
	CodeInvalidType      = "invalid_type"
	CodeInvalidEnum      = "invalid_enum"
	CodeEmptyDimensions  = "empty_dimensions"
	CodeUnknownDimension = "unknown_dimension"
)

// Issue is a single finding about a host's datacube properties.
type Issue struct {
	Path    string // JSON Pointer into the property bag, e.g. /cube:dimensions/x/extent.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional remediation hint.
}

// Issues is a collection of findings that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice
// when needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// Check lints the datacube properties visible through e. It reports
// structural problems the typed accessors would otherwise surface one call
// at a time: missing discriminants, missing required fields, variables that
// reference dimensions the cube never declares. A nil return means no
// findings. Issues are ordered by sorted entry name, so output is stable.
func Check(e *Extension) Issues {
	var iss Issues

	rawDims, ok := e.getProperty(DimensionsProp)
	if !ok {
		return AppendIssues(iss, Issue{
			Path:    "/" + DimensionsProp,
			Code:    CodeRequired,
			Message: "cube:dimensions is required",
			Hint:    "a datacube host must describe at least its dimensions",
		})
	}
	dims, ok := rawDims.(map[string]any)
	if !ok {
		return AppendIssues(iss, Issue{
			Path:    "/" + DimensionsProp,
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("expected an object of dimensions, found %T", rawDims),
		})
	}
	if len(dims) == 0 {
		iss = AppendIssues(iss, Issue{
			Path:    "/" + DimensionsProp,
			Code:    CodeEmptyDimensions,
			Message: "cube:dimensions has no entries",
		})
	}

	declared := make(map[string]bool, len(dims))
	for _, name := range sortedKeys(dims) {
		path := "/" + DimensionsProp + "/" + name
		m, ok := dims[name].(map[string]any)
		if !ok {
			iss = AppendIssues(iss, Issue{
				Path:    path,
				Code:    CodeInvalidType,
				Message: fmt.Sprintf("expected a dimension object, found %T", dims[name]),
			})
			continue
		}
		declared[name] = true
		d, err := DimensionFrom(m)
		if err != nil {
			iss = AppendIssues(iss, issueFromError(path, err))
			continue
		}
		iss = append(iss, checkDimension(path, d)...)
	}

	rawVars, ok := e.getProperty(VariablesProp)
	if !ok {
		return iss
	}
	vars, ok := rawVars.(map[string]any)
	if !ok {
		return AppendIssues(iss, Issue{
			Path:    "/" + VariablesProp,
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("expected an object of variables, found %T", rawVars),
		})
	}
	for _, name := range sortedKeys(vars) {
		path := "/" + VariablesProp + "/" + name
		m, ok := vars[name].(map[string]any)
		if !ok {
			iss = AppendIssues(iss, Issue{
				Path:    path,
				Code:    CodeInvalidType,
				Message: fmt.Sprintf("expected a variable object, found %T", vars[name]),
			})
			continue
		}
		iss = append(iss, checkVariable(path, VariableFrom(m), declared)...)
	}
	return iss
}

func checkDimension(path string, d Dimension) Issues {
	var iss Issues
	switch dim := d.(type) {
	case *HorizontalSpatialDimension:
		if axis, err := dim.Axis(); err == nil && axis != AxisX && axis != AxisY {
			iss = AppendIssues(iss, Issue{
				Path:    path + "/" + dimAxisProp,
				Code:    CodeInvalidEnum,
				Message: fmt.Sprintf("spatial axis must be x, y or z, found %q", axis),
			})
		}
		if _, err := dim.Extent(); err != nil {
			iss = AppendIssues(iss, issueFromError(path, err))
		}
	}
	return iss
}

func checkVariable(path string, v *Variable, declared map[string]bool) Issues {
	var iss Issues
	typ, err := v.Type()
	switch {
	case err != nil:
		iss = AppendIssues(iss, issueFromError(path, err))
	case typ != VariableTypeData && typ != VariableTypeAuxiliary:
		iss = AppendIssues(iss, Issue{
			Path:    path + "/" + varTypeProp,
			Code:    CodeInvalidEnum,
			Message: fmt.Sprintf("variable type must be data or auxiliary, found %q", typ),
		})
	}

	names, err := v.Dimensions()
	if err != nil {
		return AppendIssues(iss, issueFromError(path, err))
	}
	for i, name := range names {
		if !declared[name] {
			iss = AppendIssues(iss, Issue{
				Path:    fmt.Sprintf("%s/%s/%d", path, varDimsProp, i),
				Code:    CodeUnknownDimension,
				Message: fmt.Sprintf("references undeclared dimension %q", name),
				Hint:    "declare it under cube:dimensions",
			})
		}
	}
	return iss
}

// issueFromError maps accessor errors onto issues, appending the offending
// property to the base path.
func issueFromError(basePath string, err error) Issue {
	var rpe *props.RequiredPropertyError
	if errors.As(err, &rpe) {
		return Issue{
			Path:    basePath + "/" + rpe.Property,
			Code:    CodeRequired,
			Message: fmt.Sprintf("%s is required", rpe.Property),
		}
	}
	var ite *props.InvalidTypeError
	if errors.As(err, &ite) {
		return Issue{
			Path:    basePath + "/" + ite.Property,
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("%s has unusable type %T", ite.Property, ite.Value),
		}
	}
	return Issue{Path: basePath, Code: CodeInvalidType, Message: err.Error()}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
