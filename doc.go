package stacube

// Package stacube provides:
//
// - Typed read/write access to STAC datacube properties (cube:dimensions, cube:variables)
// - Classification of dimensions into horizontal/vertical/temporal/additional variants
// - A facade over Collection/Item/Asset hosts with asset-to-item read fallback (Ext)
// - A stable lint model via Issues (JSON Pointer, code, message) through Check
// - Derived geometry helpers (SpatialBounds, TemporalInterval, Coordinates)
//
// Design policy:
// - Views wrap the host document's live maps; no copies, no caches. An edit
//   through a view is an edit of the document.
// - Keep the accessor layer in the root package; put the object model under
//   stac/, bag primitives under props/, NetCDF import under coards/, and the
//   CLI under cmd/stacube.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  obj, err := stac.ReadFile("item.json")
//  dc, err := stacube.Ext(obj)
//  dims, err := dc.Dimensions()
//
//  if x, ok := dims["x"].(*stacube.HorizontalSpatialDimension); ok {
//      ext, err := x.Extent()
//      step, presence := x.Step()
//      _ = ext; _ = step; _ = presence
//  }
//
