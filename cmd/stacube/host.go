package main

import (
	"fmt"

	stacube "github.com/stacmeta/stacube"
	"github.com/stacmeta/stacube/stac"
)

// loadExtension reads a STAC document and opens its datacube view. When
// assetKey is set the document must be an Item and the view targets the
// named asset.
func loadExtension(path, assetKey string, opts ...stacube.Option) (*stacube.Extension, stac.Object, error) {
	obj, err := stac.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var target any = obj
	if assetKey != "" {
		item, ok := obj.(*stac.Item)
		if !ok {
			return nil, nil, fmt.Errorf("--asset requires an Item document, got %s", obj.Kind())
		}
		asset, ok := item.Assets[assetKey]
		if !ok {
			return nil, nil, fmt.Errorf("item %s has no asset %q", item.ID, assetKey)
		}
		target = asset
	}
	e, err := stacube.Ext(target, opts...)
	if err != nil {
		return nil, nil, err
	}
	return e, obj, nil
}

// objectID names a document for terminal output.
func objectID(obj stac.Object) string {
	switch o := obj.(type) {
	case *stac.Item:
		return o.ID
	case *stac.Collection:
		return o.ID
	default:
		return ""
	}
}
