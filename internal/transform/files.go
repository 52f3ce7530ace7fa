package transform

import (
	"github.com/tidwall/gjson"

	"github.com/fireproject/scylla-migrate/internal/model"
)

func embedFile(f model.DriveFile) model.DriveFileEmbed {
	width, height := fileDimensions(f.Properties)
	return model.DriveFileEmbed{
		ID:           f.ID,
		Type:         f.Type,
		CreatedAt:    f.CreatedAt,
		Name:         f.Name,
		Comment:      model.NullStringPtr(f.Comment),
		Blurhash:     model.NullStringPtr(f.Blurhash),
		URL:          f.URL,
		ThumbnailURL: model.NullStringPtr(f.ThumbnailURL),
		IsSensitive:  f.IsSensitive,
		IsLink:       f.IsLink,
		MD5:          f.MD5,
		Size:         f.Size,
		Width:        width,
		Height:       height,
	}
}

// resolveFiles resolves a set of file ids against reader, preserving the
// order the ids were given in regardless of the order rows come back.
func resolveFiles(reader Reader, files []model.DriveFile, ids []string) []model.DriveFileEmbed {
	if len(ids) == 0 {
		return nil
	}
	byID := make(map[string]model.DriveFile, len(files))
	for _, f := range files {
		byID[f.ID] = f
	}

	out := make([]model.DriveFileEmbed, 0, len(ids))
	for _, id := range ids {
		f, ok := byID[id]
		if !ok {
			continue
		}
		out = append(out, embedFile(f))
	}
	return out
}

// fileDimensions pulls width/height out of the drive_file properties blob,
// a loosely-shaped JSON value where most keys are irrelevant to this row —
// gjson's path lookup avoids decoding the whole thing into a struct just to
// reach two fields.
func fileDimensions(properties []byte) (width, height *int32) {
	if len(properties) == 0 {
		return nil, nil
	}
	if w := gjson.GetBytes(properties, "width"); w.Exists() {
		v := int32(w.Int())
		width = &v
	}
	if h := gjson.GetBytes(properties, "height"); h.Exists() {
		v := int32(h.Int())
		height = &v
	}
	return width, height
}
