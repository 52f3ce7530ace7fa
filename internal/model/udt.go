package model

import "github.com/gocql/gocql"

// MarshalUDT implements gocql.UDTMarshaler so a DriveFileEmbed can be bound
// directly as a CQL user-defined-type column value.
func (f DriveFileEmbed) MarshalUDT(name string, info gocql.TypeInfo) ([]byte, error) {
	switch name {
	case "id":
		return gocql.Marshal(info, f.ID)
	case "type":
		return gocql.Marshal(info, f.Type)
	case "createdAt":
		return gocql.Marshal(info, f.CreatedAt)
	case "name":
		return gocql.Marshal(info, f.Name)
	case "comment":
		return gocql.Marshal(info, f.Comment)
	case "blurhash":
		return gocql.Marshal(info, f.Blurhash)
	case "url":
		return gocql.Marshal(info, f.URL)
	case "thumbnailUrl":
		return gocql.Marshal(info, f.ThumbnailURL)
	case "isSensitive":
		return gocql.Marshal(info, f.IsSensitive)
	case "isLink":
		return gocql.Marshal(info, f.IsLink)
	case "md5":
		return gocql.Marshal(info, f.MD5)
	case "size":
		return gocql.Marshal(info, f.Size)
	case "width":
		return gocql.Marshal(info, f.Width)
	case "height":
		return gocql.Marshal(info, f.Height)
	default:
		return nil, nil
	}
}

// MarshalUDT implements gocql.UDTMarshaler for the embedded note-edit-history
// entries.
func (e NoteEditEmbed) MarshalUDT(name string, info gocql.TypeInfo) ([]byte, error) {
	switch name {
	case "content":
		return gocql.Marshal(info, e.Content)
	case "cw":
		return gocql.Marshal(info, e.CW)
	case "files":
		return gocql.Marshal(info, e.Files)
	case "updatedAt":
		return gocql.Marshal(info, e.UpdatedAt)
	default:
		return nil, nil
	}
}

// MarshalUDT implements gocql.UDTMarshaler for the embedded poll value.
func (p PollEmbed) MarshalUDT(name string, info gocql.TypeInfo) ([]byte, error) {
	switch name {
	case "expiresAt":
		return gocql.Marshal(info, p.ExpiresAt)
	case "multiple":
		return gocql.Marshal(info, p.Multiple)
	case "choices":
		return gocql.Marshal(info, p.Choices)
	default:
		return nil, nil
	}
}
