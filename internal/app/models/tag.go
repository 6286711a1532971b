package models

// TagType is a named category of tags ("keywords", "available_programs").
type TagType struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Tag is one concrete tag under a tag type.
type Tag struct {
	ID        int64  `json:"id" db:"id"`
	TagTypeID int64  `json:"tag_type_id" db:"tag_type_id"`
	Name      string `json:"name" db:"name"`
}

// TagGroup lists every tag name known under one tag type, used to populate
// filter option lists.
type TagGroup struct {
	TagType string   `json:"tag_type"`
	Names   []string `json:"names"`
}
