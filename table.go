package mapping

// TableMetadata primary table of a class
type TableMetadata struct {
	Name              string
	Schema            string
	Indexes           map[string]*IndexMetadata
	UniqueConstraints map[string]*UniqueConstraintMetadata
	Options           map[string]interface{}
}

// IndexMetadata table index
type IndexMetadata struct {
	Name    string
	Columns []string
	Unique  bool
	Flags   []string
	Options map[string]interface{}
}

// UniqueConstraintMetadata table unique constraint
type UniqueConstraintMetadata struct {
	Name    string
	Columns []string
	Options map[string]interface{}
}

// QualifiedName schema qualified table name
func (t TableMetadata) QualifiedName() string {
	if t.Schema != "" {
		return t.Schema + "." + t.Name
	}
	return t.Name
}
