package mapping

// EmbeddedMetadata embedded value object mapping
type EmbeddedMetadata struct {
	Class string
	// ColumnPrefix nil means the prefix is derived from the field name
	ColumnPrefix   *string
	DeclaredField  string
	OriginalField  string
	DeclaringClass *ClassMetadata
}
