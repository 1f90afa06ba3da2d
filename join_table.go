package mapping

// JoinColumnMetadata foreign key column of an association
type JoinColumnMetadata struct {
	TableName            string
	ColumnName           string
	ReferencedColumnName string
	Nullable             bool
	Unique               bool
	OnDelete             string
	ColumnDefinition     string
}

// NewJoinColumnMetadata returns a nullable join column
func NewJoinColumnMetadata(columnName, referencedColumnName string) *JoinColumnMetadata {
	return &JoinColumnMetadata{
		ColumnName:           columnName,
		ReferencedColumnName: referencedColumnName,
		Nullable:             true,
	}
}

// Equal structural equality
func (c *JoinColumnMetadata) Equal(other *JoinColumnMetadata) bool {
	if c == nil || other == nil {
		return c == other
	}
	return *c == *other
}

// JoinTableMetadata junction table of a many-to-many association
type JoinTableMetadata struct {
	Name               string
	Schema             string
	JoinColumns        []*JoinColumnMetadata
	InverseJoinColumns []*JoinColumnMetadata
}

// AddJoinColumn append a column referencing the owning side
func (t *JoinTableMetadata) AddJoinColumn(column *JoinColumnMetadata) {
	t.JoinColumns = append(t.JoinColumns, column)
}

// AddInverseJoinColumn append a column referencing the target side
func (t *JoinTableMetadata) AddInverseJoinColumn(column *JoinColumnMetadata) {
	t.InverseJoinColumns = append(t.InverseJoinColumns, column)
}

// Equal structural equality
func (t *JoinTableMetadata) Equal(other *JoinTableMetadata) bool {
	if t == nil || other == nil {
		return t == other
	}

	if t.Name != other.Name || t.Schema != other.Schema {
		return false
	}
	return joinColumnsEqual(t.JoinColumns, other.JoinColumns) && joinColumnsEqual(t.InverseJoinColumns, other.InverseJoinColumns)
}

func joinColumnsEqual(a, b []*JoinColumnMetadata) bool {
	if len(a) != len(b) {
		return false
	}
	for idx := range a {
		if !a[idx].Equal(b[idx]) {
			return false
		}
	}
	return true
}
