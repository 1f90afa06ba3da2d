package mapping

import "fmt"

// DiscriminatorColumnMetadata inheritance discriminator column
type DiscriminatorColumnMetadata struct {
	TableName        string
	ColumnName       string
	TypeName         string
	Length           int
	ColumnDefinition string
}

const (
	DefaultDiscriminatorColumnName = "dtype"
	DefaultDiscriminatorTypeName   = "string"
	DefaultDiscriminatorLength     = 255
)

// Validate the column name, type and length
func (c *DiscriminatorColumnMetadata) Validate() error {
	switch {
	case c == nil:
		return ErrInvalidDiscriminatorColumn
	case c.ColumnName == "":
		return fmt.Errorf("%w: column name is required", ErrInvalidDiscriminatorColumn)
	case c.TypeName != "string" && c.TypeName != "integer":
		return fmt.Errorf("%w: type %q is not supported", ErrInvalidDiscriminatorColumn, c.TypeName)
	case c.TypeName == "string" && c.Length <= 0:
		return fmt.Errorf("%w: length %d must be positive", ErrInvalidDiscriminatorColumn, c.Length)
	}
	return nil
}
