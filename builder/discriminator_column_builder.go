package builder

import "gorm.io/mapping"

// DiscriminatorColumnMetadataBuilder builds a discriminator column, it starts
// from a string column named dtype of length 255
type DiscriminatorColumnMetadataBuilder struct {
	column mapping.DiscriminatorColumnMetadata
}

// NewDiscriminatorColumnMetadataBuilder returns a builder with default column settings
func NewDiscriminatorColumnMetadataBuilder() *DiscriminatorColumnMetadataBuilder {
	return &DiscriminatorColumnMetadataBuilder{
		column: mapping.DiscriminatorColumnMetadata{
			ColumnName: mapping.DefaultDiscriminatorColumnName,
			TypeName:   mapping.DefaultDiscriminatorTypeName,
			Length:     mapping.DefaultDiscriminatorLength,
		},
	}
}

func (d *DiscriminatorColumnMetadataBuilder) WithTableName(name string) *DiscriminatorColumnMetadataBuilder {
	d.column.TableName = name
	return d
}

func (d *DiscriminatorColumnMetadataBuilder) WithColumnName(name string) *DiscriminatorColumnMetadataBuilder {
	d.column.ColumnName = name
	return d
}

func (d *DiscriminatorColumnMetadataBuilder) WithTypeName(name string) *DiscriminatorColumnMetadataBuilder {
	d.column.TypeName = name
	return d
}

func (d *DiscriminatorColumnMetadataBuilder) WithLength(length int) *DiscriminatorColumnMetadataBuilder {
	d.column.Length = length
	return d
}

func (d *DiscriminatorColumnMetadataBuilder) WithColumnDefinition(definition string) *DiscriminatorColumnMetadataBuilder {
	d.column.ColumnDefinition = definition
	return d
}

// Build validate and return a copy of the column
func (d *DiscriminatorColumnMetadataBuilder) Build() (*mapping.DiscriminatorColumnMetadata, error) {
	column := d.column
	if err := column.Validate(); err != nil {
		return nil, err
	}
	return &column, nil
}
