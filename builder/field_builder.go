package builder

import (
	"context"

	"gorm.io/mapping"
)

// FieldBuilder stages a property mapping
type FieldBuilder struct {
	builder  *ClassMetadataBuilder
	property mapping.Property
	built    bool
}

// ColumnName set the column name, defaults to the naming strategy's column for the field
func (f *FieldBuilder) ColumnName(name string) *FieldBuilder {
	f.property.ColumnName = name
	return f
}

// Length set the column length
func (f *FieldBuilder) Length(length int) *FieldBuilder {
	f.property.Length = length
	return f
}

// Precision set the decimal precision
func (f *FieldBuilder) Precision(precision int) *FieldBuilder {
	f.property.Precision = precision
	return f
}

// Scale set the decimal scale
func (f *FieldBuilder) Scale(scale int) *FieldBuilder {
	f.property.Scale = scale
	return f
}

// Nullable set nullable, true when called without flag
func (f *FieldBuilder) Nullable(flag ...bool) *FieldBuilder {
	f.property.Nullable = len(flag) == 0 || flag[0]
	return f
}

// Unique set unique, true when called without flag
func (f *FieldBuilder) Unique(flag ...bool) *FieldBuilder {
	f.property.Unique = len(flag) == 0 || flag[0]
	return f
}

// ColumnDefinition set the column definition override
func (f *FieldBuilder) ColumnDefinition(definition string) *FieldBuilder {
	f.property.ColumnDefinition = definition
	return f
}

// IsVersionField use the property for optimistic locking
func (f *FieldBuilder) IsVersionField() *FieldBuilder {
	f.property.Versioned = true
	return f
}

// Option set a column option
func (f *FieldBuilder) Option(name string, value interface{}) *FieldBuilder {
	if f.property.Options == nil {
		f.property.Options = map[string]interface{}{}
	}
	f.property.Options[name] = value
	return f
}

// MakePrimaryKey add the field to the identifier on Build
func (f *FieldBuilder) MakePrimaryKey() *FieldBuilder {
	f.property.PrimaryKey = true
	return f
}

// GeneratedValue generate the value with strategy, AUTO when omitted
func (f *FieldBuilder) GeneratedValue(strategy ...mapping.GeneratorType) *FieldBuilder {
	generator := &mapping.ValueGeneratorMetadata{Type: mapping.GeneratorTypeAuto}
	if len(strategy) > 0 {
		generator.Type = strategy[0]
	}
	f.property.ValueGenerator = generator
	return f
}

// Build commit the property and return the class builder
func (f *FieldBuilder) Build() (*ClassMetadataBuilder, error) {
	if err := f.commit(); err != nil {
		f.builder.logger().Error(context.Background(), "property rejected", "class", f.builder.cm.Name, "field", f.property.Name, "error", err)
		return f.builder, err
	}
	return f.builder, nil
}

func (f *FieldBuilder) commit() error {
	if f.built {
		return consumedError(f.builder, f.property.Name)
	}

	cm := f.builder.cm
	property := f.property
	if len(f.property.Options) > 0 {
		property.Options = make(map[string]interface{}, len(f.property.Options))
		for key, value := range f.property.Options {
			property.Options[key] = value
		}
	}

	replaced := cm.HasField(property.Name)
	if err := cm.AddProperty(&property); err != nil {
		return err
	}
	f.built = true

	ctx := context.Background()
	if replaced {
		f.builder.logger().Warn(ctx, "property replaced", "class", cm.Name, "field", property.Name)
	}
	f.builder.logger().Info(ctx, "property mapped", "class", cm.Name, "field", property.Name, "type", property.TypeName, "column", property.ColumnName)
	return nil
}
