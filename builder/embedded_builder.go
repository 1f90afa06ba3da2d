package builder

import (
	"context"

	"gorm.io/mapping"
)

// EmbeddedBuilder stages an embedded object mapping
type EmbeddedBuilder struct {
	builder      *ClassMetadataBuilder
	field        string
	class        string
	columnPrefix *string
	built        bool
}

// SetColumnPrefix set the prefix of the embedded columns
func (e *EmbeddedBuilder) SetColumnPrefix(prefix string) *EmbeddedBuilder {
	e.columnPrefix = &prefix
	return e
}

// Build commit the embedded object and return the class builder
func (e *EmbeddedBuilder) Build() (*ClassMetadataBuilder, error) {
	if err := e.commit(); err != nil {
		e.builder.logger().Error(context.Background(), "embedded rejected", "class", e.builder.cm.Name, "field", e.field, "error", err)
		return e.builder, err
	}
	return e.builder, nil
}

func (e *EmbeddedBuilder) commit() error {
	if e.built {
		return consumedError(e.builder, e.field)
	}

	cm := e.builder.cm
	replaced := cm.HasEmbedded(e.field)
	embedded := &mapping.EmbeddedMetadata{
		Class:        e.class,
		ColumnPrefix: e.columnPrefix,
	}

	if err := cm.AddEmbedded(e.field, embedded); err != nil {
		return err
	}
	e.built = true

	ctx := context.Background()
	if replaced {
		e.builder.logger().Warn(ctx, "embedded replaced", "class", cm.Name, "field", e.field)
	}
	e.builder.logger().Info(ctx, "embedded mapped", "class", cm.Name, "field", e.field, "embeddable", e.class)
	return nil
}
