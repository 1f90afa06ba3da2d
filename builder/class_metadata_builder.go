package builder

import (
	"context"
	"fmt"

	"gorm.io/mapping"
	"gorm.io/mapping/logger"
)

// ClassMetadataBuilder fluent facade over one ClassMetadata.
//
// Every mutator returns the builder itself. Failures of the mutators that
// commit immediately are accumulated in Error, the Build method of the staged
// builders returns its failure instead.
type ClassMetadataBuilder struct {
	Error error
	cm    *mapping.ClassMetadata
}

// New returns a builder bound to cm
func New(cm *mapping.ClassMetadata) *ClassMetadataBuilder {
	return &ClassMetadataBuilder{cm: cm}
}

// ClassMetadata the descriptor under construction
func (b *ClassMetadataBuilder) ClassMetadata() *mapping.ClassMetadata {
	return b.cm
}

// Metadata complete the descriptor and return it with the accumulated error
func (b *ClassMetadataBuilder) Metadata() (*mapping.ClassMetadata, error) {
	if b.Error == nil {
		if err := b.cm.Complete(); err != nil {
			b.AddError(err)
		}
	}
	return b.cm, b.Error
}

// AddError add error to the builder
func (b *ClassMetadataBuilder) AddError(err error) error {
	if err == nil {
		return b.Error
	}

	b.logger().Error(context.Background(), "class mapping failed", "class", b.cm.Name, "error", err)
	if b.Error == nil {
		b.Error = err
	} else {
		b.Error = fmt.Errorf("%v; %w", b.Error, err)
	}
	return b.Error
}

func (b *ClassMetadataBuilder) logger() logger.Interface {
	return b.cm.Logger()
}

// SetMappedSuperClass mark the class as mapped superclass
func (b *ClassMetadataBuilder) SetMappedSuperClass() *ClassMetadataBuilder {
	b.cm.SetMappedSuperclass()
	return b
}

// SetEmbeddable mark the class as embeddable
func (b *ClassMetadataBuilder) SetEmbeddable() *ClassMetadataBuilder {
	b.cm.SetEmbeddable()
	return b
}

// SetCustomRepositoryClass set the repository class name
func (b *ClassMetadataBuilder) SetCustomRepositoryClass(className string) *ClassMetadataBuilder {
	b.cm.CustomRepositoryClassName = className
	return b
}

// SetReadOnly mark the class read only
func (b *ClassMetadataBuilder) SetReadOnly() *ClassMetadataBuilder {
	b.cm.IsReadOnly = true
	return b
}

// SetTable set the primary table name
func (b *ClassMetadataBuilder) SetTable(name string) *ClassMetadataBuilder {
	b.cm.SetPrimaryTable(name)
	return b
}

// AddIndex add an index, name may be empty
func (b *ClassMetadataBuilder) AddIndex(columns []string, name string) *ClassMetadataBuilder {
	if _, err := b.cm.AddIndex(name, columns, false); err != nil {
		b.AddError(err)
	}
	return b
}

// AddUniqueConstraint add a unique constraint, name may be empty
func (b *ClassMetadataBuilder) AddUniqueConstraint(columns []string, name string) *ClassMetadataBuilder {
	if _, err := b.cm.AddUniqueConstraint(name, columns); err != nil {
		b.AddError(err)
	}
	return b
}

// SetJoinedTableInheritance use class table inheritance
func (b *ClassMetadataBuilder) SetJoinedTableInheritance() *ClassMetadataBuilder {
	b.cm.InheritanceType = mapping.InheritanceTypeJoined
	return b
}

// SetSingleTableInheritance use single table inheritance
func (b *ClassMetadataBuilder) SetSingleTableInheritance() *ClassMetadataBuilder {
	b.cm.InheritanceType = mapping.InheritanceTypeSingleTable
	return b
}

// SetDiscriminatorColumn set the discriminator column, usually built by a DiscriminatorColumnMetadataBuilder
func (b *ClassMetadataBuilder) SetDiscriminatorColumn(column *mapping.DiscriminatorColumnMetadata) *ClassMetadataBuilder {
	if err := b.cm.SetDiscriminatorColumn(column); err != nil {
		b.AddError(err)
	}
	return b
}

// AddDiscriminatorMapClass map a discriminator value to className
func (b *ClassMetadataBuilder) AddDiscriminatorMapClass(value, className string) *ClassMetadataBuilder {
	if err := b.cm.AddDiscriminatorMapClass(value, className); err != nil {
		b.AddError(err)
	}
	return b
}

// SetChangeTrackingPolicyDeferredExplicit track changes of explicitly persisted entities only
func (b *ClassMetadataBuilder) SetChangeTrackingPolicyDeferredExplicit() *ClassMetadataBuilder {
	b.cm.ChangeTrackingPolicy = mapping.ChangeTrackingDeferredExplicit
	return b
}

// SetChangeTrackingPolicyNotify entities notify their own changes
func (b *ClassMetadataBuilder) SetChangeTrackingPolicyNotify() *ClassMetadataBuilder {
	b.cm.ChangeTrackingPolicy = mapping.ChangeTrackingNotify
	return b
}

// AddLifecycleEvent register method as callback of event
func (b *ClassMetadataBuilder) AddLifecycleEvent(method, event string) *ClassMetadataBuilder {
	b.cm.AddLifecycleCallback(method, event)
	return b
}

// FieldOption configures the field builder of AddProperty
type FieldOption func(*FieldBuilder)

// AddProperty map and commit a property
func (b *ClassMetadataBuilder) AddProperty(name, typeName string, opts ...FieldOption) *ClassMetadataBuilder {
	field := b.CreateField(name, typeName)
	for _, opt := range opts {
		opt(field)
	}

	if err := field.commit(); err != nil {
		b.AddError(err)
	}
	return b
}

// CreateField returns a field builder, nothing is mapped until its Build
func (b *ClassMetadataBuilder) CreateField(name, typeName string) *FieldBuilder {
	return &FieldBuilder{
		builder: b,
		property: mapping.Property{
			Name:     name,
			TypeName: typeName,
		},
	}
}

// AddEmbedded map and commit an embedded object, the column prefix is optional
func (b *ClassMetadataBuilder) AddEmbedded(name, className string, columnPrefix ...string) *ClassMetadataBuilder {
	embedded := b.CreateEmbedded(name, className)
	if len(columnPrefix) > 0 {
		embedded.SetColumnPrefix(columnPrefix[0])
	}

	if err := embedded.commit(); err != nil {
		b.AddError(err)
	}
	return b
}

// CreateEmbedded returns an embedded builder, nothing is mapped until its Build
func (b *ClassMetadataBuilder) CreateEmbedded(name, className string) *EmbeddedBuilder {
	return &EmbeddedBuilder{
		builder: b,
		field:   name,
		class:   className,
	}
}

// CreateManyToOne returns a many-to-one association builder
func (b *ClassMetadataBuilder) CreateManyToOne(name, targetEntity string) *ToOneAssociationBuilder {
	return newToOneAssociationBuilder(b, b.newAssociation(name, targetEntity, mapping.ManyToOne))
}

// CreateOneToOne returns a one-to-one association builder
func (b *ClassMetadataBuilder) CreateOneToOne(name, targetEntity string) *ToOneAssociationBuilder {
	return newToOneAssociationBuilder(b, b.newAssociation(name, targetEntity, mapping.OneToOne))
}

// CreateOneToMany returns a one-to-many association builder
func (b *ClassMetadataBuilder) CreateOneToMany(name, targetEntity string) *OneToManyAssociationBuilder {
	return newOneToManyAssociationBuilder(b, b.newAssociation(name, targetEntity, mapping.OneToMany))
}

// CreateManyToMany returns a many-to-many association builder
func (b *ClassMetadataBuilder) CreateManyToMany(name, targetEntity string) *ManyToManyAssociationBuilder {
	return newManyToManyAssociationBuilder(b, b.newAssociation(name, targetEntity, mapping.ManyToMany))
}

func (b *ClassMetadataBuilder) newAssociation(name, targetEntity string, typ mapping.AssociationType) *mapping.AssociationMetadata {
	return &mapping.AssociationMetadata{
		FieldName:     name,
		TargetEntity:  targetEntity,
		SourceEntity:  b.cm.Name,
		Type:          typ,
		Cascade:       []mapping.CascadeType{},
		Fetch:         mapping.FetchLazy,
		OrphanRemoval: false,
	}
}

func consumedError(b *ClassMetadataBuilder, field string) error {
	return fmt.Errorf("%w: %s#%s", mapping.ErrBuilderConsumed, b.cm.Name, field)
}
