package builder

import (
	"context"

	"gorm.io/mapping"
	"gorm.io/mapping/utils"
)

// associationBuilder holds the mutators shared by every association kind,
// B is the concrete builder returned for chaining
type associationBuilder[B any] struct {
	self        B
	builder     *ClassMetadataBuilder
	association *mapping.AssociationMetadata
	built       bool
}

// MappedBy mark the association as inverse side of field
func (a *associationBuilder[B]) MappedBy(field string) B {
	a.association.MappedBy = field
	a.association.InversedBy = ""
	return a.self
}

// InversedBy mark the association as owning side, field is the inverse side
func (a *associationBuilder[B]) InversedBy(field string) B {
	a.association.InversedBy = field
	a.association.MappedBy = ""
	return a.self
}

// CascadeAll cascade every operation
func (a *associationBuilder[B]) CascadeAll() B {
	a.association.Cascade = append([]mapping.CascadeType{}, mapping.CascadeAll...)
	return a.self
}

func (a *associationBuilder[B]) CascadePersist() B {
	return a.cascade(mapping.CascadePersist)
}

func (a *associationBuilder[B]) CascadeRemove() B {
	return a.cascade(mapping.CascadeRemove)
}

func (a *associationBuilder[B]) CascadeMerge() B {
	return a.cascade(mapping.CascadeMerge)
}

func (a *associationBuilder[B]) CascadeRefresh() B {
	return a.cascade(mapping.CascadeRefresh)
}

func (a *associationBuilder[B]) CascadeDetach() B {
	return a.cascade(mapping.CascadeDetach)
}

func (a *associationBuilder[B]) cascade(op mapping.CascadeType) B {
	a.association.Cascade = utils.AppendUnique(a.association.Cascade, op)
	return a.self
}

// FetchExtraLazy load collections item by item
func (a *associationBuilder[B]) FetchExtraLazy() B {
	a.association.Fetch = mapping.FetchExtraLazy
	return a.self
}

// FetchEager load the association with its owner
func (a *associationBuilder[B]) FetchEager() B {
	a.association.Fetch = mapping.FetchEager
	return a.self
}

// FetchLazy load the association on first access
func (a *associationBuilder[B]) FetchLazy() B {
	a.association.Fetch = mapping.FetchLazy
	return a.self
}

// MakePrimaryKey make the association part of the identifier, checked on Build
func (a *associationBuilder[B]) MakePrimaryKey() B {
	a.association.PrimaryKey = true
	return a.self
}

// OrphanRemoval remove targets no longer referenced, checked on Build
func (a *associationBuilder[B]) OrphanRemoval() B {
	a.association.OrphanRemoval = true
	return a.self
}

func (a *associationBuilder[B]) build() (*ClassMetadataBuilder, error) {
	cm := a.builder.cm
	ctx := context.Background()

	if a.built {
		return a.builder, consumedError(a.builder, a.association.FieldName)
	}

	replaced := cm.HasAssociation(a.association.FieldName)
	association := copyAssociation(a.association)
	if err := cm.AddAssociation(association); err != nil {
		a.builder.logger().Error(ctx, "association rejected", "class", cm.Name, "field", a.association.FieldName, "type", a.association.Type, "error", err)
		return a.builder, err
	}
	a.built = true

	if replaced {
		a.builder.logger().Warn(ctx, "association replaced", "class", cm.Name, "field", association.FieldName)
	}
	a.builder.logger().Info(ctx, "association mapped", "class", cm.Name, "field", association.FieldName, "type", association.Type, "target", association.TargetEntity)
	return a.builder, nil
}

// copyAssociation detaches the committed mapping from the staged one, so a
// rejected build leaves the builder as the caller configured it
func copyAssociation(association *mapping.AssociationMetadata) *mapping.AssociationMetadata {
	result := *association
	result.Cascade = append([]mapping.CascadeType{}, association.Cascade...)

	if association.OrderBy != nil {
		result.OrderBy = append([]string{}, association.OrderBy...)
	}

	result.JoinColumns = copyJoinColumns(association.JoinColumns)

	if association.JoinTable != nil {
		joinTable := *association.JoinTable
		joinTable.JoinColumns = copyJoinColumns(association.JoinTable.JoinColumns)
		joinTable.InverseJoinColumns = copyJoinColumns(association.JoinTable.InverseJoinColumns)
		result.JoinTable = &joinTable
	}
	return &result
}

func copyJoinColumns(columns []*mapping.JoinColumnMetadata) []*mapping.JoinColumnMetadata {
	if columns == nil {
		return nil
	}

	result := make([]*mapping.JoinColumnMetadata, 0, len(columns))
	for _, column := range columns {
		c := *column
		result = append(result, &c)
	}
	return result
}

func newJoinColumn(columnName, referencedColumnName string, nullable, unique bool, onDelete string) *mapping.JoinColumnMetadata {
	column := mapping.NewJoinColumnMetadata(columnName, referencedColumnName)
	column.Nullable = nullable
	column.Unique = unique
	column.OnDelete = onDelete
	return column
}

// ToOneAssociationBuilder stages a many-to-one or one-to-one association
type ToOneAssociationBuilder struct {
	associationBuilder[*ToOneAssociationBuilder]
}

func newToOneAssociationBuilder(b *ClassMetadataBuilder, association *mapping.AssociationMetadata) *ToOneAssociationBuilder {
	builder := &ToOneAssociationBuilder{}
	builder.self = builder
	builder.builder = b
	builder.association = association
	return builder
}

// AddJoinColumn add a foreign key column, stamped with the owning table on build
func (a *ToOneAssociationBuilder) AddJoinColumn(columnName, referencedColumnName string, nullable, unique bool, onDelete string) *ToOneAssociationBuilder {
	a.association.JoinColumns = append(a.association.JoinColumns, newJoinColumn(columnName, referencedColumnName, nullable, unique, onDelete))
	return a
}

// Build validate and commit the association, then return the class builder
func (a *ToOneAssociationBuilder) Build() (*ClassMetadataBuilder, error) {
	return a.build()
}
