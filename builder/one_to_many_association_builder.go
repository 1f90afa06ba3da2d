package builder

import "gorm.io/mapping"

// OneToManyAssociationBuilder stages a one-to-many association
type OneToManyAssociationBuilder struct {
	associationBuilder[*OneToManyAssociationBuilder]
}

func newOneToManyAssociationBuilder(b *ClassMetadataBuilder, association *mapping.AssociationMetadata) *OneToManyAssociationBuilder {
	builder := &OneToManyAssociationBuilder{}
	builder.self = builder
	builder.builder = b
	builder.association = association
	return builder
}

// SetOrderBy order the collection by fields of the target entity
func (a *OneToManyAssociationBuilder) SetOrderBy(fields []string) *OneToManyAssociationBuilder {
	a.association.OrderBy = append([]string{}, fields...)
	return a
}

// SetIndexBy index the collection by a field of the target entity
func (a *OneToManyAssociationBuilder) SetIndexBy(field string) *OneToManyAssociationBuilder {
	a.association.IndexBy = field
	return a
}

// Build validate and commit the association, then return the class builder
func (a *OneToManyAssociationBuilder) Build() (*ClassMetadataBuilder, error) {
	return a.build()
}
