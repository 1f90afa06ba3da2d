package builder

import "gorm.io/mapping"

// ManyToManyAssociationBuilder stages a many-to-many association
type ManyToManyAssociationBuilder struct {
	associationBuilder[*ManyToManyAssociationBuilder]
}

func newManyToManyAssociationBuilder(b *ClassMetadataBuilder, association *mapping.AssociationMetadata) *ManyToManyAssociationBuilder {
	builder := &ManyToManyAssociationBuilder{}
	builder.self = builder
	builder.builder = b
	builder.association = association
	return builder
}

func (a *ManyToManyAssociationBuilder) joinTable() *mapping.JoinTableMetadata {
	if a.association.JoinTable == nil {
		a.association.JoinTable = &mapping.JoinTableMetadata{}
	}
	return a.association.JoinTable
}

// SetJoinTable set the junction table name
func (a *ManyToManyAssociationBuilder) SetJoinTable(name string) *ManyToManyAssociationBuilder {
	a.joinTable().Name = name
	return a
}

// AddJoinColumn add a junction table column referencing the owning entity
func (a *ManyToManyAssociationBuilder) AddJoinColumn(columnName, referencedColumnName string, nullable, unique bool, onDelete string) *ManyToManyAssociationBuilder {
	a.joinTable().AddJoinColumn(newJoinColumn(columnName, referencedColumnName, nullable, unique, onDelete))
	return a
}

// AddInverseJoinColumn add a junction table column referencing the target entity
func (a *ManyToManyAssociationBuilder) AddInverseJoinColumn(columnName, referencedColumnName string, nullable, unique bool, onDelete string) *ManyToManyAssociationBuilder {
	a.joinTable().AddInverseJoinColumn(newJoinColumn(columnName, referencedColumnName, nullable, unique, onDelete))
	return a
}

// Build validate and commit the association, then return the class builder
func (a *ManyToManyAssociationBuilder) Build() (*ClassMetadataBuilder, error) {
	return a.build()
}
