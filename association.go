package mapping

import (
	"fmt"

	"gorm.io/mapping/utils"
)

// AssociationType association kind, the values are opaque discriminants
type AssociationType int

const (
	OneToOne   AssociationType = 1
	ManyToOne  AssociationType = 2
	OneToMany  AssociationType = 4
	ManyToMany AssociationType = 8
)

// IsToOne single valued association
func (t AssociationType) IsToOne() bool {
	return t == OneToOne || t == ManyToOne
}

// IsToMany collection valued association
func (t AssociationType) IsToMany() bool {
	return t == OneToMany || t == ManyToMany
}

func (t AssociationType) String() string {
	switch t {
	case OneToOne:
		return "one_to_one"
	case ManyToOne:
		return "many_to_one"
	case OneToMany:
		return "one_to_many"
	case ManyToMany:
		return "many_to_many"
	}
	return fmt.Sprintf("AssociationType(%d)", int(t))
}

// FetchMode association fetch mode
type FetchMode string

const (
	FetchLazy      FetchMode = "LAZY"
	FetchEager     FetchMode = "EAGER"
	FetchExtraLazy FetchMode = "EXTRA_LAZY"
)

// CascadeType cascaded operation
type CascadeType string

const (
	CascadeRemove  CascadeType = "remove"
	CascadePersist CascadeType = "persist"
	CascadeRefresh CascadeType = "refresh"
	CascadeMerge   CascadeType = "merge"
	CascadeDetach  CascadeType = "detach"
)

// CascadeAll every cascade type, in declaration order
var CascadeAll = []CascadeType{CascadeRemove, CascadePersist, CascadeRefresh, CascadeMerge, CascadeDetach}

// AssociationMetadata association field mapping
type AssociationMetadata struct {
	FieldName      string
	TargetEntity   string
	SourceEntity   string
	Type           AssociationType
	DeclaringClass *ClassMetadata
	// MappedBy marks the inverse side, InversedBy the owning side of a bidirectional association
	MappedBy      string
	InversedBy    string
	IsOwningSide  bool
	Cascade       []CascadeType
	Fetch         FetchMode
	OrphanRemoval bool
	PrimaryKey    bool
	JoinColumns   []*JoinColumnMetadata
	JoinTable     *JoinTableMetadata
	OrderBy       []string
	IndexBy       string
}

// IsCascaded reports whether op is cascaded to the target entity
func (a *AssociationMetadata) IsCascaded(op CascadeType) bool {
	for _, cascade := range a.Cascade {
		if cascade == op {
			return true
		}
	}
	return false
}

// AddAssociation validate, complete and commit an association, the descriptor
// is left untouched when validation fails
func (cm *ClassMetadata) AddAssociation(association *AssociationMetadata) error {
	if err := cm.validateAssociation(association); err != nil {
		return err
	}

	cm.completeAssociation(association)
	if previous := cm.AssociationMappings[association.FieldName]; previous != nil && previous.PrimaryKey && !association.PrimaryKey {
		cm.removeIdentifier(association.FieldName)
	}
	cm.AssociationMappings[association.FieldName] = association

	if association.PrimaryKey {
		cm.AddIdentifier(association.FieldName)
	}

	cm.ContainsForeignIdentifier = false
	for _, field := range cm.Identifier {
		if cm.HasAssociation(field) {
			cm.ContainsForeignIdentifier = true
			break
		}
	}
	return nil
}

func (cm *ClassMetadata) validateAssociation(association *AssociationMetadata) error {
	field := association.FieldName
	if field == "" {
		return classError(ErrMissingFieldName, cm.Name)
	}

	if association.TargetEntity == "" {
		return fieldError(ErrMissingTargetEntity, cm.Name, field)
	}

	if cm.HasField(field) || cm.HasEmbedded(field) {
		return fieldError(ErrDuplicateFieldMapping, cm.Name, field)
	}

	if association.PrimaryKey {
		if association.Type.IsToMany() {
			return fieldError(ErrIllegalToManyIdentifierAssociation, cm.Name, field)
		}
		if association.MappedBy != "" {
			return fieldError(ErrIllegalInverseIdentifierAssociation, cm.Name, field)
		}
	}

	switch association.Type {
	case ManyToOne:
		if association.MappedBy != "" {
			return fieldError(ErrIllegalInverseManyToOne, cm.Name, field)
		}
		if association.OrphanRemoval {
			return fieldError(ErrIllegalOrphanRemoval, cm.Name, field)
		}
	case OneToMany:
		if association.MappedBy == "" {
			return fieldError(ErrOneToManyRequiresMappedBy, cm.Name, field)
		}
	}

	if association.MappedBy != "" {
		if len(association.JoinColumns) > 0 || association.JoinTable != nil {
			return fieldError(ErrInverseSideJoinColumns, cm.Name, field)
		}

		if cm.IsMappedSuperclass && association.Type.IsToMany() {
			return fieldError(ErrIllegalToManyAssociationOnMappedSuperclass, cm.Name, field)
		}
	}
	return nil
}

func (cm *ClassMetadata) completeAssociation(association *AssociationMetadata) {
	namer := cm.NamingStrategy()

	association.DeclaringClass = cm
	if association.SourceEntity == "" {
		association.SourceEntity = cm.Name
	}

	if association.Fetch == "" {
		association.Fetch = FetchLazy
	}

	if association.Cascade == nil {
		association.Cascade = []CascadeType{}
	}

	association.IsOwningSide = association.MappedBy == "" && association.Type != OneToMany

	switch association.Type {
	case OneToOne, ManyToOne:
		if !association.IsOwningSide {
			break
		}

		if len(association.JoinColumns) == 0 {
			column := NewJoinColumnMetadata(
				namer.JoinColumnName(association.FieldName, cm.Name),
				namer.ReferenceColumnName(),
			)
			association.JoinColumns = append(association.JoinColumns, column)
		}

		for _, column := range association.JoinColumns {
			if column.TableName == "" {
				column.TableName = cm.Table.Name
			}
			if column.ReferencedColumnName == "" {
				column.ReferencedColumnName = namer.ReferenceColumnName()
			}
			// one-to-one foreign keys are unique unless they identify the entity
			if association.Type == OneToOne && !association.PrimaryKey {
				column.Unique = true
			}
		}
	case ManyToMany:
		if !association.IsOwningSide {
			break
		}

		if association.JoinTable == nil {
			association.JoinTable = &JoinTableMetadata{}
		}

		joinTable := association.JoinTable
		if joinTable.Name == "" {
			joinTable.Name = namer.JoinTableName(association.SourceEntity, association.TargetEntity, association.FieldName)
		}

		if len(joinTable.JoinColumns) == 0 {
			column := NewJoinColumnMetadata(
				namer.JoinKeyColumnName(association.SourceEntity, ""),
				namer.ReferenceColumnName(),
			)
			column.OnDelete = "CASCADE"
			joinTable.AddJoinColumn(column)
		}

		if len(joinTable.InverseJoinColumns) == 0 {
			column := NewJoinColumnMetadata(
				namer.JoinKeyColumnName(association.TargetEntity, ""),
				namer.ReferenceColumnName(),
			)
			column.OnDelete = "CASCADE"
			joinTable.AddInverseJoinColumn(column)
		}
	}

	// orphans of a single owner are removed along with it
	if association.OrphanRemoval && (association.Type == OneToOne || association.Type == OneToMany) {
		association.Cascade = utils.AppendUnique(association.Cascade, CascadeRemove)
	}
}
