package mapping

import (
	"fmt"
	"sort"

	"gorm.io/mapping/logger"
	"gorm.io/mapping/utils"
)

// InheritanceType inheritance mapping strategy
type InheritanceType int

const (
	InheritanceTypeNone InheritanceType = iota + 1
	InheritanceTypeJoined
	InheritanceTypeSingleTable
)

func (t InheritanceType) String() string {
	switch t {
	case InheritanceTypeNone:
		return "NONE"
	case InheritanceTypeJoined:
		return "JOINED"
	case InheritanceTypeSingleTable:
		return "SINGLE_TABLE"
	}
	return fmt.Sprintf("InheritanceType(%d)", int(t))
}

// ChangeTrackingPolicy unit of work change detection policy
type ChangeTrackingPolicy int

const (
	ChangeTrackingDeferredImplicit ChangeTrackingPolicy = iota + 1
	ChangeTrackingDeferredExplicit
	ChangeTrackingNotify
)

func (p ChangeTrackingPolicy) String() string {
	switch p {
	case ChangeTrackingDeferredImplicit:
		return "DEFERRED_IMPLICIT"
	case ChangeTrackingDeferredExplicit:
		return "DEFERRED_EXPLICIT"
	case ChangeTrackingNotify:
		return "NOTIFY"
	}
	return fmt.Sprintf("ChangeTrackingPolicy(%d)", int(p))
}

// Lifecycle events
const (
	PrePersist  = "prePersist"
	PostPersist = "postPersist"
	PreUpdate   = "preUpdate"
	PostUpdate  = "postUpdate"
	PreRemove   = "preRemove"
	PostRemove  = "postRemove"
	PostLoad    = "postLoad"
	PreFlush    = "preFlush"
)

// ClassMetadata mapping metadata of one class.
//
// It is built by a single writer, usually the builder package, and must be
// treated as read-only once handed to its consumers.
type ClassMetadata struct {
	Name                      string
	Table                     TableMetadata
	Identifier                []string
	Properties                map[string]*Property
	AssociationMappings       map[string]*AssociationMetadata
	EmbeddedClasses           map[string]*EmbeddedMetadata
	InheritanceType           InheritanceType
	DiscriminatorColumn       *DiscriminatorColumnMetadata
	DiscriminatorMap          map[string]string
	DiscriminatorValue        string
	ChangeTrackingPolicy      ChangeTrackingPolicy
	IsMappedSuperclass        bool
	IsEmbeddedClass           bool
	CustomRepositoryClassName string
	IsReadOnly                bool
	LifecycleCallbacks        map[string][]string
	VersionProperty           *Property
	GeneratorType             GeneratorType
	ContainsForeignIdentifier bool
	config                    *Config
}

// NewClassMetadata returns an empty descriptor for className
func NewClassMetadata(className string, opts ...ConfigOption) *ClassMetadata {
	config := NewConfig(opts...)

	return &ClassMetadata{
		Name: className,
		Table: TableMetadata{
			Name:              config.NamingStrategy.ClassToTableName(className),
			Indexes:           map[string]*IndexMetadata{},
			UniqueConstraints: map[string]*UniqueConstraintMetadata{},
			Options:           map[string]interface{}{},
		},
		Properties:           map[string]*Property{},
		AssociationMappings:  map[string]*AssociationMetadata{},
		EmbeddedClasses:      map[string]*EmbeddedMetadata{},
		InheritanceType:      InheritanceTypeNone,
		DiscriminatorMap:     map[string]string{},
		ChangeTrackingPolicy: ChangeTrackingDeferredImplicit,
		LifecycleCallbacks:   map[string][]string{},
		GeneratorType:        GeneratorTypeNone,
		config:               config,
	}
}

func (cm *ClassMetadata) String() string {
	return cm.Name
}

// NamingStrategy configured naming strategy
func (cm *ClassMetadata) NamingStrategy() Namer {
	return cm.config.NamingStrategy
}

// Logger configured logger
func (cm *ClassMetadata) Logger() logger.Interface {
	return cm.config.Logger
}

// TableName primary table name
func (cm *ClassMetadata) TableName() string {
	return cm.Table.Name
}

// SetPrimaryTable rename the primary table, properties and join columns still
// pointing at the previous name follow
func (cm *ClassMetadata) SetPrimaryTable(name string) {
	previous := cm.Table.Name
	cm.Table.Name = name

	for _, property := range cm.Properties {
		if property.TableName == previous {
			property.TableName = name
		}
	}

	for _, association := range cm.AssociationMappings {
		for _, column := range association.JoinColumns {
			if column.TableName == previous {
				column.TableName = name
			}
		}
	}

	if cm.DiscriminatorColumn != nil && cm.DiscriminatorColumn.TableName == previous {
		cm.DiscriminatorColumn.TableName = name
	}
}

// SetMappedSuperclass mark as mapped superclass, clears the embeddable flag
func (cm *ClassMetadata) SetMappedSuperclass() {
	cm.IsMappedSuperclass = true
	cm.IsEmbeddedClass = false
}

// SetEmbeddable mark as embeddable, clears the mapped superclass flag
func (cm *ClassMetadata) SetEmbeddable() {
	cm.IsEmbeddedClass = true
	cm.IsMappedSuperclass = false
}

// GetProperty returns the property mapped as name, or nil
func (cm *ClassMetadata) GetProperty(name string) *Property {
	return cm.Properties[name]
}

// GetAssociation returns the association mapped as name, or nil
func (cm *ClassMetadata) GetAssociation(name string) *AssociationMetadata {
	return cm.AssociationMappings[name]
}

// HasField reports whether name is a mapped property
func (cm *ClassMetadata) HasField(name string) bool {
	_, ok := cm.Properties[name]
	return ok
}

// HasAssociation reports whether name is a mapped association
func (cm *ClassMetadata) HasAssociation(name string) bool {
	_, ok := cm.AssociationMappings[name]
	return ok
}

// HasEmbedded reports whether name is a mapped embedded object
func (cm *ClassMetadata) HasEmbedded(name string) bool {
	_, ok := cm.EmbeddedClasses[name]
	return ok
}

// GetColumnName column of a property, the field name when not mapped
func (cm *ClassMetadata) GetColumnName(field string) string {
	if property := cm.Properties[field]; property != nil {
		return property.ColumnName
	}
	return field
}

// GetFieldNames sorted property names
func (cm *ClassMetadata) GetFieldNames() []string {
	names := make([]string, 0, len(cm.Properties))
	for name := range cm.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAssociationNames sorted association names
func (cm *ClassMetadata) GetAssociationNames() []string {
	names := make([]string, 0, len(cm.AssociationMappings))
	for name := range cm.AssociationMappings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsIdentifier reports whether field is part of the identifier
func (cm *ClassMetadata) IsIdentifier(field string) bool {
	return utils.Contains(cm.Identifier, field)
}

// IsIdentifierComposite reports whether the identifier spans several fields
func (cm *ClassMetadata) IsIdentifierComposite() bool {
	return len(cm.Identifier) > 1
}

// GetSingleIdentifierFieldName returns the only identifier field
func (cm *ClassMetadata) GetSingleIdentifierFieldName() (string, error) {
	if len(cm.Identifier) != 1 {
		return "", classError(ErrSingleIdentifierRequired, cm.Name)
	}
	return cm.Identifier[0], nil
}

// AddIdentifier append field to the identifier, once
func (cm *ClassMetadata) AddIdentifier(field string) {
	cm.Identifier = utils.AppendUnique(cm.Identifier, field)
}

func (cm *ClassMetadata) removeIdentifier(field string) {
	identifier := cm.Identifier[:0]
	for _, name := range cm.Identifier {
		if name != field {
			identifier = append(identifier, name)
		}
	}
	cm.Identifier = identifier
}

// IsVersioned reports whether a version property is mapped
func (cm *ClassMetadata) IsVersioned() bool {
	return cm.VersionProperty != nil
}

func (cm *ClassMetadata) IsInheritanceTypeNone() bool {
	return cm.InheritanceType == InheritanceTypeNone
}

func (cm *ClassMetadata) IsInheritanceTypeJoined() bool {
	return cm.InheritanceType == InheritanceTypeJoined
}

func (cm *ClassMetadata) IsInheritanceTypeSingleTable() bool {
	return cm.InheritanceType == InheritanceTypeSingleTable
}

func (cm *ClassMetadata) IsChangeTrackingDeferredImplicit() bool {
	return cm.ChangeTrackingPolicy == ChangeTrackingDeferredImplicit
}

func (cm *ClassMetadata) IsChangeTrackingDeferredExplicit() bool {
	return cm.ChangeTrackingPolicy == ChangeTrackingDeferredExplicit
}

func (cm *ClassMetadata) IsChangeTrackingNotify() bool {
	return cm.ChangeTrackingPolicy == ChangeTrackingNotify
}

// AddProperty commit a property, a property of the same name is replaced
func (cm *ClassMetadata) AddProperty(property *Property) error {
	if property.Name == "" {
		return classError(ErrMissingFieldName, cm.Name)
	}

	if cm.HasAssociation(property.Name) || cm.HasEmbedded(property.Name) {
		return fieldError(ErrDuplicateFieldMapping, cm.Name, property.Name)
	}

	if property.Versioned {
		if err := property.completeVersion(); err != nil {
			return fieldError(err, cm.Name, property.Name)
		}
	}

	property.DeclaringClass = cm
	if property.TableName == "" {
		property.TableName = cm.Table.Name
	}

	if property.ColumnName == "" {
		property.ColumnName = cm.NamingStrategy().PropertyToColumnName(property.Name, cm.Name)
	}

	if previous := cm.Properties[property.Name]; previous != nil {
		if previous == cm.VersionProperty {
			cm.VersionProperty = nil
		}
		if previous.PrimaryKey && !property.PrimaryKey {
			cm.removeIdentifier(property.Name)
		}
	}

	cm.Properties[property.Name] = property

	if property.Versioned {
		cm.VersionProperty = property
	}

	if property.PrimaryKey {
		cm.AddIdentifier(property.Name)
		if property.HasValueGenerator() {
			cm.GeneratorType = property.ValueGenerator.Type
		}
	}
	return nil
}

// AddEmbedded commit an embedded object mapping, an embedded object of the same name is replaced
func (cm *ClassMetadata) AddEmbedded(field string, embedded *EmbeddedMetadata) error {
	if field == "" {
		return classError(ErrMissingFieldName, cm.Name)
	}

	if cm.HasField(field) || cm.HasAssociation(field) {
		return fieldError(ErrDuplicateFieldMapping, cm.Name, field)
	}

	embedded.DeclaringClass = cm
	cm.EmbeddedClasses[field] = embedded
	return nil
}

// AddLifecycleCallback register method for event, after the already registered ones
func (cm *ClassMetadata) AddLifecycleCallback(method, event string) {
	cm.LifecycleCallbacks[event] = utils.AppendUnique(cm.LifecycleCallbacks[event], method)
}

// HasLifecycleCallbacks reports whether callbacks are registered for event
func (cm *ClassMetadata) HasLifecycleCallbacks(event string) bool {
	return len(cm.LifecycleCallbacks[event]) > 0
}

// GetLifecycleCallbacks methods registered for event, in registration order
func (cm *ClassMetadata) GetLifecycleCallbacks(event string) []string {
	return cm.LifecycleCallbacks[event]
}

// SetDiscriminatorColumn validate and assign the discriminator column
func (cm *ClassMetadata) SetDiscriminatorColumn(column *DiscriminatorColumnMetadata) error {
	if err := column.Validate(); err != nil {
		return classError(err, cm.Name)
	}

	discriminatorColumn := *column
	if discriminatorColumn.TableName == "" {
		discriminatorColumn.TableName = cm.Table.Name
	}
	cm.DiscriminatorColumn = &discriminatorColumn
	return nil
}

// AddDiscriminatorMapClass map value to className, the descriptor's own class
// also takes value as its discriminator value
func (cm *ClassMetadata) AddDiscriminatorMapClass(value, className string) error {
	if existing, ok := cm.DiscriminatorMap[value]; ok && existing != className {
		return fmt.Errorf("%w: %q maps %s and %s", ErrDuplicateDiscriminatorEntry, value, existing, className)
	}

	cm.DiscriminatorMap[value] = className
	if className == cm.Name {
		cm.DiscriminatorValue = value
	}
	return nil
}

// AddIndex add an index on columns, an empty name is derived from the naming strategy
func (cm *ClassMetadata) AddIndex(name string, columns []string, unique bool) (*IndexMetadata, error) {
	if len(columns) == 0 {
		return nil, classError(ErrInvalidIndex, cm.Name)
	}

	if name == "" {
		name = cm.NamingStrategy().IndexName(cm.Table.Name, columns...)
	}

	index := &IndexMetadata{Name: name, Columns: columns, Unique: unique}
	cm.Table.Indexes[name] = index
	return index, nil
}

// AddUniqueConstraint add a unique constraint on columns, an empty name is derived from the naming strategy
func (cm *ClassMetadata) AddUniqueConstraint(name string, columns []string) (*UniqueConstraintMetadata, error) {
	if len(columns) == 0 {
		return nil, classError(ErrInvalidIndex, cm.Name)
	}

	if name == "" {
		name = cm.NamingStrategy().UniqueName(cm.Table.Name, columns...)
	}

	constraint := &UniqueConstraintMetadata{Name: name, Columns: columns}
	cm.Table.UniqueConstraints[name] = constraint
	return constraint, nil
}

// Complete fill inheritance defaults and check class level invariants,
// it is called once the class has been fully mapped
func (cm *ClassMetadata) Complete() error {
	if cm.IsInheritanceTypeNone() {
		if cm.DiscriminatorColumn != nil || len(cm.DiscriminatorMap) > 0 {
			return classError(ErrDiscriminatorWithoutInheritance, cm.Name)
		}
	} else if cm.DiscriminatorColumn == nil {
		cm.DiscriminatorColumn = &DiscriminatorColumnMetadata{
			TableName:  cm.Table.Name,
			ColumnName: DefaultDiscriminatorColumnName,
			TypeName:   DefaultDiscriminatorTypeName,
			Length:     DefaultDiscriminatorLength,
		}
	}

	if len(cm.Identifier) == 0 && !cm.IsMappedSuperclass && !cm.IsEmbeddedClass {
		return classError(ErrIdentifierRequired, cm.Name)
	}
	return nil
}
