package mapping

import (
	"errors"
	"fmt"
)

var (
	// ErrMapping cross-field mapping violation, detected when a builder commits
	ErrMapping = errors.New("mapping error")
	// ErrConfiguration malformed metadata construction input
	ErrConfiguration = errors.New("configuration error")
)

var (
	// ErrIllegalToManyIdentifierAssociation to-many associations cannot be identifiers
	ErrIllegalToManyIdentifierAssociation = fmt.Errorf("%w: many-valued association cannot be part of the identifier", ErrMapping)
	// ErrIllegalInverseIdentifierAssociation only the owning side of an association can be an identifier
	ErrIllegalInverseIdentifierAssociation = fmt.Errorf("%w: inverse side of an association cannot be part of the identifier", ErrMapping)
	// ErrIllegalOrphanRemoval orphan removal on a many-to-one association
	ErrIllegalOrphanRemoval = fmt.Errorf("%w: orphan removal is only allowed on one-to-one, one-to-many and many-to-many associations", ErrMapping)
	// ErrIllegalInverseManyToOne many-to-one associations are always the owning side
	ErrIllegalInverseManyToOne = fmt.Errorf("%w: many-to-one association cannot be mapped by another field", ErrMapping)
	// ErrOneToManyRequiresMappedBy one-to-many associations are always the inverse side
	ErrOneToManyRequiresMappedBy = fmt.Errorf("%w: one-to-many association requires mapped by", ErrMapping)
	// ErrInverseSideJoinColumns join columns or join table declared on the inverse side
	ErrInverseSideJoinColumns = fmt.Errorf("%w: inverse side of an association cannot declare join columns or a join table", ErrMapping)
	// ErrIllegalToManyAssociationOnMappedSuperclass inverse to-many associations on a mapped superclass
	ErrIllegalToManyAssociationOnMappedSuperclass = fmt.Errorf("%w: mapped superclass cannot declare an inverse to-many association", ErrMapping)
	// ErrDuplicateFieldMapping field name is already mapped as another kind of field
	ErrDuplicateFieldMapping = fmt.Errorf("%w: field is already mapped", ErrMapping)
	// ErrDuplicateDiscriminatorEntry discriminator value already maps another class
	ErrDuplicateDiscriminatorEntry = fmt.Errorf("%w: duplicate discriminator entry", ErrMapping)
	// ErrUnsupportedOptimisticLockingType version field type cannot be used for optimistic locking
	ErrUnsupportedOptimisticLockingType = fmt.Errorf("%w: unsupported optimistic locking type", ErrMapping)
	// ErrMissingTargetEntity association without a target entity
	ErrMissingTargetEntity = fmt.Errorf("%w: association requires a target entity", ErrMapping)
	// ErrSingleIdentifierRequired single identifier requested from a composite or missing identifier
	ErrSingleIdentifierRequired = fmt.Errorf("%w: class has no single identifier", ErrMapping)
	// ErrIdentifierRequired entity without identifier
	ErrIdentifierRequired = fmt.Errorf("%w: no identifier specified", ErrMapping)
)

var (
	// ErrMissingFieldName field name required
	ErrMissingFieldName = fmt.Errorf("%w: field name is required", ErrConfiguration)
	// ErrInvalidDiscriminatorColumn invalid discriminator column
	ErrInvalidDiscriminatorColumn = fmt.Errorf("%w: invalid discriminator column", ErrConfiguration)
	// ErrDiscriminatorWithoutInheritance discriminator declared on a class without inheritance
	ErrDiscriminatorWithoutInheritance = fmt.Errorf("%w: discriminator requires an inheritance type", ErrConfiguration)
	// ErrInvalidIndex index without columns
	ErrInvalidIndex = fmt.Errorf("%w: index requires at least one column", ErrConfiguration)
	// ErrBuilderConsumed builder already committed its mapping
	ErrBuilderConsumed = fmt.Errorf("%w: builder has already been built", ErrConfiguration)
)

func fieldError(err error, class, field string) error {
	return fmt.Errorf("%w: %s#%s", err, class, field)
}

func classError(err error, class string) error {
	return fmt.Errorf("%w: %s", err, class)
}
