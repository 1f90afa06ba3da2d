package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/mapping"
	"gorm.io/mapping/utils/tests"
)

func cascadeAll() []mapping.CascadeType {
	return []mapping.CascadeType{
		mapping.CascadeRemove,
		mapping.CascadePersist,
		mapping.CascadeRefresh,
		mapping.CascadeMerge,
		mapping.CascadeDetach,
	}
}

func groupJoinColumn(unique bool) *mapping.JoinColumnMetadata {
	return &mapping.JoinColumnMetadata{
		TableName:            "CmsUser",
		ColumnName:           "group_id",
		ReferencedColumnName: "id",
		Nullable:             true,
		Unique:               unique,
		OnDelete:             "CASCADE",
	}
}

func TestCreateManyToOne(t *testing.T) {
	cm, b := newBuilder(t)

	ret, err := b.CreateManyToOne("groups", tests.CmsGroup).
		AddJoinColumn("group_id", "id", true, false, "CASCADE").
		CascadeAll().
		FetchExtraLazy().
		Build()
	require.NoError(t, err)
	assertIsFluent(t, b, ret)

	assert.Equal(t, map[string]*mapping.AssociationMetadata{
		"groups": {
			FieldName:      "groups",
			TargetEntity:   tests.CmsGroup,
			SourceEntity:   tests.CmsUser,
			Type:           mapping.ManyToOne,
			DeclaringClass: cm,
			IsOwningSide:   true,
			Cascade:        cascadeAll(),
			Fetch:          mapping.FetchExtraLazy,
			JoinColumns:    []*mapping.JoinColumnMetadata{groupJoinColumn(false)},
		},
	}, cm.AssociationMappings)
}

func TestCreateManyToOneWithIdentity(t *testing.T) {
	cm, b := newBuilder(t)

	ret, err := b.CreateManyToOne("groups", tests.CmsGroup).
		AddJoinColumn("group_id", "id", true, false, "CASCADE").
		CascadeAll().
		FetchExtraLazy().
		MakePrimaryKey().
		Build()
	require.NoError(t, err)
	assertIsFluent(t, b, ret)

	assert.Equal(t, map[string]*mapping.AssociationMetadata{
		"groups": {
			FieldName:      "groups",
			TargetEntity:   tests.CmsGroup,
			SourceEntity:   tests.CmsUser,
			Type:           mapping.ManyToOne,
			DeclaringClass: cm,
			IsOwningSide:   true,
			Cascade:        cascadeAll(),
			Fetch:          mapping.FetchExtraLazy,
			PrimaryKey:     true,
			JoinColumns:    []*mapping.JoinColumnMetadata{groupJoinColumn(false)},
		},
	}, cm.AssociationMappings)
	assert.Equal(t, []string{"groups"}, cm.Identifier)
	assert.True(t, cm.ContainsForeignIdentifier)
}

func TestCreateManyToOneDefaultJoinColumn(t *testing.T) {
	cm, b := newBuilder(t)

	_, err := b.CreateManyToOne("group", tests.CmsGroup).Build()
	require.NoError(t, err)

	assert.Equal(t, []*mapping.JoinColumnMetadata{{
		TableName:            "CmsUser",
		ColumnName:           "group_id",
		ReferencedColumnName: "id",
		Nullable:             true,
	}}, cm.GetAssociation("group").JoinColumns)
}

func TestCreateOneToOne(t *testing.T) {
	cm, b := newBuilder(t)

	ret, err := b.CreateOneToOne("groups", tests.CmsGroup).
		AddJoinColumn("group_id", "id", true, false, "CASCADE").
		CascadeAll().
		FetchExtraLazy().
		Build()
	require.NoError(t, err)
	assertIsFluent(t, b, ret)

	assert.Equal(t, map[string]*mapping.AssociationMetadata{
		"groups": {
			FieldName:      "groups",
			TargetEntity:   tests.CmsGroup,
			SourceEntity:   tests.CmsUser,
			Type:           mapping.OneToOne,
			DeclaringClass: cm,
			IsOwningSide:   true,
			Cascade:        cascadeAll(),
			Fetch:          mapping.FetchExtraLazy,
			JoinColumns:    []*mapping.JoinColumnMetadata{groupJoinColumn(true)},
		},
	}, cm.AssociationMappings)
}

func TestCreateOneToOneWithIdentity(t *testing.T) {
	cm, b := newBuilder(t)

	ret, err := b.CreateOneToOne("groups", tests.CmsGroup).
		AddJoinColumn("group_id", "id", true, false, "CASCADE").
		CascadeAll().
		FetchExtraLazy().
		MakePrimaryKey().
		Build()
	require.NoError(t, err)
	assertIsFluent(t, b, ret)

	association := cm.GetAssociation("groups")
	require.NotNil(t, association)
	assert.True(t, association.PrimaryKey)
	assert.Equal(t, []*mapping.JoinColumnMetadata{groupJoinColumn(false)}, association.JoinColumns)
	assert.Equal(t, []string{"groups"}, cm.Identifier)
}

func TestCreateOneToOneInverseSide(t *testing.T) {
	cm, b := newBuilder(t)

	_, err := b.CreateOneToOne("address", tests.CmsAddress).MappedBy("user").Build()
	require.NoError(t, err)

	association := cm.GetAssociation("address")
	require.NotNil(t, association)
	assert.False(t, association.IsOwningSide)
	assert.Equal(t, "user", association.MappedBy)
	assert.Empty(t, association.JoinColumns)
}

func TestThrowsExceptionOnCreateOneToOneWithIdentityOnInverseSide(t *testing.T) {
	cm, b := newBuilder(t)

	_, err := b.CreateOneToOne("groups", tests.CmsGroup).
		MappedBy("test").
		FetchExtraLazy().
		MakePrimaryKey().
		Build()
	assert.ErrorIs(t, err, mapping.ErrIllegalInverseIdentifierAssociation)
	assert.ErrorIs(t, err, mapping.ErrMapping)
	assert.Empty(t, cm.AssociationMappings)
	assert.Empty(t, cm.Identifier)
}

func TestCreateManyToMany(t *testing.T) {
	cm, b := newBuilder(t)

	ret, err := b.CreateManyToMany("groups", tests.CmsGroup).
		SetJoinTable("groups_users").
		AddJoinColumn("group_id", "id", true, false, "CASCADE").
		AddInverseJoinColumn("user_id", "id", true, false, "").
		CascadeAll().
		FetchExtraLazy().
		Build()
	require.NoError(t, err)
	assertIsFluent(t, b, ret)

	assert.Equal(t, map[string]*mapping.AssociationMetadata{
		"groups": {
			FieldName:      "groups",
			TargetEntity:   tests.CmsGroup,
			SourceEntity:   tests.CmsUser,
			Type:           mapping.ManyToMany,
			DeclaringClass: cm,
			IsOwningSide:   true,
			Cascade:        cascadeAll(),
			Fetch:          mapping.FetchExtraLazy,
			JoinTable: &mapping.JoinTableMetadata{
				Name: "groups_users",
				JoinColumns: []*mapping.JoinColumnMetadata{
					{ColumnName: "group_id", ReferencedColumnName: "id", Nullable: true, OnDelete: "CASCADE"},
				},
				InverseJoinColumns: []*mapping.JoinColumnMetadata{
					{ColumnName: "user_id", ReferencedColumnName: "id", Nullable: true},
				},
			},
		},
	}, cm.AssociationMappings)
}

func TestCreateManyToManyInverseSide(t *testing.T) {
	cm, b := newBuilder(t)

	_, err := b.CreateManyToMany("groups", tests.CmsGroup).MappedBy("users").Build()
	require.NoError(t, err)

	association := cm.GetAssociation("groups")
	require.NotNil(t, association)
	assert.False(t, association.IsOwningSide)
	assert.Nil(t, association.JoinTable)
}

func TestThrowsExceptionOnCreateManyToManyWithIdentity(t *testing.T) {
	cm, b := newBuilder(t)

	_, err := b.CreateManyToMany("groups", tests.CmsGroup).
		MakePrimaryKey().
		SetJoinTable("groups_users").
		AddJoinColumn("group_id", "id", true, false, "CASCADE").
		AddInverseJoinColumn("user_id", "id", true, false, "").
		CascadeAll().
		FetchExtraLazy().
		Build()
	assert.ErrorIs(t, err, mapping.ErrIllegalToManyIdentifierAssociation)
	assert.Empty(t, cm.AssociationMappings)
}

func TestCreateOneToMany(t *testing.T) {
	cm, b := newBuilder(t)

	ret, err := b.CreateOneToMany("groups", tests.CmsGroup).
		MappedBy("test").
		SetOrderBy([]string{"test"}).
		SetIndexBy("test").
		Build()
	require.NoError(t, err)
	assertIsFluent(t, b, ret)

	assert.Equal(t, map[string]*mapping.AssociationMetadata{
		"groups": {
			FieldName:      "groups",
			TargetEntity:   tests.CmsGroup,
			SourceEntity:   tests.CmsUser,
			Type:           mapping.OneToMany,
			DeclaringClass: cm,
			MappedBy:       "test",
			IsOwningSide:   false,
			Cascade:        []mapping.CascadeType{},
			Fetch:          mapping.FetchLazy,
			OrderBy:        []string{"test"},
			IndexBy:        "test",
		},
	}, cm.AssociationMappings)
}

func TestThrowsExceptionOnCreateOneToManyWithIdentity(t *testing.T) {
	cm, b := newBuilder(t)

	_, err := b.CreateOneToMany("groups", tests.CmsGroup).
		MakePrimaryKey().
		MappedBy("test").
		SetOrderBy([]string{"test"}).
		SetIndexBy("test").
		Build()
	assert.ErrorIs(t, err, mapping.ErrIllegalToManyIdentifierAssociation)
	assert.Empty(t, cm.AssociationMappings)
}

func TestOrphanRemovalOnCreateOneToOne(t *testing.T) {
	cm, b := newBuilder(t)

	ret, err := b.CreateOneToOne("groups", tests.CmsGroup).
		AddJoinColumn("group_id", "id", true, false, "CASCADE").
		OrphanRemoval().
		Build()
	require.NoError(t, err)
	assertIsFluent(t, b, ret)

	assert.Equal(t, map[string]*mapping.AssociationMetadata{
		"groups": {
			FieldName:      "groups",
			TargetEntity:   tests.CmsGroup,
			SourceEntity:   tests.CmsUser,
			Type:           mapping.OneToOne,
			DeclaringClass: cm,
			IsOwningSide:   true,
			Cascade:        []mapping.CascadeType{mapping.CascadeRemove},
			Fetch:          mapping.FetchLazy,
			OrphanRemoval:  true,
			JoinColumns:    []*mapping.JoinColumnMetadata{groupJoinColumn(true)},
		},
	}, cm.AssociationMappings)
}

func TestOrphanRemovalOnCreateOneToMany(t *testing.T) {
	cm, b := newBuilder(t)

	ret, err := b.CreateOneToMany("groups", tests.CmsGroup).
		MappedBy("test").
		OrphanRemoval().
		Build()
	require.NoError(t, err)
	assertIsFluent(t, b, ret)

	assert.Equal(t, map[string]*mapping.AssociationMetadata{
		"groups": {
			FieldName:      "groups",
			TargetEntity:   tests.CmsGroup,
			SourceEntity:   tests.CmsUser,
			Type:           mapping.OneToMany,
			DeclaringClass: cm,
			MappedBy:       "test",
			Cascade:        []mapping.CascadeType{mapping.CascadeRemove},
			Fetch:          mapping.FetchLazy,
			OrphanRemoval:  true,
		},
	}, cm.AssociationMappings)
}

func TestOrphanRemovalKeepsExistingCascade(t *testing.T) {
	cm, b := newBuilder(t)

	_, err := b.CreateOneToMany("phonenumbers", tests.CmsPhone).
		MappedBy("user").
		CascadeAll().
		OrphanRemoval().
		Build()
	require.NoError(t, err)
	assert.Equal(t, cascadeAll(), cm.GetAssociation("phonenumbers").Cascade)
}

func TestExceptionOnOrphanRemovalOnManyToOne(t *testing.T) {
	cm, b := newBuilder(t)

	_, err := b.CreateManyToOne("groups", tests.CmsGroup).
		AddJoinColumn("group_id", "id", true, false, "CASCADE").
		OrphanRemoval().
		Build()
	assert.ErrorIs(t, err, mapping.ErrIllegalOrphanRemoval)
	assert.ErrorIs(t, err, mapping.ErrMapping)
	assert.Empty(t, cm.AssociationMappings)
}

func TestOrphanRemovalOnManyToMany(t *testing.T) {
	cm, b := newBuilder(t)

	_, err := b.CreateManyToMany("groups", tests.CmsGroup).
		AddJoinColumn("group_id", "id", true, false, "CASCADE").
		OrphanRemoval().
		Build()
	require.NoError(t, err)

	assert.Equal(t, map[string]*mapping.AssociationMetadata{
		"groups": {
			FieldName:      "groups",
			TargetEntity:   tests.CmsGroup,
			SourceEntity:   tests.CmsUser,
			Type:           mapping.ManyToMany,
			DeclaringClass: cm,
			IsOwningSide:   true,
			Cascade:        []mapping.CascadeType{},
			Fetch:          mapping.FetchLazy,
			OrphanRemoval:  true,
			JoinTable: &mapping.JoinTableMetadata{
				Name: "cmsuser_cmsgroup",
				JoinColumns: []*mapping.JoinColumnMetadata{
					{ColumnName: "group_id", ReferencedColumnName: "id", Nullable: true, OnDelete: "CASCADE"},
				},
				InverseJoinColumns: []*mapping.JoinColumnMetadata{
					{ColumnName: "cmsgroup_id", ReferencedColumnName: "id", Nullable: true, OnDelete: "CASCADE"},
				},
			},
		},
	}, cm.AssociationMappings)
}

func TestCreateManyToManyDefaultJoinTable(t *testing.T) {
	cm, b := newBuilder(t)

	_, err := b.CreateManyToMany("groups", tests.CmsGroup).InversedBy("users").Build()
	require.NoError(t, err)

	joinTable := cm.GetAssociation("groups").JoinTable
	assert.True(t, joinTable.Equal(&mapping.JoinTableMetadata{
		Name: "cmsuser_cmsgroup",
		JoinColumns: []*mapping.JoinColumnMetadata{
			{ColumnName: "cmsuser_id", ReferencedColumnName: "id", Nullable: true, OnDelete: "CASCADE"},
		},
		InverseJoinColumns: []*mapping.JoinColumnMetadata{
			{ColumnName: "cmsgroup_id", ReferencedColumnName: "id", Nullable: true, OnDelete: "CASCADE"},
		},
	}))
}

func TestCascade(t *testing.T) {
	t.Run("Individual", func(t *testing.T) {
		cm, b := newBuilder(t)

		_, err := b.CreateManyToOne("group", tests.CmsGroup).
			CascadePersist().
			CascadeMerge().
			CascadePersist().
			CascadeRefresh().
			CascadeDetach().
			CascadeRemove().
			Build()
		require.NoError(t, err)

		association := cm.GetAssociation("group")
		assert.Equal(t, []mapping.CascadeType{
			mapping.CascadePersist,
			mapping.CascadeMerge,
			mapping.CascadeRefresh,
			mapping.CascadeDetach,
			mapping.CascadeRemove,
		}, association.Cascade)
		assert.True(t, association.IsCascaded(mapping.CascadeMerge))
	})

	t.Run("AllIsIdempotent", func(t *testing.T) {
		cm, b := newBuilder(t)

		_, err := b.CreateManyToOne("group", tests.CmsGroup).
			CascadePersist().
			CascadeAll().
			CascadeAll().
			CascadeRemove().
			Build()
		require.NoError(t, err)
		assert.Equal(t, cascadeAll(), cm.GetAssociation("group").Cascade)
	})

	t.Run("AllDoesNotAliasPackageSlice", func(t *testing.T) {
		cm, b := newBuilder(t)

		_, err := b.CreateManyToOne("group", tests.CmsGroup).CascadeAll().Build()
		require.NoError(t, err)

		cm.GetAssociation("group").Cascade[0] = mapping.CascadeDetach
		assert.Equal(t, cascadeAll(), mapping.CascadeAll)
	})
}

func TestFetchModes(t *testing.T) {
	cm, b := newBuilder(t)

	_, err := b.CreateManyToOne("eager", tests.CmsGroup).FetchExtraLazy().FetchEager().Build()
	require.NoError(t, err)
	_, err = b.CreateManyToOne("lazy", tests.CmsGroup).FetchEager().FetchLazy().Build()
	require.NoError(t, err)

	assert.Equal(t, mapping.FetchEager, cm.GetAssociation("eager").Fetch)
	assert.Equal(t, mapping.FetchLazy, cm.GetAssociation("lazy").Fetch)
}

func TestMappedByAndInversedBy(t *testing.T) {
	cm, b := newBuilder(t)

	_, err := b.CreateOneToOne("address", tests.CmsAddress).
		MappedBy("user").
		InversedBy("user").
		Build()
	require.NoError(t, err)

	association := cm.GetAssociation("address")
	assert.Empty(t, association.MappedBy)
	assert.Equal(t, "user", association.InversedBy)
	assert.True(t, association.IsOwningSide)
}

func TestAssociationValidation(t *testing.T) {
	t.Run("InverseManyToOne", func(t *testing.T) {
		cm, b := newBuilder(t)

		_, err := b.CreateManyToOne("group", tests.CmsGroup).MappedBy("users").Build()
		assert.ErrorIs(t, err, mapping.ErrIllegalInverseManyToOne)
		assert.Empty(t, cm.AssociationMappings)
	})

	t.Run("OneToManyWithoutMappedBy", func(t *testing.T) {
		cm, b := newBuilder(t)

		_, err := b.CreateOneToMany("phonenumbers", tests.CmsPhone).Build()
		assert.ErrorIs(t, err, mapping.ErrOneToManyRequiresMappedBy)
		assert.Empty(t, cm.AssociationMappings)
	})

	t.Run("InverseSideJoinColumns", func(t *testing.T) {
		cm, b := newBuilder(t)

		_, err := b.CreateOneToOne("address", tests.CmsAddress).
			AddJoinColumn("address_id", "id", true, false, "").
			MappedBy("user").
			Build()
		assert.ErrorIs(t, err, mapping.ErrInverseSideJoinColumns)

		_, err = b.CreateManyToMany("groups", tests.CmsGroup).
			SetJoinTable("groups_users").
			MappedBy("users").
			Build()
		assert.ErrorIs(t, err, mapping.ErrInverseSideJoinColumns)
		assert.Empty(t, cm.AssociationMappings)
	})

	t.Run("InverseToManyOnMappedSuperclass", func(t *testing.T) {
		cm, b := newBuilder(t)
		b.SetMappedSuperClass()

		_, err := b.CreateOneToMany("phonenumbers", tests.CmsPhone).MappedBy("user").Build()
		assert.ErrorIs(t, err, mapping.ErrIllegalToManyAssociationOnMappedSuperclass)

		_, err = b.CreateManyToOne("group", tests.CmsGroup).Build()
		assert.NoError(t, err)
		assert.Equal(t, []string{"group"}, cm.GetAssociationNames())
	})

	t.Run("MissingTargetEntity", func(t *testing.T) {
		_, b := newBuilder(t)

		_, err := b.CreateManyToOne("group", "").Build()
		assert.ErrorIs(t, err, mapping.ErrMissingTargetEntity)
	})

	t.Run("CollidesWithProperty", func(t *testing.T) {
		cm, b := newBuilder(t)
		b.AddProperty("group", "integer")

		_, err := b.CreateManyToOne("group", tests.CmsGroup).Build()
		assert.ErrorIs(t, err, mapping.ErrDuplicateFieldMapping)
		assert.False(t, cm.HasAssociation("group"))
	})
}

func TestAssociationRetryAfterFailedBuild(t *testing.T) {
	t.Run("ManyToOne", func(t *testing.T) {
		cm, b := newBuilder(t)

		associationBuilder := b.CreateManyToOne("group", tests.CmsGroup).
			AddJoinColumn("group_id", "id", false, false, "").
			MappedBy("users")

		_, err := associationBuilder.Build()
		require.ErrorIs(t, err, mapping.ErrIllegalInverseManyToOne)

		_, err = associationBuilder.InversedBy("users").Build()
		require.NoError(t, err)

		association := cm.GetAssociation("group")
		assert.Equal(t, "users", association.InversedBy)
		assert.Len(t, association.JoinColumns, 1)
		assert.False(t, association.JoinColumns[0].Nullable)
	})

	t.Run("OneToMany", func(t *testing.T) {
		cm, b := newBuilder(t)

		associationBuilder := b.CreateOneToMany("phonenumbers", tests.CmsPhone).OrphanRemoval()
		_, err := associationBuilder.Build()
		require.ErrorIs(t, err, mapping.ErrOneToManyRequiresMappedBy)

		_, err = associationBuilder.MappedBy("user").Build()
		require.NoError(t, err)
		assert.Equal(t, []mapping.CascadeType{mapping.CascadeRemove}, cm.GetAssociation("phonenumbers").Cascade)
	})
}

func TestAssociationBuilderConsumed(t *testing.T) {
	cm, b := newBuilder(t)

	associationBuilder := b.CreateManyToOne("group", tests.CmsGroup)
	_, err := associationBuilder.Build()
	require.NoError(t, err)

	ret, err := associationBuilder.FetchEager().Build()
	assert.ErrorIs(t, err, mapping.ErrBuilderConsumed)
	assertIsFluent(t, b, ret)
	assert.Equal(t, mapping.FetchLazy, cm.GetAssociation("group").Fetch)
}

func TestAssociationDetachedFromBuilder(t *testing.T) {
	cm, b := newBuilder(t)

	associationBuilder := b.CreateManyToMany("groups", tests.CmsGroup).
		AddJoinColumn("user_id", "id", true, false, "CASCADE")
	_, err := associationBuilder.Build()
	require.NoError(t, err)

	associationBuilder.AddInverseJoinColumn("group_id", "id", true, false, "")
	associationBuilder.SetJoinTable("other")

	joinTable := cm.GetAssociation("groups").JoinTable
	assert.Equal(t, "cmsuser_cmsgroup", joinTable.Name)
	require.Len(t, joinTable.InverseJoinColumns, 1)
	assert.Equal(t, "cmsgroup_id", joinTable.InverseJoinColumns[0].ColumnName)
}

func TestAssociationReplaced(t *testing.T) {
	cm, b := newBuilder(t)

	_, err := b.CreateManyToOne("group", tests.CmsGroup).Build()
	require.NoError(t, err)
	_, err = b.CreateOneToOne("group", tests.CmsGroup).Build()
	require.NoError(t, err)

	assert.Equal(t, mapping.OneToOne, cm.GetAssociation("group").Type)
	assert.Len(t, cm.AssociationMappings, 1)
}

func TestCreateManyToManyDefaultsWithCascadeAll(t *testing.T) {
	cm, b := newBuilder(t)

	_, err := b.CreateManyToMany("groups", tests.CmsGroup).
		AddJoinColumn("group_id", "id", true, false, "CASCADE").
		CascadeAll().
		CascadeAll().
		FetchExtraLazy().
		Build()
	require.NoError(t, err)

	association := cm.GetAssociation("groups")
	require.NotNil(t, association)
	assert.Equal(t, cascadeAll(), association.Cascade)
	assert.Equal(t, mapping.FetchExtraLazy, association.Fetch)

	joinTable := association.JoinTable
	require.NotNil(t, joinTable)
	assert.Equal(t, "cmsuser_cmsgroup", joinTable.Name)
	assert.Equal(t, []*mapping.JoinColumnMetadata{
		{ColumnName: "group_id", ReferencedColumnName: "id", Nullable: true, OnDelete: "CASCADE"},
	}, joinTable.JoinColumns)
	require.Len(t, joinTable.InverseJoinColumns, 1)
	assert.Equal(t, "cmsgroup_id", joinTable.InverseJoinColumns[0].ColumnName)
}

func TestIdentifierAssociationReplaced(t *testing.T) {
	cm, b := newBuilder(t)

	_, err := b.CreateManyToOne("group", tests.CmsGroup).MakePrimaryKey().Build()
	require.NoError(t, err)
	require.Equal(t, []string{"group"}, cm.Identifier)
	require.True(t, cm.ContainsForeignIdentifier)

	_, err = b.CreateManyToOne("group", tests.CmsGroup).Build()
	require.NoError(t, err)

	assert.False(t, cm.GetAssociation("group").PrimaryKey)
	assert.Empty(t, cm.Identifier)
	assert.False(t, cm.ContainsForeignIdentifier)
}

func TestJoinColumnFollowsTableRenamedWhileStaged(t *testing.T) {
	cm, b := newBuilder(t)

	staged := b.CreateManyToOne("group", tests.CmsGroup).AddJoinColumn("group_id", "id", true, false, "CASCADE")
	b.SetTable("cms_users")

	_, err := staged.Build()
	require.NoError(t, err)

	assert.Equal(t, "cms_users", cm.TableName())
	assert.Equal(t, "cms_users", cm.GetAssociation("group").JoinColumns[0].TableName)
}
