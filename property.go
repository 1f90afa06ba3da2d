package mapping

import "fmt"

// GeneratorType identifier value generation strategy
type GeneratorType string

const (
	GeneratorTypeNone     GeneratorType = "NONE"
	GeneratorTypeAuto     GeneratorType = "AUTO"
	GeneratorTypeSequence GeneratorType = "SEQUENCE"
	GeneratorTypeIdentity GeneratorType = "IDENTITY"
	GeneratorTypeUUID     GeneratorType = "UUID"
	GeneratorTypeCustom   GeneratorType = "CUSTOM"
)

// ValueGeneratorMetadata generated value settings of a property
type ValueGeneratorMetadata struct {
	Type       GeneratorType
	Definition map[string]interface{}
}

// Property scalar field mapping
type Property struct {
	Name             string
	DeclaringClass   *ClassMetadata
	TypeName         string
	TableName        string
	ColumnName       string
	ColumnDefinition string
	Length           int
	Precision        int
	Scale            int
	Nullable         bool
	Unique           bool
	PrimaryKey       bool
	Versioned        bool
	ValueGenerator   *ValueGeneratorMetadata
	Options          map[string]interface{}
}

// HasValueGenerator reports whether the property value is generated by the database
func (p *Property) HasValueGenerator() bool {
	return p.ValueGenerator != nil && p.ValueGenerator.Type != GeneratorTypeNone
}

// optimistic locking defaults by type name
var versionDefaults = map[string]interface{}{
	"integer":    1,
	"smallint":   1,
	"bigint":     1,
	"datetime":   "CURRENT_TIMESTAMP",
	"datetimetz": "CURRENT_TIMESTAMP",
}

func (p *Property) completeVersion() error {
	value, ok := versionDefaults[p.TypeName]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnsupportedOptimisticLockingType, p.TypeName)
	}

	if _, exists := p.Options["default"]; !exists {
		if p.Options == nil {
			p.Options = map[string]interface{}{}
		}
		p.Options["default"] = value
	}
	return nil
}
