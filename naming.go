package mapping

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/mapping/utils"
)

// Namer derives the database names a mapping did not declare explicitly
type Namer interface {
	ClassToTableName(className string) string
	PropertyToColumnName(property, className string) string
	ReferenceColumnName() string
	JoinColumnName(property, className string) string
	JoinTableName(sourceEntity, targetEntity, property string) string
	JoinKeyColumnName(entityName, referencedColumnName string) string
	IndexName(table string, columns ...string) string
	UniqueName(table string, columns ...string) string
}

var lowerCaser = cases.Lower(language.Und)

// DefaultNamingStrategy keeps class and property names as they are,
// join tables and join keys are lower cased
type DefaultNamingStrategy struct{}

// ClassToTableName returns the short class name
func (DefaultNamingStrategy) ClassToTableName(className string) string {
	return utils.ShortName(className)
}

// PropertyToColumnName returns the property name
func (DefaultNamingStrategy) PropertyToColumnName(property, className string) string {
	return property
}

// ReferenceColumnName default referenced column
func (DefaultNamingStrategy) ReferenceColumnName() string {
	return "id"
}

// JoinColumnName property_id
func (ns DefaultNamingStrategy) JoinColumnName(property, className string) string {
	return property + "_" + ns.ReferenceColumnName()
}

// JoinTableName source_target, e.g. cmsuser_cmsgroup
func (ns DefaultNamingStrategy) JoinTableName(sourceEntity, targetEntity, property string) string {
	return lowerCaser.String(ns.ClassToTableName(sourceEntity) + "_" + ns.ClassToTableName(targetEntity))
}

// JoinKeyColumnName entity_referenced, e.g. cmsgroup_id
func (ns DefaultNamingStrategy) JoinKeyColumnName(entityName, referencedColumnName string) string {
	if referencedColumnName == "" {
		referencedColumnName = ns.ReferenceColumnName()
	}
	return lowerCaser.String(ns.ClassToTableName(entityName) + "_" + referencedColumnName)
}

// IndexName generate index name
func (DefaultNamingStrategy) IndexName(table string, columns ...string) string {
	return constraintName("idx", table, columns)
}

// UniqueName generate unique constraint name
func (DefaultNamingStrategy) UniqueName(table string, columns ...string) string {
	return constraintName("uni", table, columns)
}

// UnderscoreNamingStrategy snake cases every derived name
type UnderscoreNamingStrategy struct {
	TablePrefix string
	// PluralTable pluralize table names, refer https://github.com/jinzhu/inflection for inflection rules
	PluralTable bool
}

// ClassToTableName convert class name to table name
func (ns UnderscoreNamingStrategy) ClassToTableName(className string) string {
	name := toDBName(utils.ShortName(className))
	if ns.PluralTable {
		name = inflection.Plural(name)
	}
	return ns.TablePrefix + name
}

// PropertyToColumnName convert property name to column name
func (UnderscoreNamingStrategy) PropertyToColumnName(property, className string) string {
	return toDBName(property)
}

// ReferenceColumnName default referenced column
func (UnderscoreNamingStrategy) ReferenceColumnName() string {
	return "id"
}

// JoinColumnName property_id
func (ns UnderscoreNamingStrategy) JoinColumnName(property, className string) string {
	return toDBName(property) + "_" + ns.ReferenceColumnName()
}

// JoinTableName source_target
func (ns UnderscoreNamingStrategy) JoinTableName(sourceEntity, targetEntity, property string) string {
	return ns.TablePrefix + toDBName(utils.ShortName(sourceEntity)) + "_" + toDBName(utils.ShortName(targetEntity))
}

// JoinKeyColumnName entity_referenced
func (ns UnderscoreNamingStrategy) JoinKeyColumnName(entityName, referencedColumnName string) string {
	if referencedColumnName == "" {
		referencedColumnName = ns.ReferenceColumnName()
	}
	return toDBName(utils.ShortName(entityName)) + "_" + referencedColumnName
}

// IndexName generate index name
func (UnderscoreNamingStrategy) IndexName(table string, columns ...string) string {
	return constraintName("idx", table, columns)
}

// UniqueName generate unique constraint name
func (UnderscoreNamingStrategy) UniqueName(table string, columns ...string) string {
	return constraintName("uni", table, columns)
}

func constraintName(prefix, table string, columns []string) string {
	names := make([]string, 0, len(columns))
	for _, column := range columns {
		names = append(names, toDBName(column))
	}

	name := fmt.Sprintf("%s_%s_%s", prefix, table, strings.Join(names, "_"))
	if utf8.RuneCountInString(name) <= 64 {
		return name
	}

	h := sha1.New()
	h.Write([]byte(name))
	bs := hex.EncodeToString(h.Sum(nil))

	name = prefix + table + strings.Join(columns, "")
	if runes := []rune(name); len(runes) > 56 {
		name = string(runes[:56])
	}
	return name + bs[:8]
}

var (
	smap sync.Map
	// https://github.com/golang/lint/blob/master/lint.go#L770
	commonInitialisms         = []string{"API", "ASCII", "CPU", "CSS", "DNS", "EOF", "GUID", "HTML", "HTTP", "HTTPS", "ID", "IP", "JSON", "LHS", "QPS", "RAM", "RHS", "RPC", "SLA", "SMTP", "SSH", "TLS", "TTL", "UID", "UI", "UUID", "URI", "URL", "UTF8", "VM", "XML", "XSRF", "XSS"}
	commonInitialismsReplacer *strings.Replacer
)

func init() {
	titleCaser := cases.Title(language.Und)

	var commonInitialismsForReplacer []string
	for _, initialism := range commonInitialisms {
		commonInitialismsForReplacer = append(commonInitialismsForReplacer, initialism, titleCaser.String(initialism))
	}
	commonInitialismsReplacer = strings.NewReplacer(commonInitialismsForReplacer...)
}

func toDBName(name string) string {
	if name == "" {
		return ""
	} else if v, ok := smap.Load(name); ok {
		return v.(string)
	}

	var (
		value                          = commonInitialismsReplacer.Replace(name)
		buf                            strings.Builder
		lastCase, nextCase, nextNumber bool // upper case == true
		curCase                        = value[0] <= 'Z' && value[0] >= 'A'
	)

	for i, v := range value[:len(value)-1] {
		nextCase = value[i+1] <= 'Z' && value[i+1] >= 'A'
		nextNumber = value[i+1] >= '0' && value[i+1] <= '9'

		if curCase {
			if lastCase && (nextCase || nextNumber) {
				buf.WriteRune(v + 32)
			} else {
				if i > 0 && value[i-1] != '_' && value[i+1] != '_' {
					buf.WriteByte('_')
				}
				buf.WriteRune(v + 32)
			}
		} else {
			buf.WriteRune(v)
		}

		lastCase = curCase
		curCase = nextCase
	}

	if curCase {
		if !lastCase && len(value) > 1 {
			buf.WriteByte('_')
		}
		buf.WriteByte(value[len(value)-1] + 32)
	} else {
		buf.WriteByte(value[len(value)-1])
	}

	result := buf.String()
	smap.Store(name, result)
	return result
}
