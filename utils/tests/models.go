package tests

// CMS model class names shared by the mapping tests
const (
	CmsUser    = "gorm.io/mapping/tests/models/cms.CmsUser"
	CmsGroup   = "gorm.io/mapping/tests/models/cms.CmsGroup"
	CmsAddress = "gorm.io/mapping/tests/models/cms.CmsAddress"
	CmsPhone   = "gorm.io/mapping/tests/models/cms.CmsPhonenumber"
	Name       = "gorm.io/mapping/tests/models/valueobjects.Name"
)
